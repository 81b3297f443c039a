// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/meshintel/vaxlit/pkg/types"
)

func TestFetchTextPlain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "vaxlit/0.1" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("12 studies of vaccine efficacy"))
	}))
	defer srv.Close()

	s := NewHTTPSource(types.FetchConfig{})
	got, err := s.FetchText(context.Background(), srv.URL+"/doc.txt", "Embase")
	if err != nil {
		t.Fatalf("FetchText: %v", err)
	}
	if got != "12 studies of vaccine efficacy" {
		t.Errorf("text = %q", got)
	}
}

func TestFetchTextHTML(t *testing.T) {
	const page = `<!DOCTYPE html><html><head><title>Trial report</title></head><body>
<article><h1>Trial report</h1>
<p>This randomized controlled trial enrolled 4500 participants across twelve sites
and followed them for two influenza seasons to measure vaccine effectiveness in
children and adults. Vaccine efficacy was 94.1 percent overall.</p>
<p>Secondary outcomes included hospitalization and seroconversion, with adverse
events recorded throughout the follow-up period for every enrolled participant.</p>
</article></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	s := NewHTTPSource(types.FetchConfig{})
	got, err := s.FetchText(context.Background(), srv.URL+"/article", "Embase")
	if err != nil {
		t.Fatalf("FetchText: %v", err)
	}
	if !strings.Contains(got, "4500 participants") {
		t.Errorf("extracted text missing article body: %q", got)
	}
	if strings.Contains(got, "<p>") {
		t.Errorf("extracted text still contains markup: %q", got)
	}
}

func TestFetchTextAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok_abc" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	s := NewHTTPSource(types.FetchConfig{
		APIKeys: map[string]string{"embase": "tok_abc"},
	})
	if _, err := s.FetchText(context.Background(), srv.URL+"/doc", "Embase"); err != nil {
		t.Fatalf("FetchText: %v", err)
	}
}

func TestFetchTextHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	s := NewHTTPSource(types.FetchConfig{})
	if _, err := s.FetchText(context.Background(), srv.URL+"/missing", "Embase"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestFetchTextBadDOI(t *testing.T) {
	s := NewHTTPSource(types.FetchConfig{})
	if _, err := s.FetchText(context.Background(), "", "Embase"); err == nil {
		t.Fatal("expected error for empty DOI")
	}
}

func TestFetchTextContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewHTTPSource(types.FetchConfig{})
	if _, err := s.FetchText(ctx, srv.URL+"/slow", "Embase"); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
