// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch resolves DOIs to publisher URLs and retrieves document
// text over HTTP. Publisher-specific scrapers are external collaborators;
// this package defines the text-producing interface they share and a
// plain HTTP implementation of it.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/meshintel/vaxlit/internal/httputil"
	"github.com/meshintel/vaxlit/pkg/types"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "vaxlit/0.1"
	defaultRetries   = 3

	// maxBodySize caps how much of a response is read (16 MiB).
	maxBodySize = 16 << 20
)

// Source returns plain text for one DOI. Implementations must honor the
// context and return an error rather than partial text on failure.
type Source interface {
	FetchText(ctx context.Context, doi, sourceHint string) (string, error)
}

// HTTPSource fetches documents from publisher URLs derived via ResolveURL.
// HTML responses are reduced to readable plain text; anything else is
// returned as-is.
type HTTPSource struct {
	client    *http.Client
	userAgent string
	retries   int
	apiKeys   map[string]string
}

// NewHTTPSource builds an HTTPSource with the configured timeout,
// User-Agent, and 429 retry budget. Zero values take defaults.
func NewHTTPSource(cfg types.FetchConfig) *HTTPSource {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = defaultRetries
	}
	return &HTTPSource{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		retries:   retries,
		apiKeys:   cfg.APIKeys,
	}
}

// FetchText resolves the DOI for sourceHint and retrieves the document.
func (s *HTTPSource) FetchText(ctx context.Context, doi, sourceHint string) (string, error) {
	fetchURL, err := ResolveURL(sourceHint, doi)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", doi, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	if token := s.apiKeys[strings.ToLower(sourceHint)]; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httputil.DoWithRetry(ctx, s.client, req, s.retries)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", fetchURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, fetchURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", fetchURL, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "html") {
		return htmlToText(body, fetchURL)
	}
	return string(body), nil
}

// htmlToText extracts the readable article text from an HTML page.
func htmlToText(body []byte, pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parsing page URL: %w", err)
	}
	article, err := readability.FromReader(bytes.NewReader(body), u)
	if err != nil {
		return "", fmt.Errorf("extracting article text: %w", err)
	}
	return article.TextContent, nil
}
