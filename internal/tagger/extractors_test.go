// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tagger

import (
	"testing"

	"github.com/meshintel/vaxlit/internal/vocab"
	"github.com/meshintel/vaxlit/pkg/types"
)

func genderItem() vocab.Item {
	return vocab.Item{
		Key: "all",
		Terms: []vocab.TermEntry{
			{Surface: "male"}, {Surface: "female"}, {Surface: "non-binary"},
		},
	}
}

func TestGenderScanBlocks(t *testing.T) {
	s := newGenderScanner(genderItem())

	doc := "group a: 60% male 40% female\n\ngroup b: 55% female\n\nno percentages here"
	got := s.scan(doc)

	want := []types.GenderDist{
		{"male": 60, "female": 40},
		{"female": 55},
	}
	if len(got) != len(want) {
		t.Fatalf("scan returned %d blocks, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Errorf("block %d = %v, want %v", i, got[i], want[i])
			continue
		}
		for k, v := range want[i] {
			if got[i][k] != v {
				t.Errorf("block %d [%s] = %d, want %d", i, k, got[i][k], v)
			}
		}
	}
}

func TestGenderScanEmpty(t *testing.T) {
	s := newGenderScanner(genderItem())
	if got := s.scan("a document with no distribution data"); got != nil {
		t.Errorf("scan = %v, want nil", got)
	}
}

func TestEfficacyScan(t *testing.T) {
	item := vocab.Item{
		Key: "ve",
		Terms: []vocab.TermEntry{
			{Surface: "vaccine efficacy", Code: "VE"},
			{Surface: "efficacy"},
		},
	}
	s := newEfficacyScanner(item)

	got := s.scan("overall, vaccine efficacy was 94.1% (90.3-96.8) after two doses.")
	if len(got) != 1 {
		t.Fatalf("scan returned %d records, want 1: %v", len(got), got)
	}
	rec := got[0]
	if rec.Keyword != "vaccine efficacy" {
		t.Errorf("Keyword = %q, want %q", rec.Keyword, "vaccine efficacy")
	}
	if rec.VE != 94.1 {
		t.Errorf("VE = %v, want 94.1", rec.VE)
	}
	if rec.CILow != 90.3 || rec.CIHigh != 96.8 {
		t.Errorf("CI = [%v, %v], want [90.3, 96.8]", rec.CILow, rec.CIHigh)
	}
	if rec.Context == "" {
		t.Error("Context is empty")
	}
}

func TestEfficacyScanNoMatch(t *testing.T) {
	item := vocab.Item{Key: "ve", Terms: []vocab.TermEntry{{Surface: "efficacy"}}}
	s := newEfficacyScanner(item)

	// No confidence interval, no record.
	if got := s.scan("efficacy was 80% in the treatment arm."); got != nil {
		t.Errorf("scan = %v, want nil", got)
	}
}

func TestPopulationScan(t *testing.T) {
	item := vocab.Item{
		Key: "size",
		Terms: []vocab.TermEntry{
			{Surface: "participants"}, {Surface: "patients"},
		},
	}
	s := newPopulationScanner(item)

	tests := []struct {
		name string
		doc  string
		want []types.PopulationSize
	}{
		{
			"indicator then number",
			"participants: 4500 were randomized",
			[]types.PopulationSize{{Indicator: "participants", Populations: 4500}},
		},
		{
			"first digit group only",
			"participants (n = 4,500)",
			[]types.PopulationSize{{Indicator: "participants", Populations: 4}},
		},
		{
			"two indicators",
			"patients enrolled: 120. participants followed: 118",
			[]types.PopulationSize{
				{Indicator: "patients", Populations: 120},
				{Indicator: "participants", Populations: 118},
			},
		},
		{"no number in window", "participants were generally satisfied with their care and reported no issues whatsoever during follow-up", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.scan(tt.doc)
			if len(got) != len(tt.want) {
				t.Fatalf("scan(%q) = %v, want %v", tt.doc, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("scan(%q)[%d] = %v, want %v", tt.doc, i, got[i], tt.want[i])
				}
			}
		})
	}
}
