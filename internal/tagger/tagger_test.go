// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tagger

import (
	"reflect"
	"strings"
	"testing"

	"github.com/meshintel/vaxlit/internal/vocab"
	"github.com/meshintel/vaxlit/pkg/types"
)

func defaultEngine() *Engine {
	return New(vocab.Default(), nil)
}

func TestTagStudyCounts(t *testing.T) {
	tags := defaultEngine().Tag("This review included 12 studies and 3 randomized controlled trials.")

	entries, ok := tags["studies#no_of_studies#sty"].([]string)
	if !ok {
		t.Fatalf("studies#no_of_studies#sty missing or wrong type: %v", tags["studies#no_of_studies#sty"])
	}
	if !contains(entries, "12 studies") || !contains(entries, "3 RCT") {
		t.Errorf("entries = %v, want to contain %q and %q", entries, "12 studies", "3 RCT")
	}
	if got := tags[types.KeyTotalStudyCount]; got != 12 {
		t.Errorf("total_study_count = %v, want 12", got)
	}
	if got := tags[types.KeyTotalRCTCount]; got != 3 {
		t.Errorf("total_rct_count = %v, want 3", got)
	}
	rcts, _ := tags[types.KeyRCTCounts].([]string)
	if !contains(rcts, "3 RCT") {
		t.Errorf("RCT_counts = %v, want to contain %q", rcts, "3 RCT")
	}
}

func TestTagAgeBands(t *testing.T) {
	tags := defaultEngine().Tag("Children aged 5 to 9 years were followed.")

	match, ok := tags["population#age_group#chi_2_9"].(types.AgeMatch)
	if !ok {
		t.Fatalf("population#age_group#chi_2_9 missing: %v", tags)
	}
	wantRange := types.AgeRange{Start: 5, End: 9, Op: "="}
	found := false
	for _, r := range match.Ranges {
		if r == wantRange {
			found = true
		}
	}
	if !found {
		t.Errorf("Ranges = %v, want to contain %v", match.Ranges, wantRange)
	}
	if !contains(match.Synonyms, "children") {
		t.Errorf("Synonyms = %v, want to contain %q", match.Synonyms, "children")
	}

	if _, present := tags["population#age_group#nb_0_1"]; present {
		t.Error("band [0,1] should not overlap [5,9]")
	}
}

func TestTagOpenLowerBound(t *testing.T) {
	tags := defaultEngine().Tag("Subjects younger than 18 years received vaccine.")

	wantRange := types.AgeRange{Start: 0, End: 18, Op: "<"}
	for _, key := range []string{
		"population#age_group#nb_0_1",
		"population#age_group#chi_2_9",
		"population#age_group#ado_10_17",
		"population#age_group#adu_18_64",
	} {
		match, ok := tags[key].(types.AgeMatch)
		if !ok {
			t.Errorf("%s missing", key)
			continue
		}
		found := false
		for _, r := range match.Ranges {
			if r == wantRange {
				found = true
			}
		}
		if !found {
			t.Errorf("%s Ranges = %v, want to contain %v", key, match.Ranges, wantRange)
		}
	}

	if _, present := tags["population#age_group#old_65_110"]; present {
		t.Error("band [65,110] should not overlap [0,18]")
	}
}

func TestTagEfficacy(t *testing.T) {
	tags := defaultEngine().Tag("Vaccine efficacy was 94.1% (90.3-96.8).")

	recs, ok := tags["topic#efficacy_effectiveness#ve"].([]types.Efficacy)
	if !ok {
		t.Fatalf("topic#efficacy_effectiveness#ve missing: %v", tags)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d efficacy records, want exactly 1: %v", len(recs), recs)
	}
	if recs[0].Keyword != "vaccine efficacy" || recs[0].VE != 94.1 ||
		recs[0].CILow != 90.3 || recs[0].CIHigh != 96.8 {
		t.Errorf("record = %+v", recs[0])
	}
}

func TestTagGenderBlocks(t *testing.T) {
	tags := defaultEngine().Tag("Group A: 60% male 40% female\n\nGroup B: 55% female")

	dists, ok := tags["gender#group#all"].([]types.GenderDist)
	if !ok {
		t.Fatalf("gender#group#all missing: %v", tags)
	}
	want := []types.GenderDist{
		{"male": 60, "female": 40},
		{"female": 55},
	}
	if !reflect.DeepEqual(dists, want) {
		t.Errorf("dists = %v, want %v", dists, want)
	}
}

func TestTagDeterminism(t *testing.T) {
	doc := "Children aged 5 to 9 years: 12 studies, 3 RCTs, vaccine efficacy was 90.0% (85.0-95.0). 60% male 40% female."
	e := defaultEngine()
	first := e.Tag(doc)
	for i := 0; i < 5; i++ {
		if got := e.Tag(doc); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v != %v", i, got, first)
		}
	}
}

func TestTagCaseInsensitive(t *testing.T) {
	doc := "children received the influenza vaccine. Efficacy was 90.0% (85.0-95.0)."
	e := defaultEngine()
	if got, want := e.Tag(strings.ToUpper(doc)), e.Tag(doc); !reflect.DeepEqual(got, want) {
		t.Errorf("uppercased document tags differ:\n%v\n%v", got, want)
	}
}

func TestTagWholeWord(t *testing.T) {
	raw := vocab.Raw{
		"topic": {"keywords": {"kw": {{Surface: "live"}}}},
	}
	e := New(vocab.MustNew(raw), nil)

	if tags := e.Tag("the patient remained alive and delivered"); len(tags) != 0 {
		t.Errorf("substring matched as whole word: %v", tags)
	}
	if tags := e.Tag("a live attenuated vaccine"); len(tags) != 1 {
		t.Errorf("whole word not matched: %v", tags)
	}
}

func TestTagShortCodeEmitted(t *testing.T) {
	tags := defaultEngine().Tag("The trial enrolled health care workers.")

	matched, ok := tags["population#specific_group#hcw"].([]string)
	if !ok {
		t.Fatalf("population#specific_group#hcw missing: %v", tags)
	}
	if !contains(matched, "health care workers") || !contains(matched, "HCW") {
		t.Errorf("matched = %v, want surface and short-code", matched)
	}
}

// Every key present in the output must carry a non-empty value.
func TestTagNoEmptyValues(t *testing.T) {
	docs := []string{
		"",
		"nothing relevant at all",
		"Children aged 5 to 9 years: 12 studies and 3 RCTs in elderly women.",
	}
	e := defaultEngine()
	for _, doc := range docs {
		for key, v := range e.Tag(doc) {
			switch val := v.(type) {
			case []string:
				if len(val) == 0 {
					t.Errorf("doc %q: key %s has empty list", doc, key)
				}
			case types.AgeMatch:
				if val.IsEmpty() {
					t.Errorf("doc %q: key %s has empty age match", doc, key)
				}
			case []types.GenderDist:
				if len(val) == 0 {
					t.Errorf("doc %q: key %s has empty list", doc, key)
				}
			case []types.Efficacy:
				if len(val) == 0 {
					t.Errorf("doc %q: key %s has empty list", doc, key)
				}
			case []types.PopulationSize:
				if len(val) == 0 {
					t.Errorf("doc %q: key %s has empty list", doc, key)
				}
			case int:
				// The study-count totals are scalars; zero is allowed.
			default:
				t.Errorf("doc %q: key %s has unexpected type %T", doc, key, v)
			}
		}
	}
}

func TestTagExtractorPanicIsIsolated(t *testing.T) {
	// An age-group subcategory whose item lacks a band would panic at
	// dispatch; guard must contain it and the generic categories still run.
	v := vocab.MustNew(vocab.Raw{
		"population": {"age_group": {"chi_2_9": {{Surface: "children"}}}},
		"vpd":        {"disease": {"flu": {{Surface: "influenza"}}}},
	})
	// Simulate a broken extractor by clearing the compiled band.
	v.Categories[0].Subcategories[0].Items[0].Band = nil

	var warnings strings.Builder
	e := New(v, &warnings)
	tags := e.Tag("children with influenza, ages 5 to 9")

	if _, ok := tags["vpd#disease#flu"]; !ok {
		t.Errorf("generic extractor did not run after panic: %v", tags)
	}
	if !strings.Contains(warnings.String(), "warning") {
		t.Errorf("panic was not logged: %q", warnings.String())
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
