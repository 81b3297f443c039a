// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"testing"

	"github.com/meshintel/vaxlit/pkg/types"
)

func TestFlatten(t *testing.T) {
	tags := types.TagMap{
		"studies#no_of_studies#sty": []string{"12 studies", "3 RCT"},
		"total_study_count":         12,
		"population#age_group#chi_2_9": types.AgeMatch{
			Ranges:   []types.AgeRange{{Start: 5, End: 9, Op: "="}},
			Synonyms: []string{"children"},
		},
		"gender#group#all": []types.GenderDist{
			{"male": 60, "female": 40},
		},
		"topic#efficacy_effectiveness#ve": []types.Efficacy{
			{Keyword: "vaccine efficacy", VE: 94.1, CILow: 90.3, CIHigh: 96.8},
		},
		"population#group#size": []types.PopulationSize{
			{Indicator: "participants", Populations: 4500},
		},
	}

	flat := Flatten(tags)

	want := map[string]any{
		"studies#no_of_studies#sty":       "12 studies, 3 RCT",
		"total_study_count":               12,
		"population#age_group#chi_2_9":    "5-9, children",
		"gender#group#all":                "female:40 male:60",
		"topic#efficacy_effectiveness#ve": "vaccine efficacy 94.1% (90.3-96.8)",
		"population#group#size":           "participants: 4500",
	}
	if len(flat) != len(want) {
		t.Fatalf("Flatten returned %d keys, want %d: %v", len(flat), len(want), flat)
	}
	for key, wv := range want {
		if flat[key] != wv {
			t.Errorf("Flatten[%s] = %#v, want %#v", key, flat[key], wv)
		}
	}
}

func TestFlattenEmpty(t *testing.T) {
	if flat := Flatten(types.TagMap{}); len(flat) != 0 {
		t.Errorf("Flatten(empty) = %v", flat)
	}
}
