// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"sort"
	"strings"
)

// Tag map keys for the study-count scalars. These sit beside the composite
// category#subcategory#item keys in a TagMap.
const (
	KeyTotalStudyCount = "total_study_count"
	KeyTotalRCTCount   = "total_rct_count"
	KeyRCTCounts       = "RCT_counts"
)

// TagMap is the tagging engine output: composite "category#subcategory#item"
// keys to matched surfaces or typed findings, plus the study-count scalars.
// Values are one of []string, AgeMatch, []GenderDist, []Efficacy,
// []PopulationSize, or int.
type TagMap map[string]any

// AgeRange is a normalized age expression. Op is "=", "<", or ">":
// "=" covers [Start, End], "<" covers [0, End], ">" covers [Start, inf).
type AgeRange struct {
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Op    string `json:"op" yaml:"op"`
}

func (r AgeRange) String() string {
	switch r.Op {
	case "<":
		return fmt.Sprintf("<%d", r.End)
	case ">":
		return fmt.Sprintf(">%d", r.Start-1)
	default:
		if r.Start == r.End {
			return fmt.Sprintf("%d", r.Start)
		}
		return fmt.Sprintf("%d-%d", r.Start, r.End)
	}
}

// AgeMatch holds the findings for one age band: the document age
// expressions that overlap the band plus any matched synonym surfaces.
type AgeMatch struct {
	Ranges   []AgeRange `json:"ranges" yaml:"ranges"`
	Synonyms []string   `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
}

// IsEmpty reports whether the band matched nothing.
func (m AgeMatch) IsEmpty() bool {
	return len(m.Ranges) == 0
}

func (m AgeMatch) String() string {
	parts := make([]string, 0, len(m.Ranges)+len(m.Synonyms))
	for _, r := range m.Ranges {
		parts = append(parts, r.String())
	}
	parts = append(parts, m.Synonyms...)
	return strings.Join(parts, ", ")
}

// GenderDist maps lowercased gender terms to percentages within one
// paragraph block.
type GenderDist map[string]int

func (d GenderDist) String() string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k, d[k]))
	}
	return strings.Join(parts, " ")
}

// Efficacy is one vaccine-efficacy statistic: "<keyword> was VE% (low-high)".
type Efficacy struct {
	Keyword string  `json:"keyword" yaml:"keyword"`
	VE      float64 `json:"VE" yaml:"VE"`
	CILow   float64 `json:"ci_low" yaml:"ci_low"`
	CIHigh  float64 `json:"ci_high" yaml:"ci_high"`
	Context string  `json:"context" yaml:"context"`
}

func (e Efficacy) String() string {
	return fmt.Sprintf("%s %g%% (%g-%g)", e.Keyword, e.VE, e.CILow, e.CIHigh)
}

// PopulationSize is a cohort-size finding: an indicator term followed by
// the first numeric group after it.
type PopulationSize struct {
	Indicator   string `json:"indicator" yaml:"indicator"`
	Populations int    `json:"populations" yaml:"populations"`
}

func (p PopulationSize) String() string {
	return fmt.Sprintf("%s: %d", p.Indicator, p.Populations)
}
