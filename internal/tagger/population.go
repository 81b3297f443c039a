// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tagger

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/meshintel/vaxlit/internal/vocab"
	"github.com/meshintel/vaxlit/pkg/types"
)

// populationScanner finds cohort-size statements: an indicator term from
// the vocabulary followed, within a short window, by a number. Only the
// first unbroken digit group counts, so "4,500 were enrolled" after
// "participants" yields 4. That first-group reading is the established
// contract for downstream consumers; do not widen it here.
type populationScanner struct {
	re *regexp.Regexp
}

func newPopulationScanner(item vocab.Item) *populationScanner {
	alts := make([]string, 0, len(item.Terms))
	for _, t := range item.Terms {
		alts = append(alts, regexp.QuoteMeta(strings.ToLower(t.Surface)))
	}
	return &populationScanner{
		re: regexp.MustCompile(`\b(` + strings.Join(alts, "|") + `)\b[^0-9]{0,60}?(\d+)`),
	}
}

// scan returns one PopulationSize record per match, deduplicated.
func (s *populationScanner) scan(docLC string) []types.PopulationSize {
	var out []types.PopulationSize
	seen := make(map[types.PopulationSize]bool)
	for _, m := range s.re.FindAllStringSubmatch(docLC, -1) {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		p := types.PopulationSize{Indicator: m[1], Populations: n}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
