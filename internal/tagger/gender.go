// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tagger

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/meshintel/vaxlit/internal/vocab"
	"github.com/meshintel/vaxlit/pkg/types"
)

// blockSplitRe separates paragraph blocks on blank lines.
var blockSplitRe = regexp.MustCompile(`\n[ \t]*\n`)

// genderScanner extracts "<percent>% <gender-term>" pairs per paragraph
// block. One combined pattern per vocabulary load.
type genderScanner struct {
	re *regexp.Regexp
}

func newGenderScanner(item vocab.Item) *genderScanner {
	alts := make([]string, 0, len(item.Terms))
	for _, t := range item.Terms {
		alts = append(alts, regexp.QuoteMeta(strings.ToLower(t.Surface)))
	}
	// Longer terms first so "non-binary" wins over any prefix term.
	sort.Slice(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	return &genderScanner{
		re: regexp.MustCompile(`\b(\d+)\s*%\s*(` + strings.Join(alts, "|") + `)\b`),
	}
}

// scan returns one GenderDist per block that contains at least one pair,
// in block order. Blocks with no matches contribute nothing.
func (s *genderScanner) scan(docLC string) []types.GenderDist {
	var out []types.GenderDist
	for _, block := range blockSplitRe.Split(docLC, -1) {
		var dist types.GenderDist
		for _, m := range s.re.FindAllStringSubmatch(block, -1) {
			pct, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if dist == nil {
				dist = make(types.GenderDist)
			}
			dist[m[2]] = pct
		}
		if dist != nil {
			out = append(out, dist)
		}
	}
	return out
}
