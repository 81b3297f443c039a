// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tagger

import (
	"regexp"
	"strconv"

	"github.com/meshintel/vaxlit/internal/vocab"
	"github.com/meshintel/vaxlit/pkg/types"
)

// maxAge is the sentinel upper bound for open-ended "greater than" ranges.
const maxAge = 1_000_000

// Age expression patterns. Matching runs against the lowercased document,
// so the patterns are case-sensitive lowercase. Ranges are tried before
// single values; spans already claimed by a range mask the singles inside
// them ("5 to 9 years" must not also yield "9 years").
var (
	// "5 to 9 years", "5-9 yrs", "5 - 9 years", "12to15 yrs"
	ageRangeRe = regexp.MustCompile(`\b(\d+)\s*(?:to|[-–])\s*(\d+)\s*(?:years?|yrs?)\b`)

	// "ages 5 to 9", "ages 5-9" (no unit required)
	agesPrefixRe = regexp.MustCompile(`\bages?\s+(\d+)\s*(?:to|[-–])\s*(\d+)\b`)

	// "less than 18 years", "younger than 18 yrs"
	ageLessRe = regexp.MustCompile(`\b(?:less|younger)\s+than\s+(\d+)\s*(?:years?|yrs?)\b`)

	// "greater than 65 years", "older than 65 yrs", "> 65 years"
	ageGreaterRe = regexp.MustCompile(`(?:\b(?:greater|older|more)\s+than|>)\s*(\d+)\s*(?:years?|yrs?)\b`)

	// "18 years", "18 yrs", "18 age" (single value)
	ageSingleRe = regexp.MustCompile(`\b(\d+)\s*(?:years?|yrs?|age)\b`)
)

// span marks a claimed region of the document.
type span struct{ start, end int }

func overlapsAny(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}

// extractAges finds every age expression in the document and normalizes it
// to an AgeRange. Expressions with start > end are discarded. The result is
// deduplicated; order follows document position within each pattern class.
func extractAges(docLC string) []types.AgeRange {
	var (
		out     []types.AgeRange
		claimed []span
		seen    = make(map[types.AgeRange]bool)
	)

	add := func(r types.AgeRange, start, end int) {
		claimed = append(claimed, span{start, end})
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}

	for _, re := range []*regexp.Regexp{agesPrefixRe, ageRangeRe} {
		for _, m := range re.FindAllStringSubmatchIndex(docLC, -1) {
			start, err1 := strconv.Atoi(docLC[m[2]:m[3]])
			end, err2 := strconv.Atoi(docLC[m[4]:m[5]])
			if err1 != nil || err2 != nil || start > end {
				continue
			}
			add(types.AgeRange{Start: start, End: end, Op: "="}, m[0], m[1])
		}
	}

	for _, m := range ageLessRe.FindAllStringSubmatchIndex(docLC, -1) {
		n, err := strconv.Atoi(docLC[m[2]:m[3]])
		if err != nil {
			continue
		}
		add(types.AgeRange{Start: 0, End: n, Op: "<"}, m[0], m[1])
	}

	for _, m := range ageGreaterRe.FindAllStringSubmatchIndex(docLC, -1) {
		n, err := strconv.Atoi(docLC[m[2]:m[3]])
		if err != nil {
			continue
		}
		add(types.AgeRange{Start: n + 1, End: maxAge, Op: ">"}, m[0], m[1])
	}

	for _, m := range ageSingleRe.FindAllStringSubmatchIndex(docLC, -1) {
		if overlapsAny(claimed, m[0], m[1]) {
			continue
		}
		n, err := strconv.Atoi(docLC[m[2]:m[3]])
		if err != nil {
			continue
		}
		add(types.AgeRange{Start: n, End: n, Op: "="}, m[0], m[1])
	}

	return out
}

// bandOverlaps reports whether the expression interval intersects the band.
func bandOverlaps(r types.AgeRange, band vocab.Band) bool {
	switch r.Op {
	case "<":
		return r.End >= band.Low
	case ">":
		return r.Start <= band.High
	default:
		return r.Start <= band.High && r.End >= band.Low
	}
}

// agesForBand filters extracted expressions down to those overlapping the
// band declared by an age-group item key.
func agesForBand(exprs []types.AgeRange, band vocab.Band) []types.AgeRange {
	var out []types.AgeRange
	for _, r := range exprs {
		if bandOverlaps(r, band) {
			out = append(out, r)
		}
	}
	return out
}
