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

// efficacyScanner extracts "<keyword> was X% (L-U)" vaccine-efficacy
// statistics. Keywords come from the vocabulary; one combined pattern per
// load, longest keyword first so "vaccine efficacy" consumes the match
// before the bare "efficacy" alternative can.
type efficacyScanner struct {
	re *regexp.Regexp
}

func newEfficacyScanner(item vocab.Item) *efficacyScanner {
	alts := make([]string, 0, len(item.Terms))
	for _, t := range item.Terms {
		alts = append(alts, regexp.QuoteMeta(strings.ToLower(t.Surface)))
	}
	sort.Slice(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	return &efficacyScanner{
		re: regexp.MustCompile(
			`\b(` + strings.Join(alts, "|") + `)\s+was\s+(\d+(?:\.\d+)?)\s*%\s*\(\s*(\d+(?:\.\d+)?)\s*[-–]\s*(\d+(?:\.\d+)?)\s*\)`),
	}
}

// scan returns one Efficacy record per match, with a snippet of the
// surrounding text as context.
func (s *efficacyScanner) scan(docLC string) []types.Efficacy {
	var out []types.Efficacy
	for _, m := range s.re.FindAllStringSubmatchIndex(docLC, -1) {
		keyword := docLC[m[2]:m[3]]
		ve, err1 := strconv.ParseFloat(docLC[m[4]:m[5]], 64)
		low, err2 := strconv.ParseFloat(docLC[m[6]:m[7]], 64)
		high, err3 := strconv.ParseFloat(docLC[m[8]:m[9]], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		out = append(out, types.Efficacy{
			Keyword: keyword,
			VE:      ve,
			CILow:   low,
			CIHigh:  high,
			Context: snippet(docLC, m[0], m[1]),
		})
	}
	return out
}

// snippet returns up to 40 characters of context either side of a match,
// trimmed to word boundaries.
func snippet(text string, start, end int) string {
	const window = 40
	ctxStart := start - window
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := end + window
	if ctxEnd > len(text) {
		ctxEnd = len(text)
	}
	s := text[ctxStart:ctxEnd]
	if ctxStart > 0 {
		if i := strings.IndexByte(s, ' '); i >= 0 && i < window {
			s = s[i+1:]
		}
	}
	if ctxEnd < len(text) {
		if i := strings.LastIndexByte(s, ' '); i >= 0 && i > len(s)-window {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
