// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tagger

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/meshintel/vaxlit/internal/vocab"
)

// rctNormRe collapses the RCT phrasing variants to the single token "rct"
// before scanning, so "3 randomised controlled trials" counts as "3 RCT".
var rctNormRe = regexp.MustCompile(`\brandomi[sz]ed\s+(?:controlled|clinical)\s+trials?\b|\brcts?\b`)

// spelledNumbers maps spelled-out counts to values. "a" covers phrasings
// like "a thousand studies".
var spelledNumbers = map[string]int{
	"a": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20,
}

var multipliers = map[string]int{
	"thousand": 1_000,
	"million":  1_000_000,
	"billion":  1_000_000_000,
	"trillion": 1_000_000_000_000,
}

const (
	spelledAlt    = `a|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty`
	multiplierAlt = `thousand|million|billion|trillion`
)

// studyCounts bundles one scan's study-count findings.
type studyCounts struct {
	Entries      []string // all unique "<n> <term>" entries, studies and RCTs
	RCTs         []string // unique "<n> RCT" entries
	TotalStudies int      // sum over unique non-RCT entries
	TotalRCTs    int      // sum over unique RCT entries
}

// studyTerm holds the patterns compiled for one vocabulary study term.
type studyTerm struct {
	isRCT     bool
	digitRe   *regexp.Regexp
	spelledRe *regexp.Regexp
}

// studyScanner counts "<number> <study-term>" phrases. Patterns compile
// once per vocabulary load.
type studyScanner struct {
	terms []studyTerm
}

// newStudyScanner builds scanners for the item's terms. Terms are
// normalized the same way as documents, so "randomized controlled trial"
// in the vocabulary scans for the "rct" token.
func newStudyScanner(item vocab.Item) *studyScanner {
	s := &studyScanner{}
	seen := make(map[string]bool)
	for _, t := range item.Terms {
		norm := rctNormRe.ReplaceAllString(strings.ToLower(t.Surface), "rct")
		if seen[norm] {
			continue
		}
		seen[norm] = true
		pat := pluralizedPattern(norm)
		s.terms = append(s.terms, studyTerm{
			isRCT:     norm == "rct",
			digitRe:   regexp.MustCompile(`\b(\d+)\s+(` + pat + `)\b`),
			spelledRe: regexp.MustCompile(`\b(` + spelledAlt + `)(?:\s+(` + multiplierAlt + `))?\s+(` + pat + `)\b`),
		})
	}
	return s
}

// pluralizedPattern turns a term into a pattern that also matches its
// plural: the final word gets "s?", or "(?:y|ies)" for -y words.
func pluralizedPattern(term string) string {
	words := strings.Fields(term)
	var parts []string
	for i, w := range words {
		quoted := regexp.QuoteMeta(w)
		if i == len(words)-1 {
			if strings.HasSuffix(w, "y") {
				quoted = regexp.QuoteMeta(w[:len(w)-1]) + `(?:y|ies)`
			} else if w != "rct" {
				quoted += `s?`
			}
		}
		parts = append(parts, quoted)
	}
	return strings.Join(parts, `\s+`)
}

// scan counts study mentions in the document. The document is split on
// periods first so spelled multipliers bind within one sentence. Entries
// are deduplicated before summation.
func (s *studyScanner) scan(docLC string) studyCounts {
	norm := rctNormRe.ReplaceAllString(docLC, "rct")
	sentences := strings.Split(norm, ".")

	var (
		counts studyCounts
		seen   = make(map[string]bool)
	)

	emit := func(value int, termText string, isRCT bool) {
		if value <= 0 {
			return
		}
		display := termText
		if isRCT {
			display = "RCT"
		}
		entry := fmt.Sprintf("%d %s", value, display)
		if seen[entry] {
			return
		}
		seen[entry] = true
		counts.Entries = append(counts.Entries, entry)
		if isRCT {
			counts.RCTs = append(counts.RCTs, entry)
			counts.TotalRCTs += value
		} else {
			counts.TotalStudies += value
		}
	}

	for _, sentence := range sentences {
		for _, t := range s.terms {
			for _, m := range t.digitRe.FindAllStringSubmatch(sentence, -1) {
				v, err := strconv.Atoi(m[1])
				if err != nil {
					continue
				}
				emit(v, m[2], t.isRCT)
			}
			for _, m := range t.spelledRe.FindAllStringSubmatch(sentence, -1) {
				v, ok := spelledNumbers[m[1]]
				if !ok {
					continue
				}
				if m[2] != "" {
					v *= multipliers[m[2]]
				}
				emit(v, m[3], t.isRCT)
			}
		}
	}

	return counts
}
