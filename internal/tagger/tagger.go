// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tagger implements the deterministic tagging engine: given a
// document and the vocabulary, it produces a map of composite
// "category#subcategory#item" keys to matched terms and typed findings.
// The engine does no I/O and holds no state across Tag calls, so one
// Engine may tag independent documents concurrently.
package tagger

import (
	"fmt"
	"io"
	"strings"

	"github.com/meshintel/vaxlit/internal/vocab"
	"github.com/meshintel/vaxlit/pkg/types"
)

// Key builds the composite tag-map key for a vocabulary leaf.
func Key(category, subcategory, item string) string {
	return category + "#" + subcategory + "#" + item
}

// Engine tags documents against one vocabulary. Specialized scanners are
// compiled once at construction; the vocabulary is not consulted for
// pattern compilation after New.
type Engine struct {
	v    *vocab.Vocabulary
	warn io.Writer

	studies     map[string]*studyScanner
	genders     map[string]*genderScanner
	efficacies  map[string]*efficacyScanner
	populations map[string]*populationScanner
}

// New builds an Engine for the vocabulary. Extractor warnings are written
// to warn; pass nil to discard them.
func New(v *vocab.Vocabulary, warn io.Writer) *Engine {
	if warn == nil {
		warn = io.Discard
	}
	e := &Engine{
		v:           v,
		warn:        warn,
		studies:     make(map[string]*studyScanner),
		genders:     make(map[string]*genderScanner),
		efficacies:  make(map[string]*efficacyScanner),
		populations: make(map[string]*populationScanner),
	}

	for _, cat := range v.Categories {
		for _, sub := range cat.Subcategories {
			for _, item := range sub.Items {
				key := Key(cat.Key, sub.Key, item.Key)
				switch sub.Kind {
				case vocab.KindStudyCount:
					e.studies[key] = newStudyScanner(item)
				case vocab.KindGenderDist:
					e.genders[key] = newGenderScanner(item)
				case vocab.KindEfficacy:
					e.efficacies[key] = newEfficacyScanner(item)
				case vocab.KindPopulationSize:
					e.populations[key] = newPopulationScanner(item)
				}
			}
		}
	}
	return e
}

// Tag classifies one document. The document is lowercased once; every
// extractor works on the lowered copy. Empty findings are never added, so
// every key present in the result has a non-empty value. A panicking
// extractor contributes nothing and the rest continue.
func (e *Engine) Tag(doc string) types.TagMap {
	docLC := strings.ToLower(doc)
	tags := make(types.TagMap)

	var (
		ageExprs []types.AgeRange
		agesDone bool
	)

	for _, cat := range e.v.Categories {
		for _, sub := range cat.Subcategories {
			e.guard(cat.Key+"#"+sub.Key, func() {
				switch sub.Kind {
				case vocab.KindAgeGroup:
					if !agesDone {
						ageExprs = extractAges(docLC)
						agesDone = true
					}
					for _, item := range sub.Items {
						ranges := agesForBand(ageExprs, *item.Band)
						if len(ranges) == 0 {
							continue
						}
						tags[Key(cat.Key, sub.Key, item.Key)] = types.AgeMatch{
							Ranges:   ranges,
							Synonyms: matchItem(docLC, item),
						}
					}

				case vocab.KindStudyCount:
					for _, item := range sub.Items {
						counts := e.studies[Key(cat.Key, sub.Key, item.Key)].scan(docLC)
						if len(counts.Entries) == 0 {
							continue
						}
						tags[Key(cat.Key, sub.Key, item.Key)] = counts.Entries
						tags[types.KeyTotalStudyCount] = counts.TotalStudies
						tags[types.KeyTotalRCTCount] = counts.TotalRCTs
						if len(counts.RCTs) > 0 {
							tags[types.KeyRCTCounts] = counts.RCTs
						}
					}

				case vocab.KindGenderDist:
					for _, item := range sub.Items {
						if dists := e.genders[Key(cat.Key, sub.Key, item.Key)].scan(docLC); len(dists) > 0 {
							tags[Key(cat.Key, sub.Key, item.Key)] = dists
						}
					}

				case vocab.KindEfficacy:
					for _, item := range sub.Items {
						if recs := e.efficacies[Key(cat.Key, sub.Key, item.Key)].scan(docLC); len(recs) > 0 {
							tags[Key(cat.Key, sub.Key, item.Key)] = recs
						}
					}

				case vocab.KindPopulationSize:
					for _, item := range sub.Items {
						if recs := e.populations[Key(cat.Key, sub.Key, item.Key)].scan(docLC); len(recs) > 0 {
							tags[Key(cat.Key, sub.Key, item.Key)] = recs
						}
					}

				default:
					for _, item := range sub.Items {
						if matched := matchItem(docLC, item); len(matched) > 0 {
							tags[Key(cat.Key, sub.Key, item.Key)] = matched
						}
					}
				}
			})
		}
	}

	return tags
}

// guard isolates one extractor dispatch: a panic is logged as a warning
// and the remaining extractors run normally.
func (e *Engine) guard(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(e.warn, "warning: extractor %s failed: %v\n", name, r)
		}
	}()
	fn()
}
