// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tagger

import "github.com/meshintel/vaxlit/internal/vocab"

// matchItem tests each of the item's terms for whole-word presence in the
// lowercased document. It returns the matched surfaces, with short-codes
// emitted alongside their surface, deduplicated in term-list order.
func matchItem(docLC string, item vocab.Item) []string {
	seen := make(map[string]bool)
	var out []string
	for i, term := range item.Terms {
		if i >= len(item.Patterns) || !item.Patterns[i].MatchString(docLC) {
			continue
		}
		if !seen[term.Surface] {
			seen[term.Surface] = true
			out = append(out, term.Surface)
		}
		if term.Code != "" && !seen[term.Code] {
			seen[term.Code] = true
			out = append(out, term.Code)
		}
	}
	return out
}
