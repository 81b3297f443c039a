// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"strings"

	"github.com/meshintel/vaxlit/pkg/types"
)

// Flatten reduces a tag map to scalar column values for persistence:
// list-valued findings become comma-joined strings, numeric totals stay
// numeric. Keys are left unsanitized; the store owns column naming.
func Flatten(tags types.TagMap) map[string]any {
	out := make(map[string]any, len(tags))
	for key, v := range tags {
		switch val := v.(type) {
		case []string:
			out[key] = strings.Join(val, ", ")
		case types.AgeMatch:
			out[key] = val.String()
		case []types.GenderDist:
			out[key] = joinStringers(val)
		case []types.Efficacy:
			out[key] = joinStringers(val)
		case []types.PopulationSize:
			out[key] = joinStringers(val)
		case int:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return out
}

func joinStringers[T fmt.Stringer](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ", ")
}
