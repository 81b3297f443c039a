// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab defines the controlled research vocabulary: a three-level
// tree of category, subcategory, and item, with term lists at the leaves.
// The vocabulary is immutable after load; term patterns are compiled once
// here, not per document.
package vocab

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Kind selects the extractor for a subcategory. The set is closed: adding
// a specialized extractor means adding a constant and one row in kindFor.
type Kind int

const (
	KindGeneric Kind = iota
	KindAgeGroup
	KindStudyCount
	KindGenderDist
	KindEfficacy
	KindPopulationSize
)

func (k Kind) String() string {
	switch k {
	case KindAgeGroup:
		return "age_group"
	case KindStudyCount:
		return "study_count"
	case KindGenderDist:
		return "gender_dist"
	case KindEfficacy:
		return "efficacy"
	case KindPopulationSize:
		return "population_size"
	default:
		return "generic"
	}
}

// kindFor maps a (category, subcategory) pair to its extractor.
func kindFor(category, subcategory string) Kind {
	switch category + "#" + subcategory {
	case "population#age_group":
		return KindAgeGroup
	case "studies#no_of_studies":
		return KindStudyCount
	case "gender#group":
		return KindGenderDist
	case "topic#efficacy_effectiveness":
		return KindEfficacy
	case "population#group":
		return KindPopulationSize
	default:
		return KindGeneric
	}
}

// TermEntry is one vocabulary leaf entry: a matched surface phrase and an
// optional canonical short-code (e.g. "health care workers" / "HCW").
type TermEntry struct {
	Surface string
	Code    string
}

// UnmarshalYAML accepts either a plain scalar ("children") or a two-element
// sequence (["health care workers", "HCW"]).
func (t *TermEntry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		t.Surface = value.Value
		return nil
	case yaml.SequenceNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("term pair must have exactly 2 elements, got %d", len(value.Content))
		}
		t.Surface = value.Content[0].Value
		t.Code = value.Content[1].Value
		return nil
	default:
		return fmt.Errorf("term entry must be a string or a [surface, code] pair")
	}
}

// MarshalYAML renders pairs back as two-element sequences.
func (t TermEntry) MarshalYAML() (any, error) {
	if t.Code == "" {
		return t.Surface, nil
	}
	return []string{t.Surface, t.Code}, nil
}

// Band is the inclusive numeric age range encoded by an age-group item key
// (e.g. "chi_2_9" declares [2, 9]).
type Band struct {
	Low  int
	High int
}

// Item is one vocabulary leaf: an item key, its term entries, and the
// patterns compiled from them. Patterns[i] matches Terms[i].Surface as a
// whole word against a lowercased document.
type Item struct {
	Key      string
	Terms    []TermEntry
	Band     *Band
	Patterns []*regexp.Regexp
}

// Subcategory groups items under one extractor kind.
type Subcategory struct {
	Key   string
	Kind  Kind
	Items []Item
}

// Category is the top level of the tree.
type Category struct {
	Key           string
	Subcategories []Subcategory
}

// Vocabulary is the full tree. Read-only after New; safe for concurrent use.
type Vocabulary struct {
	Categories []Category
}

// Raw is the declarative form of the vocabulary, as parsed from YAML or
// declared in source (see defaults.go).
type Raw map[string]map[string]map[string][]TermEntry

// bandDigits extracts the integers embedded in an age-group item key.
var bandDigits = regexp.MustCompile(`\d+`)

// New builds and validates a Vocabulary from its declarative form.
// Categories, subcategories, and items are ordered by key so that
// iteration order is stable across loads.
func New(raw Raw) (*Vocabulary, error) {
	v := &Vocabulary{}

	for _, catKey := range sortedKeys(raw) {
		cat := Category{Key: catKey}
		for _, subKey := range sortedKeys(raw[catKey]) {
			sub := Subcategory{Key: subKey, Kind: kindFor(catKey, subKey)}
			for _, itemKey := range sortedKeys(raw[catKey][subKey]) {
				item, err := buildItem(sub.Kind, itemKey, raw[catKey][subKey][itemKey])
				if err != nil {
					return nil, fmt.Errorf("vocabulary: %s.%s.%s: %w", catKey, subKey, itemKey, err)
				}
				sub.Items = append(sub.Items, item)
			}
			cat.Subcategories = append(cat.Subcategories, sub)
		}
		v.Categories = append(v.Categories, cat)
	}

	return v, nil
}

// MustNew is New for vocabularies known valid at compile time.
func MustNew(raw Raw) *Vocabulary {
	v, err := New(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Default returns the builtin vocabulary.
func Default() *Vocabulary {
	return MustNew(builtin)
}

// Load reads a YAML vocabulary file. The file replaces the builtin
// vocabulary wholesale; malformed files are fatal at load time.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: reading %s: %w", path, err)
	}
	var raw Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("vocabulary: parsing %s: %w", path, err)
	}
	return New(raw)
}

// MarshalRaw renders the vocabulary back to its declarative form, for
// the vocab subcommand's YAML dump.
func (v *Vocabulary) MarshalRaw() Raw {
	raw := make(Raw)
	for _, cat := range v.Categories {
		raw[cat.Key] = make(map[string]map[string][]TermEntry)
		for _, sub := range cat.Subcategories {
			raw[cat.Key][sub.Key] = make(map[string][]TermEntry)
			for _, item := range sub.Items {
				raw[cat.Key][sub.Key][item.Key] = item.Terms
			}
		}
	}
	return raw
}

func buildItem(kind Kind, key string, terms []TermEntry) (Item, error) {
	item := Item{Key: key, Terms: terms}

	if kind == KindAgeGroup {
		band, err := parseBand(key)
		if err != nil {
			return Item{}, err
		}
		item.Band = band
	}

	for _, t := range terms {
		if strings.TrimSpace(t.Surface) == "" {
			return Item{}, fmt.Errorf("empty term surface")
		}
		// Surfaces are literal phrases; escape before compiling.
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(t.Surface)) + `\b`)
		if err != nil {
			return Item{}, fmt.Errorf("compiling term %q: %w", t.Surface, err)
		}
		item.Patterns = append(item.Patterns, re)
	}

	return item, nil
}

// parseBand reads the [low, high] band from an age-group item key. The key
// must contain exactly two integers with low <= high.
func parseBand(key string) (*Band, error) {
	nums := bandDigits.FindAllString(key, -1)
	if len(nums) != 2 {
		return nil, fmt.Errorf("age-group key must contain exactly two integers, found %d", len(nums))
	}
	var low, high int
	fmt.Sscanf(nums[0], "%d", &low)
	fmt.Sscanf(nums[1], "%d", &high)
	if low > high {
		return nil, fmt.Errorf("age-group band [%d, %d] has low > high", low, high)
	}
	return &Band{Low: low, High: high}, nil
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
