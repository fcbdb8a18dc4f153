package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed medical_keywords.json
var defaultKeywords []byte

// Taxonomy is an immutable mapping from category names to the keyword
// phrases that identify them in free text. It is loaded once at startup and
// shared read-only by the extractor and profile builder.
type Taxonomy struct {
	categories map[string][]string
	names      []string
}

// categoryEntry matches one value in the taxonomy JSON document:
//
//	{ "<category>": { "keywords": ["...", ...] }, ... }
type categoryEntry struct {
	Keywords []string `json:"keywords"`
}

// Load reads and parses a taxonomy JSON file. A missing or malformed file is
// a hard error: scoring with a partial taxonomy silently degrades every
// downstream score, so the operator has to see this before any matching runs.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	tax, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy file %s: %w", path, err)
	}
	return tax, nil
}

// Parse builds a Taxonomy from raw JSON.
func Parse(data []byte) (*Taxonomy, error) {
	var raw map[string]categoryEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("taxonomy defines no categories")
	}

	categories := make(map[string][]string, len(raw))
	names := make([]string, 0, len(raw))

	for name, entry := range raw {
		if len(entry.Keywords) == 0 {
			return nil, fmt.Errorf("category %q has no keywords", name)
		}

		// Keywords match as case-insensitive substrings; lowering them once
		// here keeps extraction to a single ToLower per input text.
		keywords := make([]string, 0, len(entry.Keywords))
		for _, kw := range entry.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			keywords = append(keywords, kw)
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("category %q has no usable keywords", name)
		}

		categories[name] = keywords
		names = append(names, name)
	}

	sort.Strings(names)

	return &Taxonomy{categories: categories, names: names}, nil
}

// Default returns the built-in medical/vascular research taxonomy.
func Default() *Taxonomy {
	tax, err := Parse(defaultKeywords)
	if err != nil {
		panic("taxonomy: embedded keyword file is invalid: " + err.Error())
	}
	return tax
}

// Categories returns all category names in sorted order.
func (t *Taxonomy) Categories() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// KeywordCount returns the number of keywords for a category, or 0 if the
// category does not exist.
func (t *Taxonomy) KeywordCount(category string) int {
	return len(t.categories[category])
}

// Keywords returns the keyword list for a category.
func (t *Taxonomy) Keywords(category string) []string {
	kws := t.categories[category]
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

// Stats returns the keyword count per category.
func (t *Taxonomy) Stats() map[string]int {
	stats := make(map[string]int, len(t.categories))
	for name, keywords := range t.categories {
		stats[name] = len(keywords)
	}
	return stats
}
