package taxonomy

import (
	"encoding/json"
	"sort"
	"strings"
)

// CategorySet is a set of taxonomy category names.
type CategorySet map[string]struct{}

// NewCategorySet builds a set from the given names.
func NewCategorySet(names ...string) CategorySet {
	s := make(CategorySet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts a category into the set.
func (s CategorySet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether the set contains the category.
func (s CategorySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of categories in the set.
func (s CategorySet) Len() int {
	return len(s)
}

// Union returns a new set containing the members of both sets.
func (s CategorySet) Union(other CategorySet) CategorySet {
	out := make(CategorySet, len(s)+len(other))
	for name := range s {
		out.Add(name)
	}
	for name := range other {
		out.Add(name)
	}
	return out
}

// Sorted returns the category names in sorted order.
func (s CategorySet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s CategorySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// Extract returns the set of categories whose keywords occur as
// case-insensitive substrings of the text. A category counts at most once no
// matter how many of its keywords match. Empty text yields an empty set;
// this function never fails.
func (t *Taxonomy) Extract(text string) CategorySet {
	found := make(CategorySet)
	if text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for name, keywords := range t.categories {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				found.Add(name)
				break
			}
		}
	}

	return found
}
