package search

import "strings"

// Searchable is implemented by anything that can be matched by Filter.
type Searchable interface {
	SearchFields() []string
}

// Normalize collapses Unicode whitespace runs to one space, trims and
// lower-cases.
func Normalize(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// Filter returns the items whose search fields contain the normalized query
// as a case-insensitive substring, in source order. A blank query yields an
// empty result, never the whole collection.
func Filter[T Searchable](items []T, query string) []T {
	q := Normalize(query)
	out := make([]T, 0)
	if q == "" {
		return out
	}
	for _, it := range items {
		for _, f := range it.SearchFields() {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
