// Package naming provides the default collection name suggester.
package naming

import "fmt"

// Suggester derives an unused name from a base by appending a counter:
// "Work", "Work (2)", "Work (3)", ...
type Suggester struct{}

// NewSuggester creates the default suggester.
func NewSuggester() *Suggester {
	return &Suggester{}
}

// Suggest returns base itself if free, otherwise the first counted variant
// the taken predicate rejects.
func (s *Suggester) Suggest(base string, taken func(string) bool) string {
	if base == "" {
		base = "Untitled"
	}
	if !taken(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s (%d)", base, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
