// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking labelled items
// ABOUTME: Results are the caller's item indexes so they map back to history positions

package fuzzy

import "github.com/sahilm/fuzzy"

// labels adapts a label func to fuzzy.Source.
type labels struct {
	n     int
	label func(i int) string
}

func (l labels) String(i int) string { return l.label(i) }
func (l labels) Len() int            { return l.n }

// FindFunc ranks n items whose text is produced by label and returns the
// matching item indexes, best first. An empty pattern matches nothing.
func FindFunc(pattern string, n int, label func(i int) string) []int {
	if pattern == "" || n == 0 {
		return nil
	}
	results := fuzzy.FindFrom(pattern, labels{n: n, label: label})
	idx := make([]int, len(results))
	for i, r := range results {
		idx[i] = r.Index
	}
	return idx
}

// Best returns the top-ranked item index, or false if nothing matched.
func Best(pattern string, n int, label func(i int) string) (int, bool) {
	idx := FindFunc(pattern, n, label)
	if len(idx) == 0 {
		return 0, false
	}
	return idx[0], true
}
