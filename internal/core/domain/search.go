package domain

// MatchResult pairs one matching item with the start offsets of every
// occurrence of the search pattern inside it.
type MatchResult[T any] struct {
	Item    T     `json:"item"`
	Indexes []int `json:"indexes"`
}

// SearchResult collects all items that matched a pattern at least once.
// Non-matching items never appear.
type SearchResult[T any] struct {
	Pattern string           `json:"pattern"`
	Matches []MatchResult[T] `json:"matches"`
}

func NewSearchResult[T any](pattern string) *SearchResult[T] {
	return &SearchResult[T]{Pattern: pattern, Matches: []MatchResult[T]{}}
}

func (r *SearchResult[T]) AddMatch(item T, indexes []int) {
	r.Matches = append(r.Matches, MatchResult[T]{Item: item, Indexes: indexes})
}

func (r *SearchResult[T]) HasMatches() bool {
	return len(r.Matches) > 0
}

// CountMatches returns the total number of match positions across all items.
func (r *SearchResult[T]) CountMatches() int {
	n := 0
	for _, m := range r.Matches {
		n += len(m.Indexes)
	}
	return n
}
