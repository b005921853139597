package search

// Searcher describes the behaviour required from a line searcher.
type Searcher interface {
	Search(query, contents string) []string
}

// Func adapts a plain search function to the Searcher interface.
type Func func(query, contents string) []string

// Search calls f(query, contents).
func (f Func) Search(query, contents string) []string {
	return f(query, contents)
}
