package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// New returns the case-sensitive searcher, or the case-insensitive one when
// ignoreCase is set.
func New(ignoreCase bool) Searcher {
	if ignoreCase {
		return Func(SearchCaseInsensitive)
	}
	return Func(Search)
}

// Search returns every line of contents that contains query, case-sensitive.
// An empty query matches every line.
func Search(query, contents string) []string {
	var results []string
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive is like Search but case folds query and each line
// before comparing. The returned lines keep their original case.
//
// Folding is full Unicode case folding: it maps rune by rune with no context
// rules, and one rune may fold to several ("ß" folds to "ss"). Any line matched
// by Search is therefore also matched here.
func SearchCaseInsensitive(query, contents string) []string {
	fold := cases.Fold()
	query = fold.String(query)

	var results []string
	for _, line := range Lines(contents) {
		if strings.Contains(fold.String(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// Lines splits contents on newlines. A "\r\n" break counts as one break, a bare
// "\r" is kept, and a trailing newline does not yield an empty final line.
func Lines(contents string) []string {
	var lines []string
	for line := range strings.Lines(contents) {
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}
