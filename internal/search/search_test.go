package search

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

func TestSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		contents string
		want     []string
	}{
		{
			name:     "OneResult",
			query:    "duct",
			contents: "Rust:\nsafe, fast, productive.\nPick three.",
			want:     []string{"safe, fast, productive."},
		},
		{
			name:     "CaseSensitive",
			query:    "duct",
			contents: poem,
			want:     []string{"safe, fast, productive."},
		},
		{
			name:     "MultipleResultsKeepOrder",
			query:    "e",
			contents: poem,
			want:     []string{"safe, fast, productive.", "Pick three.", "Duct tape."},
		},
		{
			name:     "NoMatch",
			query:    "monkey",
			contents: poem,
			want:     nil,
		},
		{
			name:     "EmptyContents",
			query:    "duct",
			contents: "",
			want:     nil,
		},
		{
			name:     "EmptyQueryMatchesEveryLine",
			query:    "",
			contents: poem,
			want:     []string{"Rust:", "safe, fast, productive.", "Pick three.", "Duct tape."},
		},
		{
			name:     "CRLFLineBreaks",
			query:    "duct",
			contents: "Rust:\r\nsafe, fast, productive.\r\nPick three.\r\n",
			want:     []string{"safe, fast, productive."},
		},
		{
			name:     "KeepsSurroundingWhitespace",
			query:    "tape",
			contents: "  duct tape  \n",
			want:     []string{"  duct tape  "},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Search(tc.query, tc.contents)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Search(%q) mismatch (-want +got):\n%s", tc.query, diff)
			}
		})
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		contents string
		want     []string
	}{
		{
			name:     "FoldsQueryAndLine",
			query:    "rUsT",
			contents: "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.",
			want:     []string{"Rust:", "Trust me."},
		},
		{
			name:     "DuctMatchesBothCases",
			query:    "duct",
			contents: poem,
			want:     []string{"safe, fast, productive.", "Duct tape."},
		},
		{
			name:     "NonASCII",
			query:    "GRÜN",
			contents: "rot\ngrün\nblau",
			want:     []string{"grün"},
		},
		{
			name:     "FullFoldingSharpS",
			query:    "ss",
			contents: "Straße\nStrand",
			want:     []string{"Straße"},
		},
		{
			name:     "FullFoldingSharpSInQuery",
			query:    "STRASSE",
			contents: "straße\nstrasse\nstrand",
			want:     []string{"straße", "strasse"},
		},
		{
			name:     "EmptyQueryMatchesEveryLine",
			query:    "",
			contents: "a\nB\n",
			want:     []string{"a", "B"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := SearchCaseInsensitive(tc.query, tc.contents)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("SearchCaseInsensitive(%q) mismatch (-want +got):\n%s", tc.query, diff)
			}
		})
	}
}

func TestSearchProperties(t *testing.T) {
	t.Parallel()

	contents := strings.Join([]string{
		"Rust:",
		"safe, fast, productive.",
		"Pick three.",
		"Duct tape.",
		"Trust me.",
		"ΟΔΟΣ σοφίας",
		"",
		"STRASSE",
	}, "\n")
	queries := []string{"", "duct", "Duct", "rUsT", "e", "Σ", "ss", ".", "not there"}

	for _, query := range queries {
		exact := Search(query, contents)
		folded := SearchCaseInsensitive(query, contents)

		for _, line := range exact {
			if !strings.Contains(line, query) {
				t.Fatalf("Search(%q) returned non-matching line %q", query, line)
			}
		}
		if got, want := len(exact), countContaining(contents, query); got != want {
			t.Fatalf("Search(%q) returned %d lines, want %d", query, got, want)
		}
		if !isSubsequence(exact, folded) {
			t.Fatalf("SearchCaseInsensitive(%q) = %q is not a superset of Search = %q", query, folded, exact)
		}
		if diff := cmp.Diff(exact, Search(query, contents)); diff != "" {
			t.Fatalf("Search(%q) not deterministic:\n%s", query, diff)
		}
		if diff := cmp.Diff(folded, SearchCaseInsensitive(query, contents)); diff != "" {
			t.Fatalf("SearchCaseInsensitive(%q) not deterministic:\n%s", query, diff)
		}
	}

	if got, want := len(Search("", contents)), len(Lines(contents)); got != want {
		t.Fatalf("empty query matched %d lines, want all %d", got, want)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	contents := "Rust:\nTrust me."
	if got := New(false).Search("rust", contents); !cmp.Equal(got, []string{"Trust me."}) {
		t.Fatalf("case-sensitive searcher returned %q", got)
	}
	if got := New(true).Search("rust", contents); !cmp.Equal(got, []string{"Rust:", "Trust me."}) {
		t.Fatalf("case-insensitive searcher returned %q", got)
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contents string
		want     []string
	}{
		{contents: "", want: nil},
		{contents: "one", want: []string{"one"}},
		{contents: "one\n", want: []string{"one"}},
		{contents: "one\ntwo", want: []string{"one", "two"}},
		{contents: "one\n\ntwo\n", want: []string{"one", "", "two"}},
		{contents: "\n", want: []string{""}},
		{contents: "one\r\ntwo\r\n", want: []string{"one", "two"}},
		{contents: "one\rtwo", want: []string{"one\rtwo"}},
		{contents: "tail\r", want: []string{"tail\r"}},
	}

	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, Lines(tc.contents)); diff != "" {
			t.Fatalf("Lines(%q) mismatch (-want +got):\n%s", tc.contents, diff)
		}
	}
}

func countContaining(contents, query string) int {
	n := 0
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			n++
		}
	}
	return n
}

// isSubsequence reports whether every element of sub appears in seq in the same order.
func isSubsequence(sub, seq []string) bool {
	i := 0
	for _, s := range seq {
		if i < len(sub) && sub[i] == s {
			i++
		}
	}
	return i == len(sub)
}

func BenchmarkSearch(b *testing.B) {
	contents := strings.Repeat(poem+"\n", 10_000)
	for i := 0; i < b.N; i++ {
		_ = Search("duct", contents)
	}
}

func BenchmarkSearchCaseInsensitive(b *testing.B) {
	contents := strings.Repeat(poem+"\n", 10_000)
	for i := 0; i < b.N; i++ {
		_ = SearchCaseInsensitive("duct", contents)
	}
}
