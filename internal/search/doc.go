// Package search filters text contents line by line. Matching is a plain
// substring test, either exact or after locale-independent lowercasing of both
// the query and the candidate line. Returned lines are substrings of the input
// contents in their original order and case.
package search
