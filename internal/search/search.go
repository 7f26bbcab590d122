// Package search implements the fuzzy text matching used to narrow
// transaction lists by free-text queries.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Matching tolerance grows with the query: one typo for short queries,
// roughly one per three characters for longer ones.
const toleranceRatio = 0.35

// stripMarks decomposes accented characters and removes the combining marks,
// so "Café" normalizes to "Cafe".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize folds a string for comparison: diacritics stripped, lower-cased,
// surrounding whitespace trimmed.
func Normalize(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Malformed input falls back to the raw string.
		folded = s
	}

	return strings.TrimSpace(strings.ToLower(folded))
}

// Distance computes the Levenshtein edit distance between a and b:
// the minimum number of single-rune insertions, deletions, or
// substitutions transforming one into the other.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
		matrix[i][0] = i
	}

	for j := 0; j <= len(rb); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}

// Matches reports whether candidate fuzzily matches query.
//
// The empty query matches everything; an empty candidate matches nothing
// else. Both sides are normalized before comparison. A contained substring
// is always a match; otherwise the edit distance must stay within a
// tolerance proportional to the query length.
func Matches(candidate, query string) bool {
	if query == "" {
		return true
	}

	if candidate == "" {
		return false
	}

	normCandidate := Normalize(candidate)
	normQuery := Normalize(query)

	if normQuery == "" {
		return true
	}

	if strings.Contains(normCandidate, normQuery) {
		return true
	}

	tolerance := max(1, int(float64(len([]rune(normQuery)))*toleranceRatio))

	return Distance(normCandidate, normQuery) <= tolerance
}
