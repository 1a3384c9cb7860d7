package analysis

import (
	"slices"
)

// DefaultTopWords is how many ranked entries the tool keeps by default.
const DefaultTopWords = 15

// Entry is one ranked (token, count) pair.
type Entry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Rank counts occurrences per distinct token and returns the top n entries
// ordered by count descending, along with the full frequency table. Ties
// resolve by first appearance in tokens: the stable sort runs over entries
// laid out in first-seen order, so equal counts keep that order. n <= 0
// yields an empty ranked list; n larger than the number of distinct tokens
// yields all of them. Identical input always produces identical output.
func Rank(tokens []string, n int) ([]Entry, map[string]int) {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	entries := make([]Entry, 0, len(order))
	for _, tok := range order {
		entries = append(entries, Entry{Token: tok, Count: counts[tok]})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Count - a.Count
	})

	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n:n], counts
}
