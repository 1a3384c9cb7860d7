package analysis

import (
	"wordmill/internal/stopwords"
)

// DefaultMinTokenLength is the shortest token the filter keeps by default.
const DefaultMinTokenLength = 3

// Filter returns the subsequence of tokens that are neither stopwords nor
// shorter than minLen. Relative order is preserved; the input slice is not
// modified. Tokens are ASCII by construction, so byte length equals rune
// length here.
func Filter(tokens []string, stops *stopwords.Set, minLen int) []string {
	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < minLen {
			continue
		}
		if stops.Contains(tok) {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}
