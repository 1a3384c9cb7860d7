package analysis

import (
	"regexp"
	"strings"
)

// tokenPattern matches one maximal run of ASCII letters, digits, or
// apostrophes. Everything else separates tokens.
var tokenPattern = regexp.MustCompile(`[a-z0-9']+`)

// Tokenize lowercases text and extracts its tokens. Punctuation, whitespace,
// and any character outside the token alphabet act purely as separators.
// Empty input yields no tokens.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
