package analysis

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kljensen/snowball"
)

// StemmerLanguages lists the languages the snowball stemmer supports.
var StemmerLanguages = []string{
	"english", "french", "hungarian", "norwegian", "russian", "spanish", "swedish",
}

// Stemmer folds inflected tokens onto their snowball stems. A nil *Stemmer
// is valid and stems nothing.
type Stemmer struct {
	language string
}

// NewStemmer builds a stemmer for the named language.
func NewStemmer(language string) (*Stemmer, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if !slices.Contains(StemmerLanguages, language) {
		return nil, fmt.Errorf("unsupported stemmer language %q (available: %s)",
			language, strings.Join(StemmerLanguages, ", "))
	}
	return &Stemmer{language: language}, nil
}

// Language reports the configured stemmer language.
func (s *Stemmer) Language() string {
	if s == nil {
		return ""
	}
	return s.language
}

// Stem returns the stem of token, or the token unchanged when stemming
// fails or produces nothing.
func (s *Stemmer) Stem(token string) string {
	if s == nil {
		return token
	}
	stemmed, err := snowball.Stem(token, s.language, true)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}

// StemAll maps every token through the stemmer, returning a fresh slice.
// A nil stemmer returns the input unchanged.
func (s *Stemmer) StemAll(tokens []string) []string {
	if s == nil || len(tokens) == 0 {
		return tokens
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = s.Stem(tok)
	}
	return out
}
