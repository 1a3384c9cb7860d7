// Package stopwords provides immutable stopword sets for the analysis
// pipeline.
//
// Built-in lists cover English and Indonesian, matching the default corpus
// the tool has always shipped with. Sets are constructed once at startup and
// passed explicitly into the filter stage; the built-in lists are copied on
// construction so no caller can mutate process-wide state.
package stopwords

import (
	"fmt"
	"sort"
	"strings"
)

// english holds the built-in English stopword list.
var english = []string{
	"the", "a", "an", "and", "or", "to", "of", "in", "on", "for",
	"with", "is", "are", "was", "were",
}

// indonesian holds the built-in Indonesian stopword list.
var indonesian = []string{
	"dan", "yang", "di", "ke", "dari", "untuk", "pada", "dengan",
	"atau", "ini", "itu", "adalah",
}

var builtin = map[string][]string{
	"english":    english,
	"en":         english,
	"indonesian": indonesian,
	"id":         indonesian,
}

// Set is an immutable collection of stopword tokens.
type Set struct {
	words map[string]struct{}
}

// New builds a set from the provided words. Words are lowercased and
// trimmed; empty entries are dropped.
func New(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return s
}

// Default returns the union of the built-in English and Indonesian lists.
func Default() *Set {
	set, err := ForLanguages("english", "indonesian")
	if err != nil {
		// Both names are built-in; this cannot fail.
		panic(err)
	}
	return set
}

// ForLanguages builds the union of the named built-in lists. Names are
// case-insensitive and accept either full names or ISO 639-1 codes
// ("english"/"en", "indonesian"/"id"). Unknown names return an error.
func ForLanguages(names ...string) (*Set, error) {
	s := &Set{words: make(map[string]struct{})}
	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		list, ok := builtin[normalized]
		if !ok {
			return nil, fmt.Errorf("unknown stopword language %q (available: %s)", name, strings.Join(Languages(), ", "))
		}
		for _, w := range list {
			s.words[w] = struct{}{}
		}
	}
	return s, nil
}

// Languages reports the full names of the built-in lists, sorted.
func Languages() []string {
	seen := make(map[string]struct{}, len(builtin))
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		if len(name) == 2 {
			continue // skip code aliases
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// With returns a new set containing the receiver's words plus the extras.
// The receiver is not modified.
func (s *Set) With(extra ...string) *Set {
	if s == nil {
		return New(extra...)
	}
	merged := &Set{words: make(map[string]struct{}, len(s.words)+len(extra))}
	for w := range s.words {
		merged.words[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		merged.words[w] = struct{}{}
	}
	return merged
}

// Contains reports whether word is a member of the set.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len reports the number of distinct words in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
