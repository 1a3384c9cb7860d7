package analysis

import (
	"unicode/utf8"

	"wordmill/internal/stopwords"
)

// Options configures a single analysis run. The CLI resolves these from
// configuration and flags; tests construct them directly.
type Options struct {
	// TopN is how many ranked entries to keep. Values <= 0 produce an
	// empty ranked list (the frequency table is still built).
	TopN int
	// MinTokenLength drops tokens shorter than this many characters.
	// Zero disables the length filter.
	MinTokenLength int
	// Stopwords is the set to exclude. Nil excludes nothing.
	Stopwords *stopwords.Set
	// Stemmer, when non-nil, folds filtered tokens onto their stems
	// before counting.
	Stemmer *Stemmer
}

// DefaultOptions returns the options the tool ships with: top 15 words,
// minimum token length 3, English plus Indonesian stopwords, no stemming.
func DefaultOptions() Options {
	return Options{
		TopN:           DefaultTopWords,
		MinTokenLength: DefaultMinTokenLength,
		Stopwords:      stopwords.Default(),
	}
}

// Result is the immutable outcome of one analysis run.
type Result struct {
	// CharCount is the number of characters (Unicode code points) in the
	// raw input, whitespace included.
	CharCount int `json:"char_count"`
	// WordCount is the number of tokens that survived filtering.
	WordCount int `json:"word_count"`
	// TopN is the requested ranking size, as given, even when fewer
	// distinct tokens exist.
	TopN int `json:"top_n"`
	// Ranked holds up to TopN entries, count descending, ties by first
	// appearance.
	Ranked []Entry `json:"ranked"`
	// Frequencies maps every distinct filtered token to its count.
	// Read-only after construction.
	Frequencies map[string]int `json:"frequencies"`
}

// Analyze runs the full pipeline over text: tokenize, filter, optionally
// stem, then rank. It cannot fail; every input string produces a Result.
func Analyze(text string, opts Options) Result {
	tokens := Tokenize(text)
	filtered := Filter(tokens, opts.Stopwords, opts.MinTokenLength)
	filtered = opts.Stemmer.StemAll(filtered)
	ranked, freqs := Rank(filtered, opts.TopN)

	return Result{
		CharCount:   utf8.RuneCountInString(text),
		WordCount:   len(filtered),
		TopN:        opts.TopN,
		Ranked:      ranked,
		Frequencies: freqs,
	}
}
