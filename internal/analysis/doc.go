// Package analysis implements the word-frequency pipeline: tokenize, filter,
// rank.
//
// The pipeline is a chain of pure functions over in-memory strings. Tokenize
// lowercases text and extracts alphanumeric runs (apostrophes allowed inside
// tokens), Filter drops stopwords and short tokens while preserving order,
// and Rank counts the survivors and selects the top entries by descending
// count with ties resolved by first appearance. Analyze composes the stages
// into an immutable Result.
//
// Nothing in this package touches the filesystem, the clock, or any external
// renderer, so every stage can be exercised headlessly. Stopword sets and
// thresholds are passed in explicitly; there is no package-level mutable
// state.
package analysis
