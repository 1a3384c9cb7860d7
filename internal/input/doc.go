// Package input resolves the text a wordmill run analyzes.
//
// Text comes from a file, a shell pipe, or an interactive prompt when stdin
// is a terminal. HTML documents are reduced to their visible text before
// analysis. The package also derives the human-friendly labels shown in
// history listings.
package input
