// Package wordcloud renders word-cloud images through an external renderer
// binary such as wordcloud_cli.
//
// The analyzed frequencies are spelled out into a temporary corpus file where
// repetition encodes weight, so any renderer that derives frequencies from
// plain text produces proportional output. Command execution sits behind the
// Executor interface, letting tests substitute a stub for the real binary.
package wordcloud
