// Package main hosts the wordmill CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into analysis
// runs, history lookups, configuration scaffolding, and environment
// checks. It centralizes configuration resolution and logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags
// here. Stdout belongs to analysis results; diagnostics go to stderr.
package main
