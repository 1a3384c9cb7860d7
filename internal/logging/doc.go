// Package logging builds slog loggers for wordmill commands.
//
// Two output formats are supported: a compact console format for terminals
// and JSON for machine consumption. Loggers default to stderr so analysis
// results printed on stdout stay clean. Helpers such as String and Error
// mirror the slog attribute constructors, and NewComponentLogger tags a
// logger with the standardized component field used across the codebase.
package logging
