// Package config loads, normalizes, and validates wordmill configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// WORDMILL_RENDERER. The Config type centralizes every knob the CLI needs,
// allowing report destinations and external renderer settings to be
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
