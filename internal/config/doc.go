// Package config loads, normalizes, and validates albumdupes configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as
// ALBUMDUPES_THRESHOLD. Command-line flags are applied on top by the CLI, so
// the Config returned here is the baseline for one run.
//
// Always obtain settings through this package so downstream code receives a
// threshold inside [0, 1], a known scorer name, and canonical log settings.
package config
