// Package logging assembles structured slog loggers and formatting helpers
// used across albumdupes.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and stamps every record of a run with its run identifier so
// lines from one invocation can be correlated. The package also provides a
// no-op logger for tests and library callers that do not want output.
//
// Logs default to stderr: stdout is reserved for the duplicate report.
package logging
