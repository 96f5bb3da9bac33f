// Package report renders duplicate scan results.
//
// Three formats are supported: the plain text block the tool has always
// printed, a go-pretty table for interactive use, and indented JSON for
// scripts. Diagnostics about skipped headers and malformed entries are
// rendered separately so they can go to stderr while the report itself goes
// to stdout or a file.
package report
