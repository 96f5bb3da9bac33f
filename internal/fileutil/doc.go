// Package fileutil holds small filesystem helpers shared by the CLI and the
// config package.
package fileutil
