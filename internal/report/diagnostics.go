package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"albumdupes/internal/dupes"
)

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
)

// Diagnostic is one line reported outside the main block.
type Diagnostic struct {
	Warning bool
	Message string
}

// Diagnostics lists the header count (when any were skipped) followed by one
// warning per malformed entry, in input order.
func Diagnostics(result dupes.Result) []Diagnostic {
	var out []Diagnostic
	if result.HeadersSkipped > 0 {
		out = append(out, Diagnostic{
			Message: fmt.Sprintf("Detected and skipped %d header row(s)", result.HeadersSkipped),
		})
	}
	for _, rec := range result.Malformed {
		out = append(out, Diagnostic{
			Warning: true,
			Message: fmt.Sprintf("Warning: Line %d: Entry doesn't follow 'Artist - Album' format: %s", rec.LineNumber, rec.RawText),
		})
	}
	return out
}

// WriteDiagnostics prints Diagnostics to w, one per line. Warnings are
// wrapped in yellow when colorize is set.
func WriteDiagnostics(w io.Writer, result dupes.Result, colorize bool) error {
	for _, d := range Diagnostics(result) {
		line := d.Message
		if colorize && d.Warning {
			line = ansiYellow + line + ansiReset
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ShouldColorize reports whether w is a terminal.
func ShouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
