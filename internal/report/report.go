package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"albumdupes/internal/dupes"
)

// Report formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// ErrUnknownFormat is returned by Render for unsupported format names.
var ErrUnknownFormat = errors.New("unknown report format")

// Meta carries run details that are not part of the scan result.
type Meta struct {
	RunID string
}

// Formats lists the supported format names.
func Formats() []string {
	return []string{FormatText, FormatTable, FormatJSON}
}

// Render writes result to w in the named format. Every format ends with a
// newline.
func Render(w io.Writer, format string, result dupes.Result, meta Meta) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		_, err := io.WriteString(w, Text(result)+"\n")
		return err
	case FormatTable:
		_, err := io.WriteString(w, Table(result)+"\n")
		return err
	case FormatJSON:
		return JSON(w, result, meta)
	default:
		return fmt.Errorf("%w %q (available: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

func summaryLine(groups int) string {
	return fmt.Sprintf("Found %d potential duplicate groups:", groups)
}
