package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"albumdupes/internal/catalog"
)

const (
	utf8BOM       = "\ufeff"
	maxLineLength = 1 << 20
)

// ReadText reads one record per non-empty line. Blank lines produce no
// record but still advance the line counter, so numbers match what an editor
// shows.
func ReadText(r io.Reader) ([]catalog.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var records []catalog.Record
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if lineNumber == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		records = append(records, catalog.Record{LineNumber: lineNumber, RawText: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return records, nil
}
