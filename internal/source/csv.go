package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"albumdupes/internal/catalog"
)

// ReadCSV reads one record per row. The line number is the line on which the
// row starts, so quoted fields spanning lines keep numbers accurate.
func ReadCSV(r io.Reader, opts Options) ([]catalog.Record, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var records []catalog.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		line, _ := reader.FieldPos(0)
		text, ok := joinColumns(row, opts)
		if !ok {
			continue
		}
		records = append(records, catalog.Record{LineNumber: line, RawText: text})
	}
	return records, nil
}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
