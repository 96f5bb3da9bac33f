package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"albumdupes/internal/catalog"
)

func readXLSX(path string, opts Options) ([]catalog.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	sheet := strings.TrimSpace(opts.Sheet)
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, errors.New("read input: workbook has no sheets")
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var records []catalog.Record
	for i, row := range rows {
		text, ok := joinColumns(row, opts)
		if !ok {
			continue
		}
		records = append(records, catalog.Record{LineNumber: i + 1, RawText: text})
	}
	return records, nil
}
