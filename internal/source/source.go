package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"albumdupes/internal/catalog"
	"albumdupes/internal/logging"
)

// Input formats recognised by Detect.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Options controls how tabular inputs map to records. Text inputs ignore the
// column settings.
type Options struct {
	// Sheet selects the XLSX worksheet; empty reads the first one.
	Sheet string
	// ArtistColumn is the 1-based artist column. Zero means column 1.
	ArtistColumn int
	// AlbumColumn is the 1-based album column. Zero uses the artist cell
	// verbatim, for exports that already hold "Artist - Album" text.
	AlbumColumn int
	Logger      *slog.Logger
}

// Detect picks the reader for path from its extension.
func Detect(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatText
	}
}

// Read loads path into records in input order.
func Read(path string, opts Options) ([]catalog.Record, error) {
	logger := logging.NewComponentLogger(opts.Logger, "source")
	format := Detect(path)

	var (
		records []catalog.Record
		err     error
	)
	switch format {
	case FormatXLSX:
		records, err = readXLSX(path, opts)
	default:
		file, openErr := os.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("open input: %w", openErr)
		}
		defer file.Close()
		if format == FormatCSV {
			records, err = ReadCSV(file, opts)
		} else {
			records, err = ReadText(file)
		}
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("input loaded",
		logging.String("path", path),
		logging.String("format", format),
		logging.Int("records", len(records)),
	)
	return records, nil
}

// joinColumns builds the record text for one tabular row. It returns false
// when the row has nothing to compare.
func joinColumns(row []string, opts Options) (string, bool) {
	artistCol := opts.ArtistColumn
	if artistCol <= 0 {
		artistCol = 1
	}
	artist := cell(row, artistCol)
	if opts.AlbumColumn <= 0 {
		return artist, artist != ""
	}
	album := cell(row, opts.AlbumColumn)
	switch {
	case artist == "" && album == "":
		return "", false
	case album == "":
		return artist, true
	case artist == "":
		return album, true
	default:
		return artist + catalog.Separator + album, true
	}
}

func cell(row []string, column int) string {
	if column < 1 || column > len(row) {
		return ""
	}
	return strings.TrimSpace(row[column-1])
}
