package catalog

import "albumdupes/internal/textutil"

// headerLines are column-header artifacts left by spreadsheet and library
// exports, in normalized form.
var headerLines = map[string]struct{}{
	"artist - title": {},
	"artist - album": {},
}

// IsHeader reports whether raw is a column header rather than data. Matching
// is exact after normalization, so case, accents, and spacing are ignored.
func IsHeader(raw string) bool {
	_, ok := headerLines[textutil.Normalize(raw)]
	return ok
}

// DropHeaders returns records with header lines removed and the number of
// headers dropped. The input slice is not modified.
func DropHeaders(records []Record) ([]Record, int) {
	kept := make([]Record, 0, len(records))
	headers := 0
	for _, rec := range records {
		if IsHeader(rec.RawText) {
			headers++
			continue
		}
		kept = append(kept, rec)
	}
	return kept, headers
}
