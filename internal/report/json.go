package report

import (
	"encoding/json"
	"io"

	"albumdupes/internal/catalog"
	"albumdupes/internal/dupes"
)

// Document is the JSON shape of a report.
type Document struct {
	RunID          string             `json:"run_id,omitempty"`
	Threshold      float64            `json:"threshold"`
	Algorithm      string             `json:"algorithm"`
	HeadersSkipped int                `json:"headers_skipped"`
	Malformed      []catalog.Record   `json:"malformed"`
	Groups         [][]catalog.Record `json:"groups"`
}

// NewDocument converts result into its JSON form. Empty collections encode
// as [] rather than null.
func NewDocument(result dupes.Result, meta Meta) Document {
	doc := Document{
		RunID:          meta.RunID,
		Threshold:      result.Threshold,
		Algorithm:      result.Algorithm,
		HeadersSkipped: result.HeadersSkipped,
		Malformed:      make([]catalog.Record, 0, len(result.Malformed)),
		Groups:         make([][]catalog.Record, 0, len(result.Groups)),
	}
	doc.Malformed = append(doc.Malformed, result.Malformed...)
	for _, group := range result.Groups {
		doc.Groups = append(doc.Groups, append([]catalog.Record(nil), group...))
	}
	return doc
}

// JSON encodes result as indented JSON.
func JSON(w io.Writer, result dupes.Result, meta Meta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(result, meta))
}
