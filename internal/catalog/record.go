package catalog

import (
	"strings"

	"albumdupes/internal/textutil"
)

// Separator splits the artist from the album title.
const Separator = " - "

// Record is one entry as read from the input.
type Record struct {
	LineNumber int    `json:"line"`
	RawText    string `json:"text"`
}

// NormalizedRecord pairs a Record with its comparison form.
type NormalizedRecord struct {
	Record
	NormalizedText string
}

// Normalize derives the comparison view of r.
func Normalize(r Record) NormalizedRecord {
	return NormalizedRecord{Record: r, NormalizedText: textutil.Normalize(r.RawText)}
}

// ArtistKey returns the trimmed text before the first separator. ok is false
// when normalized has no separator.
func ArtistKey(normalized string) (key string, ok bool) {
	before, _, found := strings.Cut(normalized, Separator)
	if !found {
		return "", false
	}
	return strings.TrimSpace(before), true
}

// SplitAlbum returns the text after the first separator, or all of
// normalized when there is none.
func SplitAlbum(normalized string) string {
	if _, after, found := strings.Cut(normalized, Separator); found {
		return after
	}
	return normalized
}
