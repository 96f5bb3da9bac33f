// Package catalog models the "Artist - Album" records read from a library
// export and the first stages of duplicate detection: recognizing header
// artifacts and partitioning records by normalized artist.
//
// Records keep their raw text and 1-based line number untouched; every
// comparison works on the normalized view produced by textutil.Normalize.
package catalog
