// Package dupes finds likely-duplicate "Artist - Album" entries.
//
// Find runs the whole pipeline for one input: header lines are dropped,
// remaining records are normalized and grouped by artist, and within each
// artist every record is compared as an anchor against every later record.
// An anchor with at least one match yields a Group holding the anchor and its
// matches in discovery order. A record can appear under several anchors;
// groups are reported as found rather than merged.
//
// A Finder holds no mutable state, so one value can serve concurrent calls on
// disjoint inputs. Diagnostics that the caller should surface (skipped
// headers, unparseable lines) are returned in Result, never printed.
package dupes
