package catalog

// Groups partitions records by artist. Keys lists each artist once, in order
// of first appearance.
type Groups struct {
	Keys      []string
	ByArtist  map[string][]NormalizedRecord
	Malformed []Record
}

// Group partitions records by ArtistKey, preserving input order within each
// artist. Records without a separator cannot be grouped and are returned in
// Malformed instead.
func Group(records []NormalizedRecord) Groups {
	groups := Groups{ByArtist: make(map[string][]NormalizedRecord)}
	for _, rec := range records {
		key, ok := ArtistKey(rec.NormalizedText)
		if !ok {
			groups.Malformed = append(groups.Malformed, rec.Record)
			continue
		}
		if _, seen := groups.ByArtist[key]; !seen {
			groups.Keys = append(groups.Keys, key)
		}
		groups.ByArtist[key] = append(groups.ByArtist[key], rec)
	}
	return groups
}

// Len returns the number of distinct artists.
func (g Groups) Len() int {
	return len(g.Keys)
}

// Each calls fn for every artist in first-appearance order.
func (g Groups) Each(fn func(artist string, records []NormalizedRecord)) {
	for _, key := range g.Keys {
		fn(key, g.ByArtist[key])
	}
}
