package dupes

import (
	"log/slog"

	"albumdupes/internal/catalog"
	"albumdupes/internal/logging"
	"albumdupes/internal/similarity"
)

// DefaultThreshold is the minimum similarity for two titles to count as
// duplicates when no threshold is configured.
const DefaultThreshold = 0.85

// Group is one cluster of probable duplicates: the anchor record followed by
// each match in input order. It always holds at least two records.
type Group []catalog.Record

// Result is the outcome of one Find call.
type Result struct {
	Groups         []Group
	HeadersSkipped int
	Malformed      []catalog.Record
	Threshold      float64
	Algorithm      string
	Records        int
	Artists        int
	Comparisons    int
}

// Options configures a Finder.
type Options struct {
	// Threshold is the minimum score, inclusive, for a pair to match.
	Threshold float64
	// Algorithm names the similarity scorer; empty selects the default ratio.
	Algorithm string
	Logger    *slog.Logger
}

// Finder compares album titles within each artist.
type Finder struct {
	threshold float64
	algorithm string
	scorer    similarity.Scorer
	logger    *slog.Logger
}

// New builds a Finder. It fails only when opts.Algorithm is unknown.
func New(opts Options) (*Finder, error) {
	algorithm := opts.Algorithm
	if algorithm == "" {
		algorithm = similarity.DefaultAlgorithm
	}
	scorer, err := similarity.Lookup(algorithm)
	if err != nil {
		return nil, err
	}
	return &Finder{
		threshold: opts.Threshold,
		algorithm: algorithm,
		scorer:    scorer,
		logger:    logging.NewComponentLogger(opts.Logger, "dupes"),
	}, nil
}

// FindDuplicates runs the default ratio scorer over records with the given
// threshold.
func FindDuplicates(records []catalog.Record, threshold float64) Result {
	f := &Finder{
		threshold: threshold,
		algorithm: similarity.DefaultAlgorithm,
		scorer:    similarity.ScorerFunc(similarity.Ratio),
		logger:    logging.NewNop(),
	}
	return f.Find(records)
}

// Threshold reports the configured threshold.
func (f *Finder) Threshold() float64 {
	return f.threshold
}

// Find runs the pipeline over records, which must be in input order.
func (f *Finder) Find(records []catalog.Record) Result {
	result := Result{
		Threshold: f.threshold,
		Algorithm: f.algorithm,
		Records:   len(records),
	}

	data, headers := catalog.DropHeaders(records)
	result.HeadersSkipped = headers
	if headers > 0 {
		f.logger.Debug("skipped header rows", logging.Int("count", headers))
	}

	normalized := make([]catalog.NormalizedRecord, 0, len(data))
	for _, rec := range data {
		normalized = append(normalized, catalog.Normalize(rec))
	}

	groups := catalog.Group(normalized)
	result.Malformed = groups.Malformed
	result.Artists = groups.Len()
	for _, rec := range groups.Malformed {
		f.logger.Debug("entry missing artist separator",
			logging.Int("line", rec.LineNumber),
			logging.String("text", rec.RawText),
		)
	}

	groups.Each(func(artist string, members []catalog.NormalizedRecord) {
		found, compared := f.matchArtist(members)
		result.Comparisons += compared
		if len(found) > 0 {
			f.logger.Debug("artist has potential duplicates",
				logging.String("artist", artist),
				logging.Int("groups", len(found)),
			)
		}
		result.Groups = append(result.Groups, found...)
	})

	summary := []logging.Attr{
		logging.Int("records", result.Records),
		logging.Int("artists", result.Artists),
		logging.Int("comparisons", result.Comparisons),
		logging.Int("groups", len(result.Groups)),
		logging.Float64("threshold", f.threshold),
		logging.String("algorithm", f.algorithm),
	}
	if len(result.Malformed) > 0 {
		summary = append(summary, logging.Int("malformed", len(result.Malformed)))
	}
	f.logger.Debug("duplicate scan complete", logging.Args(summary...)...)
	return result
}

// matchArtist compares every record against each later record of the same
// artist. Records of a single-entry artist are never compared.
func (f *Finder) matchArtist(members []catalog.NormalizedRecord) ([]Group, int) {
	if len(members) < 2 {
		return nil, 0
	}
	albums := make([]string, len(members))
	for i, rec := range members {
		albums[i] = catalog.SplitAlbum(rec.NormalizedText)
	}

	var groups []Group
	compared := 0
	for i := range members {
		group := Group{members[i].Record}
		for j := i + 1; j < len(members); j++ {
			compared++
			if f.scorer.Score(albums[i], albums[j]) >= f.threshold {
				group = append(group, members[j].Record)
			}
		}
		if len(group) > 1 {
			groups = append(groups, group)
		}
	}
	return groups, compared
}

// Lines returns the line numbers in g.
func (g Group) Lines() []int {
	lines := make([]int, len(g))
	for i, rec := range g {
		lines[i] = rec.LineNumber
	}
	return lines
}
