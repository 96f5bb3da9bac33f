package similarity

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"albumdupes/internal/textutil"
)

// DefaultAlgorithm names the scorer used when none is configured.
const DefaultAlgorithm = "ratio"

// ErrUnknownAlgorithm is returned by Lookup for names it does not recognize.
var ErrUnknownAlgorithm = errors.New("unknown similarity algorithm")

// Scorer compares two normalized strings.
type Scorer interface {
	Score(a, b string) float64
}

// ScorerFunc adapts a function to Scorer.
type ScorerFunc func(a, b string) float64

// Score calls f(a, b).
func (f ScorerFunc) Score(a, b string) float64 { return f(a, b) }

var scorers = map[string]Scorer{
	"ratio":               ScorerFunc(Ratio),
	"levenshtein":         edlibScorer(edlib.Levenshtein),
	"damerau-levenshtein": edlibScorer(edlib.DamerauLevenshtein),
	"jaro":                edlibScorer(edlib.Jaro),
	"jaro-winkler":        edlibScorer(edlib.JaroWinkler),
	"lcs":                 edlibScorer(edlib.Lcs),
	"token-cosine":        ScorerFunc(TokenCosine),
}

// Lookup returns the scorer registered under name. An empty name selects
// DefaultAlgorithm.
func Lookup(name string) (Scorer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultAlgorithm
	}
	scorer, ok := scorers[key]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownAlgorithm, name, strings.Join(Algorithms(), ", "))
	}
	return scorer, nil
}

// Algorithms lists the registered scorer names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(scorers))
	for name := range scorers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// edlibScorer wraps a go-edlib algorithm. Identical inputs short-circuit to 1
// since several algorithms divide by the string length; library errors
// score 0.
func edlibScorer(algo edlib.Algorithm) Scorer {
	return ScorerFunc(func(a, b string) float64 {
		if a == b {
			return 1
		}
		sim, err := edlib.StringsSimilarity(a, b, algo)
		if err != nil {
			return 0
		}
		return clamp(float64(sim))
	})
}

// TokenCosine compares the word bags of a and b, ignoring word order.
func TokenCosine(a, b string) float64 {
	if a == b {
		return 1
	}
	return textutil.CosineSimilarity(textutil.NewFingerprint(a), textutil.NewFingerprint(b))
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
