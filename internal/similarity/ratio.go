package similarity

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Ratio returns the sequence-matcher similarity of a and b, compared rune by
// rune. Two empty strings are identical and score 1.
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	matcher := difflib.NewMatcher(splitRunes(a), splitRunes(b))
	return matcher.Ratio()
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
