package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for comparison. The result is lowercased,
// stripped of combining marks, and has every whitespace run collapsed to a
// single space with no leading or trailing whitespace.
//
// Normalize never fails; input that cannot be transformed is returned with
// only the case and whitespace steps applied.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := cases.Lower(language.Und).String(text)
	stripped := stripMarks(lowered)
	return CollapseSpace(stripped)
}

// stripMarks decomposes s canonically and removes nonspacing marks, leaving
// the base letters. Transformers hold state, so a chain is built per call.
func stripMarks(s string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(chain, s)
	if err != nil {
		return s
	}
	return out
}

// CollapseSpace replaces each run of whitespace with one space and trims the
// ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
