package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so that
// "Île" and "Ile" normalize to the same key.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes player input and catalogue names for matching:
// diacritics stripped, lower-cased, hyphens and apostrophes folded to
// spaces, runs of whitespace collapsed, surrounding space trimmed.
// Normalize is idempotent.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	out = strings.ToLower(out)
	out = strings.Map(func(r rune) rune {
		switch r {
		case '-', '\'', '’':
			return ' '
		}
		return r
	}, out)
	return strings.Join(strings.Fields(out), " ")
}
