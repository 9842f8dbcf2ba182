package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases the utterance, folds diacritics, drops every rune
// that is neither a word character nor whitespace, and collapses runs of
// whitespace into single spaces. Collapsing interior runs goes beyond plain
// edge trimming on purpose: recognizers emit doubled spaces where filler
// words were cut, and those would otherwise break exact trigger matching.
// All directory and trigger matching runs on normalized text, so
// Normalize(Normalize(x)) == Normalize(x) must hold.
func Normalize(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}

	stripped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, folded)

	return strings.Join(strings.Fields(stripped), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
