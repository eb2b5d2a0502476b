package detector

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"
)

// cleanText trims outer whitespace, lower-cases with Unicode-aware rules,
// strips punctuation (\p{P}) and numbers (\p{N}), and collapses whitespace
// runs to a single space.
func cleanText(text string) string {
	// cases.Caser carries internal state, so a fresh one is taken per call.
	lowered := cases.Lower(xlanguage.Und).String(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(lowered))
	pendingSpace := false
	for _, r := range lowered {
		switch {
		case unicode.IsPunct(r) || unicode.IsNumber(r):
			continue
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		default:
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// containsLetter reports whether s has at least one Unicode letter.
func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
