package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// normalizeText lowercases and strips diacritics so "FÁCIL" and "facil"
// compare equal. The transformation is rune-aligned: output rune i always
// corresponds to input rune i, which lets evidence snippets be cut from the
// original text by rune index.
func normalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(normalizeRune(r))
	}
	return b.String()
}

// normalizeRune folds a single rune: canonical decomposition, drop combining
// marks, lowercase. Runes that decompose to nothing usable pass through
// lowercased.
func normalizeRune(r rune) rune {
	if r < 0x80 {
		return unicode.ToLower(r)
	}
	for _, d := range norm.NFD.String(string(r)) {
		if !unicode.Is(unicode.Mn, d) {
			return unicode.ToLower(d)
		}
	}
	return unicode.ToLower(r)
}
