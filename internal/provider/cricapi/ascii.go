package cricapi

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes to NFD and drops combining marks, so "Krishnarāja"
// becomes "Krishnaraja" before the ASCII filter runs.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// toASCII enforces the plain-ASCII display constraint on a free-text field.
// Accented letters are transliterated; anything still outside printable
// ASCII is replaced with '?'. Control characters are dropped.
func toASCII(s string) string {
	if isPrintableASCII(s) {
		return s
	}

	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		case r == '\t':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			// dropped
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x7f {
			return false
		}
	}
	return true
}
