package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text to NFD and drops the combining marks,
// which removes diacritics ("étudiant" -> "etudiant").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases s, strips diacritical marks, collapses whitespace
// runs to single spaces, and trims the result.
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; on malformed
		// input keep the lowercased original rather than dropping text.
		stripped = lowered
	}
	return strings.Join(strings.Fields(stripped), " ")
}

// Tokenize replaces every non-alphanumeric rune with a space, lowercases,
// and splits on whitespace. Empty tokens are dropped. Tokenizing the
// space-joined output of Tokenize yields the same tokens again.
func Tokenize(s string) []string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Fields(mapped)
}

// TokenSet builds a membership set from a token slice.
func TokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
