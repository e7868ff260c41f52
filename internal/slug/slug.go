// Package slug turns display text into URL-safe kebab-case identifiers.
package slug

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const MaxLength = 80

var nonSlug = regexp.MustCompile(`[^\p{L}\p{M}\p{N}]+`)

// Fold removes diacritics from Latin letters and lowercases s. "Côte d'Azur"
// becomes "cote d'azur". Marks of other scripts, such as Thai vowels and tone
// marks, are part of the spelling and are kept.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	var b strings.Builder
	latin := false
	for _, r := range norm.NFC.String(s) {
		if unicode.Is(unicode.Mn, r) {
			// A mark left after NFC on a Latin letter has no precomposed form.
			if !latin {
				b.WriteRune(r)
			}
			continue
		}
		latin = r < utf8.RuneSelf || unicode.Is(unicode.Latin, r)
		if r < utf8.RuneSelf || !latin {
			b.WriteRune(r)
			continue
		}
		folded, _, err := transform.String(t, string(r))
		if err != nil {
			folded = string(r)
		}
		b.WriteString(folded)
	}
	return strings.ToLower(b.String())
}

// Make returns the slug of s, cut at a hyphen boundary when longer than MaxLength.
// Letters outside ASCII (Thai titles, for instance) are kept.
func Make(s string) string {
	out := nonSlug.ReplaceAllString(Fold(s), "-")
	out = strings.Trim(out, "-")

	if len(out) > MaxLength {
		out = out[:MaxLength]
		if i := strings.LastIndex(out, "-"); i > 0 {
			out = out[:i]
		}
		out = strings.ToValidUTF8(out, "")
		out = strings.Trim(out, "-")
	}
	return out
}
