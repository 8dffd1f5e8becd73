package zone

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer decomposes to NFD, drops combining marks and recomposes,
// turning "Catolé" into "Catole".
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize folds a neighborhood name for comparison: diacritics stripped,
// lowercased, surrounding whitespace trimmed. External lookup services
// format neighborhood names inconsistently, so every comparison in this
// package goes through here.
func Normalize(s string) string {
	folded, _, err := transform.String(normalizer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
