package checkout

import "strings"

// postalCodeLength is the digit count of a Brazilian CEP.
const postalCodeLength = 8

// NormalizePostalCode strips every non-digit from a postal code, so
// "58410-000" and "58410000" normalize identically.
func NormalizePostalCode(code string) string {
	var b strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPostalCode reports whether the normalized code has exactly eight
// digits. Shorter input is "not enough input yet", never an error.
func IsValidPostalCode(code string) bool {
	return len(NormalizePostalCode(code)) == postalCodeLength
}
