package util

import (
	"strings"
	"unicode"
)

// Slugify converts a title into a url-safe slug. Non-alphanumeric runs
// collapse into a single dash. Example: "Checkout Redesign (2024)" ->
// "checkout-redesign-2024".
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
