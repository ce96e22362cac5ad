package utils

import (
	"strings"
	"unicode"
)

// Slugify lowercases the input and collapses every run of non-alphanumeric
// characters into a single hyphen. "Summer Jazz Night!" -> "summer-jazz-night".
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
