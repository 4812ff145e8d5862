package services

import "strings"

// SanitizePhone strips every non-digit character from a raw phone label and
// keeps at most the last 10 digits. Empty input yields an empty string.
func SanitizePhone(raw string) string {
	if raw == "" {
		return ""
	}

	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) > 10 {
		return s[len(s)-10:]
	}
	return s
}
