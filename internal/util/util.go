package util

import (
	"strings"
)

// FormatDisplayPhone formats an Indian "+91" number for on-card display
// as "+91 NNNNN NNNNN". Every other number is returned unchanged.
func FormatDisplayPhone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	if !strings.HasPrefix(trimmed, "+91") {
		return phone
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, trimmed)

	if len(digits) != 12 {
		return phone
	}

	return "+91 " + digits[2:7] + " " + digits[7:]
}
