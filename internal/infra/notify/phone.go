package notify

import "strings"

// NormalizePhone rewrites a local number into international form for the
// gateway: non-digits stripped, a leading "0" swapped for the country code.
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "0") {
		return countryCode + digits[1:]
	}
	return digits
}
