package lead

import "regexp"

var (
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
	pinRe   = regexp.MustCompile(`^[1-9][0-9]{2}\s?[0-9]{3}$`)
)

// ValidatePhone reports whether v is exactly 10 ASCII digits.
// No country code, no separators.
func ValidatePhone(v string) bool {
	return phoneRe.MatchString(v)
}

// ValidatePincode reports whether v is a 6-digit Indian PIN code with a
// non-zero first digit, allowing one optional space after the third digit.
func ValidatePincode(v string) bool {
	return pinRe.MatchString(v)
}
