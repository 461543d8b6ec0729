package lead

import "strings"

// IsEligible reports whether city is one the business currently serves.
// The match is case-sensitive and exact.
func IsEligible(city string, allowedCities []string) bool {
	for _, c := range allowedCities {
		if c == city {
			return true
		}
	}
	return false
}

// RejectionMessage enumerates the live allow-list for an ineligible city.
// It is recomputed on every call so the copy always reflects the current
// operational set.
func RejectionMessage(allowedCities []string) string {
	if len(allowedCities) == 0 {
		return "We are not operational in any city yet. Coming soon."
	}
	return "We are operational in " + strings.Join(allowedCities, ", ") + ". Coming soon to your city."
}
