package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"9876543210", "0123456789", "1111111111"}
	for _, v := range valid {
		assert.True(t, ValidatePhone(v), "expected %q to be valid", v)
	}

	invalid := []string{
		"",
		"987654321",    // 9 digits
		"98765432109",  // 11 digits
		"98765 43210",  // separator
		"+919876543210", // country code
		"98765a3210",
		"abcdefghij",
	}
	for _, v := range invalid {
		assert.False(t, ValidatePhone(v), "expected %q to be invalid", v)
	}
}

func TestValidatePincode(t *testing.T) {
	valid := []string{"110001", "110 001", "226010", "999999", "100000"}
	for _, v := range valid {
		assert.True(t, ValidatePincode(v), "expected %q to be valid", v)
	}

	invalid := []string{
		"",
		"012345",   // leading zero
		"12345",    // 5 digits
		"1234567",  // 7 digits
		"11 0001",  // space in wrong position
		"110  001", // double space
		"11000a",
	}
	for _, v := range invalid {
		assert.False(t, ValidatePincode(v), "expected %q to be invalid", v)
	}
}
