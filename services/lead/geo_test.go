package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEligible(t *testing.T) {
	allowed := []string{"Lucknow", "Kanpur"}

	assert.True(t, IsEligible("Lucknow", allowed))
	assert.True(t, IsEligible("Kanpur", allowed))
	assert.False(t, IsEligible("Delhi", allowed))
	// Match is case-sensitive and exact.
	assert.False(t, IsEligible("lucknow", allowed))
	assert.False(t, IsEligible("Lucknow ", allowed))
	assert.False(t, IsEligible("Lucknow", nil))
}

func TestRejectionMessage(t *testing.T) {
	msg := RejectionMessage([]string{"Lucknow", "Kanpur"})
	assert.Contains(t, msg, "Lucknow")
	assert.Contains(t, msg, "Kanpur")
	assert.Equal(t, "We are operational in Lucknow, Kanpur. Coming soon to your city.", msg)
}

func TestRejectionMessageReflectsCurrentList(t *testing.T) {
	allowed := []string{"Lucknow"}
	assert.NotContains(t, RejectionMessage(allowed), "Varanasi")

	allowed = append(allowed, "Varanasi")
	assert.Contains(t, RejectionMessage(allowed), "Varanasi")
}

func TestRejectionMessageEmptyAllowList(t *testing.T) {
	msg := RejectionMessage(nil)
	assert.Equal(t, "We are not operational in any city yet. Coming soon.", msg)
}
