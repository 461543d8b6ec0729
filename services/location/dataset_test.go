package location

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	dataset, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, dataset.States)
	assert.NotEmpty(t, dataset.AllowedCities)
	// AllowedCities is lifted out of the state map, never exposed as a state.
	assert.NotContains(t, dataset.States, "AllowedCities")
	assert.Contains(t, dataset.CitiesOf("Uttar Pradesh"), "Lucknow")
	assert.True(t, dataset.HasState("Uttar Pradesh"))
	assert.False(t, dataset.HasState("Atlantis"))
}

func TestNormalize(t *testing.T) {
	raw := map[string]json.RawMessage{
		"AllowedCities": json.RawMessage(`["Lucknow"]`),
		"Uttar Pradesh": json.RawMessage(`["Lucknow", "Kanpur"]`),
	}

	dataset, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lucknow"}, dataset.AllowedCities)
	assert.Equal(t, []string{"Lucknow", "Kanpur"}, dataset.States["Uttar Pradesh"])
}

func TestNormalizeRejectsNonArrayEntry(t *testing.T) {
	raw := map[string]json.RawMessage{
		"Uttar Pradesh": json.RawMessage(`{"city": "Lucknow"}`),
	}
	_, err := Normalize(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Uttar Pradesh")
}

func TestNormalizeRejectsEmptyState(t *testing.T) {
	raw := map[string]json.RawMessage{
		"Uttar Pradesh": json.RawMessage(`[]`),
	}
	_, err := Normalize(raw)
	assert.Error(t, err)
}

func TestNormalizeRejectsUnknownAllowedCity(t *testing.T) {
	raw := map[string]json.RawMessage{
		"AllowedCities": json.RawMessage(`["Gotham"]`),
		"Uttar Pradesh": json.RawMessage(`["Lucknow"]`),
	}
	_, err := Normalize(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gotham")
}

func TestStateNamesSorted(t *testing.T) {
	dataset, err := Load()
	require.NoError(t, err)

	names := StateNames(dataset)
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
}
