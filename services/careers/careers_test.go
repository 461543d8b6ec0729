package careers

import (
	"testing"

	"rockgrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpeningsNoFilter(t *testing.T) {
	svc := NewJSONService()
	roles := svc.Openings(models.RoleFilter{})
	require.NotEmpty(t, roles)
	for _, role := range roles {
		assert.NotEmpty(t, role.ID)
		assert.NotEmpty(t, role.Title)
		assert.NotEmpty(t, role.Department)
		assert.NotEmpty(t, role.Location)
		assert.NotEmpty(t, role.Type)
	}
}

func TestOpeningsLocationFilter(t *testing.T) {
	svc := NewJSONService()
	roles := svc.Openings(models.RoleFilter{Location: "Kanpur"})
	require.NotEmpty(t, roles)
	for _, role := range roles {
		assert.Equal(t, "Kanpur", role.Location)
	}
}

func TestOpeningsCombinedFilters(t *testing.T) {
	svc := NewJSONService()
	roles := svc.Openings(models.RoleFilter{Department: "Sales", Type: "Full-time"})
	require.NotEmpty(t, roles)
	for _, role := range roles {
		assert.Equal(t, "Sales", role.Department)
		assert.Equal(t, "Full-time", role.Type)
	}
}

func TestOpeningsQuerySearch(t *testing.T) {
	svc := NewJSONService()

	roles := svc.Openings(models.RoleFilter{Query: "quality"})
	require.NotEmpty(t, roles)
	assert.Equal(t, "Quality Control Engineer", roles[0].Title)

	assert.Empty(t, svc.Openings(models.RoleFilter{Query: "astronaut"}))
}

func TestOpeningsOnlyValidatedEntries(t *testing.T) {
	svc := NewJSONService()
	for _, role := range svc.Openings(models.RoleFilter{}) {
		assert.NotEmpty(t, role.ID)
		assert.NotEmpty(t, role.Title)
	}
}

func TestFilterOptions(t *testing.T) {
	svc := NewJSONService()
	opts := svc.FilterOptions()

	assert.Contains(t, opts.Locations, "Lucknow")
	assert.Contains(t, opts.Departments, "Sales")
	assert.Contains(t, opts.Types, "Full-time")
	assert.IsIncreasing(t, opts.Locations)
}
