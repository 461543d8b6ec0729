package handlers

import (
	"net/http"

	"rockgrip/models"
	"rockgrip/services/location"

	"github.com/gin-gonic/gin"
)

// LocationsHandler serves the states-and-cities dataset the join form renders.
type LocationsHandler struct {
	Dataset *models.LocationDataset
}

func NewLocationsHandler(dataset *models.LocationDataset) *LocationsHandler {
	return &LocationsHandler{Dataset: dataset}
}

// GetLocationsHandler handles GET /api/locations.
func (h *LocationsHandler) GetLocationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states":        h.Dataset.States,
		"stateNames":    location.StateNames(h.Dataset),
		"allowedCities": h.Dataset.AllowedCities,
	})
}
