package handlers

import (
	"net/http"

	"rockgrip/models"
	"rockgrip/services/careers"

	"github.com/gin-gonic/gin"
)

// CareersHandler serves job openings with filtering.
type CareersHandler struct {
	Service careers.Service
}

func NewCareersHandler(svc careers.Service) *CareersHandler {
	return &CareersHandler{Service: svc}
}

// GetOpeningsHandler handles GET /api/careers/jobs.
func (h *CareersHandler) GetOpeningsHandler(c *gin.Context) {
	filter := models.RoleFilter{
		Location:   c.Query("location"),
		Department: c.Query("department"),
		Type:       c.Query("type"),
		Query:      c.Query("q"),
	}
	c.JSON(http.StatusOK, gin.H{
		"roles":   h.Service.Openings(filter),
		"options": h.Service.FilterOptions(),
	})
}
