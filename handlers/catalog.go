package handlers

import (
	"net/http"

	"rockgrip/services/catalog"
	"rockgrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the price list and freight charges.
type CatalogHandler struct {
	Service catalog.DataService
}

func NewCatalogHandler(svc catalog.DataService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// GetPricingHandler handles GET /api/catalog/pricing.
func (h *CatalogHandler) GetPricingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	pricing, err := h.Service.Pricing(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load pricing data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Pricing data is unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": pricing})
}

// GetFreightHandler handles GET /api/catalog/freight.
func (h *CatalogHandler) GetFreightHandler(c *gin.Context) {
	logger := utils.GetLogger()
	freight, err := h.Service.Freight(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load freight data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Freight data is unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"freight": freight})
}
