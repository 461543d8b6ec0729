package handlers

import (
	"net/http"
	"strconv"

	"rockgrip/config"
	leadRepo "rockgrip/database/repository/lead"
	"rockgrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler exposes the back-office endpoints.
type AdminHandler struct {
	Repo leadRepo.LeadRepository
}

func NewAdminHandler(repo leadRepo.LeadRepository) *AdminHandler {
	return &AdminHandler{Repo: repo}
}

// LoginHandler handles POST /api/admin/login. The password is checked
// against the bcrypt hash from configuration; a valid login yields a JWT.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		logger.Warn("Admin login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken("admin", "admin", utils.AdminTokenTTL)
	if err != nil {
		logger.Error("Failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListLeadsHandler handles GET /api/admin/leads.
func (h *AdminHandler) ListLeadsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	leads, err := h.Repo.List(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list leads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}
