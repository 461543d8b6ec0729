package handlers

import (
	"net/http"

	"rockgrip/middleware"
	"rockgrip/models"
	"rockgrip/services/lead"
	"rockgrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadHandler exposes the join-request submission endpoint.
type LeadHandler struct {
	Service lead.LeadService
}

func NewLeadHandler(svc lead.LeadService) *LeadHandler {
	return &LeadHandler{Service: svc}
}

// SubmitJoinRequestHandler handles POST /api/leads/join.
func (h *LeadHandler) SubmitJoinRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid join request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.RemoteIP = middleware.GetClientIP(c)

	result := h.Service.Submit(c.Request.Context(), req)
	if result.Status == models.StatusSucceeded {
		c.JSON(http.StatusCreated, gin.H{
			"status":  result.Status,
			"leadId":  result.LeadID,
			"message": "Your details have been submitted successfully!",
		})
		return
	}

	c.JSON(statusForCode(result.ErrorCode), result)
}

// statusForCode maps pipeline failure codes to HTTP statuses. Field errors
// are unprocessable input; infrastructure failures are gateway-side.
func statusForCode(code string) int {
	switch code {
	case lead.CodeValidation:
		return http.StatusUnprocessableEntity
	case lead.CodeSubmissionInFlight:
		return http.StatusConflict
	case lead.CodeChallengeFailed:
		return http.StatusBadRequest
	case lead.CodeChallengeUnavail, lead.CodeStoreUnconfigured:
		return http.StatusServiceUnavailable
	case lead.CodeStoreWriteError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
