package notification

import (
	"context"
	"fmt"

	leadRepo "rockgrip/database/repository/lead"
	"rockgrip/models"
	"rockgrip/utils"

	"go.uber.org/zap"
)

// SalesAlertService notifies the sales/operations team about new leads.
type SalesAlertService interface {
	NotifyNewLead(ctx context.Context, payload models.LeadNotifyPayload) error
}

// DefaultSalesAlertService records a back-office notification document and
// logs the alert.
type DefaultSalesAlertService struct {
	Repo leadRepo.LeadRepository
}

func NewDefaultSalesAlertService(repo leadRepo.LeadRepository) (*DefaultSalesAlertService, error) {
	if repo == nil {
		return nil, fmt.Errorf("sales alert service initialization error: repository is nil")
	}
	return &DefaultSalesAlertService{Repo: repo}, nil
}

func (s *DefaultSalesAlertService) NotifyNewLead(ctx context.Context, payload models.LeadNotifyPayload) error {
	logger := utils.GetLogger()
	logger.Info("new partner lead",
		zap.String("leadId", payload.LeadID),
		zap.String("name", payload.Name),
		zap.String("city", payload.City),
	)

	notification := models.SalesNotification{
		LeadID: payload.LeadID,
		Title:  "New partner request",
		Body:   fmt.Sprintf("%s from %s asked to join the dealer network.", payload.Name, payload.City),
	}
	if err := s.Repo.RecordNotification(ctx, notification); err != nil {
		logger.Error("failed to record sales notification", zap.String("leadId", payload.LeadID), zap.Error(err))
		return err
	}
	return nil
}
