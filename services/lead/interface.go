package lead

import (
	"context"
	"time"

	leadRepo "rockgrip/database/repository/lead"
	"rockgrip/models"
	"rockgrip/services/captcha"

	"github.com/hibiken/asynq"
)

// LeadService runs one end-to-end join-request submission attempt.
type LeadService interface {
	Submit(ctx context.Context, req models.SubmissionRequest) models.SubmissionResult
}

// Enqueuer is the slice of asynq.Client the pipeline needs.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultLeadService is the production implementation.
type DefaultLeadService struct {
	Repo     leadRepo.LeadRepository
	Verifier captcha.Verifier
	Locker   SubmissionLocker
	Queue    Enqueuer

	// AllowedCities returns the live operational allow-list.
	AllowedCities func() []string
	// Dataset is the closed states-and-cities set used for consistency checks.
	Dataset *models.LocationDataset

	CaptchaTimeout time.Duration
	StoreTimeout   time.Duration
}
