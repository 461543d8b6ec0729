package lead

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"rockgrip/models"
	"rockgrip/services/captcha"
	"rockgrip/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeLeadNotify is the task type enqueued after a successful write.
const TypeLeadNotify = "lead:notify"

// submitAction is the reCAPTCHA action the token must be scoped to.
const submitAction = "submit"

// Submit runs one submission attempt to a terminal state. Validation and
// eligibility always run before any external call: an invalid attempt must
// never consume a captcha verdict or touch the store.
func (s *DefaultLeadService) Submit(ctx context.Context, req models.SubmissionRequest) models.SubmissionResult {
	logger := utils.GetLogger()
	result := models.SubmissionResult{
		Status:      models.StatusSubmitting,
		FieldErrors: map[string]string{},
	}

	lockKey := strings.TrimSpace(req.ContactNumber)
	if s.Locker != nil && lockKey != "" {
		acquired, err := s.Locker.Acquire(ctx, lockKey)
		if err != nil {
			logger.Error("submission lock error", zap.Error(err))
			return failed(result, CodeSubmissionInFlight, "Could not start submission. Try again.")
		}
		if !acquired {
			return failed(result, CodeSubmissionInFlight, "A submission for this number is already in progress.")
		}
		defer func() {
			if err := s.Locker.Release(context.Background(), lockKey); err != nil {
				logger.Warn("submission lock release failed", zap.String("key", lockKey), zap.Error(err))
			}
		}()
	}

	// Collect every field violation before stopping so the caller can
	// render them all at once.
	s.validateFields(req, result.FieldErrors)
	if len(result.FieldErrors) > 0 {
		result.Status = models.StatusFailed
		result.ErrorCode = CodeValidation
		return result
	}

	if err := s.verifyChallenge(ctx, req); err != nil {
		logger.Warn("captcha rejected submission", zap.Error(err))
		if errors.Is(err, captcha.ErrChallengeUnavailable) {
			return failed(result, CodeChallengeUnavail, "reCAPTCHA is not available. Try again later.")
		}
		return failed(result, CodeChallengeFailed, "reCAPTCHA verification failed. Try again.")
	}

	if s.Repo == nil {
		return failed(result, CodeStoreUnconfigured, "Database is not configured. Please check your environment variables.")
	}

	record := s.buildLead(req)

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout())
	defer cancel()
	id, err := s.Repo.Create(storeCtx, record)
	if err != nil {
		logger.Error("lead write failed", zap.String("city", record.City), zap.Error(err))
		// The backend's code and message are kept verbatim for support diagnosis.
		return failed(result, CodeStoreWriteError, "Store error: "+err.Error())
	}

	s.enqueueNotify(record, id)

	logger.Info("lead captured",
		zap.String("id", id),
		zap.String("city", record.City),
		zap.String("profession", string(record.Profession)),
	)
	result.Status = models.StatusSucceeded
	result.LeadID = id
	return result
}

func (s *DefaultLeadService) validateFields(req models.SubmissionRequest, fieldErrors map[string]string) {
	if strings.TrimSpace(req.FirstName) == "" {
		fieldErrors["firstName"] = "First name is required."
	}
	if strings.TrimSpace(req.LastName) == "" {
		fieldErrors["lastName"] = "Last name is required."
	}

	if !ValidatePhone(req.ContactNumber) {
		fieldErrors["contactNumber"] = "Enter a valid 10-digit phone number."
	}
	if !ValidatePincode(req.Pincode) {
		fieldErrors["pincode"] = "Enter a valid 6-digit PIN code (e.g., 110001 or 110 001)."
	}

	if !models.ValidProfession(req.Profession) {
		fieldErrors["profession"] = "Select a profession from the list."
	}

	// The state set is closed; free-text entries are rejected outright.
	if s.Dataset != nil && !s.Dataset.HasState(req.State) {
		fieldErrors["state"] = "Select a state from the list."
	} else if s.Dataset != nil && !contains(s.Dataset.CitiesOf(req.State), req.City) {
		fieldErrors["city"] = "Select a city from the chosen state."
	}

	if _, taken := fieldErrors["city"]; !taken {
		allowed := s.allowedCities()
		if !IsEligible(req.City, allowed) {
			fieldErrors["city"] = RejectionMessage(allowed)
		}
	}
}

func (s *DefaultLeadService) verifyChallenge(ctx context.Context, req models.SubmissionRequest) error {
	if s.Verifier == nil {
		return captcha.ErrChallengeUnavailable
	}
	captchaCtx, cancel := context.WithTimeout(ctx, s.captchaTimeout())
	defer cancel()
	return s.Verifier.Verify(captchaCtx, req.RecaptchaToken, submitAction, req.RemoteIP)
}

func (s *DefaultLeadService) buildLead(req models.SubmissionRequest) models.Lead {
	lead := models.Lead{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		ContactNumber:  strings.TrimSpace(req.ContactNumber),
		Profession:     models.Profession(req.Profession),
		State:          req.State,
		City:           req.City,
		Pincode:        strings.TrimSpace(req.Pincode),
		RecaptchaToken: req.RecaptchaToken,
		CreatedAt:      time.Now(),
	}
	if lead.Profession == models.ProfessionOther {
		lead.OtherProfession = strings.TrimSpace(req.OtherProfession)
	}
	return lead
}

// enqueueNotify hands the captured lead to the sales-alert queue. Enqueue
// failures are logged only: the lead is already persisted and the attempt
// has succeeded.
func (s *DefaultLeadService) enqueueNotify(record models.Lead, id string) {
	if s.Queue == nil {
		return
	}
	payload, err := json.Marshal(models.LeadNotifyPayload{
		LeadID: id,
		Name:   record.FirstName + " " + record.LastName,
		City:   record.City,
	})
	if err != nil {
		utils.GetLogger().Warn("lead notify payload marshal failed", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(asynq.NewTask(TypeLeadNotify, payload)); err != nil {
		utils.GetLogger().Warn("lead notify enqueue failed", zap.String("leadId", id), zap.Error(err))
	}
}

func (s *DefaultLeadService) allowedCities() []string {
	if s.AllowedCities != nil {
		return s.AllowedCities()
	}
	if s.Dataset != nil {
		return s.Dataset.AllowedCities
	}
	return nil
}

func (s *DefaultLeadService) captchaTimeout() time.Duration {
	if s.CaptchaTimeout > 0 {
		return s.CaptchaTimeout
	}
	return 10 * time.Second
}

func (s *DefaultLeadService) storeTimeout() time.Duration {
	if s.StoreTimeout > 0 {
		return s.StoreTimeout
	}
	return 15 * time.Second
}

func failed(result models.SubmissionResult, code, msg string) models.SubmissionResult {
	result.Status = models.StatusFailed
	result.ErrorCode = code
	result.Error = msg
	return result
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
