// Package captcha verifies reCAPTCHA v3 tokens against Google's
// siteverify endpoint before a lead write is allowed.
package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rockgrip/config"
)

var (
	// ErrChallengeUnavailable means the verification service could not be
	// reached or is not configured; no verdict was produced.
	ErrChallengeUnavailable = errors.New("captcha service unavailable")
	// ErrChallengeFailed means the service produced a verdict and rejected
	// the token.
	ErrChallengeFailed = errors.New("captcha verification failed")
)

// Verifier checks a submitted challenge token bound to an action.
type Verifier interface {
	Verify(ctx context.Context, token, action, remoteIP string) error
}

// GoogleVerifier verifies tokens via the reCAPTCHA siteverify API.
type GoogleVerifier struct {
	SiteverifyURL string
	Secret        string
	MinScore      float64
	HTTPClient    *http.Client
}

// NewGoogleVerifier builds a verifier from the loaded configuration.
func NewGoogleVerifier() *GoogleVerifier {
	return &GoogleVerifier{
		SiteverifyURL: config.AppConfig.RecaptchaSiteverifyURL,
		Secret:        config.AppConfig.RecaptchaSecret,
		MinScore:      config.AppConfig.RecaptchaMinScore,
		HTTPClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks token with Google and returns nil only for a passing,
// action-scoped verdict. One shot per submission, no retry.
func (v *GoogleVerifier) Verify(ctx context.Context, token, action, remoteIP string) error {
	if v.Secret == "" {
		return fmt.Errorf("%w: secret not configured", ErrChallengeUnavailable)
	}
	if token == "" {
		return fmt.Errorf("%w: empty token", ErrChallengeFailed)
	}

	form := url.Values{}
	form.Set("secret", v.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.SiteverifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrChallengeUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := v.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrChallengeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: siteverify returned %d", ErrChallengeUnavailable, resp.StatusCode)
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: %v", ErrChallengeUnavailable, err)
	}

	if !result.Success {
		return fmt.Errorf("%w: %s", ErrChallengeFailed, strings.Join(result.ErrorCodes, ", "))
	}
	if action != "" && result.Action != action {
		return fmt.Errorf("%w: token action %q does not match %q", ErrChallengeFailed, result.Action, action)
	}
	if result.Score < v.MinScore {
		return fmt.Errorf("%w: score %.2f below threshold", ErrChallengeFailed, result.Score)
	}
	return nil
}
