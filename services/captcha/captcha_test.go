package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifier(url string) *GoogleVerifier {
	return &GoogleVerifier{
		SiteverifyURL: url,
		Secret:        "test-secret",
		MinScore:      0.5,
		HTTPClient:    http.DefaultClient,
	}
}

func TestVerifySuccess(t *testing.T) {
	var gotSecret, gotResponse string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotSecret = r.PostFormValue("secret")
		gotResponse = r.PostFormValue("response")
		w.Write([]byte(`{"success": true, "score": 0.9, "action": "submit"}`))
	}))
	defer srv.Close()

	v := newVerifier(srv.URL)
	err := v.Verify(context.Background(), "tok-123", "submit", "203.0.113.5")
	require.NoError(t, err)
	assert.Equal(t, "test-secret", gotSecret)
	assert.Equal(t, "tok-123", gotResponse)
}

func TestVerifyRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer srv.Close()

	err := newVerifier(srv.URL).Verify(context.Background(), "bad-token", "submit", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChallengeFailed)
	assert.Contains(t, err.Error(), "invalid-input-response")
}

func TestVerifyActionMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "score": 0.9, "action": "login"}`))
	}))
	defer srv.Close()

	err := newVerifier(srv.URL).Verify(context.Background(), "tok", "submit", "")
	assert.ErrorIs(t, err, ErrChallengeFailed)
}

func TestVerifyLowScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "score": 0.1, "action": "submit"}`))
	}))
	defer srv.Close()

	err := newVerifier(srv.URL).Verify(context.Background(), "tok", "submit", "")
	assert.ErrorIs(t, err, ErrChallengeFailed)
}

func TestVerifyEmptyToken(t *testing.T) {
	err := newVerifier("http://unused.invalid").Verify(context.Background(), "", "submit", "")
	assert.ErrorIs(t, err, ErrChallengeFailed)
}

func TestVerifyMissingSecret(t *testing.T) {
	v := newVerifier("http://unused.invalid")
	v.Secret = ""
	err := v.Verify(context.Background(), "tok", "submit", "")
	assert.ErrorIs(t, err, ErrChallengeUnavailable)
}

func TestVerifyServiceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	err := newVerifier(srv.URL).Verify(context.Background(), "tok", "submit", "")
	assert.ErrorIs(t, err, ErrChallengeUnavailable)
}

func TestVerifyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newVerifier(srv.URL).Verify(context.Background(), "tok", "submit", "")
	assert.ErrorIs(t, err, ErrChallengeUnavailable)
}
