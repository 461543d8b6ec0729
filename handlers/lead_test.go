package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rockgrip/models"
	"rockgrip/services/lead"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeadService struct {
	result  models.SubmissionResult
	lastReq models.SubmissionRequest
}

func (s *stubLeadService) Submit(ctx context.Context, req models.SubmissionRequest) models.SubmissionResult {
	s.lastReq = req
	return s.result
}

func performSubmit(t *testing.T, svc lead.LeadService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/leads/join", NewLeadHandler(svc).SubmitJoinRequestHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/leads/join", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.5")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitJoinRequestSuccess(t *testing.T) {
	svc := &stubLeadService{result: models.SubmissionResult{
		Status: models.StatusSucceeded,
		LeadID: "lead-1",
	}}

	w := performSubmit(t, svc, `{"firstName":"Asha","contactNumber":"9876543210"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "lead-1", body["leadId"])
	// The client address is forwarded to the pipeline for the captcha call.
	assert.Equal(t, "203.0.113.5", svc.lastReq.RemoteIP)
}

func TestSubmitJoinRequestFieldErrors(t *testing.T) {
	svc := &stubLeadService{result: models.SubmissionResult{
		Status:    models.StatusFailed,
		ErrorCode: lead.CodeValidation,
		FieldErrors: map[string]string{
			"contactNumber": "Enter a valid 10-digit phone number.",
		},
	}}

	w := performSubmit(t, svc, `{"contactNumber":"123"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var result models.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result.FieldErrors, "contactNumber")
}

func TestSubmitJoinRequestStatusMapping(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{lead.CodeSubmissionInFlight, http.StatusConflict},
		{lead.CodeChallengeFailed, http.StatusBadRequest},
		{lead.CodeChallengeUnavail, http.StatusServiceUnavailable},
		{lead.CodeStoreUnconfigured, http.StatusServiceUnavailable},
		{lead.CodeStoreWriteError, http.StatusBadGateway},
	}
	for _, tc := range cases {
		svc := &stubLeadService{result: models.SubmissionResult{
			Status:    models.StatusFailed,
			ErrorCode: tc.code,
			Error:     "failure",
		}}
		w := performSubmit(t, svc, `{}`)
		assert.Equal(t, tc.want, w.Code, "code %s", tc.code)
	}
}

func TestSubmitJoinRequestMalformedBody(t *testing.T) {
	svc := &stubLeadService{}
	w := performSubmit(t, svc, `{"firstName":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
