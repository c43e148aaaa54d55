package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/pipeline"
	"github.com/jobscout/jobscout/internal/types"
)

type fakeCalendar struct {
	listed int
}

func (f *fakeCalendar) CreateInterviewReminder(_ context.Context, _ string, _ types.InterviewReminder) ([]types.CalendarEvent, error) {
	return []types.CalendarEvent{{ID: "evt-1"}, {ID: "evt-2"}}, nil
}

func (f *fakeCalendar) CreateDeadlineReminder(_ context.Context, _ string, _ types.DeadlineReminder) (*types.CalendarEvent, error) {
	return &types.CalendarEvent{ID: "evt-3"}, nil
}

func (f *fakeCalendar) ListUpcomingInterviews(_ context.Context, _ string, _ int) ([]types.CalendarEvent, error) {
	f.listed++
	return nil, nil
}

// offlineServer builds a server whose pipeline has no providers configured:
// every operation runs on deterministic fallbacks.
func offlineServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{Port: 0}, pipeline.New(pipeline.Options{}), nil, &fakeCalendar{}, nil)
}

func doRequest(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, offlineServer(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestSearchJobs_OfflineStillAnswers(t *testing.T) {
	rec := doRequest(t, offlineServer(t), http.MethodGet,
		"/jobs/search?query=go+developer&location=Berlin", "")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, true, payload["fallbackUsed"])
	assert.NotEmpty(t, payload["jobs"])
}

func TestSearchJobs_BadExperienceLevel(t *testing.T) {
	rec := doRequest(t, offlineServer(t), http.MethodGet,
		"/jobs/search?experienceLevel=wizard", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendations(t *testing.T) {
	rec := doRequest(t, offlineServer(t), http.MethodPost, "/jobs/recommendations", `{
		"skills": ["React", "Node.js"],
		"titles": ["React Developer"]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, true, payload["fallbackUsed"])
	assert.NotEmpty(t, payload["jobs"])
}

func TestRecommendations_InvalidBody(t *testing.T) {
	rec := doRequest(t, offlineServer(t), http.MethodPost, "/jobs/recommendations", `{nope`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInterviewPrep_Offline(t *testing.T) {
	rec := doRequest(t, offlineServer(t), http.MethodPost, "/ai/interview-prep", `{
		"jobTitle": "Go Developer",
		"company": "Acme"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, true, payload["fallbackUsed"])
	prep, ok := payload["prep"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, prep["technicalQuestions"])
	assert.NotEmpty(t, payload["videos"])
}

func TestInterviewPrep_MissingTitle(t *testing.T) {
	rec := doRequest(t, offlineServer(t), http.MethodPost, "/ai/interview-prep", `{"company": "Acme"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseResume_MissingText(t *testing.T) {
	rec := doRequest(t, offlineServer(t), http.MethodPost, "/resume/parse", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchVideos_MissingQuery(t *testing.T) {
	rec := doRequest(t, offlineServer(t), http.MethodGet, "/videos/search", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchVideos_Offline(t *testing.T) {
	rec := doRequest(t, offlineServer(t), http.MethodGet,
		"/videos/search?query=go+interview+questions", "")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, true, payload["fallbackUsed"])
	assert.NotEmpty(t, payload["videos"])
}

func TestSavedJobs_NoStoreIs503(t *testing.T) {
	s := offlineServer(t)

	for _, target := range []string{"/jobs/saved?userId=x", "/jobs/applied?userId=x"} {
		rec := doRequest(t, s, http.MethodGet, target, "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
	}

	rec := doRequest(t, s, http.MethodPost, "/jobs/save", `{}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCalendar_RequiresBearerToken(t *testing.T) {
	rec := doRequest(t, offlineServer(t), http.MethodGet, "/calendar/interviews", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalendar_ListWithToken(t *testing.T) {
	cal := &fakeCalendar{}
	s := New(Config{Port: 0}, pipeline.New(pipeline.Options{}), nil, cal, nil)

	req := httptest.NewRequest(http.MethodGet, "/calendar/interviews", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, cal.listed)
}

func TestCalendar_NotConfiguredIs503(t *testing.T) {
	s := New(Config{Port: 0}, pipeline.New(pipeline.Options{}), nil, nil, nil)

	rec := doRequest(t, s, http.MethodPost, "/calendar/interview", `{}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
