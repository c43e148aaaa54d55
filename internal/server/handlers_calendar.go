package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/types"
)

// InterviewReminderRequest is the body of POST /calendar/interview.
type InterviewReminderRequest struct {
	JobTitle      string    `json:"jobTitle" validate:"required"`
	Company       string    `json:"company" validate:"required"`
	InterviewDate time.Time `json:"interviewDate" validate:"required"`
	Notes         string    `json:"notes"`
}

// DeadlineReminderRequest is the body of POST /calendar/deadline.
type DeadlineReminderRequest struct {
	JobTitle       string    `json:"jobTitle" validate:"required"`
	Company        string    `json:"company" validate:"required"`
	Deadline       time.Time `json:"deadline" validate:"required"`
	ApplicationURL string    `json:"applicationUrl"`
}

func (s *Server) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	token, ok := s.calendarToken(w, r)
	if !ok {
		return
	}

	var req InterviewReminderRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	events, err := s.calendar.CreateInterviewReminder(r.Context(), token, types.InterviewReminder{
		JobTitle:      req.JobTitle,
		Company:       req.Company,
		InterviewDate: req.InterviewDate,
		Notes:         req.Notes,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"success": true, "events": events})
}

func (s *Server) handleCreateDeadline(w http.ResponseWriter, r *http.Request) {
	token, ok := s.calendarToken(w, r)
	if !ok {
		return
	}

	var req DeadlineReminderRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	event, err := s.calendar.CreateDeadlineReminder(r.Context(), token, types.DeadlineReminder{
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		Deadline:       req.Deadline,
		ApplicationURL: req.ApplicationURL,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"success": true, "event": event})
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	token, ok := s.calendarToken(w, r)
	if !ok {
		return
	}

	maxResults := 10
	if raw := r.URL.Query().Get("maxResults"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 50 {
			maxResults = n
		}
	}

	events, err := s.calendar.ListUpcomingInterviews(r.Context(), token, maxResults)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"success": true, "events": events})
}

// calendarToken extracts the caller's OAuth bearer token. The calendar
// provider acts on the candidate's own calendar, so the credential always
// comes from the request, never from service config.
func (s *Server) calendarToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	if s.calendar == nil {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"success": false,
			"message": "calendar integration is not configured",
		})
		return "", false
	}

	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		s.writeError(w, &provider.InvalidRequestError{
			Field: "Authorization", Message: "bearer token is required",
		})
		return "", false
	}
	return token, true
}
