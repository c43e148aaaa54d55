package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/types"
)

// RecommendationsRequest is the body of POST /jobs/recommendations.
type RecommendationsRequest struct {
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experienceLevel" validate:"omitempty,oneof=entry associate mid senior director executive"`
	Location        string   `json:"location"`
	RemoteAllowed   bool     `json:"remoteAllowed"`
	PreferredTitle  string   `json:"preferredTitle"`
	// Titles are searched in order, capped by the pipeline's fan-out limit.
	Titles []string `json:"titles"`
}

// SaveJobRequest is the body of POST /jobs/save and POST /jobs/apply.
type SaveJobRequest struct {
	UserID uuid.UUID        `json:"userId" validate:"required"`
	Job    types.ResultItem `json:"job" validate:"required"`
}

func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	profile := types.DefaultProfile()
	if title := params.Get("query"); title != "" {
		profile.PreferredTitle = title
	}
	if location := params.Get("location"); location != "" {
		profile.Location = location
	}
	if params.Get("remote") == "true" {
		profile.RemoteAllowed = true
	}
	if level := types.ExperienceLevel(params.Get("experienceLevel")); level != "" {
		if !types.ValidExperienceLevel(level) {
			s.writeError(w, &provider.InvalidRequestError{
				Field: "experienceLevel", Message: "unknown experience level",
			})
			return
		}
		profile.ExperienceLevel = level
	}

	result, err := s.pipeline.Search(r.Context(), profile, types.Query{})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"jobs":         result.Items,
		"total":        result.Total,
		"fallbackUsed": result.FallbackUsed,
	})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	profile := types.DefaultProfile()
	if len(req.Skills) > 0 {
		profile.Skills = req.Skills
	}
	if req.ExperienceLevel != "" {
		profile.ExperienceLevel = types.ExperienceLevel(req.ExperienceLevel)
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.PreferredTitle != "" {
		profile.PreferredTitle = req.PreferredTitle
	}
	profile.RemoteAllowed = req.RemoteAllowed

	result, err := s.pipeline.Recommend(r.Context(), profile, req.Titles)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"jobs":         result.Items,
		"total":        result.Total,
		"fallbackUsed": result.FallbackUsed,
	})
}

func (s *Server) handleSaveJob(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.storeUnavailable(w)
		return
	}

	var req SaveJobRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Job.ID == "" {
		s.writeError(w, &provider.InvalidRequestError{Field: "job.id", Message: "job id is required"})
		return
	}

	saved, err := s.store.SaveJob(r.Context(), req.UserID, req.Job)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]any{"success": true, "saved": saved})
}

func (s *Server) handleApplyJob(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.storeUnavailable(w)
		return
	}

	var req SaveJobRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Job.ID == "" {
		s.writeError(w, &provider.InvalidRequestError{Field: "job.id", Message: "job id is required"})
		return
	}

	saved, err := s.store.MarkApplied(r.Context(), req.UserID, req.Job)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true, "saved": saved})
}

func (s *Server) handleUnsaveJob(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.storeUnavailable(w)
		return
	}

	userID, err := userIDParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.DeleteJob(r.Context(), userID, r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleListSaved(w http.ResponseWriter, r *http.Request) {
	s.listStored(w, r, false)
}

func (s *Server) handleListApplied(w http.ResponseWriter, r *http.Request) {
	s.listStored(w, r, true)
}

func (s *Server) listStored(w http.ResponseWriter, r *http.Request, applied bool) {
	if s.store == nil {
		s.storeUnavailable(w)
		return
	}

	userID, err := userIDParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	list := s.store.ListSaved
	if applied {
		list = s.store.ListApplied
	}
	jobs, err := list(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true, "jobs": jobs})
}

func (s *Server) storeUnavailable(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusServiceUnavailable, map[string]any{
		"success": false,
		"message": "persistence is not configured",
	})
}

func userIDParam(r *http.Request) (uuid.UUID, error) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		return uuid.Nil, &provider.InvalidRequestError{Field: "userId", Message: "userId is required"}
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &provider.InvalidRequestError{Field: "userId", Message: "userId is not a valid UUID"}
	}
	return userID, nil
}
