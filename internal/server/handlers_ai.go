package server

import (
	"net/http"

	"github.com/jobscout/jobscout/internal/types"
)

// GenerationHTTPRequest is the body shared by the AI generation endpoints.
type GenerationHTTPRequest struct {
	JobTitle       string `json:"jobTitle" validate:"required"`
	Company        string `json:"company"`
	JobDescription string `json:"jobDescription"`
	Skills         string `json:"skills"`
	Experience     string `json:"experience"`
	Summary        string `json:"summary"`
}

// ParseResumeRequest is the body of POST /resume/parse.
type ParseResumeRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
}

func (req *GenerationHTTPRequest) toGeneration() types.GenerationRequest {
	return types.GenerationRequest{
		SubjectTitle: req.JobTitle,
		Context: map[string]string{
			"company":        req.Company,
			"jobDescription": req.JobDescription,
			"skills":         req.Skills,
			"experience":     req.Experience,
			"summary":        req.Summary,
		},
	}
}

func (s *Server) handleInterviewPrep(w http.ResponseWriter, r *http.Request) {
	var req GenerationHTTPRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.pipeline.InterviewPrep(r.Context(), req.toGeneration())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"prep":         result.Prep,
		"videos":       result.Videos,
		"fallbackUsed": result.FallbackUsed,
	})
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req GenerationHTTPRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.pipeline.Roadmap(r.Context(), req.toGeneration())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"roadmap":      result.Roadmap,
		"fallbackUsed": result.FallbackUsed,
	})
}

func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	var req GenerationHTTPRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.pipeline.SkillGap(r.Context(), req.toGeneration())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"analysis":     result.Analysis,
		"fallbackUsed": result.FallbackUsed,
	})
}

func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req ParseResumeRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.pipeline.ParseResume(r.Context(), req.ResumeText)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"resume":       result.Resume,
		"fallbackUsed": result.FallbackUsed,
	})
}
