package server

import (
	"net/http"
	"strconv"

	"github.com/jobscout/jobscout/internal/provider"
)

func (s *Server) handleSearchVideos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		s.writeError(w, &provider.InvalidRequestError{Field: "query", Message: "query is required"})
		return
	}

	maxResults := 0
	if raw := r.URL.Query().Get("maxResults"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			s.writeError(w, &provider.InvalidRequestError{
				Field: "maxResults", Message: "maxResults must be between 1 and 50",
			})
			return
		}
		maxResults = n
	}

	result, err := s.pipeline.Videos(r.Context(), query, maxResults)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"videos":       result.Videos,
		"fallbackUsed": result.FallbackUsed,
	})
}
