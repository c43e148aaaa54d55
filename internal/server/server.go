package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jobscout/jobscout/internal/pipeline"
	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/store"
)

// Config holds server configuration.
type Config struct {
	Port int
}

// Server represents the HTTP server. The store and calendar adapter are
// optional; their endpoints answer 503 when absent.
type Server struct {
	httpServer *http.Server
	pipeline   *pipeline.Pipeline
	store      *store.Store
	calendar   provider.CalendarWriter
	validator  *validator.Validate
	logger     *zap.Logger
}

// New creates a new server instance.
func New(cfg Config, p *pipeline.Pipeline, st *store.Store, cal provider.CalendarWriter, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		pipeline:  p,
		store:     st,
		calendar:  cal,
		validator: validator.New(),
		logger:    logger,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Job search endpoints
	mux.HandleFunc("GET /jobs/search", s.handleSearchJobs)
	mux.HandleFunc("POST /jobs/recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /jobs/save", s.handleSaveJob)
	mux.HandleFunc("POST /jobs/apply", s.handleApplyJob)
	mux.HandleFunc("DELETE /jobs/saved/{id}", s.handleUnsaveJob)
	mux.HandleFunc("GET /jobs/saved", s.handleListSaved)
	mux.HandleFunc("GET /jobs/applied", s.handleListApplied)

	// AI generation endpoints
	mux.HandleFunc("POST /ai/interview-prep", s.handleInterviewPrep)
	mux.HandleFunc("POST /ai/roadmap", s.handleRoadmap)
	mux.HandleFunc("POST /ai/skill-gap", s.handleSkillGap)
	mux.HandleFunc("POST /resume/parse", s.handleParseResume)

	// Video search
	mux.HandleFunc("GET /videos/search", s.handleSearchVideos)

	// Calendar endpoints
	mux.HandleFunc("POST /calendar/interview", s.handleCreateInterview)
	mux.HandleFunc("POST /calendar/deadline", s.handleCreateDeadline)
	mux.HandleFunc("GET /calendar/interviews", s.handleListInterviews)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.store != nil {
		s.store.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, status, map[string]any{
		"success": false,
		"message": err.Error(),
	})
}

// decodeAndValidate decodes a JSON request body and runs struct validation.
func (s *Server) decodeAndValidate(r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return &provider.InvalidRequestError{Field: "body", Message: "invalid JSON"}
	}
	if err := s.validator.Struct(req); err != nil {
		return &provider.InvalidRequestError{Field: "body", Message: err.Error()}
	}
	return nil
}
