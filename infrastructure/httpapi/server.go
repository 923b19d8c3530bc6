package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

// Pipeline abstracts the video-location pipeline so the HTTP layer can be
// tested with substitutes
type Pipeline interface {
	Run(ctx context.Context, url string) ([]string, error)
}

// Server exposes the pipeline behind a single HTTP endpoint:
// POST /extract-locations/ with {"url": "..."} returns {"locations": [...]}
// The serving layer handles requests concurrently; each request owns its own
// session so nothing serializes across them.
type Server struct {
	bind     string
	logger   *slog.Logger
	pipeline Pipeline

	listener net.Listener
	server   *http.Server
}

// NewServer creates an HTTP server for the given pipeline
func NewServer(bind string, pipeline Pipeline, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		bind:     bind,
		logger:   logger,
		pipeline: pipeline,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/extract-locations/", s.handleExtractLocations)

	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start begins serving and shuts down gracefully when ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", slog.String("error", err.Error()))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", slog.String("address", listener.Addr().String()))
	return nil
}

// Addr returns the bound listen address, or "" before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Handler returns the HTTP handler (for testing)
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

type extractRequest struct {
	URL string `json:"url"`
}

type extractResponse struct {
	Locations []string `json:"locations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleExtractLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		s.writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	locations, err := s.pipeline.Run(r.Context(), req.URL)
	if err != nil {
		s.logger.Error("pipeline failed",
			slog.String("url", req.URL),
			slog.String("error", err.Error()),
		)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, extractResponse{Locations: locations})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("write response", slog.String("error", err.Error()))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
