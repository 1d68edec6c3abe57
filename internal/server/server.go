package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zerocreations/tunegrab/internal/logger"
	"github.com/zerocreations/tunegrab/internal/version"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server serves the operational HTTP endpoints.
type Server struct {
	// httpServer is the underlying HTTP server.
	httpServer *http.Server
	// startedAt is used to report uptime from the health endpoint.
	startedAt time.Time
}

// healthResponse is the health endpoint payload.
type healthResponse struct {
	// Status is always "ok" when the process is serving.
	Status string `json:"status"`
	// Version is the application version.
	Version string `json:"version"`
	// Uptime is the time since process start, as a Go duration string.
	Uptime string `json:"uptime"`
}

// NewServer creates an operational HTTP server listening on addr.
func NewServer(addr string) *Server {
	server := &Server{
		startedAt: time.Now(),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Get("/healthz", server.handleHealth)

	server.httpServer = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return server
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Infof(ctx, "Health endpoint listening on %s", s.httpServer.Addr)

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}

// handleHealth reports process liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{
		Status:  "ok",
		Version: version.Version,
		Uptime:  time.Since(s.startedAt).Round(time.Second).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Warnf(r.Context(), "Failed to encode health response: %v", err)
	}
}
