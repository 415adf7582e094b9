// Package http serves the rendered chart and the operational endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/domain"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/observability"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// ChartProvider returns the encoded chart for a display mode.
type ChartProvider interface {
	PNG(mode domain.DisplayMode) ([]byte, error)
}

// Server exposes the chart, the display-mode toggle, and the health,
// readiness, and metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	charts     ChartProvider
	modes      *ModeController
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer wires all routes onto a ServeMux.
func NewServer(addr string, charts ChartProvider, modes *ModeController, ready ReadinessChecker, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		charts:  charts,
		modes:   modes,
		logger:  logger,
		metrics: metrics,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /chart.png", s.handleChart)
	mux.HandleFunc("POST /toggle", s.handleToggle)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleChart renders the matrix with the current display mode. A ?mode=
// query overrides the mode for this response without flipping the flag.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	mode := s.modes.Mode()
	if q := r.URL.Query().Get("mode"); q != "" {
		var err error
		mode, err = domain.ParseDisplayMode(q)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	start := time.Now()
	data, err := s.charts.PNG(mode)
	if err != nil {
		s.logger.Error("render chart failed", "mode", mode.String(), "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
		return
	}
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	s.metrics.Renders.WithLabelValues(mode.String()).Inc()

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck // best-effort image response
}

func (s *Server) handleToggle(w http.ResponseWriter, _ *http.Request) {
	mode := s.modes.Toggle()
	s.logger.Info("display mode toggled", "mode", mode.String())
	writeJSON(w, http.StatusOK, map[string]string{"mode": mode.String()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
