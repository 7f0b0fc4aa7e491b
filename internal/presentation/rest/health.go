package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides HTTP health check endpoints for the decision service.
type HealthHandler struct {
	logger       *slog.Logger
	startTime    time.Time
	db           Pinger
	modelsLoaded func() bool
}

// NewHealthHandler creates a new health check handler. modelsLoaded reports
// whether the scoring artifacts were loaded at startup; a service running
// without them is alive but not ready.
func NewHealthHandler(logger *slog.Logger, db Pinger, modelsLoaded func() bool) *HealthHandler {
	return &HealthHandler{
		logger:       logger,
		startTime:    time.Now(),
		db:           db,
		modelsLoaded: modelsLoaded,
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// ReadinessResponse is the JSON response for readiness checks.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

// RegisterRoutes registers health endpoints on the provided ServeMux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
}

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "healthy",
		Service: "decision-service",
		Uptime:  time.Since(h.startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Readyz handles readiness probe requests. The service is ready only when
// the database answers a ping and the scoring artifacts are loaded.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	ready := true
	checks := map[string]string{
		"database": "ok",
		"models":   "ok",
	}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("readiness database ping failed", "error", err)
		checks["database"] = "unreachable"
		ready = false
	}
	if !h.modelsLoaded() {
		checks["models"] = "not loaded"
		ready = false
	}

	resp := ReadinessResponse{
		Status:  "ready",
		Service: "decision-service",
		Checks:  checks,
	}

	code := http.StatusOK
	if !ready {
		resp.Status = "not ready"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}
