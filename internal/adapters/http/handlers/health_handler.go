package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/petitions-service/internal/platform/logging"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// healthReport is the body of both probes. Checks maps each dependency to
// "ok" or its error text.
type healthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler reports readiness from registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It never consults dependencies.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, healthReport{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when the store and every other
// registered dependency answer, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	report := healthReport{Status: statusReady, Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(ctx) {
		if err == nil {
			report.Checks[name] = statusOK
			continue
		}
		report.Checks[name] = err.Error()
		report.Status, code = statusNotReady, http.StatusServiceUnavailable
		logging.FromContext(ctx).WarnContext(ctx, "dependency not ready",
			slog.String("dependency", name),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, report)
}
