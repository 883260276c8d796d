package handlers_test

import (
	"errors"
	"maps"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/petitions-service/internal/platform/health"
	"github.com/jsamuelsen11/petitions-service/mocks"
)

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// registryWith registers one mock checker per entry; a nil error is healthy.
func registryWith(t *testing.T, checks map[string]error) *health.Registry {
	t.Helper()
	registry := health.New()
	for name, err := range checks {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(name).Maybe()
		c.EXPECT().HealthCheck(mock.Anything).Return(err).Maybe()
		registry.Register(c)
	}
	return registry
}

func TestLiveness_IgnoresDependencies(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(registryWith(t, map[string]error{"store": errors.New("down")}))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
	body := decodeJSON[healthBody](t, rec)
	if body.Status != "ok" || body.Checks != nil {
		t.Errorf("body = %+v, want status ok without checks", body)
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checks     map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "nothing registered",
			checks:     nil,
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: nil,
		},
		{
			name:       "store healthy",
			checks:     map[string]error{"store": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{"store": "ok"},
		},
		{
			name: "constituency lookup failing",
			checks: map[string]error{
				"store":            nil,
				"constituency-api": errors.New("constituency-api circuit breaker open: failing"),
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]string{
				"store":            "ok",
				"constituency-api": "constituency-api circuit breaker open: failing",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewHealthHandler(registryWith(t, tt.checks))

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			body := decodeJSON[healthBody](t, rec)
			if body.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", body.Status, tt.wantStatus)
			}
			if !maps.Equal(body.Checks, tt.wantChecks) {
				t.Errorf("checks = %v, want %v", body.Checks, tt.wantChecks)
			}
		})
	}
}
