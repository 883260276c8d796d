package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/petitions-service/internal/platform/logging"
)

// logLine returns the first line of out containing msg.
func logLine(out, msg string) string {
	for line := range strings.SplitSeq(out, "\n") {
		if strings.Contains(line, msg) {
			return line
		}
	}
	return ""
}

func TestLogging_CompletionLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
		want   []string
	}{
		{
			name:   "created",
			method: http.MethodPost,
			path:   "/api/v1/petitions",
			status: http.StatusCreated,
			body:   `{"stage":"done"}`,
			want:   []string{"method=POST", "status=201", "bytes=16", "duration="},
		},
		{
			name:   "not found",
			method: http.MethodGet,
			path:   "/missing",
			status: http.StatusNotFound,
			want:   []string{"method=GET", "status=404", "route=/missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			handler.ServeHTTP(rec, req)

			if logLine(buf.String(), "request started") == "" {
				t.Error("log output missing 'request started'")
			}
			completed := logLine(buf.String(), "request completed")
			if completed == "" {
				t.Fatal("log output missing 'request completed'")
			}
			for _, want := range tt.want {
				if !strings.Contains(completed, want) {
					t.Errorf("completion line = %q, missing %q", completed, want)
				}
			}
		})
	}
}

func TestLogging_EnrichesLoggerWithIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(
		middleware.CorrelationID()(
			middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})),
		),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	handler.ServeHTTP(rec, req)

	completed := logLine(buf.String(), "request completed")
	if !strings.Contains(completed, "request_id=req-log-test") {
		t.Errorf("completion line = %q, missing request_id", completed)
	}
	if !strings.Contains(completed, "correlation_id=corr-log-test") {
		t.Errorf("completion line = %q, missing correlation_id", completed)
	}
}

func TestLogging_StoresEnrichedLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fallback := slog.New(slog.DiscardHandler)
	handler := middleware.RequestID()(
		middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContextOr(r.Context(), fallback).InfoContext(r.Context(), "petition created")
		})),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/petitions", http.NoBody)
	req.Header.Set("X-Request-ID", "ctx-logger-test")
	handler.ServeHTTP(rec, req)

	line := logLine(buf.String(), "petition created")
	if line == "" {
		t.Fatal("handler log not captured, enriched logger not stored in context")
	}
	if !strings.Contains(line, "ctx-logger-test") {
		t.Errorf("handler log = %q, missing request_id", line)
	}
}

func TestLogging_DebugHeadersRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer admin-secret")
	handler.ServeHTTP(rec, req)

	headers := logLine(buf.String(), "request headers")
	if headers == "" {
		t.Fatal("debug logger did not log request headers")
	}
	if strings.Contains(headers, "admin-secret") {
		t.Errorf("headers line = %q, leaks Authorization", headers)
	}
}

func TestLogging_CompletionUsesRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Get("/petitions/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/petitions/42", http.NoBody)
	r.ServeHTTP(rec, req)

	completed := logLine(buf.String(), "request completed")
	if !strings.Contains(completed, "route=/petitions/{id}") {
		t.Errorf("completion line = %q, want route pattern", completed)
	}
}
