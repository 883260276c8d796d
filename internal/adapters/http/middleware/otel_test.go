package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/middleware"
)

// OTEL tests are NOT parallel because they modify the global TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return exporter
}

func onlySpan(t *testing.T, exporter *tracetest.InMemoryExporter) (tracetest.SpanStub, map[string]any) {
	t.Helper()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	attrs := make(map[string]any)
	for _, a := range spans[0].Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return spans[0], attrs
}

func TestOpenTelemetry_Span(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		status     int
		wantName   string
		wantStatus codes.Code
	}{
		{"ok without router", http.MethodGet, "/test", http.StatusOK, "GET /test", codes.Unset},
		{"client error stays unset", http.MethodPost, "/items/42", http.StatusNotFound, "POST /items/42", codes.Unset},
		{"server error", http.MethodGet, "/error", http.StatusInternalServerError, "GET /error", codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := setupTracer(t)

			handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, http.NoBody))

			span, attrs := onlySpan(t, exporter)
			if span.Name != tt.wantName {
				t.Errorf("span name = %q, want %q", span.Name, tt.wantName)
			}
			if span.Status.Code != tt.wantStatus {
				t.Errorf("span status = %v, want %v", span.Status.Code, tt.wantStatus)
			}
			if method, _ := attrs["http.request.method"].(string); method != tt.method {
				t.Errorf("http.request.method = %v, want %q", attrs["http.request.method"], tt.method)
			}
			if status, _ := attrs["http.response.status_code"].(int64); status != int64(tt.status) {
				t.Errorf("http.response.status_code = %v, want %d", attrs["http.response.status_code"], tt.status)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/petitions", http.NoBody)
	req.Header.Set("Traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	span, _ := onlySpan(t, exporter)
	if got := span.SpanContext.TraceID().String(); got != traceID {
		t.Errorf("trace ID = %s, want %s", got, traceID)
	}
}

func TestOpenTelemetry_NamesSpanAfterRoutePattern(t *testing.T) {
	exporter := setupTracer(t)

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Post("/petitions/{id}/sponsors/{token}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/petitions/7/sponsors/secret-token-value?x=1", http.NoBody)
	r.ServeHTTP(httptest.NewRecorder(), req)

	span, attrs := onlySpan(t, exporter)
	if want := "POST /petitions/{id}/sponsors/{token}"; span.Name != want {
		t.Errorf("span name = %q, want %q", span.Name, want)
	}
	if route, _ := attrs["http.route"].(string); route != "/petitions/{id}/sponsors/{token}" {
		t.Errorf("http.route = %v, want route pattern", attrs["http.route"])
	}
	for k, v := range attrs {
		if s, ok := v.(string); ok && strings.Contains(s, "secret-token-value") {
			t.Errorf("attribute %s = %q leaks the sponsor token", k, s)
		}
	}
}

func TestOpenTelemetry_UnmatchedRoute(t *testing.T) {
	exporter := setupTracer(t)

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Get("/petitions", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sponsors/secret-token-value", http.NoBody))

	span, attrs := onlySpan(t, exporter)
	if span.Name != "GET unmatched" {
		t.Errorf("span name = %q, want %q", span.Name, "GET unmatched")
	}
	if status, _ := attrs["http.response.status_code"].(int64); status != http.StatusNotFound {
		t.Errorf("http.response.status_code = %v, want 404", attrs["http.response.status_code"])
	}
}
