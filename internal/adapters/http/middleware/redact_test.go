package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/petitions-service/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

func headerValues(h http.Header) map[string]string {
	values := make(map[string]string)
	for _, a := range middleware.RedactHeaders(h) {
		values[a.Key] = a.Value.String()
	}
	return values
}

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "empty",
			headers: http.Header{},
			want:    map[string]string{},
		},
		{
			name: "credentials redacted",
			headers: http.Header{
				"Authorization": {"Bearer secret"},
				"X-Api-Key":     {"key-123"},
				"Cookie":        {"session=abc"},
			},
			want: map[string]string{
				"Authorization": redactedValue,
				"X-Api-Key":     redactedValue,
				"Cookie":        redactedValue,
			},
		},
		{
			name: "mixed",
			headers: http.Header{
				"Authorization": {"Bearer secret"},
				"Content-Type":  {"application/json"},
			},
			want: map[string]string{
				"Authorization": redactedValue,
				"Content-Type":  "application/json",
			},
		},
		{
			name:    "multi-value joined",
			headers: http.Header{"Accept": {"text/html", "application/json"}},
			want:    map[string]string{"Accept": "text/html,application/json"},
		},
		{
			name:    "forwarded address kept for the redacting handler",
			headers: http.Header{"X-Forwarded-For": {"192.0.2.10"}},
			want:    map[string]string{"X-Forwarded-For": "192.0.2.10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := headerValues(tt.headers)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d attrs %v, want %d", len(got), got, len(tt.want))
			}
			for k, want := range tt.want {
				if got[k] != want {
					t.Errorf("%s = %q, want %q", k, got[k], want)
				}
			}
		})
	}
}

func TestRedactHeaders_CoversEverySensitiveHeader(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	for name := range logging.SensitiveHeaders {
		h.Set(name, "secret")
	}

	for k, v := range headerValues(h) {
		if v != redactedValue {
			t.Errorf("%s = %q, want %q", k, v, redactedValue)
		}
	}
}
