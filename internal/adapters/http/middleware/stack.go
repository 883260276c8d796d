package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/jsamuelsen11/petitions-service/internal/platform/telemetry"
)

// Chain composes middleware so that the first argument runs outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(middlewares) {
			h = mw(h)
		}
		return h
	}
}

// StackConfig configures the standard inbound pipeline. Metrics may be nil.
type StackConfig struct {
	Logger         *slog.Logger
	Metrics        *telemetry.Metrics
	RequestTimeout time.Duration
}

// Stack returns the standard inbound pipeline in execution order. A zero
// RequestTimeout leaves the Timeout middleware out.
func Stack(cfg StackConfig) []func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	stack := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(cfg.Metrics),
		Logging(logger),
	}
	if cfg.RequestTimeout > 0 {
		stack = append(stack, Timeout(cfg.RequestTimeout))
	}
	return stack
}
