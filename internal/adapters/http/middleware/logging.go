package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/petitions-service/internal/platform/logging"
)

// Logging derives a request logger carrying the request and correlation
// IDs, stores it on the context for handlers and services, and logs one
// line when the request arrives and one when it is answered.
//
// The arrival line has the raw path, which the redacting handler scrubs of
// sponsor tokens; the answer line has the route pattern. Headers are logged
// at debug level with credentials masked.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLog := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLog)

			reqLog.LogAttrs(ctx, slog.LevelInfo, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_ip", r.RemoteAddr),
			)
			if reqLog.Enabled(ctx, slog.LevelDebug) {
				reqLog.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			reqLog.LogAttrs(ctx, slog.LevelInfo, "request completed",
				slog.String("method", r.Method),
				slog.String("route", routeLabel(r)),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
