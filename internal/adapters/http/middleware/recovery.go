package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/dto"
)

// Recovery turns a handler panic into an RFC 9457 500 response and an error
// log with the stack. The panic value never reaches the client. When the
// handler had already started its response, only the log is written.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logPanic(logger, r, rec.Header().Get(headerRequestID), v)
				if !rec.started {
					dto.WriteStatusResponse(rec, r, http.StatusInternalServerError, "")
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}

// logPanic takes the request ID from the response header because RequestID
// runs inside Recovery and stores it on a derived request.
func logPanic(logger *slog.Logger, r *http.Request, requestID string, v any) {
	logger.ErrorContext(r.Context(), "panic recovered",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("stack", string(debug.Stack())),
		slog.String("method", r.Method),
		slog.String("route", routeLabel(r)),
		slog.String("request_id", requestID),
	)
}
