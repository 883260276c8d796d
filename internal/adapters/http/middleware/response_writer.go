// Package middleware holds the inbound HTTP pipeline. Stack returns it in
// execution order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Logs and spans name requests by their chi route pattern, which keeps
// sponsor tokens in request paths out of telemetry.
package middleware

import "net/http"

// statusRecorder remembers the status and size of a response. Every
// middleware in one pipeline shares the outermost recorder.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	bytes   int64
	started bool
}

// record wraps w, or returns w itself when an outer middleware already
// wrapped it.
func record(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status only.
func (rec *statusRecorder) WriteHeader(code int) {
	if rec.started {
		return
	}
	rec.status = code
	rec.started = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.started = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
