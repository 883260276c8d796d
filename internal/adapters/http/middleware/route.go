package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests a chi router saw but could not route.
const unmatchedRoute = "unmatched"

// routeLabel names the request for logs, spans and metrics by its chi route
// pattern, so sponsor tokens in the path never reach them. Requests outside
// a chi router fall back to the path. Only meaningful after the handler has
// served the request.
func routeLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
