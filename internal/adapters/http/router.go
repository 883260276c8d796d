// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// RealIP runs first so handlers see the client address behind a proxy;
// the given middleware follows in order.
func NewRouter(
	petitionHandler *handlers.PetitionHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatusResponse(w, r, http.StatusNotFound, "no route matches the request path")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatusResponse(w, r, http.StatusMethodNotAllowed, r.Method+" is not supported on this path")
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/petitions", petitionHandler.ListPetitions)
		r.Get("/petitions/{id}", petitionHandler.GetPetition)

		// Staged journeys.
		r.Post("/petitions", petitionHandler.CreatePetition)
		r.Post("/petitions/{id}/signatures", petitionHandler.SignPetition)
		r.Post("/sponsors/{token}/signatures", petitionHandler.SponsorPetition)

		r.Post("/signatures/{id}/validation", petitionHandler.ValidateSignature)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/petitions/{id}/moderation", petitionHandler.ModeratePetition)
		})
	})

	return r
}
