// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

// PetitionHandler serves the petition journeys, signature confirmation,
// petition reads and moderation.
type PetitionHandler struct {
	svc ports.PetitionService
}

// NewPetitionHandler creates a new PetitionHandler with the given service port.
func NewPetitionHandler(svc ports.PetitionService) *PetitionHandler {
	return &PetitionHandler{svc: svc}
}

// ListPetitions handles GET /api/v1/petitions?state=open&limit=50.
func (h *PetitionHandler) ListPetitions(w http.ResponseWriter, r *http.Request) {
	filter := petition.Filter{State: petition.State(r.URL.Query().Get("state"))}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("limit", "must be a positive integer"))
			return
		}
		filter.Limit = limit
	}

	petitions, err := h.svc.ListPetitions(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToPetitionListResponse(petitions))
}

// GetPetition handles GET /api/v1/petitions/{id}.
func (h *PetitionHandler) GetPetition(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetPetition(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToPetitionResponse(p))
}

// CreatePetition handles POST /api/v1/petitions. Each request moves the
// creation journey one stage; the petition is stored when it completes.
func (h *PetitionHandler) CreatePetition(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePetitionRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	step, err := h.svc.CreatePetition(r.Context(), req.StepInput(remoteIP(r)), req.Attributes())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeStep(w, r, dto.ToPetitionStepResponse(step))
}

// SignPetition handles POST /api/v1/petitions/{id}/signatures.
func (h *PetitionHandler) SignPetition(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SignRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	step, err := h.svc.SignPetition(r.Context(), id, req.StepInput(remoteIP(r)), req.Signature.Attributes())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeStep(w, r, dto.ToSignatureStepResponse(step))
}

// SponsorPetition handles POST /api/v1/sponsors/{token}/signatures.
func (h *PetitionHandler) SponsorPetition(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req dto.SignRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	step, err := h.svc.SponsorPetition(r.Context(), token, req.StepInput(remoteIP(r)), req.Signature.Attributes())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeStep(w, r, dto.ToSignatureStepResponse(step))
}

// ValidateSignature handles POST /api/v1/signatures/{id}/validation.
func (h *PetitionHandler) ValidateSignature(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ValidateSignatureRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sig, err := h.svc.ValidateSignature(r.Context(), id, req.Token)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSignatureResponse(sig))
}

// ModeratePetition handles POST /api/v1/admin/petitions/{id}/moderation.
func (h *PetitionHandler) ModeratePetition(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ModerationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.ModeratePetition(r.Context(), id, petition.Decision(req.Decision))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToPetitionResponse(p))
}
