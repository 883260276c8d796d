// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

// PetitionResponse represents a petition in HTTP responses. Personal data
// of the creator and sponsors is never included.
type PetitionResponse struct {
	ID                int64   `json:"id,omitempty"`
	Action            string  `json:"action"`
	Background        string  `json:"background"`
	AdditionalDetails string  `json:"additional_details,omitempty"`
	State             string  `json:"state"`
	CreatorName       string  `json:"creator_name,omitempty"`
	SponsorCount      int     `json:"sponsor_count,omitempty"`
	SignatureCount    int     `json:"signature_count"`
	OpenedAt          *string `json:"opened_at,omitempty"`
	Deadline          *string `json:"deadline,omitempty"`
	ClosedAt          *string `json:"closed_at,omitempty"`
	CreatedAt         string  `json:"created_at,omitempty"`
	UpdatedAt         string  `json:"updated_at,omitempty"`
}

// PetitionListResponse represents a list of petitions in HTTP responses.
type PetitionListResponse struct {
	Petitions []PetitionResponse `json:"petitions"`
	Count     int                `json:"count"`
}

// SignatureResponse represents a signature in HTTP responses. The email
// address and confirmation token stay private.
type SignatureResponse struct {
	ID             int64   `json:"id,omitempty"`
	PetitionID     int64   `json:"petition_id"`
	Name           string  `json:"name"`
	State          string  `json:"state"`
	ConstituencyID string  `json:"constituency_id,omitempty"`
	ValidatedAt    *string `json:"validated_at,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// StepResponse is the outcome of one journey request.
type StepResponse struct {
	Stage     string             `json:"stage"`
	Complete  bool               `json:"complete"`
	Errors    []ErrorDetail      `json:"errors,omitempty"`
	Petition  *PetitionResponse  `json:"petition,omitempty"`
	Signature *SignatureResponse `json:"signature,omitempty"`
}

// Status is the HTTP status for the step: 201 once stored, 422 while the
// current stage has errors and 200 otherwise.
func (s StepResponse) Status() int {
	switch {
	case s.Complete:
		return http.StatusCreated
	case len(s.Errors) > 0:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusOK
	}
}

// ToPetitionResponse converts a domain Petition to an HTTP response DTO.
func ToPetitionResponse(p *petition.Petition) PetitionResponse {
	resp := PetitionResponse{
		ID:                p.ID,
		Action:            p.Action,
		Background:        p.Background,
		AdditionalDetails: p.AdditionalDetails,
		State:             p.State.String(),
		SponsorCount:      len(p.Sponsors),
		SignatureCount:    p.SignatureCount,
		OpenedAt:          formatTimePtr(p.OpenedAt),
		Deadline:          formatTimePtr(p.Deadline),
		ClosedAt:          formatTimePtr(p.ClosedAt),
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
	if p.CreatorSignature != nil {
		resp.CreatorName = p.CreatorSignature.Name
	}
	return resp
}

// ToPetitionListResponse converts a slice of petitions to a list response.
func ToPetitionListResponse(petitions []petition.Petition) PetitionListResponse {
	items := make([]PetitionResponse, len(petitions))
	for i := range petitions {
		items[i] = ToPetitionResponse(&petitions[i])
	}
	return PetitionListResponse{
		Petitions: items,
		Count:     len(items),
	}
}

// ToSignatureResponse converts a domain Signature to an HTTP response DTO.
func ToSignatureResponse(s *signature.Signature) SignatureResponse {
	return SignatureResponse{
		ID:             s.ID,
		PetitionID:     s.PetitionID,
		Name:           s.Name,
		State:          s.State.String(),
		ConstituencyID: s.ConstituencyID,
		ValidatedAt:    formatTimePtr(s.ValidatedAt),
		CreatedAt:      formatTime(s.CreatedAt),
	}
}

// ToPetitionStepResponse converts a creation step.
func ToPetitionStepResponse(step *ports.PetitionStep) StepResponse {
	resp := StepResponse{
		Stage:    step.Stage,
		Complete: step.Complete,
		Errors:   FieldErrorDetails(step.Errors),
	}
	if step.Petition != nil {
		p := ToPetitionResponse(step.Petition)
		resp.Petition = &p
	}
	return resp
}

// ToSignatureStepResponse converts a signing or sponsoring step.
func ToSignatureStepResponse(step *ports.SignatureStep) StepResponse {
	resp := StepResponse{
		Stage:    step.Stage,
		Complete: step.Complete,
		Errors:   FieldErrorDetails(step.Errors),
	}
	if step.Signature != nil {
		s := ToSignatureResponse(step.Signature)
		resp.Signature = &s
	}
	return resp
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
