package dto

import (
	"strings"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

const msgRequired = "is required"

// StepRequest carries the journey position of a form submission. Both
// fields are untrusted and passed through as submitted; unknown values fall
// back to the first stage and to staying put.
type StepRequest struct {
	Stage string `json:"stage"`
	Move  string `json:"move"`
}

// StepInput converts the request to the service's step input.
func (r StepRequest) StepInput(remoteIP string) ports.StepInput {
	return ports.StepInput{Stage: r.Stage, Move: r.Move, RemoteIP: remoteIP}
}

// SignatureRequest holds the signatory fields of a form submission.
type SignatureRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Postcode      string `json:"postcode"`
	LocationCode  string `json:"location_code"`
	UKCitizenship bool   `json:"uk_citizenship"`
	NotifyByEmail bool   `json:"notify_by_email"`
}

// Attributes converts the request to signature attributes.
func (r SignatureRequest) Attributes() signature.Attributes {
	return signature.Attributes{
		Name:          r.Name,
		Email:         r.Email,
		Postcode:      r.Postcode,
		LocationCode:  r.LocationCode,
		UKCitizenship: r.UKCitizenship,
		NotifyByEmail: r.NotifyByEmail,
	}
}

// PetitionRequest holds the petition fields of a creation submission.
type PetitionRequest struct {
	Action            string           `json:"action"`
	Background        string           `json:"background"`
	AdditionalDetails string           `json:"additional_details"`
	SponsorEmails     []string         `json:"sponsor_emails"`
	CreatorSignature  SignatureRequest `json:"creator_signature"`
}

// CreatePetitionRequest is the body of POST /api/v1/petitions. Field
// problems are not checked here; the journey reports them against the
// stage that owns the field.
type CreatePetitionRequest struct {
	StepRequest
	Petition PetitionRequest `json:"petition"`
}

// Attributes converts the request to petition attributes.
func (r *CreatePetitionRequest) Attributes() petition.Attributes {
	return petition.Attributes{
		Action:            r.Petition.Action,
		Background:        r.Petition.Background,
		AdditionalDetails: r.Petition.AdditionalDetails,
		SponsorEmails:     r.Petition.SponsorEmails,
		Creator:           r.Petition.CreatorSignature.Attributes(),
	}
}

// SignRequest is the body of the signing and sponsoring endpoints.
type SignRequest struct {
	StepRequest
	Signature SignatureRequest `json:"signature"`
}

// ValidateSignatureRequest is the body of POST
// /api/v1/signatures/{id}/validation.
type ValidateSignatureRequest struct {
	Token string `json:"token"`
}

// Validate checks that a token was supplied.
func (r *ValidateSignatureRequest) Validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return domain.NewValidationError("token", msgRequired)
	}
	return nil
}

// ModerationRequest is the body of POST
// /api/v1/admin/petitions/{id}/moderation.
type ModerationRequest struct {
	Decision string `json:"decision"`
}

// Validate checks the decision is one the service understands.
func (r *ModerationRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.Decision) == "":
		return domain.NewValidationError("decision", msgRequired)
	case !petition.Decision(r.Decision).IsValid():
		return domain.NewValidationError("decision", "must be publish or reject")
	}
	return nil
}
