package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
)

// StepInput is what one request of a staged journey carries besides the
// submitted attributes: the stage the user acted from, the move they asked
// for and the address the request came from. Stage and Move are untrusted.
type StepInput struct {
	Stage    string
	Move     string
	RemoteIP string
}

// PetitionStep is the outcome of one petition creation request. Complete
// reports whether this request stored the petition. Errors holds only what
// the landing stage found.
type PetitionStep struct {
	Stage    string
	Complete bool
	Errors   *domain.FieldErrors
	Petition *petition.Petition
}

// SignatureStep is the outcome of one signing or sponsoring request.
// Complete reports whether this request stored the signature. Errors holds
// only what the landing stage found.
type SignatureStep struct {
	Stage     string
	Complete  bool
	Errors    *domain.FieldErrors
	Signature *signature.Signature
}

// PetitionService defines the service port for petition operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type PetitionService interface {
	// CreatePetition advances the creation journey by one request. The
	// petition is stored only when the journey completes.
	CreatePetition(ctx context.Context, in StepInput, attrs petition.Attributes) (*PetitionStep, error)

	// SignPetition advances the signing journey for an open petition.
	// Returns domain.ErrNotFound if the petition does not exist and
	// domain.ErrConflict if it is not collecting signatures.
	SignPetition(ctx context.Context, petitionID int64, in StepInput, attrs signature.Attributes) (*SignatureStep, error)

	// SponsorPetition advances the signing journey for the sponsor invited
	// under token. Returns domain.ErrNotFound for an unknown token and
	// domain.ErrConflict when the sponsor already signed or the petition no
	// longer collects sponsors.
	SponsorPetition(ctx context.Context, token string, in StepInput, attrs signature.Attributes) (*SignatureStep, error)

	// ValidateSignature confirms a signatory's email address. Confirming
	// twice is not an error. Returns domain.ErrForbidden for a wrong token.
	ValidateSignature(ctx context.Context, id int64, token string) (*signature.Signature, error)

	// GetPetition returns a petition by ID.
	// Returns domain.ErrNotFound if the petition does not exist.
	GetPetition(ctx context.Context, id int64) (*petition.Petition, error)

	// ListPetitions returns petitions matching filter, newest first.
	ListPetitions(ctx context.Context, filter petition.Filter) ([]petition.Petition, error)

	// ModeratePetition publishes or rejects a petition awaiting moderation.
	// Returns domain.ErrConflict if the petition's state forbids the decision.
	ModeratePetition(ctx context.Context, id int64, decision petition.Decision) (*petition.Petition, error)

	// ClosePetitions closes every open petition whose deadline passed at now
	// and returns how many were closed.
	ClosePetitions(ctx context.Context, now time.Time) (int, error)
}
