package ports

import (
	"context"

	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
)

// PetitionStore persists petitions with their creator signature and sponsor
// invitations. Implemented by the storage adapters.
type PetitionStore interface {
	// CreatePetition stores p, its creator signature and its sponsors in one
	// transaction and assigns their IDs and timestamps.
	CreatePetition(ctx context.Context, p *petition.Petition) error

	// GetPetition returns a petition with its creator signature and sponsors.
	// Returns domain.ErrNotFound if the petition does not exist.
	GetPetition(ctx context.Context, id int64) (*petition.Petition, error)

	// ListPetitions returns petitions matching filter, newest first, without
	// their creator signature or sponsors.
	ListPetitions(ctx context.Context, filter petition.Filter) ([]petition.Petition, error)

	// UpdatePetition saves p's lifecycle fields: state, deadline and the
	// opened and closed times.
	// Returns domain.ErrNotFound if the petition does not exist.
	UpdatePetition(ctx context.Context, p *petition.Petition) error

	// IncrementSignatureCount atomically adds one to a petition's count.
	IncrementSignatureCount(ctx context.Context, petitionID int64) error

	// FindSponsor returns the sponsor invited under token.
	// Returns domain.ErrNotFound if no sponsor has that token.
	FindSponsor(ctx context.Context, token string) (*signature.Sponsor, error)
}

// SignatureStore persists signatures. Implemented by the storage adapters.
type SignatureStore interface {
	// CreateSignature stores s and assigns its ID. A petition accepts one
	// signature per email address, compared case-insensitively; a duplicate
	// is reported as a *domain.ValidationError on "email". A signature with
	// a SponsorID is linked to that sponsor in the same transaction.
	CreateSignature(ctx context.Context, s *signature.Signature) error

	// GetSignature returns a signature by ID.
	// Returns domain.ErrNotFound if the signature does not exist.
	GetSignature(ctx context.Context, id int64) (*signature.Signature, error)

	// UpdateSignature saves s's state and validation time.
	// Returns domain.ErrNotFound if the signature does not exist.
	UpdateSignature(ctx context.Context, s *signature.Signature) error

	// CountValidatedSponsorSignatures returns how many sponsors of a petition
	// have confirmed their signature.
	CountValidatedSponsorSignatures(ctx context.Context, petitionID int64) (int, error)
}

// Store is a storage adapter serving both store ports.
type Store interface {
	PetitionStore
	SignatureStore
	HealthChecker
	Close() error
}
