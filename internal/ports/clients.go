package ports

import (
	"context"

	"github.com/jsamuelsen11/petitions-service/internal/domain/constituency"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
)

// ConstituencyClient defines the client port for the downstream constituency
// lookup API. Implemented by the ACL adapter; called by the application layer.
type ConstituencyClient interface {
	// LookupConstituency resolves a normalised UK postcode.
	// Returns domain.ErrNotFound if the postcode matches no constituency.
	LookupConstituency(ctx context.Context, postcode string) (*constituency.Constituency, error)
}

// Notifier tells people about petitions and signatures. Implementations
// must not block on slow delivery.
type Notifier interface {
	// PetitionCreated is called after a petition and its creator signature
	// are stored.
	PetitionCreated(ctx context.Context, p *petition.Petition) error

	// SignatureCreated is called after a signature is stored, so the
	// signatory can confirm their email address.
	SignatureCreated(ctx context.Context, s *signature.Signature) error
}
