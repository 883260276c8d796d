package journey

import (
	"context"
	"errors"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
)

// PetitionSaver persists a new petition with its creator signature.
// A *domain.ValidationError reports a constraint the store enforces, such
// as uniqueness.
type PetitionSaver interface {
	CreatePetition(ctx context.Context, p *petition.Petition) error
}

// SignatureSaver persists a new signature. A *domain.ValidationError reports
// a constraint the store enforces, such as one signature per email.
type SignatureSaver interface {
	CreateSignature(ctx context.Context, s *signature.Signature) error
}

// settle turns a saver's result into the staged save contract. Validation
// errors are handed to refuse and reported as a failed save.
func settle(err error, refuse func(*domain.ValidationError)) (bool, error) {
	if err == nil {
		return true, nil
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		refuse(verr)
		return false, nil
	}
	return false, err
}
