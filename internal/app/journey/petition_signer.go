package journey

import (
	"context"
	"strings"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
	"github.com/jsamuelsen11/petitions-service/internal/staged"
)

// signing is shared by the signer and sponsor journeys.
type signing struct {
	signature *signature.Signature
	manager   *staged.Manager[*signature.Signature]
	saver     SignatureSaver
	remoteIP  string
}

func newSigning(in ports.StepInput, sig *signature.Signature, saver SignatureSaver) signing {
	sig.Email = strings.TrimSpace(sig.Email)
	return signing{
		signature: sig,
		manager:   staged.NewManager(signingSequence, sig, in.Stage, staged.Move(in.Move)),
		saver:     saver,
		remoteIP:  in.RemoteIP,
	}
}

// Stage returns the name of the stage the request lands on.
func (s *signing) Stage() string {
	return s.manager.ResultStage().Name()
}

// StartingStage returns the name of the stage the request came from.
func (s *signing) StartingStage() string {
	return s.manager.StartingStage().Name()
}

// StageObject returns the validation view of the current stage.
func (s *signing) StageObject() staged.Object {
	return s.manager.ResultStage().Object()
}

// Complete reports whether the journey reached its terminal stage.
func (s *signing) Complete() bool {
	return s.manager.ResultStage().Complete()
}

// Signature returns the signature under construction.
func (s *signing) Signature() *signature.Signature {
	return s.signature
}

// Errors returns the errors the current stage found on this request.
func (s *signing) Errors() *domain.FieldErrors {
	return s.StageObject().Errors()
}

// CreateSignature saves the signature once the journey is complete. The
// request address is recorded only at this point.
func (s *signing) CreateSignature(ctx context.Context) (bool, error) {
	return s.manager.Create(ctx, s.save)
}

func (s *signing) save(ctx context.Context) (bool, error) {
	s.signature.IPAddress = s.remoteIP
	if !s.signature.Validate() {
		return false, nil
	}
	return settle(s.saver.CreateSignature(ctx, s.signature), s.signature.Refuse)
}

// PetitionSigner walks a member of the public through signing a petition.
type PetitionSigner struct {
	signing
}

// NewPetitionSigner builds a signature on p from attrs with the email
// trimmed.
func NewPetitionSigner(in ports.StepInput, p *petition.Petition, attrs signature.Attributes, saver SignatureSaver) *PetitionSigner {
	return &PetitionSigner{signing: newSigning(in, signature.New(p.ID, attrs), saver)}
}
