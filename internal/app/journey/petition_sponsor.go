package journey

import (
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

// PetitionSponsor walks an invited sponsor through signing. The signature
// is built through the sponsor so it is linked to the invitation.
type PetitionSponsor struct {
	signing
}

// NewPetitionSponsor builds a signature for sponsor from attrs with the
// email trimmed.
func NewPetitionSponsor(in ports.StepInput, sponsor *signature.Sponsor, attrs signature.Attributes, saver SignatureSaver) *PetitionSponsor {
	return &PetitionSponsor{signing: newSigning(in, sponsor.BuildSignature(attrs), saver)}
}
