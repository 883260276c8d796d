package signature

import (
	"time"

	"github.com/google/uuid"
)

// Sponsor is an address the petition creator invited to support the petition
// before it is published. A sponsor signs at most once, through Token.
type Sponsor struct {
	ID          int64
	PetitionID  int64
	Email       string
	Token       string
	SignatureID *int64
	CreatedAt   time.Time
}

// NewSponsor returns an unsigned sponsor invitation with a fresh token.
func NewSponsor(petitionID int64, email string) Sponsor {
	return Sponsor{
		PetitionID: petitionID,
		Email:      email,
		Token:      uuid.NewString(),
	}
}

// BuildSignature returns a pending signature linked to the sponsor and its
// petition.
func (sp *Sponsor) BuildSignature(attrs Attributes) *Signature {
	sig := New(sp.PetitionID, attrs)
	sponsorID := sp.ID
	sig.SponsorID = &sponsorID
	return sig
}

// Signed reports whether the sponsor has already signed.
func (sp *Sponsor) Signed() bool {
	return sp.SignatureID != nil
}
