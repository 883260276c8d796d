package signature

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
)

// LocationUK is the location code of signatories resident in the United Kingdom.
const LocationUK = "GB"

// Attributes holds the flat values submitted for a signature.
type Attributes struct {
	Name          string
	Email         string
	Postcode      string
	LocationCode  string
	UKCitizenship bool
	NotifyByEmail bool
}

// Signature is one person's support for a petition. The creator of a petition
// signs it too, through the same type.
type Signature struct {
	ID             int64
	PetitionID     int64
	SponsorID      *int64
	Name           string
	Email          string
	Postcode       string
	LocationCode   string
	UKCitizenship  bool
	NotifyByEmail  bool
	IPAddress      string
	ConstituencyID string
	State          State
	Token          string
	ValidatedAt    *time.Time
	CreatedAt      time.Time

	errs    domain.FieldErrors
	refused domain.FieldErrors
}

// New builds a pending signature for petitionID from submitted attributes.
// A fresh confirmation token is generated; the postcode is normalised.
func New(petitionID int64, attrs Attributes) *Signature {
	return &Signature{
		PetitionID:    petitionID,
		Name:          attrs.Name,
		Email:         attrs.Email,
		Postcode:      NormalizePostcode(attrs.Postcode),
		LocationCode:  strings.ToUpper(strings.TrimSpace(attrs.LocationCode)),
		UKCitizenship: attrs.UKCitizenship,
		NotifyByEmail: attrs.NotifyByEmail,
		State:         StatePending,
		Token:         uuid.NewString(),
	}
}

// Errors returns the signature's accumulated validation errors.
func (s *Signature) Errors() *domain.FieldErrors {
	return &s.errs
}

// Refusals returns the field errors the store reported when it refused
// the signature.
func (s *Signature) Refusals() *domain.FieldErrors {
	return &s.refused
}

// Refuse records a store's refusal on both the refusals and the errors.
func (s *Signature) Refuse(verr *domain.ValidationError) {
	s.refused.AddValidation(verr)
	s.errs.AddValidation(verr)
}

// Validate runs every signature rule, records failures and reports whether
// this run produced none.
func (s *Signature) Validate() bool {
	var errs domain.FieldErrors
	for _, rule := range DetailsRules {
		rule(s, &errs)
	}
	s.errs.Merge(&errs)
	return errs.Empty()
}

// InUK reports whether the signatory gave a UK location.
func (s *Signature) InUK() bool {
	return s.LocationCode == LocationUK
}

// Validated reports whether the signatory confirmed their email address.
func (s *Signature) Validated() bool {
	return s.State == StateValidated
}

// Confirm marks the signature validated when token matches. It returns false
// without error when the signature was already validated.
func (s *Signature) Confirm(token string, now time.Time) (bool, error) {
	if token == "" || token != s.Token {
		return false, domain.ErrForbidden
	}
	if s.Validated() {
		return false, nil
	}
	s.State = StateValidated
	validatedAt := now
	s.ValidatedAt = &validatedAt
	return true, nil
}

// Clone returns a deep copy of s without its validation errors or
// refusals.
func (s *Signature) Clone() *Signature {
	if s == nil {
		return nil
	}
	out := *s
	out.errs = domain.FieldErrors{}
	out.refused = domain.FieldErrors{}
	if s.SponsorID != nil {
		id := *s.SponsorID
		out.SponsorID = &id
	}
	if s.ValidatedAt != nil {
		at := *s.ValidatedAt
		out.ValidatedAt = &at
	}
	return &out
}
