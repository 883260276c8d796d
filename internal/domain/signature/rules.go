package signature

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
)

// MaxNameLength is the longest accepted signatory name.
const MaxNameLength = 255

// MsgInvalidPostcode is recorded against a malformed UK postcode.
const MsgInvalidPostcode = "is not a valid postcode"

// MsgAlreadySigned is recorded against an email that has already signed
// the petition.
const MsgAlreadySigned = "has already signed this petition"

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	postcodePattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]?[0-9][A-Z]{2}$`)
)

// EmailRules check the signatory's email address, including a store's
// refusal of it.
var EmailRules = []domain.Rule[*Signature]{
	requireEmail,
	domain.Refused[*Signature]("email"),
}

// DetailsRules check everything a signatory must supply and repeat every
// field the store refused.
var DetailsRules = []domain.Rule[*Signature]{
	requireName,
	requireEmail,
	requireLocation,
	requirePostcode,
	requireCitizenship,
	domain.Refused[*Signature](),
}

// ValidEmail reports whether email looks like a deliverable address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizePostcode upper-cases a postcode and removes all whitespace.
func NormalizePostcode(postcode string) string {
	return strings.ToUpper(strings.Join(strings.Fields(postcode), ""))
}

// ValidPostcode reports whether a normalised postcode has the UK shape.
func ValidPostcode(postcode string) bool {
	return postcodePattern.MatchString(postcode)
}

func requireName(s *Signature, errs *domain.FieldErrors) {
	switch {
	case strings.TrimSpace(s.Name) == "":
		errs.Add("name", domain.MsgRequired)
	case utf8.RuneCountInString(s.Name) > MaxNameLength:
		errs.Add("name", domain.MsgTooLong(MaxNameLength))
	}
}

func requireEmail(s *Signature, errs *domain.FieldErrors) {
	switch {
	case strings.TrimSpace(s.Email) == "":
		errs.Add("email", domain.MsgRequired)
	case !ValidEmail(s.Email):
		errs.Add("email", domain.MsgInvalidEmail)
	}
}

func requireLocation(s *Signature, errs *domain.FieldErrors) {
	if s.LocationCode == "" {
		errs.Add("location_code", domain.MsgRequired)
	}
}

func requirePostcode(s *Signature, errs *domain.FieldErrors) {
	if !s.InUK() {
		return
	}
	switch {
	case s.Postcode == "":
		errs.Add("postcode", domain.MsgRequired)
	case !ValidPostcode(s.Postcode):
		errs.Add("postcode", MsgInvalidPostcode)
	}
}

func requireCitizenship(s *Signature, errs *domain.FieldErrors) {
	if !s.UKCitizenship {
		errs.Add("uk_citizenship", domain.MsgAccepted)
	}
}
