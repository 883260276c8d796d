package petition

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
)

// Field length limits, in characters.
const (
	MaxActionLength            = 80
	MaxBackgroundLength        = 300
	MaxAdditionalDetailsLength = 800
)

// DefaultMaxSponsors is the number of sponsor addresses accepted when the
// service is not configured otherwise.
const DefaultMaxSponsors = 20

// CreatorPrefix keys creator signature errors on the petition.
const CreatorPrefix = "creator_signature"

// DetailsRules check the petition's own text. They also repeat any field
// the store refused, so a refused petition fails on its first stage.
var DetailsRules = []domain.Rule[*Petition]{
	requireAction,
	requireBackground,
	limitAdditionalDetails,
	domain.Refused[*Petition](),
}

// SponsorRules check the sponsor addresses, accepting at most maxSponsors.
func SponsorRules(maxSponsors int) []domain.Rule[*Petition] {
	return []domain.Rule[*Petition]{
		func(p *Petition, errs *domain.FieldErrors) {
			limitSponsors(p, errs, maxSponsors)
		},
		checkSponsorEmails,
	}
}

func requireAction(p *Petition, errs *domain.FieldErrors) {
	requireText(errs, "action", p.Action, MaxActionLength)
}

func requireBackground(p *Petition, errs *domain.FieldErrors) {
	requireText(errs, "background", p.Background, MaxBackgroundLength)
}

func limitAdditionalDetails(p *Petition, errs *domain.FieldErrors) {
	if utf8.RuneCountInString(p.AdditionalDetails) > MaxAdditionalDetailsLength {
		errs.Add("additional_details", domain.MsgTooLong(MaxAdditionalDetailsLength))
	}
}

func requireText(errs *domain.FieldErrors, field, value string, limit int) {
	switch {
	case strings.TrimSpace(value) == "":
		errs.Add(field, domain.MsgRequired)
	case utf8.RuneCountInString(value) > limit:
		errs.Add(field, domain.MsgTooLong(limit))
	}
}

func limitSponsors(p *Petition, errs *domain.FieldErrors, maxSponsors int) {
	if len(p.SponsorEmails) > maxSponsors {
		errs.Add("sponsor_emails", fmt.Sprintf("can have at most %d addresses", maxSponsors))
	}
}

func checkSponsorEmails(p *Petition, errs *domain.FieldErrors) {
	seen := make(map[string]struct{}, len(p.SponsorEmails))
	for _, email := range p.SponsorEmails {
		if !signature.ValidEmail(email) {
			errs.Add("sponsor_emails", fmt.Sprintf("%q %s", email, domain.MsgInvalidEmail))
			continue
		}
		key := strings.ToLower(email)
		if _, dup := seen[key]; dup {
			errs.Add("sponsor_emails", fmt.Sprintf("%q is listed more than once", email))
		}
		seen[key] = struct{}{}
		if p.CreatorSignature != nil && strings.EqualFold(email, p.CreatorSignature.Email) {
			errs.Add("sponsor_emails", "cannot include your own email address")
		}
	}
}
