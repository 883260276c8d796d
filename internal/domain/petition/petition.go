package petition

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
)

// Attributes holds the flat values submitted when creating a petition.
type Attributes struct {
	Action            string
	Background        string
	AdditionalDetails string
	SponsorEmails     []string
	Creator           signature.Attributes
}

// Petition is a request to government, created by one person and signed by
// many. It collects sponsors before moderation and signatures once open.
type Petition struct {
	ID                int64
	Action            string
	Background        string
	AdditionalDetails string
	State             State
	CreatorSignature  *signature.Signature
	SponsorEmails     []string
	Sponsors          []signature.Sponsor
	SignatureCount    int
	Deadline          *time.Time
	OpenedAt          *time.Time
	ClosedAt          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	errs    domain.FieldErrors
	refused domain.FieldErrors
}

// New builds a pending petition and its creator signature from submitted
// attributes. Blank sponsor addresses are dropped and the rest trimmed.
func New(attrs Attributes) *Petition {
	emails := make([]string, 0, len(attrs.SponsorEmails))
	for _, email := range attrs.SponsorEmails {
		if email = strings.TrimSpace(email); email != "" {
			emails = append(emails, email)
		}
	}

	return &Petition{
		Action:            attrs.Action,
		Background:        attrs.Background,
		AdditionalDetails: attrs.AdditionalDetails,
		State:             StatePending,
		CreatorSignature:  signature.New(0, attrs.Creator),
		SponsorEmails:     emails,
	}
}

// Errors returns the petition's accumulated validation errors, including
// creator signature errors under the "creator_signature." prefix.
func (p *Petition) Errors() *domain.FieldErrors {
	return &p.errs
}

// Refusals returns the field errors the store reported when it refused
// the petition, creator signature fields included under their prefix.
func (p *Petition) Refusals() *domain.FieldErrors {
	return &p.refused
}

// Refuse records a store's refusal on both the refusals and the errors.
func (p *Petition) Refuse(verr *domain.ValidationError) {
	p.refused.AddValidation(verr)
	p.errs.AddValidation(verr)
}

// Validate runs the details, sponsor and creator signature rules, records
// failures and reports whether this run produced none.
func (p *Petition) Validate(maxSponsors int) bool {
	var own domain.FieldErrors
	for _, rule := range DetailsRules {
		rule(p, &own)
	}
	for _, rule := range SponsorRules(maxSponsors) {
		rule(p, &own)
	}

	var creator domain.FieldErrors
	if p.CreatorSignature == nil {
		creator.Add("", domain.MsgRequired)
	} else {
		for _, rule := range signature.DetailsRules {
			rule(p.CreatorSignature, &creator)
		}
		p.CreatorSignature.Errors().Merge(&creator)
	}

	errs := domain.Propagate(&own, &creator, CreatorPrefix)
	p.errs.Merge(errs)
	return errs.Empty()
}

// AcceptsSignatures reports whether the public may sign.
func (p *Petition) AcceptsSignatures() bool {
	return p.State == StateOpen
}

// AcceptsSponsors reports whether sponsors may still sign.
func (p *Petition) AcceptsSponsors() bool {
	return p.State.Moderatable()
}

// Closable reports whether p is open and its deadline has passed at now.
func (p *Petition) Closable(now time.Time) bool {
	return p.State == StateOpen && p.Deadline != nil && !now.Before(*p.Deadline)
}

// MarkValidated moves a pending petition to validated once the creator has
// confirmed their email. It reports whether the state changed.
func (p *Petition) MarkValidated(now time.Time) bool {
	if p.State != StatePending {
		return false
	}
	p.State = StateValidated
	p.UpdatedAt = now
	return true
}

// MarkSponsored moves a validated petition to sponsored when sponsorCount
// reaches threshold. It reports whether the state changed.
func (p *Petition) MarkSponsored(sponsorCount, threshold int, now time.Time) bool {
	if p.State != StateValidated || sponsorCount < threshold {
		return false
	}
	p.State = StateSponsored
	p.UpdatedAt = now
	return true
}

// Publish opens a sponsored petition for signatures until now+duration.
func (p *Petition) Publish(now time.Time, duration time.Duration) error {
	if p.State != StateSponsored {
		return fmt.Errorf("publish petition in state %s: %w", p.State, domain.ErrConflict)
	}
	deadline := now.Add(duration)
	opened := now
	p.State = StateOpen
	p.OpenedAt = &opened
	p.Deadline = &deadline
	p.UpdatedAt = now
	return nil
}

// Reject refuses a petition that has not been published.
func (p *Petition) Reject(now time.Time) error {
	if !p.State.Moderatable() {
		return fmt.Errorf("reject petition in state %s: %w", p.State, domain.ErrConflict)
	}
	p.State = StateRejected
	p.UpdatedAt = now
	return nil
}

// Close stops an open petition whose deadline has passed.
func (p *Petition) Close(now time.Time) error {
	if !p.Closable(now) {
		return fmt.Errorf("close petition in state %s: %w", p.State, domain.ErrConflict)
	}
	closed := now
	p.State = StateClosed
	p.ClosedAt = &closed
	p.UpdatedAt = now
	return nil
}

// SponsorFor returns the sponsor invited under token.
func (p *Petition) SponsorFor(token string) (*signature.Sponsor, bool) {
	for i := range p.Sponsors {
		if p.Sponsors[i].Token == token {
			return &p.Sponsors[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy of p without validation errors or refusals.
func (p *Petition) Clone() *Petition {
	if p == nil {
		return nil
	}
	out := *p
	out.errs = domain.FieldErrors{}
	out.refused = domain.FieldErrors{}
	out.CreatorSignature = p.CreatorSignature.Clone()
	out.SponsorEmails = slices.Clone(p.SponsorEmails)
	out.Sponsors = slices.Clone(p.Sponsors)
	for i := range out.Sponsors {
		if id := out.Sponsors[i].SignatureID; id != nil {
			v := *id
			out.Sponsors[i].SignatureID = &v
		}
	}
	out.Deadline = cloneTime(p.Deadline)
	out.OpenedAt = cloneTime(p.OpenedAt)
	out.ClosedAt = cloneTime(p.ClosedAt)
	return &out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
