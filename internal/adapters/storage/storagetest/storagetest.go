// Package storagetest checks a ports.Store implementation against the
// behaviour the application relies on. Adapter tests call Run with a
// factory for fresh, empty stores.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

// Factory returns a fresh, empty store. It should register its own cleanup.
type Factory func(t *testing.T) ports.Store

// Base is the creation time of the first fixture petition.
var Base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// Run executes every store check as a subtest.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s ports.Store)
	}{
		{"CreateAndGetPetition", testCreateAndGetPetition},
		{"GetPetitionNotFound", testGetPetitionNotFound},
		{"ListPetitions", testListPetitions},
		{"ListPetitionsDeadlineBefore", testListPetitionsDeadlineBefore},
		{"UpdatePetition", testUpdatePetition},
		{"IncrementSignatureCount", testIncrementSignatureCount},
		{"FindSponsor", testFindSponsor},
		{"CreateSignatureDuplicateEmail", testCreateSignatureDuplicateEmail},
		{"CreateSignatureUnknownPetition", testCreateSignatureUnknownPetition},
		{"SponsorSignatureLinksSponsor", testSponsorSignatureLinksSponsor},
		{"UpdateSignatureAndCountSponsors", testUpdateSignatureAndCountSponsors},
		{"HealthCheck", testHealthCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

// NewPetition builds a valid pending petition created at created, with one
// sponsor invitation per email.
func NewPetition(action string, created time.Time, sponsorEmails ...string) *petition.Petition {
	p := petition.New(petition.Attributes{
		Action:        action,
		Background:    "Because it matters.",
		SponsorEmails: sponsorEmails,
		Creator: signature.Attributes{
			Name:          "Carol Creator",
			Email:         "carol@example.com",
			Postcode:      "SW1A 1AA",
			LocationCode:  signature.LocationUK,
			UKCitizenship: true,
		},
	})
	p.CreatedAt = created
	p.UpdatedAt = created
	p.CreatorSignature.CreatedAt = created
	p.CreatorSignature.IPAddress = "192.0.2.1"
	for _, email := range p.SponsorEmails {
		sp := signature.NewSponsor(0, email)
		sp.CreatedAt = created
		p.Sponsors = append(p.Sponsors, sp)
	}
	return p
}

// NewSignature builds a valid pending signature for petitionID.
func NewSignature(petitionID int64, email string) *signature.Signature {
	s := signature.New(petitionID, signature.Attributes{
		Name:          "Sam Signer",
		Email:         email,
		Postcode:      "M1 1AE",
		LocationCode:  signature.LocationUK,
		UKCitizenship: true,
		NotifyByEmail: true,
	})
	s.CreatedAt = Base.Add(time.Hour)
	s.IPAddress = "198.51.100.4"
	return s
}

func mustCreatePetition(t *testing.T, s ports.Store, p *petition.Petition) *petition.Petition {
	t.Helper()
	if err := s.CreatePetition(context.Background(), p); err != nil {
		t.Fatalf("CreatePetition() error = %v", err)
	}
	return p
}

func testCreateAndGetPetition(t *testing.T, s ports.Store) {
	ctx := context.Background()
	p := mustCreatePetition(t, s, NewPetition("Plant more trees", Base, "a@example.com", "b@example.com"))

	if p.ID == 0 {
		t.Fatal("CreatePetition did not assign an ID")
	}
	if p.CreatorSignature.ID == 0 || p.CreatorSignature.PetitionID != p.ID {
		t.Errorf("creator signature = {ID:%d PetitionID:%d}, want assigned and linked to %d",
			p.CreatorSignature.ID, p.CreatorSignature.PetitionID, p.ID)
	}
	for i, sp := range p.Sponsors {
		if sp.ID == 0 || sp.PetitionID != p.ID {
			t.Errorf("sponsor %d = {ID:%d PetitionID:%d}, want assigned and linked", i, sp.ID, sp.PetitionID)
		}
	}

	got, err := s.GetPetition(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPetition() error = %v", err)
	}
	if got.Action != "Plant more trees" || got.Background != "Because it matters." {
		t.Errorf("text fields = %q / %q", got.Action, got.Background)
	}
	if got.State != petition.StatePending {
		t.Errorf("State = %q, want pending", got.State)
	}
	if !got.CreatedAt.Equal(Base) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, Base)
	}
	if got.CreatorSignature == nil {
		t.Fatal("CreatorSignature = nil")
	}
	if got.CreatorSignature.Email != "carol@example.com" || got.CreatorSignature.Postcode != "SW1A1AA" {
		t.Errorf("creator = %q / %q", got.CreatorSignature.Email, got.CreatorSignature.Postcode)
	}
	if got.CreatorSignature.Token != p.CreatorSignature.Token {
		t.Error("creator token was not persisted")
	}
	if len(got.Sponsors) != 2 {
		t.Fatalf("len(Sponsors) = %d, want 2", len(got.Sponsors))
	}
	if got.Sponsors[0].Email != "a@example.com" || got.Sponsors[1].Email != "b@example.com" {
		t.Errorf("sponsors = %q, %q; want invitation order", got.Sponsors[0].Email, got.Sponsors[1].Email)
	}
	if len(got.SponsorEmails) != 2 {
		t.Errorf("SponsorEmails = %v, want both addresses", got.SponsorEmails)
	}
}

func testGetPetitionNotFound(t *testing.T, s ports.Store) {
	if _, err := s.GetPetition(context.Background(), 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetPetition() error = %v, want ErrNotFound", err)
	}
}

func testListPetitions(t *testing.T, s ports.Store) {
	ctx := context.Background()
	older := mustCreatePetition(t, s, NewPetition("Older", Base))
	newer := mustCreatePetition(t, s, NewPetition("Newer", Base.Add(time.Hour)))
	rejected := NewPetition("Rejected", Base.Add(2*time.Hour))
	mustCreatePetition(t, s, rejected)
	if err := rejected.Reject(Base.Add(3 * time.Hour)); err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if err := s.UpdatePetition(ctx, rejected); err != nil {
		t.Fatalf("UpdatePetition() error = %v", err)
	}

	pending, err := s.ListPetitions(ctx, petition.Filter{State: petition.StatePending})
	if err != nil {
		t.Fatalf("ListPetitions() error = %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("len(pending) = %d, want 2", len(pending))
	}
	if pending[0].ID != newer.ID || pending[1].ID != older.ID {
		t.Errorf("order = [%d %d], want newest first [%d %d]", pending[0].ID, pending[1].ID, newer.ID, older.ID)
	}

	limited, err := s.ListPetitions(ctx, petition.Filter{Limit: 1})
	if err != nil {
		t.Fatalf("ListPetitions() error = %v", err)
	}
	if len(limited) != 1 || limited[0].ID != rejected.ID {
		t.Errorf("limited = %d items, want only the newest petition", len(limited))
	}
}

func testListPetitionsDeadlineBefore(t *testing.T, s ports.Store) {
	ctx := context.Background()

	open := func(action string, deadline time.Time) *petition.Petition {
		p := mustCreatePetition(t, s, NewPetition(action, Base))
		p.State = petition.StateOpen
		opened := Base
		p.OpenedAt = &opened
		p.Deadline = &deadline
		if err := s.UpdatePetition(ctx, p); err != nil {
			t.Fatalf("UpdatePetition() error = %v", err)
		}
		return p
	}

	due := open("Due", Base.Add(24*time.Hour))
	open("Later", Base.Add(72*time.Hour))

	cutoff := Base.Add(48 * time.Hour)
	got, err := s.ListPetitions(ctx, petition.Filter{State: petition.StateOpen, DeadlineBefore: &cutoff})
	if err != nil {
		t.Fatalf("ListPetitions() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != due.ID {
		t.Fatalf("got %d petitions, want only %d", len(got), due.ID)
	}
	if got[0].Deadline == nil || !got[0].Deadline.Equal(Base.Add(24*time.Hour)) {
		t.Errorf("Deadline = %v, want %v", got[0].Deadline, Base.Add(24*time.Hour))
	}
}

func testUpdatePetition(t *testing.T, s ports.Store) {
	ctx := context.Background()
	p := mustCreatePetition(t, s, NewPetition("Update me", Base))

	p.State = petition.StateSponsored
	if err := s.UpdatePetition(ctx, p); err != nil {
		t.Fatalf("UpdatePetition() error = %v", err)
	}
	if err := p.Publish(Base.Add(time.Hour), 24*time.Hour); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := s.UpdatePetition(ctx, p); err != nil {
		t.Fatalf("UpdatePetition() error = %v", err)
	}

	got, err := s.GetPetition(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPetition() error = %v", err)
	}
	if got.State != petition.StateOpen {
		t.Errorf("State = %q, want open", got.State)
	}
	if got.OpenedAt == nil || !got.OpenedAt.Equal(Base.Add(time.Hour)) {
		t.Errorf("OpenedAt = %v, want %v", got.OpenedAt, Base.Add(time.Hour))
	}
	if got.Deadline == nil || !got.Deadline.Equal(Base.Add(25*time.Hour)) {
		t.Errorf("Deadline = %v, want %v", got.Deadline, Base.Add(25*time.Hour))
	}

	missing := NewPetition("Missing", Base)
	missing.ID = 9999
	if err := s.UpdatePetition(ctx, missing); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdatePetition(missing) error = %v, want ErrNotFound", err)
	}
}

func testIncrementSignatureCount(t *testing.T, s ports.Store) {
	ctx := context.Background()
	p := mustCreatePetition(t, s, NewPetition("Count me", Base))

	for range 3 {
		if err := s.IncrementSignatureCount(ctx, p.ID); err != nil {
			t.Fatalf("IncrementSignatureCount() error = %v", err)
		}
	}

	got, err := s.GetPetition(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPetition() error = %v", err)
	}
	if got.SignatureCount != 3 {
		t.Errorf("SignatureCount = %d, want 3", got.SignatureCount)
	}

	if err := s.IncrementSignatureCount(ctx, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("IncrementSignatureCount(missing) error = %v, want ErrNotFound", err)
	}
}

func testFindSponsor(t *testing.T, s ports.Store) {
	ctx := context.Background()
	p := mustCreatePetition(t, s, NewPetition("Sponsored", Base, "sponsor@example.com"))

	got, err := s.FindSponsor(ctx, p.Sponsors[0].Token)
	if err != nil {
		t.Fatalf("FindSponsor() error = %v", err)
	}
	if got.ID != p.Sponsors[0].ID || got.PetitionID != p.ID || got.Email != "sponsor@example.com" {
		t.Errorf("sponsor = %+v, want the invitation for petition %d", got, p.ID)
	}
	if got.Signed() {
		t.Error("new sponsor reports Signed() = true")
	}

	if _, err := s.FindSponsor(ctx, "no-such-token"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindSponsor(unknown) error = %v, want ErrNotFound", err)
	}
}

func testCreateSignatureDuplicateEmail(t *testing.T, s ports.Store) {
	ctx := context.Background()
	p := mustCreatePetition(t, s, NewPetition("Sign once", Base))
	other := mustCreatePetition(t, s, NewPetition("Other", Base))

	first := NewSignature(p.ID, "sam@example.com")
	if err := s.CreateSignature(ctx, first); err != nil {
		t.Fatalf("CreateSignature() error = %v", err)
	}
	if first.ID == 0 {
		t.Error("CreateSignature did not assign an ID")
	}

	err := s.CreateSignature(ctx, NewSignature(p.ID, "SAM@example.com"))
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("duplicate CreateSignature() error = %v, want *ValidationError", err)
	}
	if verr.Fields["email"] != signature.MsgAlreadySigned {
		t.Errorf("Fields = %v, want email: %q", verr.Fields, signature.MsgAlreadySigned)
	}

	err = s.CreateSignature(ctx, NewSignature(p.ID, "carol@example.com"))
	if !errors.As(err, &verr) {
		t.Errorf("signing as the creator error = %v, want *ValidationError", err)
	}

	if err := s.CreateSignature(ctx, NewSignature(other.ID, "sam@example.com")); err != nil {
		t.Errorf("same email on another petition error = %v, want nil", err)
	}
}

func testCreateSignatureUnknownPetition(t *testing.T, s ports.Store) {
	err := s.CreateSignature(context.Background(), NewSignature(9999, "sam@example.com"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("CreateSignature() error = %v, want ErrNotFound", err)
	}
}

func testSponsorSignatureLinksSponsor(t *testing.T, s ports.Store) {
	ctx := context.Background()
	p := mustCreatePetition(t, s, NewPetition("Sponsor me", Base, "sponsor@example.com"))

	sponsor, err := s.FindSponsor(ctx, p.Sponsors[0].Token)
	if err != nil {
		t.Fatalf("FindSponsor() error = %v", err)
	}

	sig := sponsor.BuildSignature(signature.Attributes{
		Name:          "Sue Sponsor",
		Email:         "sponsor@example.com",
		Postcode:      "EH1 1YZ",
		LocationCode:  signature.LocationUK,
		UKCitizenship: true,
	})
	if err := s.CreateSignature(ctx, sig); err != nil {
		t.Fatalf("CreateSignature() error = %v", err)
	}

	sponsor, err = s.FindSponsor(ctx, p.Sponsors[0].Token)
	if err != nil {
		t.Fatalf("FindSponsor() error = %v", err)
	}
	if !sponsor.Signed() || *sponsor.SignatureID != sig.ID {
		t.Errorf("sponsor.SignatureID = %v, want %d", sponsor.SignatureID, sig.ID)
	}

	again := sponsor.BuildSignature(signature.Attributes{Name: "Sue", Email: "sue.other@example.com"})
	if err := s.CreateSignature(ctx, again); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second sponsor signature error = %v, want ErrConflict", err)
	}
}

func testUpdateSignatureAndCountSponsors(t *testing.T, s ports.Store) {
	ctx := context.Background()
	p := mustCreatePetition(t, s, NewPetition("Validate", Base, "one@example.com", "two@example.com"))

	var sponsorSigs []*signature.Signature
	for i, email := range []string{"one@example.com", "two@example.com"} {
		sig := p.Sponsors[i].BuildSignature(signature.Attributes{
			Name: "Sponsor", Email: email, Postcode: "M1 1AE", LocationCode: "GB", UKCitizenship: true,
		})
		if err := s.CreateSignature(ctx, sig); err != nil {
			t.Fatalf("CreateSignature() error = %v", err)
		}
		sponsorSigs = append(sponsorSigs, sig)
	}
	public := NewSignature(p.ID, "public@example.com")
	if err := s.CreateSignature(ctx, public); err != nil {
		t.Fatalf("CreateSignature() error = %v", err)
	}

	validatedAt := Base.Add(2 * time.Hour)
	for _, sig := range []*signature.Signature{sponsorSigs[0], public} {
		if _, err := sig.Confirm(sig.Token, validatedAt); err != nil {
			t.Fatalf("Confirm() error = %v", err)
		}
		if err := s.UpdateSignature(ctx, sig); err != nil {
			t.Fatalf("UpdateSignature() error = %v", err)
		}
	}

	got, err := s.GetSignature(ctx, sponsorSigs[0].ID)
	if err != nil {
		t.Fatalf("GetSignature() error = %v", err)
	}
	if !got.Validated() || got.ValidatedAt == nil || !got.ValidatedAt.Equal(validatedAt) {
		t.Errorf("signature = {State:%s ValidatedAt:%v}, want validated at %v", got.State, got.ValidatedAt, validatedAt)
	}
	if got.SponsorID == nil || *got.SponsorID != p.Sponsors[0].ID {
		t.Errorf("SponsorID = %v, want %d", got.SponsorID, p.Sponsors[0].ID)
	}
	if got.Postcode != "M11AE" || !got.UKCitizenship {
		t.Errorf("signature fields = %q / %v", got.Postcode, got.UKCitizenship)
	}

	n, err := s.CountValidatedSponsorSignatures(ctx, p.ID)
	if err != nil {
		t.Fatalf("CountValidatedSponsorSignatures() error = %v", err)
	}
	if n != 1 {
		t.Errorf("validated sponsors = %d, want 1 (public signatures excluded)", n)
	}

	if _, err := s.GetSignature(ctx, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetSignature(missing) error = %v, want ErrNotFound", err)
	}
	missing := NewSignature(p.ID, "ghost@example.com")
	missing.ID = 9999
	if err := s.UpdateSignature(ctx, missing); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateSignature(missing) error = %v, want ErrNotFound", err)
	}
}

func testHealthCheck(t *testing.T, s ports.Store) {
	if s.Name() == "" {
		t.Error("Name() is empty")
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil", err)
	}
}
