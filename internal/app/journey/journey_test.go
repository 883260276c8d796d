package journey

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

type petitionSaverFunc func(context.Context, *petition.Petition) error

func (f petitionSaverFunc) CreatePetition(ctx context.Context, p *petition.Petition) error {
	return f(ctx, p)
}

type signatureSaverFunc func(context.Context, *signature.Signature) error

func (f signatureSaverFunc) CreateSignature(ctx context.Context, s *signature.Signature) error {
	return f(ctx, s)
}

func acceptPetition(context.Context, *petition.Petition) error { return nil }

func acceptSignature(context.Context, *signature.Signature) error { return nil }

func signerAttributes() signature.Attributes {
	return signature.Attributes{
		Name:          "Jo Public",
		Email:         "  jo@example.com ",
		Postcode:      "SW1A 1AA",
		LocationCode:  "GB",
		UKCitizenship: true,
	}
}

func petitionAttributes() petition.Attributes {
	return petition.Attributes{
		Action:        "  Fund more public libraries ",
		Background:    "Libraries are closing. ",
		SponsorEmails: []string{"a@example.com"},
		Creator:       signerAttributes(),
	}
}

func newCreator(stage, move string, attrs petition.Attributes, saver PetitionSaver) *PetitionCreator {
	in := ports.StepInput{Stage: stage, Move: move, RemoteIP: "192.0.2.10"}
	return NewPetitionCreator(in, attrs, petition.DefaultMaxSponsors, saver)
}

func TestSequences(t *testing.T) {
	t.Parallel()

	wantCreation := []string{"petition", "creator", "sponsors", "replay-petition", "replay-email", "done"}
	if got := CreationStages(); !slices.Equal(got, wantCreation) {
		t.Errorf("CreationStages() = %v, want %v", got, wantCreation)
	}
	wantSigning := []string{"signer", "replay-email", "done"}
	if got := SigningStages(); !slices.Equal(got, wantSigning) {
		t.Errorf("SigningStages() = %v, want %v", got, wantSigning)
	}
}

func TestPetitionCreator_Transitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from     string
		wantNext string
		wantBack string
	}{
		{from: StagePetition, wantNext: StageReplayPetition, wantBack: StagePetition},
		{from: StageReplayPetition, wantNext: StageCreator, wantBack: StagePetition},
		{from: StageCreator, wantNext: StageReplayEmail, wantBack: StageReplayPetition},
		{from: StageSponsors, wantNext: StageReplayEmail, wantBack: StageCreator},
		{from: StageReplayEmail, wantNext: StageDone, wantBack: StageCreator},
		{from: StageDone, wantNext: StageDone, wantBack: StageDone},
		{from: "bogus", wantNext: StageReplayPetition, wantBack: StagePetition},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			t.Parallel()

			next := newCreator(tt.from, "next", petitionAttributes(), petitionSaverFunc(acceptPetition))
			if got := next.Stage(); got != tt.wantNext {
				t.Errorf("next from %q = %q, want %q", tt.from, got, tt.wantNext)
			}

			back := newCreator(tt.from, "back", petition.Attributes{}, petitionSaverFunc(acceptPetition))
			if got := back.Stage(); got != tt.wantBack {
				t.Errorf("back from %q = %q, want %q", tt.from, got, tt.wantBack)
			}
			if !back.Errors().Empty() {
				t.Errorf("back from %q validated: %v", tt.from, back.Errors().Fields())
			}
		})
	}
}

func TestPetitionCreator_InvalidStageStays(t *testing.T) {
	t.Parallel()

	attrs := petitionAttributes()
	attrs.Action = "   "
	c := newCreator(StagePetition, "next", attrs, petitionSaverFunc(acceptPetition))

	if c.Stage() != StagePetition {
		t.Errorf("Stage() = %q, want %q", c.Stage(), StagePetition)
	}
	if !c.Errors().Has("action") {
		t.Errorf("errors = %v, want action", c.Errors().Fields())
	}
	if c.StageObject().Valid() {
		t.Error("StageObject().Valid() = true")
	}
}

func TestPetitionCreator_CreatorStagePropagatesErrors(t *testing.T) {
	t.Parallel()

	attrs := petitionAttributes()
	attrs.Creator.Name = ""
	c := newCreator(StageCreator, "next", attrs, petitionSaverFunc(acceptPetition))

	if c.Stage() != StageCreator {
		t.Fatalf("Stage() = %q, want %q", c.Stage(), StageCreator)
	}
	if !c.Errors().Has("creator_signature.name") {
		t.Errorf("errors = %v, want creator_signature.name", c.Errors().Fields())
	}
}

func TestPetitionCreator_Sanitizes(t *testing.T) {
	t.Parallel()

	c := newCreator(StagePetition, "", petitionAttributes(), petitionSaverFunc(acceptPetition))
	p := c.Petition()

	if p.Action != "Fund more public libraries" {
		t.Errorf("Action = %q", p.Action)
	}
	if p.Background != "Libraries are closing." {
		t.Errorf("Background = %q", p.Background)
	}
	if p.CreatorSignature.Email != "jo@example.com" {
		t.Errorf("creator Email = %q", p.CreatorSignature.Email)
	}
	if p.CreatorSignature.IPAddress != "192.0.2.10" {
		t.Errorf("creator IPAddress = %q, want it copied at construction", p.CreatorSignature.IPAddress)
	}
}

func TestPetitionCreator_CreatePetition(t *testing.T) {
	t.Parallel()

	var saved *petition.Petition
	c := newCreator(StageReplayEmail, "next", petitionAttributes(), petitionSaverFunc(
		func(_ context.Context, p *petition.Petition) error {
			saved = p
			return nil
		}))

	ok, err := c.CreatePetition(context.Background())
	if !ok || err != nil {
		t.Fatalf("CreatePetition() = %v, %v, errors %v", ok, err, c.Errors().Fields())
	}
	if saved != c.Petition() {
		t.Error("saver did not receive the petition")
	}
	if !c.Complete() || c.Stage() != StageDone {
		t.Errorf("Stage() = %q, want done", c.Stage())
	}
}

func TestPetitionCreator_CreateBeforeDone(t *testing.T) {
	t.Parallel()

	called := false
	c := newCreator(StagePetition, "next", petitionAttributes(), petitionSaverFunc(
		func(context.Context, *petition.Petition) error {
			called = true
			return nil
		}))

	ok, err := c.CreatePetition(context.Background())
	if ok || err != nil {
		t.Errorf("CreatePetition() = %v, %v, want false, nil", ok, err)
	}
	if called {
		t.Error("saver called before the journey was complete")
	}
}

func TestPetitionCreator_RecoveryLandsOnCreatorForMissingEmail(t *testing.T) {
	t.Parallel()

	attrs := petitionAttributes()
	attrs.Creator.Email = " "
	c := newCreator(StageDone, "", attrs, petitionSaverFunc(acceptPetition))

	ok, err := c.CreatePetition(context.Background())
	if ok || err != nil {
		t.Fatalf("CreatePetition() = %v, %v, want false, nil", ok, err)
	}
	if c.Stage() != StageCreator {
		t.Errorf("Stage() = %q, want %q", c.Stage(), StageCreator)
	}
	if !c.Errors().Has("creator_signature.email") {
		t.Errorf("errors = %v, want creator_signature.email", c.Errors().Fields())
	}
}

func TestPetitionCreator_RecoveryLandsOnPetitionForMissingAction(t *testing.T) {
	t.Parallel()

	attrs := petitionAttributes()
	attrs.Action = ""
	c := newCreator(StageDone, "next", attrs, petitionSaverFunc(acceptPetition))

	if ok, _ := c.CreatePetition(context.Background()); ok {
		t.Fatal("CreatePetition() = true")
	}
	if c.Stage() != StagePetition {
		t.Errorf("Stage() = %q, want %q", c.Stage(), StagePetition)
	}
}

func TestPetitionCreator_StoreValidationError(t *testing.T) {
	t.Parallel()

	c := newCreator(StageDone, "", petitionAttributes(), petitionSaverFunc(
		func(context.Context, *petition.Petition) error {
			return domain.NewValidationError("action", "has already been used")
		}))

	ok, err := c.CreatePetition(context.Background())
	if ok || err != nil {
		t.Fatalf("CreatePetition() = %v, %v, want false, nil", ok, err)
	}
	if c.Stage() != StagePetition {
		t.Errorf("Stage() = %q, want %q", c.Stage(), StagePetition)
	}
	if msgs := c.Errors().On("action"); !slices.Contains(msgs, "has already been used") {
		t.Errorf("On(action) = %v", msgs)
	}
	if !c.Petition().Refusals().Has("action") {
		t.Error("refusal not kept on the petition")
	}
}

func TestPetitionCreator_RecoveryShowsLandingStageErrors(t *testing.T) {
	t.Parallel()

	attrs := petitionAttributes()
	attrs.Action = ""
	attrs.Creator.Name = ""
	attrs.Creator.Email = ""
	c := newCreator(StageDone, "next", attrs, petitionSaverFunc(acceptPetition))

	if ok, err := c.CreatePetition(context.Background()); ok || err != nil {
		t.Fatalf("CreatePetition() = %v, %v, want false, nil", ok, err)
	}
	if c.Stage() != StagePetition {
		t.Fatalf("Stage() = %q, want %q", c.Stage(), StagePetition)
	}
	if got := c.Errors().Fields(); !slices.Equal(got, []string{"action"}) {
		t.Errorf("Errors().Fields() = %v, want [action]", got)
	}
	if !c.Petition().Errors().Has("creator_signature.name") {
		t.Errorf("petition errors = %v, want the creator errors kept", c.Petition().Errors().Fields())
	}
}

func TestPetitionCreator_InvalidSponsorRecoversToReview(t *testing.T) {
	t.Parallel()

	attrs := petitionAttributes()
	attrs.SponsorEmails = []string{"not-an-email"}

	c := newCreator(StageReplayEmail, "next", attrs, petitionSaverFunc(acceptPetition))
	if ok, err := c.CreatePetition(context.Background()); ok || err != nil {
		t.Fatalf("CreatePetition() = %v, %v, want false, nil", ok, err)
	}
	if c.Stage() != StageReplayPetition {
		t.Fatalf("Stage() = %q, want %q", c.Stage(), StageReplayPetition)
	}
	if got := c.Errors().Fields(); !slices.Equal(got, []string{"sponsor_emails"}) {
		t.Errorf("Errors().Fields() = %v, want [sponsor_emails]", got)
	}

	back := newCreator(c.Stage(), "back", attrs, petitionSaverFunc(acceptPetition))
	if back.Stage() != StagePetition {
		t.Errorf("back from %q = %q, want %q", c.Stage(), back.Stage(), StagePetition)
	}
	stay := newCreator(StageReplayPetition, "next", attrs, petitionSaverFunc(acceptPetition))
	if stay.Stage() != StageReplayPetition {
		t.Errorf("next from replay-petition = %q, want it to stay", stay.Stage())
	}
}

func TestPetitionCreator_StoreFailure(t *testing.T) {
	t.Parallel()

	errDown := errors.New("connection refused")
	c := newCreator(StageDone, "", petitionAttributes(), petitionSaverFunc(
		func(context.Context, *petition.Petition) error { return errDown }))

	ok, err := c.CreatePetition(context.Background())
	if ok || !errors.Is(err, errDown) {
		t.Errorf("CreatePetition() = %v, %v, want false, %v", ok, err, errDown)
	}
}

func TestPetitionCreator_StageIsMemoized(t *testing.T) {
	t.Parallel()

	c := newCreator(StagePetition, "next", petitionAttributes(), petitionSaverFunc(acceptPetition))

	first := c.manager.ResultStage()
	if c.manager.ResultStage() != first {
		t.Error("ResultStage() recomputed")
	}
	if c.StartingStage() != StagePetition {
		t.Errorf("StartingStage() = %q", c.StartingStage())
	}
}

func TestPetitionSigner_MissingNameStays(t *testing.T) {
	t.Parallel()

	attrs := signerAttributes()
	attrs.Name = ""
	p := &petition.Petition{ID: 5, State: petition.StateOpen}

	s := NewPetitionSigner(ports.StepInput{Stage: StageSigner, Move: "next"}, p, attrs, signatureSaverFunc(acceptSignature))

	if s.Stage() != StageSigner {
		t.Errorf("Stage() = %q, want %q", s.Stage(), StageSigner)
	}
	if !s.Errors().Has("name") {
		t.Errorf("errors = %v, want name", s.Errors().Fields())
	}
}

func TestPetitionSigner_Transitions(t *testing.T) {
	t.Parallel()

	p := &petition.Petition{ID: 5, State: petition.StateOpen}
	tests := []struct {
		from, move, want string
	}{
		{from: StageSigner, move: "next", want: StageReplayEmail},
		{from: StageSigner, move: "back", want: StageSigner},
		{from: StageReplayEmail, move: "next", want: StageDone},
		{from: StageReplayEmail, move: "back", want: StageSigner},
		{from: StageReplayEmail, move: "stay", want: StageReplayEmail},
		{from: "", move: "next", want: StageReplayEmail},
	}

	for _, tt := range tests {
		s := NewPetitionSigner(ports.StepInput{Stage: tt.from, Move: tt.move}, p, signerAttributes(), signatureSaverFunc(acceptSignature))
		if got := s.Stage(); got != tt.want {
			t.Errorf("%s + %s = %q, want %q", tt.from, tt.move, got, tt.want)
		}
	}
}

func TestPetitionSigner_StampsAddressOnFinalize(t *testing.T) {
	t.Parallel()

	p := &petition.Petition{ID: 5, State: petition.StateOpen}
	var saved *signature.Signature
	s := NewPetitionSigner(ports.StepInput{Stage: StageReplayEmail, Move: "next", RemoteIP: "198.51.100.7"}, p, signerAttributes(),
		signatureSaverFunc(func(_ context.Context, sig *signature.Signature) error {
			saved = sig
			return nil
		}))

	if s.Signature().IPAddress != "" {
		t.Errorf("IPAddress = %q before finalize, want empty", s.Signature().IPAddress)
	}
	if s.Signature().Email != "jo@example.com" {
		t.Errorf("Email = %q, want trimmed", s.Signature().Email)
	}

	ok, err := s.CreateSignature(context.Background())
	if !ok || err != nil {
		t.Fatalf("CreateSignature() = %v, %v, errors %v", ok, err, s.Errors().Fields())
	}
	if saved == nil || saved.IPAddress != "198.51.100.7" || saved.PetitionID != 5 {
		t.Errorf("saved signature = %+v", saved)
	}
}

func TestPetitionSigner_DuplicateRecoversToSigner(t *testing.T) {
	t.Parallel()

	p := &petition.Petition{ID: 5, State: petition.StateOpen}
	s := NewPetitionSigner(ports.StepInput{Stage: StageDone}, p, signerAttributes(),
		signatureSaverFunc(func(context.Context, *signature.Signature) error {
			return domain.NewValidationError("email", signature.MsgAlreadySigned)
		}))

	ok, err := s.CreateSignature(context.Background())
	if ok || err != nil {
		t.Fatalf("CreateSignature() = %v, %v, want false, nil", ok, err)
	}
	if s.Stage() != StageSigner {
		t.Errorf("Stage() = %q, want %q", s.Stage(), StageSigner)
	}
	if got := s.Errors().On("email"); !slices.Equal(got, []string{signature.MsgAlreadySigned}) {
		t.Errorf("On(email) = %v, want %q", got, signature.MsgAlreadySigned)
	}
	if s.Errors().Len() != 1 {
		t.Errorf("Errors().Fields() = %v, want only email", s.Errors().Fields())
	}
}

func TestPetitionSigner_InvalidEmailRecoversToSigner(t *testing.T) {
	t.Parallel()

	attrs := signerAttributes()
	attrs.Email = "not-an-email"
	p := &petition.Petition{ID: 5, State: petition.StateOpen}
	s := NewPetitionSigner(ports.StepInput{Stage: StageDone}, p, attrs, signatureSaverFunc(acceptSignature))

	if ok, _ := s.CreateSignature(context.Background()); ok {
		t.Fatal("CreateSignature() = true")
	}
	if s.Stage() != StageSigner {
		t.Errorf("Stage() = %q, want %q", s.Stage(), StageSigner)
	}
}

func TestPetitionSponsor_LinksSponsor(t *testing.T) {
	t.Parallel()

	sponsor := signature.NewSponsor(8, "jo@example.com")
	sponsor.ID = 21

	var saved *signature.Signature
	s := NewPetitionSponsor(ports.StepInput{Stage: StageReplayEmail, Move: "next", RemoteIP: "203.0.113.9"}, &sponsor, signerAttributes(),
		signatureSaverFunc(func(_ context.Context, sig *signature.Signature) error {
			saved = sig
			return nil
		}))

	ok, err := s.CreateSignature(context.Background())
	if !ok || err != nil {
		t.Fatalf("CreateSignature() = %v, %v", ok, err)
	}
	if saved.PetitionID != 8 || saved.SponsorID == nil || *saved.SponsorID != 21 {
		t.Errorf("saved signature = %+v", saved)
	}
	if saved.IPAddress != "203.0.113.9" {
		t.Errorf("IPAddress = %q", saved.IPAddress)
	}
}
