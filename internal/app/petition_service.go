// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/petitions-service/internal/app/fanout"
	"github.com/jsamuelsen11/petitions-service/internal/app/journey"
	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/platform/logging"
	"github.com/jsamuelsen11/petitions-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

// Compile-time check that PetitionService implements ports.PetitionService.
var _ ports.PetitionService = (*PetitionService)(nil)

// Journey names recorded on step metrics.
const (
	JourneyCreator = "creator"
	JourneySigner  = "signer"
	JourneySponsor = "sponsor"
)

// Step results recorded on step metrics.
const (
	resultComplete = "complete"
	resultInvalid  = "invalid"
	resultContinue = "continue"
	resultError    = "error"
)

// closeBatchSize is how many due petitions ClosePetitions loads at a time.
const closeBatchSize = 100

// Settings holds the petition lifecycle rules.
type Settings struct {
	MaxSponsors      int
	SponsorThreshold int
	Duration         time.Duration
	CloseWorkers     int
}

// DefaultSettings returns the standard lifecycle rules.
func DefaultSettings() Settings {
	return Settings{
		MaxSponsors:      petition.DefaultMaxSponsors,
		SponsorThreshold: 5,
		Duration:         4380 * time.Hour,
		CloseWorkers:     4,
	}
}

// Option configures a PetitionService.
type Option func(*PetitionService)

// WithSettings replaces the lifecycle rules.
func WithSettings(settings Settings) Option {
	return func(s *PetitionService) {
		s.settings = settings
	}
}

// WithConstituencyClient enables constituency lookups for UK signatories.
func WithConstituencyClient(client ports.ConstituencyClient) Option {
	return func(s *PetitionService) {
		s.constituency = client
	}
}

// WithMetrics records journey and closing metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *PetitionService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *PetitionService) {
		s.now = now
	}
}

// PetitionService implements ports.PetitionService. It drives the staged
// journeys, moves petitions through their lifecycle and tells the notifier
// about new petitions and signatures.
type PetitionService struct {
	petitions    ports.PetitionStore
	signatures   ports.SignatureStore
	notifier     ports.Notifier
	constituency ports.ConstituencyClient
	metrics      *telemetry.Metrics
	logger       *slog.Logger
	settings     Settings
	now          func() time.Time
}

// NewPetitionService creates a PetitionService. A nil logger is replaced by
// one that discards output.
func NewPetitionService(
	petitions ports.PetitionStore,
	signatures ports.SignatureStore,
	notifier ports.Notifier,
	logger *slog.Logger,
	opts ...Option,
) *PetitionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &PetitionService{
		petitions:  petitions,
		signatures: signatures,
		notifier:   notifier,
		metrics:    telemetry.NewNoopMetrics(),
		logger:     logger,
		settings:   DefaultSettings(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.settings.CloseWorkers < 1 {
		s.settings.CloseWorkers = 1
	}
	return s
}

// CreatePetition advances the creation journey by one request.
func (s *PetitionService) CreatePetition(ctx context.Context, in ports.StepInput, attrs petition.Attributes) (*ports.PetitionStep, error) {
	creator := journey.NewPetitionCreator(in, attrs, s.settings.MaxSponsors, petitionSaverFunc(s.storePetition))

	created, err := creator.CreatePetition(ctx)
	s.recordStep(ctx, JourneyCreator, creator.StartingStage(), creator.Stage(), created, creator.Errors(), err)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to create petition",
			slog.String("operation", "CreatePetition"),
			slog.Any("error", err),
		)
		return nil, err
	}

	p := creator.Petition()
	if created {
		s.log(ctx).InfoContext(ctx, "petition created",
			slog.Int64("petition_id", p.ID),
			slog.Int("sponsors", len(p.Sponsors)),
		)
		s.notify(ctx, "PetitionCreated", func(ctx context.Context) error {
			return s.notifier.PetitionCreated(ctx, p)
		})
	}

	return &ports.PetitionStep{
		Stage:    creator.Stage(),
		Complete: created,
		Errors:   creator.Errors(),
		Petition: p,
	}, nil
}

// SignPetition advances the signing journey for an open petition.
func (s *PetitionService) SignPetition(ctx context.Context, petitionID int64, in ports.StepInput, attrs signature.Attributes) (*ports.SignatureStep, error) {
	p, err := s.petitions.GetPetition(ctx, petitionID)
	if err != nil {
		s.logFailure(ctx, "SignPetition", err, slog.Int64("petition_id", petitionID))
		return nil, err
	}
	if !p.AcceptsSignatures() {
		return nil, fmt.Errorf("petition %d is %s: %w", p.ID, p.State, domain.ErrConflict)
	}

	signer := journey.NewPetitionSigner(in, p, attrs, signatureSaverFunc(s.storeSignature))
	created, err := signer.CreateSignature(ctx)
	s.recordStep(ctx, JourneySigner, signer.StartingStage(), signer.Stage(), created, signer.Errors(), err)
	if err != nil {
		s.logFailure(ctx, "SignPetition", err, slog.Int64("petition_id", petitionID))
		return nil, err
	}

	return s.signatureStep(ctx, signer, created), nil
}

// SponsorPetition advances the signing journey for the sponsor invited
// under token.
func (s *PetitionService) SponsorPetition(ctx context.Context, token string, in ports.StepInput, attrs signature.Attributes) (*ports.SignatureStep, error) {
	sponsor, err := s.petitions.FindSponsor(ctx, token)
	if err != nil {
		s.logFailure(ctx, "SponsorPetition", err)
		return nil, err
	}
	if sponsor.Signed() {
		return nil, fmt.Errorf("sponsor %d already signed: %w", sponsor.ID, domain.ErrConflict)
	}

	p, err := s.petitions.GetPetition(ctx, sponsor.PetitionID)
	if err != nil {
		s.logFailure(ctx, "SponsorPetition", err, slog.Int64("petition_id", sponsor.PetitionID))
		return nil, err
	}
	if !p.AcceptsSponsors() {
		return nil, fmt.Errorf("petition %d is %s: %w", p.ID, p.State, domain.ErrConflict)
	}

	journeySponsor := journey.NewPetitionSponsor(in, sponsor, attrs, signatureSaverFunc(s.storeSignature))
	created, err := journeySponsor.CreateSignature(ctx)
	s.recordStep(ctx, JourneySponsor, journeySponsor.StartingStage(), journeySponsor.Stage(), created, journeySponsor.Errors(), err)
	if err != nil {
		s.logFailure(ctx, "SponsorPetition", err, slog.Int64("petition_id", p.ID))
		return nil, err
	}

	return s.signatureStep(ctx, journeySponsor, created), nil
}

// signatureJourney is the view of a signer or sponsor journey a step is
// reported from. A journey can land on its terminal stage without storing
// anything when the store rejects the signature, so completion is taken from
// the save result instead of the stage.
type signatureJourney interface {
	Stage() string
	Signature() *signature.Signature
	Errors() *domain.FieldErrors
}

func (s *PetitionService) signatureStep(ctx context.Context, j signatureJourney, created bool) *ports.SignatureStep {
	sig := j.Signature()
	if created {
		s.log(ctx).InfoContext(ctx, "signature created",
			slog.Int64("petition_id", sig.PetitionID),
			slog.Int64("signature_id", sig.ID),
		)
		s.notify(ctx, "SignatureCreated", func(ctx context.Context) error {
			return s.notifier.SignatureCreated(ctx, sig)
		})
	}
	return &ports.SignatureStep{
		Stage:     j.Stage(),
		Complete:  created,
		Errors:    j.Errors(),
		Signature: sig,
	}
}

// ValidateSignature confirms a signatory's email address and applies the
// lifecycle effects of the confirmation.
func (s *PetitionService) ValidateSignature(ctx context.Context, id int64, token string) (*signature.Signature, error) {
	sig, err := s.signatures.GetSignature(ctx, id)
	if err != nil {
		s.logFailure(ctx, "ValidateSignature", err, slog.Int64("signature_id", id))
		return nil, err
	}

	now := s.now().UTC()
	changed, err := sig.Confirm(token, now)
	if err != nil {
		return nil, fmt.Errorf("signature %d: %w", id, err)
	}
	if !changed {
		return sig, nil
	}

	if err := s.signatures.UpdateSignature(ctx, sig); err != nil {
		s.logFailure(ctx, "ValidateSignature", err, slog.Int64("signature_id", id))
		return nil, err
	}

	if err := s.afterValidation(ctx, sig, now); err != nil {
		s.logFailure(ctx, "ValidateSignature", err,
			slog.Int64("signature_id", id),
			slog.Int64("petition_id", sig.PetitionID),
		)
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "signature validated",
		slog.Int64("signature_id", sig.ID),
		slog.Int64("petition_id", sig.PetitionID),
	)
	return sig, nil
}

// afterValidation moves the petition on once sig is confirmed: the
// creator's confirmation validates the petition, sponsor confirmations can
// make it sponsored and public confirmations count once it is open.
func (s *PetitionService) afterValidation(ctx context.Context, sig *signature.Signature, now time.Time) error {
	p, err := s.petitions.GetPetition(ctx, sig.PetitionID)
	if err != nil {
		return err
	}

	switch {
	case p.CreatorSignature != nil && p.CreatorSignature.ID == sig.ID:
		changed := p.MarkValidated(now)
		promoted, err := s.promote(ctx, p, now)
		if err != nil {
			return err
		}
		if changed || promoted {
			return s.petitions.UpdatePetition(ctx, p)
		}
	case sig.SponsorID != nil:
		promoted, err := s.promote(ctx, p, now)
		if err != nil {
			return err
		}
		if promoted {
			return s.petitions.UpdatePetition(ctx, p)
		}
	case p.AcceptsSignatures():
		return s.petitions.IncrementSignatureCount(ctx, p.ID)
	}
	return nil
}

// promote marks a validated petition sponsored once enough sponsors have
// confirmed.
func (s *PetitionService) promote(ctx context.Context, p *petition.Petition, now time.Time) (bool, error) {
	if p.State != petition.StateValidated {
		return false, nil
	}
	n, err := s.signatures.CountValidatedSponsorSignatures(ctx, p.ID)
	if err != nil {
		return false, err
	}
	return p.MarkSponsored(n, s.settings.SponsorThreshold, now), nil
}

// GetPetition returns a petition by ID.
func (s *PetitionService) GetPetition(ctx context.Context, id int64) (*petition.Petition, error) {
	p, err := s.petitions.GetPetition(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetPetition", err, slog.Int64("petition_id", id))
		return nil, err
	}
	return p, nil
}

// ListPetitions returns petitions matching filter, newest first.
func (s *PetitionService) ListPetitions(ctx context.Context, filter petition.Filter) ([]petition.Petition, error) {
	if filter.State != "" && !filter.State.IsValid() {
		return nil, domain.NewValidationError("state", fmt.Sprintf("unknown petition state %q", filter.State))
	}

	petitions, err := s.petitions.ListPetitions(ctx, filter)
	if err != nil {
		s.logFailure(ctx, "ListPetitions", err)
		return nil, err
	}
	return petitions, nil
}

// ModeratePetition publishes or rejects a petition awaiting moderation.
func (s *PetitionService) ModeratePetition(ctx context.Context, id int64, decision petition.Decision) (*petition.Petition, error) {
	if !decision.IsValid() {
		return nil, domain.NewValidationError("decision", "must be publish or reject")
	}

	p, err := s.petitions.GetPetition(ctx, id)
	if err != nil {
		s.logFailure(ctx, "ModeratePetition", err, slog.Int64("petition_id", id))
		return nil, err
	}

	now := s.now().UTC()
	switch decision {
	case petition.DecisionPublish:
		err = p.Publish(now, s.settings.Duration)
	case petition.DecisionReject:
		err = p.Reject(now)
	}
	if err != nil {
		return nil, err
	}

	if err := s.petitions.UpdatePetition(ctx, p); err != nil {
		s.logFailure(ctx, "ModeratePetition", err, slog.Int64("petition_id", id))
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "petition moderated",
		slog.Int64("petition_id", p.ID),
		slog.String("decision", string(decision)),
		slog.String("state", p.State.String()),
	)
	return p, nil
}

// ClosePetitions closes every open petition whose deadline passed at now.
// Failures on individual petitions are joined into the returned error; the
// count covers the petitions that were closed.
func (s *PetitionService) ClosePetitions(ctx context.Context, now time.Time) (int, error) {
	closed := 0
	var errs []error

	for {
		due, err := s.petitions.ListPetitions(ctx, petition.Filter{
			State:          petition.StateOpen,
			DeadlineBefore: &now,
			Limit:          closeBatchSize,
		})
		if err != nil {
			s.logFailure(ctx, "ClosePetitions", err)
			return closed, errors.Join(append(errs, err)...)
		}

		out := fanout.Run(ctx, s.settings.CloseWorkers, due, func(ctx context.Context, p petition.Petition) error {
			if err := p.Close(now); err != nil {
				return err
			}
			return s.petitions.UpdatePetition(ctx, &p)
		})
		for _, f := range out.Failures {
			s.log(ctx).ErrorContext(ctx, "failed to close petition",
				slog.String("operation", "ClosePetitions"),
				slog.Int64("petition_id", f.Item.ID),
				slog.Any("error", f.Err),
			)
			errs = append(errs, fmt.Errorf("close petition %d: %w", f.Item.ID, f.Err))
		}
		closed += out.Succeeded

		if len(due) < closeBatchSize || out.Succeeded == 0 {
			break
		}
	}

	if closed > 0 {
		s.metrics.PetitionsClosed.Add(ctx, int64(closed))
		s.log(ctx).InfoContext(ctx, "petitions closed", slog.Int("count", closed))
	}
	return closed, errors.Join(errs...)
}

// storePetition is the creation journey's saver. It issues sponsor
// invitations and resolves the creator's constituency before storing.
func (s *PetitionService) storePetition(ctx context.Context, p *petition.Petition) error {
	p.Sponsors = make([]signature.Sponsor, 0, len(p.SponsorEmails))
	for _, email := range p.SponsorEmails {
		p.Sponsors = append(p.Sponsors, signature.NewSponsor(p.ID, email))
	}
	s.resolveConstituency(ctx, p.CreatorSignature)
	return s.petitions.CreatePetition(ctx, p)
}

// storeSignature is the signing journeys' saver.
func (s *PetitionService) storeSignature(ctx context.Context, sig *signature.Signature) error {
	s.resolveConstituency(ctx, sig)
	return s.signatures.CreateSignature(ctx, sig)
}

// resolveConstituency records the constituency of a UK signatory. Lookup
// failures are logged and otherwise ignored.
func (s *PetitionService) resolveConstituency(ctx context.Context, sig *signature.Signature) {
	if s.constituency == nil || sig == nil || !sig.InUK() || sig.Postcode == "" {
		return
	}

	c, err := s.constituency.LookupConstituency(ctx, sig.Postcode)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, domain.ErrNotFound) {
			level = slog.LevelDebug
		}
		s.log(ctx).Log(ctx, level, "constituency lookup failed",
			slog.String("operation", "LookupConstituency"),
			slog.Any("error", err),
		)
		return
	}
	sig.ConstituencyID = c.ID
}

// notify calls the notifier. Delivery failures never fail the request.
func (s *PetitionService) notify(ctx context.Context, event string, fn func(context.Context) error) {
	if s.notifier == nil {
		return
	}
	if err := fn(ctx); err != nil {
		s.log(ctx).WarnContext(ctx, "notification failed",
			slog.String("operation", event),
			slog.Any("error", err),
		)
	}
}

func (s *PetitionService) recordStep(ctx context.Context, name, from, to string, created bool, errs *domain.FieldErrors, err error) {
	result := resultContinue
	switch {
	case err != nil:
		result = resultError
	case created:
		result = resultComplete
	case !errs.Empty():
		result = resultInvalid
	}

	s.metrics.JourneySteps.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrJourney.String(name),
		telemetry.AttrStageFrom.String(from),
		telemetry.AttrStageTo.String(to),
		telemetry.AttrResult.String(result),
	))
}

// log returns the request-scoped logger when there is one.
func (s *PetitionService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func (s *PetitionService) logFailure(ctx context.Context, operation string, err error, attrs ...any) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelInfo
	}
	args := append([]any{slog.String("operation", operation)}, attrs...)
	args = append(args, slog.Any("error", err))
	s.log(ctx).Log(ctx, level, "petition operation failed", args...)
}

type petitionSaverFunc func(context.Context, *petition.Petition) error

func (f petitionSaverFunc) CreatePetition(ctx context.Context, p *petition.Petition) error {
	return f(ctx, p)
}

type signatureSaverFunc func(context.Context, *signature.Signature) error

func (f signatureSaverFunc) CreateSignature(ctx context.Context, sig *signature.Signature) error {
	return f(ctx, sig)
}
