// Package memory is an in-process implementation of ports.Store.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

var _ ports.Store = (*Store)(nil)

// Store keeps petitions and signatures in maps guarded by a single lock.
// Values are cloned on the way in and out so callers never share memory
// with the store.
type Store struct {
	mu         sync.RWMutex
	nextID     int64
	petitions  map[int64]*petition.Petition
	signatures map[int64]*signature.Signature
	now        func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		petitions:  make(map[int64]*petition.Petition),
		signatures: make(map[int64]*signature.Signature),
		now:        time.Now,
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// CreatePetition implements ports.PetitionStore.
func (s *Store) CreatePetition(ctx context.Context, p *petition.Petition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.CreatorSignature == nil {
		return fmt.Errorf("petition without creator signature: %w", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	p.ID = s.id()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}

	creator := p.CreatorSignature
	creator.ID = s.id()
	creator.PetitionID = p.ID
	if creator.CreatedAt.IsZero() {
		creator.CreatedAt = p.CreatedAt
	}
	for i := range p.Sponsors {
		p.Sponsors[i].ID = s.id()
		p.Sponsors[i].PetitionID = p.ID
		if p.Sponsors[i].CreatedAt.IsZero() {
			p.Sponsors[i].CreatedAt = p.CreatedAt
		}
	}

	s.petitions[p.ID] = p.Clone()
	s.signatures[creator.ID] = creator.Clone()
	return nil
}

// GetPetition implements ports.PetitionStore.
func (s *Store) GetPetition(ctx context.Context, id int64) (*petition.Petition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.petitions[id]
	if !ok {
		return nil, fmt.Errorf("petition %d: %w", id, domain.ErrNotFound)
	}
	out := p.Clone()
	if sig, ok := s.signatures[p.CreatorSignature.ID]; ok {
		out.CreatorSignature = sig.Clone()
	}
	return out, nil
}

// ListPetitions implements ports.PetitionStore.
func (s *Store) ListPetitions(ctx context.Context, filter petition.Filter) ([]petition.Petition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]petition.Petition, 0)
	for _, p := range s.petitions {
		if !filter.Matches(p) {
			continue
		}
		c := p.Clone()
		c.CreatorSignature = nil
		c.SponsorEmails = nil
		c.Sponsors = nil
		out = append(out, *c)
	}

	slices.SortFunc(out, func(a, b petition.Petition) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	if limit := filter.EffectiveLimit(); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// UpdatePetition implements ports.PetitionStore.
func (s *Store) UpdatePetition(ctx context.Context, p *petition.Petition) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.petitions[p.ID]
	if !ok {
		return fmt.Errorf("petition %d: %w", p.ID, domain.ErrNotFound)
	}
	updated := p.Clone()
	stored.State = updated.State
	stored.Deadline = updated.Deadline
	stored.OpenedAt = updated.OpenedAt
	stored.ClosedAt = updated.ClosedAt
	stored.UpdatedAt = s.now().UTC()
	p.UpdatedAt = stored.UpdatedAt
	return nil
}

// IncrementSignatureCount implements ports.PetitionStore.
func (s *Store) IncrementSignatureCount(ctx context.Context, petitionID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.petitions[petitionID]
	if !ok {
		return fmt.Errorf("petition %d: %w", petitionID, domain.ErrNotFound)
	}
	p.SignatureCount++
	return nil
}

// FindSponsor implements ports.PetitionStore.
func (s *Store) FindSponsor(ctx context.Context, token string) (*signature.Sponsor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if token != "" {
		for _, p := range s.petitions {
			if sp, ok := p.SponsorFor(token); ok {
				out := *sp
				if sp.SignatureID != nil {
					id := *sp.SignatureID
					out.SignatureID = &id
				}
				return &out, nil
			}
		}
	}
	return nil, fmt.Errorf("sponsor: %w", domain.ErrNotFound)
}

// CreateSignature implements ports.SignatureStore.
func (s *Store) CreateSignature(ctx context.Context, sig *signature.Signature) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.petitions[sig.PetitionID]
	if !ok {
		return fmt.Errorf("petition %d: %w", sig.PetitionID, domain.ErrNotFound)
	}

	for _, existing := range s.signatures {
		if existing.PetitionID == sig.PetitionID && strings.EqualFold(existing.Email, sig.Email) {
			return domain.NewValidationError("email", signature.MsgAlreadySigned)
		}
	}

	var sponsor *signature.Sponsor
	if sig.SponsorID != nil {
		idx := slices.IndexFunc(p.Sponsors, func(sp signature.Sponsor) bool { return sp.ID == *sig.SponsorID })
		if idx < 0 {
			return fmt.Errorf("sponsor %d: %w", *sig.SponsorID, domain.ErrNotFound)
		}
		sponsor = &p.Sponsors[idx]
		if sponsor.Signed() {
			return fmt.Errorf("sponsor %d already signed: %w", sponsor.ID, domain.ErrConflict)
		}
	}

	sig.ID = s.id()
	if sig.CreatedAt.IsZero() {
		sig.CreatedAt = s.now().UTC()
	}
	s.signatures[sig.ID] = sig.Clone()

	if sponsor != nil {
		id := sig.ID
		sponsor.SignatureID = &id
	}
	return nil
}

// GetSignature implements ports.SignatureStore.
func (s *Store) GetSignature(ctx context.Context, id int64) (*signature.Signature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sig, ok := s.signatures[id]
	if !ok {
		return nil, fmt.Errorf("signature %d: %w", id, domain.ErrNotFound)
	}
	return sig.Clone(), nil
}

// UpdateSignature implements ports.SignatureStore.
func (s *Store) UpdateSignature(ctx context.Context, sig *signature.Signature) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.signatures[sig.ID]
	if !ok {
		return fmt.Errorf("signature %d: %w", sig.ID, domain.ErrNotFound)
	}
	updated := sig.Clone()
	stored.State = updated.State
	stored.ValidatedAt = updated.ValidatedAt
	return nil
}

// CountValidatedSponsorSignatures implements ports.SignatureStore.
func (s *Store) CountValidatedSponsorSignatures(ctx context.Context, petitionID int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, sig := range s.signatures {
		if sig.PetitionID == petitionID && sig.SponsorID != nil && sig.Validated() {
			n++
		}
	}
	return n, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "store" }

// HealthCheck implements ports.HealthChecker. The memory store is always
// available.
func (s *Store) HealthCheck(ctx context.Context) error { return ctx.Err() }

// Close implements ports.Store.
func (s *Store) Close() error { return nil }
