package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

var _ ports.Store = (*Store)(nil)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

const (
	petitionColumns = `id, action, background, additional_details, state, creator_signature_id,
		signature_count, deadline, opened_at, closed_at, created_at, updated_at`
	signatureColumns = `id, petition_id, sponsor_id, name, email, postcode, location_code,
		uk_citizenship, notify_by_email, ip_address, constituency_id, state, token,
		validated_at, created_at`
	sponsorColumns = `id, petition_id, email, token, signature_id, created_at`
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is a PostgreSQL-backed implementation of ports.Store. Its tables
// live in one schema.
type Store struct {
	pool   *pgxpool.Pool
	schema string
	now    func() time.Time
}

// New creates a store over pool. An empty schema means "public".
func New(pool *pgxpool.Pool, schema string) *Store {
	if schema == "" {
		schema = "public"
	}
	return &Store{
		pool:   pool,
		schema: schema,
		now:    time.Now,
	}
}

// table returns the quoted, fully qualified name of table.
func (s *Store) table(name string) string {
	return pgx.Identifier{s.schema, name}.Sanitize()
}

// Migrate creates the schema and tables if they don't exist.
func (s *Store) Migrate(ctx context.Context) error {
	ddl := fmt.Sprintf(`
		CREATE SCHEMA IF NOT EXISTS %[1]s;

		CREATE TABLE IF NOT EXISTS %[1]s.petitions (
			id BIGSERIAL PRIMARY KEY,
			action TEXT NOT NULL,
			background TEXT NOT NULL,
			additional_details TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL,
			creator_signature_id BIGINT,
			signature_count INTEGER NOT NULL DEFAULT 0,
			deadline TIMESTAMPTZ,
			opened_at TIMESTAMPTZ,
			closed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS petitions_state_idx ON %[1]s.petitions (state);
		CREATE INDEX IF NOT EXISTS petitions_created_at_idx ON %[1]s.petitions (created_at);

		CREATE TABLE IF NOT EXISTS %[1]s.signatures (
			id BIGSERIAL PRIMARY KEY,
			petition_id BIGINT NOT NULL REFERENCES %[1]s.petitions (id),
			sponsor_id BIGINT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			postcode TEXT NOT NULL,
			location_code TEXT NOT NULL,
			uk_citizenship BOOLEAN NOT NULL,
			notify_by_email BOOLEAN NOT NULL,
			ip_address TEXT NOT NULL,
			constituency_id TEXT NOT NULL,
			state TEXT NOT NULL,
			token TEXT NOT NULL,
			validated_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS signatures_petition_email_idx
			ON %[1]s.signatures (petition_id, lower(email));

		CREATE TABLE IF NOT EXISTS %[1]s.sponsors (
			id BIGSERIAL PRIMARY KEY,
			petition_id BIGINT NOT NULL REFERENCES %[1]s.petitions (id),
			email TEXT NOT NULL,
			token TEXT NOT NULL UNIQUE,
			signature_id BIGINT REFERENCES %[1]s.signatures (id),
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS sponsors_petition_id_idx ON %[1]s.sponsors (petition_id);
	`, pgx.Identifier{s.schema}.Sanitize())

	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("migrate schema %s: %w", s.schema, err)
	}
	return nil
}

// CreatePetition implements ports.PetitionStore.
func (s *Store) CreatePetition(ctx context.Context, p *petition.Petition) error {
	if p.CreatorSignature == nil {
		return fmt.Errorf("petition without creator signature: %w", domain.ErrValidation)
	}

	now := s.now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (action, background, additional_details, state, signature_count,
			deadline, opened_at, closed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, s.table("petitions")),
		p.Action, p.Background, p.AdditionalDetails, string(p.State), p.SignatureCount,
		p.Deadline, p.OpenedAt, p.ClosedAt, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return err
	}

	creator := p.CreatorSignature
	creator.PetitionID = p.ID
	if creator.CreatedAt.IsZero() {
		creator.CreatedAt = p.CreatedAt
	}
	if err := s.insertSignature(ctx, tx, creator); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET creator_signature_id = $1 WHERE id = $2`, s.table("petitions")),
		creator.ID, p.ID,
	); err != nil {
		return err
	}

	for i := range p.Sponsors {
		sp := &p.Sponsors[i]
		sp.PetitionID = p.ID
		if sp.CreatedAt.IsZero() {
			sp.CreatedAt = p.CreatedAt
		}
		err := tx.QueryRow(ctx, fmt.Sprintf(`
			INSERT INTO %s (petition_id, email, token, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, s.table("sponsors")),
			sp.PetitionID, sp.Email, sp.Token, sp.CreatedAt,
		).Scan(&sp.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetPetition implements ports.PetitionStore.
func (s *Store) GetPetition(ctx context.Context, id int64) (*petition.Petition, error) {
	p, creatorID, err := scanPetition(s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, petitionColumns, s.table("petitions")), id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("petition %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if creatorID != nil {
		if p.CreatorSignature, err = s.getSignature(ctx, s.pool, *creatorID); err != nil {
			return nil, err
		}
	}

	rows, err := s.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE petition_id = $1 ORDER BY id`, sponsorColumns, s.table("sponsors")),
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		sp, err := scanSponsor(rows)
		if err != nil {
			return nil, err
		}
		p.Sponsors = append(p.Sponsors, *sp)
		p.SponsorEmails = append(p.SponsorEmails, sp.Email)
	}
	return p, rows.Err()
}

// ListPetitions implements ports.PetitionStore.
func (s *Store) ListPetitions(ctx context.Context, filter petition.Filter) ([]petition.Petition, error) {
	query, args := s.buildListQuery(filter)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]petition.Petition, 0)
	for rows.Next() {
		p, _, err := scanPetition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// buildListQuery constructs the SELECT query for listing petitions.
func (s *Store) buildListQuery(filter petition.Filter) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	if filter.State != "" {
		args = append(args, string(filter.State))
		conditions = append(conditions, fmt.Sprintf("state = $%d", len(args)))
	}
	if filter.DeadlineBefore != nil {
		args = append(args, *filter.DeadlineBefore)
		conditions = append(conditions, fmt.Sprintf("deadline < $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, petitionColumns, s.table("petitions"))
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.EffectiveLimit())
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args))

	return query, args
}

// UpdatePetition implements ports.PetitionStore.
func (s *Store) UpdatePetition(ctx context.Context, p *petition.Petition) error {
	now := s.now().UTC()
	tag, err := s.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE %s
		SET state = $2, deadline = $3, opened_at = $4, closed_at = $5, updated_at = $6
		WHERE id = $1
	`, s.table("petitions")),
		p.ID, string(p.State), p.Deadline, p.OpenedAt, p.ClosedAt, now,
	)
	if err := expectRow(tag, err, "petition", p.ID); err != nil {
		return err
	}
	p.UpdatedAt = now
	return nil
}

// IncrementSignatureCount implements ports.PetitionStore.
func (s *Store) IncrementSignatureCount(ctx context.Context, petitionID int64) error {
	tag, err := s.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET signature_count = signature_count + 1 WHERE id = $1`, s.table("petitions")),
		petitionID,
	)
	return expectRow(tag, err, "petition", petitionID)
}

// FindSponsor implements ports.PetitionStore.
func (s *Store) FindSponsor(ctx context.Context, token string) (*signature.Sponsor, error) {
	sp, err := scanSponsor(s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE token = $1`, sponsorColumns, s.table("sponsors")), token,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("sponsor: %w", domain.ErrNotFound)
	}
	return sp, err
}

// CreateSignature implements ports.SignatureStore.
func (s *Store) CreateSignature(ctx context.Context, sig *signature.Signature) error {
	if sig.CreatedAt.IsZero() {
		sig.CreatedAt = s.now().UTC()
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var one int
	err = tx.QueryRow(ctx,
		fmt.Sprintf(`SELECT 1 FROM %s WHERE id = $1`, s.table("petitions")), sig.PetitionID,
	).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("petition %d: %w", sig.PetitionID, domain.ErrNotFound)
	}
	if err != nil {
		return err
	}

	if err := s.insertSignature(ctx, tx, sig); err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("email", signature.MsgAlreadySigned)
		}
		return err
	}

	if sig.SponsorID != nil {
		if err := s.linkSponsor(ctx, tx, sig); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetSignature implements ports.SignatureStore.
func (s *Store) GetSignature(ctx context.Context, id int64) (*signature.Signature, error) {
	return s.getSignature(ctx, s.pool, id)
}

// UpdateSignature implements ports.SignatureStore.
func (s *Store) UpdateSignature(ctx context.Context, sig *signature.Signature) error {
	tag, err := s.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET state = $2, validated_at = $3 WHERE id = $1`, s.table("signatures")),
		sig.ID, string(sig.State), sig.ValidatedAt,
	)
	return expectRow(tag, err, "signature", sig.ID)
}

// CountValidatedSponsorSignatures implements ports.SignatureStore.
func (s *Store) CountValidatedSponsorSignatures(ctx context.Context, petitionID int64) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT COUNT(*) FROM %s
		WHERE petition_id = $1 AND sponsor_id IS NOT NULL AND state = $2
	`, s.table("signatures")),
		petitionID, string(signature.StateValidated),
	).Scan(&n)
	return n, err
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "store" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) insertSignature(ctx context.Context, q querier, sig *signature.Signature) error {
	return q.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (petition_id, sponsor_id, name, email, postcode, location_code,
			uk_citizenship, notify_by_email, ip_address, constituency_id, state, token,
			validated_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`, s.table("signatures")),
		sig.PetitionID, sig.SponsorID, sig.Name, sig.Email, sig.Postcode, sig.LocationCode,
		sig.UKCitizenship, sig.NotifyByEmail, sig.IPAddress, sig.ConstituencyID,
		string(sig.State), sig.Token, sig.ValidatedAt, sig.CreatedAt,
	).Scan(&sig.ID)
}

// linkSponsor records sig as its sponsor's signature. It fails if the
// sponsor does not belong to the petition or has already signed.
func (s *Store) linkSponsor(ctx context.Context, tx pgx.Tx, sig *signature.Signature) error {
	sponsorID := *sig.SponsorID
	tag, err := tx.Exec(ctx, fmt.Sprintf(`
		UPDATE %s SET signature_id = $1
		WHERE id = $2 AND petition_id = $3 AND signature_id IS NULL
	`, s.table("sponsors")),
		sig.ID, sponsorID, sig.PetitionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var one int
	err = tx.QueryRow(ctx,
		fmt.Sprintf(`SELECT 1 FROM %s WHERE id = $1 AND petition_id = $2`, s.table("sponsors")),
		sponsorID, sig.PetitionID,
	).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("sponsor %d: %w", sponsorID, domain.ErrNotFound)
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("sponsor %d already signed: %w", sponsorID, domain.ErrConflict)
}

func (s *Store) getSignature(ctx context.Context, q querier, id int64) (*signature.Signature, error) {
	sig, err := scanSignature(q.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, signatureColumns, s.table("signatures")), id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("signature %d: %w", id, domain.ErrNotFound)
	}
	return sig, err
}

func scanPetition(row pgx.Row) (*petition.Petition, *int64, error) {
	var (
		p         petition.Petition
		state     string
		creatorID *int64
	)
	err := row.Scan(&p.ID, &p.Action, &p.Background, &p.AdditionalDetails, &state, &creatorID,
		&p.SignatureCount, &p.Deadline, &p.OpenedAt, &p.ClosedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, nil, err
	}
	p.State = petition.State(state)
	p.Deadline = utcPtr(p.Deadline)
	p.OpenedAt = utcPtr(p.OpenedAt)
	p.ClosedAt = utcPtr(p.ClosedAt)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, creatorID, nil
}

func scanSignature(row pgx.Row) (*signature.Signature, error) {
	var (
		sig   signature.Signature
		state string
	)
	err := row.Scan(&sig.ID, &sig.PetitionID, &sig.SponsorID, &sig.Name, &sig.Email, &sig.Postcode,
		&sig.LocationCode, &sig.UKCitizenship, &sig.NotifyByEmail, &sig.IPAddress,
		&sig.ConstituencyID, &state, &sig.Token, &sig.ValidatedAt, &sig.CreatedAt)
	if err != nil {
		return nil, err
	}
	sig.State = signature.State(state)
	sig.ValidatedAt = utcPtr(sig.ValidatedAt)
	sig.CreatedAt = sig.CreatedAt.UTC()
	return &sig, nil
}

func scanSponsor(row pgx.Row) (*signature.Sponsor, error) {
	var sp signature.Sponsor
	if err := row.Scan(&sp.ID, &sp.PetitionID, &sp.Email, &sp.Token, &sp.SignatureID, &sp.CreatedAt); err != nil {
		return nil, err
	}
	sp.CreatedAt = sp.CreatedAt.UTC()
	return &sp, nil
}

func expectRow(tag pgconn.CommandTag, err error, kind string, id int64) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

// isUniqueViolation reports whether err is a unique constraint failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return strings.Contains(err.Error(), "duplicate key")
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
