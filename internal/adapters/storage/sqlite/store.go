package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen11/petitions-service/internal/domain"
	"github.com/jsamuelsen11/petitions-service/internal/domain/petition"
	"github.com/jsamuelsen11/petitions-service/internal/domain/signature"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

var _ ports.Store = (*Store)(nil)

const (
	petitionColumns = `id, action, background, additional_details, state, creator_signature_id,
		signature_count, deadline, opened_at, closed_at, created_at, updated_at`
	signatureColumns = `id, petition_id, sponsor_id, name, email, postcode, location_code,
		uk_citizenship, notify_by_email, ip_address, constituency_id, state, token,
		validated_at, created_at`
	sponsorColumns = `id, petition_id, email, token, signature_id, created_at`
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// Store is a SQLite-backed implementation of ports.Store. Times are stored
// as Unix nanoseconds in UTC.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New opens the database described by cfg and, if enabled, creates the
// schema.
func New(cfg Config, opts ...Option) (*Store, error) {
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, now: time.Now}

	if cfg.AutoMigrate {
		if err := s.migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return s, nil
}

// NewFromDB creates a store from an existing database connection.
func NewFromDB(db *sql.DB) (*Store, error) {
	s := &Store{db: db, now: time.Now}

	if err := s.migrate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS petitions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			action TEXT NOT NULL,
			background TEXT NOT NULL,
			additional_details TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL,
			creator_signature_id INTEGER,
			signature_count INTEGER NOT NULL DEFAULT 0,
			deadline INTEGER,
			opened_at INTEGER,
			closed_at INTEGER,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_petitions_state ON petitions(state);
		CREATE INDEX IF NOT EXISTS idx_petitions_created_at ON petitions(created_at);

		CREATE TABLE IF NOT EXISTS signatures (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			petition_id INTEGER NOT NULL REFERENCES petitions(id),
			sponsor_id INTEGER,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			email_key TEXT NOT NULL,
			postcode TEXT NOT NULL,
			location_code TEXT NOT NULL,
			uk_citizenship INTEGER NOT NULL,
			notify_by_email INTEGER NOT NULL,
			ip_address TEXT NOT NULL,
			constituency_id TEXT NOT NULL,
			state TEXT NOT NULL,
			token TEXT NOT NULL,
			validated_at INTEGER,
			created_at INTEGER NOT NULL,
			UNIQUE (petition_id, email_key)
		);

		CREATE TABLE IF NOT EXISTS sponsors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			petition_id INTEGER NOT NULL REFERENCES petitions(id),
			email TEXT NOT NULL,
			token TEXT NOT NULL UNIQUE,
			signature_id INTEGER REFERENCES signatures(id),
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sponsors_petition_id ON sponsors(petition_id);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	return nil
}

// CreatePetition implements ports.PetitionStore.
func (s *Store) CreatePetition(ctx context.Context, p *petition.Petition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
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

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO petitions (action, background, additional_details, state, signature_count,
			deadline, opened_at, closed_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Action, p.Background, p.AdditionalDetails, string(p.State), p.SignatureCount,
		nullTime(p.Deadline), nullTime(p.OpenedAt), nullTime(p.ClosedAt),
		unixTime(p.CreatedAt), unixTime(p.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	creator := p.CreatorSignature
	creator.PetitionID = p.ID
	if creator.CreatedAt.IsZero() {
		creator.CreatedAt = p.CreatedAt
	}
	if err := insertSignature(ctx, tx, creator); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE petitions SET creator_signature_id = ? WHERE id = ?",
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
		res, err := tx.ExecContext(ctx,
			"INSERT INTO sponsors (petition_id, email, token, created_at) VALUES (?, ?, ?, ?)",
			sp.PetitionID, sp.Email, sp.Token, unixTime(sp.CreatedAt),
		)
		if err != nil {
			return err
		}
		if sp.ID, err = res.LastInsertId(); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetPetition implements ports.PetitionStore.
func (s *Store) GetPetition(ctx context.Context, id int64) (*petition.Petition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, creatorID, err := scanPetition(s.db.QueryRowContext(ctx,
		"SELECT "+petitionColumns+" FROM petitions WHERE id = ?", id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("petition %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if creatorID.Valid {
		if p.CreatorSignature, err = getSignature(ctx, s.db, creatorID.Int64); err != nil {
			return nil, err
		}
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sponsorColumns+" FROM sponsors WHERE petition_id = ? ORDER BY id", id,
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
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if filter.State != "" {
		where = append(where, "state = ?")
		args = append(args, string(filter.State))
	}
	if filter.DeadlineBefore != nil {
		where = append(where, "deadline IS NOT NULL AND deadline < ?")
		args = append(args, unixTime(*filter.DeadlineBefore))
	}

	query := "SELECT " + petitionColumns + " FROM petitions"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, filter.EffectiveLimit())

	rows, err := s.db.QueryContext(ctx, query, args...)
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

// UpdatePetition implements ports.PetitionStore.
func (s *Store) UpdatePetition(ctx context.Context, p *petition.Petition) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := s.now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE petitions SET state = ?, deadline = ?, opened_at = ?, closed_at = ?, updated_at = ?
		 WHERE id = ?`,
		string(p.State), nullTime(p.Deadline), nullTime(p.OpenedAt), nullTime(p.ClosedAt),
		unixTime(now), p.ID,
	)
	if err := expectRow(res, err, "petition", p.ID); err != nil {
		return err
	}
	p.UpdatedAt = now
	return nil
}

// IncrementSignatureCount implements ports.PetitionStore.
func (s *Store) IncrementSignatureCount(ctx context.Context, petitionID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE petitions SET signature_count = signature_count + 1 WHERE id = ?", petitionID,
	)
	return expectRow(res, err, "petition", petitionID)
}

// FindSponsor implements ports.PetitionStore.
func (s *Store) FindSponsor(ctx context.Context, token string) (*signature.Sponsor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sp, err := scanSponsor(s.db.QueryRowContext(ctx,
		"SELECT "+sponsorColumns+" FROM sponsors WHERE token = ?", token,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sponsor: %w", domain.ErrNotFound)
	}
	return sp, err
}

// CreateSignature implements ports.SignatureStore.
func (s *Store) CreateSignature(ctx context.Context, sig *signature.Signature) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sig.CreatedAt.IsZero() {
		sig.CreatedAt = s.now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var one int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM petitions WHERE id = ?", sig.PetitionID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("petition %d: %w", sig.PetitionID, domain.ErrNotFound)
	}
	if err != nil {
		return err
	}

	if err := insertSignature(ctx, tx, sig); err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("email", signature.MsgAlreadySigned)
		}
		return err
	}

	if sig.SponsorID != nil {
		if err := linkSponsor(ctx, tx, sig); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetSignature implements ports.SignatureStore.
func (s *Store) GetSignature(ctx context.Context, id int64) (*signature.Signature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return getSignature(ctx, s.db, id)
}

// UpdateSignature implements ports.SignatureStore.
func (s *Store) UpdateSignature(ctx context.Context, sig *signature.Signature) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE signatures SET state = ?, validated_at = ? WHERE id = ?",
		string(sig.State), nullTime(sig.ValidatedAt), sig.ID,
	)
	return expectRow(res, err, "signature", sig.ID)
}

// CountValidatedSponsorSignatures implements ports.SignatureStore.
func (s *Store) CountValidatedSponsorSignatures(ctx context.Context, petitionID int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM signatures
		 WHERE petition_id = ? AND sponsor_id IS NOT NULL AND state = ?`,
		petitionID, string(signature.StateValidated),
	).Scan(&n)
	return n, err
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "store" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func insertSignature(ctx context.Context, q querier, sig *signature.Signature) error {
	res, err := q.ExecContext(ctx,
		`INSERT INTO signatures (petition_id, sponsor_id, name, email, email_key, postcode,
			location_code, uk_citizenship, notify_by_email, ip_address, constituency_id, state,
			token, validated_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sig.PetitionID, nullID(sig.SponsorID), sig.Name, sig.Email, strings.ToLower(sig.Email),
		sig.Postcode, sig.LocationCode, sig.UKCitizenship, sig.NotifyByEmail, sig.IPAddress,
		sig.ConstituencyID, string(sig.State), sig.Token, nullTime(sig.ValidatedAt),
		unixTime(sig.CreatedAt),
	)
	if err != nil {
		return err
	}
	sig.ID, err = res.LastInsertId()
	return err
}

// linkSponsor records sig as its sponsor's signature. It fails if the
// sponsor does not belong to the petition or has already signed.
func linkSponsor(ctx context.Context, tx *sql.Tx, sig *signature.Signature) error {
	sponsorID := *sig.SponsorID
	res, err := tx.ExecContext(ctx,
		`UPDATE sponsors SET signature_id = ?
		 WHERE id = ? AND petition_id = ? AND signature_id IS NULL`,
		sig.ID, sponsorID, sig.PetitionID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil || n == 1 {
		return err
	}

	var one int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM sponsors WHERE id = ? AND petition_id = ?", sponsorID, sig.PetitionID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("sponsor %d: %w", sponsorID, domain.ErrNotFound)
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("sponsor %d already signed: %w", sponsorID, domain.ErrConflict)
}

func getSignature(ctx context.Context, q querier, id int64) (*signature.Signature, error) {
	sig, err := scanSignature(q.QueryRowContext(ctx,
		"SELECT "+signatureColumns+" FROM signatures WHERE id = ?", id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("signature %d: %w", id, domain.ErrNotFound)
	}
	return sig, err
}

func scanPetition(row scanner) (*petition.Petition, sql.NullInt64, error) {
	var (
		p                        petition.Petition
		state                    string
		creatorID                sql.NullInt64
		deadline, opened, closed sql.NullInt64
		createdAt, updatedAt     int64
	)
	err := row.Scan(&p.ID, &p.Action, &p.Background, &p.AdditionalDetails, &state, &creatorID,
		&p.SignatureCount, &deadline, &opened, &closed, &createdAt, &updatedAt)
	if err != nil {
		return nil, creatorID, err
	}
	p.State = petition.State(state)
	p.Deadline = fromNull(deadline)
	p.OpenedAt = fromNull(opened)
	p.ClosedAt = fromNull(closed)
	p.CreatedAt = fromUnix(createdAt)
	p.UpdatedAt = fromUnix(updatedAt)
	return &p, creatorID, nil
}

func scanSignature(row scanner) (*signature.Signature, error) {
	var (
		sig         signature.Signature
		sponsorID   sql.NullInt64
		state       string
		validatedAt sql.NullInt64
		createdAt   int64
	)
	err := row.Scan(&sig.ID, &sig.PetitionID, &sponsorID, &sig.Name, &sig.Email, &sig.Postcode,
		&sig.LocationCode, &sig.UKCitizenship, &sig.NotifyByEmail, &sig.IPAddress,
		&sig.ConstituencyID, &state, &sig.Token, &validatedAt, &createdAt)
	if err != nil {
		return nil, err
	}
	if sponsorID.Valid {
		id := sponsorID.Int64
		sig.SponsorID = &id
	}
	sig.State = signature.State(state)
	sig.ValidatedAt = fromNull(validatedAt)
	sig.CreatedAt = fromUnix(createdAt)
	return &sig, nil
}

func scanSponsor(row scanner) (*signature.Sponsor, error) {
	var (
		sp          signature.Sponsor
		signatureID sql.NullInt64
		createdAt   int64
	)
	if err := row.Scan(&sp.ID, &sp.PetitionID, &sp.Email, &sp.Token, &signatureID, &createdAt); err != nil {
		return nil, err
	}
	if signatureID.Valid {
		id := signatureID.Int64
		sp.SignatureID = &id
	}
	sp.CreatedAt = fromUnix(createdAt)
	return &sp, nil
}

func expectRow(res sql.Result, err error, kind string, id int64) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func unixTime(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func nullTime(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: unixTime(*t), Valid: true}
}

func nullID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func fromUnix(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func fromNull(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := fromUnix(n.Int64)
	return &t
}
