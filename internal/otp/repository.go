package otp

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no record matches the email and code pair.
var ErrNotFound = errors.New("otp record not found")

// Record is a one-time code issued to an email address. At most one live
// record exists per address.
type Record struct {
	Email     string
	Code      string
	CreatedAt time.Time
}

// Repository persists OTP records. DeleteByEmail and Insert are deliberately
// separate operations: a failure between them leaves the address with no live
// code, which only forces a re-send and never corrupts state.
type Repository interface {
	DeleteByEmail(ctx context.Context, email string) error
	Insert(ctx context.Context, rec Record) error
	Find(ctx context.Context, email, code string) (Record, error)
}

// PostgresRepository stores OTP records in the email_otps table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed OTP repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// DeleteByEmail removes any record for the address.
func (r *PostgresRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM email_otps WHERE email = $1`, email)
	return err
}

// Insert stores a fresh record.
func (r *PostgresRepository) Insert(ctx context.Context, rec Record) error {
	_, err := r.db.Exec(ctx, `INSERT INTO email_otps (email, code, created_at) VALUES ($1, $2, $3)`,
		rec.Email, rec.Code, rec.CreatedAt.UTC())
	return err
}

// Find fetches the record matching both email and code exactly.
func (r *PostgresRepository) Find(ctx context.Context, email, code string) (Record, error) {
	row := r.db.QueryRow(ctx, `SELECT email, code, created_at FROM email_otps
        WHERE email = $1 AND code = $2`, email, code)
	var (
		rec       Record
		createdAt time.Time
	)
	if err := row.Scan(&rec.Email, &rec.Code, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	rec.CreatedAt = createdAt.UTC()
	return rec, nil
}
