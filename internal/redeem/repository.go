package redeem

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists redemption requests. Create is append-only; existing
// requests are only ever touched by MarkPaid.
type Repository interface {
	Create(ctx context.Context, req Request) error
	List(ctx context.Context) ([]Request, error)
	MarkPaid(ctx context.Context, id string) error
}

// PostgresRepository stores redemption requests in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed redemption repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new request.
func (r *PostgresRepository) Create(ctx context.Context, req Request) error {
	reqID, err := uuid.Parse(req.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO redeem_requests
        (id, user_id, user_name, user_email, upi_id, gift_card, note, points, status, requested_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		reqID, req.UserID, req.UserName, req.UserEmail, req.UPIID, req.GiftCard, req.Note,
		req.Points, req.Status, req.RequestedAt.UTC())
	return err
}

// List returns all requests in submission order.
func (r *PostgresRepository) List(ctx context.Context) ([]Request, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, user_name, user_email, upi_id, gift_card,
        note, points, status, requested_at FROM redeem_requests ORDER BY requested_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		var (
			id          uuid.UUID
			requestedAt time.Time
			req         Request
		)
		if err := rows.Scan(&id, &req.UserID, &req.UserName, &req.UserEmail, &req.UPIID,
			&req.GiftCard, &req.Note, &req.Points, &req.Status, &requestedAt); err != nil {
			return nil, err
		}
		req.ID = id.String()
		req.RequestedAt = requestedAt.UTC()
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// MarkPaid transitions the request to paid. An unknown id or an already paid
// request is a silent no-op, which makes the call idempotent.
func (r *PostgresRepository) MarkPaid(ctx context.Context, id string) error {
	reqID, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	_, err = r.db.Exec(ctx, `UPDATE redeem_requests SET status = $1 WHERE id = $2`, StatusPaid, reqID)
	return err
}
