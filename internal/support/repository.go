package support

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists support messages. Create is append-only; existing
// messages are only ever touched by MarkResolved.
type Repository interface {
	Create(ctx context.Context, msg Message) error
	List(ctx context.Context) ([]Message, error)
	MarkResolved(ctx context.Context, id string) error
}

// PostgresRepository stores support messages in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed support repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new message.
func (r *PostgresRepository) Create(ctx context.Context, msg Message) error {
	msgID, err := uuid.Parse(msg.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO support_messages
        (id, user_id, user_name, user_email, subject, body, status, sent_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		msgID, msg.UserID, msg.UserName, msg.UserEmail, msg.Subject, msg.Body, msg.Status, msg.SentAt.UTC())
	return err
}

// List returns all messages in submission order.
func (r *PostgresRepository) List(ctx context.Context) ([]Message, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, user_name, user_email, subject, body,
        status, sent_at FROM support_messages ORDER BY sent_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var (
			id     uuid.UUID
			sentAt time.Time
			msg    Message
		)
		if err := rows.Scan(&id, &msg.UserID, &msg.UserName, &msg.UserEmail, &msg.Subject,
			&msg.Body, &msg.Status, &sentAt); err != nil {
			return nil, err
		}
		msg.ID = id.String()
		msg.SentAt = sentAt.UTC()
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// MarkResolved transitions the message to resolved. Unknown ids are a silent
// no-op, which makes the call idempotent.
func (r *PostgresRepository) MarkResolved(ctx context.Context, id string) error {
	msgID, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	_, err = r.db.Exec(ctx, `UPDATE support_messages SET status = $1 WHERE id = $2`, StatusResolved, msgID)
	return err
}
