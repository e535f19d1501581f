package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
)

// NotificationStore keeps notification records. The unique constraint on
// (recipient_id, subject_id, kind) makes Claim the idempotency witness.
type NotificationStore struct {
	pool *pgxpool.Pool
}

var _ port.NotificationStore = (*NotificationStore)(nil)

func NewNotificationStore(pool *pgxpool.Pool) *NotificationStore {
	return &NotificationStore{pool: pool}
}

// Claim inserts the record and reports whether this call created it.
func (s *NotificationStore) Claim(ctx context.Context, rec domain.NotificationRecord) (bool, error) {
	var payload any
	if len(rec.Payload) > 0 {
		payload = string(rec.Payload)
	}
	tag, err := s.pool.Exec(ctx, `INSERT INTO notification_records
        (id, recipient_id, subject_id, kind, payload, created_at)
        VALUES ($1, $2, $3, $4, $5::jsonb, $6)
        ON CONFLICT (recipient_id, subject_id, kind) DO NOTHING`,
		rec.ID, rec.RecipientID, rec.SubjectID, rec.Kind, payload, rec.CreatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Exists reports whether a record with the key was claimed.
func (s *NotificationStore) Exists(ctx context.Context, key domain.NotificationKey) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (
        SELECT 1 FROM notification_records
        WHERE recipient_id = $1 AND subject_id = $2 AND kind = $3)`,
		key.RecipientID, key.SubjectID, key.Kind).Scan(&ok)
	return ok, err
}
