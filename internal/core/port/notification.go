package port

import (
	"context"
	"encoding/json"

	"crowdfund-lifecycle/internal/core/domain"
)

// NotificationStore keeps notification records with a uniqueness guarantee
// on (recipient, subject, kind).
type NotificationStore interface {
	// Claim inserts the record unless one with the same key exists. It
	// reports true only for the caller whose insert won.
	Claim(ctx context.Context, rec domain.NotificationRecord) (bool, error)
	// Exists reports whether a record with the key was already claimed.
	Exists(ctx context.Context, key domain.NotificationKey) (bool, error)
}

// Dispatcher delivers a notification to an external channel.
type Dispatcher interface {
	Send(ctx context.Context, recipientID int64, kind domain.Kind, payload json.RawMessage) error
}
