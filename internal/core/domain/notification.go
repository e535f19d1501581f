package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Kind tags a notification. Lifecycle notifications reuse the name of the
// state that triggered them.
type Kind string

const (
	KindSuccessful           Kind = Kind(StateSuccessful)
	KindFailed               Kind = Kind(StateFailed)
	KindVerifyPaymentAccount Kind = "verify_payment_account"
)

// KindForState returns the lifecycle notification kind for entering s.
func KindForState(s State) Kind {
	return Kind(s)
}

// NotificationKey identifies a notification for deduplication.
type NotificationKey struct {
	RecipientID int64
	SubjectID   int64
	Kind        Kind
}

// NotificationRecord is the idempotency witness of a claimed notification.
// It is created at most once per key and never mutated.
type NotificationRecord struct {
	ID          uuid.UUID
	RecipientID int64
	SubjectID   int64
	Kind        Kind
	Payload     json.RawMessage
	CreatedAt   time.Time
}

// Key returns the deduplication key of the record.
func (r NotificationRecord) Key() NotificationKey {
	return NotificationKey{RecipientID: r.RecipientID, SubjectID: r.SubjectID, Kind: r.Kind}
}
