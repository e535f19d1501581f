package port

import (
	"context"
	"encoding/json"

	"crowdfund-lifecycle/internal/core/domain"
)

// LifecycleUseCase defines the operations exposed by the campaign lifecycle
// core. It is the primary port used by the HTTP surface and the scheduler.
type LifecycleUseCase interface {
	// Evaluate applies the expiration rule to one campaign and emits the
	// lifecycle notification when the campaign settles. It is idempotent.
	Evaluate(ctx context.Context, campaignID int64) (TransitionResult, error)

	// SweepExpired evaluates every campaign in online or waiting_funds whose
	// online window has passed. A failure on one campaign is recorded in its
	// result and never aborts the sweep.
	SweepExpired(ctx context.Context) ([]TransitionResult, error)

	// RemindPendingVerification notifies owners of campaigns close to
	// expiration that still have unconfirmed contributions.
	RemindPendingVerification(ctx context.Context) ([]ReminderResult, error)

	// Snapshot returns the current pledge aggregate of a campaign.
	Snapshot(ctx context.Context, campaignID int64) (domain.PledgeSnapshot, error)

	// Totals returns the cached totals projection. Campaigns without a
	// projection yet report zero totals.
	Totals(ctx context.Context, campaignID int64) (domain.CampaignTotals, error)

	// FindByPermalink looks a campaign up by permalink, case-insensitively.
	FindByPermalink(ctx context.Context, permalink string) (*domain.Campaign, error)

	// Moderate applies a moderation decision out of draft or in_analysis.
	Moderate(ctx context.Context, campaignID int64, to domain.State) (TransitionResult, error)

	// NotifyOwner sends a deduplicated notification to the campaign owner.
	NotifyOwner(ctx context.Context, campaignID int64, kind domain.Kind, payload json.RawMessage) (NotifyResult, error)

	// NotifyBackoffice sends a deduplicated notification about a campaign to
	// the configured backoffice user, or to fallbackRecipient when none is
	// configured.
	NotifyBackoffice(ctx context.Context, campaignID int64, kind domain.Kind, payload json.RawMessage, fallbackRecipient int64) (NotifyResult, error)
}

// TransitionResult reports the outcome of evaluating one campaign. Err is
// set when the evaluation failed; OldState and NewState are then equal.
type TransitionResult struct {
	CampaignID           int64
	OldState             domain.State
	NewState             domain.State
	NotificationsEmitted int
	Err                  error
}

// Changed reports whether the campaign moved.
func (r TransitionResult) Changed() bool {
	return r.OldState != r.NewState
}

// ReminderResult reports the outcome of one payment verification reminder.
type ReminderResult struct {
	CampaignID int64
	Notify     NotifyResult
	Err        error
}

// NotifyResult tells whether a notification went out or was suppressed as a
// duplicate. Skipped is set when there was no recipient to address.
type NotifyResult struct {
	RecipientID int64
	Kind        domain.Kind
	Dispatched  bool
	Skipped     bool
}
