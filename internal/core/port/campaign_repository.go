package port

import (
	"context"
	"time"

	"crowdfund-lifecycle/internal/core/domain"
)

// CampaignRepository is the persistence port for campaigns. State changes
// go through CompareAndSetState only, so two writers racing on the same
// campaign cannot both apply a transition.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id or an error wrapping
	// domain.ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// FindByPermalink matches the permalink case-insensitively and ignores
	// deleted campaigns.
	FindByPermalink(ctx context.Context, permalink string) (*domain.Campaign, error)
	// ListToFinish returns campaigns in online or waiting_funds whose online
	// window ended at or before now.
	ListToFinish(ctx context.Context, now time.Time) ([]domain.Campaign, error)
	// ListExpiring returns online campaigns that have not expired yet but
	// will within the given window.
	ListExpiring(ctx context.Context, now time.Time, within time.Duration) ([]domain.Campaign, error)
	// CompareAndSetState moves the campaign from one state to another only if
	// it is still in from. onlineAt, when non-nil, is stored as the online
	// start. It reports whether the row was updated.
	CompareAndSetState(ctx context.Context, id int64, from, to domain.State, onlineAt *time.Time) (bool, error)
}
