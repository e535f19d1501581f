package port

import (
	"context"

	"github.com/shopspring/decimal"

	"crowdfund-lifecycle/internal/core/domain"
)

// Ledger is the read-only view of the contribution ledger.
type Ledger interface {
	// Totals returns per-state sums, counts and fees for a campaign from a
	// single consistent read.
	Totals(ctx context.Context, campaignID int64) (domain.LedgerTotals, error)
	// SumByState sums contribution values in any of the given states.
	SumByState(ctx context.Context, campaignID int64, states []domain.ContributionState) (decimal.Decimal, error)
	// HasAnyInState reports whether the campaign has a contribution in state.
	HasAnyInState(ctx context.Context, campaignID int64, state domain.ContributionState) (bool, error)
}

// TotalsStore persists the cached totals projection.
type TotalsStore interface {
	// Get returns nil when no projection exists for the campaign.
	Get(ctx context.Context, campaignID int64) (*domain.CampaignTotals, error)
	// Put replaces the projection for the campaign.
	Put(ctx context.Context, totals domain.CampaignTotals) error
}
