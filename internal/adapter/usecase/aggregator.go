package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
)

// PledgeAggregator derives pledge snapshots from the contribution ledger
// and maintains the cached totals projection.
//
// The projection is recomputed in full on every refresh; it is never
// patched incrementally. Lifecycle decisions always read the ledger
// directly through Snapshot.
type PledgeAggregator struct {
	ledger port.Ledger
	totals port.TotalsStore
	logger *slog.Logger
	clock  func() time.Time
}

// NewPledgeAggregator creates an aggregator. A nil clock defaults to time.Now.
func NewPledgeAggregator(ledger port.Ledger, totals port.TotalsStore, logger *slog.Logger, clock func() time.Time) *PledgeAggregator {
	if clock == nil {
		clock = time.Now
	}
	return &PledgeAggregator{ledger: ledger, totals: totals, logger: logger, clock: clock}
}

// Snapshot reads the ledger once and derives the pledge snapshot. A
// campaign without contributions yields a zero snapshot.
func (a *PledgeAggregator) Snapshot(ctx context.Context, campaignID int64) (domain.PledgeSnapshot, error) {
	t, err := a.ledger.Totals(ctx, campaignID)
	if err != nil {
		return domain.PledgeSnapshot{}, fmt.Errorf("read ledger totals of campaign %d: %w", campaignID, err)
	}
	t.CampaignID = campaignID
	return domain.NewSnapshot(t, a.clock().UTC()), nil
}

// Refresh recomputes the totals projection of a campaign from the ledger
// and stores it.
func (a *PledgeAggregator) Refresh(ctx context.Context, campaignID int64) (domain.CampaignTotals, error) {
	snap, err := a.Snapshot(ctx, campaignID)
	if err != nil {
		return domain.CampaignTotals{}, err
	}
	if err = snap.Check(); err != nil {
		return domain.CampaignTotals{}, err
	}
	totals := domain.TotalsFromSnapshot(snap)
	if err = a.totals.Put(ctx, totals); err != nil {
		return domain.CampaignTotals{}, fmt.Errorf("store totals of campaign %d: %w", campaignID, err)
	}
	a.logger.Debug("totals refreshed",
		slog.Int64("campaign_id", campaignID),
		slog.String("pledged", totals.Pledged.String()),
		slog.Int("total_contributions", totals.TotalContributions))
	return totals, nil
}

// Totals returns the cached projection, or zero totals when the campaign
// has none yet.
func (a *PledgeAggregator) Totals(ctx context.Context, campaignID int64) (domain.CampaignTotals, error) {
	t, err := a.totals.Get(ctx, campaignID)
	if err != nil {
		return domain.CampaignTotals{}, fmt.Errorf("load totals of campaign %d: %w", campaignID, err)
	}
	if t == nil {
		return domain.CampaignTotals{
			CampaignID:             campaignID,
			Pledged:                decimal.Zero,
			TotalPaymentServiceFee: decimal.Zero,
		}, nil
	}
	return *t, nil
}

// TotalContributions returns the cached number of confirmed contributions.
func (a *PledgeAggregator) TotalContributions(ctx context.Context, campaignID int64) (int, error) {
	t, err := a.Totals(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	return t.TotalContributions, nil
}

// TotalFee returns the cached payment service fee of confirmed contributions.
func (a *PledgeAggregator) TotalFee(ctx context.Context, campaignID int64) (decimal.Decimal, error) {
	t, err := a.Totals(ctx, campaignID)
	if err != nil {
		return decimal.Zero, err
	}
	return t.TotalPaymentServiceFee, nil
}

// HasPendingConfirmations reports whether the campaign has a contribution
// still waiting for confirmation.
func (a *PledgeAggregator) HasPendingConfirmations(ctx context.Context, campaignID int64) (bool, error) {
	ok, err := a.ledger.HasAnyInState(ctx, campaignID, domain.ContributionWaiting)
	if err != nil {
		return false, fmt.Errorf("check pending contributions of campaign %d: %w", campaignID, err)
	}
	return ok, nil
}

// PendingValue sums the contributions still waiting for confirmation.
func (a *PledgeAggregator) PendingValue(ctx context.Context, campaignID int64) (decimal.Decimal, error) {
	v, err := a.ledger.SumByState(ctx, campaignID, []domain.ContributionState{domain.ContributionWaiting})
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum pending contributions of campaign %d: %w", campaignID, err)
	}
	return v, nil
}
