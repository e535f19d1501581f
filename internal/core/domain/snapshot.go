package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PledgeSnapshot is a point-in-time aggregate of a campaign's contributions.
// It is derived on demand and never stored.
type PledgeSnapshot struct {
	CampaignID              int64           `json:"campaign_id"`
	Confirmed               decimal.Decimal `json:"confirmed_total"`
	ConfirmedAndWaiting     decimal.Decimal `json:"confirmed_and_waiting_total"`
	ContributionCount       int             `json:"contribution_count"`
	FeeTotal                decimal.Decimal `json:"fee_total"`
	HasPendingConfirmations bool            `json:"has_pending_confirmations"`
	TakenAt                 time.Time       `json:"taken_at"`
}

// NewSnapshot derives a snapshot from a single ledger read.
func NewSnapshot(t LedgerTotals, takenAt time.Time) PledgeSnapshot {
	return PledgeSnapshot{
		CampaignID:              t.CampaignID,
		Confirmed:               t.SumByState(ContributionConfirmed),
		ConfirmedAndWaiting:     t.SumByState(ContributionConfirmed, ContributionWaiting),
		ContributionCount:       t.Counts[ContributionConfirmed],
		FeeTotal:                t.Fees[ContributionConfirmed],
		HasPendingConfirmations: t.HasAnyInState(ContributionWaiting),
		TakenAt:                 takenAt,
	}
}

// Check verifies confirmed <= confirmed + waiting.
func (s PledgeSnapshot) Check() error {
	if s.Confirmed.GreaterThan(s.ConfirmedAndWaiting) {
		return fmt.Errorf("%w: campaign %d confirmed %s exceeds confirmed and waiting %s",
			ErrInconsistentSnapshot, s.CampaignID, s.Confirmed, s.ConfirmedAndWaiting)
	}
	return nil
}

// ReachedGoal reports whether confirmed pledges alone cover goal.
func (s PledgeSnapshot) ReachedGoal(goal decimal.Decimal) bool {
	return s.Confirmed.GreaterThanOrEqual(goal)
}

// PendingReachesGoal reports whether confirmed and waiting pledges together
// cover goal.
func (s PledgeSnapshot) PendingReachesGoal(goal decimal.Decimal) bool {
	return s.ConfirmedAndWaiting.GreaterThanOrEqual(goal)
}

// CampaignTotals is the cached projection of a campaign's confirmed
// contributions, kept for moderation and reporting reads.
type CampaignTotals struct {
	CampaignID             int64           `json:"campaign_id"`
	Pledged                decimal.Decimal `json:"pledged"`
	TotalContributions     int             `json:"total_contributions"`
	TotalPaymentServiceFee decimal.Decimal `json:"total_payment_service_fee"`
	RefreshedAt            time.Time       `json:"refreshed_at"`
}

// TotalsFromSnapshot projects the cached columns out of a snapshot.
func TotalsFromSnapshot(s PledgeSnapshot) CampaignTotals {
	return CampaignTotals{
		CampaignID:             s.CampaignID,
		Pledged:                s.Confirmed,
		TotalContributions:     s.ContributionCount,
		TotalPaymentServiceFee: s.FeeTotal,
		RefreshedAt:            s.TakenAt,
	}
}
