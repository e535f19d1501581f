package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContributionState is the confirmation state of a pledge attempt.
type ContributionState string

const (
	ContributionWaiting   ContributionState = "waiting_confirmation"
	ContributionConfirmed ContributionState = "confirmed"
	ContributionRefused   ContributionState = "refused"
	ContributionCancelled ContributionState = "cancelled"
)

// Valid reports whether s is a known confirmation state.
func (s ContributionState) Valid() bool {
	switch s {
	case ContributionWaiting, ContributionConfirmed, ContributionRefused, ContributionCancelled:
		return true
	default:
		return false
	}
}

// Contribution is a single pledge toward a campaign. The ledger owns it;
// this service only reads it.
type Contribution struct {
	ID                int64
	CampaignID        int64
	Value             decimal.Decimal
	PaymentServiceFee decimal.Decimal
	State             ContributionState
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LedgerTotals holds per-state sums for one campaign, all taken from the
// same ledger read.
type LedgerTotals struct {
	CampaignID int64
	Sums       map[ContributionState]decimal.Decimal
	Counts     map[ContributionState]int
	Fees       map[ContributionState]decimal.Decimal
}

// NewLedgerTotals returns empty totals for a campaign.
func NewLedgerTotals(campaignID int64) LedgerTotals {
	return LedgerTotals{
		CampaignID: campaignID,
		Sums:       make(map[ContributionState]decimal.Decimal),
		Counts:     make(map[ContributionState]int),
		Fees:       make(map[ContributionState]decimal.Decimal),
	}
}

// Add records one ledger row group.
func (t *LedgerTotals) Add(state ContributionState, sum decimal.Decimal, count int, fee decimal.Decimal) {
	t.Sums[state] = t.Sums[state].Add(sum)
	t.Counts[state] += count
	t.Fees[state] = t.Fees[state].Add(fee)
}

// SumByState returns the summed contribution value over the given states.
func (t LedgerTotals) SumByState(states ...ContributionState) decimal.Decimal {
	total := decimal.Zero
	for _, s := range states {
		total = total.Add(t.Sums[s])
	}
	return total
}

// HasAnyInState reports whether at least one contribution is in state.
func (t LedgerTotals) HasAnyInState(state ContributionState) bool {
	return t.Counts[state] > 0
}
