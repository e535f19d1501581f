package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port/mocks"
)

func TestAggregatorSnapshot(t *testing.T) {
	ledger := newFakeLedger()
	ledger.add(1, 400, 12, domain.ContributionConfirmed)
	ledger.add(1, 300, 9, domain.ContributionConfirmed)
	ledger.add(1, 700, 21, domain.ContributionWaiting)
	ledger.add(1, 50, 2, domain.ContributionRefused)
	ledger.add(1, 80, 3, domain.ContributionCancelled)

	agg := NewPledgeAggregator(ledger, newFakeTotals(), discardLogger(), fixedClock(testNow))
	snap, err := agg.Snapshot(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "700", snap.Confirmed.String())
	assert.Equal(t, "1400", snap.ConfirmedAndWaiting.String())
	assert.Equal(t, 2, snap.ContributionCount)
	assert.Equal(t, "21", snap.FeeTotal.String())
	assert.True(t, snap.HasPendingConfirmations)
	assert.True(t, snap.TakenAt.Equal(testNow))
	assert.NoError(t, snap.Check())
}

func TestAggregatorSnapshotEmptyLedger(t *testing.T) {
	agg := NewPledgeAggregator(newFakeLedger(), newFakeTotals(), discardLogger(), fixedClock(testNow))

	snap, err := agg.Snapshot(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, snap.Confirmed.IsZero())
	assert.True(t, snap.ConfirmedAndWaiting.IsZero())
	assert.False(t, snap.HasPendingConfirmations)
	assert.Equal(t, int64(3), snap.CampaignID)
}

func TestAggregatorRefreshRecomputes(t *testing.T) {
	ledger := newFakeLedger()
	totals := newFakeTotals()
	agg := NewPledgeAggregator(ledger, totals, discardLogger(), fixedClock(testNow))
	ctx := context.Background()

	ledger.add(1, 100, 5, domain.ContributionConfirmed)
	pending := ledger.add(1, 250, 8, domain.ContributionWaiting)
	_, err := agg.Refresh(ctx, 1)
	require.NoError(t, err)

	count, err := agg.TotalContributions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	ledger.setState(1, pending, domain.ContributionConfirmed)
	got, err := agg.Refresh(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "350", got.Pledged.String())

	fee, err := agg.TotalFee(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "13", fee.String())
	count, err = agg.TotalContributions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAggregatorTotalsDefaultToZero(t *testing.T) {
	agg := NewPledgeAggregator(newFakeLedger(), newFakeTotals(), discardLogger(), fixedClock(testNow))

	got, err := agg.Totals(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.CampaignID)
	assert.True(t, got.Pledged.IsZero())
	assert.Zero(t, got.TotalContributions)

	fee, err := agg.TotalFee(context.Background(), 8)
	require.NoError(t, err)
	assert.True(t, fee.Equal(decimal.Zero))
}

func TestAggregatorRefreshSkipsInconsistentLedger(t *testing.T) {
	ledger := mocks.NewMockLedger(t)
	store := mocks.NewMockTotalsStore(t)

	bad := domain.NewLedgerTotals(4)
	bad.Add(domain.ContributionConfirmed, decimal.NewFromInt(100), 1, decimal.Zero)
	bad.Add(domain.ContributionWaiting, decimal.NewFromInt(-150), 1, decimal.Zero)
	ledger.EXPECT().Totals(mock.Anything, int64(4)).Return(bad, nil)

	agg := NewPledgeAggregator(ledger, store, discardLogger(), fixedClock(testNow))
	_, err := agg.Refresh(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrInconsistentSnapshot)
}

func TestAggregatorLedgerError(t *testing.T) {
	ledger := mocks.NewMockLedger(t)
	ledger.EXPECT().Totals(mock.Anything, int64(5)).Return(domain.LedgerTotals{}, errors.New("timeout"))
	ledger.EXPECT().
		HasAnyInState(mock.Anything, int64(5), domain.ContributionWaiting).
		Return(false, errors.New("timeout"))

	agg := NewPledgeAggregator(ledger, mocks.NewMockTotalsStore(t), discardLogger(), fixedClock(testNow))

	_, err := agg.Snapshot(context.Background(), 5)
	assert.ErrorContains(t, err, "campaign 5")
	_, err = agg.HasPendingConfirmations(context.Background(), 5)
	assert.ErrorContains(t, err, "timeout")
}
