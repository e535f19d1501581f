package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
)

// Ledger reads contribution aggregates. It never writes contributions.
type Ledger struct {
	pool *pgxpool.Pool
}

var _ port.Ledger = (*Ledger)(nil)

func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

// Totals groups the campaign's contributions by state in one statement,
// so every sum comes from the same snapshot of the table.
func (l *Ledger) Totals(ctx context.Context, campaignID int64) (domain.LedgerTotals, error) {
	rows, err := l.pool.Query(ctx, `
        SELECT state, COALESCE(SUM(value), 0), COUNT(*), COALESCE(SUM(payment_service_fee), 0)
        FROM contributions
        WHERE campaign_id = $1
        GROUP BY state`, campaignID)
	if err != nil {
		return domain.LedgerTotals{}, err
	}
	type group struct {
		State domain.ContributionState
		Sum   decimal.Decimal
		Count int
		Fee   decimal.Decimal
	}
	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (group, error) {
		var g group
		err := row.Scan(&g.State, &g.Sum, &g.Count, &g.Fee)
		return g, err
	})
	if err != nil {
		return domain.LedgerTotals{}, err
	}
	totals := domain.NewLedgerTotals(campaignID)
	for _, g := range groups {
		totals.Add(g.State, g.Sum, g.Count, g.Fee)
	}
	return totals, nil
}

// SumByState sums contribution values in any of states.
func (l *Ledger) SumByState(ctx context.Context, campaignID int64, states []domain.ContributionState) (decimal.Decimal, error) {
	names := make([]string, 0, len(states))
	for _, s := range states {
		names = append(names, string(s))
	}
	var sum decimal.Decimal
	err := l.pool.QueryRow(ctx, `SELECT COALESCE(SUM(value), 0) FROM contributions
        WHERE campaign_id = $1 AND state = ANY($2)`, campaignID, pq.Array(names)).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// HasAnyInState reports whether at least one contribution is in state.
func (l *Ledger) HasAnyInState(ctx context.Context, campaignID int64, state domain.ContributionState) (bool, error) {
	var ok bool
	err := l.pool.QueryRow(ctx, `SELECT EXISTS (
        SELECT 1 FROM contributions WHERE campaign_id = $1 AND state = $2)`, campaignID, state).Scan(&ok)
	return ok, err
}

// CampaignIDs lists every campaign that has at least one contribution.
func (l *Ledger) CampaignIDs(ctx context.Context) ([]int64, error) {
	rows, err := l.pool.Query(ctx, `SELECT DISTINCT campaign_id FROM contributions ORDER BY campaign_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}
