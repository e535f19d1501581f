package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
)

// TotalsStore persists the cached totals projection in campaign_totals.
type TotalsStore struct {
	pool *pgxpool.Pool
}

var _ port.TotalsStore = (*TotalsStore)(nil)

func NewTotalsStore(pool *pgxpool.Pool) *TotalsStore {
	return &TotalsStore{pool: pool}
}

// Get returns nil when the campaign has no projection yet.
func (s *TotalsStore) Get(ctx context.Context, campaignID int64) (*domain.CampaignTotals, error) {
	t := domain.CampaignTotals{CampaignID: campaignID}
	err := s.pool.QueryRow(ctx, `SELECT pledged, total_contributions, total_payment_service_fee, refreshed_at
        FROM campaign_totals WHERE campaign_id = $1`, campaignID).
		Scan(&t.Pledged, &t.TotalContributions, &t.TotalPaymentServiceFee, &t.RefreshedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Put replaces the projection. An older refresh never overwrites a newer one.
func (s *TotalsStore) Put(ctx context.Context, t domain.CampaignTotals) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO campaign_totals
        (campaign_id, pledged, total_contributions, total_payment_service_fee, refreshed_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (campaign_id) DO UPDATE SET
            pledged = EXCLUDED.pledged,
            total_contributions = EXCLUDED.total_contributions,
            total_payment_service_fee = EXCLUDED.total_payment_service_fee,
            refreshed_at = EXCLUDED.refreshed_at
        WHERE campaign_totals.refreshed_at <= EXCLUDED.refreshed_at`,
		t.CampaignID, t.Pledged, t.TotalContributions, t.TotalPaymentServiceFee, t.RefreshedAt)
	return err
}
