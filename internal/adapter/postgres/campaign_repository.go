package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
)

const campaignColumns = `id, owner_id, name, permalink, goal, online_days, online_at, state, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Permalink,
		&c.Goal,
		&c.OnlineDays,
		&c.OnlineAt,
		&c.State,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrCampaignNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByPermalink returns a non-deleted campaign whose permalink matches
// case-insensitively.
func (r *CampaignRepository) FindByPermalink(ctx context.Context, permalink string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns
        WHERE lower(permalink) = lower($1) AND state <> 'deleted'`, permalink)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: permalink %q", domain.ErrCampaignNotFound, permalink)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListToFinish returns campaigns in online or waiting_funds whose online
// window ended at or before now.
func (r *CampaignRepository) ListToFinish(ctx context.Context, now time.Time) ([]domain.Campaign, error) {
	states := []string{string(domain.StateOnline), string(domain.StateWaitingFunds)}
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
        WHERE state = ANY($1)
          AND online_at IS NOT NULL
          AND online_at + online_days * interval '1 day' <= $2
        ORDER BY id`, pq.Array(states), now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// ListExpiring returns online campaigns expiring after now and no later
// than now+within.
func (r *CampaignRepository) ListExpiring(ctx context.Context, now time.Time, within time.Duration) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
        WHERE state = 'online'
          AND online_at IS NOT NULL
          AND online_at + online_days * interval '1 day' > $1
          AND online_at + online_days * interval '1 day' <= $2
        ORDER BY id`, now, now.Add(within))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// CompareAndSetState updates the state only while the row still holds from.
// The conditional update is the per-campaign serialization point.
func (r *CampaignRepository) CompareAndSetState(ctx context.Context, id int64, from, to domain.State, onlineAt *time.Time) (bool, error) {
	if !domain.CanTransition(from, to) {
		return false, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
	}
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
        SET state = $3, online_at = COALESCE($4::timestamptz, online_at), updated_at = now()
        WHERE id = $1 AND state = $2`, id, from, to, onlineAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
