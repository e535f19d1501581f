package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// demoCampaign describes one seeded campaign. daysAgo places its online
// start relative to now so the seed always contains campaigns on both sides
// of expiration.
type demoCampaign struct {
	name      string
	permalink string
	goal      int64
	days      int
	daysAgo   int
	state     string
	confirmed []int64
	waiting   []int64
	refused   []int64
}

var demoCampaigns = []demoCampaign{
	{"Solar bikes", "solar-bikes", 1000, 30, 31, "online", []int64{700, 500}, nil, []int64{100}},
	{"Community garden", "community-garden", 1000, 30, 31, "online", []int64{400}, nil, nil},
	{"Indie album", "indie-album", 1000, 30, 31, "online", []int64{400}, []int64{700}, nil},
	{"Board game reprint", "board-game-reprint", 2000, 45, 40, "online", []int64{900}, []int64{300}, nil},
	{"Street library", "street-library", 500, 20, 3, "online", []int64{100}, nil, nil},
	{"Open hardware", "open-hardware", 3000, 60, 0, "draft", nil, nil, nil},
}

// Seed inserts demo campaigns and contributions. It is idempotent on
// permalink.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i, dc := range demoCampaigns {
		var onlineAt *time.Time
		if dc.state != "draft" {
			t := now.AddDate(0, 0, -dc.daysAgo)
			onlineAt = &t
		}
		var id int64
		err := db.QueryRow(ctx, `INSERT INTO campaigns
    (owner_id, name, permalink, goal, online_days, online_at, state, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now())
ON CONFLICT (lower(permalink)) WHERE permalink <> '' DO NOTHING
RETURNING id`,
			int64(i+1), dc.name, dc.permalink, decimal.NewFromInt(dc.goal), dc.days, onlineAt, dc.state).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			// already seeded
			continue
		}
		if err != nil {
			return fmt.Errorf("seed campaign %s: %w", dc.permalink, err)
		}

		insert := func(value int64, state string) error {
			// payment service fees between 3% and 5%
			fee := decimal.NewFromInt(value).Mul(decimal.NewFromFloat(0.03 + r.Float64()*0.02)).Round(2)
			_, err := db.Exec(ctx, `INSERT INTO contributions
(campaign_id, value, payment_service_fee, state, created_at, updated_at)
VALUES ($1,$2,$3,$4,now(),now())`, id, decimal.NewFromInt(value), fee, state)
			if err != nil {
				return fmt.Errorf("seed contribution for %s: %w", dc.permalink, err)
			}
			return nil
		}
		for _, v := range dc.confirmed {
			if err = insert(v, "confirmed"); err != nil {
				return err
			}
		}
		for _, v := range dc.waiting {
			if err = insert(v, "waiting_confirmation"); err != nil {
				return err
			}
		}
		for _, v := range dc.refused {
			if err = insert(v, "refused"); err != nil {
				return err
			}
		}
	}
	return nil
}
