package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-lifecycle/internal/core/domain"
)

// ContributionChannel is the channel the contributions trigger notifies on.
const ContributionChannel = "contribution_changed"

// Refresher recomputes the totals projection of one campaign.
type Refresher interface {
	Refresh(ctx context.Context, campaignID int64) (domain.CampaignTotals, error)
}

// LedgerWatcher listens for ledger writes and refreshes the totals
// projection of the campaign each write touched. After every (re)connect it
// refreshes all campaigns, since notifications sent while nobody listened
// are lost.
type LedgerWatcher struct {
	pool      *pgxpool.Pool
	ledger    *Ledger
	refresher Refresher
	logger    *slog.Logger
	retry     time.Duration
}

func NewLedgerWatcher(pool *pgxpool.Pool, ledger *Ledger, refresher Refresher, logger *slog.Logger) *LedgerWatcher {
	return &LedgerWatcher{
		pool:      pool,
		ledger:    ledger,
		refresher: refresher,
		logger:    logger,
		retry:     5 * time.Second,
	}
}

// Run blocks until ctx is done, reconnecting after connection failures.
func (w *LedgerWatcher) Run(ctx context.Context) error {
	for {
		err := w.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}
		w.logger.Error("ledger watcher disconnected", slog.Any("error", err), slog.Duration("retry_in", w.retry))
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(w.retry):
		}
	}
}

func (w *LedgerWatcher) listen(ctx context.Context) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err = conn.Exec(ctx, "LISTEN "+ContributionChannel); err != nil {
		return fmt.Errorf("listen %s: %w", ContributionChannel, err)
	}
	w.logger.Info("ledger watcher listening", slog.String("channel", ContributionChannel))

	if err = w.resync(ctx); err != nil {
		w.logger.Error("ledger resync failed", slog.Any("error", err))
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		id, err := ParseCampaignID(n.Payload)
		if err != nil {
			w.logger.Warn("ignoring ledger notification", slog.String("payload", n.Payload), slog.Any("error", err))
			continue
		}
		w.refresh(ctx, id)
	}
}

func (w *LedgerWatcher) resync(ctx context.Context) error {
	ids, err := w.ledger.CampaignIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.refresh(ctx, id)
	}
	w.logger.Info("ledger resync finished", slog.Int("campaigns", len(ids)))
	return nil
}

func (w *LedgerWatcher) refresh(ctx context.Context, id int64) {
	if _, err := w.refresher.Refresh(ctx, id); err != nil && !errors.Is(err, context.Canceled) {
		w.logger.Error("totals refresh failed", slog.Int64("campaign_id", id), slog.Any("error", err))
	}
}

// ParseCampaignID decodes a contribution_changed payload.
func ParseCampaignID(payload string) (int64, error) {
	id, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("campaign id must be positive, got %d", id)
	}
	return id, nil
}
