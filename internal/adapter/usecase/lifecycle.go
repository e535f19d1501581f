package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
	"crowdfund-lifecycle/internal/metrics"
)

// LifecycleOptions tunes the lifecycle use case. Zero values fall back to
// defaults.
type LifecycleOptions struct {
	// Workers bounds how many campaigns a sweep evaluates in parallel.
	Workers int
	// ReminderWindow is how far ahead of expiration owners are reminded to
	// verify their payment account.
	ReminderWindow time.Duration
	// BackofficeUserID receives backoffice notifications. Zero means unset.
	BackofficeUserID int64
	// PaymentsEmail is the sender address put in reminder payloads.
	PaymentsEmail string
	// Clock replaces time.Now.
	Clock func() time.Time
}

const (
	defaultWorkers        = 4
	defaultReminderWindow = 7 * 24 * time.Hour
)

// LifecycleUseCase implements port.LifecycleUseCase. It evaluates
// campaigns against the expiration rule, applies moderation decisions and
// routes notifications through the gate.
type LifecycleUseCase struct {
	campaigns  port.CampaignRepository
	aggregator *PledgeAggregator
	gate       *NotificationGate
	logger     *slog.Logger

	workers          int
	reminderWindow   time.Duration
	backofficeUserID int64
	paymentsEmail    string
	clock            func() time.Time
}

var _ port.LifecycleUseCase = (*LifecycleUseCase)(nil)

// NewLifecycleUseCase wires the use case.
func NewLifecycleUseCase(
	campaigns port.CampaignRepository,
	aggregator *PledgeAggregator,
	gate *NotificationGate,
	logger *slog.Logger,
	opts LifecycleOptions,
) *LifecycleUseCase {
	u := &LifecycleUseCase{
		campaigns:        campaigns,
		aggregator:       aggregator,
		gate:             gate,
		logger:           logger,
		workers:          opts.Workers,
		reminderWindow:   opts.ReminderWindow,
		backofficeUserID: opts.BackofficeUserID,
		paymentsEmail:    opts.PaymentsEmail,
		clock:            opts.Clock,
	}
	if u.workers <= 0 {
		u.workers = defaultWorkers
	}
	if u.reminderWindow <= 0 {
		u.reminderWindow = defaultReminderWindow
	}
	if u.clock == nil {
		u.clock = time.Now
	}
	return u
}

// Evaluate loads the campaign and applies the expiration rule to it.
func (u *LifecycleUseCase) Evaluate(ctx context.Context, campaignID int64) (port.TransitionResult, error) {
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return port.TransitionResult{CampaignID: campaignID}, err
	}
	return u.evaluate(ctx, *c)
}

// evaluate decides and applies the next state of c. The state change is a
// compare-and-set on the state read into c; losing the race means another
// evaluator already applied the transition and owns its notification.
func (u *LifecycleUseCase) evaluate(ctx context.Context, c domain.Campaign) (port.TransitionResult, error) {
	res := port.TransitionResult{CampaignID: c.ID, OldState: c.State, NewState: c.State}

	if c.State.Settled() {
		// Offer the notification again. The gate suppresses it if it was
		// already claimed, and delivers it if a previous run stopped between
		// the state change and the claim.
		n, err := u.notifySettled(ctx, c, c.State)
		res.NotificationsEmitted = n
		return res, err
	}

	snap, err := u.aggregator.Snapshot(ctx, c.ID)
	if err != nil {
		return res, err
	}
	d, err := domain.Decide(c, snap, u.clock())
	if err != nil {
		return res, err
	}
	if !d.Changed() {
		return res, nil
	}

	applied, err := u.campaigns.CompareAndSetState(ctx, c.ID, d.From, d.To, nil)
	if err != nil {
		return res, fmt.Errorf("apply %s -> %s to campaign %d: %w", d.From, d.To, c.ID, err)
	}
	if !applied {
		u.logger.Debug("transition lost to a concurrent writer",
			slog.Int64("campaign_id", c.ID),
			slog.String("from", string(d.From)),
			slog.String("to", string(d.To)))
		return res, nil
	}
	res.NewState = d.To
	metrics.RecordTransition(string(d.From), string(d.To))
	u.logger.Info("campaign transitioned",
		slog.Int64("campaign_id", c.ID),
		slog.String("from", string(d.From)),
		slog.String("to", string(d.To)),
		slog.String("confirmed", snap.Confirmed.String()),
		slog.String("goal", c.Goal.String()))

	if d.Notifies() {
		n, err := u.notifySettled(ctx, c, d.To)
		res.NotificationsEmitted = n
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

func (u *LifecycleUseCase) notifySettled(ctx context.Context, c domain.Campaign, state domain.State) (int, error) {
	payload, err := json.Marshal(map[string]any{
		"campaign_id": c.ID,
		"state":       state,
	})
	if err != nil {
		return 0, err
	}
	sent, err := u.gate.Notify(ctx, c.OwnerID, c.ID, domain.KindForState(state), payload)
	if sent {
		return 1, err
	}
	return 0, err
}

// SweepExpired evaluates every expired campaign still in online or
// waiting_funds. Campaigns are evaluated by a bounded set of workers; each
// failure is recorded on its own result. A cancelled context stops the
// sweep before the next campaign and is returned with the results so far.
func (u *LifecycleUseCase) SweepExpired(ctx context.Context) ([]port.TransitionResult, error) {
	started := time.Now()
	defer func() { metrics.RecordSweep(time.Since(started).Seconds()) }()

	campaigns, err := u.campaigns.ListToFinish(ctx, u.clock())
	if err != nil {
		return nil, fmt.Errorf("list campaigns to finish: %w", err)
	}

	results := make([]port.TransitionResult, len(campaigns))
	scheduled := 0

	var g errgroup.Group
	g.SetLimit(u.workers)
	for i, c := range campaigns {
		if ctx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = port.TransitionResult{CampaignID: c.ID, OldState: c.State, NewState: c.State, Err: err}
				return nil
			}
			res, err := u.evaluate(ctx, c)
			res.Err = err
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	results = results[:scheduled]

	var transitioned, failed int
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			metrics.RecordSweepCampaign(metrics.SweepErrored)
			level := slog.LevelError
			if errors.Is(res.Err, domain.ErrInvalidTransition) {
				level = slog.LevelWarn
			}
			u.logger.Log(ctx, level, "campaign evaluation failed",
				slog.Int64("campaign_id", res.CampaignID),
				slog.String("state", string(res.NewState)),
				slog.Any("error", res.Err))
		case res.Changed():
			transitioned++
			metrics.RecordSweepCampaign(metrics.SweepTransitioned)
		default:
			metrics.RecordSweepCampaign(metrics.SweepUnchanged)
		}
	}
	u.logger.Info("expiration sweep finished",
		slog.Int("candidates", len(campaigns)),
		slog.Int("evaluated", len(results)),
		slog.Int("transitioned", transitioned),
		slog.Int("failed", failed),
		slog.Duration("took", time.Since(started)))

	return results, ctx.Err()
}

// RemindPendingVerification notifies owners of online campaigns expiring
// within the reminder window that still have contributions waiting for
// confirmation. Each campaign is reminded at most once.
func (u *LifecycleUseCase) RemindPendingVerification(ctx context.Context) ([]port.ReminderResult, error) {
	campaigns, err := u.campaigns.ListExpiring(ctx, u.clock(), u.reminderWindow)
	if err != nil {
		return nil, fmt.Errorf("list expiring campaigns: %w", err)
	}

	var results []port.ReminderResult
	for _, c := range campaigns {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		pending, err := u.aggregator.HasPendingConfirmations(ctx, c.ID)
		if err != nil {
			results = append(results, port.ReminderResult{CampaignID: c.ID, Err: err})
			continue
		}
		if !pending {
			continue
		}
		res := port.ReminderResult{CampaignID: c.ID}
		res.Notify, res.Err = u.remind(ctx, c)
		if res.Err != nil {
			u.logger.Error("payment verification reminder failed",
				slog.Int64("campaign_id", c.ID),
				slog.Any("error", res.Err))
		}
		results = append(results, res)
	}
	return results, nil
}

func (u *LifecycleUseCase) remind(ctx context.Context, c domain.Campaign) (port.NotifyResult, error) {
	out := port.NotifyResult{RecipientID: c.OwnerID, Kind: domain.KindVerifyPaymentAccount}
	value, err := u.aggregator.PendingValue(ctx, c.ID)
	if err != nil {
		return out, err
	}
	payload, err := json.Marshal(map[string]string{
		"from_email":    u.paymentsEmail,
		"pending_value": value.String(),
	})
	if err != nil {
		return out, err
	}
	out.Dispatched, err = u.gate.Notify(ctx, c.OwnerID, c.ID, domain.KindVerifyPaymentAccount, payload)
	return out, err
}

// Snapshot returns the live pledge snapshot of an existing campaign.
func (u *LifecycleUseCase) Snapshot(ctx context.Context, campaignID int64) (domain.PledgeSnapshot, error) {
	if _, err := u.campaigns.GetCampaign(ctx, campaignID); err != nil {
		return domain.PledgeSnapshot{}, err
	}
	return u.aggregator.Snapshot(ctx, campaignID)
}

// Totals returns the cached totals of an existing campaign.
func (u *LifecycleUseCase) Totals(ctx context.Context, campaignID int64) (domain.CampaignTotals, error) {
	if _, err := u.campaigns.GetCampaign(ctx, campaignID); err != nil {
		return domain.CampaignTotals{}, err
	}
	return u.aggregator.Totals(ctx, campaignID)
}

// FindByPermalink returns the campaign with the given permalink. Malformed
// permalinks are reported as not found.
func (u *LifecycleUseCase) FindByPermalink(ctx context.Context, permalink string) (*domain.Campaign, error) {
	if permalink == "" || !domain.ValidPermalink(permalink) {
		return nil, fmt.Errorf("%w: permalink %q", domain.ErrCampaignNotFound, permalink)
	}
	return u.campaigns.FindByPermalink(ctx, permalink)
}

// Moderate applies a moderation decision. Launching a campaign into online
// validates it and stamps its online start.
func (u *LifecycleUseCase) Moderate(ctx context.Context, campaignID int64, to domain.State) (port.TransitionResult, error) {
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return port.TransitionResult{CampaignID: campaignID}, err
	}
	res := port.TransitionResult{CampaignID: c.ID, OldState: c.State, NewState: c.State}
	if !domain.Moderation(c.State, to) {
		return res, fmt.Errorf("%w: campaign %d cannot move from %s to %s", domain.ErrInvalidTransition, c.ID, c.State, to)
	}

	var onlineAt *time.Time
	if to == domain.StateOnline {
		if err = c.Validate(); err != nil {
			return res, err
		}
		now := u.clock().UTC()
		onlineAt = &now
	}

	applied, err := u.campaigns.CompareAndSetState(ctx, c.ID, c.State, to, onlineAt)
	if err != nil {
		return res, fmt.Errorf("apply %s -> %s to campaign %d: %w", c.State, to, c.ID, err)
	}
	if !applied {
		return res, fmt.Errorf("%w: campaign %d changed state concurrently", domain.ErrInvalidTransition, c.ID)
	}
	res.NewState = to
	metrics.RecordTransition(string(c.State), string(to))
	u.logger.Info("campaign moderated",
		slog.Int64("campaign_id", c.ID),
		slog.String("from", string(c.State)),
		slog.String("to", string(to)))
	return res, nil
}

// NotifyOwner sends a deduplicated notification to the campaign owner.
func (u *LifecycleUseCase) NotifyOwner(ctx context.Context, campaignID int64, kind domain.Kind, payload json.RawMessage) (port.NotifyResult, error) {
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return port.NotifyResult{Kind: kind}, err
	}
	out := port.NotifyResult{RecipientID: c.OwnerID, Kind: kind}
	out.Dispatched, err = u.gate.Notify(ctx, c.OwnerID, c.ID, kind, payload)
	return out, err
}

// NotifyBackoffice sends a deduplicated notification about a campaign to
// the backoffice. Without a configured backoffice user and without a
// fallback the notification is skipped.
func (u *LifecycleUseCase) NotifyBackoffice(ctx context.Context, campaignID int64, kind domain.Kind, payload json.RawMessage, fallbackRecipient int64) (port.NotifyResult, error) {
	recipient := u.backofficeUserID
	if recipient == 0 {
		recipient = fallbackRecipient
	}
	out := port.NotifyResult{RecipientID: recipient, Kind: kind}
	if recipient == 0 {
		out.Skipped = true
		u.logger.Warn("backoffice notification skipped, no recipient",
			slog.Int64("campaign_id", campaignID),
			slog.String("kind", string(kind)))
		return out, nil
	}
	if _, err := u.campaigns.GetCampaign(ctx, campaignID); err != nil {
		return out, err
	}
	var err error
	out.Dispatched, err = u.gate.Notify(ctx, recipient, campaignID, kind, payload)
	return out, err
}
