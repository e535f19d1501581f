package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"crowdfund-lifecycle/internal/core/domain"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// onlineCampaign builds a campaign launched daysAgo days before testNow with
// a 30 day window.
func onlineCampaign(id int64, goal int64, daysAgo int) domain.Campaign {
	onlineAt := testNow.AddDate(0, 0, -daysAgo)
	return domain.Campaign{
		ID:         id,
		OwnerID:    100 + id,
		Name:       fmt.Sprintf("campaign %d", id),
		Permalink:  fmt.Sprintf("campaign-%d", id),
		Goal:       decimal.NewFromInt(goal),
		OnlineDays: 30,
		OnlineAt:   &onlineAt,
		State:      domain.StateOnline,
	}
}

// fakeCampaigns honours the compare-and-set contract of the Postgres
// repository.
type fakeCampaigns struct {
	mu   sync.Mutex
	byID map[int64]domain.Campaign
}

func newFakeCampaigns(cs ...domain.Campaign) *fakeCampaigns {
	f := &fakeCampaigns{byID: make(map[int64]domain.Campaign)}
	for _, c := range cs {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCampaigns) state(id int64) domain.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id].State
}

func (f *fakeCampaigns) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrCampaignNotFound, id)
	}
	return &c, nil
}

func (f *fakeCampaigns) FindByPermalink(_ context.Context, permalink string) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byID {
		if c.State != domain.StateDeleted && strings.EqualFold(c.Permalink, permalink) {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: permalink %q", domain.ErrCampaignNotFound, permalink)
}

func (f *fakeCampaigns) list(keep func(domain.Campaign) bool) []domain.Campaign {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Campaign
	for _, c := range f.byID {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeCampaigns) ListToFinish(_ context.Context, now time.Time) ([]domain.Campaign, error) {
	return f.list(func(c domain.Campaign) bool {
		return c.State.Evaluable() && c.IsExpired(now)
	}), nil
}

func (f *fakeCampaigns) ListExpiring(_ context.Context, now time.Time, within time.Duration) ([]domain.Campaign, error) {
	return f.list(func(c domain.Campaign) bool {
		return c.State == domain.StateOnline && !c.IsExpired(now) && c.IsExpired(now.Add(within))
	}), nil
}

func (f *fakeCampaigns) CompareAndSetState(_ context.Context, id int64, from, to domain.State, onlineAt *time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok || c.State != from {
		return false, nil
	}
	c.State = to
	if onlineAt != nil {
		at := *onlineAt
		c.OnlineAt = &at
	}
	f.byID[id] = c
	return true, nil
}

type fakeLedger struct {
	mu            sync.Mutex
	contributions map[int64][]domain.Contribution
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{contributions: make(map[int64][]domain.Contribution)}
}

func (f *fakeLedger) add(campaignID int64, value, fee int64, state domain.ContributionState) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := int64(len(f.contributions[campaignID]) + 1)
	f.contributions[campaignID] = append(f.contributions[campaignID], domain.Contribution{
		ID:                id,
		CampaignID:        campaignID,
		Value:             decimal.NewFromInt(value),
		PaymentServiceFee: decimal.NewFromInt(fee),
		State:             state,
	})
	return id
}

func (f *fakeLedger) setState(campaignID, contributionID int64, state domain.ContributionState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.contributions[campaignID] {
		if f.contributions[campaignID][i].ID == contributionID {
			f.contributions[campaignID][i].State = state
		}
	}
}

func (f *fakeLedger) Totals(_ context.Context, campaignID int64) (domain.LedgerTotals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := domain.NewLedgerTotals(campaignID)
	for _, c := range f.contributions[campaignID] {
		t.Add(c.State, c.Value, 1, c.PaymentServiceFee)
	}
	return t, nil
}

func (f *fakeLedger) SumByState(ctx context.Context, campaignID int64, states []domain.ContributionState) (decimal.Decimal, error) {
	t, _ := f.Totals(ctx, campaignID)
	return t.SumByState(states...), nil
}

func (f *fakeLedger) HasAnyInState(ctx context.Context, campaignID int64, state domain.ContributionState) (bool, error) {
	t, _ := f.Totals(ctx, campaignID)
	return t.HasAnyInState(state), nil
}

type fakeTotals struct {
	mu     sync.Mutex
	byID   map[int64]domain.CampaignTotals
	putErr error
}

func newFakeTotals() *fakeTotals {
	return &fakeTotals{byID: make(map[int64]domain.CampaignTotals)}
}

func (f *fakeTotals) Get(_ context.Context, campaignID int64) (*domain.CampaignTotals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byID[campaignID]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTotals) Put(_ context.Context, totals domain.CampaignTotals) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.byID[totals.CampaignID] = totals
	return nil
}

// fakeNotifications enforces uniqueness on (recipient, subject, kind) the
// way the unique index does.
type fakeNotifications struct {
	mu      sync.Mutex
	records map[domain.NotificationKey]domain.NotificationRecord
}

func newFakeNotifications() *fakeNotifications {
	return &fakeNotifications{records: make(map[domain.NotificationKey]domain.NotificationRecord)}
}

func (f *fakeNotifications) Claim(_ context.Context, rec domain.NotificationRecord) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[rec.Key()]; ok {
		return false, nil
	}
	f.records[rec.Key()] = rec
	return true, nil
}

func (f *fakeNotifications) Exists(_ context.Context, key domain.NotificationKey) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.records[key]
	return ok, nil
}

type sentMessage struct {
	RecipientID int64
	Kind        domain.Kind
	Payload     json.RawMessage
}

type recordingDispatcher struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

var errDispatcherDown = errors.New("dispatcher down")

func (d *recordingDispatcher) Send(_ context.Context, recipientID int64, kind domain.Kind, payload json.RawMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, sentMessage{RecipientID: recipientID, Kind: kind, Payload: payload})
	return nil
}

func (d *recordingDispatcher) messages() []sentMessage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]sentMessage(nil), d.sent...)
}

func (d *recordingDispatcher) fail(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
}

type testEnv struct {
	campaigns     *fakeCampaigns
	ledger        *fakeLedger
	totals        *fakeTotals
	notifications *fakeNotifications
	dispatcher    *recordingDispatcher
	aggregator    *PledgeAggregator
	gate          *NotificationGate
	svc           *LifecycleUseCase
}

func newTestEnv(opts LifecycleOptions, cs ...domain.Campaign) *testEnv {
	env := &testEnv{
		campaigns:     newFakeCampaigns(cs...),
		ledger:        newFakeLedger(),
		totals:        newFakeTotals(),
		notifications: newFakeNotifications(),
		dispatcher:    &recordingDispatcher{},
	}
	if opts.Clock == nil {
		opts.Clock = fixedClock(testNow)
	}
	logger := discardLogger()
	env.aggregator = NewPledgeAggregator(env.ledger, env.totals, logger, opts.Clock)
	env.gate = NewNotificationGate(env.notifications, env.dispatcher, logger, opts.Clock)
	env.svc = NewLifecycleUseCase(env.campaigns, env.aggregator, env.gate, logger, opts)
	return env
}
