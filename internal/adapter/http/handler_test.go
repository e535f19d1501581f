package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
	"crowdfund-lifecycle/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockLifecycleUseCase, http.Handler) {
	svc := mocks.NewMockLifecycleUseCase(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, h.Router()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestEvaluateEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Evaluate(mock.Anything, int64(5)).Return(port.TransitionResult{
		CampaignID:           5,
		OldState:             domain.StateOnline,
		NewState:             domain.StateSuccessful,
		NotificationsEmitted: 1,
	}, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/5/evaluate", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[transitionResponse](t, rec)
	assert.Equal(t, domain.StateSuccessful, got.NewState)
	assert.True(t, got.Changed)
	assert.Equal(t, 1, got.NotificationsEmitted)
	assert.Empty(t, got.Error)
}

func TestEvaluateEndpointErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", fmt.Errorf("%w: 5", domain.ErrCampaignNotFound), http.StatusNotFound},
		{"invalid transition", fmt.Errorf("%w: draft", domain.ErrInvalidTransition), http.StatusConflict},
		{"inconsistent ledger", domain.ErrInconsistentSnapshot, http.StatusInternalServerError},
		{"dispatch failed", fmt.Errorf("%w: smtp", domain.ErrDispatchFailure), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().Evaluate(mock.Anything, int64(5)).Return(port.TransitionResult{
				CampaignID: 5,
				OldState:   domain.StateOnline,
				NewState:   domain.StateFailed,
			}, tt.err)

			rec := do(t, h, http.MethodPost, "/api/v1/campaigns/5/evaluate", "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestEvaluateDispatchFailureReportsTransition(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Evaluate(mock.Anything, int64(5)).Return(port.TransitionResult{
		CampaignID: 5,
		OldState:   domain.StateOnline,
		NewState:   domain.StateFailed,
	}, fmt.Errorf("%w: timeout", domain.ErrDispatchFailure))

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/5/evaluate", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	got := decode[transitionResponse](t, rec)
	assert.Equal(t, domain.StateFailed, got.NewState)
	assert.Contains(t, got.Error, "timeout")
}

func TestInvalidCampaignID(t *testing.T) {
	_, h := newTestHandler(t)
	for _, path := range []string{"/api/v1/campaigns/abc/evaluate", "/api/v1/campaigns/0/evaluate"} {
		rec := do(t, h, http.MethodPost, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestSweepEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().SweepExpired(mock.Anything).Return([]port.TransitionResult{
		{CampaignID: 1, OldState: domain.StateOnline, NewState: domain.StateSuccessful, NotificationsEmitted: 1},
		{CampaignID: 2, OldState: domain.StateOnline, NewState: domain.StateOnline, Err: domain.ErrInconsistentSnapshot},
		{CampaignID: 3, OldState: domain.StateWaitingFunds, NewState: domain.StateWaitingFunds},
	}, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/sweep", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[sweepResponse](t, rec)
	assert.Equal(t, 3, got.Evaluated)
	assert.Equal(t, 1, got.Transitioned)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, domain.ErrInconsistentSnapshot.Error(), got.Results[1].Error)
}

func TestRemindersEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().RemindPendingVerification(mock.Anything).Return([]port.ReminderResult{{
		CampaignID: 4,
		Notify:     port.NotifyResult{RecipientID: 40, Kind: domain.KindVerifyPaymentAccount, Dispatched: true},
	}}, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/reminders/verify-payment", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]reminderResponse](t, rec)
	require.Len(t, got, 1)
	assert.True(t, got[0].Notify.Dispatched)
	assert.Equal(t, int64(40), got[0].Notify.RecipientID)
}

func TestSnapshotEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Snapshot(mock.Anything, int64(2)).Return(domain.PledgeSnapshot{
		CampaignID:              2,
		Confirmed:               decimal.NewFromInt(400),
		ConfirmedAndWaiting:     decimal.NewFromInt(1100),
		ContributionCount:       3,
		HasPendingConfirmations: true,
		TakenAt:                 time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/2/snapshot", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[map[string]any](t, rec)
	assert.Equal(t, "400", got["confirmed_total"])
	assert.Equal(t, "1100", got["confirmed_and_waiting_total"])
	assert.Equal(t, true, got["has_pending_confirmations"])
}

func TestTotalsEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Totals(mock.Anything, int64(2)).Return(domain.CampaignTotals{
		CampaignID:             2,
		Pledged:                decimal.NewFromInt(700),
		TotalContributions:     2,
		TotalPaymentServiceFee: decimal.RequireFromString("21.5"),
	}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/2/totals", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[map[string]any](t, rec)
	assert.Equal(t, "700", got["pledged"])
	assert.Equal(t, "21.5", got["total_payment_service_fee"])
	assert.Equal(t, float64(2), got["total_contributions"])
}

func TestFindByPermalinkEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)
	onlineAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().FindByPermalink(mock.Anything, "Solar-Bikes").Return(&domain.Campaign{
		ID:         9,
		Permalink:  "solar-bikes",
		Goal:       decimal.NewFromInt(5000),
		OnlineDays: 10,
		OnlineAt:   &onlineAt,
		State:      domain.StateOnline,
	}, nil)
	svc.EXPECT().FindByPermalink(mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: missing", domain.ErrCampaignNotFound))

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/by-permalink/Solar-Bikes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[campaignResponse](t, rec)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "5000", got.Goal)
	require.NotNil(t, got.ExpiresAt)
	assert.Equal(t, "2026-03-11T00:00:00Z", *got.ExpiresAt)

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns/by-permalink/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestModerateEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Moderate(mock.Anything, int64(3), domain.StateOnline).Return(port.TransitionResult{
		CampaignID: 3,
		OldState:   domain.StateInAnalysis,
		NewState:   domain.StateOnline,
	}, nil)
	svc.EXPECT().Moderate(mock.Anything, int64(4), domain.StateRejected).
		Return(port.TransitionResult{CampaignID: 4}, fmt.Errorf("%w: online", domain.ErrInvalidTransition))

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/3/state", `{"state":"online"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StateOnline, decode[transitionResponse](t, rec).NewState)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/4/state", `{"state":"rejected"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/4/state", `{"state":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/4/state", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotifyEndpoints(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		NotifyOwner(mock.Anything, int64(3), domain.Kind("reward_added"), json.RawMessage(`{"reward":1}`)).
		Return(port.NotifyResult{RecipientID: 30, Kind: "reward_added", Dispatched: true}, nil)
	svc.EXPECT().
		NotifyBackoffice(mock.Anything, int64(3), domain.Kind("project_received"), mock.Anything, int64(77)).
		Return(port.NotifyResult{RecipientID: 77, Kind: "project_received"}, fmt.Errorf("%w: down", domain.ErrDispatchFailure))

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/3/notifications/owner",
		`{"kind":"reward_added","payload":{"reward":1}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[notifyResponse](t, rec).Dispatched)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/3/notifications/backoffice",
		`{"kind":"project_received","fallback_recipient_id":77}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	got := decode[notifyResponse](t, rec)
	assert.Equal(t, int64(77), got.RecipientID)
	assert.Contains(t, got.Error, "down")

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/3/notifications/owner", `{"payload":{}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	_, h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
