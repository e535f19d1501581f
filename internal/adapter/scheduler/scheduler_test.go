package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund-lifecycle/internal/config/configs"
	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
	"crowdfund-lifecycle/internal/core/port/mocks"
)

func testConfig() configs.Scheduler {
	return configs.Scheduler{
		Enabled:      true,
		SweepSpec:    "0 3 * * *",
		ReminderSpec: "0 10 * * *",
		Timezone:     "UTC",
		JobTimeout:   time.Minute,
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRegistersJobs(t *testing.T) {
	s, err := New(mocks.NewMockLifecycleUseCase(t), discard(), testConfig())
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 2)

	s.Start(context.Background())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.SweepSpec = "every day"
	_, err := New(mocks.NewMockLifecycleUseCase(t), discard(), cfg)
	assert.ErrorContains(t, err, "sweep spec")

	cfg = testConfig()
	cfg.Timezone = "Nowhere/Land"
	_, err = New(mocks.NewMockLifecycleUseCase(t), discard(), cfg)
	assert.Error(t, err)
}

func TestRunSweepCallsUseCase(t *testing.T) {
	svc := mocks.NewMockLifecycleUseCase(t)
	svc.EXPECT().SweepExpired(mock.Anything).
		Run(func(ctx context.Context) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "job context must carry the timeout")
		}).
		Return([]port.TransitionResult{
			{CampaignID: 1, OldState: domain.StateOnline, NewState: domain.StateSuccessful},
			{CampaignID: 2, OldState: domain.StateOnline, NewState: domain.StateOnline, Err: domain.ErrInconsistentSnapshot},
		}, nil)

	s, err := New(svc, discard(), testConfig())
	require.NoError(t, err)
	s.RunSweep()
}

func TestRunRemindersCallsUseCase(t *testing.T) {
	svc := mocks.NewMockLifecycleUseCase(t)
	svc.EXPECT().RemindPendingVerification(mock.Anything).Return(nil, errors.New("db down"))

	s, err := New(svc, discard(), testConfig())
	require.NoError(t, err)
	s.RunReminders()
}
