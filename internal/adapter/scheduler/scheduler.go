package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"crowdfund-lifecycle/internal/config/configs"
	"crowdfund-lifecycle/internal/core/port"
)

// Scheduler runs the expiration sweep and the payment verification
// reminders on their cron specs. A job that is still running when its next
// tick fires is skipped.
type Scheduler struct {
	cron    *cron.Cron
	svc     port.LifecycleUseCase
	logger  *slog.Logger
	timeout time.Duration
	base    context.Context
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

// New registers the jobs described by cfg. Invalid specs or timezones are
// reported here rather than at the first tick.
func New(svc port.LifecycleUseCase, logger *slog.Logger, cfg configs.Scheduler) (*Scheduler, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("scheduler timezone: %w", err)
	}
	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		svc:     svc,
		logger:  logger,
		timeout: cfg.JobTimeout,
		base:    context.Background(),
	}
	if _, err = s.cron.AddFunc(cfg.SweepSpec, s.RunSweep); err != nil {
		return nil, fmt.Errorf("sweep spec %q: %w", cfg.SweepSpec, err)
	}
	if _, err = s.cron.AddFunc(cfg.ReminderSpec, s.RunReminders); err != nil {
		return nil, fmt.Errorf("reminder spec %q: %w", cfg.ReminderSpec, err)
	}
	return s, nil
}

// Start begins firing jobs. Jobs derive their context from ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.base = ctx
	s.cron.Start()
	s.logger.Info("scheduler started", slog.Int("jobs", len(s.cron.Entries())))
}

// Stop prevents new runs and waits for running jobs, or for ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) jobContext() (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(s.base, s.timeout)
	}
	return context.WithCancel(s.base)
}

// RunSweep runs one expiration sweep.
func (s *Scheduler) RunSweep() {
	ctx, cancel := s.jobContext()
	defer cancel()

	results, err := s.svc.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("scheduled sweep aborted", slog.Int("evaluated", len(results)), slog.Any("error", err))
		return
	}
	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	s.logger.Info("scheduled sweep done", slog.Int("evaluated", len(results)), slog.Int("failed", failed))
}

// RunReminders sends one round of payment verification reminders.
func (s *Scheduler) RunReminders() {
	ctx, cancel := s.jobContext()
	defer cancel()

	results, err := s.svc.RemindPendingVerification(ctx)
	if err != nil {
		s.logger.Error("scheduled reminders aborted", slog.Any("error", err))
		return
	}
	var sent int
	for _, res := range results {
		if res.Notify.Dispatched {
			sent++
		}
	}
	s.logger.Info("scheduled reminders done", slog.Int("campaigns", len(results)), slog.Int("sent", sent))
}
