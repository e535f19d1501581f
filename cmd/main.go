package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"crowdfund-lifecycle/internal/adapter/dispatch"
	"crowdfund-lifecycle/internal/adapter/http"
	"crowdfund-lifecycle/internal/adapter/postgres"
	"crowdfund-lifecycle/internal/adapter/scheduler"
	"crowdfund-lifecycle/internal/adapter/usecase"
	"crowdfund-lifecycle/internal/config"
	"crowdfund-lifecycle/internal/core/port"
	"crowdfund-lifecycle/internal/db"
)

// main is the entry point of the campaign lifecycle service. It loads
// configuration, optionally runs database migrations and the demo seed,
// wires the adapters and use cases, then runs the HTTP server, the ledger
// watcher and the scheduler until a termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout, cfg.Env)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded")
	}

	var dispatcher port.Dispatcher
	switch cfg.Notify.Driver {
	case "telegram":
		bot, err := dispatch.NewTelegramBot(cfg.Notify.TelegramToken)
		if err != nil {
			logger.Error("telegram bot error", slog.Any("error", err))
			return
		}
		dispatcher = dispatch.NewTelegramDispatcher(bot, cfg.Notify.TelegramChatID)
	default:
		dispatcher = dispatch.NewLogDispatcher(logger.With(slog.String("component", "dispatcher")))
	}

	campaigns := postgres.NewCampaignRepository(pool)
	ledger := postgres.NewLedger(pool)
	aggregator := usecase.NewPledgeAggregator(ledger, postgres.NewTotalsStore(pool), logger, nil)
	gate := usecase.NewNotificationGate(postgres.NewNotificationStore(pool), dispatcher, logger, nil)
	svc := usecase.NewLifecycleUseCase(campaigns, aggregator, gate, logger, usecase.LifecycleOptions{
		Workers:          cfg.Sweep.Workers,
		ReminderWindow:   cfg.Sweep.ReminderWindow,
		BackofficeUserID: cfg.Notify.BackofficeUserID,
		PaymentsEmail:    cfg.Notify.PaymentsEmail,
	})

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(svc, logger.With(slog.String("component", "scheduler")), cfg.Scheduler)
		if err != nil {
			logger.Error("scheduler error", slog.Any("error", err))
			return
		}
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              cfg.HTTP.ListenAddr(),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	watcher := postgres.NewLedgerWatcher(pool, ledger, aggregator, logger.With(slog.String("component", "ledger_watcher")))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if sched != nil {
		sched.Start(gctx)
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer shutdownCancel()
		if sched != nil {
			if err := sched.Stop(shutdownCtx); err != nil {
				logger.Error("scheduler shutdown error", slog.Any("error", err))
			}
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		return
	}
	exitCode = 0
}
