package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-lifecycle/internal/config/configs"
)

const (
	applicationName = "crowdfund-lifecycle"
	pingTimeout     = 5 * time.Second
)

// NewPostgresPool opens a pool for cfg and pings it. One connection above
// the configured maximum is reserved for the ledger watcher, which holds
// its connection while it listens. The caller closes the pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, fmt.Errorf("parse postgres address: %w", err)
	}
	poolConf.MaxConns++
	if _, ok := poolConf.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolConf.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}
