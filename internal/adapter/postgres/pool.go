// Package postgres implements the lexicon lookup contract on PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tariquesani/aruuz-nigar/internal/config"
)

// pingTimeout bounds the fail-fast connectivity check at startup; the
// engine falls back to heuristics-only scansion if the lexicon store is
// unreachable, so a hung dial must not stall boot.
const pingTimeout = 5 * time.Second

// NewPool creates a PostgreSQL connection pool for the lexicon tables.
// Pool sizing comes from DatabaseConfig; the lexicon is read-only at
// serve time, so the pool mostly absorbs lookup fan-out from concurrent
// scan requests.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
