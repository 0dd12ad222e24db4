package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSettings sizes the Postgres connection pool. Zero values keep the
// pgxpool defaults.
type PoolSettings struct {
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

func (s PoolSettings) apply(cfg *pgxpool.Config) {
	if s.MaxConns > 0 {
		cfg.MaxConns = int32(min(s.MaxConns, math.MaxInt32))
	}
	cfg.MinConns = min(DefaultMinConnections, cfg.MaxConns)
	if s.MaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = s.MaxConnIdleTime
	}
	if s.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = s.MaxConnLifetime
	}
}

// NewPool opens a pgx pool for the farm store and verifies it with a ping
func NewPool(ctx context.Context, dsn string, settings PoolSettings) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}
	settings.apply(cfg)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database,
		"max_conns", cfg.MaxConns)
	return pool, nil
}
