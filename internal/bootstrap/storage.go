package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ykatyhoney/sunflower-land/internal/config"
	"github.com/ykatyhoney/sunflower-land/internal/database"
	"github.com/ykatyhoney/sunflower-land/internal/database/postgres"
	"github.com/ykatyhoney/sunflower-land/internal/database/sqlite"
	"github.com/ykatyhoney/sunflower-land/internal/eventlog"
	"github.com/ykatyhoney/sunflower-land/internal/repository"
)

// Storage holds the repositories of the configured backend
type Storage struct {
	Farms    repository.Farm
	EventLog eventlog.Repository
	Pinger   repository.Pinger

	close func() error
}

// Close releases the underlying connections
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStorage connects to the backend named by STORAGE_DRIVER and runs its
// migrations.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		return openPostgres(ctx, cfg)
	case config.StorageDriverSQLite:
		return openSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("%s %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Storage, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolSettings{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgStorageReady, "driver", config.StorageDriverPostgres, "host", cfg.DBHost, "database", cfg.DBName)
	return &Storage{
		Farms:    postgres.NewFarmRepository(pool),
		EventLog: postgres.NewEventLogRepository(pool),
		Pinger:   pool,
		close: func() error {
			pool.Close()
			return nil
		},
	}, nil
}

func openSQLite(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
		}
	}

	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	slog.Info(LogMsgStorageReady, "driver", config.StorageDriverSQLite, "path", cfg.SQLitePath)
	return &Storage{
		Farms:    sqlite.NewFarmRepository(db),
		EventLog: sqlite.NewEventLogRepository(db),
		Pinger:   db,
		close:    db.Close,
	}, nil
}
