package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ykatyhoney/sunflower-land/internal/database"
)

// Migrate brings the schema behind pool up to date. goose needs a
// database/sql handle, so one is borrowed from the pool; closing it leaves
// the pool open.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return database.Migrate(ctx, db, goose.DialectPostgres, database.PostgresMigrations)
}
