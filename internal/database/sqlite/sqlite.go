// Package sqlite stores farms and the event log in an embedded SQLite
// database. It backs local development and tests.
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/ykatyhoney/sunflower-land/internal/database"
)

// dsnOptions enables WAL and waits on a locked database instead of failing
const dsnOptions = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

// DB wraps a SQLite connection
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the database at path and applies migrations.
func Open(ctx context.Context, path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.Migrate(ctx, conn.DB, goose.DialectSQLite3, database.SQLiteMigrations); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	// A single connection keeps read-then-write transactions from hitting
	// SQLITE_BUSY on lock upgrade.
	conn.SetMaxOpenConns(1)

	return &DB{conn: conn}, nil
}

// Ping checks the connection
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
