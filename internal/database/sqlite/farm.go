package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/repository"
)

type farmRow struct {
	ID        string `db:"id"`
	State     string `db:"state"`
	OnChain   string `db:"on_chain"`
	Version   int64  `db:"version"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

type farmRepository struct {
	db *DB
}

// NewFarmRepository creates a SQLite farm repository
func NewFarmRepository(db *DB) repository.Farm {
	return &farmRepository{db: db}
}

func (r *farmRepository) CreateFarm(ctx context.Context, farm domain.Farm) error {
	state, err := json.Marshal(farm.State)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	onChain, err := json.Marshal(farm.OnChain)
	if err != nil {
		return fmt.Errorf("encode on-chain snapshot: %w", err)
	}

	_, err = r.db.conn.ExecContext(ctx, `
		INSERT INTO farms (id, state, on_chain, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		farm.ID, string(state), string(onChain), farm.Version,
		farm.CreatedAt.UnixMilli(), farm.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert farm: %w", err)
	}
	return nil
}

func (r *farmRepository) GetFarm(ctx context.Context, id string) (*domain.Farm, error) {
	var row farmRow
	err := r.db.conn.GetContext(ctx, &row, `
		SELECT id, state, on_chain, version, created_at, updated_at
		FROM farms WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFarmNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select farm: %w", err)
	}

	farm := domain.Farm{
		ID:        row.ID,
		Version:   row.Version,
		CreatedAt: time.UnixMilli(row.CreatedAt).UTC(),
		UpdatedAt: time.UnixMilli(row.UpdatedAt).UTC(),
	}
	if err := json.Unmarshal([]byte(row.State), &farm.State); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if err := json.Unmarshal([]byte(row.OnChain), &farm.OnChain); err != nil {
		return nil, fmt.Errorf("decode on-chain snapshot: %w", err)
	}
	return &farm, nil
}

func (r *farmRepository) SaveFarm(ctx context.Context, farm domain.Farm, expectedVersion int64) error {
	state, err := json.Marshal(farm.State)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tx, err := r.db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var current int64
	err = tx.GetContext(ctx, &current, `SELECT version FROM farms WHERE id = ?`, farm.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrFarmNotFound
	}
	if err != nil {
		return fmt.Errorf("select version: %w", err)
	}
	if current != expectedVersion {
		return domain.ErrVersionConflict
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE farms SET state = ?, version = ?, updated_at = ? WHERE id = ?`,
		string(state), farm.Version, farm.UpdatedAt.UnixMilli(), farm.ID); err != nil {
		return fmt.Errorf("update farm: %w", err)
	}
	return tx.Commit()
}

func (r *farmRepository) UpdateOnChain(ctx context.Context, id string, snapshot domain.OnChainSnapshot) error {
	onChain, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode on-chain snapshot: %w", err)
	}

	res, err := r.db.conn.ExecContext(ctx, `UPDATE farms SET on_chain = ? WHERE id = ?`, string(onChain), id)
	if err != nil {
		return fmt.Errorf("update on-chain snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrFarmNotFound
	}
	return nil
}
