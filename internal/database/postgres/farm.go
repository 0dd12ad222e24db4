package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/repository"
)

type farmRepository struct {
	db *pgxpool.Pool
}

// NewFarmRepository creates a new PostgreSQL farm repository
func NewFarmRepository(db *pgxpool.Pool) repository.Farm {
	return &farmRepository{db: db}
}

// CreateFarm inserts a new farm row
func (r *farmRepository) CreateFarm(ctx context.Context, farm domain.Farm) error {
	stateJSON, onChainJSON, err := marshalFarm(farm)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO farms (id, state, on_chain, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, farm.ID, stateJSON, onChainJSON, farm.Version, farm.CreatedAt, farm.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateFarm, err)
	}
	return nil
}

// GetFarm loads a farm by id
func (r *farmRepository) GetFarm(ctx context.Context, id string) (*domain.Farm, error) {
	var (
		farm                   domain.Farm
		stateJSON, onChainJSON []byte
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, state, on_chain, version, created_at, updated_at
		FROM farms
		WHERE id = $1
	`, id).Scan(&farm.ID, &stateJSON, &onChainJSON, &farm.Version, &farm.CreatedAt, &farm.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFarmNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFarm, err)
	}

	if err := json.Unmarshal(stateJSON, &farm.State); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeState, err)
	}
	if err := json.Unmarshal(onChainJSON, &farm.OnChain); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeState, err)
	}
	return &farm, nil
}

// SaveFarm writes the new state under an optimistic version check. The row
// is locked first so a missing farm and a stale version can be told apart.
func (r *farmRepository) SaveFarm(ctx context.Context, farm domain.Farm, expectedVersion int64) error {
	stateJSON, err := json.Marshal(farm.State)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeState, err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	var current int64
	err = tx.QueryRow(ctx, `SELECT version FROM farms WHERE id = $1 FOR UPDATE`, farm.ID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrFarmNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveFarm, err)
	}
	if current != expectedVersion {
		return domain.ErrVersionConflict
	}

	if _, err := tx.Exec(ctx, `
		UPDATE farms SET state = $2, version = $3, updated_at = $4
		WHERE id = $1
	`, farm.ID, stateJSON, farm.Version, farm.UpdatedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveFarm, err)
	}

	return tx.Commit(ctx)
}

// UpdateOnChain replaces the trusted snapshot of a farm
func (r *farmRepository) UpdateOnChain(ctx context.Context, id string, snapshot domain.OnChainSnapshot) error {
	onChainJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeState, err)
	}

	tag, err := r.db.Exec(ctx, `UPDATE farms SET on_chain = $2 WHERE id = $1`, id, onChainJSON)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveFarm, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFarmNotFound
	}
	return nil
}

func marshalFarm(farm domain.Farm) (state, onChain []byte, err error) {
	state, err = json.Marshal(farm.State)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeState, err)
	}
	onChain, err = json.Marshal(farm.OnChain)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeState, err)
	}
	return state, onChain, nil
}
