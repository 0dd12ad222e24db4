package repository

import (
	"context"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

// Farm defines the interface for farm persistence. Implementations return
// domain.ErrFarmNotFound for unknown ids and domain.ErrVersionConflict when
// a save races with another writer.
type Farm interface {
	CreateFarm(ctx context.Context, farm domain.Farm) error
	GetFarm(ctx context.Context, id string) (*domain.Farm, error)

	// SaveFarm stores farm.State, farm.Version and farm.UpdatedAt only if
	// the stored version still equals expectedVersion.
	SaveFarm(ctx context.Context, farm domain.Farm, expectedVersion int64) error

	// UpdateOnChain replaces the trusted on-chain snapshot of a farm.
	UpdateOnChain(ctx context.Context, id string, snapshot domain.OnChainSnapshot) error
}

// Pinger reports whether a storage backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}
