package session

import (
	"context"
	"sync"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

// fakeRepository is a stateful in-memory repository.Farm
type fakeRepository struct {
	mu       sync.Mutex
	farms    map[string]domain.Farm
	getCalls int
	saveErr  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{farms: make(map[string]domain.Farm)}
}

func (f *fakeRepository) CreateFarm(ctx context.Context, farm domain.Farm) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.farms[farm.ID] = farm
	return nil
}

func (f *fakeRepository) GetFarm(ctx context.Context, id string) (*domain.Farm, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	farm, ok := f.farms[id]
	if !ok {
		return nil, domain.ErrFarmNotFound
	}
	return &farm, nil
}

func (f *fakeRepository) SaveFarm(ctx context.Context, farm domain.Farm, expectedVersion int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	stored, ok := f.farms[farm.ID]
	if !ok {
		return domain.ErrFarmNotFound
	}
	if stored.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	stored.State = farm.State
	stored.Version = farm.Version
	stored.UpdatedAt = farm.UpdatedAt
	f.farms[farm.ID] = stored
	return nil
}

func (f *fakeRepository) UpdateOnChain(ctx context.Context, id string, snapshot domain.OnChainSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.farms[id]
	if !ok {
		return domain.ErrFarmNotFound
	}
	stored.OnChain = snapshot
	f.farms[id] = stored
	return nil
}

func (f *fakeRepository) stored(id string) domain.Farm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.farms[id]
}

func (f *fakeRepository) gets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls
}
