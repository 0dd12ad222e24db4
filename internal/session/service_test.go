package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/event"
	"github.com/ykatyhoney/sunflower-land/internal/farm"
	"github.com/ykatyhoney/sunflower-land/internal/reconcile"
)

var testEpoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// recorder collects every lifecycle event the service publishes
type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recorder) ofType(t event.Type) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, evt := range r.events {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

type fixture struct {
	svc   Service
	repo  *fakeRepository
	clock *stepClock
	rec   *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newFakeRepository()
	clock := &stepClock{now: testEpoch}
	rec := &recorder{}

	bus := event.NewMemoryBus()
	bus.Subscribe(event.FarmEventApplied, rec.handle)
	bus.Subscribe(event.FarmEventRejected, rec.handle)
	bus.Subscribe(event.FarmSettled, rec.handle)

	processor := farm.NewDefaultProcessor()
	validator := reconcile.NewValidator(processor, reconcile.DefaultCaps(), decimal.NewFromInt(255))
	svc := NewService(repo, processor, validator, bus, Options{
		Cache: CacheConfig{Size: 16, TTL: time.Minute},
		Clock: clock,
	})

	return &fixture{svc: svc, repo: repo, clock: clock, rec: rec}
}

// drain waits for the asynchronous publishes to finish
func (f *fixture) drain(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.svc.Shutdown(ctx))
}

func plantSunflower(index int) []byte {
	return []byte(fmt.Sprintf(`{"type":"seed.planted","expansionIndex":0,"index":%d,"seed":"Sunflower Seed"}`, index))
}

func TestCreateFarm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateFarm(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(1), created.Version)
	assert.Equal(t, testEpoch, created.CreatedAt)
	require.NotNil(t, created.State.Bumpkin)
	assert.True(t, created.OnChain.Inventory.Amount("Sunflower Seed").Equal(decimal.NewFromInt(5)))

	stored := f.repo.stored(created.ID)
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, int64(1), stored.Version)
}

func TestGetFarm_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetFarm(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrFarmNotFound)
}

func TestApply_PlantAndHarvest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateFarm(ctx)
	require.NoError(t, err)

	res, err := f.svc.Apply(ctx, created.ID, plantSunflower(0))
	require.NoError(t, err)
	assert.Equal(t, domain.EventTypeSeedPlanted, res.EventType)
	assert.Equal(t, int64(2), res.Farm.Version)
	assert.True(t, res.Farm.State.Inventory.Amount("Sunflower Seed").Equal(decimal.NewFromInt(4)))

	crop := res.Farm.State.Expansions[0].Plots[0].Crop
	require.NotNil(t, crop)
	assert.Equal(t, "Sunflower", crop.Name)
	assert.Equal(t, testEpoch.UnixMilli(), crop.PlantedAt)

	f.clock.Advance(time.Minute)
	res, err = f.svc.Apply(ctx, created.ID, []byte(`{"type":"crop.harvested","expansionIndex":0,"index":0}`))
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Farm.Version)
	assert.True(t, res.Farm.State.Inventory.Amount("Sunflower").Equal(decimal.NewFromInt(1)))
	assert.Nil(t, res.Farm.State.Expansions[0].Plots[0].Crop)

	stored := f.repo.stored(created.ID)
	assert.Equal(t, int64(3), stored.Version)
	assert.Equal(t, testEpoch.Add(time.Minute), stored.UpdatedAt)

	f.drain(t)
	applied := f.rec.ofType(event.FarmEventApplied)
	require.Len(t, applied, 2)

	versions := map[int64]string{}
	for _, evt := range applied {
		payload, ok := evt.Payload.(event.FarmEventAppliedPayloadV1)
		require.True(t, ok)
		assert.Equal(t, created.ID, payload.FarmID)
		versions[payload.Version] = payload.EventType
	}
	assert.Equal(t, map[int64]string{
		2: domain.EventTypeSeedPlanted,
		3: domain.EventTypeCropHarvested,
	}, versions)
}

func TestApply_RuleViolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateFarm(ctx)
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, created.ID, plantSunflower(0))
	require.NoError(t, err)

	f.clock.Advance(30 * time.Second)
	_, err = f.svc.Apply(ctx, created.ID, []byte(`{"type":"crop.harvested","expansionIndex":0,"index":0}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotReady)
	assert.Equal(t, "Not ready", err.Error())

	assert.Equal(t, int64(2), f.repo.stored(created.ID).Version)

	f.drain(t)
	rejected := f.rec.ofType(event.FarmEventRejected)
	require.Len(t, rejected, 1)
	payload, ok := rejected[0].Payload.(event.FarmEventRejectedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "Not ready", payload.Reason)
	assert.Equal(t, domain.EventTypeCropHarvested, payload.EventType)
	assert.Empty(t, payload.Item)
}

func TestApply_DecodeErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateFarm(ctx)
	require.NoError(t, err)

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "unknown type", raw: `{"type":"chicken.fed"}`, wantErr: domain.ErrUnknownEventType},
		{name: "not json", raw: `{"type":`, wantErr: domain.ErrInvalidInput},
		{name: "bad field", raw: `{"type":"seed.planted","seed":7}`, wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Apply(ctx, created.ID, []byte(tt.raw))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	f.drain(t)
	assert.Empty(t, f.rec.ofType(event.FarmEventRejected))
	assert.Equal(t, int64(1), f.repo.stored(created.ID).Version)
}

func TestApply_ProgressRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	state := domain.NewStarterState("bumpkin-1", testEpoch)
	state.Inventory["Sunflower"] = decimal.NewFromInt(20000)
	require.NoError(t, f.repo.CreateFarm(ctx, domain.Farm{
		ID:      "farm-1",
		State:   state,
		OnChain: domain.OnChainSnapshot{Balance: decimal.Zero, Inventory: state.Inventory.Clone()},
		Version: 1,
	}))

	_, err := f.svc.Apply(ctx, "farm-1", []byte(`{"type":"item.sold","item":"Sunflower","amount":"20000"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProgressRejected)

	var perr *ProgressError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, domain.CurrencyName, perr.Verdict.Item)
	assert.True(t, perr.Verdict.Delta.Equal(decimal.NewFromInt(400)))
	assert.True(t, perr.Verdict.Limit.Equal(decimal.NewFromInt(255)))

	assert.Equal(t, int64(1), f.repo.stored("farm-1").Version)

	f.drain(t)
	rejected := f.rec.ofType(event.FarmEventRejected)
	require.Len(t, rejected, 1)
	payload := rejected[0].Payload.(event.FarmEventRejectedPayloadV1)
	assert.Equal(t, domain.CurrencyName, payload.Item)
	assert.Equal(t, domain.ErrMsgProgressRejected, payload.Reason)
}

func TestApply_VersionConflictInvalidatesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateFarm(ctx)
	require.NoError(t, err)

	f.repo.saveErr = domain.ErrVersionConflict
	_, err = f.svc.Apply(ctx, created.ID, plantSunflower(0))
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	f.repo.saveErr = nil
	before := f.repo.gets()
	_, err = f.svc.GetFarm(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, before+1, f.repo.gets(), "conflict should force a reload from storage")
}

func TestApply_ConcurrentWritersAreSerialized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateFarm(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			_, err := f.svc.Apply(ctx, created.ID, plantSunflower(index))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	stored := f.repo.stored(created.ID)
	assert.Equal(t, int64(4), stored.Version)
	assert.True(t, stored.State.Inventory.Amount("Sunflower Seed").Equal(decimal.NewFromInt(2)))
	for i := 0; i < 3; i++ {
		assert.NotNil(t, stored.State.Expansions[0].Plots[i].Crop, "plot %d", i)
	}
}

func TestSettle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateFarm(ctx)
	require.NoError(t, err)

	t.Run("negative balance", func(t *testing.T) {
		_, err := f.svc.Settle(ctx, created.ID, domain.OnChainSnapshot{Balance: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("negative item", func(t *testing.T) {
		_, err := f.svc.Settle(ctx, created.ID, domain.OnChainSnapshot{
			Balance:   decimal.Zero,
			Inventory: domain.Inventory{"Wood": decimal.NewFromInt(-2)},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown farm", func(t *testing.T) {
		_, err := f.svc.Settle(ctx, "missing", domain.OnChainSnapshot{Balance: decimal.Zero})
		assert.ErrorIs(t, err, domain.ErrFarmNotFound)
	})

	t.Run("records snapshot", func(t *testing.T) {
		snapshot := domain.OnChainSnapshot{
			Balance:   decimal.NewFromInt(10),
			Inventory: domain.Inventory{"Wood": decimal.NewFromInt(3)},
		}
		settled, err := f.svc.Settle(ctx, created.ID, snapshot)
		require.NoError(t, err)
		assert.True(t, settled.OnChain.Balance.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, int64(1), settled.Version)

		stored := f.repo.stored(created.ID)
		assert.True(t, stored.OnChain.Inventory.Amount("Wood").Equal(decimal.NewFromInt(3)))

		cached, err := f.svc.GetFarm(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, cached.OnChain.Balance.Equal(decimal.NewFromInt(10)))
	})

	f.drain(t)
	assert.Len(t, f.rec.ofType(event.FarmSettled), 1)
}

func TestGetCacheStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateFarm(ctx)
	require.NoError(t, err)

	_, err = f.svc.GetFarm(ctx, created.ID)
	require.NoError(t, err)
	_, err = f.svc.GetFarm(ctx, "missing")
	require.Error(t, err)

	stats := f.svc.GetCacheStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestShutdown_TimesOut(t *testing.T) {
	repo := newFakeRepository()
	processor := farm.NewDefaultProcessor()
	validator := reconcile.NewValidator(processor, reconcile.DefaultCaps(), decimal.NewFromInt(255))

	block := make(chan struct{})
	bus := event.NewMemoryBus()
	bus.Subscribe(event.FarmSettled, func(ctx context.Context, evt event.Event) error {
		<-block
		return nil
	})
	defer close(block)

	svc := NewService(repo, processor, validator, bus, Options{})
	created, err := svc.CreateFarm(context.Background())
	require.NoError(t, err)
	_, err = svc.Settle(context.Background(), created.ID, domain.OnChainSnapshot{Balance: decimal.Zero})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = svc.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
