// Package session runs farm events against stored state: it serializes
// writers per farm, samples the clock, reconciles the outcome against the
// last on-chain snapshot and persists accepted states.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ykatyhoney/sunflower-land/internal/concurrency"
	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/event"
	"github.com/ykatyhoney/sunflower-land/internal/farm"
	"github.com/ykatyhoney/sunflower-land/internal/logger"
	"github.com/ykatyhoney/sunflower-land/internal/metrics"
	"github.com/ykatyhoney/sunflower-land/internal/reconcile"
	"github.com/ykatyhoney/sunflower-land/internal/repository"
)

// Service defines the farm session operations
type Service interface {
	CreateFarm(ctx context.Context) (*domain.Farm, error)
	GetFarm(ctx context.Context, id string) (*domain.Farm, error)

	// Apply decodes one wire event and applies it to the farm at the
	// current time. Handler rule violations are returned unchanged so
	// callers can show their reason; reconciliation failures come back
	// as *ProgressError.
	Apply(ctx context.Context, id string, raw []byte) (*Result, error)

	// Settle records a new trusted on-chain snapshot for the farm
	Settle(ctx context.Context, id string, snapshot domain.OnChainSnapshot) (*domain.Farm, error)

	GetCacheStats() CacheStats
	Shutdown(ctx context.Context) error
}

// Result is the outcome of an accepted event
type Result struct {
	EventType string      `json:"eventType"`
	Farm      domain.Farm `json:"farm"`
}

// Options carries the optional collaborators of the service
type Options struct {
	Cache CacheConfig
	Clock Clock
}

type service struct {
	repo      repository.Farm
	processor *farm.Processor
	validator *reconcile.Validator
	bus       event.Bus
	locks     *concurrency.LockManager
	cache     *farmCache
	clock     Clock
	wg        sync.WaitGroup
}

// NewService creates a session service. bus may be nil, in which case no
// lifecycle events are published.
func NewService(repo repository.Farm, processor *farm.Processor, validator *reconcile.Validator, bus event.Bus, opts Options) Service {
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}
	return &service{
		repo:      repo,
		processor: processor,
		validator: validator,
		bus:       bus,
		locks:     concurrency.NewLockManager(),
		cache:     newFarmCache(opts.Cache),
		clock:     clock,
	}
}

func (s *service) CreateFarm(ctx context.Context) (*domain.Farm, error) {
	now := s.clock.Now()
	state := domain.NewStarterState(uuid.NewString(), now)

	f := domain.Farm{
		ID:    uuid.NewString(),
		State: state,
		OnChain: domain.OnChainSnapshot{
			Balance:   state.Balance,
			Inventory: state.Inventory.Clone(),
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateFarm(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to create farm: %w", err)
	}
	s.cache.Set(f)
	metrics.FarmsCreated.Inc()

	logger.FromContext(ctx).Info(LogMsgFarmCreated, LogFieldFarmID, f.ID)
	return &f, nil
}

func (s *service) GetFarm(ctx context.Context, id string) (*domain.Farm, error) {
	f, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *service) Apply(ctx context.Context, id string, raw []byte) (*Result, error) {
	ev, err := farm.Decode(raw)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to lock farm %s: %w", id, err)
	}
	defer unlock()

	start := time.Now()
	defer func() {
		metrics.EventProcessingDuration.WithLabelValues(ev.Type()).Observe(time.Since(start).Seconds())
	}()

	log := logger.FromContext(ctx).With(LogFieldFarmID, id, LogFieldEventType, ev.Type())

	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	at := s.clock.Now()
	next, err := s.processor.Process(current.State, ev, at)
	if err != nil {
		if domain.IsRuleViolation(err) {
			log.Info(LogMsgEventRejected, LogFieldReason, err.Error())
			s.publish(ctx, event.NewFarmEventRejectedEvent(id, ev.Type(), err.Error(), "", at))
		}
		return nil, err
	}

	if verdict := s.validator.Inspect(next, current.OnChain); !verdict.Valid {
		perr := &ProgressError{Verdict: verdict}
		log.Warn(LogMsgProgressRejected, LogFieldItem, verdict.Item, LogFieldReason, perr.Error())
		s.publish(ctx, event.NewFarmEventRejectedEvent(id, ev.Type(), domain.ErrMsgProgressRejected, verdict.Item, at))
		return nil, perr
	}

	updated := current
	updated.State = next
	updated.Version = current.Version + 1
	updated.UpdatedAt = at

	if err := s.repo.SaveFarm(ctx, updated, current.Version); err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			s.cache.Invalidate(id)
			log.Warn(LogMsgVersionConflict, LogFieldVersion, current.Version)
		}
		return nil, fmt.Errorf("failed to save farm %s: %w", id, err)
	}
	s.cache.Set(updated)

	wire, err := farm.Encode(ev)
	if err != nil {
		log.Warn(LogMsgEncodeEventFailed, LogFieldError, err)
	} else {
		s.publish(ctx, event.NewFarmEventAppliedEvent(id, ev.Type(), updated.Version, wire, at))
	}

	log.Debug(LogMsgEventApplied, LogFieldVersion, updated.Version)
	return &Result{EventType: ev.Type(), Farm: updated}, nil
}

func (s *service) Settle(ctx context.Context, id string, snapshot domain.OnChainSnapshot) (*domain.Farm, error) {
	if snapshot.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: negative balance", domain.ErrInvalidInput)
	}
	for _, item := range snapshot.Inventory.Names() {
		if snapshot.Inventory[item].IsNegative() {
			return nil, fmt.Errorf("%w: negative amount of %s", domain.ErrInvalidInput, item)
		}
	}
	if snapshot.Inventory == nil {
		snapshot.Inventory = domain.Inventory{}
	}

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to lock farm %s: %w", id, err)
	}
	defer unlock()

	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateOnChain(ctx, id, snapshot); err != nil {
		return nil, fmt.Errorf("failed to settle farm %s: %w", id, err)
	}

	current.OnChain = snapshot
	s.cache.Set(current)

	at := s.clock.Now()
	s.publish(ctx, event.NewFarmSettledEvent(id, snapshot, at))

	logger.FromContext(ctx).Info(LogMsgFarmSettled, LogFieldFarmID, id)
	return &current, nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.GetStats()
}

func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// load reads through the cache
func (s *service) load(ctx context.Context, id string) (domain.Farm, error) {
	if f, ok := s.cache.Get(id); ok {
		return f, nil
	}

	f, err := s.repo.GetFarm(ctx, id)
	if err != nil {
		return domain.Farm{}, fmt.Errorf("failed to load farm %s: %w", id, err)
	}
	s.cache.Set(*f)
	return *f, nil
}

// publish hands evt to the bus off the request path. Subscribers write to
// storage, so the request context's cancellation must not reach them.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		asyncCtx := context.WithoutCancel(ctx)
		if err := s.bus.Publish(asyncCtx, evt); err != nil {
			logger.FromContext(asyncCtx).Warn(LogMsgPublishFailed, "type", evt.Type, LogFieldError, err)
		}
	}()
}
