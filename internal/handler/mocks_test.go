package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/event"
	"github.com/ykatyhoney/sunflower-land/internal/eventlog"
	"github.com/ykatyhoney/sunflower-land/internal/session"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateFarm(ctx context.Context) (*domain.Farm, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockSessionService) GetFarm(ctx context.Context, id string) (*domain.Farm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockSessionService) Apply(ctx context.Context, id string, raw []byte) (*session.Result, error) {
	args := m.Called(ctx, id, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Result), args.Error(1)
}

func (m *MockSessionService) Settle(ctx context.Context, id string, snapshot domain.OnChainSnapshot) (*domain.Farm, error) {
	args := m.Called(ctx, id, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockSessionService) GetCacheStats() session.CacheStats {
	args := m.Called()
	return args.Get(0).(session.CacheStats)
}

func (m *MockSessionService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockEventLogService struct {
	mock.Mock
}

func (m *MockEventLogService) Subscribe(bus event.Bus) error {
	args := m.Called(bus)
	return args.Error(0)
}

func (m *MockEventLogService) History(ctx context.Context, farmID string, limit int) ([]eventlog.Event, error) {
	args := m.Called(ctx, farmID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventlog.Event), args.Error(1)
}

func (m *MockEventLogService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
