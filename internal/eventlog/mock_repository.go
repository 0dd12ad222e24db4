package eventlog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LogEvent(ctx context.Context, eventType string, farmID *string, payload, metadata map[string]interface{}) error {
	args := m.Called(ctx, eventType, farmID, payload, metadata)
	return args.Error(0)
}

func (m *MockRepository) GetEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]Event), args.Error(1)
}

func (m *MockRepository) GetEventsByFarm(ctx context.Context, farmID string, limit int) ([]Event, error) {
	args := m.Called(ctx, farmID, limit)
	return args.Get(0).([]Event), args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
