package eventlog

import (
	"context"
	"time"
)

// Event represents a logged bus event
type Event struct {
	ID        int64                  `json:"id" db:"id"`
	EventType string                 `json:"event_type" db:"event_type"`
	FarmID    *string                `json:"farm_id,omitempty" db:"farm_id"`
	Payload   map[string]interface{} `json:"payload" db:"-"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" db:"-"`
	CreatedAt time.Time              `json:"created_at" db:"created_at"`
}

// EventFilter filters events for queries
type EventFilter struct {
	FarmID    *string
	EventType *string
	Since     *time.Time
	Until     *time.Time
	Limit     int
}

// Repository defines the interface for event logging storage
type Repository interface {
	// LogEvent stores an event
	LogEvent(ctx context.Context, eventType string, farmID *string, payload, metadata map[string]interface{}) error

	// GetEvents retrieves events matching filter, newest first
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// GetEventsByFarm retrieves the most recent events of one farm
	GetEventsByFarm(ctx context.Context, farmID string, limit int) ([]Event, error)

	// CleanupOldEvents removes events created before cutoff
	CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error)
}
