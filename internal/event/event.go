package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Farm lifecycle event types
const (
	FarmEventApplied  Type = domain.EventTypeFarmEventApplied
	FarmEventRejected Type = domain.EventTypeFarmEventRejected
	FarmSettled       Type = domain.EventTypeFarmSettled
)

// FarmEventAppliedPayloadV1 is published once a farm event has been
// processed, reconciled and persisted
type FarmEventAppliedPayloadV1 struct {
	FarmID    string          `json:"farm_id"`
	EventType string          `json:"event_type"`
	Version   int64           `json:"version"`
	Event     json.RawMessage `json:"event"`
	AppliedAt time.Time       `json:"applied_at"`
}

// FarmEventRejectedPayloadV1 is published when a handler or the
// reconciliation check turns an event down
type FarmEventRejectedPayloadV1 struct {
	FarmID    string    `json:"farm_id"`
	EventType string    `json:"event_type"`
	Reason    string    `json:"reason"`
	Item      string    `json:"item,omitempty"`
	At        time.Time `json:"at"`
}

// FarmSettledPayloadV1 is published when a new on-chain snapshot is recorded
type FarmSettledPayloadV1 struct {
	FarmID  string    `json:"farm_id"`
	Balance string    `json:"balance"`
	Items   int       `json:"items"`
	At      time.Time `json:"at"`
}

// NewFarmEventAppliedEvent creates a farm.event.applied event
func NewFarmEventAppliedEvent(farmID, eventType string, version int64, raw json.RawMessage, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FarmEventApplied,
		Payload: FarmEventAppliedPayloadV1{
			FarmID:    farmID,
			EventType: eventType,
			Version:   version,
			Event:     raw,
			AppliedAt: at,
		},
		Metadata: Metadata{MetadataKeyFarmID: farmID},
	}
}

// NewFarmEventRejectedEvent creates a farm.event.rejected event
func NewFarmEventRejectedEvent(farmID, eventType, reason, item string, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FarmEventRejected,
		Payload: FarmEventRejectedPayloadV1{
			FarmID:    farmID,
			EventType: eventType,
			Reason:    reason,
			Item:      item,
			At:        at,
		},
		Metadata: Metadata{MetadataKeyFarmID: farmID},
	}
}

// NewFarmSettledEvent creates a farm.settled event
func NewFarmSettledEvent(farmID string, snapshot domain.OnChainSnapshot, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FarmSettled,
		Payload: FarmSettledPayloadV1{
			FarmID:  farmID,
			Balance: snapshot.Balance.String(),
			Items:   len(snapshot.Inventory),
			At:      at,
		},
		Metadata: Metadata{MetadataKeyFarmID: farmID},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; every handler runs even if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
