package sse

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/event"
)

func TestSubscriber_BridgesLifecycleEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub).Subscribe(bus)

	c := hub.Register("farm-1", nil)
	ctx := context.Background()

	raw := json.RawMessage(`{"type":"seed.planted"}`)
	require.NoError(t, bus.Publish(ctx, event.NewFarmEventAppliedEvent("farm-1", "seed.planted", 2, raw, t0)))

	got := receive(t, c)
	assert.Equal(t, string(event.FarmEventApplied), got.Type)
	applied, ok := got.Payload.(AppliedPayload)
	require.True(t, ok)
	assert.Equal(t, int64(2), applied.Version)
	assert.JSONEq(t, string(raw), string(applied.Event))

	require.NoError(t, bus.Publish(ctx, event.NewFarmEventRejectedEvent("farm-1", "crop.harvested", domain.ErrMsgNotReady, "", t0)))
	got = receive(t, c)
	rejected, ok := got.Payload.(RejectedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.ErrMsgNotReady, rejected.Reason)

	snapshot := domain.OnChainSnapshot{
		Balance:   decimal.NewFromInt(7),
		Inventory: domain.Inventory{"Sunflower": decimal.NewFromInt(1)},
	}
	require.NoError(t, bus.Publish(ctx, event.NewFarmSettledEvent("farm-1", snapshot, t0)))
	got = receive(t, c)
	assert.Equal(t, SettledPayload{Balance: "7", Items: 1}, got.Payload)
}

func TestSubscriber_JSONPayload(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub).Subscribe(bus)
	c := hub.Register("farm-2", nil)

	// payloads from serialized sources arrive as generic maps
	payload := map[string]interface{}{"farm_id": "farm-2", "balance": "1", "items": float64(0)}
	require.NoError(t, bus.Publish(context.Background(), event.Event{Type: event.FarmSettled, Payload: payload}))

	assert.Equal(t, SettledPayload{Balance: "1"}, receive(t, c).Payload)
}

func TestSubscriber_UndecodablePayload(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub).Subscribe(bus)
	c := hub.Register("farm-3", nil)

	assert.NoError(t, bus.Publish(context.Background(), event.Event{Type: event.FarmSettled, Payload: make(chan int)}))
	assertNothing(t, c)
}
