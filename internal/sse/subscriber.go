package sse

import (
	"context"
	"log/slog"

	"github.com/ykatyhoney/sunflower-land/internal/event"
	"github.com/ykatyhoney/sunflower-land/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Subscribe registers handlers for the farm lifecycle events
func (s *Subscriber) Subscribe(bus event.Bus) {
	bus.Subscribe(event.FarmEventApplied, s.handleApplied)
	bus.Subscribe(event.FarmEventRejected, s.handleRejected)
	bus.Subscribe(event.FarmSettled, s.handleSettled)

	slog.Info(LogMsgSubscriberReady, "types", []string{
		string(event.FarmEventApplied),
		string(event.FarmEventRejected),
		string(event.FarmSettled),
	})
}

func (s *Subscriber) handleApplied(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.FarmEventAppliedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodePayloadFailed, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(p.FarmID, string(evt.Type), AppliedPayload{
		EventType: p.EventType,
		Version:   p.Version,
		Event:     p.Event,
	}, p.AppliedAt)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "type", evt.Type, "farm_id", p.FarmID)
	return nil
}

func (s *Subscriber) handleRejected(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.FarmEventRejectedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodePayloadFailed, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(p.FarmID, string(evt.Type), RejectedPayload{
		EventType: p.EventType,
		Reason:    p.Reason,
		Item:      p.Item,
	}, p.At)
	return nil
}

func (s *Subscriber) handleSettled(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.FarmSettledPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodePayloadFailed, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(p.FarmID, string(evt.Type), SettledPayload{Balance: p.Balance, Items: p.Items}, p.At)
	return nil
}
