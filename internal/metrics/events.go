package metrics

import (
	"context"

	"github.com/ykatyhoney/sunflower-land/internal/event"
	"github.com/ykatyhoney/sunflower-land/internal/logger"
)

// EventMetricsCollector subscribes to farm lifecycle events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to the farm lifecycle events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range []event.Type{
		event.FarmEventApplied,
		event.FarmEventRejected,
		event.FarmSettled,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent updates counters for one bus event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.FarmEventApplied:
		payload, err := event.DecodePayload[event.FarmEventAppliedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgDecodePayloadFailed, "type", evt.Type, "error", err)
			return nil
		}
		FarmEventsApplied.WithLabelValues(payload.EventType).Inc()

	case event.FarmEventRejected:
		payload, err := event.DecodePayload[event.FarmEventRejectedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgDecodePayloadFailed, "type", evt.Type, "error", err)
			return nil
		}
		kind := KindRule
		if payload.Item != "" {
			kind = KindReconciliation
			ReconciliationViolations.WithLabelValues(payload.Item).Inc()
		}
		FarmEventsRejected.WithLabelValues(payload.EventType, kind).Inc()

	case event.FarmSettled:
		FarmsSettled.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
