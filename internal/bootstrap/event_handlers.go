package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/ykatyhoney/sunflower-land/internal/event"
	"github.com/ykatyhoney/sunflower-land/internal/eventlog"
	"github.com/ykatyhoney/sunflower-land/internal/metrics"
	"github.com/ykatyhoney/sunflower-land/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	StreamHub       *sse.Hub // optional
}

// RegisterEventHandlers subscribes the metrics collector, the event logger
// and, when present, the live stream hub to the farm lifecycle events.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	if deps.StreamHub != nil {
		sse.NewSubscriber(deps.StreamHub).Subscribe(deps.EventBus)
	}

	return nil
}
