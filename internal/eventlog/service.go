package eventlog

import (
	"context"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/event"
	"github.com/ykatyhoney/sunflower-land/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger on the farm lifecycle events
	Subscribe(bus event.Bus) error

	// History returns the logged events of one farm, newest first
	History(ctx context.Context, farmID string, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Subscribe registers event handlers for all logged event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range LoggedEventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent flattens the typed payload to a map and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		log.Debug(LogMsgDecodePayloadFailed, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	var farmID *string
	if id, ok := payload[PayloadKeyFarmID].(string); ok && id != "" {
		farmID = &id
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), farmID, payload, evt.Metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldFarmID, farmID)
	return nil
}

func (s *service) History(ctx context.Context, farmID string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.GetEventsByFarm(ctx, farmID, limit)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := s.now().AddDate(0, 0, -retentionDays)
	return s.repo.CleanupOldEvents(ctx, cutoff)
}
