package bootstrap

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/config"
	"github.com/ykatyhoney/sunflower-land/internal/event"
)

type publisherSettings struct {
	maxRetries     int
	retryDelay     time.Duration
	deadLetterPath string
}

// publisherSettingsFrom fills unset retry settings with the defaults
func publisherSettingsFrom(cfg *config.Config) publisherSettings {
	return publisherSettings{
		maxRetries:     cmp.Or(cfg.EventMaxRetries, EventDefaultMaxRetries),
		retryDelay:     cmp.Or(cfg.EventRetryDelay, EventDefaultRetryDelay),
		deadLetterPath: cmp.Or(cfg.EventDeadLetterPath, EventDefaultDeadLetterPath),
	}
}

// InitializeEventSystem builds the in-memory bus that carries farm
// lifecycle events and the retrying publisher the session service writes
// through. Subscribers register on the bus; publishers use the wrapper.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	settings := publisherSettingsFrom(cfg)

	if err := os.MkdirAll(filepath.Dir(settings.deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, settings.maxRetries, settings.retryDelay, settings.deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", settings.maxRetries,
		"retry_delay", settings.retryDelay,
		"deadletter_path", settings.deadLetterPath)

	return bus, publisher, nil
}
