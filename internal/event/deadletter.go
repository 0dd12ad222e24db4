package event

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/logger"
)

// DeadLetterSchemaVersion versions the JSON-lines entry layout
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one lifecycle event that exhausted its publish retries
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	FarmID        string    `json:"farm_id,omitempty"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends entries to a JSON-lines file so operators can
// re-drive lost lifecycle events into the event log
type DeadLetterWriter struct {
	mu  sync.Mutex
	f   *os.File
	enc *json.Encoder
	now func() time.Time
}

// NewDeadLetterWriter opens (or creates) the dead-letter file for appending
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{f: f, enc: json.NewEncoder(f), now: time.Now}, nil
}

func (w *DeadLetterWriter) Write(evt Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Event:         evt,
		Attempts:      attempts,
	}
	if id, ok := evt.GetMetadataValue(MetadataKeyFarmID).(string); ok {
		entry.FarmID = id
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	entry.Timestamp = w.now()
	logger.Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type,
		"farm_id", entry.FarmID,
		"attempts", attempts,
		"error", entry.LastError)

	// Encode terminates each entry with a newline
	return w.enc.Encode(entry)
}

func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Close()
}
