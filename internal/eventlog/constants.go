package eventlog

import (
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/event"
)

// LoggedEventTypes are the bus events persisted to the event log
var LoggedEventTypes = []event.Type{
	event.FarmEventApplied,
	event.FarmEventRejected,
	event.FarmSettled,
}

// JSON payload field keys
const (
	PayloadKeyFarmID = "farm_id"
)

// DefaultHistoryLimit bounds farm history queries without an explicit limit
const DefaultHistoryLimit = 100

// MaxHistoryLimit is the largest page a history query may request
const MaxHistoryLimit = 1000

// Log messages - service events
const (
	LogMsgDecodePayloadFailed = "Event payload could not be decoded, skipping log"
	LogMsgFailedToLogEvent    = "Failed to log event"
	LogMsgEventLogged         = "Event logged"
)

// Cleanup job settings
const (
	CleanupJobName = "eventlog.cleanup"
	CleanupTimeout = 2 * time.Minute
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobDisabled  = "Event log retention disabled, skipping cleanup"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldFarmID        = "farm_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)
