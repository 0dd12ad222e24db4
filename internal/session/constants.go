package session

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cached farm layout.
// Increment it when domain.Farm changes shape so old entries are dropped.
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cached farms
const DefaultCacheSize = 1024

// DefaultCacheTTL is the default time-to-live for cached farms
const DefaultCacheTTL = 10 * time.Minute

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgFarmCreated       = "Farm created"
	LogMsgEventApplied      = "Farm event applied"
	LogMsgEventRejected     = "Farm event rejected"
	LogMsgProgressRejected  = "Farm event exceeds session limits"
	LogMsgVersionConflict   = "Farm was saved concurrently, cache invalidated"
	LogMsgFarmSettled       = "On-chain snapshot recorded"
	LogMsgPublishFailed     = "Failed to publish farm event"
	LogMsgShuttingDown      = "Session service shutting down, waiting for background tasks..."
	LogMsgEncodeEventFailed = "Failed to encode applied event"
)

// ============================================================================
// Log Fields
// ============================================================================

const (
	LogFieldFarmID    = "farm_id"
	LogFieldEventType = "event_type"
	LogFieldVersion   = "version"
	LogFieldReason    = "reason"
	LogFieldItem      = "item"
	LogFieldError     = "error"
)
