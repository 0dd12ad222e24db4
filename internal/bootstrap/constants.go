package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the number of files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files kept by cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting farm service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStorageReady         = "Storage ready"
	LogMsgStorageCloseFailed   = "Storage close failed"
	ErrMsgUnknownStorageDriver = "unknown storage driver"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrate        = "failed to run migrations"
	ErrMsgFailedCreateDataDir  = "failed to create data directory"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "data/deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Event Handlers and Background Jobs
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgBackgroundJobsStarted      = "Background jobs started"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"

	ServiceNameSession = "session"

	// LogMsgServiceShutdownFailed is appended to the service name
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
