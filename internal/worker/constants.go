package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerJobDone   = "Worker job finished"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// ============================================================================
// Log Fields
// ============================================================================

const (
	LogFieldWorkerID = "worker_id"
	LogFieldJob      = "job"
	LogFieldError    = "error"
	LogFieldDuration = "duration"
)
