package eventlog

import (
	"context"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/logger"
	"github.com/ykatyhoney/sunflower-land/internal/metrics"
)

// CleanupJob prunes the event log down to the retention window. It runs on
// the worker pool; each run is bounded by CleanupTimeout.
type CleanupJob struct {
	service       Service
	retentionDays int
}

// NewCleanupJob creates a cleanup job keeping retentionDays of history.
// A non-positive retention keeps everything.
func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{service: service, retentionDays: retentionDays}
}

func (j *CleanupJob) Name() string {
	return CleanupJobName
}

func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx).With(LogFieldRetentionDays, j.retentionDays)
	if j.retentionDays <= 0 {
		log.Debug(LogMsgCleanupJobDisabled)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, CleanupTimeout)
	defer cancel()

	start := time.Now()
	pruned, err := j.service.CleanupOldEvents(ctx, j.retentionDays)
	if err != nil {
		log.Error(LogMsgCleanupJobFailed, LogFieldError, err, LogFieldDuration, time.Since(start))
		return err
	}

	metrics.EventLogRowsPruned.Add(float64(pruned))
	log.Info(LogMsgCleanupJobCompleted, LogFieldDeletedCount, pruned, LogFieldDuration, time.Since(start))
	return nil
}
