package bootstrap

import (
	"log/slog"

	"github.com/ykatyhoney/sunflower-land/internal/config"
	"github.com/ykatyhoney/sunflower-land/internal/eventlog"
	"github.com/ykatyhoney/sunflower-land/internal/scheduler"
	"github.com/ykatyhoney/sunflower-land/internal/worker"
)

// StartBackgroundJobs starts the worker pool and schedules the periodic
// event log cleanup on it.
func StartBackgroundJobs(cfg *config.Config, history eventlog.Service) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.EventLogCleanupInterval, eventlog.NewCleanupJob(history, cfg.EventLogRetentionDays))

	slog.Info(LogMsgBackgroundJobsStarted,
		"workers", cfg.WorkerCount,
		"cleanup_interval", cfg.EventLogCleanupInterval,
		"retention_days", cfg.EventLogRetentionDays)

	return pool, sched
}
