package scheduler

import (
	"sync"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/logger"
	"github.com/ykatyhoney/sunflower-land/internal/worker"
)

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run every interval. The first run happens
// one interval from now. Non-positive intervals are ignored.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	if interval <= 0 {
		logger.Warn("Job not scheduled, interval must be positive", "job", job.Name(), "interval", interval)
		return
	}
	logger.Info("Job scheduled", "job", job.Name(), "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// a full queue drops this tick; the next one retries
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
