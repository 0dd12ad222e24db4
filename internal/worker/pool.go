package worker

import (
	"context"
	"sync"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	log := logger.FromContext(p.ctx).With(LogFieldWorkerID, id)

	for {
		select {
		case job := <-p.jobQueue:
			start := time.Now()
			if err := job.Process(p.ctx); err != nil {
				log.Error(LogMsgWorkerJobFailed, LogFieldJob, job.Name(), LogFieldError, err)
				continue
			}
			log.Debug(LogMsgWorkerJobDone, LogFieldJob, job.Name(), LogFieldDuration, time.Since(start))
		case <-p.ctx.Done():
			return
		}
	}
}

// Enqueue adds a job to the queue without blocking. It reports false when
// the queue is full or the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.Warn(LogMsgQueueFull, LogFieldJob, job.Name())
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit. Queued jobs
// that have not started are dropped.
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
}
