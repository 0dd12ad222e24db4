package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/logger"
)

type retryItem struct {
	event   Event
	attempt int
	lastErr error
	due     time.Time
}

// ResilientPublisher wraps a Bus with background retries. Events that still
// fail after maxRetries attempts are written to a dead-letter file.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	done     chan struct{}
	wg       sync.WaitGroup
	shutdown sync.Once
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		done:       make(chan struct{}),
	}

	p.wg.Add(1)
	go p.worker()

	return p, nil
}

// Publish satisfies Bus. Failures are retried in the background, so the
// caller never sees a delivery error.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry makes one synchronous attempt and queues the event for
// retry if it fails
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryItem{event: event, attempt: 1, lastErr: err, due: time.Now().Add(CalculateRetryDelay(p.baseDelay, 1))})
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case p.queue <- item:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", item.event.Type)
		p.writeDeadLetter(item)
	}
}

func (p *ResilientPublisher) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			return
		case item := <-p.queue:
			if !p.waitUntil(item.due) {
				p.writeDeadLetter(item)
				return
			}
			p.retry(item)
		}
	}
}

// waitUntil blocks until due or shutdown. It reports false on shutdown.
func (p *ResilientPublisher) waitUntil(due time.Time) bool {
	timer := time.NewTimer(time.Until(due))
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-p.done:
		return false
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	err := p.inner.Publish(context.Background(), item.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
		return
	}

	item.lastErr = err
	if item.attempt >= p.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempt)
		p.writeDeadLetter(item)
		return
	}

	logger.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)
	item.attempt++
	item.due = time.Now().Add(CalculateRetryDelay(p.baseDelay, item.attempt))
	p.enqueue(item)
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	if err := p.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", item.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker and dead-letters whatever is still
// queued. It is safe to call more than once.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	var err error
	p.shutdown.Do(func() {
		close(p.done)

		stopped := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-ctx.Done():
			logger.Warn(LogMsgShutdownTimeout)
			err = ctx.Err()
			return
		}

		drained := 0
		for {
			select {
			case item := <-p.queue:
				p.writeDeadLetter(item)
				drained++
				continue
			default:
			}
			break
		}
		if drained > 0 {
			logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
		}

		err = errors.Join(err, p.deadLetter.Close())
	})
	return err
}
