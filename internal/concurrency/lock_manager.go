package concurrency

import (
	"context"
	"sync"
)

// LockManager hands out one mutex per key. Entries are reference counted
// and dropped once no goroutine holds or waits on them, so a long-running
// process does not accumulate a mutex per farm ever touched.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until key is free or ctx is done. On success the returned
// function releases the key and must be called exactly once.
func (lm *LockManager) Lock(ctx context.Context, key string) (func(), error) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
	case <-ctx.Done():
		lm.release(key, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.ch
			lm.release(key, l)
		})
	}, nil
}

func (lm *LockManager) release(key string, l *keyLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}

// Len reports how many keys currently have holders or waiters
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
