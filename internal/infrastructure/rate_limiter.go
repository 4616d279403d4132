package infrastructure

import (
	"context"
	"sync"
	"time"
)

// RateLimiter counts failed attempts per key inside a sliding window. A key is blocked
// once it reaches limit failures and unblocks as old failures age out of the window.
type RateLimiter struct {
	failures map[string][]time.Time
	window   time.Duration
	limit    int
	mutex    sync.Mutex
	now      func() time.Time
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	return &RateLimiter{
		failures: make(map[string][]time.Time),
		window:   window,
		limit:    limit,
		now:      time.Now,
	}
}

// Allow reports whether key may attempt again. A non-positive limit disables throttling.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	valid := rl.prune(key, rl.now())
	return len(valid) < rl.limit
}

func (rl *RateLimiter) RecordFailure(key string) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	rl.failures[key] = append(rl.prune(key, now), now)
}

func (rl *RateLimiter) Reset(key string) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	delete(rl.failures, key)
}

// prune drops failures older than the window. Caller holds the mutex.
func (rl *RateLimiter) prune(key string, now time.Time) []time.Time {
	windowStart := now.Add(-rl.window)

	var validRequests []time.Time
	for _, reqTime := range rl.failures[key] {
		if reqTime.After(windowStart) {
			validRequests = append(validRequests, reqTime)
		}
	}

	if len(validRequests) == 0 {
		delete(rl.failures, key)
	} else {
		rl.failures[key] = validRequests
	}
	return validRequests
}

// Run removes stale keys every interval until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.cleanupStaleEntries()
		}
	}
}

func (rl *RateLimiter) cleanupStaleEntries() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	for key := range rl.failures {
		rl.prune(key, now)
	}
}
