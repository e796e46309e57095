package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// bucket wraps the limiter for one client action
type bucket struct {
	limiter  *rate.Limiter
	lastUsed time.Time
	mutex    sync.Mutex
}

// Policy sizes the bucket created for an action. A zero RefillTime means
// unlimited.
type Policy struct {
	MaxTokens  int
	RefillTime time.Duration
}

// PerMinute allows n requests per minute, refilled one at a time.
func PerMinute(n int) Policy {
	if n <= 0 {
		n = 1
	}
	return Policy{MaxTokens: n, RefillTime: time.Minute / time.Duration(n)}
}

// RateLimiter manages rate limiting for different clients and actions
type RateLimiter struct {
	buckets  map[string]*bucket
	policies map[string]Policy
	fallback Policy
	now      func() time.Time
	mutex    sync.RWMutex
}

func NewRateLimiter(policies map[string]Policy, fallback Policy) *RateLimiter {
	return &RateLimiter{
		buckets:  make(map[string]*bucket),
		policies: policies,
		fallback: fallback,
		now:      time.Now,
	}
}

func newBucket(p Policy, now time.Time) *bucket {
	burst := p.MaxTokens
	if burst <= 0 {
		burst = 1
	}
	return &bucket{
		limiter:  rate.NewLimiter(rate.Every(p.RefillTime), burst),
		lastUsed: now,
	}
}

// allow consumes a token if one is available, otherwise reports the wait.
func (b *bucket) allow(now time.Time) (bool, time.Duration) {
	b.mutex.Lock()
	b.lastUsed = now
	b.mutex.Unlock()

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, 0
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Allow checks if a client action is allowed
func (rl *RateLimiter) Allow(clientID, action string) (bool, time.Duration) {
	key := clientID + ":" + action
	now := rl.now()

	rl.mutex.RLock()
	b, exists := rl.buckets[key]
	rl.mutex.RUnlock()

	if !exists {
		rl.mutex.Lock()
		if b, exists = rl.buckets[key]; !exists {
			policy, ok := rl.policies[action]
			if !ok {
				policy = rl.fallback
			}
			b = newBucket(policy, now)
			rl.buckets[key] = b
		}
		rl.mutex.Unlock()
	}

	return b.allow(now)
}

// Cleanup removes buckets that have not been used for idle.
func (rl *RateLimiter) Cleanup(idle time.Duration) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		b.mutex.Lock()
		stale := now.Sub(b.lastUsed) > idle
		b.mutex.Unlock()
		if stale {
			delete(rl.buckets, key)
		}
	}
}

// StartCleanupRoutine prunes idle buckets until ctx is done.
func (rl *RateLimiter) StartCleanupRoutine(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup(time.Hour)
			}
		}
	}()
}
