package http

import (
	"context"
	"math"
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket. Each client may burst up to
// capacity requests; tokens come back gradually, a full bucket per window.
type RateLimiter struct {
	mu       sync.Mutex
	capacity float64
	window   time.Duration
	clients  map[string]*clientBucket
	now      func() time.Time
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		capacity: float64(capacity),
		window:   window,
		clients:  make(map[string]*clientBucket),
		now:      time.Now,
	}
}

// Run evicts idle clients until ctx is done.
func (r *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-ctx.Done():
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for client, bucket := range r.clients {
		if now.Sub(bucket.lastSeen) > bucketCleanupThreshold {
			delete(r.clients, client)
		}
	}
}

func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[client]
	if !exists {
		bucket = &clientBucket{tokens: r.capacity, lastSeen: now}
		r.clients[client] = bucket
	} else if elapsed := now.Sub(bucket.lastSeen); elapsed > 0 {
		refill := r.capacity * float64(elapsed) / float64(r.window)
		bucket.tokens = math.Min(r.capacity, bucket.tokens+refill)
		bucket.lastSeen = now
	}

	if bucket.tokens < 1 {
		return false
	}
	bucket.tokens--
	return true
}
