package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	start time.Time
	count int
}

// FixedWindowRateLimiter counts requests per key (client IP) inside windows
// that start at the key's first request.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]*bucket
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*bucket),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow records a request for key. When the key is over its limit it returns
// false and the time left until its window resets.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, ok := rl.clients[key]
	if !ok || now.Sub(w.start) >= rl.window {
		rl.clients[key] = &bucket{start: now, count: 1}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	return false, rl.window - now.Sub(w.start)
}

// Cleanup drops expired windows every TimeFrame until done is closed.
func (rl *FixedWindowRateLimiter) Cleanup(done <-chan struct{}) {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			rl.Lock()
			now := rl.now()
			for key, w := range rl.clients {
				if now.Sub(w.start) >= rl.window {
					delete(rl.clients, key)
				}
			}
			rl.Unlock()
		}
	}
}
