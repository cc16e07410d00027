// Package ratelimiter throttles admin login attempts per client.
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter is what the login handler depends on.
type Limiter interface {
	Allow(key string) (bool, time.Duration)
	Reset(key string)
}

type window struct {
	count int
	start time.Time
}

// FixedWindowRateLimiter allows limit attempts per key in each window. The
// window opens with the first attempt for that key.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]*window // key: client IP
	limit   int
	window  time.Duration
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

func NewFixedWindowLimiter(limit int, w time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		window:  w,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *FixedWindowRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.Lock()
			now := rl.now()
			for key, w := range rl.clients {
				if now.Sub(w.start) >= rl.window {
					delete(rl.clients, key)
				}
			}
			rl.Unlock()
		case <-rl.stop:
			return
		}
	}
}

// Allow records an attempt for key. When the key is over its limit it
// returns false and the time left until the window resets.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	if rl.limit <= 0 {
		return true, 0
	}
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, ok := rl.clients[key]
	if !ok || now.Sub(w.start) >= rl.window {
		rl.clients[key] = &window{count: 1, start: now}
		return true, 0
	}
	if w.count < rl.limit {
		w.count++
		return true, 0
	}
	return false, rl.window - now.Sub(w.start)
}

// Reset forgets key, used after a successful login.
func (rl *FixedWindowRateLimiter) Reset(key string) {
	rl.Lock()
	delete(rl.clients, key)
	rl.Unlock()
}

// Close stops the cleanup goroutine.
func (rl *FixedWindowRateLimiter) Close() {
	rl.once.Do(func() { close(rl.stop) })
}
