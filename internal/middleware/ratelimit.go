package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// RateLimiter implements a sliding-window rate limiter keyed by client IP
type RateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
	limit    int           // Maximum requests per window
	window   time.Duration // Time window
	clock    clockwork.Clock
}

// NewRateLimiter creates a new rate limiter. Call Cleanup periodically (or
// run StartCleanup) to drop idle clients.
func NewRateLimiter(limit int, window time.Duration, clock clockwork.Clock) *RateLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		clock:    clock,
	}
}

// StartCleanup drops expired entries every window until stop is closed
func (rl *RateLimiter) StartCleanup(stop <-chan struct{}) {
	ticker := rl.clock.NewTicker(rl.window)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				rl.Cleanup()
			case <-stop:
				return
			}
		}
	}()
}

// Cleanup removes entries older than the window
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	for ip, times := range rl.requests {
		valid := rl.prune(times, now)
		if len(valid) == 0 {
			delete(rl.requests, ip)
		} else {
			rl.requests[ip] = valid
		}
	}
}

// Allow checks if a request from the given IP is allowed
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	valid := rl.prune(rl.requests[ip], now)

	if len(valid) >= rl.limit {
		rl.requests[ip] = valid
		return false
	}

	rl.requests[ip] = append(valid, now)
	return true
}

// Tracked returns the number of clients currently tracked
func (rl *RateLimiter) Tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.requests)
}

func (rl *RateLimiter) prune(times []time.Time, now time.Time) []time.Time {
	var valid []time.Time
	for _, t := range times {
		if now.Sub(t) < rl.window {
			valid = append(valid, t)
		}
	}
	return valid
}

// RateLimit middleware limits requests per IP
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
