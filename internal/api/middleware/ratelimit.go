package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter applies a fixed-window request budget per client IP.
// This is general abuse protection for the whole API surface, not a
// per-endpoint throttle.
type RateLimiter struct {
	requests int
	window   time.Duration

	mu      sync.Mutex
	counts  map[string]int
	started time.Time
}

func NewRateLimiter(requests int, windowSeconds int) *RateLimiter {
	if requests <= 0 {
		requests = 100
	}
	if windowSeconds <= 0 {
		windowSeconds = 60
	}

	return &RateLimiter{
		requests: requests,
		window:   time.Duration(windowSeconds) * time.Second,
		counts:   make(map[string]int),
		started:  time.Now(),
	}
}

// Allow reports whether a request from ip fits in the current window,
// plus the remaining budget and when the window resets.
func (rl *RateLimiter) Allow(ip string) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.started) >= rl.window {
		rl.counts = make(map[string]int)
		rl.started = now
	}
	reset := rl.started.Add(rl.window)

	if rl.counts[ip] >= rl.requests {
		return false, 0, reset
	}

	rl.counts[ip]++
	return true, rl.requests - rl.counts[ip], reset
}

// RateLimit returns a middleware that applies rate limiting
func RateLimit(requests int, windowSeconds int) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(requests, windowSeconds)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			allowed, remaining, reset := limiter.Allow(ip)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.requests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

			if !allowed {
				w.Header().Set("Retry-After", strconv.FormatInt(int64(time.Until(reset).Seconds())+1, 10))
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the originating client address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip := r.RemoteAddr
	for i := len(ip) - 1; i >= 0; i-- {
		if ip[i] == ':' {
			return ip[:i]
		}
	}
	return ip
}
