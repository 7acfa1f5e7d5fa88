package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/HammerMeetNail/eventplanner/internal/logging"
)

// WindowCounter increments a counter that resets every window.
// *database.RedisDB implements it.
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter allows limit requests per key per fixed window.
type RateLimiter struct {
	counter    WindowCounter
	limit      int64
	window     time.Duration
	prefix     string
	keyFunc    func(r *http.Request) string
	failClosed bool
}

// NewRateLimiter builds a limiter. keyFunc defaults to the client IP. When
// failClosed is set, counter errors reject requests instead of letting them
// through. A nil counter disables limiting entirely.
func NewRateLimiter(counter WindowCounter, limit int64, window time.Duration, prefix string, keyFunc func(r *http.Request) string, failClosed bool) *RateLimiter {
	if keyFunc == nil {
		keyFunc = GetClientIP
	}
	return &RateLimiter{
		counter:    counter,
		limit:      limit,
		window:     window,
		prefix:     prefix,
		keyFunc:    keyFunc,
		failClosed: failClosed,
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.counter == nil || rl.limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		now := time.Now()
		windowStart := now.Truncate(rl.window)
		resetAt := windowStart.Add(rl.window)
		key := fmt.Sprintf("%s%s:%d", rl.prefix, rl.keyFunc(r), windowStart.Unix())

		count, err := rl.counter.IncrWindow(r.Context(), key, rl.window)
		if err != nil {
			logging.FromContext(r.Context()).Warn("Rate limiter unavailable", map[string]interface{}{
				"error":       err.Error(),
				"fail_closed": rl.failClosed,
			})
			if rl.failClosed {
				writeError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		remaining := rl.limit - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt.Unix()))

		if count > rl.limit {
			retryAfter := int64(resetAt.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
// the connection address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		first = strings.TrimSpace(first)
		if host, _, err := net.SplitHostPort(first); err == nil {
			return host
		}
		return first
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
