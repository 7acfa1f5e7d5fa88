package middleware

import (
	"net/http"
	"strings"
)

// CacheControl marks responses uncacheable. Recommendation payloads are
// randomized per request, and probe endpoints must always hit the server.
type CacheControl struct{}

func NewCacheControl() *CacheControl {
	return &CacheControl{}
}

func (c *CacheControl) Apply(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := r.URL.Path; {
		case strings.HasPrefix(path, "/api/"):
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
		case isProbePath(path):
			w.Header().Set("Cache-Control", "no-store")
		default:
			w.Header().Set("Cache-Control", "no-cache")
		}

		next.ServeHTTP(w, r)
	})
}

func isProbePath(path string) bool {
	return path == "/health" || path == "/ready" || path == "/live"
}
