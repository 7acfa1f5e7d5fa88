package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityHeaders_Apply(t *testing.T) {
	base := map[string]string{
		"X-Frame-Options":              "DENY",
		"X-Content-Type-Options":       "nosniff",
		"Referrer-Policy":              "no-referrer",
		"Cross-Origin-Resource-Policy": "same-origin",
		"Content-Security-Policy":      "default-src 'none'; frame-ancestors 'none'",
	}

	tests := []struct {
		name     string
		secure   bool
		wantHSTS string
	}{
		{name: "non-secure mode", secure: false, wantHSTS: ""},
		{name: "secure mode", secure: true, wantHSTS: "max-age=31536000; includeSubDomains"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec := NewSecurityHeaders(tt.secure)
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
			rr := httptest.NewRecorder()
			sec.Apply(handler).ServeHTTP(rr, req)

			for header, expected := range base {
				if got := rr.Header().Get(header); got != expected {
					t.Errorf("header %s: expected %q, got %q", header, expected, got)
				}
			}
			if got := rr.Header().Get("Strict-Transport-Security"); got != tt.wantHSTS {
				t.Errorf("HSTS: expected %q, got %q", tt.wantHSTS, got)
			}
		})
	}
}
