package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/eventplanner/internal/logging"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with an id and a logger carrying it.
type RequestID struct {
	logger *logging.Logger
}

func NewRequestID(logger *logging.Logger) *RequestID {
	if logger == nil {
		logger = logging.Default
	}
	return &RequestID{logger: logger}
}

// Apply reuses a well-formed incoming X-Request-ID, otherwise generates one.
func (m *RequestID) Apply(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := logging.WithRequestID(r.Context(), id)
		ctx = logging.NewContext(ctx, m.logger.WithField("request_id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
