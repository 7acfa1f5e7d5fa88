package events

import (
	"context"

	"github.com/HammerMeetNail/eventplanner/internal/logging"
)

// LogPublisher writes events to the structured log instead of a broker.
type LogPublisher struct {
	logger *logging.Logger
}

func NewLogPublisher(logger *logging.Logger) *LogPublisher {
	if logger == nil {
		logger = logging.Default
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishRecommendationServed(ctx context.Context, event RecommendationServed) error {
	logging.FromContextOr(ctx, p.logger).Info("Recommendation served", map[string]interface{}{
		"event_id":        event.ID.String(),
		"event_type":      event.EventType,
		"services":        event.Services,
		"categories":      len(event.Categories),
		"synthetic_total": event.SyntheticTotal(),
	})
	return nil
}

func (p *LogPublisher) Close() error { return nil }
