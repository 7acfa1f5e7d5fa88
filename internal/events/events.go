// Package events publishes analytics about served recommendations, in
// particular how much of each category block was padded with placeholders.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CategoryStats summarizes one category block of a response.
type CategoryStats struct {
	Slug      string `json:"slug"`
	Real      int    `json:"real"`
	Synthetic int    `json:"synthetic"`
	Failed    bool   `json:"failed"`
}

// RecommendationServed is emitted once per successful recommendation request.
type RecommendationServed struct {
	ID         uuid.UUID       `json:"id"`
	RequestID  string          `json:"request_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	EventType  string          `json:"event_type,omitempty"`
	EventDate  string          `json:"event_date,omitempty"`
	Location   string          `json:"location,omitempty"`
	GuestCount *int            `json:"guest_count,omitempty"`
	Budget     *int            `json:"budget,omitempty"`
	Services   []string        `json:"services"`
	Categories []CategoryStats `json:"categories"`
}

// SyntheticTotal is the number of placeholder offerings across all blocks.
func (e RecommendationServed) SyntheticTotal() int {
	total := 0
	for _, c := range e.Categories {
		total += c.Synthetic
	}
	return total
}

type Publisher interface {
	PublishRecommendationServed(ctx context.Context, event RecommendationServed) error
	Close() error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) PublishRecommendationServed(ctx context.Context, event RecommendationServed) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
