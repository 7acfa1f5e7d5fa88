package models

import "github.com/google/uuid"

// Category groups vendor offerings by service type, e.g. "Catering & Food".
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
	Icon string    `json:"icon"`
}
