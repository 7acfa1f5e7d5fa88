package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/eventplanner/internal/models"
)

// CategoryServiceInterface defines the contract for category lookups.
type CategoryServiceInterface interface {
	List(ctx context.Context) ([]models.Category, error)
	GetBySlugs(ctx context.Context, slugs []string) ([]models.Category, error)
}

// VendorServiceInterface defines the contract for the per-category ranked query.
type VendorServiceInterface interface {
	ListByCategory(ctx context.Context, categoryID uuid.UUID, filter VendorFilter) ([]models.VendorCard, error)
}

// RecommendationServiceInterface defines the contract used by the recommendation handler.
type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, query models.EventQuery) (*models.AggregateResponse, error)
}
