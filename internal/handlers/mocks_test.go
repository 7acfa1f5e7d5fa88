package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/eventplanner/internal/models"
	"github.com/HammerMeetNail/eventplanner/internal/services"
)

type mockCategoryService struct {
	ListFunc       func(ctx context.Context) ([]models.Category, error)
	GetBySlugsFunc func(ctx context.Context, slugs []string) ([]models.Category, error)
}

func (m *mockCategoryService) List(ctx context.Context) ([]models.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetBySlugs(ctx context.Context, slugs []string) ([]models.Category, error) {
	if m.GetBySlugsFunc != nil {
		return m.GetBySlugsFunc(ctx, slugs)
	}
	return []models.Category{}, nil
}

type mockVendorService struct {
	ListByCategoryFunc func(ctx context.Context, categoryID uuid.UUID, filter services.VendorFilter) ([]models.VendorCard, error)
}

func (m *mockVendorService) ListByCategory(ctx context.Context, categoryID uuid.UUID, filter services.VendorFilter) ([]models.VendorCard, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, categoryID, filter)
	}
	return []models.VendorCard{}, nil
}

type mockRecommendationService struct {
	RecommendFunc func(ctx context.Context, query models.EventQuery) (*models.AggregateResponse, error)
}

func (m *mockRecommendationService) Recommend(ctx context.Context, query models.EventQuery) (*models.AggregateResponse, error) {
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, query)
	}
	return &models.AggregateResponse{
		VendorsByCategory: map[string]models.CategoryRecommendationBlock{},
		Services:          []string{},
	}, nil
}
