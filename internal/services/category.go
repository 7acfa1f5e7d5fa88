package services

import (
	"context"
	"fmt"

	"github.com/HammerMeetNail/eventplanner/internal/models"
)

// CategoryService resolves requested service slugs to category records.
type CategoryService struct {
	db DBConn
}

func NewCategoryService(db DBConn) *CategoryService {
	return &CategoryService{db: db}
}

// List returns every known category ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, slug, icon
		 FROM categories
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return scanCategories(rows)
}

// GetBySlugs returns the categories whose slug is in slugs. Unknown slugs are
// skipped; an empty slugs list behaves like List.
func (s *CategoryService) GetBySlugs(ctx context.Context, slugs []string) ([]models.Category, error) {
	if len(slugs) == 0 {
		return s.List(ctx)
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, name, slug, icon
		 FROM categories
		 WHERE slug = ANY($1)
		 ORDER BY name`,
		slugs,
	)
	if err != nil {
		return nil, fmt.Errorf("getting categories by slug: %w", err)
	}
	return scanCategories(rows)
}

func scanCategories(rows Rows) ([]models.Category, error) {
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Icon); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}
