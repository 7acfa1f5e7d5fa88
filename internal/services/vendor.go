package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/eventplanner/internal/models"
)

// VendorFilter narrows a per-category vendor card query.
type VendorFilter struct {
	// MaxPrice excludes cards whose base price exceeds it. Nil disables the filter.
	MaxPrice *float64
	Limit    int
}

// VendorService runs the ranked vendor card query for one category.
type VendorService struct {
	db DBConn
}

func NewVendorService(db DBConn) *VendorService {
	return &VendorService{db: db}
}

// ListByCategory returns active cards for the category, best ranked first.
func (s *VendorService) ListByCategory(ctx context.Context, categoryID uuid.UUID, filter VendorFilter) ([]models.VendorCard, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, vendor_id, category_id, title, description,
		        base_price, average_rating, total_reviews, featured
		 FROM vendor_cards
		 WHERE category_id = $1
		   AND is_active = true
		   AND ($2::float8 IS NULL OR base_price <= $2)
		 ORDER BY featured DESC, average_rating DESC, total_reviews DESC
		 LIMIT $3`,
		categoryID, filter.MaxPrice, filter.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("getting vendor cards: %w", err)
	}
	defer rows.Close()

	cards := []models.VendorCard{}
	for rows.Next() {
		var c models.VendorCard
		if err := rows.Scan(
			&c.ID, &c.VendorID, &c.CategoryID, &c.Title, &c.Description,
			&c.BasePrice, &c.AverageRating, &c.TotalReviews, &c.Featured,
		); err != nil {
			return nil, fmt.Errorf("scanning vendor card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vendor cards: %w", err)
	}

	return cards, nil
}

// FilterByBudget drops cards priced above maxPrice. A nil maxPrice keeps all.
func FilterByBudget(cards []models.VendorCard, maxPrice *float64) []models.VendorCard {
	if maxPrice == nil {
		return cards
	}
	kept := cards[:0:0]
	for _, c := range cards {
		if c.BasePrice <= *maxPrice {
			kept = append(kept, c)
		}
	}
	return kept
}

// RankVendorCards orders cards featured first, then by rating, then by
// review count, all descending. Ties keep their input order.
func RankVendorCards(cards []models.VendorCard) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.AverageRating != b.AverageRating {
			return a.AverageRating > b.AverageRating
		}
		return a.TotalReviews > b.TotalReviews
	})
}
