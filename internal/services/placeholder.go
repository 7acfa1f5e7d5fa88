package services

import (
	"fmt"
	"math"

	"github.com/HammerMeetNail/eventplanner/internal/models"
)

const (
	placeholderMinPrice  = 10000
	placeholderMaxPrice  = 60000
	placeholderMinRating = 3.0
	placeholderMaxRating = 5.0
)

// PlaceholderGenerator pads thin categories with synthetic offerings. Every
// generated record has Synthetic set so clients can tell it from inventory.
type PlaceholderGenerator struct {
	rng       Random
	decorator *Decorator
}

func NewPlaceholderGenerator(rng Random, decorator *Decorator) *PlaceholderGenerator {
	return &PlaceholderGenerator{rng: rng, decorator: decorator}
}

// Generate returns exactly n placeholders for category (none when n <= 0).
func (g *PlaceholderGenerator) Generate(category models.Category, n int, location string) []models.VendorOffering {
	if n <= 0 {
		return nil
	}

	out := make([]models.VendorOffering, 0, n)
	for i := 0; i < n; i++ {
		o := models.VendorOffering{
			ID:            fmt.Sprintf("mock-%s-%d", category.ID, i),
			CategoryID:    category.ID.String(),
			Title:         fmt.Sprintf("%s Provider %d", category.Name, i+1),
			Description:   fmt.Sprintf("Professional %s services for your event", category.Name),
			BasePrice:     float64(placeholderMinPrice + g.rng.IntN(placeholderMaxPrice-placeholderMinPrice)),
			AverageRating: g.rating(),
			TotalReviews:  g.rng.IntN(200),
			Synthetic:     true,
		}
		g.decorator.Decorate(&o, location)
		out = append(out, o)
	}
	return out
}

// rating returns a value in [3.0, 5.0] with one decimal place.
func (g *PlaceholderGenerator) rating() float64 {
	r := placeholderMinRating + g.rng.Float64()*(placeholderMaxRating-placeholderMinRating)
	return math.Round(r*10) / 10
}
