package services

import (
	"strings"

	"github.com/HammerMeetNail/eventplanner/internal/models"
)

const (
	priceRangeLow  = 0.8
	priceRangeHigh = 1.2
)

var (
	defaultInclusions = []string{
		"Initial consultation and planning call",
		"Professional equipment and materials",
		"Setup and teardown on event day",
		"Dedicated point of contact",
	}
	defaultExclusions = []string{
		"Travel outside city limits",
		"Venue charges and permits",
		"Additional hours beyond the booked package",
		"Taxes as applicable",
	}
	otherServiceCities = []string{"Delhi", "Bangalore", "Pune", "Hyderabad"}
)

// Decorator fills in the presentation fields the vendor_cards table does not
// store yet. responseTimeHours, totalOrders and maxCapacity are random, so
// decorated output differs between calls.
type Decorator struct {
	rng          Random
	fallbackCity string
}

func NewDecorator(rng Random, fallbackCity string) *Decorator {
	return &Decorator{rng: rng, fallbackCity: fallbackCity}
}

func (d *Decorator) Decorate(o *models.VendorOffering, location string) {
	o.PriceRangeMin = o.BasePrice * priceRangeLow
	o.PriceRangeMax = o.BasePrice * priceRangeHigh
	o.Inclusions = append([]string(nil), defaultInclusions...)
	o.Exclusions = append([]string(nil), defaultExclusions...)
	o.ServiceArea = d.serviceArea(location)
	o.ResponseTimeHours = intBetween(d.rng, 1, 24)
	o.TotalOrders = intBetween(d.rng, 10, 509)
	o.MaxCapacity = intBetween(d.rng, 50, 549)
}

// serviceArea puts the requested location (or the fallback city) first.
func (d *Decorator) serviceArea(location string) []string {
	primary := strings.TrimSpace(location)
	if primary == "" {
		primary = d.fallbackCity
	}
	area := []string{primary}
	for _, city := range otherServiceCities {
		if !strings.EqualFold(city, primary) {
			area = append(area, city)
		}
	}
	return area
}
