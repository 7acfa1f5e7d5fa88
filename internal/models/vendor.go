package models

import "github.com/google/uuid"

// VendorCard is a row of the vendor_cards table as stored.
type VendorCard struct {
	ID            uuid.UUID
	VendorID      uuid.UUID
	CategoryID    uuid.UUID
	Title         string
	Description   string
	BasePrice     float64
	AverageRating float64
	TotalReviews  int
	Featured      bool
}

// VendorOffering is a bookable listing as returned to clients. Placeholder
// offerings generated to pad a category carry Synthetic = true.
type VendorOffering struct {
	ID                string   `json:"id"`
	VendorID          string   `json:"vendorId,omitempty"`
	CategoryID        string   `json:"categoryId"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	BasePrice         float64  `json:"basePrice"`
	PriceRangeMin     float64  `json:"priceRangeMin"`
	PriceRangeMax     float64  `json:"priceRangeMax"`
	AverageRating     float64  `json:"averageRating"`
	TotalReviews      int      `json:"totalReviews"`
	Featured          bool     `json:"featured"`
	Inclusions        []string `json:"inclusions"`
	Exclusions        []string `json:"exclusions"`
	ServiceArea       []string `json:"serviceArea"`
	ResponseTimeHours int      `json:"responseTimeHours"`
	TotalOrders       int      `json:"totalOrders"`
	MaxCapacity       int      `json:"maxCapacity"`
	Synthetic         bool     `json:"synthetic"`
}

// NewVendorOffering converts a stored card into an undecorated offering.
func NewVendorOffering(card VendorCard) VendorOffering {
	offering := VendorOffering{
		ID:            card.ID.String(),
		CategoryID:    card.CategoryID.String(),
		Title:         card.Title,
		Description:   card.Description,
		BasePrice:     card.BasePrice,
		AverageRating: card.AverageRating,
		TotalReviews:  card.TotalReviews,
		Featured:      card.Featured,
	}
	if card.VendorID != uuid.Nil {
		offering.VendorID = card.VendorID.String()
	}
	return offering
}
