package models

// RawEventQuery holds the query-string values exactly as received. A nil
// field means the parameter was absent.
type RawEventQuery struct {
	EventType  *string
	EventDate  *string
	GuestCount *string
	Budget     *string
	Location   *string
	Services   *string
}

// EventQuery is the normalized input of a recommendation request. No field
// is required; an empty Services list selects every category.
type EventQuery struct {
	EventType  string
	EventDate  string
	GuestCount *int
	Budget     *int
	Location   string
	Services   []string
	Raw        RawEventQuery
}

// HasBudget reports whether the budget filter applies.
func (q EventQuery) HasBudget() bool {
	return q.Budget != nil && *q.Budget > 0
}

// CategoryRecommendationBlock is the per-category unit of a response.
// Real offerings come first in rank order, placeholders after them.
type CategoryRecommendationBlock struct {
	Category       Category         `json:"category"`
	Vendors        []VendorOffering `json:"vendors"`
	RealCount      int              `json:"realCount"`
	SyntheticCount int              `json:"syntheticCount"`
}

// AggregateResponse maps category slug to its block and echoes the raw
// query values.
type AggregateResponse struct {
	VendorsByCategory map[string]CategoryRecommendationBlock `json:"vendorsByCategory"`
	EventType         *string                                `json:"eventType"`
	EventDate         *string                                `json:"eventDate"`
	GuestCount        *string                                `json:"guestCount"`
	Budget            *string                                `json:"budget"`
	Location          *string                                `json:"location"`
	Services          []string                               `json:"services"`
}
