package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/HammerMeetNail/eventplanner/internal/logging"
	"github.com/HammerMeetNail/eventplanner/internal/models"
	"github.com/HammerMeetNail/eventplanner/internal/services"
)

type RecommendationHandler struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationHandler(recommendationService services.RecommendationServiceInterface) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// Get serves GET /api/event-planning/recommendations.
func (h *RecommendationHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := ParseEventQuery(r.URL.Query())

	resp, err := h.recommendationService.Recommend(r.Context(), query)
	if err != nil {
		details := err.Error()
		var aggErr *services.AggregationError
		if errors.As(err, &aggErr) && aggErr.Cause != nil {
			details = aggErr.Cause.Error()
		}
		logging.FromContext(r.Context()).Error("Error building recommendations", map[string]interface{}{
			"error": err.Error(),
		})
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to fetch recommendations", details)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ParseEventQuery normalizes the recommendation query string. Malformed
// numbers are dropped rather than rejected, and the raw values are kept for
// the response echo.
func ParseEventQuery(values url.Values) models.EventQuery {
	raw := models.RawEventQuery{
		EventType:  rawParam(values, "eventType"),
		EventDate:  rawParam(values, "eventDate"),
		GuestCount: rawParam(values, "guestCount"),
		Budget:     rawParam(values, "budget"),
		Location:   rawParam(values, "location"),
		Services:   rawParam(values, "services"),
	}

	query := models.EventQuery{
		EventType:  strings.TrimSpace(values.Get("eventType")),
		EventDate:  strings.TrimSpace(values.Get("eventDate")),
		GuestCount: parseOptionalInt(raw.GuestCount),
		Budget:     parseOptionalInt(raw.Budget),
		Location:   strings.TrimSpace(values.Get("location")),
		Services:   []string{},
		Raw:        raw,
	}
	if raw.Services != nil {
		query.Services = splitServices(*raw.Services)
	}
	return query
}

func rawParam(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	return &v
}

func parseOptionalInt(raw *string) *int {
	if raw == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return nil
	}
	return &n
}

// splitServices splits a comma list, dropping blanks and repeats.
func splitServices(s string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}
