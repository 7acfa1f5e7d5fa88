package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/HammerMeetNail/eventplanner/internal/config"
	"github.com/HammerMeetNail/eventplanner/internal/events"
	"github.com/HammerMeetNail/eventplanner/internal/logging"
	"github.com/HammerMeetNail/eventplanner/internal/models"
)

// budgetHeadroom lets offerings up to 20% above the stated budget through.
const budgetHeadroom = 1.2

// AggregationErrorKind classifies request-level failures.
type AggregationErrorKind string

const (
	// KindResolution means the category lookup itself failed.
	KindResolution AggregationErrorKind = "category_resolution"
)

// AggregationError is returned by Recommend when the request cannot be served.
type AggregationError struct {
	Kind  AggregationErrorKind
	Cause error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Kind, e.Cause)
}

func (e *AggregationError) Unwrap() error {
	return e.Cause
}

// RecommendationService builds the per-category recommendation blocks.
type RecommendationService struct {
	categories   CategoryServiceInterface
	vendors      VendorServiceInterface
	cfg          config.RecommendationConfig
	decorator    *Decorator
	placeholders *PlaceholderGenerator
	publisher    events.Publisher
	newBackOff   func() backoff.BackOff
	now          func() time.Time
}

func NewRecommendationService(categories CategoryServiceInterface, vendors VendorServiceInterface, cfg config.RecommendationConfig) *RecommendationService {
	s := &RecommendationService{
		categories: categories,
		vendors:    vendors,
		cfg:        cfg,
		publisher:  events.NoopPublisher{},
		newBackOff: defaultBackOff,
		now:        time.Now,
	}
	s.SetRandom(newRandom())
	return s
}

// SetRandom replaces the source used for decoration and placeholders.
func (s *RecommendationService) SetRandom(rng Random) {
	s.decorator = NewDecorator(rng, s.cfg.FallbackCity)
	s.placeholders = NewPlaceholderGenerator(rng, s.decorator)
}

func (s *RecommendationService) SetPublisher(p events.Publisher) {
	s.publisher = p
}

// SetBackOff replaces the retry schedule for vendor fetches.
func (s *RecommendationService) SetBackOff(f func() backoff.BackOff) {
	s.newBackOff = f
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.RandomizationFactor = 0.5
	b.MaxElapsedTime = 0
	return b
}

// Recommend resolves the requested categories and returns a block of exactly
// PageSize offerings for each. Only a failed category lookup is an error;
// a failed vendor fetch yields a fully synthetic block.
func (s *RecommendationService) Recommend(ctx context.Context, query models.EventQuery) (*models.AggregateResponse, error) {
	logger := logging.FromContext(ctx)

	categories, err := s.categories.GetBySlugs(ctx, query.Services)
	if err != nil {
		return nil, &AggregationError{Kind: KindResolution, Cause: err}
	}

	if query.GuestCount != nil {
		// vendor_cards has no capacity column to filter on.
		logger.Debug("Guest count accepted but not applied", map[string]interface{}{
			"guest_count": *query.GuestCount,
		})
	}

	blocks := make([]models.CategoryRecommendationBlock, len(categories))
	failed := make([]bool, len(categories))

	limit := s.cfg.MaxConcurrency
	if limit <= 0 {
		limit = -1
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for i, category := range categories {
		g.Go(func() error {
			blocks[i], failed[i] = s.buildBlock(ctx, category, query)
			return nil
		})
	}
	_ = g.Wait()

	resp := &models.AggregateResponse{
		VendorsByCategory: make(map[string]models.CategoryRecommendationBlock, len(blocks)),
		EventType:         query.Raw.EventType,
		EventDate:         query.Raw.EventDate,
		GuestCount:        query.Raw.GuestCount,
		Budget:            query.Raw.Budget,
		Location:          query.Raw.Location,
		Services:          append([]string{}, query.Services...),
	}
	for _, block := range blocks {
		resp.VendorsByCategory[block.Category.Slug] = block
	}

	s.publish(ctx, query, blocks, failed)
	return resp, nil
}

func (s *RecommendationService) buildBlock(ctx context.Context, category models.Category, query models.EventQuery) (models.CategoryRecommendationBlock, bool) {
	filter := VendorFilter{Limit: s.cfg.FetchLimit}
	if query.HasBudget() {
		maxPrice := float64(*query.Budget) * budgetHeadroom
		filter.MaxPrice = &maxPrice
	}

	failed := false
	cards, err := s.fetchVendorCards(ctx, category, filter)
	if err != nil {
		logging.FromContext(ctx).Warn("Vendor fetch failed, using placeholders", map[string]interface{}{
			"category": category.Slug,
			"error":    err.Error(),
		})
		cards = nil
		failed = true
	}

	cards = FilterByBudget(cards, filter.MaxPrice)
	RankVendorCards(cards)

	vendors := make([]models.VendorOffering, 0, s.cfg.PageSize)
	for _, card := range cards {
		offering := models.NewVendorOffering(card)
		s.decorator.Decorate(&offering, query.Location)
		vendors = append(vendors, offering)
	}
	if len(vendors) > s.cfg.PageSize {
		vendors = vendors[:s.cfg.PageSize]
	}

	realCount := len(vendors)
	vendors = append(vendors, s.placeholders.Generate(category, s.cfg.PageSize-realCount, query.Location)...)

	return models.CategoryRecommendationBlock{
		Category:       category,
		Vendors:        vendors,
		RealCount:      realCount,
		SyntheticCount: len(vendors) - realCount,
	}, failed
}

// fetchVendorCards runs the category query with a per-attempt timeout and
// bounded retries.
func (s *RecommendationService) fetchVendorCards(ctx context.Context, category models.Category, filter VendorFilter) ([]models.VendorCard, error) {
	var cards []models.VendorCard
	operation := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()

		var err error
		cards, err = s.vendors.ListByCategory(attemptCtx, category.ID, filter)
		if err != nil && ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(s.newBackOff(), uint64(s.cfg.FetchRetries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *RecommendationService) publish(ctx context.Context, query models.EventQuery, blocks []models.CategoryRecommendationBlock, failed []bool) {
	event := events.RecommendationServed{
		ID:         uuid.New(),
		RequestID:  logging.RequestIDFromContext(ctx),
		OccurredAt: s.now().UTC(),
		EventType:  query.EventType,
		EventDate:  query.EventDate,
		Location:   query.Location,
		GuestCount: query.GuestCount,
		Budget:     query.Budget,
		Services:   append([]string{}, query.Services...),
		Categories: make([]events.CategoryStats, 0, len(blocks)),
	}
	for i, block := range blocks {
		event.Categories = append(event.Categories, events.CategoryStats{
			Slug:      block.Category.Slug,
			Real:      block.RealCount,
			Synthetic: block.SyntheticCount,
			Failed:    failed[i],
		})
	}

	if err := s.publisher.PublishRecommendationServed(ctx, event); err != nil && !errors.Is(err, context.Canceled) {
		logging.FromContext(ctx).Warn("Failed to publish recommendation event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
