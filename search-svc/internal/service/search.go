package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"foodfinder/search-svc/internal/domain"
	"foodfinder/search-svc/internal/geo"
	"foodfinder/search-svc/internal/identity"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

var ErrStoreUnavailable = errors.New("restaurant store unavailable")

const (
	DefaultRadiusMeters = 5000
	MaxRadiusMeters     = 50000
	MaxResultLimit      = 15
	maxDishLength       = 255
)

type SearchConfig struct {
	DefaultLocation domain.Coordinates
	DefaultRadius   int
	MaxRadius       int
	LocalThreshold  int
	ResultLimit     int
	Confidence      float64
}

func (c SearchConfig) withDefaults() SearchConfig {
	if c.DefaultRadius <= 0 {
		c.DefaultRadius = DefaultRadiusMeters
	}
	if c.MaxRadius <= 0 {
		c.MaxRadius = MaxRadiusMeters
	}
	if c.LocalThreshold <= 0 {
		c.LocalThreshold = 8
	}
	if c.ResultLimit <= 0 || c.ResultLimit > MaxResultLimit {
		c.ResultLimit = MaxResultLimit
	}
	if c.Confidence <= 0 {
		c.Confidence = domain.DefaultConfidence
	}
	return c
}

// SearchService answers dish searches from the local store and falls back to
// the place provider when the store holds too few nearby matches. Provider
// results are written back so later searches can be served locally.
type SearchService struct {
	store     RestaurantStore
	places    PlaceSearcher
	publisher EventPublisher
	merger    Merger
	config    SearchConfig
}

func NewSearchService(store RestaurantStore, places PlaceSearcher, publisher EventPublisher, resolver *identity.Resolver, config SearchConfig) *SearchService {
	config = config.withDefaults()
	if resolver == nil {
		resolver = identity.NewResolver(identity.DefaultEpsilon)
	}
	return &SearchService{
		store:     store,
		places:    places,
		publisher: publisher,
		merger:    Merger{Resolver: resolver, Limit: config.ResultLimit},
		config:    config,
	}
}

func (s *SearchService) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error) {
	dish, err := s.validateDish(query.Dish)
	if err != nil {
		return nil, err
	}
	center, radius, err := s.resolveArea(query.Location, query.RadiusMeters)
	if err != nil {
		return nil, err
	}

	log := logrus.WithFields(logrus.Fields{"dish": dish, "lat": center.Lat, "lon": center.Lon, "radius": radius})

	local, err := s.store.FindByDishOrCuisine(ctx, dish)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if nearby := countWithin(center, radius, local); nearby >= s.config.LocalThreshold {
		merged := s.merger.Merge(center, radius, dish, local, nil, false)
		log.WithField("local", nearby).Info("search served from local store")
		s.publish(ctx, domain.SearchEvent{
			Type:         domain.EventSearchCompleted,
			Dish:         dish,
			Source:       merged.Source,
			LocalCount:   nearby,
			TotalResults: merged.Total,
		})
		return s.result(dish, center, merged, false), nil
	}

	external, err := s.places.Search(ctx, dish, center, radius)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	degraded := err != nil
	if degraded {
		log.WithError(err).Warn("provider search failed, continuing with local results")
		external = nil
	}

	external, created, err := s.writeBack(ctx, dish, external)
	failures := 0
	if err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			failures = len(merr.Errors)
		}
		log.WithError(err).WithField("failures", failures).Warn("write-back incomplete")
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	merged := s.merger.Merge(center, radius, dish, local, external, true)
	log.WithFields(logrus.Fields{
		"local":    len(local),
		"external": len(external),
		"created":  len(created),
		"total":    merged.Total,
		"degraded": degraded,
	}).Info("hybrid search completed")

	s.publish(ctx, domain.SearchEvent{
		Type:              domain.EventSearchCompleted,
		Dish:              dish,
		Source:            merged.Source,
		LocalCount:        countWithin(center, radius, local),
		ExternalCount:     len(external),
		TotalResults:      merged.Total,
		ProviderFailed:    degraded,
		WriteBackFailures: failures,
	})
	for _, rest := range created {
		s.publish(ctx, domain.SearchEvent{
			Type:           domain.EventRestaurantDiscovered,
			Dish:           dish,
			RestaurantID:   rest.ID,
			RestaurantName: rest.Name,
		})
	}

	return s.result(dish, center, merged, degraded), nil
}

// Nearby lists stored restaurants around location regardless of dish.
func (s *SearchService) Nearby(ctx context.Context, location *domain.Coordinates, radiusMeters int) (*domain.SearchResult, error) {
	center, radius, err := s.resolveArea(location, radiusMeters)
	if err != nil {
		return nil, err
	}

	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	local := make([]domain.LocalMatch, 0, len(all))
	for _, rest := range all {
		local = append(local, domain.LocalMatch{Restaurant: rest})
	}

	return s.result("", center, s.merger.Merge(center, radius, "", local, nil, false), false), nil
}

// writeBack persists every provider candidate together with its dish link.
// Failures are collected and never abort the search. The returned candidates
// carry the internal id assigned by the store when the save succeeded.
func (s *SearchService) writeBack(ctx context.Context, dish string, candidates []domain.Restaurant) ([]domain.Restaurant, []domain.Restaurant, error) {
	if len(candidates) == 0 {
		return candidates, nil, nil
	}

	var errs *multierror.Error
	var created []domain.Restaurant
	saved := make([]domain.Restaurant, len(candidates))
	copy(saved, candidates)

	for i, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("write-back stopped: %w", err))
			break
		}

		result, err := s.store.SaveObservation(ctx, candidate, dish, s.config.Confidence)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("save %q: %w", candidate.Name, err))
			continue
		}

		saved[i].ID = result.Restaurant.ID
		if result.Created {
			created = append(created, result.Restaurant)
		}
	}

	return saved, created, errs.ErrorOrNil()
}

func (s *SearchService) publish(ctx context.Context, event domain.SearchEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		logrus.WithError(err).WithField("type", event.Type).Warn("failed to publish search event")
	}
}

func (s *SearchService) result(dish string, center domain.Coordinates, merged MergeResult, degraded bool) *domain.SearchResult {
	return &domain.SearchResult{
		Dish:         dish,
		Location:     center,
		Restaurants:  merged.Restaurants,
		TotalResults: merged.Total,
		Source:       merged.Source,
		Degraded:     degraded,
	}
}

func (s *SearchService) validateDish(dish string) (string, error) {
	dish = strings.TrimSpace(dish)
	if dish == "" {
		return "", domain.NewValidationError("dish", "must not be empty")
	}
	if len(dish) > maxDishLength {
		return "", domain.NewValidationError("dish", "is too long")
	}
	return dish, nil
}

func (s *SearchService) resolveArea(location *domain.Coordinates, radiusMeters int) (domain.Coordinates, int, error) {
	center := s.config.DefaultLocation
	if location != nil {
		if !geo.ValidCoordinates(*location) {
			return domain.Coordinates{}, 0, domain.NewValidationError("location", "latitude must be within [-90, 90] and longitude within [-180, 180]")
		}
		center = *location
	}

	switch {
	case radiusMeters == 0:
		radiusMeters = s.config.DefaultRadius
	case radiusMeters < 0:
		return domain.Coordinates{}, 0, domain.NewValidationError("radius", "must be positive")
	case radiusMeters > s.config.MaxRadius:
		return domain.Coordinates{}, 0, domain.NewValidationError("radius", "must not exceed "+strconv.Itoa(s.config.MaxRadius)+" meters")
	}

	return center, radiusMeters, nil
}

func countWithin(center domain.Coordinates, radiusMeters int, matches []domain.LocalMatch) int {
	count := 0
	for _, match := range matches {
		if geo.WithinRadius(geo.Distance(center, match.Location), radiusMeters) {
			count++
		}
	}
	return count
}

// ParseSearchQuery builds a query from raw request parameters. Latitude and
// longitude must be given together; omitting both selects the default location.
// A zero or missing radius selects the default radius.
func ParseSearchQuery(dish, lat, lon, radius string) (domain.SearchQuery, error) {
	query := domain.SearchQuery{Dish: dish}

	location, err := ParseLocation(lat, lon)
	if err != nil {
		return query, err
	}
	query.Location = location

	if strings.TrimSpace(radius) != "" {
		value, err := strconv.Atoi(strings.TrimSpace(radius))
		if err != nil {
			return query, domain.NewValidationError("radius", "must be an integer number of meters")
		}
		if value < 0 {
			return query, domain.NewValidationError("radius", "must be positive")
		}
		query.RadiusMeters = value
	}

	return query, nil
}

func ParseLocation(lat, lon string) (*domain.Coordinates, error) {
	lat, lon = strings.TrimSpace(lat), strings.TrimSpace(lon)
	if lat == "" && lon == "" {
		return nil, nil
	}
	if lat == "" || lon == "" {
		return nil, domain.NewValidationError("location", "lat and lon must be provided together")
	}

	latValue, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, domain.NewValidationError("lat", "must be a number")
	}
	lonValue, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return nil, domain.NewValidationError("lon", "must be a number")
	}

	return &domain.Coordinates{Lat: latValue, Lon: lonValue}, nil
}
