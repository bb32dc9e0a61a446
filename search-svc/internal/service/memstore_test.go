package service_test

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"foodfinder/search-svc/internal/domain"
	"foodfinder/search-svc/internal/identity"
)

// memStore is an in-memory RestaurantStore that applies the same identity
// rules as the Postgres repository.
type memStore struct {
	mu          sync.Mutex
	resolver    *identity.Resolver
	restaurants []domain.Restaurant
	dishes      []domain.DishAssociation
	inserts     int
}

func newMemStore() *memStore {
	return &memStore{resolver: identity.NewResolver(identity.DefaultEpsilon)}
}

func (s *memStore) add(rest domain.Restaurant, dish string, confidence float64) domain.Restaurant {
	result, err := s.SaveObservation(context.Background(), rest, dish, confidence)
	if err != nil {
		panic(err)
	}
	return result.Restaurant
}

func (s *memStore) FindByDishOrCuisine(ctx context.Context, term string) ([]domain.LocalMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	term = strings.ToLower(strings.TrimSpace(term))
	var matches []domain.LocalMatch
	for _, rest := range s.restaurants {
		matched := strings.Contains(strings.ToLower(rest.Cuisine), term)
		dishName := ""
		for _, dish := range s.dishes {
			if dish.RestaurantID == rest.ID && strings.Contains(strings.ToLower(dish.DishName), term) {
				matched = true
				dishName = dish.DishName
				break
			}
		}
		if matched {
			matches = append(matches, domain.LocalMatch{Restaurant: rest, DishName: dishName})
		}
	}
	return matches, nil
}

func (s *memStore) FindAll(ctx context.Context) ([]domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Restaurant(nil), s.restaurants...), nil
}

func (s *memStore) SaveObservation(ctx context.Context, candidate domain.Restaurant, dish string, confidence float64) (domain.UpsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.resolver.Resolve(ctx, memLookup{store: s}, candidate)
	if err != nil {
		return domain.UpsertResult{}, err
	}

	var result domain.UpsertResult
	if existing != nil {
		for i := range s.restaurants {
			if s.restaurants[i].ID != existing.ID {
				continue
			}
			s.restaurants[i].Rating = candidate.Rating
			s.restaurants[i].PriceRange = candidate.PriceRange
			if candidate.Phone != "" {
				s.restaurants[i].Phone = candidate.Phone
			}
			if candidate.Hours != "" {
				s.restaurants[i].Hours = candidate.Hours
			}
			if s.restaurants[i].ExternalID == "" {
				s.restaurants[i].ExternalID = candidate.ExternalID
			}
			result.Restaurant = s.restaurants[i]
		}
	} else {
		s.inserts++
		candidate.ID = fmt.Sprintf("mem-%d", s.inserts)
		candidate.DistanceKm = 0
		s.restaurants = append(s.restaurants, candidate)
		result = domain.UpsertResult{Restaurant: candidate, Created: true}
	}

	for _, existingDish := range s.dishes {
		if existingDish.RestaurantID == result.Restaurant.ID && strings.EqualFold(existingDish.DishName, dish) {
			return result, nil
		}
	}
	s.dishes = append(s.dishes, domain.DishAssociation{
		ID:           fmt.Sprintf("dish-%d", len(s.dishes)+1),
		RestaurantID: result.Restaurant.ID,
		DishName:     dish,
		Confidence:   confidence,
	})
	return result, nil
}

func (s *memStore) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rest := range s.restaurants {
		if rest.ID == id {
			found := rest
			return &found, nil
		}
	}
	return nil, domain.ErrRestaurantNotFound
}

func (s *memStore) ListDishes(ctx context.Context, restaurantID string) ([]domain.DishAssociation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var dishes []domain.DishAssociation
	for _, dish := range s.dishes {
		if dish.RestaurantID == restaurantID {
			dishes = append(dishes, dish)
		}
	}
	return dishes, nil
}

func (s *memStore) Stats(ctx context.Context) (domain.StoreStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.StoreStats{Restaurants: len(s.restaurants), DishAssociations: len(s.dishes)}, nil
}

func (s *memStore) dishesNamed(name string) []domain.DishAssociation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.DishAssociation
	for _, dish := range s.dishes {
		if strings.EqualFold(dish.DishName, name) {
			out = append(out, dish)
		}
	}
	return out
}

// memLookup runs under the store lock held by SaveObservation.
type memLookup struct {
	store *memStore
}

func (l memLookup) FindByExternalID(ctx context.Context, externalID string) (*domain.Restaurant, error) {
	for _, rest := range l.store.restaurants {
		if rest.ExternalID == externalID {
			found := rest
			return &found, nil
		}
	}
	return nil, nil
}

func (l memLookup) FindByNameNear(ctx context.Context, name string, at domain.Coordinates, epsilon float64) (*domain.Restaurant, error) {
	for _, rest := range l.store.restaurants {
		if rest.Name == name && math.Abs(rest.Location.Lat-at.Lat) <= epsilon && math.Abs(rest.Location.Lon-at.Lon) <= epsilon {
			found := rest
			return &found, nil
		}
	}
	return nil, nil
}
