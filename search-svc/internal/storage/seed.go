package storage

import (
	"context"

	"foodfinder/search-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type seedRestaurant struct {
	restaurant domain.Restaurant
	dish       string
	confidence float64
}

var demoRestaurants = []seedRestaurant{
	{
		restaurant: domain.Restaurant{
			Name:       "Test Pizza Place",
			Address:    "Red Square, 1, Moscow",
			Location:   domain.Coordinates{Lat: 55.7558, Lon: 37.6173},
			Cuisine:    "Italian",
			Rating:     4.5,
			PriceRange: "$$",
			Source:     domain.SourceLocalDB,
		},
		dish:       "pizza",
		confidence: 0.9,
	},
	{
		restaurant: domain.Restaurant{
			Name:       "Sushi Garden",
			Address:    "Tverskaya St, 10, Moscow",
			Location:   domain.Coordinates{Lat: 55.7600, Lon: 37.6200},
			Cuisine:    "Japanese",
			Rating:     4.2,
			PriceRange: "$$$",
			Source:     domain.SourceLocalDB,
		},
		dish:       "sushi",
		confidence: 0.95,
	},
}

// Seed stores the demo restaurants. Running it again leaves a single copy of each.
func (r *PostgresRepository) Seed(ctx context.Context) error {
	for _, seed := range demoRestaurants {
		result, err := r.SaveObservation(ctx, seed.restaurant, seed.dish, seed.confidence)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"restaurant": result.Restaurant.Name,
			"created":    result.Created,
		}).Info("demo restaurant seeded")
	}
	return nil
}
