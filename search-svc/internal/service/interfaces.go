package service

import (
	"context"
	"io"

	"foodfinder/search-svc/internal/domain"
)

type RestaurantStore interface {
	FindByDishOrCuisine(ctx context.Context, term string) ([]domain.LocalMatch, error)
	FindAll(ctx context.Context) ([]domain.Restaurant, error)
	SaveObservation(ctx context.Context, candidate domain.Restaurant, dish string, confidence float64) (domain.UpsertResult, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	ListDishes(ctx context.Context, restaurantID string) ([]domain.DishAssociation, error)
	Stats(ctx context.Context) (domain.StoreStats, error)
}

type PlaceSearcher interface {
	Search(ctx context.Context, dish string, center domain.Coordinates, radiusMeters int) ([]domain.Restaurant, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.SearchEvent) error
}

type Recognizer interface {
	Recognize(ctx context.Context, filename, contentType string, image io.Reader) (*domain.Recognition, error)
}

type QRGenerator interface {
	RestaurantQR(rest domain.Restaurant) ([]byte, error)
}

type SearchServiceInterface interface {
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error)
	Nearby(ctx context.Context, location *domain.Coordinates, radiusMeters int) (*domain.SearchResult, error)
}

type RestaurantServiceInterface interface {
	Get(ctx context.Context, id string) (*domain.Restaurant, []domain.DishAssociation, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
	Stats(ctx context.Context) (domain.StoreStats, error)
}

type FoodServiceInterface interface {
	PopularDishes() []domain.PopularDish
	Recognize(ctx context.Context, filename, contentType string, image io.Reader) (*domain.Recognition, error)
}

var (
	_ SearchServiceInterface     = (*SearchService)(nil)
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ FoodServiceInterface       = (*FoodService)(nil)
	_ Recognizer                 = (*RecognitionClient)(nil)
	_ QRGenerator                = DefaultQRGenerator{}
)
