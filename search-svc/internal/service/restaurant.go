package service

import (
	"context"
	"fmt"

	"foodfinder/search-svc/internal/domain"
)

type RestaurantService struct {
	store RestaurantStore
	qr    QRGenerator
}

func NewRestaurantService(store RestaurantStore, qr QRGenerator) *RestaurantService {
	return &RestaurantService{store: store, qr: qr}
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, []domain.DishAssociation, error) {
	rest, err := s.store.GetRestaurant(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	dishes, err := s.store.ListDishes(ctx, rest.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list dishes: %w", err)
	}
	return rest, dishes, nil
}

func (s *RestaurantService) QRCode(ctx context.Context, id string) ([]byte, error) {
	rest, err := s.store.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.qr.RestaurantQR(*rest)
}

func (s *RestaurantService) Stats(ctx context.Context) (domain.StoreStats, error) {
	return s.store.Stats(ctx)
}
