package service

import (
	"context"
	"io"

	"foodfinder/search-svc/internal/domain"
)

var popularDishes = []domain.PopularDish{
	{Name: "Pizza", Cuisine: "Italian"},
	{Name: "Burger", Cuisine: "American"},
	{Name: "Sushi", Cuisine: "Japanese"},
	{Name: "Tacos", Cuisine: "Mexican"},
	{Name: "Pasta", Cuisine: "Italian"},
}

type FoodService struct {
	recognizer Recognizer
}

func NewFoodService(recognizer Recognizer) *FoodService {
	return &FoodService{recognizer: recognizer}
}

func (s *FoodService) PopularDishes() []domain.PopularDish {
	return append([]domain.PopularDish(nil), popularDishes...)
}

func (s *FoodService) Recognize(ctx context.Context, filename, contentType string, image io.Reader) (*domain.Recognition, error) {
	return s.recognizer.Recognize(ctx, filename, contentType, image)
}
