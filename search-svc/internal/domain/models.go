package domain

import "time"

const (
	SourceLocalDB = "local_db"
	SourceYandex  = "yandex"

	ProvenanceLocal  = "local_database"
	ProvenanceHybrid = "hybrid"

	OriginLocal    = "local"
	OriginExternal = "external"

	DefaultConfidence = 0.8
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Restaurant struct {
	ID         string      `json:"id"`
	ExternalID string      `json:"external_id,omitempty"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	Location   Coordinates `json:"coordinates"`
	Cuisine    string      `json:"cuisine"`
	Phone      string      `json:"phone"`
	Hours      string      `json:"hours"`
	Rating     float64     `json:"rating"`
	PriceRange string      `json:"price_range"`
	Source     string      `json:"source"`
	DistanceKm float64     `json:"-"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type DishAssociation struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	DishName     string    `json:"dish_name"`
	Confidence   float64   `json:"confidence_score"`
	CreatedAt    time.Time `json:"created_at"`
}

// LocalMatch is a stored restaurant together with the dish name that matched the search term.
type LocalMatch struct {
	Restaurant
	DishName string
}

type UpsertResult struct {
	Restaurant Restaurant
	Created    bool
}

type StoreStats struct {
	Restaurants      int `json:"restaurants_count"`
	DishAssociations int `json:"dishes_count"`
}

type SearchQuery struct {
	Dish         string
	Location     *Coordinates
	RadiusMeters int
}

// RankedRestaurant is one merged search hit. Origin tells whether it came from
// the local store or from the provider response.
type RankedRestaurant struct {
	Restaurant
	MatchedDish string
	Origin      string
}

type SearchResult struct {
	Dish         string
	Location     Coordinates
	Restaurants  []RankedRestaurant
	TotalResults int
	Source       string
	Degraded     bool
}

type Prediction struct {
	Food        string  `json:"food"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

type Recognition struct {
	Predictions   []Prediction `json:"predictions"`
	TopPrediction *Prediction  `json:"top_prediction"`
}

type PopularDish struct {
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`
}
