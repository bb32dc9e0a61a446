package domain

import "time"

const (
	EventSearchCompleted      = "search_completed"
	EventRestaurantDiscovered = "restaurant_discovered"
)

type SearchEvent struct {
	Type              string    `json:"type"`
	Dish              string    `json:"dish"`
	Source            string    `json:"source,omitempty"`
	LocalCount        int       `json:"local_count,omitempty"`
	ExternalCount     int       `json:"external_count,omitempty"`
	TotalResults      int       `json:"total_results,omitempty"`
	ProviderFailed    bool      `json:"provider_failed,omitempty"`
	WriteBackFailures int       `json:"write_back_failures,omitempty"`
	RestaurantID      string    `json:"restaurant_id,omitempty"`
	RestaurantName    string    `json:"restaurant_name,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}
