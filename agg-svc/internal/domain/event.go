package domain

import "time"

const (
	EventSearchCompleted      = "search_completed"
	EventRestaurantDiscovered = "restaurant_discovered"

	ProvenanceLocal  = "local_database"
	ProvenanceHybrid = "hybrid"
)

// SearchEvent mirrors the messages search-svc publishes on the search topic.
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

// Day is the UTC calendar day the event belongs to.
func (e SearchEvent) Day(now time.Time) string {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = now
	}
	return ts.UTC().Format("2006-01-02")
}
