package domain

import "errors"

var ErrInvalidDate = errors.New("date must use the YYYY-MM-DD format")

const (
	ProvenanceLocal  = "local_database"
	ProvenanceHybrid = "hybrid"
)

type DishScore struct {
	Dish     string  `json:"dish"`
	Searches float64 `json:"searches"`
}

// SourceBreakdown tells how the searches of one day were answered.
type SourceBreakdown struct {
	Date              string `json:"date"`
	LocalDatabase     int    `json:"local_database"`
	Hybrid            int    `json:"hybrid"`
	Degraded          int    `json:"degraded"`
	WriteBackFailures int    `json:"write_back_failures"`
	Discovered        int    `json:"discovered"`
}

// DishCoverage relates demand for a dish to what the local store already knows.
type DishCoverage struct {
	Dish          string  `json:"dish"`
	Restaurants   int     `json:"restaurants"`
	AvgConfidence float64 `json:"avg_confidence"`
	Searches      int     `json:"searches"`
	Discovered    int     `json:"discovered"`
}
