package service_test

import (
	"fmt"
	"math"
	"testing"

	"foodfinder/search-svc/internal/domain"
	"foodfinder/search-svc/internal/geo"
	"foodfinder/search-svc/internal/identity"
	"foodfinder/search-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var moscow = domain.Coordinates{Lat: 55.7558, Lon: 37.6173}

// north returns the point km kilometers due north of from.
func north(from domain.Coordinates, km float64) domain.Coordinates {
	return domain.Coordinates{Lat: from.Lat + km/(geo.EarthRadiusKm*math.Pi/180), Lon: from.Lon}
}

func localAt(id, name string, km float64) domain.LocalMatch {
	return domain.LocalMatch{
		Restaurant: domain.Restaurant{ID: id, Name: name, Location: north(moscow, km), Source: domain.SourceLocalDB},
		DishName:   "pizza",
	}
}

func externalAt(externalID, name string, km float64) domain.Restaurant {
	return domain.Restaurant{ExternalID: externalID, Name: name, Location: north(moscow, km), Source: domain.SourceYandex}
}

func newMerger() service.Merger {
	return service.Merger{Resolver: identity.NewResolver(identity.DefaultEpsilon), Limit: 15}
}

func TestMerge_FiltersByRadius(t *testing.T) {
	local := []domain.LocalMatch{localAt("r-1", "Near", 1), localAt("r-2", "Far", 10)}
	external := []domain.Restaurant{externalAt("ya-1", "Edge", 4.9), externalAt("ya-2", "Outside", 5.2)}

	result := newMerger().Merge(moscow, 5000, "pizza", local, external, true)

	require.Len(t, result.Restaurants, 2)
	assert.Equal(t, "Near", result.Restaurants[0].Name)
	assert.Equal(t, "Edge", result.Restaurants[1].Name)
	assert.Equal(t, 2, result.Total)
	for _, hit := range result.Restaurants {
		assert.LessOrEqual(t, hit.DistanceKm, 5.0)
	}
}

func TestMerge_TruncatesAndCountsBeforeTruncation(t *testing.T) {
	var local []domain.LocalMatch
	for i := 0; i < 20; i++ {
		local = append(local, localAt(fmt.Sprintf("r-%d", i), fmt.Sprintf("Place %d", i), float64(20-i)*0.2))
	}

	result := newMerger().Merge(moscow, 5000, "pizza", local, nil, false)

	assert.Equal(t, 20, result.Total)
	require.Len(t, result.Restaurants, 15)
	for i := 1; i < len(result.Restaurants); i++ {
		assert.LessOrEqual(t, result.Restaurants[i-1].DistanceKm, result.Restaurants[i].DistanceKm)
	}
	assert.Equal(t, "Place 19", result.Restaurants[0].Name)
}

func TestMerge_LocalWinsTie(t *testing.T) {
	local := []domain.LocalMatch{localAt("r-1", "Local", 2)}
	external := []domain.Restaurant{externalAt("ya-1", "External", 2)}

	result := newMerger().Merge(moscow, 5000, "pizza", local, external, true)

	require.Len(t, result.Restaurants, 2)
	assert.Equal(t, domain.OriginLocal, result.Restaurants[0].Origin)
	assert.Equal(t, domain.OriginExternal, result.Restaurants[1].Origin)
}

func TestMerge_DropsDuplicates(t *testing.T) {
	stored := localAt("r-1", "Sushi Garden", 1)
	stored.ExternalID = "ya-1"

	sameID := externalAt("ya-9", "Renamed", 1.5)
	sameID.ID = "r-1"
	sameExternal := externalAt("ya-1", "Sushi Garden Moscow", 1.2)
	sameNameNear := externalAt("", "Sushi Garden", 1)
	sameNameNear.Location.Lat += 0.00005
	distinct := externalAt("ya-2", "Tanuki", 3)

	result := newMerger().Merge(moscow, 5000, "sushi", []domain.LocalMatch{stored}, []domain.Restaurant{sameID, sameExternal, sameNameNear, distinct}, true)

	require.Len(t, result.Restaurants, 2)
	assert.Equal(t, "r-1", result.Restaurants[0].ID)
	assert.Equal(t, "Tanuki", result.Restaurants[1].Name)
	assert.Equal(t, "sushi", result.Restaurants[1].MatchedDish)
}

func TestMerge_Provenance(t *testing.T) {
	local := []domain.LocalMatch{localAt("r-1", "Local", 1)}

	assert.Equal(t, domain.ProvenanceLocal, newMerger().Merge(moscow, 5000, "pizza", local, nil, false).Source)
	assert.Equal(t, domain.ProvenanceHybrid, newMerger().Merge(moscow, 5000, "pizza", local, nil, true).Source)
	assert.Equal(t, domain.ProvenanceHybrid, newMerger().Merge(moscow, 5000, "pizza", nil, nil, true).Source)
}

func TestMerge_Empty(t *testing.T) {
	result := newMerger().Merge(moscow, 5000, "pizza", nil, nil, false)

	assert.Empty(t, result.Restaurants)
	assert.Equal(t, 0, result.Total)
}
