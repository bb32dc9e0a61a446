package service

import (
	"sort"

	"foodfinder/search-svc/internal/domain"
	"foodfinder/search-svc/internal/geo"
	"foodfinder/search-svc/internal/identity"
)

type MergeResult struct {
	Restaurants []domain.RankedRestaurant
	Total       int
	Source      string
}

// Merger combines local matches and provider candidates into one ranked list.
type Merger struct {
	Resolver *identity.Resolver
	Limit    int
}

// Merge keeps the entries inside the radius, drops provider candidates that
// denote a restaurant already listed, sorts by distance and truncates to Limit.
// The sort is stable and local entries come first, so a local entry wins a tie.
// Total counts the entries before truncation.
func (m Merger) Merge(center domain.Coordinates, radiusMeters int, dish string, local []domain.LocalMatch, external []domain.Restaurant, externalConsulted bool) MergeResult {
	hits := make([]domain.RankedRestaurant, 0, len(local)+len(external))

	for _, match := range local {
		distance := geo.Distance(center, match.Location)
		if !geo.WithinRadius(distance, radiusMeters) {
			continue
		}
		rest := match.Restaurant
		rest.DistanceKm = distance
		hits = append(hits, domain.RankedRestaurant{
			Restaurant:  rest,
			MatchedDish: match.DishName,
			Origin:      domain.OriginLocal,
		})
	}

	for _, candidate := range external {
		distance := geo.Distance(center, candidate.Location)
		if !geo.WithinRadius(distance, radiusMeters) || m.listed(hits, candidate) {
			continue
		}
		candidate.DistanceKm = distance
		hits = append(hits, domain.RankedRestaurant{
			Restaurant:  candidate,
			MatchedDish: dish,
			Origin:      domain.OriginExternal,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].DistanceKm < hits[j].DistanceKm
	})

	result := MergeResult{Total: len(hits), Source: domain.ProvenanceLocal}
	if externalConsulted {
		result.Source = domain.ProvenanceHybrid
	}
	if m.Limit > 0 && len(hits) > m.Limit {
		hits = hits[:m.Limit]
	}
	result.Restaurants = hits
	return result
}

func (m Merger) listed(hits []domain.RankedRestaurant, candidate domain.Restaurant) bool {
	for _, hit := range hits {
		if m.Resolver.Same(hit.Restaurant, candidate) {
			return true
		}
	}
	return false
}
