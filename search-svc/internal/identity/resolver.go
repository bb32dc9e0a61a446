package identity

import (
	"context"
	"math"

	"foodfinder/search-svc/internal/domain"
)

const DefaultEpsilon = 0.0001

// Lookup finds stored restaurants for the two identity tiers. Both methods
// return (nil, nil) when nothing matches.
type Lookup interface {
	FindByExternalID(ctx context.Context, externalID string) (*domain.Restaurant, error)
	FindByNameNear(ctx context.Context, name string, at domain.Coordinates, epsilon float64) (*domain.Restaurant, error)
}

type Resolver struct {
	Epsilon float64
}

func NewResolver(epsilon float64) *Resolver {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &Resolver{Epsilon: epsilon}
}

// Resolve returns the stored restaurant the candidate denotes, or nil when the
// candidate is new. The external id is tried first, then the exact name with
// coordinates inside the epsilon box.
func (r *Resolver) Resolve(ctx context.Context, lookup Lookup, candidate domain.Restaurant) (*domain.Restaurant, error) {
	if candidate.ExternalID != "" {
		existing, err := lookup.FindByExternalID(ctx, candidate.ExternalID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	return lookup.FindByNameNear(ctx, candidate.Name, candidate.Location, r.Epsilon)
}

// Same applies the identity tiers to two in-memory records.
func (r *Resolver) Same(a, b domain.Restaurant) bool {
	if a.ID != "" && a.ID == b.ID {
		return true
	}
	if a.ExternalID != "" && a.ExternalID == b.ExternalID {
		return true
	}
	return r.Near(a, b)
}

func (r *Resolver) Near(a, b domain.Restaurant) bool {
	return a.Name == b.Name &&
		math.Abs(a.Location.Lat-b.Location.Lat) <= r.Epsilon &&
		math.Abs(a.Location.Lon-b.Location.Lon) <= r.Epsilon
}
