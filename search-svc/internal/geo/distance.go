package geo

import (
	"fmt"
	"math"

	"foodfinder/search-svc/internal/domain"
)

const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between a and b in kilometers.
func Distance(a, b domain.Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func WithinRadius(distanceKm float64, radiusMeters int) bool {
	return distanceKm <= float64(radiusMeters)/1000
}

func FormatKm(distanceKm float64) string {
	return fmt.Sprintf("%.1f km", distanceKm)
}

func ValidCoordinates(c domain.Coordinates) bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
