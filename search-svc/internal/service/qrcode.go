package service

import (
	"fmt"

	"foodfinder/search-svc/internal/domain"

	"github.com/skip2/go-qrcode"
)

const DefaultMapsURL = "https://yandex.ru/maps/"

type DefaultQRGenerator struct {
	MapsURL string
}

func (g DefaultQRGenerator) RestaurantQR(rest domain.Restaurant) ([]byte, error) {
	return qrcode.Encode(g.MapLink(rest), qrcode.Medium, 256)
}

// MapLink points the map at the restaurant with a marker.
func (g DefaultQRGenerator) MapLink(rest domain.Restaurant) string {
	base := g.MapsURL
	if base == "" {
		base = DefaultMapsURL
	}
	return fmt.Sprintf("%s?pt=%.6f,%.6f&z=17&l=map", base, rest.Location.Lon, rest.Location.Lat)
}
