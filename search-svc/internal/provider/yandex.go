package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"foodfinder/search-svc/internal/domain"
	"foodfinder/search-svc/internal/geo"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	UnknownName    = "Unknown Restaurant"
	UnknownAddress = "Address not available"

	kmPerDegree = 111.195
	minSpan     = 0.01
)

var (
	ErrProviderUnavailable = errors.New("place provider unavailable")
	ErrProviderResponse    = errors.New("place provider returned an unusable response")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type YandexConfig struct {
	BaseURL string
	APIKey  string
	Results int
	Timeout time.Duration
	Lang    string
}

type YandexClient struct {
	config     YandexConfig
	client     HTTPClient
	localizer  *Localizer
	classifier *CuisineClassifier
	group      singleflight.Group

	mu      sync.Mutex
	flights map[string]*flight
}

// flight is the shared request context of one deduplicated provider call. It
// is cancelled as soon as its last waiter leaves.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

func NewYandexClient(config YandexConfig, client HTTPClient, localizer *Localizer, classifier *CuisineClassifier) *YandexClient {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.Results <= 0 {
		config.Results = 20
	}
	if config.Lang == "" {
		config.Lang = "ru_RU"
	}
	if client == nil {
		client = &http.Client{}
	}
	if localizer == nil {
		localizer = NewLocalizer(nil)
	}
	if classifier == nil {
		classifier = NewCuisineClassifier(nil)
	}
	return &YandexClient{
		config:     config,
		client:     client,
		localizer:  localizer,
		classifier: classifier,
		flights:    make(map[string]*flight),
	}
}

// Search issues one provider request for dish around center and returns the
// normalized candidates. Identical concurrent searches share one request; a
// caller whose context ends stops waiting right away, and the request itself
// is cancelled once no caller is left waiting for it.
func (c *YandexClient) Search(ctx context.Context, dish string, center domain.Coordinates, radiusMeters int) ([]domain.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	text := c.localizer.Localize(dish)
	key := CacheKey(text, center, radiusMeters)

	shared := c.join(ctx, key)
	defer c.leave(key, shared)

	ch := c.group.DoChan(key, func() (interface{}, error) {
		return c.fetch(shared.ctx, text, center, radiusMeters)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		results := res.Val.([]domain.Restaurant)
		return append([]domain.Restaurant(nil), results...), nil
	}
}

func (c *YandexClient) join(ctx context.Context, key string) *flight {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.flights[key]
	if !ok {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.config.Timeout)
		f = &flight{ctx: fetchCtx, cancel: cancel}
		c.flights[key] = f
	}
	f.waiters++
	return f
}

func (c *YandexClient) leave(key string, f *flight) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if c.flights[key] == f {
		delete(c.flights, key)
	}
	// Later callers must not join a request that was just cancelled.
	c.group.Forget(key)
}

func (c *YandexClient) fetch(ctx context.Context, text string, center domain.Coordinates, radiusMeters int) ([]domain.Restaurant, error) {
	spanLat, spanLon := span(center, radiusMeters)

	params := url.Values{}
	params.Set("apikey", c.config.APIKey)
	params.Set("text", text)
	params.Set("lang", c.config.Lang)
	params.Set("ll", formatPair(center.Lon, center.Lat))
	params.Set("spn", formatPair(spanLon, spanLat))
	params.Set("type", "biz")
	params.Set("results", strconv.Itoa(c.config.Results))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create provider request: %w", err)
	}

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrProviderResponse, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, ctx.Err())
		}
		return nil, fmt.Errorf("%w: decode: %w", ErrProviderResponse, err)
	}

	restaurants := c.normalize(payload, center)
	logrus.WithFields(logrus.Fields{
		"text":     text,
		"features": len(payload.Features),
		"kept":     len(restaurants),
		"took_ms":  time.Since(started).Milliseconds(),
	}).Debug("provider search completed")

	return restaurants, nil
}

func (c *YandexClient) normalize(payload featureCollection, center domain.Coordinates) []domain.Restaurant {
	restaurants := make([]domain.Restaurant, 0, len(payload.Features))
	for _, f := range payload.Features {
		location, ok := f.Geometry.location()
		if !ok {
			continue
		}

		meta := f.Properties.CompanyMetaData
		name := firstNonEmpty(meta.Name, f.Properties.Name, UnknownName)

		rating := SynthesizeRating(name)
		if meta.Rating != nil && *meta.Rating > 0 {
			rating = *meta.Rating
		}

		var phone string
		if len(meta.Phones) > 0 {
			phone = meta.Phones[0].Formatted
		}

		restaurants = append(restaurants, domain.Restaurant{
			ExternalID: strings.TrimSpace(meta.ID),
			Name:       name,
			Address:    firstNonEmpty(meta.Address, f.Properties.Description, UnknownAddress),
			Location:   location,
			Cuisine:    c.classifier.Classify(meta.categoryLabels()),
			Phone:      phone,
			Hours:      meta.Hours.Text,
			Rating:     rating,
			PriceRange: SynthesizePrice(name),
			Source:     domain.SourceYandex,
			DistanceKm: geo.Distance(center, location),
		})
	}
	return restaurants
}

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Geometry   geometry `json:"geometry"`
	Properties struct {
		Name            string          `json:"name"`
		Description     string          `json:"description"`
		CompanyMetaData companyMetaData `json:"CompanyMetaData"`
	} `json:"properties"`
}

type geometry struct {
	Coordinates []json.RawMessage `json:"coordinates"`
}

// location reads a GeoJSON [lon, lat] pair.
func (g geometry) location() (domain.Coordinates, bool) {
	if len(g.Coordinates) != 2 {
		return domain.Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(string(g.Coordinates[0]), 64)
	if err != nil {
		return domain.Coordinates{}, false
	}
	lat, err := strconv.ParseFloat(string(g.Coordinates[1]), 64)
	if err != nil {
		return domain.Coordinates{}, false
	}
	location := domain.Coordinates{Lat: lat, Lon: lon}
	return location, geo.ValidCoordinates(location)
}

type companyMetaData struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Rating  *float64 `json:"rating"`
	Phones  []struct {
		Formatted string `json:"formatted"`
	} `json:"Phones"`
	Hours struct {
		Text string `json:"text"`
	} `json:"Hours"`
	Categories []struct {
		Class string `json:"class"`
		Name  string `json:"name"`
	} `json:"Categories"`
}

func (m companyMetaData) categoryLabels() []string {
	labels := make([]string, 0, len(m.Categories)*2)
	for _, category := range m.Categories {
		labels = append(labels, category.Name, category.Class)
	}
	return labels
}

// CacheKey identifies a provider query independent of small floating point noise.
func CacheKey(text string, center domain.Coordinates, radiusMeters int) string {
	return fmt.Sprintf("provider:%s:%.4f:%.4f:%d", strings.ToLower(strings.TrimSpace(text)), center.Lat, center.Lon, radiusMeters)
}

func span(center domain.Coordinates, radiusMeters int) (float64, float64) {
	spanLat := 2 * float64(radiusMeters) / 1000 / kmPerDegree
	spanLon := spanLat
	if cos := math.Cos(center.Lat * math.Pi / 180); cos > 0.01 {
		spanLon = spanLat / cos
	}
	return math.Max(spanLat, minSpan), math.Max(spanLon, minSpan)
}

func formatPair(a, b float64) string {
	return strconv.FormatFloat(a, 'f', 6, 64) + "," + strconv.FormatFloat(b, 'f', 6, 64)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
