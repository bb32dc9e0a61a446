package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	httpapi "foodfinder/search-svc/internal/api/http"
	"foodfinder/search-svc/internal/domain"
	"foodfinder/search-svc/internal/mocks"
	"foodfinder/search-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var moscow = domain.Coordinates{Lat: 55.7558, Lon: 37.6173}

type fixture struct {
	search      *mocks.SearchServiceInterface
	restaurants *mocks.RestaurantServiceInterface
	food        *mocks.FoodServiceInterface
	router      *mux.Router
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		search:      mocks.NewSearchServiceInterface(t),
		restaurants: mocks.NewRestaurantServiceInterface(t),
		food:        mocks.NewFoodServiceInterface(t),
		router:      mux.NewRouter(),
	}
	httpapi.NewHandler(f.search, f.restaurants, f.food).RegisterRoutes(f.router)
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func sushiResult() *domain.SearchResult {
	return &domain.SearchResult{
		Dish:     "sushi",
		Location: moscow,
		Restaurants: []domain.RankedRestaurant{
			{
				Restaurant:  domain.Restaurant{ID: "r-1", Name: "Sushi Garden", Source: domain.SourceYandex, DistanceKm: 0.4966, Location: domain.Coordinates{Lat: 55.76, Lon: 37.62}},
				MatchedDish: "sushi",
				Origin:      domain.OriginLocal,
			},
			{
				Restaurant:  domain.Restaurant{ID: "r-2", ExternalID: "ya-1", Name: "Tanuki", Source: domain.SourceYandex, DistanceKm: 1.26},
				MatchedDish: "sushi",
				Origin:      domain.OriginExternal,
			},
		},
		TotalResults: 2,
		Source:       domain.ProvenanceHybrid,
	}
}

func TestSearchHandler(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		setupMock func(*mocks.SearchServiceInterface)
		wantCode  int
	}{
		{
			name: "success",
			url:  "/api/restaurants/search?dish=sushi&lat=55.7558&lon=37.6173&radius=5000",
			setupMock: func(m *mocks.SearchServiceInterface) {
				m.On("Search", mock.Anything, domain.SearchQuery{Dish: "sushi", Location: &moscow, RadiusMeters: 5000}).
					Return(sushiResult(), nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "lat without lon",
			url:       "/api/restaurants/search?dish=sushi&lat=55.7",
			setupMock: func(m *mocks.SearchServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "empty dish rejected by service",
			url:  "/api/restaurants/search?dish=",
			setupMock: func(m *mocks.SearchServiceInterface) {
				m.On("Search", mock.Anything, domain.SearchQuery{}).
					Return(nil, domain.NewValidationError("dish", "must not be empty")).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "store unavailable",
			url:  "/api/restaurants/search?dish=pizza",
			setupMock: func(m *mocks.SearchServiceInterface) {
				m.On("Search", mock.Anything, domain.SearchQuery{Dish: "pizza"}).
					Return(nil, service.ErrStoreUnavailable).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			testCase.setupMock(f.search)

			w := f.do(httptest.NewRequest(http.MethodGet, testCase.url, nil))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestSearchHandler_ResponseShape(t *testing.T) {
	f := newFixture(t)
	f.search.On("Search", mock.Anything, domain.SearchQuery{Dish: "sushi"}).Return(sushiResult(), nil).Once()

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/restaurants/search?dish=sushi", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body struct {
		Dish        string `json:"dish"`
		Restaurants []struct {
			ID          string `json:"id"`
			ExternalID  string `json:"external_id"`
			Distance    string `json:"distance"`
			Source      string `json:"source"`
			MatchedDish string `json:"matched_dish"`
		} `json:"restaurants"`
		TotalResults int    `json:"total_results"`
		Source       string `json:"source"`
		Degraded     bool   `json:"degraded"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))

	assert.Equal(t, "sushi", body.Dish)
	assert.Equal(t, 2, body.TotalResults)
	assert.Equal(t, domain.ProvenanceHybrid, body.Source)
	assert.False(t, body.Degraded)
	require.Len(t, body.Restaurants, 2)
	assert.Equal(t, "0.5 km", body.Restaurants[0].Distance)
	assert.Equal(t, domain.SourceLocalDB, body.Restaurants[0].Source)
	assert.Equal(t, "1.3 km", body.Restaurants[1].Distance)
	assert.Equal(t, domain.SourceYandex, body.Restaurants[1].Source)
	assert.Equal(t, "ya-1", body.Restaurants[1].ExternalID)
}

func TestSearchHandler_RestaurantKeysAlwaysPresent(t *testing.T) {
	f := newFixture(t)
	f.search.On("Search", mock.Anything, domain.SearchQuery{Dish: "sushi"}).Return(sushiResult(), nil).Once()

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/restaurants/search?dish=sushi", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Restaurants []map[string]json.RawMessage `json:"restaurants"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.NotEmpty(t, body.Restaurants)

	local := body.Restaurants[0]
	for _, key := range []string{"id", "external_id", "name", "address", "cuisine", "rating", "price_range", "distance", "coordinates", "phone", "hours", "source"} {
		assert.Contains(t, local, key)
	}
	assert.JSONEq(t, `""`, string(local["phone"]))
	assert.JSONEq(t, `""`, string(local["hours"]))
}

func TestNearbyHandler(t *testing.T) {
	f := newFixture(t)
	f.search.On("Nearby", mock.Anything, &moscow, 2000).
		Return(&domain.SearchResult{Location: moscow, Source: domain.ProvenanceLocal}, nil).Once()

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/restaurants/nearby?lat=55.7558&lon=37.6173&radius=2000", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"location":{"lat":55.7558,"lon":37.6173},"restaurants":[],"total_results":0,"source":"local_database","degraded":false}`, w.Body.String())
}

func TestGetRestaurantHandler(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		mockRest  *domain.Restaurant
		mockError error
		wantCode  int
	}{
		{
			name:     "found",
			id:       "r-1",
			mockRest: &domain.Restaurant{ID: "r-1", Name: "Sushi Garden"},
			wantCode: http.StatusOK,
		},
		{
			name:      "not found",
			id:        "missing",
			mockError: domain.ErrRestaurantNotFound,
			wantCode:  http.StatusNotFound,
		},
		{
			name:      "store failure",
			id:        "r-1",
			mockError: errors.New("db down"),
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			f.restaurants.On("Get", mock.Anything, testCase.id).Return(testCase.mockRest, nil, testCase.mockError).Once()

			w := f.do(httptest.NewRequest(http.MethodGet, "/api/restaurants/"+testCase.id, nil))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"dishes":[]`)
			}
		})
	}
}

func TestGetRestaurantQRCodeHandler(t *testing.T) {
	f := newFixture(t)
	f.restaurants.On("QRCode", mock.Anything, "r-1").Return([]byte("\x89PNG"), nil).Once()

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/restaurants/r-1/qrcode", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", w.Body.String())
}

func TestDBCheckHandler(t *testing.T) {
	f := newFixture(t)
	f.restaurants.On("Stats", mock.Anything).Return(domain.StoreStats{Restaurants: 2, DishAssociations: 3}, nil).Once()

	w := f.do(httptest.NewRequest(http.MethodGet, "/debug/db-check", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"connected","restaurants_count":2,"dishes_count":3}`, w.Body.String())
}

func TestPopularDishesHandler(t *testing.T) {
	f := newFixture(t)
	f.food.On("PopularDishes").Return([]domain.PopularDish{{Name: "Pizza", Cuisine: "Italian"}}).Once()

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/food/dishes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"Pizza","cuisine":"Italian"}]`, w.Body.String())
}

func imageRequest(t *testing.T, url, contentType string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="dish.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestRecognizeHandler(t *testing.T) {
	top := &domain.Prediction{Food: "sushi", Confidence: 0.9}
	recognition := &domain.Recognition{Predictions: []domain.Prediction{*top}, TopPrediction: top}

	tests := []struct {
		name        string
		url         string
		contentType string
		setupMock   func(*fixture)
		wantCode    int
		wantSearch  bool
	}{
		{
			name:        "recognized",
			url:         "/api/food/recognize",
			contentType: "image/jpeg",
			setupMock: func(f *fixture) {
				f.food.On("Recognize", mock.Anything, "dish.jpg", "image/jpeg", mock.Anything).Return(recognition, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:        "recognized and searched",
			url:         "/api/food/recognize?search=true&lat=55.7558&lon=37.6173",
			contentType: "image/jpeg",
			setupMock: func(f *fixture) {
				f.food.On("Recognize", mock.Anything, "dish.jpg", "image/jpeg", mock.Anything).Return(recognition, nil).Once()
				f.search.On("Search", mock.Anything, domain.SearchQuery{Dish: "sushi", Location: &moscow}).Return(sushiResult(), nil).Once()
			},
			wantCode:   http.StatusOK,
			wantSearch: true,
		},
		{
			name:        "not an image",
			url:         "/api/food/recognize",
			contentType: "text/plain",
			setupMock:   func(f *fixture) {},
			wantCode:    http.StatusBadRequest,
		},
		{
			name:        "ml service down",
			url:         "/api/food/recognize",
			contentType: "image/png",
			setupMock: func(f *fixture) {
				f.food.On("Recognize", mock.Anything, "dish.jpg", "image/png", mock.Anything).
					Return(nil, service.ErrRecognitionUnavailable).Once()
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			testCase.setupMock(f)

			w := f.do(imageRequest(t, testCase.url, testCase.contentType))

			require.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode != http.StatusOK {
				return
			}
			var body map[string]json.RawMessage
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			_, hasSearch := body["search"]
			assert.Equal(t, testCase.wantSearch, hasSearch)
			assert.Contains(t, string(body["top_prediction"]), "sushi")
		})
	}
}

func TestRecognizeHandler_MissingFile(t *testing.T) {
	f := newFixture(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("note", "no image"))
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/food/recognize", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := f.do(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthHandler(t *testing.T) {
	f := newFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"search-svc"`)
}

func TestNewRouter_CORS(t *testing.T) {
	f := newFixture(t)
	handler := httpapi.NewRouter(httpapi.NewHandler(f.search, f.restaurants, f.food), []string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(context.Background())
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
