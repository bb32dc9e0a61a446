package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodfinder/search-svc/internal/domain"
	"foodfinder/search-svc/internal/geo"
	"foodfinder/search-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	Search      service.SearchServiceInterface
	Restaurants service.RestaurantServiceInterface
	Food        service.FoodServiceInterface
}

func NewHandler(searchSvc service.SearchServiceInterface, restSvc service.RestaurantServiceInterface, foodSvc service.FoodServiceInterface) *Handler {
	return &Handler{
		Search:      searchSvc,
		Restaurants: restSvc,
		Food:        foodSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/debug/db-check", h.dbCheck).Methods("GET")

	r.HandleFunc("/api/restaurants/search", h.searchRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/nearby", h.nearbyRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/qrcode", h.getRestaurantQRCode).Methods("GET")

	r.HandleFunc("/api/food/dishes", h.getPopularDishes).Methods("GET")
	r.HandleFunc("/api/food/recognize", h.recognizeFood).Methods("POST")
}

type restaurantView struct {
	ID          string             `json:"id"`
	ExternalID  string             `json:"external_id"`
	Name        string             `json:"name"`
	Address     string             `json:"address"`
	Cuisine     string             `json:"cuisine"`
	Rating      float64            `json:"rating"`
	PriceRange  string             `json:"price_range"`
	Distance    string             `json:"distance"`
	Coordinates domain.Coordinates `json:"coordinates"`
	Phone       string             `json:"phone"`
	Hours       string             `json:"hours"`
	Source      string             `json:"source"`
	MatchedDish string             `json:"matched_dish,omitempty"`
}

type searchView struct {
	Dish         string             `json:"dish,omitempty"`
	Location     domain.Coordinates `json:"location"`
	Restaurants  []restaurantView   `json:"restaurants"`
	TotalResults int                `json:"total_results"`
	Source       string             `json:"source"`
	Degraded     bool               `json:"degraded"`
}

type restaurantDetails struct {
	domain.Restaurant
	Dishes []domain.DishAssociation `json:"dishes"`
}

type recognitionView struct {
	Predictions   []domain.Prediction `json:"predictions"`
	TopPrediction *domain.Prediction  `json:"top_prediction"`
	Search        *searchView         `json:"search,omitempty"`
}

func newSearchView(result *domain.SearchResult) searchView {
	view := searchView{
		Dish:         result.Dish,
		Location:     result.Location,
		Restaurants:  make([]restaurantView, 0, len(result.Restaurants)),
		TotalResults: result.TotalResults,
		Source:       result.Source,
		Degraded:     result.Degraded,
	}
	for _, hit := range result.Restaurants {
		source := hit.Source
		if hit.Origin == domain.OriginLocal {
			source = domain.SourceLocalDB
		}
		view.Restaurants = append(view.Restaurants, restaurantView{
			ID:          hit.ID,
			ExternalID:  hit.ExternalID,
			Name:        hit.Name,
			Address:     hit.Address,
			Cuisine:     hit.Cuisine,
			Rating:      hit.Rating,
			PriceRange:  hit.PriceRange,
			Distance:    geo.FormatKm(hit.DistanceKm),
			Coordinates: hit.Location,
			Phone:       hit.Phone,
			Hours:       hit.Hours,
			Source:      source,
			MatchedDish: hit.MatchedDish,
		})
	}
	return view
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "search-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) dbCheck(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Restaurants.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "connected",
		"restaurants_count": stats.Restaurants,
		"dishes_count":      stats.DishAssociations,
	})
}

func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query, err := service.ParseSearchQuery(q.Get("dish"), q.Get("lat"), q.Get("lon"), q.Get("radius"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.Search.Search(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSearchView(result))
}

func (h *Handler) nearbyRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query, err := service.ParseSearchQuery("", q.Get("lat"), q.Get("lon"), q.Get("radius"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.Search.Nearby(r.Context(), query.Location, query.RadiusMeters)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSearchView(result))
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, dishes, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	if dishes == nil {
		dishes = []domain.DishAssociation{}
	}
	writeJSON(w, http.StatusOK, restaurantDetails{Restaurant: *rest, Dishes: dishes})
}

func (h *Handler) getRestaurantQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Restaurants.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *Handler) getPopularDishes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Food.PopularDishes())
}

func (h *Handler) recognizeFood(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "File too large or malformed form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		http.Error(w, "Invalid file type. Only images are allowed", http.StatusBadRequest)
		return
	}

	recognition, err := h.Food.Recognize(r.Context(), header.Filename, contentType, file)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view := recognitionView{Predictions: recognition.Predictions, TopPrediction: recognition.TopPrediction}
	if view.Predictions == nil {
		view.Predictions = []domain.Prediction{}
	}

	if chain, _ := strconv.ParseBool(r.URL.Query().Get("search")); chain && recognition.TopPrediction != nil {
		result, err := h.chainSearch(r.Context(), r, recognition.TopPrediction.Food)
		if err != nil {
			writeError(w, r, err)
			return
		}
		searchResult := newSearchView(result)
		view.Search = &searchResult
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) chainSearch(ctx context.Context, r *http.Request, dish string) (*domain.SearchResult, error) {
	q := r.URL.Query()
	query, err := service.ParseSearchQuery(dish, q.Get("lat"), q.Get("lon"), q.Get("radius"))
	if err != nil {
		return nil, err
	}
	return h.Search.Search(ctx, query)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		http.Error(w, validation.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrRestaurantNotFound):
		http.Error(w, "Restaurant not found", http.StatusNotFound)
	case errors.Is(err, service.ErrRecognitionUnavailable):
		logrus.WithError(err).WithField("path", r.URL.Path).Warn("recognition failed")
		http.Error(w, "Food recognition service unavailable", http.StatusBadGateway)
	case errors.Is(err, context.Canceled):
		logrus.WithField("path", r.URL.Path).Info("request cancelled by client")
	default:
		logrus.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
