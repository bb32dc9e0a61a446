package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodfinder/analytics-svc/internal/domain"
	"foodfinder/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/analytics/dishes/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/analytics/dishes/top-alltime", h.getTopAllTime).Methods("GET")
	r.HandleFunc("/api/analytics/dishes/{dish}/coverage", h.getDishCoverage).Methods("GET")
	r.HandleFunc("/api/analytics/sources", h.getSourceBreakdown).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":    "healthy",
		"service":   "analytics-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopToday(r.Context())
	if err != nil {
		logrus.WithError(err).Warn("top today unavailable")
		writeJSON(w, []domain.DishScore{})
		return
	}
	writeJSON(w, data)
}

func (h *Handler) getTopAllTime(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopAllTime(r.Context())
	if err != nil {
		logrus.WithError(err).Warn("top all-time unavailable")
		writeJSON(w, []domain.DishScore{})
		return
	}
	writeJSON(w, data)
}

func (h *Handler) getSourceBreakdown(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.SourceBreakdown(r.Context(), r.URL.Query().Get("date"))
	if errors.Is(err, domain.ErrInvalidDate) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		logrus.WithError(err).Error("source breakdown failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, data)
}

func (h *Handler) getDishCoverage(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.DishCoverage(r.Context(), mux.Vars(r)["dish"])
	if err != nil {
		logrus.WithError(err).Error("dish coverage failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, data)
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("failed to encode response")
	}
}
