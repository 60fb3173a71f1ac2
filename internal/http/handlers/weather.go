package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"weathervault/internal/http/respond"
	"weathervault/internal/models/dto"
	"weathervault/internal/weather"
)

// WeatherHandler exposes the fetch-and-refresh and cached-read endpoints.
type WeatherHandler struct {
	service *weather.Service
	logger  *zap.Logger
}

// NewWeatherHandler constructs the handler.
func NewWeatherHandler(service *weather.Service, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{service: service, logger: logger}
}

// Fetch handles POST /api/weather: calls the upstream provider for the
// requested city and stores a new reading. The service's own error wrapping
// already encodes the root cause, so any failure maps straight to a 500.
func (h *WeatherHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	var req dto.FetchWeatherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		respond.Error(w, http.StatusBadRequest, "City name is required")
		return
	}

	reading, err := h.service.FetchAndStore(r.Context(), req.City)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, reading)
}

// Latest handles GET /api/weather/{city}: returns the most recent cached
// reading, timestamp included, without any upstream call.
func (h *WeatherHandler) Latest(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	if strings.TrimSpace(city) == "" {
		respond.Error(w, http.StatusBadRequest, "City name is required")
		return
	}

	reading, err := h.service.Latest(r.Context(), city)
	if err != nil {
		respond.Error(w, http.StatusNotFound, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, reading)
}
