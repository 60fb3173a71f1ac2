package weather

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"weathervault/internal/models"
	"weathervault/internal/storage"
)

// ErrNoData is returned by Latest when a city has no cached reading.
var ErrNoData = errors.New("No weather data found for this city")

// Service composes the upstream provider with the reading store. It owns the
// fetch-and-refresh path and the read-only cache lookup.
type Service struct {
	provider Provider
	readings storage.ReadingStore
	logger   *zap.Logger
}

// NewService creates a Service with its collaborators.
func NewService(provider Provider, readings storage.ReadingStore, logger *zap.Logger) *Service {
	return &Service{provider: provider, readings: readings, logger: logger}
}

// FetchAndStore calls the upstream provider for city, persists the
// normalized reading, and returns it without the store-assigned timestamp.
//
// Every failure on this path, whether transport, provider payload, or
// persistence, is wrapped into the same message. Clients only ever see
// "Failed to fetch weather data: <reason>".
func (s *Service) FetchAndStore(ctx context.Context, city string) (models.WeatherReading, error) {
	reading, err := s.provider.Current(ctx, city)
	if err != nil {
		s.logger.Warn("upstream fetch failed", zap.String("city", city), zap.Error(err))
		return models.WeatherReading{}, fetchFailed(err)
	}

	if _, err := s.readings.InsertReading(ctx, reading); err != nil {
		s.logger.Error("persist reading failed", zap.String("city", reading.City), zap.Error(err))
		return models.WeatherReading{}, fetchFailed(err)
	}

	return reading, nil
}

// Latest returns the most recent persisted reading for city, timestamp
// included. It never calls upstream; it only reflects what a prior
// FetchAndStore cached.
func (s *Service) Latest(ctx context.Context, city string) (models.WeatherReading, error) {
	reading, err := s.readings.LatestByCity(ctx, city)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.WeatherReading{}, ErrNoData
		}
		return models.WeatherReading{}, err
	}
	return reading, nil
}

func fetchFailed(err error) error {
	return fmt.Errorf("Failed to fetch weather data: %v", err)
}
