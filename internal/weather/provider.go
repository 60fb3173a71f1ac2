package weather

import (
	"context"

	"weathervault/internal/models"
)

// Provider abstracts the upstream weather data source. Implementations
// return a normalized reading without a timestamp; persistence assigns it.
type Provider interface {
	Current(ctx context.Context, city string) (models.WeatherReading, error)
}
