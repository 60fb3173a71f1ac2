package storage

import (
	"context"
	"errors"

	"weathervault/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by the auth handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// ReadingStore persists weather readings keyed by city. Readings are
// append-only: InsertReading never overwrites, and LatestByCity resolves
// concurrent inserts by timestamp ordering.
type ReadingStore interface {
	InsertReading(ctx context.Context, reading models.WeatherReading) (models.WeatherReading, error)
	LatestByCity(ctx context.Context, city string) (models.WeatherReading, error)
}
