package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"weathervault/internal/models"
	"weathervault/internal/storage"
)

// InsertReading appends a reading for a city. The timestamp is assigned by
// the database at insertion; the stored reading is returned with it set.
func (s *Store) InsertReading(ctx context.Context, reading models.WeatherReading) (models.WeatherReading, error) {
	const query = `
		INSERT INTO weather_readings (city, temperature, description, humidity)
		VALUES ($1, $2, $3, $4)
		RETURNING city, temperature, description, humidity, recorded_at;`

	row := s.pool.QueryRow(ctx, query,
		reading.City, reading.Temperature, reading.Description, reading.Humidity)
	return scanReading(row)
}

// LatestByCity returns the single reading with the newest timestamp for the
// city, or storage.ErrNotFound when no reading has ever been stored for it.
func (s *Store) LatestByCity(ctx context.Context, city string) (models.WeatherReading, error) {
	const query = `
		SELECT city, temperature, description, humidity, recorded_at
		FROM weather_readings
		WHERE city = $1
		ORDER BY recorded_at DESC
		LIMIT 1;`

	return scanReading(s.pool.QueryRow(ctx, query, city))
}

func scanReading(row pgx.Row) (models.WeatherReading, error) {
	var r models.WeatherReading
	if err := row.Scan(&r.City, &r.Temperature, &r.Description, &r.Humidity, &r.Timestamp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.WeatherReading{}, storage.ErrNotFound
		}
		return models.WeatherReading{}, err
	}
	return r, nil
}
