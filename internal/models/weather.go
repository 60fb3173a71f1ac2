package models

import "time"

// WeatherReading is one persisted weather observation for a city. Readings
// are append-only; the most recent timestamp wins at read time. Timestamp is
// assigned by the store at insertion, so a reading coming straight from the
// upstream provider serializes without it.
type WeatherReading struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"`
	Humidity    float64   `json:"humidity"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
