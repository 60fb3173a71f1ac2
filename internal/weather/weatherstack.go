package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"weathervault/internal/models"
	"weathervault/internal/observability"
)

// WeatherstackClient implements Provider against the weatherstack current
// conditions endpoint.
type WeatherstackClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewWeatherstackClient constructs a client. baseURL is the current
// conditions endpoint; pass an empty string for the production default.
func NewWeatherstackClient(client *http.Client, apiKey, baseURL string) *WeatherstackClient {
	if baseURL == "" {
		baseURL = "http://api.weatherstack.com/current"
	}
	return &WeatherstackClient{client: client, apiKey: apiKey, baseURL: baseURL}
}

// Current fetches and normalizes the current conditions for city. A
// payload-level error field from the provider surfaces as an error carrying
// the provider's own message.
func (c *WeatherstackClient) Current(ctx context.Context, city string) (models.WeatherReading, error) {
	values := url.Values{}
	values.Set("access_key", c.apiKey)
	values.Set("query", city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return models.WeatherReading{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		observability.ProviderCallsTotal.WithLabelValues("error").Inc()
		return models.WeatherReading{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		observability.ProviderCallsTotal.WithLabelValues("error").Inc()
		return models.WeatherReading{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload struct {
		Error *struct {
			Info string `json:"info"`
		} `json:"error"`
		Location struct {
			Name string `json:"name"`
		} `json:"location"`
		Current struct {
			Temperature         float64  `json:"temperature"`
			WeatherDescriptions []string `json:"weather_descriptions"`
			Humidity            float64  `json:"humidity"`
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		observability.ProviderCallsTotal.WithLabelValues("error").Inc()
		return models.WeatherReading{}, err
	}

	// weatherstack reports failures as a 200 with an error object.
	if payload.Error != nil {
		observability.ProviderCallsTotal.WithLabelValues("error").Inc()
		return models.WeatherReading{}, errors.New(payload.Error.Info)
	}

	description := ""
	if len(payload.Current.WeatherDescriptions) > 0 {
		description = payload.Current.WeatherDescriptions[0]
	}

	observability.ProviderCallsTotal.WithLabelValues("success").Inc()

	return models.WeatherReading{
		City:        payload.Location.Name,
		Temperature: payload.Current.Temperature,
		Description: description,
		Humidity:    payload.Current.Humidity,
	}, nil
}
