package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherstackCurrent(t *testing.T) {
	var gotQuery, gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.URL.Query().Get("access_key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"location": {"name": "London"},
			"current": {"temperature": 15, "weather_descriptions": ["Partly cloudy"], "humidity": 70}
		}`))
	}))
	defer ts.Close()

	client := NewWeatherstackClient(ts.Client(), "test-key", ts.URL)

	reading, err := client.Current(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, "London", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "London", reading.City)
	assert.Equal(t, 15.0, reading.Temperature)
	assert.Equal(t, "Partly cloudy", reading.Description)
	assert.Equal(t, 70.0, reading.Humidity)
	assert.True(t, reading.Timestamp.IsZero())
}

func TestWeatherstackCurrent_PayloadError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// weatherstack signals failure inside a 200 response.
		_, _ = w.Write([]byte(`{"success": false, "error": {"code": 615, "info": "Your API request failed. Please try again or contact support."}}`))
	}))
	defer ts.Close()

	client := NewWeatherstackClient(ts.Client(), "test-key", ts.URL)

	_, err := client.Current(context.Background(), "nowhere")
	require.Error(t, err)
	assert.Equal(t, "Your API request failed. Please try again or contact support.", err.Error())
}

func TestWeatherstackCurrent_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewWeatherstackClient(ts.Client(), "test-key", ts.URL)

	_, err := client.Current(context.Background(), "London")
	require.Error(t, err)
	assert.Equal(t, "unexpected status code: 502", err.Error())
}

func TestWeatherstackCurrent_DefaultBaseURL(t *testing.T) {
	client := NewWeatherstackClient(http.DefaultClient, "k", "")
	assert.Equal(t, "http://api.weatherstack.com/current", client.baseURL)
}
