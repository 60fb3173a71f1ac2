package dto

type FetchWeatherRequest struct {
	City string `json:"city" validate:"required"`
}
