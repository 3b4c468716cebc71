package service

import (
	"context"

	"weatherdash.app/cities"
	"weatherdash.app/models"
)

// WeatherServiceInterface defines weather service operations
type WeatherServiceInterface interface {
	GetWeatherData(ctx context.Context, cityID string) (*models.WeatherData, error)
	GetCurrentWeather(ctx context.Context, cityID string) (*models.CurrentWeather, error)
	Cities() []cities.City
}
