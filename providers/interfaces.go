package providers

import (
	"context"

	"weatherdash.app/models"
)

// WeatherGateway fetches and normalizes weather data for one city. The two
// fetch operations are independent; GetWeatherData runs them concurrently
// and fails as a whole if either fails.
type WeatherGateway interface {
	FetchCurrentWeather(ctx context.Context, city string) (*models.CurrentWeather, error)
	FetchForecast(ctx context.Context, city string) (*models.ForecastBundle, error)
	GetWeatherData(ctx context.Context, city string) (*models.WeatherData, error)
}
