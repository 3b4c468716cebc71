package service

import (
	"context"
	"log/slog"

	"weatherdash.app/cities"
	"weatherdash.app/models"
	"weatherdash.app/providers"
)

// WeatherService resolves dashboard city ids and fetches their weather
// through the gateway.
type WeatherService struct {
	gateway providers.WeatherGateway
}

// NewWeatherService creates a new weather service backed by the given gateway
func NewWeatherService(gateway providers.WeatherGateway) *WeatherService {
	return &WeatherService{
		gateway: gateway,
	}
}

// GetWeatherData returns the full dashboard payload for a city id. Unknown
// ids resolve to the default city rather than failing, so a stale picker
// query string still renders.
func (s *WeatherService) GetWeatherData(ctx context.Context, cityID string) (*models.WeatherData, error) {
	city := cities.ByID(cityID)
	slog.Debug("fetching weather data", "cityID", cityID, "query", city.QueryName)

	data, err := s.gateway.GetWeatherData(ctx, city.QueryName)
	if err != nil {
		slog.Error("weather gateway error", "error", err, "city", city.QueryName)
		return nil, err
	}
	return data, nil
}

// GetCurrentWeather returns only the current conditions for a city id.
func (s *WeatherService) GetCurrentWeather(ctx context.Context, cityID string) (*models.CurrentWeather, error) {
	city := cities.ByID(cityID)
	slog.Debug("fetching current weather", "cityID", cityID, "query", city.QueryName)

	current, err := s.gateway.FetchCurrentWeather(ctx, city.QueryName)
	if err != nil {
		slog.Error("weather gateway error", "error", err, "city", city.QueryName)
		return nil, err
	}
	return current, nil
}

// Cities returns the selectable city list in picker order.
func (s *WeatherService) Cities() []cities.City {
	return cities.All
}
