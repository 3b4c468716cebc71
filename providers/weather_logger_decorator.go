package providers

import (
	"context"
	"log/slog"
	"time"

	"weatherdash.app/models"
)

// WeatherLoggerDecorator logs every gateway call with its outcome and
// duration.
type WeatherLoggerDecorator struct {
	gateway WeatherGateway
	name    string
}

func NewWeatherLoggerDecorator(gateway WeatherGateway, name string) *WeatherLoggerDecorator {
	return &WeatherLoggerDecorator{
		gateway: gateway,
		name:    name,
	}
}

func (d *WeatherLoggerDecorator) FetchCurrentWeather(ctx context.Context, city string) (*models.CurrentWeather, error) {
	start := time.Now()
	current, err := d.gateway.FetchCurrentWeather(ctx, city)
	d.log("FetchCurrentWeather", city, err, time.Since(start))
	return current, err
}

func (d *WeatherLoggerDecorator) FetchForecast(ctx context.Context, city string) (*models.ForecastBundle, error) {
	start := time.Now()
	bundle, err := d.gateway.FetchForecast(ctx, city)
	d.log("FetchForecast", city, err, time.Since(start))
	return bundle, err
}

func (d *WeatherLoggerDecorator) GetWeatherData(ctx context.Context, city string) (*models.WeatherData, error) {
	start := time.Now()
	data, err := d.gateway.GetWeatherData(ctx, city)
	d.log("GetWeatherData", city, err, time.Since(start))
	return data, err
}

func (d *WeatherLoggerDecorator) log(operation, city string, err error, duration time.Duration) {
	if err != nil {
		slog.Error("gateway call failed",
			"provider", d.name,
			"operation", operation,
			"city", city,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return
	}
	slog.Info("gateway call completed",
		"provider", d.name,
		"operation", operation,
		"city", city,
		"duration_ms", duration.Milliseconds(),
	)
}
