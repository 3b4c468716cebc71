package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"weatherdash.app/metrics"
	"weatherdash.app/models"
	"weatherdash.app/providers/cache"
)

// WeatherCacheProxy caches the gateway's normalized results. Current
// conditions and forecast data age at different rates, so each endpoint has
// its own TTL: the provider refreshes current conditions every 10 minutes
// and the forecast feed every 3 hours.
type WeatherCacheProxy struct {
	gateway         WeatherGateway
	cache           cache.Cache
	currentTTL      time.Duration
	forecastTTL     time.Duration
	currentMetrics  *metrics.CacheMetrics
	forecastMetrics *metrics.CacheMetrics
}

func NewWeatherCacheProxy(gateway WeatherGateway, c cache.Cache, currentTTL, forecastTTL time.Duration) *WeatherCacheProxy {
	return &WeatherCacheProxy{
		gateway:         gateway,
		cache:           c,
		currentTTL:      currentTTL,
		forecastTTL:     forecastTTL,
		currentMetrics:  metrics.NewCacheMetrics("current"),
		forecastMetrics: metrics.NewCacheMetrics("forecast"),
	}
}

func (p *WeatherCacheProxy) FetchCurrentWeather(ctx context.Context, city string) (*models.CurrentWeather, error) {
	key := currentCacheKey(city)

	if data, found := p.cache.Get(ctx, key); found {
		var cached models.CurrentWeather
		if err := json.Unmarshal(data, &cached); err == nil {
			p.currentMetrics.RecordHit()
			slog.Debug("cache hit", "endpoint", "current", "city", city)
			return &cached, nil
		}
	}

	p.currentMetrics.RecordMiss()
	slog.Debug("cache miss", "endpoint", "current", "city", city)

	current, err := p.gateway.FetchCurrentWeather(ctx, city)
	if err != nil {
		return nil, err
	}

	p.store(ctx, key, current, p.currentTTL)
	return current, nil
}

func (p *WeatherCacheProxy) FetchForecast(ctx context.Context, city string) (*models.ForecastBundle, error) {
	key := forecastCacheKey(city)

	if data, found := p.cache.Get(ctx, key); found {
		var cached models.ForecastBundle
		if err := json.Unmarshal(data, &cached); err == nil {
			p.forecastMetrics.RecordHit()
			slog.Debug("cache hit", "endpoint", "forecast", "city", city)
			return &cached, nil
		}
	}

	p.forecastMetrics.RecordMiss()
	slog.Debug("cache miss", "endpoint", "forecast", "city", city)

	bundle, err := p.gateway.FetchForecast(ctx, city)
	if err != nil {
		return nil, err
	}

	p.store(ctx, key, bundle, p.forecastTTL)
	return bundle, nil
}

// GetWeatherData joins the proxy's own fetches so both halves benefit from
// caching; the forecast half often stays warm long after the current half
// expired.
func (p *WeatherCacheProxy) GetWeatherData(ctx context.Context, city string) (*models.WeatherData, error) {
	return fetchCombined(ctx, p.combinedTimeout(), p.FetchCurrentWeather, p.FetchForecast, city)
}

// combinedTimeout mirrors the underlying gateway's request deadline when it
// exposes one; otherwise the proxy applies a conservative default.
func (p *WeatherCacheProxy) combinedTimeout() time.Duration {
	if g, ok := p.gateway.(*OpenWeatherGateway); ok {
		return g.config.Timeout()
	}
	return 10 * time.Second
}

func (p *WeatherCacheProxy) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Error("cache marshal error", "error", err, "key", key)
		return
	}
	p.cache.Set(ctx, key, data, ttl)
}

func currentCacheKey(city string) string {
	return fmt.Sprintf("weather:current:%s", city)
}

func forecastCacheKey(city string) string {
	return fmt.Sprintf("weather:forecast:%s", city)
}
