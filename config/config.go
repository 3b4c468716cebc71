package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/errors"
)

// PlaceholderAPIKey is the value shipped in .env.example; a key that still
// holds it is treated the same as a missing key.
const PlaceholderAPIKey = "your_api_key_here"

// Config represents the application configuration structure
type Config struct {
	Server  ServerConfig  `split_words:"true"`
	Weather WeatherConfig `split_words:"true"`
	Cache   CacheConfig   `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// WeatherConfig contains settings for the upstream weather provider.
// APIKey is deliberately not required at load time: its presence is checked
// by the gateway when a fetch is issued, so the server can boot and report a
// configuration error per request instead of refusing to start.
type WeatherConfig struct {
	BaseURL        string `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	APIKey         string `envconfig:"OPENWEATHER_API_KEY"`
	Units          string `envconfig:"WEATHER_UNITS" default:"metric"`
	Lang           string `envconfig:"WEATHER_LANG" default:"kr"`
	RequestTimeout int    `envconfig:"WEATHER_REQUEST_TIMEOUT" default:"10"`
}

// CacheConfig contains cache backend selection and freshness settings.
// TTL defaults mirror the provider's own update cadence: current conditions
// refresh every 10 minutes, the forecast feed every 3 hours.
type CacheConfig struct {
	Type          string `envconfig:"CACHE_TYPE" default:"memory"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	CurrentTTL    int    `envconfig:"CACHE_CURRENT_TTL" default:"600"`
	ForecastTTL   int    `envconfig:"CACHE_FORECAST_TTL" default:"10800"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if c.Weather.RequestTimeout < 1 {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// Validate checks cache configuration
func (c *CacheConfig) Validate() error {
	switch c.Type {
	case "memory", "redis", "none":
	default:
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis, none", nil)
	}
	if c.CurrentTTL < 1 {
		return errors.NewConfigurationError("CACHE_CURRENT_TTL must be at least 1 second", nil)
	}
	if c.ForecastTTL < 1 {
		return errors.NewConfigurationError("CACHE_FORECAST_TTL must be at least 1 second", nil)
	}
	return nil
}

// Validate checks that the provider connection settings are usable. Called
// by the gateway before any request goes out.
func (w *WeatherConfig) Validate() error {
	if w.APIKey == "" || w.APIKey == PlaceholderAPIKey {
		return errors.NewConfigurationError(
			"OPENWEATHER_API_KEY is not set; get a key at https://openweathermap.org and set it in .env", nil)
	}
	if w.BaseURL == "" {
		return errors.NewConfigurationError("OPENWEATHER_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHER_BASE_URL must start with http:// or https://", nil)
	}
	return nil
}

// Timeout returns the overall deadline for a combined weather fetch.
func (w *WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.RequestTimeout) * time.Second
}

// CurrentWeatherTTL returns the freshness window for current conditions.
func (c *CacheConfig) CurrentWeatherTTL() time.Duration {
	return time.Duration(c.CurrentTTL) * time.Second
}

// ForecastDataTTL returns the freshness window for forecast data.
func (c *CacheConfig) ForecastDataTTL() time.Duration {
	return time.Duration(c.ForecastTTL) * time.Second
}

// Addr returns the host:port the HTTP server listens on.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
