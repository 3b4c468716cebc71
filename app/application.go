package app

import (
	"fmt"
	"log/slog"

	"weatherdash.app/api"
	"weatherdash.app/config"
	"weatherdash.app/providers"
	"weatherdash.app/providers/cache"
	"weatherdash.app/service"
)

// Application represents the main application with all its dependencies
type Application struct {
	config *config.Config
	server *api.Server
	cache  cache.Cache
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	gateway, err := app.createGateway()
	if err != nil {
		return fmt.Errorf("create weather gateway: %w", err)
	}

	weatherService := service.NewWeatherService(gateway)
	app.server = api.NewServer(app.config, weatherService)

	slog.Info("Services initialized successfully")
	return nil
}

// createGateway builds the decorated gateway stack: the OpenWeatherMap
// client wrapped in a caching proxy, wrapped in request logging.
func (app *Application) createGateway() (providers.WeatherGateway, error) {
	slog.Debug("Creating weather gateway...", "cacheType", app.config.Cache.Type)

	c, err := cache.New(&app.config.Cache)
	if err != nil {
		return nil, err
	}
	app.cache = c

	var gateway providers.WeatherGateway = providers.NewOpenWeatherGateway(&app.config.Weather)
	gateway = providers.NewWeatherCacheProxy(
		gateway,
		c,
		app.config.Cache.CurrentWeatherTTL(),
		app.config.Cache.ForecastDataTTL(),
	)
	gateway = providers.NewWeatherLoggerDecorator(gateway, "openweathermap")

	return gateway, nil
}

// Config returns the loaded application configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Start begins serving HTTP requests. Blocks until the server stops.
func (app *Application) Start() error {
	slog.Info("Starting HTTP server", "addr", app.config.Server.Addr())
	return app.server.Start()
}

// Shutdown releases application resources.
func (app *Application) Shutdown() error {
	slog.Info("Shutting down...")

	switch c := app.cache.(type) {
	case *cache.MemoryCache:
		c.Stop()
	case *cache.RedisCache:
		return c.Close()
	}
	return nil
}
