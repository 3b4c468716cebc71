package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/cities"
	"weatherdash.app/config"
	weathererr "weatherdash.app/errors"
	"weatherdash.app/models"
	"weatherdash.app/service"
)

// Server represents the HTTP server and API handler
type Server struct {
	router         *gin.Engine
	config         *config.Config
	weatherService service.WeatherServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(config *config.Config, weatherService service.WeatherServiceInterface) *Server {
	router := gin.Default()
	router.Use(RequestID())

	server := &Server{
		router:         router,
		config:         config,
		weatherService: weatherService,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/weather/current", s.getCurrentWeather)
		api.GET("/weather/summary", s.getWeatherSummary)
		api.GET("/cities", s.getCities)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.ServeStaticFiles()
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(s.config.Server.Addr())
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// weatherQuery binds the shared ?city= parameter. City ids are lowercase
// ASCII registry keys; anything else is rejected before the registry lookup.
type weatherQuery struct {
	City string `form:"city" binding:"omitempty,alpha,lowercase"`
}

func (s *Server) bindCityID(c *gin.Context) (string, bool) {
	var q weatherQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.handleError(c, weathererr.NewValidationError("invalid city parameter"))
		return "", false
	}
	if q.City == "" {
		return cities.DefaultCityID, true
	}
	return q.City, true
}

func (s *Server) getWeather(c *gin.Context) {
	cityID, ok := s.bindCityID(c)
	if !ok {
		return
	}

	slog.Debug("getting weather data", "cityID", cityID, "requestID", c.GetString(RequestIDKey))
	data, err := s.weatherService.GetWeatherData(c.Request.Context(), cityID)
	if err != nil {
		slog.Error("weather service error", "error", err, "cityID", cityID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (s *Server) getCurrentWeather(c *gin.Context) {
	cityID, ok := s.bindCityID(c)
	if !ok {
		return
	}

	slog.Debug("getting current weather", "cityID", cityID, "requestID", c.GetString(RequestIDKey))
	current, err := s.weatherService.GetCurrentWeather(c.Request.Context(), cityID)
	if err != nil {
		slog.Error("weather service error", "error", err, "cityID", cityID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

func (s *Server) getCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": s.weatherService.Cities()})
}

// handleError maps application errors to HTTP responses
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *weathererr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch {
		case appErr.Type == weathererr.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case appErr.Type == weathererr.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case appErr.Timeout:
			statusCode = http.StatusGatewayTimeout
			message = "Weather provider timed out"
		case appErr.Type == weathererr.UpstreamError:
			statusCode = http.StatusBadGateway
			message = "Weather provider unavailable"
		case appErr.Type == weathererr.ConfigurationError:
			statusCode = http.StatusInternalServerError
			message = "Server configuration error"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}
