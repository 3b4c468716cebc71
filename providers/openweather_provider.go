package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"weatherdash.app/config"
	"weatherdash.app/errors"
	"weatherdash.app/forecast"
	"weatherdash.app/metrics"
	"weatherdash.app/models"
)

// OpenWeatherGateway fetches current conditions and the 5-day/3-hour
// forecast from an OpenWeatherMap-compatible API and normalizes the raw
// payloads into the dashboard's models.
type OpenWeatherGateway struct {
	config          *config.WeatherConfig
	client          *http.Client
	currentMetrics  *metrics.UpstreamMetrics
	forecastMetrics *metrics.UpstreamMetrics
}

// Raw OpenWeatherMap payload shapes. Never handed to callers directly.

type owmCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

type owmCurrentResponse struct {
	Weather []owmCondition `json:"weather"`
	Main    owmMain        `json:"main"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int   `json:"visibility"`
	Dt         int64 `json:"dt"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
}

type owmForecastEntry struct {
	Dt      int64          `json:"dt"`
	Main    owmMain        `json:"main"`
	Weather []owmCondition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Pop   float64 `json:"pop"`
	DtTxt string  `json:"dt_txt"`
}

type owmForecastResponse struct {
	List []owmForecastEntry `json:"list"`
}

// NewOpenWeatherGateway creates a gateway for the given provider settings.
func NewOpenWeatherGateway(config *config.WeatherConfig) *OpenWeatherGateway {
	return &OpenWeatherGateway{
		config:          config,
		client:          &http.Client{Timeout: config.Timeout()},
		currentMetrics:  metrics.NewUpstreamMetrics("current"),
		forecastMetrics: metrics.NewUpstreamMetrics("forecast"),
	}
}

// FetchCurrentWeather retrieves and normalizes current conditions for a city.
func (g *OpenWeatherGateway) FetchCurrentWeather(ctx context.Context, city string) (*models.CurrentWeather, error) {
	body, err := g.fetch(ctx, "/weather", city, g.currentMetrics, "current weather request failed")
	if err != nil {
		return nil, err
	}

	var data owmCurrentResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, errors.NewUpstreamError("decode current weather response", err)
	}

	condition, err := extractCondition(data.Weather)
	if err != nil {
		return nil, err
	}

	return &models.CurrentWeather{
		CityName:   data.Name,
		Country:    data.Sys.Country,
		Temp:       round(data.Main.Temp),
		FeelsLike:  round(data.Main.FeelsLike),
		TempMin:    round(data.Main.TempMin),
		TempMax:    round(data.Main.TempMax),
		Humidity:   round(data.Main.Humidity),
		WindSpeed:  data.Wind.Speed,
		Pressure:   data.Main.Pressure,
		Visibility: data.Visibility,
		Condition:  *condition,
		Sunrise:    data.Sys.Sunrise,
		Sunset:     data.Sys.Sunset,
		Dt:         data.Dt,
	}, nil
}

// FetchForecast retrieves the 3-hour interval feed and derives the hourly
// and daily views from it.
func (g *OpenWeatherGateway) FetchForecast(ctx context.Context, city string) (*models.ForecastBundle, error) {
	body, err := g.fetch(ctx, "/forecast", city, g.forecastMetrics, "forecast request failed")
	if err != nil {
		return nil, err
	}

	var data owmForecastResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, errors.NewUpstreamError("decode forecast response", err)
	}

	points, err := normalizeForecast(data.List)
	if err != nil {
		return nil, err
	}

	return &models.ForecastBundle{
		Hourly: forecast.BuildHourly(points),
		Daily:  forecast.BuildDaily(points),
	}, nil
}

// GetWeatherData fetches current conditions and the forecast concurrently
// and combines them. Either failure fails the whole request.
func (g *OpenWeatherGateway) GetWeatherData(ctx context.Context, city string) (*models.WeatherData, error) {
	return fetchCombined(ctx, g.config.Timeout(), g.FetchCurrentWeather, g.FetchForecast, city)
}

// fetch validates configuration, performs one provider request, and returns
// the raw response body. Configuration problems surface before any network
// call is attempted.
func (g *OpenWeatherGateway) fetch(ctx context.Context, path, city string, m *metrics.UpstreamMetrics, failMsg string) ([]byte, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", g.config.APIKey)
	query.Set("units", g.config.Units)
	query.Set("lang", g.config.Lang)
	requestURL := fmt.Sprintf("%s%s?%s", g.config.BaseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.NewUpstreamError("build provider request", err)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		m.RecordRequest(0, time.Since(start))
		return nil, errors.NewUpstreamError(failMsg, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("close response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	m.RecordRequest(resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, errors.NewUpstreamError("read provider response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewUpstreamStatusError(failMsg, resp.StatusCode, string(body))
	}

	return body, nil
}

// extractCondition takes the first entry of the provider's condition list.
// The provider guarantees at least one entry; an empty list means the
// response is malformed.
func extractCondition(conditions []owmCondition) (*models.WeatherCondition, error) {
	if len(conditions) == 0 {
		return nil, errors.NewUpstreamError("malformed provider response: empty condition list", nil)
	}
	c := conditions[0]
	return &models.WeatherCondition{
		ID:          c.ID,
		Main:        c.Main,
		Description: c.Description,
		Icon:        c.Icon,
	}, nil
}

// normalizeForecast maps raw forecast entries to ForecastPoints, validating
// each entry's condition list on the way.
func normalizeForecast(entries []owmForecastEntry) ([]models.ForecastPoint, error) {
	points := make([]models.ForecastPoint, 0, len(entries))
	for _, e := range entries {
		condition, err := extractCondition(e.Weather)
		if err != nil {
			return nil, err
		}
		points = append(points, models.ForecastPoint{
			Dt:        e.Dt,
			LocalTime: e.DtTxt,
			Temp:      e.Main.Temp,
			TempMin:   e.Main.TempMin,
			TempMax:   e.Main.TempMax,
			Humidity:  e.Main.Humidity,
			WindSpeed: e.Wind.Speed,
			Pop:       e.Pop,
			Condition: *condition,
		})
	}
	return points, nil
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
