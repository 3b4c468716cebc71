package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/config"
	apperrors "weatherdash.app/errors"
)

const currentWeatherBody = `{
	"weather": [{"id": 800, "main": "Clear", "description": "맑음", "icon": "01d"}],
	"main": {"temp": 15.7, "feels_like": 14.2, "temp_min": 9.9, "temp_max": 17.5, "pressure": 1013, "humidity": 62},
	"wind": {"speed": 3.6},
	"visibility": 10000,
	"dt": 1707955200,
	"sys": {"country": "KR", "sunrise": 1707947100, "sunset": 1707985500},
	"name": "Seoul"
}`

// forecastBody builds a provider forecast payload with entries spanning the
// given dates at 3-hour spacing starting at 00:00.
func forecastBody(t *testing.T, dates []string, perDay int) string {
	t.Helper()

	type entry map[string]interface{}
	var list []entry
	var dt int64 = 1707955200
	for _, date := range dates {
		for i := 0; i < perDay; i++ {
			list = append(list, entry{
				"dt":      dt,
				"main":    map[string]interface{}{"temp": 10.2 + float64(i), "temp_min": 9.0, "temp_max": 12.0, "pressure": 1010, "humidity": 60},
				"weather": []map[string]interface{}{{"id": 801, "main": "Clouds", "description": "구름 조금", "icon": "02d"}},
				"wind":    map[string]interface{}{"speed": 2.5},
				"pop":     0.25,
				"dt_txt":  fmt.Sprintf("%s %02d:00:00", date, i*3),
			})
			dt += 3 * 3600
		}
	}

	data, err := json.Marshal(map[string]interface{}{"list": list})
	require.NoError(t, err)
	return string(data)
}

func newMockProvider(t *testing.T, currentStatus int, currentBody string, forecastStatus int, forecastBody string) (*httptest.Server, *int64) {
	t.Helper()

	var calls int64
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "kr", r.URL.Query().Get("lang"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(currentStatus)
		_, _ = w.Write([]byte(currentBody))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(forecastStatus)
		_, _ = w.Write([]byte(forecastBody))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &calls
}

func testConfig(baseURL string) *config.WeatherConfig {
	return &config.WeatherConfig{
		BaseURL:        baseURL,
		APIKey:         "test-api-key",
		Units:          "metric",
		Lang:           "kr",
		RequestTimeout: 5,
	}
}

func TestOpenWeatherGateway_FetchCurrentWeather(t *testing.T) {
	t.Run("ValidResponse", func(t *testing.T) {
		server, _ := newMockProvider(t, http.StatusOK, currentWeatherBody, http.StatusOK, "{}")

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		current, err := gateway.FetchCurrentWeather(context.Background(), "Seoul")

		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "Seoul", current.CityName)
		assert.Equal(t, "KR", current.Country)
		assert.Equal(t, 16, current.Temp)
		assert.Equal(t, 14, current.FeelsLike)
		assert.Equal(t, 10, current.TempMin)
		assert.Equal(t, 18, current.TempMax)
		assert.Equal(t, 62, current.Humidity)
		assert.Equal(t, 3.6, current.WindSpeed)
		assert.Equal(t, 1013, current.Pressure)
		assert.Equal(t, 10000, current.Visibility)
		assert.Equal(t, 800, current.Condition.ID)
		assert.Equal(t, "맑음", current.Condition.Description)
		assert.Equal(t, "01d", current.Condition.Icon)
		assert.Equal(t, int64(1707947100), current.Sunrise)
		assert.Equal(t, int64(1707985500), current.Sunset)
		assert.Equal(t, int64(1707955200), current.Dt)
	})

	t.Run("EmptyCity", func(t *testing.T) {
		server, calls := newMockProvider(t, http.StatusOK, currentWeatherBody, http.StatusOK, "{}")

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		current, err := gateway.FetchCurrentWeather(context.Background(), "")

		assert.Error(t, err)
		assert.Nil(t, current)
		assert.True(t, apperrors.IsValidationError(err))
		assert.Equal(t, int64(0), atomic.LoadInt64(calls))
	})

	t.Run("MissingAPIKeyNoNetworkCall", func(t *testing.T) {
		server, calls := newMockProvider(t, http.StatusOK, currentWeatherBody, http.StatusOK, "{}")

		cfg := testConfig(server.URL)
		cfg.APIKey = ""
		gateway := NewOpenWeatherGateway(cfg)
		current, err := gateway.FetchCurrentWeather(context.Background(), "Seoul")

		assert.Error(t, err)
		assert.Nil(t, current)
		assert.True(t, apperrors.IsConfigurationError(err))
		assert.Equal(t, int64(0), atomic.LoadInt64(calls))
	})

	t.Run("PlaceholderAPIKey", func(t *testing.T) {
		server, calls := newMockProvider(t, http.StatusOK, currentWeatherBody, http.StatusOK, "{}")

		cfg := testConfig(server.URL)
		cfg.APIKey = config.PlaceholderAPIKey
		gateway := NewOpenWeatherGateway(cfg)
		_, err := gateway.FetchCurrentWeather(context.Background(), "Seoul")

		assert.True(t, apperrors.IsConfigurationError(err))
		assert.Equal(t, int64(0), atomic.LoadInt64(calls))
	})

	t.Run("CityNotFound", func(t *testing.T) {
		notFoundBody := `{"cod":"404","message":"city not found"}`
		server, _ := newMockProvider(t, http.StatusNotFound, notFoundBody, http.StatusOK, "{}")

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		current, err := gateway.FetchCurrentWeather(context.Background(), "NoSuchPlace")

		assert.Error(t, err)
		assert.Nil(t, current)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.UpstreamError, appErr.Type)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
		assert.Contains(t, appErr.Body, "city not found")
	})

	t.Run("ServerError", func(t *testing.T) {
		server, _ := newMockProvider(t, http.StatusInternalServerError, "boom", http.StatusOK, "{}")

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		_, err := gateway.FetchCurrentWeather(context.Background(), "Seoul")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.UpstreamError, appErr.Type)
		assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		server, _ := newMockProvider(t, http.StatusOK, "not json", http.StatusOK, "{}")

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		_, err := gateway.FetchCurrentWeather(context.Background(), "Seoul")

		assert.True(t, apperrors.IsUpstreamError(err))
	})

	t.Run("EmptyConditionList", func(t *testing.T) {
		body := `{"weather": [], "main": {"temp": 10}, "name": "Seoul"}`
		server, _ := newMockProvider(t, http.StatusOK, body, http.StatusOK, "{}")

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		_, err := gateway.FetchCurrentWeather(context.Background(), "Seoul")

		require.Error(t, err)
		assert.True(t, apperrors.IsUpstreamError(err))
		assert.Contains(t, err.Error(), "condition list")
	})
}

func TestOpenWeatherGateway_FetchForecast(t *testing.T) {
	t.Run("ValidResponse", func(t *testing.T) {
		body := forecastBody(t, []string{"2024-02-15", "2024-02-16"}, 8)
		server, _ := newMockProvider(t, http.StatusOK, "{}", http.StatusOK, body)

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		bundle, err := gateway.FetchForecast(context.Background(), "Seoul")

		require.NoError(t, err)
		require.NotNil(t, bundle)
		assert.Len(t, bundle.Hourly, 8)
		assert.Len(t, bundle.Daily, 2)
		assert.Equal(t, 25, bundle.Hourly[0].PrecipitationProbability)
		assert.Equal(t, 10, bundle.Hourly[0].Temp)
		// Each day's noon entry (index 4, temp 10.2+4) is the representative.
		assert.Equal(t, 801, bundle.Daily[0].Condition.ID)
		assert.Equal(t, 10, bundle.Daily[0].TempMin)
		assert.Equal(t, 17, bundle.Daily[0].TempMax)
	})

	t.Run("EmptyList", func(t *testing.T) {
		server, _ := newMockProvider(t, http.StatusOK, "{}", http.StatusOK, `{"list": []}`)

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		bundle, err := gateway.FetchForecast(context.Background(), "Seoul")

		require.NoError(t, err)
		assert.Empty(t, bundle.Hourly)
		assert.Empty(t, bundle.Daily)
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		server, _ := newMockProvider(t, http.StatusOK, "{}", http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key"}`)

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		_, err := gateway.FetchForecast(context.Background(), "Seoul")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.UpstreamError, appErr.Type)
		assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
	})

	t.Run("EntryWithEmptyConditionList", func(t *testing.T) {
		body := `{"list": [{"dt": 1, "main": {"temp": 10}, "weather": [], "pop": 0, "dt_txt": "2024-02-15 00:00:00"}]}`
		server, _ := newMockProvider(t, http.StatusOK, "{}", http.StatusOK, body)

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		_, err := gateway.FetchForecast(context.Background(), "Seoul")

		require.Error(t, err)
		assert.True(t, apperrors.IsUpstreamError(err))
	})
}

func TestOpenWeatherGateway_GetWeatherData(t *testing.T) {
	t.Run("CombinesBothFetches", func(t *testing.T) {
		body := forecastBody(t, []string{"2024-02-15", "2024-02-16", "2024-02-17"}, 8)
		server, calls := newMockProvider(t, http.StatusOK, currentWeatherBody, http.StatusOK, body)

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		data, err := gateway.GetWeatherData(context.Background(), "Seoul")

		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, "Seoul", data.Current.CityName)
		assert.Len(t, data.Hourly, 8)
		assert.Len(t, data.Daily, 3)
		assert.Equal(t, int64(2), atomic.LoadInt64(calls))
	})

	t.Run("NoPartialResultOnFailure", func(t *testing.T) {
		body := forecastBody(t, []string{"2024-02-15"}, 8)
		server, _ := newMockProvider(t, http.StatusNotFound, `{"message":"city not found"}`, http.StatusOK, body)

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		data, err := gateway.GetWeatherData(context.Background(), "NoSuchPlace")

		assert.Error(t, err)
		assert.Nil(t, data)
		assert.True(t, apperrors.IsUpstreamError(err))
	})

	t.Run("BothBranchesFailingPropagatesOne", func(t *testing.T) {
		server, _ := newMockProvider(t, http.StatusServiceUnavailable, "down", http.StatusServiceUnavailable, "down")

		gateway := NewOpenWeatherGateway(testConfig(server.URL))
		data, err := gateway.GetWeatherData(context.Background(), "Seoul")

		assert.Error(t, err)
		assert.Nil(t, data)
		assert.True(t, apperrors.IsUpstreamError(err))
	})

	t.Run("DeadlineExceededClassifiedAsTimeout", func(t *testing.T) {
		mux := http.NewServeMux()
		slow := func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			_, _ = w.Write([]byte("{}"))
		}
		mux.HandleFunc("/weather", slow)
		mux.HandleFunc("/forecast", slow)
		server := httptest.NewServer(mux)
		defer server.Close()

		cfg := testConfig(server.URL)
		cfg.RequestTimeout = 1
		gateway := NewOpenWeatherGateway(cfg)

		start := time.Now()
		data, err := gateway.GetWeatherData(context.Background(), "Seoul")

		assert.Error(t, err)
		assert.Nil(t, data)
		assert.True(t, apperrors.IsTimeoutError(err))
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}
