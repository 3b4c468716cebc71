// Package models defines data structures used throughout the application
package models

// WeatherCondition describes a single weather state as classified by the
// provider (e.g. id 800 = clear sky, icon "01d").
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CurrentWeather is a snapshot of conditions for one city at one instant.
// All temperatures are rounded to whole degrees when the snapshot is built;
// nothing downstream rounds again.
type CurrentWeather struct {
	CityName   string           `json:"cityName"`
	Country    string           `json:"country"`
	Temp       int              `json:"temp"`
	FeelsLike  int              `json:"feelsLike"`
	TempMin    int              `json:"tempMin"`
	TempMax    int              `json:"tempMax"`
	Humidity   int              `json:"humidity"`
	WindSpeed  float64          `json:"windSpeed"`
	Pressure   int              `json:"pressure"`
	Visibility int              `json:"visibility"`
	Condition  WeatherCondition `json:"condition"`
	Sunrise    int64            `json:"sunrise"`
	Sunset     int64            `json:"sunset"`
	Dt         int64            `json:"dt"`
}

// ForecastPoint is one normalized 3-hour interval from the provider's
// forecast list. Values are kept as the provider reported them; rounding
// happens when the derived hourly/daily items are built.
type ForecastPoint struct {
	Dt        int64
	LocalTime string // "YYYY-MM-DD HH:MM:SS" in the provider's local time
	Temp      float64
	TempMin   float64
	TempMax   float64
	Humidity  float64
	WindSpeed float64
	Pop       float64 // precipitation probability, 0.0-1.0
	Condition WeatherCondition
}

// HourlyForecastItem is one 3-hour slot of the short-horizon forecast.
type HourlyForecastItem struct {
	Dt                       int64            `json:"dt"`
	Temp                     int              `json:"temp"`
	Condition                WeatherCondition `json:"condition"`
	PrecipitationProbability int              `json:"precipitationProbability"`
	Humidity                 int              `json:"humidity"`
	WindSpeed                float64          `json:"windSpeed"`
}

// DailyForecastItem summarizes one calendar day of forecast points.
type DailyForecastItem struct {
	Dt                       int64            `json:"dt"`
	TempMin                  int              `json:"tempMin"`
	TempMax                  int              `json:"tempMax"`
	Condition                WeatherCondition `json:"condition"`
	PrecipitationProbability int              `json:"precipitationProbability"`
	Humidity                 int              `json:"humidity"`
}

// ForecastBundle holds both derived forecast views for one city.
type ForecastBundle struct {
	Hourly []HourlyForecastItem `json:"hourly"`
	Daily  []DailyForecastItem  `json:"daily"`
}

// WeatherData is the complete payload the dashboard renders: current
// conditions plus up to 8 hourly and 7 daily forecast entries.
type WeatherData struct {
	Current CurrentWeather       `json:"current"`
	Hourly  []HourlyForecastItem `json:"hourly"`
	Daily   []DailyForecastItem  `json:"daily"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
