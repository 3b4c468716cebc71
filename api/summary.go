package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/models"
	"weatherdash.app/pkg/display"
)

// WeatherSummary is the display-ready rendition of WeatherData: every
// timestamp, speed, and distance formatted the way the dashboard shows it.
type WeatherSummary struct {
	Gradient  string          `json:"gradient"`
	TextColor string          `json:"textColor"`
	Current   CurrentSummary  `json:"current"`
	Hourly    []HourlySummary `json:"hourly"`
	Daily     []DailySummary  `json:"daily"`
}

type CurrentSummary struct {
	CityName    string `json:"cityName"`
	Country     string `json:"country"`
	Temp        int    `json:"temp"`
	FeelsLike   int    `json:"feelsLike"`
	TempMin     int    `json:"tempMin"`
	TempMax     int    `json:"tempMax"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
	Humidity    int    `json:"humidity"`
	WindSpeed   string `json:"windSpeed"`
	Pressure    int    `json:"pressure"`
	Visibility  string `json:"visibility"`
	Sunrise     string `json:"sunrise"`
	Sunset      string `json:"sunset"`
}

type HourlySummary struct {
	Time                     string `json:"time"`
	Temp                     int    `json:"temp"`
	IconURL                  string `json:"iconUrl"`
	PrecipitationProbability int    `json:"precipitationProbability"`
}

type DailySummary struct {
	DateLabel                string `json:"dateLabel"`
	TempMin                  int    `json:"tempMin"`
	TempMax                  int    `json:"tempMax"`
	IconURL                  string `json:"iconUrl"`
	PrecipitationProbability int    `json:"precipitationProbability"`
	Humidity                 int    `json:"humidity"`
}

func (s *Server) getWeatherSummary(c *gin.Context) {
	cityID, ok := s.bindCityID(c)
	if !ok {
		return
	}

	slog.Debug("getting weather summary", "cityID", cityID, "requestID", c.GetString(RequestIDKey))
	data, err := s.weatherService.GetWeatherData(c.Request.Context(), cityID)
	if err != nil {
		slog.Error("weather service error", "error", err, "cityID", cityID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildSummary(data, time.Now()))
}

func buildSummary(data *models.WeatherData, now time.Time) WeatherSummary {
	current := data.Current

	hourly := make([]HourlySummary, 0, len(data.Hourly))
	for _, h := range data.Hourly {
		hourly = append(hourly, HourlySummary{
			Time:                     display.FormatTime(h.Dt),
			Temp:                     h.Temp,
			IconURL:                  display.IconURL(h.Condition.Icon),
			PrecipitationProbability: h.PrecipitationProbability,
		})
	}

	daily := make([]DailySummary, 0, len(data.Daily))
	for _, d := range data.Daily {
		daily = append(daily, DailySummary{
			DateLabel:                display.FormatDate(d.Dt, now),
			TempMin:                  d.TempMin,
			TempMax:                  d.TempMax,
			IconURL:                  display.IconURL(d.Condition.Icon),
			PrecipitationProbability: d.PrecipitationProbability,
			Humidity:                 d.Humidity,
		})
	}

	return WeatherSummary{
		Gradient:  display.Gradient(current.Condition.ID),
		TextColor: display.TextColor(current.Condition.ID),
		Current: CurrentSummary{
			CityName:    current.CityName,
			Country:     current.Country,
			Temp:        current.Temp,
			FeelsLike:   current.FeelsLike,
			TempMin:     current.TempMin,
			TempMax:     current.TempMax,
			Description: current.Condition.Description,
			IconURL:     display.IconURL(current.Condition.Icon),
			Humidity:    current.Humidity,
			WindSpeed:   display.FormatWindSpeed(current.WindSpeed),
			Pressure:    current.Pressure,
			Visibility:  display.FormatVisibility(current.Visibility),
			Sunrise:     display.FormatTime(current.Sunrise),
			Sunset:      display.FormatTime(current.Sunset),
		},
		Hourly: hourly,
		Daily:  daily,
	}
}
