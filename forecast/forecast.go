// Package forecast derives display-ready forecast views from the provider's
// 3-hour interval feed. All functions are pure: they never fail and perform
// no I/O, so malformed input is the gateway's responsibility.
package forecast

import (
	"math"
	"strings"

	"weatherdash.app/models"
)

const (
	// MaxHourlyItems caps the short-horizon view at 24 hours of 3-hour slots.
	MaxHourlyItems = 8
	// MaxDailyItems caps the daily summary at one week.
	MaxDailyItems = 7

	noonTime = "12:00:00"
)

// BuildHourly returns the first min(8, len(points)) points mapped to hourly
// items, preserving input order. The provider list is already chronological;
// no local sorting happens.
func BuildHourly(points []models.ForecastPoint) []models.HourlyForecastItem {
	n := len(points)
	if n > MaxHourlyItems {
		n = MaxHourlyItems
	}

	hourly := make([]models.HourlyForecastItem, 0, n)
	for _, p := range points[:n] {
		hourly = append(hourly, models.HourlyForecastItem{
			Dt:                       p.Dt,
			Temp:                     round(p.Temp),
			Condition:                p.Condition,
			PrecipitationProbability: round(p.Pop * 100),
			Humidity:                 round(p.Humidity),
			WindSpeed:                p.WindSpeed,
		})
	}
	return hourly
}

// BuildDaily groups points by the date portion of their provider-local time
// string and summarizes each day. Groups keep the order their dates first
// appear in; once 7 distinct dates have been seen, points for any further
// date are dropped, while points for an already-admitted date keep
// accumulating into their group.
func BuildDaily(points []models.ForecastPoint) []models.DailyForecastItem {
	grouped := make(map[string][]models.ForecastPoint)
	order := make([]string, 0, MaxDailyItems)

	for _, p := range points {
		dateKey, _, _ := strings.Cut(p.LocalTime, " ")
		if _, seen := grouped[dateKey]; !seen {
			if len(order) >= MaxDailyItems {
				continue
			}
			order = append(order, dateKey)
		}
		grouped[dateKey] = append(grouped[dateKey], p)
	}

	daily := make([]models.DailyForecastItem, 0, len(order))
	for _, dateKey := range order {
		daily = append(daily, summarizeDay(grouped[dateKey]))
	}
	return daily
}

// summarizeDay collapses one day's points into a single item. The group is
// never empty: a date key only exists because at least one point carried it.
func summarizeDay(points []models.ForecastPoint) models.DailyForecastItem {
	tempMin := points[0].Temp
	tempMax := points[0].Temp
	maxPop := points[0].Pop
	var humiditySum float64

	for _, p := range points {
		tempMin = math.Min(tempMin, p.Temp)
		tempMax = math.Max(tempMax, p.Temp)
		maxPop = math.Max(maxPop, p.Pop)
		humiditySum += p.Humidity
	}

	rep := representativePoint(points)

	return models.DailyForecastItem{
		Dt:                       rep.Dt,
		TempMin:                  round(tempMin),
		TempMax:                  round(tempMax),
		Condition:                rep.Condition,
		PrecipitationProbability: round(maxPop * 100),
		Humidity:                 round(humiditySum / float64(len(points))),
	}
}

// representativePoint picks the point whose local time is noon, falling back
// to the group's first point when the grid has no exact 12:00:00 entry.
func representativePoint(points []models.ForecastPoint) models.ForecastPoint {
	for _, p := range points {
		if strings.Contains(p.LocalTime, noonTime) {
			return p
		}
	}
	return points[0]
}

// round rounds half toward positive infinity, so -10.5 becomes -10. This
// matches how the dashboard has always displayed sub-zero temperatures.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
