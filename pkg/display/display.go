// Package display provides formatting helpers for the dashboard's
// presentation layer: KST time and date strings, provider icon URLs, and
// condition-dependent styling classes.
package display

import (
	"fmt"
	"time"
)

// The dashboard renders everything in Korea Standard Time.
var kst = time.FixedZone("KST", 9*60*60)

var weekdaysKo = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// FormatTime renders a Unix timestamp as "HH:MM" in KST.
func FormatTime(unixTs int64) string {
	return time.Unix(unixTs, 0).In(kst).Format("15:04")
}

// FormatDate renders a Unix timestamp relative to now: "오늘" for today,
// "내일" for tomorrow, otherwise a short weekday plus month/day ("화 2/20").
func FormatDate(unixTs int64, now time.Time) string {
	target := time.Unix(unixTs, 0).In(kst)
	today := now.In(kst)

	targetDay := target.Format("2006-01-02")
	if targetDay == today.Format("2006-01-02") {
		return "오늘"
	}
	if targetDay == today.AddDate(0, 0, 1).Format("2006-01-02") {
		return "내일"
	}
	return fmt.Sprintf("%s %d/%d", weekdaysKo[target.Weekday()], int(target.Month()), target.Day())
}

// IconURL returns the provider's @2x icon image URL for an icon code.
func IconURL(icon string) string {
	return fmt.Sprintf("https://openweathermap.org/img/wn/%s@2x.png", icon)
}

// Gradient maps a provider condition id to the dashboard's background
// gradient classes. Condition id ranges: 2xx thunderstorm, 3xx drizzle,
// 5xx rain, 6xx snow, 7xx atmosphere, 800 clear, 8xx clouds.
func Gradient(conditionID int) string {
	switch {
	case conditionID >= 200 && conditionID < 300:
		return "from-gray-700 via-purple-900 to-gray-900"
	case conditionID >= 300 && conditionID < 400:
		return "from-teal-500 via-cyan-600 to-blue-700"
	case conditionID >= 500 && conditionID < 600:
		return "from-blue-600 via-blue-700 to-slate-800"
	case conditionID >= 600 && conditionID < 700:
		return "from-blue-100 via-indigo-200 to-purple-300"
	case conditionID >= 700 && conditionID < 800:
		return "from-gray-400 via-gray-500 to-gray-600"
	case conditionID == 800:
		return "from-sky-400 via-blue-500 to-blue-600"
	case conditionID > 800:
		return "from-slate-400 via-slate-500 to-slate-600"
	default:
		return "from-sky-400 via-blue-500 to-blue-600"
	}
}

// TextColor returns a readable text color class for the gradient chosen by
// Gradient. Snow backgrounds are light, so they get dark text.
func TextColor(conditionID int) string {
	if conditionID >= 600 && conditionID < 700 {
		return "text-slate-800"
	}
	return "text-white"
}

// FormatWindSpeed renders a wind speed in m/s with one decimal.
func FormatWindSpeed(speed float64) string {
	return fmt.Sprintf("%.1f m/s", speed)
}

// FormatVisibility renders a distance in meters as km above 1 km.
func FormatVisibility(meters int) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", float64(meters)/1000)
	}
	return fmt.Sprintf("%d m", meters)
}
