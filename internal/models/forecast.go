package models

import (
	"fmt"
	"strings"
)

// NotAvailable is printed in place of a value Open-Meteo returned as null
const NotAvailable = "n/a"

// DailySeries holds the parallel daily arrays returned by Open-Meteo.
// Index i of every slice describes the same calendar day; a nil entry was null upstream.
type DailySeries struct {
	Time             []string   `json:"time"`
	TemperatureMax   []*float64 `json:"temperature_2m_max"`
	TemperatureMin   []*float64 `json:"temperature_2m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	WeatherCode      []*int     `json:"weather_code"`
}

// Forecast is a multi-day daily forecast for one location
type Forecast struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Timezone  string      `json:"timezone"`
	Daily     DailySeries `json:"daily"`
}

// ForecastDay is one row of the forecast table.
// Nil measurements are serialized as null and printed as NotAvailable.
type ForecastDay struct {
	Date          string   `json:"date"`
	MaxTemp       *float64 `json:"max_temp_c"`
	MinTemp       *float64 `json:"min_temp_c"`
	Precipitation *float64 `json:"precipitation_mm"`
	WeatherCode   *int     `json:"weather_code"`
	Conditions    string   `json:"conditions"`
}

// Len returns the number of days the forecast actually covers
func (f *Forecast) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Daily.Time)
}

// Days returns up to n days of the forecast in the order received.
// Asking for more days than were returned yields only the available ones.
func (f *Forecast) Days(n int) []ForecastDay {
	if f == nil {
		return nil
	}

	count := n
	if f.Len() < count {
		count = f.Len()
	}
	if count <= 0 {
		return nil
	}

	days := make([]ForecastDay, 0, count)
	for i := 0; i < count; i++ {
		conditions := UnknownWeatherCondition
		code := f.Daily.WeatherCode[i]
		if code != nil {
			conditions = DescribeWeatherCode(*code)
		}
		days = append(days, ForecastDay{
			Date:          f.Daily.Time[i],
			MaxTemp:       f.Daily.TemperatureMax[i],
			MinTemp:       f.Daily.TemperatureMin[i],
			Precipitation: f.Daily.PrecipitationSum[i],
			WeatherCode:   code,
			Conditions:    conditions,
		})
	}
	return days
}

// Summary renders up to n days as one line per day for use in a prompt.
// It returns "" when there is no forecast.
func (f *Forecast) Summary(n int) string {
	days := f.Days(n)
	if len(days) == 0 {
		return ""
	}

	lines := make([]string, 0, len(days))
	for _, d := range days {
		lines = append(lines, d.String())
	}
	return strings.Join(lines, "\n")
}

// String formats the day as a single summary line
func (d ForecastDay) String() string {
	return fmt.Sprintf("%s: High %s, Low %s, %s precipitation, %s",
		d.Date, withUnit(d.MaxTemp, "°C"), withUnit(d.MinTemp, "°C"), withUnit(d.Precipitation, "mm"), d.Conditions)
}

// FormatValue prints v with one decimal, or NotAvailable when v is nil
func FormatValue(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", *v)
}

func withUnit(v *float64, unit string) string {
	if v == nil {
		return NotAvailable
	}
	return FormatValue(v) + unit
}

// Validate checks that every daily series covers at least as many days as Time.
func (s DailySeries) Validate() error {
	n := len(s.Time)
	switch {
	case len(s.TemperatureMax) < n:
		return fmt.Errorf("temperature_2m_max has %d values, want %d", len(s.TemperatureMax), n)
	case len(s.TemperatureMin) < n:
		return fmt.Errorf("temperature_2m_min has %d values, want %d", len(s.TemperatureMin), n)
	case len(s.PrecipitationSum) < n:
		return fmt.Errorf("precipitation_sum has %d values, want %d", len(s.PrecipitationSum), n)
	case len(s.WeatherCode) < n:
		return fmt.Errorf("weather_code has %d values, want %d", len(s.WeatherCode), n)
	}
	return nil
}
