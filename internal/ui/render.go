package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ngmaloney/travel-weather/internal/analysis"
	"github.com/ngmaloney/travel-weather/internal/models"
	"github.com/ngmaloney/travel-weather/internal/travel"
)

// forecastHeaders are the column titles of every forecast table
var forecastHeaders = []string{"Date", "Max Temp (°C)", "Min Temp (°C)", "Precip (mm)", "Conditions"}

// renderSides lays out the origin and destination panes, side by side when they fit
func (m Model) renderSides() string {
	origin := renderSide("Origin", m.report.Origin)
	destination := renderSide("Destination", m.report.Destination)

	if lipgloss.Width(origin)+lipgloss.Width(destination) <= m.width {
		return lipgloss.JoinHorizontal(lipgloss.Top, origin, destination)
	}
	return lipgloss.JoinVertical(lipgloss.Left, origin, destination)
}

// renderSide renders the heading, coordinates and table for one location
func renderSide(label string, side travel.Side) string {
	var lines []string
	lines = append(lines, titleStyle.Render(fmt.Sprintf("%s: %s", label, side.Address)))

	if side.Location != nil {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("Coordinates: %.4f, %.4f",
			side.Location.Latitude, side.Location.Longitude)))
	}

	lines = append(lines, renderForecastTable(side.Days))

	return paneStyle.Render(strings.Join(lines, "\n"))
}

// renderForecastTable renders one row per forecast day
func renderForecastTable(days []models.ForecastDay) string {
	if len(days) == 0 {
		return mutedStyle.Render("No weather data available")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(forecastHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	for _, d := range days {
		t.Row(
			d.Date,
			models.FormatValue(d.MaxTemp),
			models.FormatValue(d.MinTemp),
			models.FormatValue(d.Precipitation),
			d.Conditions,
		)
	}

	return t.Render()
}

// renderAnalysis wraps the analysis text to the window, colouring non-answers
func (m Model) renderAnalysis() string {
	width := m.width - 4
	if width < 40 {
		width = 40
	}
	wrapped := lipgloss.NewStyle().Width(width).Padding(0, 1)

	text := m.report.Analysis
	switch {
	case text == analysis.MsgMissingAPIKey, text == analysis.MsgMissingForecasts:
		return wrapped.Inherit(warningStyle).Render(text)
	case strings.HasPrefix(text, analysis.ErrorPrefix):
		return wrapped.Inherit(errorStyle).Render(text)
	case text == "":
		return wrapped.Inherit(mutedStyle).Render("No analysis available")
	}
	return wrapped.Inherit(valueStyle).Render(text)
}
