package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/travel-weather/internal/travel"
)

// Message types for async operations

// comparisonMsg is sent when the comparison pipeline finishes
type comparisonMsg struct {
	report *travel.Report
	err    error
}

// compareTrip runs the whole pipeline in the background
func compareTrip(planner travel.Comparer, req travel.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		report, err := planner.Compare(ctx, req)
		return comparisonMsg{report: report, err: err}
	}
}
