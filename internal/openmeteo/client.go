package openmeteo

import (
	"context"

	"github.com/ngmaloney/travel-weather/internal/models"
)

// ForecastClient defines the interface for fetching daily forecasts
type ForecastClient interface {
	// GetDailyForecast retrieves daily aggregates for the next days days at lat/lon
	GetDailyForecast(ctx context.Context, lat, lon float64, days int) (*models.Forecast, error)
}
