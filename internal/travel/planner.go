package travel

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/ngmaloney/travel-weather/internal/analysis"
	"github.com/ngmaloney/travel-weather/internal/geocoding"
	"github.com/ngmaloney/travel-weather/internal/models"
	"github.com/ngmaloney/travel-weather/internal/openmeteo"
)

// Side is everything gathered for one end of the trip
type Side struct {
	Role     string               `json:"role"`
	Address  string               `json:"address"`
	Location *geocoding.Location  `json:"location"`
	Forecast *models.Forecast     `json:"-"`
	Days     []models.ForecastDay `json:"days,omitempty"`
	Summary  string               `json:"summary"`
}

// Report is the result of a successful comparison.
// Analysis holds either the model's answer or a message explaining why there is none.
type Report struct {
	ID          string `json:"id"`
	Origin      Side   `json:"origin"`
	Destination Side   `json:"destination"`
	Days        int    `json:"days"`
	Model       string `json:"model"`
	Detailed    bool   `json:"detailed"`
	Analysis    string `json:"analysis"`
}

// Comparer runs a full trip comparison; *Planner is the production implementation
type Comparer interface {
	Compare(ctx context.Context, req Request) (*Report, error)
}

// Planner orchestrates geocoding, forecasting and analysis for a trip
type Planner struct {
	geocoder  geocoding.AddressGeocoder
	forecasts openmeteo.ForecastClient
	analyst   analysis.Analyst
}

// NewPlanner creates a planner from its three collaborators
func NewPlanner(geocoder geocoding.AddressGeocoder, forecasts openmeteo.ForecastClient, analyst analysis.Analyst) *Planner {
	return &Planner{
		geocoder:  geocoder,
		forecasts: forecasts,
		analyst:   analyst,
	}
}

// Compare runs the full pipeline for one request.
// Geocode and forecast failures stop the pipeline and come back as *StageError;
// analysis problems never do and end up in Report.Analysis instead.
func (p *Planner) Compare(ctx context.Context, req Request) (*Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		ID:          uuid.NewString(),
		Origin:      Side{Role: "origin", Address: strings.TrimSpace(req.Origin)},
		Destination: Side{Role: "destination", Address: strings.TrimSpace(req.Destination)},
		Days:        req.Days,
		Model:       req.Model,
		Detailed:    req.Detailed,
	}
	log.Printf("[%s] comparing %q -> %q (%d days, %s)", report.ID, report.Origin.Address, report.Destination.Address, req.Days, req.Model)

	// 1. Geocode both addresses; both must resolve
	originErr := p.locate(ctx, &report.Origin)
	destinationErr := p.locate(ctx, &report.Destination)
	if err := errors.Join(originErr, destinationErr); err != nil {
		log.Printf("[%s] geocoding failed: %v", report.ID, err)
		return nil, err
	}

	// 2. Fetch both forecasts
	originErr = p.fetch(ctx, &report.Origin, req.Days)
	destinationErr = p.fetch(ctx, &report.Destination, req.Days)
	if err := errors.Join(originErr, destinationErr); err != nil {
		log.Printf("[%s] forecast failed: %v", report.ID, err)
		return nil, err
	}

	// 3. Build the table rows and prompt text for each side
	for _, side := range []*Side{&report.Origin, &report.Destination} {
		side.Days = side.Forecast.Days(req.Days)
		side.Summary = side.Forecast.Summary(req.Days)
	}

	// 4. Ask the model for a comparison
	report.Analysis = p.analyst.Generate(ctx, analysis.Request{
		OriginForecast:      report.Origin.Summary,
		DestinationForecast: report.Destination.Summary,
		Days:                req.Days,
		Model:               req.Model,
		APIKey:              req.APIKey,
	})
	log.Printf("[%s] analysis complete (%d chars)", report.ID, len(report.Analysis))

	return report, nil
}

var _ Comparer = (*Planner)(nil)

// locate geocodes one side of the trip
func (p *Planner) locate(ctx context.Context, side *Side) error {
	loc, err := p.geocoder.Geocode(ctx, side.Address)
	if err != nil {
		return &StageError{Stage: StageGeocode, Role: side.Role, Address: side.Address, Err: err}
	}
	side.Location = loc
	return nil
}

// fetch retrieves the forecast for a side that has already been located
func (p *Planner) fetch(ctx context.Context, side *Side, days int) error {
	if side.Location == nil {
		return nil
	}
	forecast, err := p.forecasts.GetDailyForecast(ctx, side.Location.Latitude, side.Location.Longitude, days)
	if err != nil {
		return &StageError{Stage: StageForecast, Role: side.Role, Address: side.Address, Err: err}
	}
	side.Forecast = forecast
	return nil
}
