package travel

import "fmt"

// Stage names the pipeline step that failed
type Stage string

const (
	StageGeocode  Stage = "geocode"
	StageForecast Stage = "forecast"
)

// StageError reports which side of the trip failed and at which step
type StageError struct {
	Stage   Stage
	Role    string // "origin" or "destination"
	Address string
	Err     error
}

func (e *StageError) Error() string {
	switch e.Stage {
	case StageGeocode:
		return fmt.Sprintf("could not find coordinates for %s '%s': %v", e.Role, e.Address, e.Err)
	case StageForecast:
		return fmt.Sprintf("could not retrieve weather data for %s '%s': %v", e.Role, e.Address, e.Err)
	}
	return fmt.Sprintf("%s %s '%s': %v", e.Stage, e.Role, e.Address, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
