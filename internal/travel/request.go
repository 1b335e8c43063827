package travel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ngmaloney/travel-weather/internal/analysis"
)

const (
	MinDays     = 1
	MaxDays     = 7
	DefaultDays = 3
)

// MsgMissingInput is the warning shown when an address is blank
const MsgMissingInput = "Please enter both origin and destination addresses"

var (
	// ErrMissingInput means an address was blank; nothing was requested
	ErrMissingInput = errors.New("origin and destination addresses are required")

	// ErrInvalidRequest means the day count or model is outside the allowed set
	ErrInvalidRequest = errors.New("invalid request")
)

// Request describes one comparison as entered by the user
type Request struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Model       string `json:"model"`
	Detailed    bool   `json:"detailed"`
	APIKey      string `json:"api_key,omitempty"`
}

// Validate enforces the input rules shared by every presentation layer
func (r Request) Validate() error {
	if strings.TrimSpace(r.Origin) == "" || strings.TrimSpace(r.Destination) == "" {
		return ErrMissingInput
	}
	if r.Days < MinDays || r.Days > MaxDays {
		return fmt.Errorf("%w: days must be between %d and %d, got %d", ErrInvalidRequest, MinDays, MaxDays, r.Days)
	}
	if !analysis.IsSupportedModel(r.Model) {
		return fmt.Errorf("%w: unsupported model %q", ErrInvalidRequest, r.Model)
	}
	return nil
}
