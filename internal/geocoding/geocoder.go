package geocoding

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "TravelWeatherForecast/1.0 (github.com/ngmaloney/travel-weather)" // Required by Nominatim ToS
)

var (
	// ErrEmptyAddress is returned before any request when the address is blank
	ErrEmptyAddress = errors.New("address cannot be empty")

	// ErrNoMatch is returned when the geocoding service has no result for the address
	ErrNoMatch = errors.New("no matching location")
)

// AddressGeocoder resolves free-text addresses to coordinates
type AddressGeocoder interface {
	Geocode(ctx context.Context, address string) (*Location, error)
}

// Location represents a geocoded location
type Location struct {
	Query     string  `json:"query"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// Geocoder converts addresses to coordinates using Nominatim
type Geocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Geocoder
type Option func(*Geocoder)

// WithBaseURL points the geocoder at another Nominatim instance
func WithBaseURL(url string) Option {
	return func(g *Geocoder) {
		if url != "" {
			g.baseURL = url
		}
	}
}

// WithUserAgent overrides the identifying User-Agent header
func WithUserAgent(ua string) Option {
	return func(g *Geocoder) {
		if ua != "" {
			g.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(g *Geocoder) {
		if c != nil {
			g.httpClient = c
		}
	}
}

// NewGeocoder creates a new geocoder
func NewGeocoder(opts ...Option) *Geocoder {
	g := &Geocoder{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ AddressGeocoder = (*Geocoder)(nil)
