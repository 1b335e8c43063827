package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings shared by both binaries
type Config struct {
	OpenRouterAPIKey string
	NominatimURL     string
	OpenMeteoURL     string
	OpenRouterURL    string
	ListenAddr       string
	DebugLogPath     string
	RequestTimeout   time.Duration
}

// Load reads an optional .env file and then the process environment.
// Unset values fall back to defaults; the client packages fill in public endpoints.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		NominatimURL:     os.Getenv("TRAVEL_WEATHER_NOMINATIM_URL"),
		OpenMeteoURL:     os.Getenv("TRAVEL_WEATHER_OPENMETEO_URL"),
		OpenRouterURL:    os.Getenv("TRAVEL_WEATHER_OPENROUTER_URL"),
		ListenAddr:       envOrDefault("TRAVEL_WEATHER_ADDR", ":8080"),
		DebugLogPath:     os.Getenv("TRAVEL_WEATHER_DEBUG"),
		RequestTimeout:   90 * time.Second,
	}

	if raw := os.Getenv("TRAVEL_WEATHER_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Printf("Warning: ignoring invalid TRAVEL_WEATHER_TIMEOUT %q", raw)
		} else {
			cfg.RequestTimeout = d
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
