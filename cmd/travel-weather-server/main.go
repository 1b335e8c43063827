package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ngmaloney/travel-weather/internal/analysis"
	"github.com/ngmaloney/travel-weather/internal/config"
	"github.com/ngmaloney/travel-weather/internal/geocoding"
	"github.com/ngmaloney/travel-weather/internal/openmeteo"
	"github.com/ngmaloney/travel-weather/internal/server"
	"github.com/ngmaloney/travel-weather/internal/travel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	addr := flag.String("addr", cfg.ListenAddr, "Address to listen on")
	flag.Parse()

	planner := travel.NewPlanner(
		geocoding.NewGeocoder(geocoding.WithBaseURL(cfg.NominatimURL)),
		openmeteo.NewClient(cfg.OpenMeteoURL),
		analysis.NewGenerator(cfg.OpenRouterURL),
	)

	app := server.New(planner, server.Config{
		DefaultAPIKey:  cfg.OpenRouterAPIKey,
		RequestTimeout: cfg.RequestTimeout,
	})

	go func() {
		log.Printf("Server starting on %s", *addr)
		if err := app.Listen(*addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}
