package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/travel-weather/internal/analysis"
	"github.com/ngmaloney/travel-weather/internal/config"
	"github.com/ngmaloney/travel-weather/internal/geocoding"
	"github.com/ngmaloney/travel-weather/internal/openmeteo"
	"github.com/ngmaloney/travel-weather/internal/travel"
	"github.com/ngmaloney/travel-weather/internal/ui"
)

func main() {
	days := flag.Int("days", travel.DefaultDays, "Number of forecast days to compare (1-7)")
	model := flag.String("model", analysis.DefaultModel, "OpenRouter model used for the analysis")
	brief := flag.Bool("brief", false, "Start with the detailed forecast tables turned off")
	flag.Parse()

	if *days < travel.MinDays || *days > travel.MaxDays {
		fmt.Printf("Error: --days must be between %d and %d\n", travel.MinDays, travel.MaxDays)
		os.Exit(1)
	}
	if !analysis.IsSupportedModel(*model) {
		fmt.Printf("Error: unsupported model %q\n", *model)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the terminal UI
	if cfg.DebugLogPath != "" {
		f, err := tea.LogToFile(cfg.DebugLogPath, "travel-weather")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	planner := travel.NewPlanner(
		geocoding.NewGeocoder(geocoding.WithBaseURL(cfg.NominatimURL)),
		openmeteo.NewClient(cfg.OpenMeteoURL),
		analysis.NewGenerator(cfg.OpenRouterURL),
	)

	opts := ui.Options{
		APIKey:  cfg.OpenRouterAPIKey,
		Model:   *model,
		Days:    *days,
		Brief:   *brief,
		Timeout: cfg.RequestTimeout,
	}

	p := tea.NewProgram(ui.NewModel(planner, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
