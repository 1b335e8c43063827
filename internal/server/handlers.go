package server

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ngmaloney/travel-weather/internal/analysis"
	"github.com/ngmaloney/travel-weather/internal/travel"
)

// Handler contains all HTTP handlers
type Handler struct {
	planner travel.Comparer
	cfg     Config
}

// NewHandler creates a new handler
func NewHandler(planner travel.Comparer, cfg Config) *Handler {
	return &Handler{
		planner: planner,
		cfg:     cfg,
	}
}

// compareRequest is the JSON body of POST /api/compare.
// Detailed is a pointer so an omitted field keeps the default of true.
type compareRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Model       string `json:"model"`
	Detailed    *bool  `json:"detailed"`
	APIKey      string `json:"api_key"`
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "travel-weather",
	})
}

// ListModels returns the selectable models and day bounds
func (h *Handler) ListModels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"models":        analysis.Models,
		"default_model": analysis.DefaultModel,
		"min_days":      travel.MinDays,
		"max_days":      travel.MaxDays,
		"default_days":  travel.DefaultDays,
	})
}

// Compare runs the full comparison for the posted trip
func (h *Handler) Compare(c *fiber.Ctx) error {
	var body compareRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}

	req := travel.Request{
		Origin:      body.Origin,
		Destination: body.Destination,
		Days:        body.Days,
		Model:       body.Model,
		Detailed:    body.Detailed == nil || *body.Detailed,
		APIKey:      h.apiKey(c, body.APIKey),
	}
	if req.Days == 0 {
		req.Days = travel.DefaultDays
	}
	if req.Model == "" {
		req.Model = analysis.DefaultModel
	}

	if err := req.Validate(); err != nil {
		if errors.Is(err, travel.ErrMissingInput) {
			return fiber.NewError(fiber.StatusBadRequest, travel.MsgMissingInput)
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.cfg.RequestTimeout)
	defer cancel()

	report, err := h.planner.Compare(ctx, req)
	if err != nil {
		var stageErr *travel.StageError
		if errors.As(err, &stageErr) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":   true,
				"stage":   stageErr.Stage,
				"message": err.Error(),
			})
		}
		log.Printf("compare failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compare forecasts")
	}

	c.Set("X-Request-ID", report.ID)

	if !report.Detailed {
		trimmed := *report
		trimmed.Origin.Days = nil
		trimmed.Destination.Days = nil
		report = &trimmed
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}

// apiKey picks the request's key, then a bearer token, then the configured default
func (h *Handler) apiKey(c *fiber.Ctx, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return h.cfg.DefaultAPIKey
}
