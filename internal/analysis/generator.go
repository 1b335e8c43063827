package analysis

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"

	// Temperature is the fixed sampling temperature for every comparison
	Temperature = 0.7

	// MsgMissingAPIKey is returned instead of calling the API without a key
	MsgMissingAPIKey = "Please enter your OpenRouter API key"

	// MsgMissingForecasts is returned when either formatted forecast is absent
	MsgMissingForecasts = "Please provide both origin and destination addresses"

	// ErrorPrefix starts every message that stands in for a failed completion
	ErrorPrefix = "Error generating analysis: "
)

// Request carries everything needed for one comparison
type Request struct {
	OriginForecast      string
	DestinationForecast string
	Days                int
	Model               string
	APIKey              string
}

// Analyst produces a natural-language comparison of two forecasts.
// It never fails: problems are reported in the returned text.
type Analyst interface {
	Generate(ctx context.Context, req Request) string
}

// Generator implements Analyst with an OpenAI-compatible chat completion API
type Generator struct {
	baseURL    string
	httpClient *http.Client
}

// NewGenerator creates a generator. An empty baseURL selects OpenRouter.
func NewGenerator(baseURL string) *Generator {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Generate asks the selected model to compare the two forecasts
func (g *Generator) Generate(ctx context.Context, req Request) string {
	if req.APIKey == "" {
		return MsgMissingAPIKey
	}
	if req.OriginForecast == "" || req.DestinationForecast == "" {
		return MsgMissingForecasts
	}

	config := openai.DefaultConfig(req.APIKey)
	config.BaseURL = g.baseURL
	config.HTTPClient = g.httpClient
	client := openai.NewClientWithConfig(config)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(req)},
		},
		Temperature: Temperature,
	})
	if err != nil {
		return ErrorPrefix + err.Error()
	}
	if len(resp.Choices) == 0 {
		return ErrorPrefix + "no completion choices returned"
	}

	return resp.Choices[0].Message.Content
}

// BuildPrompt embeds both forecasts in the comparison instructions
func BuildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Analyze these weather forecasts for a trip:\n\n")
	fmt.Fprintf(&b, "Origin Weather Forecast (%d days):\n%s\n\n", req.Days, req.OriginForecast)
	fmt.Fprintf(&b, "Destination Weather Forecast (%d days):\n%s\n\n", req.Days, req.DestinationForecast)
	b.WriteString("Provide a concise comparison and travel recommendations based on the weather differences.\n")
	b.WriteString("Highlight any significant weather events or packing suggestions.\n")
	return b.String()
}

var _ Analyst = (*Generator)(nil)
