package analysis

// Models offered for the comparison, by OpenRouter model ID
var Models = []string{
	"openai/gpt-4-turbo-preview",
	"anthropic/claude-3-opus",
	"google/gemini-pro",
}

// DefaultModel is the model selected when none is chosen
var DefaultModel = Models[0]

// IsSupportedModel reports whether model is one of Models
func IsSupportedModel(model string) bool {
	for _, m := range Models {
		if m == model {
			return true
		}
	}
	return false
}
