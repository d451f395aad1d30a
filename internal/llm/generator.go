package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/RyanBlaney/emotion-drift/configs"
)

// Request describes a single text-generation call
type Request struct {
	Instructions string
	Prompt       string
	Temperature  float64
	MaxTokens    int
}

// Generator is the single-capability text generation interface. Both
// backends implement it; callers never depend on a concrete backend.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// NewFromConfig creates the generator selected by the configuration
func NewFromConfig(cfg configs.LLMConfig) (Generator, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)

	switch cfg.Backend {
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("llm backend %q requires %s to be set", cfg.Backend, cfg.APIKeyEnv)
		}
		return NewOpenAIGenerator(apiKey, cfg.Model), nil
	case "local":
		return NewLocalGenerator(cfg.BaseURL, apiKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm backend: %s", cfg.Backend)
	}
}
