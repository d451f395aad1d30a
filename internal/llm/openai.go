package llm

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/RyanBlaney/emotion-drift/pkg/logging"
)

// OpenAIGenerator generates text through the OpenAI Responses API. The same
// type backs the "local" backend, pointed at any OpenAI-compatible server.
type OpenAIGenerator struct {
	client openai.Client
	model  string
	logger logging.Logger
}

// NewOpenAIGenerator creates a generator against the hosted OpenAI API
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: logging.WithFields(logging.Fields{
			"component": "llm_generator",
			"backend":   "openai",
			"model":     model,
		}),
	}
}

// NewLocalGenerator creates a generator against an OpenAI-compatible
// endpoint (ollama, llama.cpp server, vLLM, ...)
func NewLocalGenerator(baseURL, apiKey, model string) *OpenAIGenerator {
	if apiKey == "" {
		apiKey = "local"
	}
	return &OpenAIGenerator{
		client: openai.NewClient(
			option.WithBaseURL(baseURL),
			option.WithAPIKey(apiKey),
		),
		model: model,
		logger: logging.WithFields(logging.Fields{
			"component": "llm_generator",
			"backend":   "local",
			"base_url":  baseURL,
			"model":     model,
		}),
	}
}

// Generate runs a single completion and returns the raw output text
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	params := responses.ResponseNewParams{
		Model:           g.model,
		Instructions:    openai.String(req.Instructions),
		Temperature:     openai.Float(req.Temperature),
		MaxOutputTokens: openai.Int(int64(req.MaxTokens)),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(req.Prompt),
		},
	}

	resp, err := callWithRetry(ctx, &g.client, params)
	if err != nil {
		g.logger.Warn("generation failed", logging.Fields{"error": err.Error()})
		return "", err
	}

	return resp.OutputText(), nil
}
