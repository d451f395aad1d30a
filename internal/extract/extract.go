package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/RyanBlaney/emotion-drift/internal/llm"
	"github.com/RyanBlaney/emotion-drift/pkg/logging"
	"github.com/RyanBlaney/emotion-drift/pkg/wave"
)

// Extractor maps free text to an EmotionalSample through a language model,
// falling back to deterministic lexicon analysis when the model is
// unavailable or returns something unusable.
type Extractor struct {
	generator   llm.Generator
	temperature float64
	maxTokens   int
	logger      logging.Logger
}

// Config contains extractor settings
type Config struct {
	Temperature float64
	MaxTokens   int
}

// NewExtractor creates an extractor over the given generator. A nil
// generator means every extraction uses the lexicon fallback.
func NewExtractor(generator llm.Generator, cfg Config) *Extractor {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1000
	}
	return &Extractor{
		generator:   generator,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logging.WithFields(logging.Fields{"component": "emotion_extractor"}),
	}
}

// Extract analyzes text and returns a sample stamped with the current time.
// The trajectory string carries recent emotional context for continuity.
// Extraction never fails: model errors degrade to the lexicon fallback.
func (e *Extractor) Extract(ctx context.Context, text, trajectory string) wave.EmotionalSample {
	if e.generator == nil {
		return FallbackSample(text)
	}

	output, err := e.generator.Generate(ctx, llm.Request{
		Instructions: extractionInstructions,
		Prompt:       buildExtractionPrompt(text, trajectory),
		Temperature:  e.temperature,
		MaxTokens:    e.maxTokens,
	})
	if err != nil {
		e.logger.Warn("model extraction failed, using lexicon fallback", logging.Fields{
			"error": err.Error(),
		})
		return FallbackSample(text)
	}

	sample, err := parseEmotionResponse(output)
	if err != nil {
		e.logger.Warn("unparseable model output, using neutral sample", logging.Fields{
			"error": err.Error(),
		})
		return neutralSample()
	}
	return sample
}

var jsonObjectPattern = regexp.MustCompile(`\{[^{}]*\}`)

type emotionResponse struct {
	Valence   *float64 `json:"valence"`
	Arousal   *float64 `json:"arousal"`
	Dominance *float64 `json:"dominance"`
	Intensity *float64 `json:"intensity"`
	Reasoning string   `json:"reasoning"`
}

// parseEmotionResponse locates a JSON object inside the model output and
// decodes the four dimensions, clamping each to its declared range. Missing
// fields take mid-scale defaults.
func parseEmotionResponse(output string) (wave.EmotionalSample, error) {
	match := jsonObjectPattern.FindString(output)
	if match == "" {
		return wave.EmotionalSample{}, fmt.Errorf("no JSON object in model output")
	}

	var resp emotionResponse
	if err := json.Unmarshal([]byte(match), &resp); err != nil {
		return wave.EmotionalSample{}, fmt.Errorf("decoding model output: %w", err)
	}

	return wave.EmotionalSample{
		Timestamp: time.Now(),
		Valence:   wave.DimensionValence.Clamp(orDefault(resp.Valence, 0.0)),
		Arousal:   wave.DimensionArousal.Clamp(orDefault(resp.Arousal, 0.5)),
		Dominance: wave.DimensionDominance.Clamp(orDefault(resp.Dominance, 0.0)),
		Intensity: wave.DimensionIntensity.Clamp(orDefault(resp.Intensity, 0.5)),
	}, nil
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func neutralSample() wave.EmotionalSample {
	return wave.EmotionalSample{
		Timestamp: time.Now(),
		Valence:   0.0,
		Arousal:   0.5,
		Dominance: 0.0,
		Intensity: 0.3,
	}
}
