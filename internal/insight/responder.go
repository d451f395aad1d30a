package insight

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/RyanBlaney/emotion-drift/internal/llm"
	"github.com/RyanBlaney/emotion-drift/pkg/logging"
	"github.com/RyanBlaney/emotion-drift/pkg/wave"
)

const responderInstructions = "You are a warm, emotionally attuned companion. Reply in one to three short sentences that acknowledge the person's state without diagnosing or lecturing."

// Responder generates a short supportive reply to the user's message,
// informed by the current sample and drift snapshot. When no generator is
// available or generation fails, a deterministic fallback is used.
type Responder struct {
	generator   llm.Generator
	temperature float64
	maxTokens   int
	logger      logging.Logger
}

// NewResponder creates a responder over the given generator (may be nil)
func NewResponder(generator llm.Generator, temperature float64, maxTokens int) *Responder {
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	return &Responder{
		generator:   generator,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      logging.WithFields(logging.Fields{"component": "responder"}),
	}
}

// Respond produces a supportive reply. Never fails; degrades to the
// deterministic fallback response.
func (r *Responder) Respond(ctx context.Context, userText string, sample wave.EmotionalSample, result wave.DriftResult) string {
	if r.generator == nil {
		return FallbackResponse(sample, result)
	}

	prompt := fmt.Sprintf(
		"The person said: %q\n\nTheir current emotional read: valence %.2f (%s), arousal %.2f (%s), dominance %.2f (%s), intensity %.2f (%s).\nTrend: %s. Stability: %s. Drift: %s.\n\nReply supportively.",
		userText,
		sample.Valence, InterpretValence(sample.Valence),
		sample.Arousal, InterpretArousal(sample.Arousal),
		sample.Dominance, InterpretDominance(sample.Dominance),
		sample.Intensity, InterpretIntensity(sample.Intensity),
		result.TrendDirection,
		InterpretStability(result.StabilityIndex),
		InterpretDriftScore(result.DriftScore),
	)

	reply, err := r.generator.Generate(ctx, llm.Request{
		Instructions: responderInstructions,
		Prompt:       prompt,
		Temperature:  r.temperature,
		MaxTokens:    r.maxTokens,
	})
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			r.logger.Warn("response generation failed, using fallback", logging.Fields{
				"error": err.Error(),
			})
		}
		return FallbackResponse(sample, result)
	}
	return strings.TrimSpace(reply)
}

// FallbackResponse picks a canned reply matched to the person's energy
// level and trend when model generation is unavailable.
func FallbackResponse(sample wave.EmotionalSample, result wave.DriftResult) string {
	valence := sample.Valence
	arousal := sample.Arousal
	trend := result.TrendDirection

	if trend == wave.TrendDeclining && valence < -0.3 {
		if arousal < 0.3 {
			return "You've been gradually moving from energized to flat. It's okay to name that. Want to pause for a 2-minute breath reset?"
		}
		return "That sounds really draining. I can hear how done you are with all this."
	}

	if trend == wave.TrendImproving && valence > 0.2 {
		if arousal > 0.5 {
			return "I can feel your energy picking up! That's awesome to hear."
		}
		return "Sounds like things are looking up a bit. That's really good."
	}

	if math.Abs(valence) < 0.2 {
		if arousal < 0.3 {
			return "Sounds like one of those blah days. I get that feeling."
		}
		return "How's your day been treating you?"
	}

	if valence < -0.4 {
		return "That's really tough. I'm here if you want to talk about it."
	}

	if valence > 0.4 {
		return "I can hear how good that feels! Tell me more."
	}

	return "Thanks for sharing that with me. How are you doing?"
}
