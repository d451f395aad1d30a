package extract

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/emotion-drift/pkg/wave"
)

const extractionInstructions = "You are an expert emotional analyst specializing in wave-based emotional modeling. Respond only with valid JSON."

const extractionPromptTemplate = `Analyze the following text and extract emotional dimensions with precise numerical values.

Context from previous interactions: %s

Text to analyze: %q

Provide a JSON response with the following emotional dimensions:

1. **Valence**: Emotional positivity/negativity (-1.0 to 1.0)
   - -1.0: Extremely negative (despair, hatred, severe depression)
   - -0.5: Moderately negative (sadness, frustration, disappointment)
   - 0.0: Neutral (calm, indifferent, balanced)
   - 0.5: Moderately positive (contentment, mild joy, satisfaction)
   - 1.0: Extremely positive (euphoria, intense joy, love)

2. **Arousal**: Emotional energy/activation level (0.0 to 1.0)
   - 0.0: Very low energy (calm, sleepy, relaxed, peaceful)
   - 0.3: Low-moderate energy (content, steady, composed)
   - 0.7: High energy (excited, alert, energetic, tense)
   - 1.0: Extremely high energy (frantic, ecstatic, panicked, rage)

3. **Dominance**: Sense of control/power (-1.0 to 1.0)
   - -1.0: Completely powerless (helpless, submissive, controlled)
   - 0.0: Balanced control (cooperative, equal partnership)
   - 1.0: Complete dominance (commanding, controlling, authoritative)

4. **Intensity**: Overall emotional strength (0.0 to 1.0)
   - 0.0: No emotional response (completely flat, emotionless)
   - 0.3: Mild emotional response (slight feelings, subtle)
   - 0.7: Strong emotional response (clear, noticeable feelings)
   - 1.0: Overwhelming emotional response (intense, all-consuming)

Consider subtle emotional cues, implicit feelings, and continuity with the
previous interactions.

Respond ONLY with a valid JSON object in this exact format:
{
  "valence": <float>,
  "arousal": <float>,
  "dominance": <float>,
  "intensity": <float>,
  "reasoning": "<brief explanation of the emotional analysis>"
}`

func buildExtractionPrompt(text, trajectory string) string {
	if trajectory == "" {
		trajectory = "No previous emotional context available."
	}
	return fmt.Sprintf(extractionPromptTemplate, trajectory, text)
}

// TrajectoryContext formats the most recent samples (up to 3) into a
// context string carried into the next extraction for continuity.
func TrajectoryContext(recent []wave.EmotionalSample) string {
	if len(recent) == 0 {
		return "No previous emotional context available."
	}
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}

	parts := make([]string, 0, len(recent))
	for i, sample := range recent {
		parts = append(parts, fmt.Sprintf(
			"Point %d: Valence=%.2f, Arousal=%.2f, Dominance=%.2f, Intensity=%.2f",
			i+1, sample.Valence, sample.Arousal, sample.Dominance, sample.Intensity,
		))
	}

	return "Recent emotional trajectory: " + strings.Join(parts, "; ")
}
