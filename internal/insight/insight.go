package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/RyanBlaney/emotion-drift/pkg/wave"
)

// DriftAlert returns an alert message when the drift score crosses the
// configured threshold. The second return is false when no alert applies.
func DriftAlert(result wave.DriftResult, threshold float64) (string, bool) {
	if result.DriftScore < threshold {
		return "", false
	}

	var parts []string
	if result.EmotionalVolatility > 0.7 {
		parts = append(parts, "high emotional volatility")
	}
	if result.StabilityIndex < 0.3 {
		parts = append(parts, "emotional instability")
	}
	if result.TrendDirection == wave.TrendDeclining && result.DriftScore > 0.7 {
		parts = append(parts, "concerning downward trend")
	}
	if len(parts) == 0 {
		parts = append(parts, "significant emotional shift")
	}

	msg := "Emotional drift alert: detected " + strings.Join(parts, ", ") +
		". Consider checking in more frequently or seeking additional support."
	return msg, true
}

// Summary builds a human-readable insight summary from a drift snapshot
// and the history that produced it.
func Summary(result wave.DriftResult, history []wave.EmotionalSample) string {
	var insights []string

	if result.DriftScore > 0.5 {
		insights = append(insights, fmt.Sprintf("Significant emotional drift detected (score: %.2f)", result.DriftScore))
	}

	if result.TrendDirection != wave.TrendStable {
		insights = append(insights, fmt.Sprintf("Overall trend: %s", result.TrendDirection))
	}

	if result.StabilityIndex < 0.4 {
		insights = append(insights, fmt.Sprintf("High emotional variability (stability: %.2f)", result.StabilityIndex))
	} else if result.StabilityIndex > 0.8 {
		insights = append(insights, fmt.Sprintf("High emotional stability (stability: %.2f)", result.StabilityIndex))
	}

	if result.DominantFrequency > 0.5 {
		insights = append(insights, fmt.Sprintf("Rapid emotional cycles detected (frequency: %.2f)", result.DominantFrequency))
	}

	if predicted, ok := result.PredictedNextState[wave.DimensionValence]; ok && math.Abs(predicted) > 0.5 {
		direction := "positive"
		if predicted < 0 {
			direction = "negative"
		}
		insights = append(insights, fmt.Sprintf("Predicted shift toward %s emotions", direction))
	}

	if len(insights) == 0 {
		insights = append(insights, "Emotional patterns appear stable and balanced")
	}

	return strings.Join(insights, "\n")
}
