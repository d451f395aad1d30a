package insight

import "github.com/RyanBlaney/emotion-drift/pkg/wave"

// Interpretation bands for rendering numeric dimensions as short labels.

func InterpretValence(valence float64) string {
	switch {
	case valence > 0.5:
		return "very positive"
	case valence > 0.2:
		return "positive"
	case valence > -0.2:
		return "neutral"
	case valence > -0.5:
		return "negative"
	default:
		return "very negative"
	}
}

func InterpretArousal(arousal float64) string {
	switch {
	case arousal > 0.7:
		return "high energy"
	case arousal > 0.4:
		return "moderate energy"
	default:
		return "low energy"
	}
}

func InterpretDominance(dominance float64) string {
	switch {
	case dominance > 0.3:
		return "in control"
	case dominance > -0.3:
		return "balanced"
	default:
		return "less control"
	}
}

func InterpretIntensity(intensity float64) string {
	switch {
	case intensity > 0.7:
		return "very intense"
	case intensity > 0.4:
		return "moderate"
	default:
		return "mild"
	}
}

func InterpretDriftScore(score float64) string {
	switch {
	case score > 0.7:
		return "high drift"
	case score > 0.4:
		return "moderate drift"
	default:
		return "stable"
	}
}

func InterpretStability(stability float64) string {
	switch {
	case stability > 0.7:
		return "very stable"
	case stability > 0.4:
		return "moderately stable"
	default:
		return "unstable"
	}
}

func InterpretVolatility(volatility float64) string {
	switch {
	case volatility > 0.5:
		return "high volatility"
	case volatility > 0.2:
		return "moderate volatility"
	default:
		return "low volatility"
	}
}

func InterpretFrequency(frequency float64) string {
	switch {
	case frequency > 0.5:
		return "rapid cycles"
	case frequency > 0.2:
		return "moderate cycles"
	default:
		return "slow cycles"
	}
}

func InterpretTrend(trend wave.TrendDirection) string {
	switch trend {
	case wave.TrendImproving:
		return "improving"
	case wave.TrendDeclining:
		return "declining"
	default:
		return "steady"
	}
}
