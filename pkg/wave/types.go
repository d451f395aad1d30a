package wave

import "time"

// Dimension identifies one of the four tracked emotional dimensions
type Dimension string

const (
	DimensionValence   Dimension = "valence"
	DimensionArousal   Dimension = "arousal"
	DimensionDominance Dimension = "dominance"
	DimensionIntensity Dimension = "intensity"
)

// Dimensions returns all tracked dimensions in canonical order
func Dimensions() []Dimension {
	return []Dimension{DimensionValence, DimensionArousal, DimensionDominance, DimensionIntensity}
}

// Bounds returns the valid value range for the dimension.
// Valence and dominance are bipolar [-1, 1]; arousal and intensity are [0, 1].
func (d Dimension) Bounds() (low, high float64) {
	switch d {
	case DimensionValence, DimensionDominance:
		return -1.0, 1.0
	default:
		return 0.0, 1.0
	}
}

// Clamp constrains a value to the dimension's valid range
func (d Dimension) Clamp(value float64) float64 {
	low, high := d.Bounds()
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// EmotionalSample is a single point on the emotional wave. The timestamp is
// an exported field so callers may restamp a sample after construction and
// before it is appended to an analyzer.
type EmotionalSample struct {
	Timestamp time.Time `json:"timestamp"`
	Valence   float64   `json:"valence"`
	Arousal   float64   `json:"arousal"`
	Dominance float64   `json:"dominance"`
	Intensity float64   `json:"intensity"`
}

// Value returns the sample's value for the given dimension
func (s EmotionalSample) Value(dim Dimension) float64 {
	switch dim {
	case DimensionValence:
		return s.Valence
	case DimensionArousal:
		return s.Arousal
	case DimensionDominance:
		return s.Dominance
	case DimensionIntensity:
		return s.Intensity
	default:
		return 0
	}
}

// WaveFeatures holds the extracted wave characteristics for one dimension
type WaveFeatures struct {
	Amplitude float64 `json:"amplitude"` // population stddev over the window
	Frequency float64 `json:"frequency"` // dominant DFT frequency (cycles/sample)
	Phase     float64 `json:"phase"`     // instantaneous phase of the last sample (radians)
}

// TrendDirection classifies the short-term valence trend
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// DriftResult is a snapshot of the drift analysis over the current history
type DriftResult struct {
	DriftScore          float64               `json:"drift_score"`
	DominantFrequency   float64               `json:"dominant_frequency"`
	AmplitudeChange     float64               `json:"amplitude_change"`
	PhaseShift          float64               `json:"phase_shift"`
	TrendDirection      TrendDirection        `json:"trend_direction"`
	StabilityIndex      float64               `json:"stability_index"`
	EmotionalVolatility float64               `json:"emotional_volatility"`
	PredictedNextState  map[Dimension]float64 `json:"predicted_next_state"`
}

func neutralResult() DriftResult {
	return DriftResult{
		TrendDirection: TrendStable,
		StabilityIndex: 1.0,
		PredictedNextState: map[Dimension]float64{
			DimensionValence:   0.0,
			DimensionArousal:   0.0,
			DimensionDominance: 0.0,
			DimensionIntensity: 0.0,
		},
	}
}
