package wave

import (
	"math"

	"github.com/RyanBlaney/emotion-drift/pkg/logging"
)

// Drift score component weights. Frequency and amplitude dominate; phase
// contributes the remainder.
const (
	freqWeight  = 0.4
	ampWeight   = 0.4
	phaseWeight = 0.2
)

// cvEpsilon keeps the coefficient of variation finite for near-zero means
const cvEpsilon = 0.001

// Config contains construction-time parameters for the analyzer
type Config struct {
	// WindowSize is the number of most-recent samples used for feature
	// extraction. Retention is capped at twice this value.
	WindowSize int

	// TrendThreshold is the absolute valence slope beyond which the trend
	// is classified as improving or declining.
	TrendThreshold float64
}

// DefaultConfig returns the default analyzer configuration
func DefaultConfig() Config {
	return Config{
		WindowSize:     10,
		TrendThreshold: 0.1,
	}
}

// Analyzer performs wave-based emotional drift detection over a bounded
// history of samples. It is not safe for concurrent use; callers that share
// an analyzer across goroutines must synchronize externally.
type Analyzer struct {
	cfg     Config
	history []EmotionalSample
	logger  logging.Logger
}

// NewAnalyzer creates an analyzer with the given configuration. Zero or
// negative fields fall back to their defaults.
func NewAnalyzer(cfg Config) *Analyzer {
	def := DefaultConfig()
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = def.WindowSize
	}
	if cfg.TrendThreshold <= 0 {
		cfg.TrendThreshold = def.TrendThreshold
	}

	return &Analyzer{
		cfg: cfg,
		logger: logging.WithFields(logging.Fields{
			"component":   "wave_analyzer",
			"window_size": cfg.WindowSize,
		}),
	}
}

// WindowSize returns the configured feature-extraction window
func (a *Analyzer) WindowSize() int {
	return a.cfg.WindowSize
}

// History returns the stored sample sequence, oldest first
func (a *Analyzer) History() []EmotionalSample {
	return a.history
}

// AddPoint appends a sample to the history. Samples are accepted as-is;
// out-of-range values are the producer's responsibility. When the history
// exceeds twice the window size, the oldest samples are dropped.
func (a *Analyzer) AddPoint(sample EmotionalSample) {
	a.history = append(a.history, sample)

	if limit := a.cfg.WindowSize * 2; len(a.history) > limit {
		trimmed := make([]EmotionalSample, limit)
		copy(trimmed, a.history[len(a.history)-limit:])
		a.history = trimmed
	}
}

// dimensionWindow returns up to the last n values of a dimension, oldest first
func (a *Analyzer) dimensionWindow(dim Dimension, n int) []float64 {
	start := len(a.history) - n
	if start < 0 {
		start = 0
	}
	values := make([]float64, 0, len(a.history)-start)
	for _, sample := range a.history[start:] {
		values = append(values, sample.Value(dim))
	}
	return values
}

// ExtractWaveFeatures computes amplitude, dominant frequency, and phase for
// one dimension over the most recent window. With fewer than 3 samples all
// features are zero.
func (a *Analyzer) ExtractWaveFeatures(dim Dimension) WaveFeatures {
	if len(a.history) < 3 {
		return WaveFeatures{}
	}

	values := a.dimensionWindow(dim, a.cfg.WindowSize)
	if len(values) < 3 {
		return WaveFeatures{}
	}

	amplitude := popStdDev(values)
	residual := detrend(values)

	return WaveFeatures{
		Amplitude: amplitude,
		Frequency: dominantFrequency(residual),
		Phase:     analyticPhase(residual),
	}
}

// DetectEmotionalDrift analyzes the current history and returns a fresh
// drift snapshot. With fewer than 3 samples the neutral result is returned.
// The call never mutates analyzer state.
func (a *Analyzer) DetectEmotionalDrift() DriftResult {
	if len(a.history) < 3 {
		return neutralResult()
	}

	features := make(map[Dimension]WaveFeatures, 4)
	for _, dim := range Dimensions() {
		features[dim] = a.ExtractWaveFeatures(dim)
	}

	result := DriftResult{
		DriftScore:          a.driftScore(features),
		DominantFrequency:   meanFrequency(features),
		AmplitudeChange:     a.amplitudeChange(),
		PhaseShift:          phaseShift(features),
		TrendDirection:      a.trendDirection(),
		StabilityIndex:      a.stabilityIndex(),
		EmotionalVolatility: a.emotionalVolatility(),
		PredictedNextState:  a.predictNextState(features),
	}

	a.logger.Debug("drift detection completed", logging.Fields{
		"history_len":     len(a.history),
		"drift_score":     result.DriftScore,
		"trend_direction": string(result.TrendDirection),
		"stability_index": result.StabilityIndex,
	})

	return result
}

// driftScore combines frequency, amplitude, and phase characteristics into
// a weighted score. Each component is capped at 1.0 before weighting.
func (a *Analyzer) driftScore(features map[Dimension]WaveFeatures) float64 {
	var freqSum, ampSum, absPhaseSum float64
	for _, f := range features {
		freqSum += f.Frequency
		ampSum += f.Amplitude
		absPhaseSum += math.Abs(f.Phase)
	}
	n := float64(len(features))

	freqScore := math.Min(freqSum/n*10, 1.0)
	ampScore := math.Min(ampSum/n*2, 1.0)
	phaseScore := math.Min(absPhaseSum/n/math.Pi, 1.0)

	return freqWeight*freqScore + ampWeight*ampScore + phaseWeight*phaseScore
}

func meanFrequency(features map[Dimension]WaveFeatures) float64 {
	var sum float64
	for _, f := range features {
		sum += f.Frequency
	}
	return sum / float64(len(features))
}

// amplitudeChange compares mean intensity between the first and second half
// of the entire retained history. Positive values indicate rising intensity.
func (a *Analyzer) amplitudeChange() float64 {
	if len(a.history) < 6 {
		return 0
	}

	mid := len(a.history) / 2
	var first, second float64
	for _, sample := range a.history[:mid] {
		first += sample.Intensity
	}
	for _, sample := range a.history[mid:] {
		second += sample.Intensity
	}
	first /= float64(mid)
	second /= float64(len(a.history) - mid)

	return second - first
}

// phaseShift measures cross-dimension phase coherence as the population
// standard deviation of per-dimension phases. Low spread means the
// dimensions are moving in phase.
func phaseShift(features map[Dimension]WaveFeatures) float64 {
	phases := make([]float64, 0, len(features))
	for _, dim := range Dimensions() {
		phases = append(phases, features[dim].Phase)
	}
	return popStdDev(phases)
}

// trendDirection classifies the OLS slope of the last 3 valence values
func (a *Analyzer) trendDirection() TrendDirection {
	recent := a.dimensionWindow(DimensionValence, 3)
	_, slope := linearFit(recent)

	switch {
	case slope > a.cfg.TrendThreshold:
		return TrendImproving
	case slope < -a.cfg.TrendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// stabilityIndex converts the mean per-dimension coefficient of variation
// over the window into a (0, 1] stability measure.
func (a *Analyzer) stabilityIndex() float64 {
	var cvs []float64
	for _, dim := range Dimensions() {
		values := a.dimensionWindow(dim, a.cfg.WindowSize)
		if len(values) < 2 {
			continue
		}
		cv := popStdDev(values) / (math.Abs(mean(values)) + cvEpsilon)
		cvs = append(cvs, cv)
	}
	if len(cvs) == 0 {
		return 1.0
	}
	return 1.0 / (1.0 + mean(cvs))
}

// emotionalVolatility is the population stddev of intensity over the window
func (a *Analyzer) emotionalVolatility() float64 {
	values := a.dimensionWindow(DimensionIntensity, a.cfg.WindowSize)
	if len(values) < 3 {
		return 0
	}
	return popStdDev(values)
}

// predictNextState extrapolates each dimension one step ahead. Dimensions
// with a detected oscillation are predicted by evaluating the fitted wave
// one sample past the recent values plus the local linear trend; the rest
// fall back to last-delta extrapolation. Predictions are clamped to each
// dimension's valid range.
func (a *Analyzer) predictNextState(features map[Dimension]WaveFeatures) map[Dimension]float64 {
	predictions := make(map[Dimension]float64, 4)

	for _, dim := range Dimensions() {
		recent := a.dimensionWindow(dim, 3)
		f := features[dim]

		var predicted float64
		switch {
		case f.Frequency > 0:
			t := float64(len(recent))
			predicted = f.Amplitude * math.Sin(2*math.Pi*f.Frequency*t+f.Phase)
			_, slope := linearFit(recent)
			predicted += recent[len(recent)-1] + slope
		case len(recent) >= 2:
			last := recent[len(recent)-1]
			predicted = last + (last - recent[len(recent)-2])
		case len(recent) == 1:
			predicted = recent[0]
		}

		predictions[dim] = dim.Clamp(predicted)
	}

	return predictions
}
