package wave

import (
	"math"
	"testing"
)

func TestLinearFit(t *testing.T) {
	// y = 1 + 2x
	values := []float64{1, 3, 5, 7, 9}
	alpha, beta := linearFit(values)

	if math.Abs(alpha-1) > 1e-12 {
		t.Errorf("alpha = %v, want 1", alpha)
	}
	if math.Abs(beta-2) > 1e-12 {
		t.Errorf("beta = %v, want 2", beta)
	}
}

func TestLinearFitDegenerate(t *testing.T) {
	if alpha, beta := linearFit(nil); alpha != 0 || beta != 0 {
		t.Errorf("empty fit = (%v, %v), want (0, 0)", alpha, beta)
	}
	if alpha, beta := linearFit([]float64{3.5}); alpha != 3.5 || beta != 0 {
		t.Errorf("single-value fit = (%v, %v), want (3.5, 0)", alpha, beta)
	}
}

func TestDetrendRemovesLinearTrend(t *testing.T) {
	values := []float64{2, 4, 6, 8, 10}
	residual := detrend(values)

	for i, r := range residual {
		if math.Abs(r) > 1e-10 {
			t.Errorf("residual[%d] = %v, want ~0", i, r)
		}
	}
}

func TestDetrendPreservesOscillation(t *testing.T) {
	// Sine riding on a linear ramp: detrending keeps the oscillation.
	n := 16
	values := make([]float64, n)
	for i := range values {
		values[i] = 0.5*float64(i) + math.Sin(2*math.Pi*float64(i)/4)
	}

	residual := detrend(values)

	var energy float64
	for _, r := range residual {
		energy += r * r
	}
	if energy < 1.0 {
		t.Errorf("residual energy = %v, oscillation should survive detrending", energy)
	}
}

func TestDominantFrequency(t *testing.T) {
	// Period-4 sine over 8 samples: dominant bin 2 of 8 -> 0.25 cycles/sample.
	signal := make([]float64, 8)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 4)
	}

	got := dominantFrequency(signal)
	if math.Abs(got-0.25) > 1e-12 {
		t.Errorf("dominant frequency = %v, want 0.25", got)
	}
}

func TestDominantFrequencyShortOrSilentSignal(t *testing.T) {
	if got := dominantFrequency([]float64{1, 2, 3}); got != 0 {
		t.Errorf("3-sample signal: frequency = %v, want 0 (empty positive slice)", got)
	}
	if got := dominantFrequency(make([]float64, 10)); got != 0 {
		t.Errorf("silent signal: frequency = %v, want 0", got)
	}
}

func TestAnalyticPhaseCosine(t *testing.T) {
	// cos(2*pi*0.25*i) over 8 samples: the analytic signal is
	// exp(j*pi*i/2), so the phase at i=7 is -pi/2 exactly.
	signal := make([]float64, 8)
	for i := range signal {
		signal[i] = math.Cos(2 * math.Pi * 0.25 * float64(i))
	}

	got := analyticPhase(signal)
	if math.Abs(got-(-math.Pi/2)) > 1e-9 {
		t.Errorf("phase = %v, want %v", got, -math.Pi/2)
	}
}

func TestAnalyticPhaseDegenerate(t *testing.T) {
	if got := analyticPhase([]float64{1, 2}); got != 0 {
		t.Errorf("2-sample phase = %v, want 0", got)
	}
	if got := analyticPhase(make([]float64, 6)); got != 0 {
		t.Errorf("silent signal phase = %v, want 0", got)
	}
}

func TestPopStdDev(t *testing.T) {
	// Population stddev of {2, 4, 4, 4, 5, 5, 7, 9} is exactly 2.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := popStdDev(values); math.Abs(got-2) > 1e-12 {
		t.Errorf("popStdDev = %v, want 2", got)
	}
	if got := popStdDev(nil); got != 0 {
		t.Errorf("popStdDev(nil) = %v, want 0", got)
	}
}
