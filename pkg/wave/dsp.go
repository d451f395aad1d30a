package wave

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// linearFit computes an ordinary-least-squares fit y = alpha + beta*x over
// equally spaced integer abscissas 0..n-1.
func linearFit(values []float64) (alpha, beta float64) {
	if len(values) < 2 {
		if len(values) == 1 {
			return values[0], 0
		}
		return 0, 0
	}
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}
	return stat.LinearRegression(xs, values, nil, false)
}

// detrend removes the least-squares linear trend from the sequence,
// leaving a zero-mean residual.
func detrend(values []float64) []float64 {
	alpha, beta := linearFit(values)
	residual := make([]float64, len(values))
	for i, v := range values {
		residual[i] = v - (alpha + beta*float64(i))
	}
	return residual
}

// dominantFrequency finds the normalized frequency (cycles per sample) of
// the strongest spectral bin, considering only positive-frequency bins and
// excluding DC. Returns 0 when the positive-frequency slice is empty or the
// spectrum carries no energy.
func dominantFrequency(signal []float64) float64 {
	n := len(signal)
	if n/2 <= 1 {
		return 0
	}

	spectrum := fft.FFTReal(signal)

	best := 0
	bestMag := 0.0
	for i := 1; i < n/2; i++ {
		if mag := cmplx.Abs(spectrum[i]); mag > bestMag {
			best = i
			bestMag = mag
		}
	}
	if best == 0 || bestMag == 0 {
		return 0
	}

	return float64(best) / float64(n)
}

// analyticPhase computes the instantaneous phase of the last sample of the
// FFT-based analytic signal (discrete Hilbert transform): positive-frequency
// bins are doubled, DC and Nyquist kept, negative frequencies zeroed, then
// inverse transformed.
func analyticPhase(signal []float64) float64 {
	n := len(signal)
	if n < 3 {
		return 0
	}

	spectrum := fft.FFTReal(signal)

	weighted := make([]complex128, n)
	weighted[0] = spectrum[0]
	half := n / 2
	if n%2 == 0 {
		for i := 1; i < half; i++ {
			weighted[i] = 2 * spectrum[i]
		}
		weighted[half] = spectrum[half]
	} else {
		for i := 1; i <= half; i++ {
			weighted[i] = 2 * spectrum[i]
		}
	}

	analytic := fft.IFFT(weighted)
	phase := cmplx.Phase(analytic[n-1])
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return 0
	}
	return phase
}

// popStdDev is the population standard deviation (divisor n, not n-1)
func popStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return math.Sqrt(stat.PopVariance(values, nil))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
