package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/emotion-drift/internal/insight"
	"github.com/RyanBlaney/emotion-drift/pkg/wave"
)

// writeResult renders a drift snapshot in the requested format
func writeResult(w io.Writer, result wave.DriftResult, format string, precision int) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		return yaml.NewEncoder(w).Encode(result)
	case "table":
		writeResultTable(w, result, precision)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func writeResultTable(w io.Writer, result wave.DriftResult, precision int) {
	p := precision
	if p <= 0 {
		p = 3
	}

	fmt.Fprintf(w, "%-22s %.*f (%s)\n", "Drift score", p, result.DriftScore, insight.InterpretDriftScore(result.DriftScore))
	fmt.Fprintf(w, "%-22s %.*f (%s)\n", "Dominant frequency", p, result.DominantFrequency, insight.InterpretFrequency(result.DominantFrequency))
	fmt.Fprintf(w, "%-22s %+.*f\n", "Amplitude change", p, result.AmplitudeChange)
	fmt.Fprintf(w, "%-22s %.*f\n", "Phase shift", p, result.PhaseShift)
	fmt.Fprintf(w, "%-22s %s\n", "Trend", result.TrendDirection)
	fmt.Fprintf(w, "%-22s %.*f (%s)\n", "Stability index", p, result.StabilityIndex, insight.InterpretStability(result.StabilityIndex))
	fmt.Fprintf(w, "%-22s %.*f (%s)\n", "Volatility", p, result.EmotionalVolatility, insight.InterpretVolatility(result.EmotionalVolatility))

	fmt.Fprintln(w, "Predicted next state:")
	dims := make([]string, 0, len(result.PredictedNextState))
	for dim := range result.PredictedNextState {
		dims = append(dims, string(dim))
	}
	sort.Strings(dims)
	for _, dim := range dims {
		fmt.Fprintf(w, "  %-20s %+.*f\n", dim, p, result.PredictedNextState[wave.Dimension(dim)])
	}
}
