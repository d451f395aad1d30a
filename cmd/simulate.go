package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/emotion-drift/internal/insight"
	"github.com/RyanBlaney/emotion-drift/pkg/wave"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [scenario]",
	Short: "Run drift detection over a built-in scenario",
	Long: `Feeds a canned three-day emotional journey through the analyzer and
prints the drift snapshot. Scenarios: burnout, recovery, volatile.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"burnout", "recovery", "volatile"},
	RunE:      runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

// Scenario journeys, one sample per simulated day.
var scenarios = map[string][]wave.EmotionalSample{
	// Gradual progression from excitement to overwhelm.
	"burnout": {
		{Valence: 0.7, Arousal: 0.8, Dominance: 0.5, Intensity: 0.6},
		{Valence: 0.2, Arousal: 0.6, Dominance: 0.3, Intensity: 0.5},
		{Valence: -0.6, Arousal: 0.4, Dominance: -0.4, Intensity: 0.8},
	},
	// Emotional recovery and healing.
	"recovery": {
		{Valence: -0.5, Arousal: 0.2, Dominance: -0.3, Intensity: 0.7},
		{Valence: 0.0, Arousal: 0.4, Dominance: 0.1, Intensity: 0.4},
		{Valence: 0.6, Arousal: 0.5, Dominance: 0.4, Intensity: 0.5},
	},
	// High emotional swings.
	"volatile": {
		{Valence: 0.8, Arousal: 0.9, Dominance: 0.6, Intensity: 0.8},
		{Valence: -0.7, Arousal: 0.3, Dominance: -0.5, Intensity: 0.8},
		{Valence: 0.7, Arousal: 0.7, Dominance: 0.5, Intensity: 0.7},
	},
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	name := "burnout"
	if len(args) > 0 {
		name = args[0]
	}
	journey, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("unknown scenario: %s", name)
	}

	analyzer := wave.NewAnalyzer(wave.Config{
		WindowSize:     cfg.Analyzer.WindowSize,
		TrendThreshold: cfg.Analyzer.TrendThreshold,
	})

	now := time.Now()
	for i, sample := range journey {
		sample.Timestamp = now.Add(time.Duration(i-len(journey)+1) * 24 * time.Hour)
		analyzer.AddPoint(sample)
	}

	result := analyzer.DetectEmotionalDrift()

	fmt.Printf("Scenario: %s (%d samples)\n\n", name, len(journey))
	if err := writeResult(os.Stdout, result, cfg.OutputFormat, cfg.Output.Precision); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(insight.Summary(result, analyzer.History()))
	return nil
}
