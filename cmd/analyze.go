package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/emotion-drift/internal/insight"
	"github.com/RyanBlaney/emotion-drift/pkg/wave"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run drift detection over the stored history",
	Long: `Loads the history file, runs wave-based drift detection over it, and
prints the resulting snapshot. A missing history file yields the neutral
result.`,
	RunE: runAnalyze,
}

var analyzeSummary bool

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeSummary, "summary", false,
		"append a human-readable insight summary")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	analyzer := wave.NewAnalyzer(wave.Config{
		WindowSize:     cfg.Analyzer.WindowSize,
		TrendThreshold: cfg.Analyzer.TrendThreshold,
	})
	if err := analyzer.LoadHistory(cfg.Memory.HistoryFile); err != nil {
		return err
	}

	result := analyzer.DetectEmotionalDrift()

	if err := writeResult(os.Stdout, result, cfg.OutputFormat, cfg.Output.Precision); err != nil {
		return err
	}

	if analyzeSummary {
		fmt.Println()
		fmt.Println(insight.Summary(result, analyzer.History()))
		if alert, ok := insight.DriftAlert(result, 0.6); ok {
			fmt.Println()
			fmt.Println(alert)
		}
	}

	return nil
}
