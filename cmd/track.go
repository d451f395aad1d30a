package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/emotion-drift/internal/llm"
	"github.com/RyanBlaney/emotion-drift/internal/session"
	"github.com/RyanBlaney/emotion-drift/pkg/wave"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Record one sample and report the updated drift analysis",
	Long: `Appends a sample to the history and prints the resulting drift
snapshot. The sample comes either from --text (emotion extraction through
the configured language model, with a deterministic fallback) or from the
four explicit dimension flags.`,
	RunE: runTrack,
}

var (
	trackText      string
	trackValence   float64
	trackArousal   float64
	trackDominance float64
	trackIntensity float64
	trackNoModel   bool
)

func init() {
	rootCmd.AddCommand(trackCmd)

	trackCmd.Flags().StringVar(&trackText, "text", "",
		"free text to extract a sample from")
	trackCmd.Flags().Float64Var(&trackValence, "valence", 0,
		"valence in [-1, 1] (ignored with --text)")
	trackCmd.Flags().Float64Var(&trackArousal, "arousal", 0,
		"arousal in [0, 1] (ignored with --text)")
	trackCmd.Flags().Float64Var(&trackDominance, "dominance", 0,
		"dominance in [-1, 1] (ignored with --text)")
	trackCmd.Flags().Float64Var(&trackIntensity, "intensity", 0,
		"intensity in [0, 1] (ignored with --text)")
	trackCmd.Flags().BoolVar(&trackNoModel, "no-model", false,
		"skip the language model and use the lexicon fallback")
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var generator llm.Generator
	if trackText != "" && !trackNoModel {
		generator, err = llm.NewFromConfig(cfg.LLM)
		if err != nil {
			return err
		}
	}

	sess, err := session.Open(cfg, generator)
	if err != nil {
		return err
	}

	var obs session.Observation
	if trackText != "" {
		ctx, cancel := requestContext(cmd, cfg.LLM.RequestTimeout)
		defer cancel()
		obs = sess.Observe(ctx, trackText)
	} else {
		obs = sess.Record(wave.EmotionalSample{
			Timestamp: time.Now(),
			Valence:   trackValence,
			Arousal:   trackArousal,
			Dominance: trackDominance,
			Intensity: trackIntensity,
		})
	}

	if err := sess.Close(); err != nil {
		return err
	}

	if err := writeResult(os.Stdout, obs.Result, cfg.OutputFormat, cfg.Output.Precision); err != nil {
		return err
	}

	if obs.Alert != "" {
		fmt.Println()
		fmt.Println(obs.Alert)
	}
	if obs.Response != "" {
		fmt.Println()
		fmt.Println(obs.Response)
	}

	return nil
}
