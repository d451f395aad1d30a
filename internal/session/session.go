package session

import (
	"context"
	"fmt"
	"time"

	"github.com/RyanBlaney/emotion-drift/configs"
	"github.com/RyanBlaney/emotion-drift/internal/extract"
	"github.com/RyanBlaney/emotion-drift/internal/insight"
	"github.com/RyanBlaney/emotion-drift/internal/llm"
	"github.com/RyanBlaney/emotion-drift/pkg/logging"
	"github.com/RyanBlaney/emotion-drift/pkg/wave"
)

// Session owns one analyzer and its collaborators for a single logical
// user. Sessions are not safe for concurrent use; give each user their own.
type Session struct {
	cfg         *configs.Config
	analyzer    *wave.Analyzer
	extractor   *extract.Extractor
	responder   *insight.Responder
	historyPath string
	logger      logging.Logger
}

// Observation is the outcome of one observed message
type Observation struct {
	Sample   wave.EmotionalSample `json:"sample"`
	Result   wave.DriftResult     `json:"result"`
	Summary  string               `json:"summary"`
	Alert    string               `json:"alert,omitempty"`
	Response string               `json:"response,omitempty"`
}

// Open creates a session and loads any persisted history. A nil generator
// disables model-backed extraction and responses; the deterministic
// fallbacks are used instead.
func Open(cfg *configs.Config, generator llm.Generator) (*Session, error) {
	analyzer := wave.NewAnalyzer(wave.Config{
		WindowSize:     cfg.Analyzer.WindowSize,
		TrendThreshold: cfg.Analyzer.TrendThreshold,
	})

	historyPath := cfg.Memory.HistoryFile
	if err := analyzer.LoadHistory(historyPath); err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	logger := logging.WithFields(logging.Fields{
		"component":    "session",
		"history_path": historyPath,
	})
	logger.Debug("session opened", logging.Fields{
		"samples": len(analyzer.History()),
	})

	return &Session{
		cfg:      cfg,
		analyzer: analyzer,
		extractor: extract.NewExtractor(generator, extract.Config{
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		}),
		responder:   insight.NewResponder(generator, cfg.LLM.Temperature, cfg.LLM.MaxTokens),
		historyPath: historyPath,
		logger:      logger,
	}, nil
}

// Analyzer exposes the underlying analyzer for diagnostics
func (s *Session) Analyzer() *wave.Analyzer {
	return s.analyzer
}

// Observe extracts a sample from text, stamps it, appends it to the
// history, and returns the resulting drift snapshot with summary, alert,
// and supportive response.
func (s *Session) Observe(ctx context.Context, text string) Observation {
	trajectory := extract.TrajectoryContext(s.analyzer.History())

	sample := s.extractor.Extract(ctx, text, trajectory)
	sample.Timestamp = time.Now()
	s.analyzer.AddPoint(sample)

	result := s.analyzer.DetectEmotionalDrift()

	obs := Observation{
		Sample:  sample,
		Result:  result,
		Summary: insight.Summary(result, s.analyzer.History()),
	}
	if alert, ok := insight.DriftAlert(result, s.alertThreshold()); ok {
		obs.Alert = alert
	}
	obs.Response = s.responder.Respond(ctx, text, sample, result)

	return obs
}

// Record appends an already-constructed sample (for direct measurements or
// tests) and returns the resulting snapshot.
func (s *Session) Record(sample wave.EmotionalSample) Observation {
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now()
	}
	s.analyzer.AddPoint(sample)

	result := s.analyzer.DetectEmotionalDrift()
	obs := Observation{
		Sample:  sample,
		Result:  result,
		Summary: insight.Summary(result, s.analyzer.History()),
	}
	if alert, ok := insight.DriftAlert(result, s.alertThreshold()); ok {
		obs.Alert = alert
	}
	return obs
}

// Snapshot runs drift detection over the current history without mutation
func (s *Session) Snapshot() wave.DriftResult {
	return s.analyzer.DetectEmotionalDrift()
}

// Close persists the history
func (s *Session) Close() error {
	if err := s.analyzer.SaveHistory(s.historyPath); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	s.logger.Debug("session closed", logging.Fields{
		"samples": len(s.analyzer.History()),
	})
	return nil
}

// alertThreshold keeps the original floor of 0.6 unless the configured
// drift threshold is stricter.
func (s *Session) alertThreshold() float64 {
	if s.cfg.Analyzer.DriftThreshold > 0.6 {
		return s.cfg.Analyzer.DriftThreshold
	}
	return 0.6
}
