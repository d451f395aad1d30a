package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/RyanBlaney/emotion-drift/internal/llm"
	"github.com/RyanBlaney/emotion-drift/pkg/wave"
)

func TestDriftAlertBelowThreshold(t *testing.T) {
	result := wave.DriftResult{DriftScore: 0.4, TrendDirection: wave.TrendStable}

	if msg, ok := DriftAlert(result, 0.6); ok {
		t.Errorf("unexpected alert: %q", msg)
	}
}

func TestDriftAlertDescribesFindings(t *testing.T) {
	result := wave.DriftResult{
		DriftScore:          0.8,
		TrendDirection:      wave.TrendDeclining,
		StabilityIndex:      0.2,
		EmotionalVolatility: 0.9,
	}

	msg, ok := DriftAlert(result, 0.6)
	if !ok {
		t.Fatal("expected an alert")
	}
	for _, want := range []string{"high emotional volatility", "emotional instability", "concerning downward trend"} {
		if !strings.Contains(msg, want) {
			t.Errorf("alert %q missing %q", msg, want)
		}
	}
}

func TestDriftAlertGenericFinding(t *testing.T) {
	result := wave.DriftResult{
		DriftScore:     0.65,
		TrendDirection: wave.TrendStable,
		StabilityIndex: 0.5,
	}

	msg, ok := DriftAlert(result, 0.6)
	if !ok {
		t.Fatal("expected an alert")
	}
	if !strings.Contains(msg, "significant emotional shift") {
		t.Errorf("alert %q missing generic finding", msg)
	}
}

func TestSummaryStableBaseline(t *testing.T) {
	result := wave.DriftResult{
		DriftScore:     0.1,
		TrendDirection: wave.TrendStable,
		StabilityIndex: 0.6,
	}

	got := Summary(result, nil)
	if got != "Emotional patterns appear stable and balanced" {
		t.Errorf("summary = %q", got)
	}
}

func TestSummaryIncludesFindings(t *testing.T) {
	result := wave.DriftResult{
		DriftScore:        0.7,
		TrendDirection:    wave.TrendDeclining,
		StabilityIndex:    0.3,
		DominantFrequency: 0.6,
		PredictedNextState: map[wave.Dimension]float64{
			wave.DimensionValence: -0.8,
		},
	}

	got := Summary(result, nil)
	for _, want := range []string{
		"Significant emotional drift",
		"Overall trend: declining",
		"High emotional variability",
		"Rapid emotional cycles",
		"Predicted shift toward negative emotions",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

type fakeGenerator struct {
	reply string
	err   error
}

func (f *fakeGenerator) Generate(context.Context, llm.Request) (string, error) {
	return f.reply, f.err
}

func TestResponderUsesGeneratorReply(t *testing.T) {
	responder := NewResponder(&fakeGenerator{reply: "  That sounds like a lot.  "}, 0.3, 100)

	got := responder.Respond(context.Background(), "rough day",
		wave.EmotionalSample{Valence: -0.5}, wave.DriftResult{TrendDirection: wave.TrendStable})
	if got != "That sounds like a lot." {
		t.Errorf("reply = %q", got)
	}
}

func TestResponderFallsBackOnError(t *testing.T) {
	responder := NewResponder(&fakeGenerator{err: errors.New("boom")}, 0.3, 100)

	sample := wave.EmotionalSample{Valence: -0.5, Arousal: 0.2}
	result := wave.DriftResult{TrendDirection: wave.TrendDeclining}

	got := responder.Respond(context.Background(), "rough day", sample, result)
	if got != FallbackResponse(sample, result) {
		t.Errorf("reply = %q, want deterministic fallback", got)
	}
}

func TestFallbackResponseBranches(t *testing.T) {
	tests := []struct {
		name   string
		sample wave.EmotionalSample
		result wave.DriftResult
		want   string
	}{
		{
			"declining low energy",
			wave.EmotionalSample{Valence: -0.5, Arousal: 0.2},
			wave.DriftResult{TrendDirection: wave.TrendDeclining},
			"breath reset",
		},
		{
			"improving high energy",
			wave.EmotionalSample{Valence: 0.5, Arousal: 0.7},
			wave.DriftResult{TrendDirection: wave.TrendImproving},
			"energy picking up",
		},
		{
			"flat day",
			wave.EmotionalSample{Valence: 0.0, Arousal: 0.1},
			wave.DriftResult{TrendDirection: wave.TrendStable},
			"blah days",
		},
		{
			"strong negative",
			wave.EmotionalSample{Valence: -0.6, Arousal: 0.6},
			wave.DriftResult{TrendDirection: wave.TrendStable},
			"really tough",
		},
		{
			"strong positive",
			wave.EmotionalSample{Valence: 0.6, Arousal: 0.3},
			wave.DriftResult{TrendDirection: wave.TrendStable},
			"how good that feels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackResponse(tt.sample, tt.result)
			if !strings.Contains(got, tt.want) {
				t.Errorf("response %q missing %q", got, tt.want)
			}
		})
	}
}

func TestInterpretationBands(t *testing.T) {
	if got := InterpretValence(0.8); got != "very positive" {
		t.Errorf("valence 0.8 = %q", got)
	}
	if got := InterpretValence(-0.8); got != "very negative" {
		t.Errorf("valence -0.8 = %q", got)
	}
	if got := InterpretStability(0.9); got != "very stable" {
		t.Errorf("stability 0.9 = %q", got)
	}
	if got := InterpretDriftScore(0.8); got != "high drift" {
		t.Errorf("drift 0.8 = %q", got)
	}
	if got := InterpretVolatility(0.1); got != "low volatility" {
		t.Errorf("volatility 0.1 = %q", got)
	}
}
