package extract

import (
	"math"
	"strings"
	"time"

	"github.com/RyanBlaney/emotion-drift/pkg/wave"
)

// Keyword lexicon for the deterministic fallback path and the
// emotional-language report.
var emotionalWords = map[string][]string{
	"positive":     {"happy", "joy", "excited", "love", "amazing", "wonderful", "great", "fantastic"},
	"negative":     {"sad", "angry", "frustrated", "hate", "terrible", "awful", "bad", "horrible"},
	"high_arousal": {"excited", "energetic", "frantic", "panicked", "thrilled", "ecstatic"},
	"low_arousal":  {"calm", "peaceful", "relaxed", "sleepy", "tired", "serene"},
	"dominant":     {"control", "power", "command", "lead", "dominate", "authority"},
	"submissive":   {"helpless", "powerless", "dependent", "submissive", "controlled"},
}

// FallbackSample derives a sample from keyword polarity when model-based
// extraction is unavailable. Dominance stays neutral; arousal and intensity
// scale with the strength of the detected sentiment.
func FallbackSample(text string) wave.EmotionalSample {
	polarity := lexiconPolarity(text)

	return wave.EmotionalSample{
		Timestamp: time.Now(),
		Valence:   polarity,
		Arousal:   math.Min(0.9, math.Abs(polarity)*1.2),
		Dominance: 0.0,
		Intensity: math.Abs(polarity) * 0.7,
	}
}

// lexiconPolarity scores text in [-1, 1] from positive/negative keyword hits
func lexiconPolarity(text string) float64 {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, word := range emotionalWords["positive"] {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range emotionalWords["negative"] {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return 0
	}
	return float64(positive-negative) / float64(total)
}

// LanguageReport summarizes emotional language patterns in a text,
// supplementary to the dimensional analysis.
type LanguageReport struct {
	EmotionalWords      map[string][]string `json:"emotional_words"`
	EmotionalComplexity float64             `json:"emotional_complexity"`
	TextLength          int                 `json:"text_length"`
	SentenceCount       int                 `json:"sentence_count"`
	WordCount           int                 `json:"word_count"`
}

// AnalyzeEmotionalLanguage reports which lexicon categories a text touches
// and how varied its emotional expression is.
func AnalyzeEmotionalLanguage(text string) LanguageReport {
	lower := strings.ToLower(text)

	found := make(map[string][]string, len(emotionalWords))
	total := 0
	for category, words := range emotionalWords {
		var hits []string
		for _, word := range words {
			if strings.Contains(lower, word) {
				hits = append(hits, word)
			}
		}
		found[category] = hits
		total += len(hits)
	}

	return LanguageReport{
		EmotionalWords:      found,
		EmotionalComplexity: math.Min(1.0, float64(total)/10.0),
		TextLength:          len(text),
		SentenceCount:       len(strings.Split(text, ".")),
		WordCount:           len(strings.Fields(text)),
	}
}
