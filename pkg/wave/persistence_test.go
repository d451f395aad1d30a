package wave

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	analyzer := NewAnalyzer(DefaultConfig())
	analyzer.AddPoint(sampleAt(0, 0.6, 0.4, 0.2, 0.5))
	analyzer.AddPoint(sampleAt(1, 0.0, 0.2, 0.0, 0.3))
	analyzer.AddPoint(sampleAt(2, -0.6, 0.3, -0.3, 0.7))

	require.NoError(t, analyzer.SaveHistory(path))

	restored := NewAnalyzer(DefaultConfig())
	require.NoError(t, restored.LoadHistory(path))

	original := analyzer.History()
	loaded := restored.History()
	require.Len(t, loaded, len(original))

	for i := range original {
		assert.True(t, original[i].Timestamp.Equal(loaded[i].Timestamp), "timestamp %d", i)
		assert.InDelta(t, original[i].Valence, loaded[i].Valence, 1e-12)
		assert.InDelta(t, original[i].Arousal, loaded[i].Arousal, 1e-12)
		assert.InDelta(t, original[i].Dominance, loaded[i].Dominance, 1e-12)
		assert.InDelta(t, original[i].Intensity, loaded[i].Intensity, 1e-12)
	}
}

func TestSaveEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	analyzer := NewAnalyzer(DefaultConfig())
	require.NoError(t, analyzer.SaveHistory(path))

	restored := NewAnalyzer(DefaultConfig())
	require.NoError(t, restored.LoadHistory(path))
	assert.Empty(t, restored.History())
}

func TestLoadHistoryMissingFileResetsHistory(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig())
	analyzer.AddPoint(sampleAt(0, 0.5, 0.5, 0.5, 0.5))

	err := analyzer.LoadHistory(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	assert.Empty(t, analyzer.History())
}

func TestLoadHistoryMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	analyzer := NewAnalyzer(DefaultConfig())
	err := analyzer.LoadHistory(path)
	require.Error(t, err)

	var histErr *HistoryError
	require.True(t, errors.As(err, &histErr))
	assert.Equal(t, ErrCodeDecode, histErr.Code)
	assert.Equal(t, path, histErr.Path)
}
