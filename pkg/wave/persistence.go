package wave

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/RyanBlaney/emotion-drift/pkg/logging"
)

// SaveHistory writes the sample history to path as a JSON array of flat
// records with RFC 3339 timestamps.
func (a *Analyzer) SaveHistory(path string) error {
	history := a.history
	if history == nil {
		history = []EmotionalSample{}
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return NewHistoryError("save", path, ErrCodeEncode, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewHistoryError("save", path, ErrCodeWrite, err)
	}

	a.logger.Debug("history saved", logging.Fields{
		"path":    path,
		"samples": len(history),
	})
	return nil
}

// LoadHistory replaces the sample history with the contents of path. A
// missing file is not an error: the history is reset to empty. Any other
// read or decode failure is returned to the caller.
func (a *Analyzer) LoadHistory(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		a.history = nil
		return nil
	}
	if err != nil {
		return NewHistoryError("load", path, ErrCodeRead, err)
	}

	var history []EmotionalSample
	if err := json.Unmarshal(data, &history); err != nil {
		return NewHistoryError("load", path, ErrCodeDecode, err)
	}
	a.history = history

	a.logger.Debug("history loaded", logging.Fields{
		"path":    path,
		"samples": len(history),
	})
	return nil
}
