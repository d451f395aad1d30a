package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/emotion-drift/configs"
)

func TestIsRetryable(t *testing.T) {
	retryable := []string{
		"429 Too Many Requests",
		"rate limit exceeded",
		"500 Internal Server Error",
		"upstream returned server_error",
	}
	for _, msg := range retryable {
		if !isRetryable(errors.New(msg)) {
			t.Errorf("expected %q to be retryable", msg)
		}
	}

	permanent := []string{
		"401 Unauthorized",
		"invalid request: missing model",
		"context deadline exceeded",
	}
	for _, msg := range permanent {
		if isRetryable(errors.New(msg)) {
			t.Errorf("expected %q to be permanent", msg)
		}
	}

	if isRetryable(nil) {
		t.Error("nil error must not be retryable")
	}
}

func TestNewFromConfigLocalBackend(t *testing.T) {
	cfg := configs.GetDefaultLLMConfig()
	cfg.Backend = "local"
	cfg.APIKeyEnv = "EMOTION_DRIFT_TEST_MISSING_KEY"

	gen, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.NotNil(t, gen)
}

func TestNewFromConfigOpenAIRequiresKey(t *testing.T) {
	cfg := configs.GetDefaultLLMConfig()
	cfg.APIKeyEnv = "EMOTION_DRIFT_TEST_MISSING_KEY"

	_, err := NewFromConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), cfg.APIKeyEnv)
}

func TestNewFromConfigOpenAIWithKey(t *testing.T) {
	t.Setenv("EMOTION_DRIFT_TEST_KEY", "sk-test")

	cfg := configs.GetDefaultLLMConfig()
	cfg.APIKeyEnv = "EMOTION_DRIFT_TEST_KEY"

	gen, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.NotNil(t, gen)
}

func TestNewFromConfigUnknownBackend(t *testing.T) {
	cfg := configs.GetDefaultLLMConfig()
	cfg.Backend = "bedrock"

	_, err := NewFromConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm backend")
}
