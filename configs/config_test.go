package configs

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := GetDefaultConfig()
	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, 10, cfg.Analyzer.WindowSize)
	assert.Equal(t, "openai", cfg.LLM.Backend)
	assert.Equal(t, "emotional_memory.json", cfg.Memory.HistoryFile)
	assert.Equal(t, 3, cfg.Output.Precision)
}

func TestSetDefaultsRoundTrip(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg := &Config{}
	require.NoError(t, v.Unmarshal(cfg))
	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, GetDefaultAnalyzerConfig(), cfg.Analyzer)
	assert.Equal(t, GetDefaultMemoryConfig(), cfg.Memory)
}

func TestSetDefaultsDoesNotOverrideExplicitValues(t *testing.T) {
	v := viper.New()
	v.Set("analyzer.window_size", 20)
	SetDefaults(v)

	assert.Equal(t, 20, v.GetInt("analyzer.window_size"))
	assert.Equal(t, 0.3, v.GetFloat64("analyzer.drift_threshold"))
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			"window too small",
			func(c *Config) { c.Analyzer.WindowSize = 2 },
			"window size",
		},
		{
			"drift threshold out of range",
			func(c *Config) { c.Analyzer.DriftThreshold = 1.5 },
			"drift threshold",
		},
		{
			"trend threshold not positive",
			func(c *Config) { c.Analyzer.TrendThreshold = 0 },
			"trend threshold",
		},
		{
			"unknown backend",
			func(c *Config) { c.LLM.Backend = "bedrock" },
			"unknown llm backend",
		},
		{
			"max tokens not positive",
			func(c *Config) { c.LLM.MaxTokens = 0 },
			"max tokens",
		},
		{
			"temperature out of range",
			func(c *Config) { c.LLM.Temperature = 2.5 },
			"temperature",
		},
		{
			"max entries not positive",
			func(c *Config) { c.Memory.MaxEntries = -1 },
			"max entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
