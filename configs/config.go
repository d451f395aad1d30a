package configs

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`
	DataDir      string `mapstructure:"data_dir"`

	// Wave analyzer configuration
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`

	// Language model configuration
	LLM LLMConfig `mapstructure:"llm"`

	// Memory (history persistence) configuration
	Memory MemoryConfig `mapstructure:"memory"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`
}

// AnalyzerConfig contains wave analysis settings
type AnalyzerConfig struct {
	WindowSize     int     `mapstructure:"window_size"`
	DriftThreshold float64 `mapstructure:"drift_threshold"`
	TrendThreshold float64 `mapstructure:"trend_threshold"`
}

// LLMConfig contains language model backend settings
type LLMConfig struct {
	Backend        string        `mapstructure:"backend"` // "openai" or "local"
	Model          string        `mapstructure:"model"`
	BaseURL        string        `mapstructure:"base_url"` // local backend endpoint
	APIKeyEnv      string        `mapstructure:"api_key_env"`
	Temperature    float64       `mapstructure:"temperature"`
	MaxTokens      int           `mapstructure:"max_tokens"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// MemoryConfig contains history persistence settings
type MemoryConfig struct {
	HistoryFile string `mapstructure:"history_file"`
	MaxEntries  int    `mapstructure:"max_entries"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Precision       int  `mapstructure:"precision"`
	IncludeMetadata bool `mapstructure:"include_metadata"`
	Timestamps      bool `mapstructure:"timestamps"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Analyzer.WindowSize < 3 {
		return fmt.Errorf("analyzer window size must be at least 3")
	}

	if config.Analyzer.DriftThreshold < 0 || config.Analyzer.DriftThreshold > 1 {
		return fmt.Errorf("drift threshold must be between 0 and 1")
	}

	if config.Analyzer.TrendThreshold <= 0 {
		return fmt.Errorf("trend threshold must be positive")
	}

	switch config.LLM.Backend {
	case "openai", "local":
	default:
		return fmt.Errorf("unknown llm backend: %s", config.LLM.Backend)
	}

	if config.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm max tokens must be positive")
	}

	if config.LLM.Temperature < 0 || config.LLM.Temperature > 2 {
		return fmt.Errorf("llm temperature must be between 0 and 2")
	}

	if config.Memory.MaxEntries <= 0 {
		return fmt.Errorf("memory max entries must be positive")
	}

	return nil
}
