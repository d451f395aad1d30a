package configs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// SetDefaults sets default configuration values for all components
func SetDefaults(v *viper.Viper) {
	// Application defaults
	if !v.IsSet("verbose") {
		v.Set("verbose", false)
	}
	if !v.IsSet("log_level") {
		v.Set("log_level", "info")
	}
	if !v.IsSet("output_format") {
		v.Set("output_format", "table")
	}
	if !v.IsSet("data_dir") {
		home, _ := os.UserHomeDir()
		v.Set("data_dir", filepath.Join(home, ".local", "share", "emotion-drift"))
	}

	// Analyzer defaults
	if !v.IsSet("analyzer.window_size") {
		v.Set("analyzer.window_size", 10)
	}
	if !v.IsSet("analyzer.drift_threshold") {
		v.Set("analyzer.drift_threshold", 0.3)
	}
	if !v.IsSet("analyzer.trend_threshold") {
		v.Set("analyzer.trend_threshold", 0.1)
	}

	// LLM defaults
	if !v.IsSet("llm.backend") {
		v.Set("llm.backend", "openai")
	}
	if !v.IsSet("llm.model") {
		v.Set("llm.model", "gpt-4o-mini")
	}
	if !v.IsSet("llm.base_url") {
		v.Set("llm.base_url", "http://localhost:11434/v1")
	}
	if !v.IsSet("llm.api_key_env") {
		v.Set("llm.api_key_env", "OPENAI_API_KEY")
	}
	if !v.IsSet("llm.temperature") {
		v.Set("llm.temperature", 0.3)
	}
	if !v.IsSet("llm.max_tokens") {
		v.Set("llm.max_tokens", 1000)
	}
	if !v.IsSet("llm.request_timeout") {
		v.Set("llm.request_timeout", 30*time.Second)
	}

	// Memory defaults
	if !v.IsSet("memory.history_file") {
		v.Set("memory.history_file", "emotional_memory.json")
	}
	if !v.IsSet("memory.max_entries") {
		v.Set("memory.max_entries", 1000)
	}

	// Output defaults
	if !v.IsSet("output.precision") {
		v.Set("output.precision", 3)
	}
	if !v.IsSet("output.include_metadata") {
		v.Set("output.include_metadata", true)
	}
	if !v.IsSet("output.timestamps") {
		v.Set("output.timestamps", true)
	}
}

// GetDefaultConfig returns a Config struct with all default values set
func GetDefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		Verbose:      false,
		LogLevel:     "info",
		OutputFormat: "table",
		DataDir:      filepath.Join(home, ".local", "share", "emotion-drift"),

		Analyzer: GetDefaultAnalyzerConfig(),
		LLM:      GetDefaultLLMConfig(),
		Memory:   GetDefaultMemoryConfig(),
		Output:   GetDefaultOutputConfig(),
	}
}

// GetDefaultAnalyzerConfig returns default wave analysis settings
func GetDefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		WindowSize:     10,
		DriftThreshold: 0.3,
		TrendThreshold: 0.1,
	}
}

// GetDefaultLLMConfig returns default language model settings
func GetDefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Backend:        "openai",
		Model:          "gpt-4o-mini",
		BaseURL:        "http://localhost:11434/v1",
		APIKeyEnv:      "OPENAI_API_KEY",
		Temperature:    0.3,
		MaxTokens:      1000,
		RequestTimeout: 30 * time.Second,
	}
}

// GetDefaultMemoryConfig returns default history persistence settings
func GetDefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		HistoryFile: "emotional_memory.json",
		MaxEntries:  1000,
	}
}

// GetDefaultOutputConfig returns default output formatting settings
func GetDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Precision:       3,
		IncludeMetadata: true,
		Timestamps:      true,
	}
}
