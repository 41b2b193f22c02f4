package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	// MaxTokens and Temperature bound the extraction call. A low
	// temperature keeps the returned JSON stable across retries.
	MaxTokens      int     `toml:"max_tokens"`
	Temperature    float32 `toml:"temperature"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	// Prompt optionally overrides the built-in extraction prompt. It must
	// contain a single %s placeholder for the OCR text.
	Prompt string `toml:"prompt"`
}

type PipelineConfig struct {
	// FuzzyThreshold is the minimum similarity for accepting a garbled
	// token as a known drug alias.
	FuzzyThreshold float64 `toml:"fuzzy_threshold"`
	// MergeThreshold is the minimum name similarity at which a fuzzy
	// candidate is considered already covered by an external candidate.
	MergeThreshold float64 `toml:"merge_threshold"`
	Debug          bool    `toml:"debug"`
}

type InteractionConfig struct {
	GraphURI      string `toml:"graph_uri"`
	GraphUser     string `toml:"graph_user"`
	GraphPassword string `toml:"graph_password"`
}

type StorageConfig struct {
	Path string `toml:"path"`
}

type ServerConfig struct {
	Port string `toml:"port"`
	// ReviewConfidenceThreshold flags normalization results below it for
	// human term review.
	ReviewConfidenceThreshold float64 `toml:"review_confidence_threshold"`
}

type Config struct {
	LLM         LLMConfig         `toml:"llm"`
	Pipeline    PipelineConfig    `toml:"pipeline"`
	Interaction InteractionConfig `toml:"interaction"`
	Storage     StorageConfig     `toml:"storage"`
	Server      ServerConfig      `toml:"server"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:       "ollama",
			Model:          "gpt-oss:latest",
			BaseURL:        "http://localhost:11434",
			MaxTokens:      1500,
			Temperature:    0.1,
			TimeoutSeconds: 30,
		},
		Pipeline: PipelineConfig{
			FuzzyThreshold: 0.72,
			MergeThreshold: 0.8,
		},
		Storage: StorageConfig{
			Path: "data/rxlens.db",
		},
		Server: ServerConfig{
			Port:                      "8080",
			ReviewConfidenceThreshold: 0.75,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides config values from environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("GRAPH_URI"); v != "" {
		c.Interaction.GraphURI = v
	}
	if v := os.Getenv("GRAPH_USER"); v != "" {
		c.Interaction.GraphUser = v
	}
	if v := os.Getenv("GRAPH_PASSWORD"); v != "" {
		c.Interaction.GraphPassword = v
	}
	if v := os.Getenv("STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("PIPELINE_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Pipeline.Debug = b
		}
	}
}
