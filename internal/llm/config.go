package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
	ProviderMock       = "mock"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// Config selects and configures the provider used by `quizrush generate`.
type Config struct {
	Provider string `yaml:"provider"`

	// APIKey and Model apply to the selected provider.
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`

	// BaseURL overrides the endpoint of OpenAI-compatible providers.
	BaseURL string `yaml:"base_url"`

	Retry   RetryConfig   `yaml:"retry"`
	Timeout time.Duration `yaml:"timeout"`
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig returns the defaults; no provider is selected.
func DefaultConfig() Config {
	return Config{
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ApplyEnv overlays QUIZRUSH_LLM_* variables onto c. If no provider is set
// after that, the standard vendor key variables are probed.
func (c Config) ApplyEnv() Config {
	if v := os.Getenv("QUIZRUSH_LLM_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("QUIZRUSH_LLM_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("QUIZRUSH_LLM_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("QUIZRUSH_LLM_BASE_URL"); v != "" {
		c.BaseURL = v
	}

	if c.Provider == "" {
		c.Provider, c.APIKey = discover()
	} else if c.APIKey == "" {
		c.APIKey = os.Getenv(vendorKeyVar(c.Provider))
	}
	return c
}

// discover probes vendor API key variables in priority order.
func discover() (provider, key string) {
	for _, p := range []string{ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderOpenRouter} {
		if k := os.Getenv(vendorKeyVar(p)); k != "" {
			return p, k
		}
	}
	return "", ""
}

func vendorKeyVar(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	}
	return ""
}

// Validate checks that a known provider is selected and has a key.
func (c Config) Validate() error {
	switch c.Provider {
	case "":
		return fmt.Errorf("no LLM provider configured (set QUIZRUSH_LLM_PROVIDER or a vendor API key)")
	case ProviderMock:
		return nil
	case ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter, ProviderGemini:
		if c.APIKey == "" {
			return fmt.Errorf("an API key is required for the %s provider (QUIZRUSH_LLM_API_KEY or %s)",
				c.Provider, vendorKeyVar(c.Provider))
		}
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}
