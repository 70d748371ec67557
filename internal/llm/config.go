package llm

import (
	"fmt"
	"time"
)

// Config selects and configures one provider.
// Provider values: "gemini", "openai", "anthropic", "mock".
type Config struct {
	Provider  string
	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig

	// Timeout bounds a single provider call. Zero disables it.
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-2.5-flash"
}

type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// HasCredential reports whether the selected provider can be built.
func (c Config) HasCredential() bool {
	switch c.Provider {
	case "gemini", "":
		return c.Gemini.APIKey != ""
	case "openai":
		return c.OpenAI.APIKey != ""
	case "anthropic":
		return c.Anthropic.APIKey != ""
	case "mock":
		return true
	default:
		return false
	}
}

func (c Config) validateProvider() error {
	switch c.Provider {
	case "gemini", "", "openai", "anthropic", "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}
