package llm

import (
	"context"
	"fmt"
)

// NewProvider builds the configured provider wrapped with logging and the
// per-call timeout. It returns ErrNotConfigured when the credential is
// missing so callers can degrade instead of failing at startup.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.validateProvider(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini", "":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		base = NewMockProvider()
	}
	if err != nil {
		if err == ErrNotConfigured {
			return nil, err
		}
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(WithTimeout(base, cfg.Timeout)), nil
}
