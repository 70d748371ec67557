package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/saulo-duarte/quizgen/internal/assistant"
	"github.com/saulo-duarte/quizgen/internal/auth"
	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/saulo-duarte/quizgen/internal/llm"
	"github.com/saulo-duarte/quizgen/internal/quiz"
	"github.com/saulo-duarte/quizgen/internal/router"
	"github.com/saulo-duarte/quizgen/internal/topics"
)

type Container struct {
	Config             *config.Config
	Provider           llm.Provider
	AIQuizContainer    *aiquiz.AIQuizContainer
	AssistantContainer *assistant.AssistantContainer
	TopicsHandler      *topics.Handler
	AuthHandler        *auth.Handler
	QuizContainer      *quiz.QuizContainer
}

// New wires every feature. A missing LLM credential is not fatal: the
// provider stays nil and requests report a configuration error.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:             cfg,
		Provider:           provider,
		AIQuizContainer:    aiquiz.NewAIQuizContainer(provider),
		AssistantContainer: assistant.NewAssistantContainer(provider, cfg.Stream.Delay),
		TopicsHandler:      topics.NewHandler(topics.Default(), nil),
	}

	if cfg.HistoryEnabled() {
		auth.Init(cfg.JWT.Secret)

		if err := config.Connect(ctx, cfg.DB); err != nil {
			return nil, fmt.Errorf("failed to connect to DB: %w", err)
		}
		if err := quiz.Migrate(config.DB); err != nil {
			return nil, fmt.Errorf("failed to migrate quiz history: %w", err)
		}

		c.AuthHandler = auth.NewHandler(cfg.JWT.TTL, cfg.IsProduction())
		c.QuizContainer = quiz.NewQuizContainer(config.DB)
	} else {
		config.WithContext(ctx).Info("DATABASE_DSN not set, quiz history disabled")
	}

	return c, nil
}

// NewProvider returns a nil provider, not an error, when the selected
// provider has no credential.
func NewProvider(ctx context.Context, cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(ctx, LLMConfig(cfg))
	if errors.Is(err, llm.ErrNotConfigured) {
		config.WithContext(ctx).
			WithField("provider", cfg.LLM.Provider).
			Warn("LLM API key not configured, generation requests will fail")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return provider, nil
}

func LLMConfig(cfg *config.Config) llm.Config {
	return llm.Config{
		Provider: cfg.LLM.Provider,
		Gemini: llm.GeminiConfig{
			APIKey: cfg.LLM.GeminiAPIKey,
			Model:  cfg.LLM.Model,
		},
		OpenAI: llm.OpenAIConfig{
			APIKey:  cfg.LLM.OpenAIAPIKey,
			Model:   cfg.LLM.Model,
			BaseURL: cfg.LLM.OpenAIBaseURL,
		},
		Anthropic: llm.AnthropicConfig{
			APIKey: cfg.LLM.AnthropicAPIKey,
			Model:  cfg.LLM.Model,
		},
		Timeout: cfg.LLM.Timeout,
	}
}

func (c *Container) Router() http.Handler {
	rc := router.RouterConfig{
		AIQuizHandler:    c.AIQuizContainer.Handler,
		AssistantHandler: c.AssistantContainer.Handler,
		TopicsHandler:    c.TopicsHandler,
		AllowedOrigins:   c.Config.CORSOrigins(),
	}
	if c.QuizContainer != nil {
		rc.AuthHandler = c.AuthHandler
		rc.QuizHandler = c.QuizContainer.Handler
	}
	return router.New(rc)
}
