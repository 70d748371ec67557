package aiquiz

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/saulo-duarte/quizgen/internal/llm"
)

var (
	ErrNotConfigured = errors.New("API key not configured")
	ErrTopicRequired = errors.New("topic is required and must be a non-empty string")
)

type Service interface {
	GenerateQuestions(ctx context.Context, topic string) (QuestionSet, error)
}

type service struct {
	provider llm.Provider
}

// NewService accepts a nil provider; every generation then fails with
// ErrNotConfigured without leaving the process.
func NewService(provider llm.Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context, topic string) (QuestionSet, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrTopicRequired
	}
	if s.provider == nil {
		return nil, ErrNotConfigured
	}

	resp, err := s.provider.Generate(ctx, llm.Request{Prompt: BuildPrompt(topic)})
	if err != nil {
		return nil, err
	}

	questions, err := ParseResponse(resp.Text)
	if err != nil {
		config.WithContext(ctx).
			WithField("model", resp.Model).
			WithField("response_length", len(resp.Text)).
			Warn("Rejected model response")
		return nil, err
	}
	return questions, nil
}
