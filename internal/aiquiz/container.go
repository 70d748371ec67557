package aiquiz

import "github.com/saulo-duarte/quizgen/internal/llm"

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

// NewAIQuizContainer takes the shared provider, which is nil when no
// credential was configured.
func NewAIQuizContainer(provider llm.Provider) *AIQuizContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}
}
