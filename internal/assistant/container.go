package assistant

import (
	"time"

	"github.com/saulo-duarte/quizgen/internal/llm"
)

type AssistantContainer struct {
	Assistant *Assistant
	Handler   *Handler
}

func NewAssistantContainer(provider llm.Provider, typingDelay time.Duration) *AssistantContainer {
	a := New(provider, typingDelay)
	return &AssistantContainer{
		Assistant: a,
		Handler:   NewHandler(a),
	}
}
