package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/saulo-duarte/quizgen/internal/llm"
)

const (
	DefaultSummaryWords = 100
	DefaultKeyPoints    = 5
	DefaultQuizSize     = 5
	DefaultTypingDelay  = 50 * time.Millisecond
)

type ContentKind string

const (
	KindStory   ContentKind = "story"
	KindPoem    ContentKind = "poem"
	KindEssay   ContentKind = "essay"
	KindArticle ContentKind = "article"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrInvalidKind = errors.New("kind must be one of story, poem, essay, article")

type Message struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type Sentiment struct {
	Sentiment   string `json:"sentiment"`
	Explanation string `json:"explanation"`
}

type QuickQuestion struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options,omitempty"`
}

var sentimentSchema = &llm.Schema{
	Name:        "sentiment",
	Description: "sentiment label with a short explanation",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"sentiment", "explanation"},
		"properties": map[string]any{
			"sentiment":   map[string]any{"type": "string"},
			"explanation": map[string]any{"type": "string"},
		},
	},
}

var quickQuizSchema = &llm.Schema{
	Name:        "quick-quiz",
	Description: "list of short quiz questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []string{"question", "answer"},
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"answer":   map[string]any{"type": "string"},
				"options":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		},
	},
}

// Assistant wraps a provider with small best-effort text helpers. Helpers
// that expect JSON fall back to a permissive value when the reply cannot
// be decoded; provider failures are always returned.
type Assistant struct {
	provider llm.Provider
	delay    time.Duration
}

// New accepts a nil provider; every helper then returns llm.ErrNotConfigured.
func New(provider llm.Provider, typingDelay time.Duration) *Assistant {
	if typingDelay < 0 {
		typingDelay = 0
	}
	return &Assistant{provider: provider, delay: typingDelay}
}

func (a *Assistant) generate(ctx context.Context, req llm.Request) (string, error) {
	if a.provider == nil {
		return "", llm.ErrNotConfigured
	}
	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (a *Assistant) text(ctx context.Context, prompt string) (string, error) {
	return a.generate(ctx, llm.Request{Prompt: prompt})
}

func (a *Assistant) AnalyzeSentiment(ctx context.Context, text string) (Sentiment, error) {
	reply, err := a.generate(ctx, llm.Request{Prompt: sentimentPrompt(text), Schema: sentimentSchema})
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			config.WithContext(ctx).WithError(err).Debug("Sentiment reply was not valid JSON")
			return Sentiment{Sentiment: "unknown", Explanation: string(invalid.Content)}, nil
		}
		return Sentiment{}, err
	}

	var s Sentiment
	if err := json.Unmarshal([]byte(reply), &s); err != nil {
		return Sentiment{Sentiment: "unknown", Explanation: reply}, nil
	}
	return s, nil
}

func (a *Assistant) Summarize(ctx context.Context, text string, maxWords int) (string, error) {
	if maxWords <= 0 {
		maxWords = DefaultSummaryWords
	}
	return a.text(ctx, summarizePrompt(text, maxWords))
}

func (a *Assistant) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	return a.text(ctx, translatePrompt(text, targetLanguage))
}

func (a *Assistant) CreativeContent(ctx context.Context, topic string, kind ContentKind) (string, error) {
	switch kind {
	case "":
		kind = KindStory
	case KindStory, KindPoem, KindEssay, KindArticle:
	default:
		return "", ErrInvalidKind
	}
	return a.text(ctx, creativePrompt(topic, kind))
}

func (a *Assistant) AnswerQuestion(ctx context.Context, passage, question string) (string, error) {
	return a.text(ctx, answerPrompt(passage, question))
}

// ExtractKeyPoints falls back to the non-blank lines of the reply when it
// is not a JSON array of strings.
func (a *Assistant) ExtractKeyPoints(ctx context.Context, text string, n int) ([]string, error) {
	if n <= 0 {
		n = DefaultKeyPoints
	}
	reply, err := a.text(ctx, keyPointsPrompt(text, n))
	if err != nil {
		return nil, err
	}

	var points []string
	if err := json.Unmarshal([]byte(reply), &points); err == nil {
		return points, nil
	}

	lines := []string{}
	for _, line := range strings.Split(reply, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (a *Assistant) ChatWithHistory(ctx context.Context, history []Message, newMessage string) (string, error) {
	return a.text(ctx, chatPrompt(history, newMessage))
}

func (a *Assistant) Improve(ctx context.Context, text, instruction string) (string, error) {
	return a.text(ctx, improvePrompt(text, strings.TrimSpace(instruction)))
}

// QuickQuiz returns an empty slice when the reply cannot be decoded.
func (a *Assistant) QuickQuiz(ctx context.Context, content string, n int) ([]QuickQuestion, error) {
	if n <= 0 {
		n = DefaultQuizSize
	}
	reply, err := a.generate(ctx, llm.Request{Prompt: quickQuizPrompt(content, n), Schema: quickQuizSchema})
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			config.WithContext(ctx).WithError(err).Debug("Quick quiz reply did not match the expected shape")
			return []QuickQuestion{}, nil
		}
		return nil, err
	}

	var questions []QuickQuestion
	if err := json.Unmarshal([]byte(reply), &questions); err != nil || questions == nil {
		return []QuickQuestion{}, nil
	}
	return questions, nil
}

// StreamWithTypingEffect relays the reply chunk by chunk. After each chunk
// onUpdate receives everything received so far, then the call pauses for
// delay. A negative delay uses the assistant default.
func (a *Assistant) StreamWithTypingEffect(ctx context.Context, prompt string, onUpdate func(accumulated string), delay time.Duration) error {
	if a.provider == nil {
		return llm.ErrNotConfigured
	}
	streamer, ok := a.provider.(llm.Streamer)
	if !ok {
		return llm.ErrStreamingUnsupported
	}
	if delay < 0 {
		delay = a.delay
	}

	var acc strings.Builder
	err := streamer.Stream(ctx, llm.Request{Prompt: prompt}, func(chunk string) error {
		acc.WriteString(chunk)
		onUpdate(acc.String())
		return sleep(ctx, delay)
	})
	if err != nil {
		return fmt.Errorf("stream: %w", err)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
