package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizgen/internal/assistant"
	"github.com/saulo-duarte/quizgen/internal/llm"
)

type generateOnly struct{}

func (generateOnly) Generate(context.Context, llm.Request) (*llm.Response, error) {
	return &llm.Response{Text: "ok"}, nil
}

func (generateOnly) ModelID() string { return "plain" }

func TestAnalyzeSentiment(t *testing.T) {
	ctx := context.Background()

	t.Run("valid JSON", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Text: `{"sentiment":"positive","explanation":"upbeat"}`})
		out, err := assistant.New(mock, 0).AnalyzeSentiment(ctx, "I love it")
		require.NoError(t, err)
		assert.Equal(t, assistant.Sentiment{Sentiment: "positive", Explanation: "upbeat"}, out)
		assert.Contains(t, mock.Calls[0].Prompt, `Text: "I love it"`)
		require.NotNil(t, mock.Calls[0].Schema)
	})

	t.Run("fenced JSON is unwrapped", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Text: "```json\n{\"sentiment\":\"negative\",\"explanation\":\"grumpy\"}\n```"})
		out, err := assistant.New(mock, 0).AnalyzeSentiment(ctx, "meh")
		require.NoError(t, err)
		assert.Equal(t, assistant.Sentiment{Sentiment: "negative", Explanation: "grumpy"}, out)
	})

	t.Run("wrong shape falls back", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Text: `{"mood":"happy"}`})
		out, err := assistant.New(mock, 0).AnalyzeSentiment(ctx, "meh")
		require.NoError(t, err)
		assert.Equal(t, "unknown", out.Sentiment)
		assert.Equal(t, `{"mood":"happy"}`, out.Explanation)
	})

	t.Run("free text falls back", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Text: "Mostly positive."})
		out, err := assistant.New(mock, 0).AnalyzeSentiment(ctx, "I love it")
		require.NoError(t, err)
		assert.Equal(t, "unknown", out.Sentiment)
		assert.Equal(t, "Mostly positive.", out.Explanation)
	})

	t.Run("provider failure is returned", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("slow down")}})
		_, err := assistant.New(mock, 0).AnalyzeSentiment(ctx, "x")
		var rl *llm.ErrRateLimit
		assert.True(t, errors.As(err, &rl))
	})
}

func TestTextHelpers(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider()
	a := assistant.New(mock, 0)

	reply := func() { mock.AddResponse(llm.MockResponse{Text: "reply"}) }

	reply()
	out, err := a.Summarize(ctx, "long text", 0)
	require.NoError(t, err)
	assert.Equal(t, "reply", out)
	assert.Contains(t, mock.Calls[0].Prompt, "no more than 100 words")

	reply()
	_, err = a.Translate(ctx, "hello", "Spanish")
	require.NoError(t, err)
	assert.Equal(t, "Translate the following text to Spanish: hello", mock.Calls[1].Prompt)

	reply()
	_, err = a.CreativeContent(ctx, "the sea", "")
	require.NoError(t, err)
	assert.Equal(t, "Write a creative story about: the sea", mock.Calls[2].Prompt)

	_, err = a.CreativeContent(ctx, "the sea", "limerick")
	assert.ErrorIs(t, err, assistant.ErrInvalidKind)
	assert.Equal(t, 3, mock.CallCount())

	reply()
	_, err = a.AnswerQuestion(ctx, "Paris is in France.", "Where is Paris?")
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[3].Prompt, "Context: Paris is in France.")
	assert.True(t, strings.HasSuffix(mock.Calls[3].Prompt, "Answer:"))

	reply()
	_, err = a.Improve(ctx, "teh text", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(mock.Calls[4].Prompt, "Improve the following text:\n"))

	reply()
	_, err = a.Improve(ctx, "teh text", "fixing typos")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(mock.Calls[5].Prompt, "Improve the following text by fixing typos:"))

	reply()
	_, err = a.ChatWithHistory(ctx, []assistant.Message{
		{Role: assistant.RoleUser, Content: "Hi"},
		{Role: assistant.RoleAssistant, Content: "Hello!"},
	}, "How are you?")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(mock.Calls[6].Prompt, "User: Hi\nAssistant: Hello!\nUser: How are you?\nAssistant:"))
}

func TestExtractKeyPoints(t *testing.T) {
	ctx := context.Background()

	mock := llm.NewMockProvider(
		llm.MockResponse{Text: `["one","two"]`},
		llm.MockResponse{Text: "- one\n\n  \n- two\n"},
	)
	a := assistant.New(mock, 0)

	points, err := a.ExtractKeyPoints(ctx, "text", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, points)
	assert.Contains(t, mock.Calls[0].Prompt, "Extract 5 key points")

	points, err = a.ExtractKeyPoints(ctx, "text", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"- one", "- two"}, points)
}

func TestQuickQuiz(t *testing.T) {
	ctx := context.Background()

	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Sure!\n```json\n[{\"question\":\"2+2?\",\"answer\":\"4\",\"options\":[\"3\",\"4\",\"5\",\"6\"]}]\n```"},
		llm.MockResponse{Text: "not json"},
		llm.MockResponse{Text: `[{"question":"2+2?"}]`},
	)
	a := assistant.New(mock, 0)

	qs, err := a.QuickQuiz(ctx, "arithmetic", 1)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "4", qs[0].Answer)
	assert.Len(t, qs[0].Options, 4)
	require.NotNil(t, mock.Calls[0].Schema)

	qs, err = a.QuickQuiz(ctx, "arithmetic", 0)
	require.NoError(t, err)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)

	// Missing answer fails the schema and falls back the same way.
	qs, err = a.QuickQuiz(ctx, "arithmetic", 1)
	require.NoError(t, err)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func TestNotConfigured(t *testing.T) {
	a := assistant.New(nil, 0)
	_, err := a.Summarize(context.Background(), "x", 10)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)

	err = a.StreamWithTypingEffect(context.Background(), "x", func(string) {}, 0)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestStreamWithTypingEffect(t *testing.T) {
	t.Run("accumulates chunks", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Chunks: []string{"Hel", "lo", " world"}})
		a := assistant.New(mock, 0)

		var updates []string
		start := time.Now()
		err := a.StreamWithTypingEffect(context.Background(), "greet", func(s string) {
			updates = append(updates, s)
		}, 10*time.Millisecond)
		require.NoError(t, err)

		assert.Equal(t, []string{"Hel", "Hello", "Hello world"}, updates)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("cancelled context stops the relay", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Chunks: []string{"a", "b", "c"}})
		a := assistant.New(mock, 0)

		ctx, cancel := context.WithCancel(context.Background())
		var updates []string
		err := a.StreamWithTypingEffect(ctx, "x", func(s string) {
			updates = append(updates, s)
			cancel()
		}, time.Second)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, []string{"a"}, updates)
	})

	t.Run("provider without streaming", func(t *testing.T) {
		err := assistant.New(generateOnly{}, 0).StreamWithTypingEffect(context.Background(), "x", func(string) {}, 0)
		assert.ErrorIs(t, err, llm.ErrStreamingUnsupported)
	})
}
