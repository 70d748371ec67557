package assistant_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizgen/internal/assistant"
	"github.com/saulo-duarte/quizgen/internal/llm"
)

func serve(t *testing.T, p llm.Provider, path, body string) (int, map[string]any) {
	t.Helper()
	h := assistant.Routes(assistant.NewHandler(assistant.New(p, 0)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestHandlers(t *testing.T) {
	t.Run("summarize", func(t *testing.T) {
		code, out := serve(t, llm.NewMockProvider(llm.MockResponse{Text: "short"}), "/summarize", `{"text":"long","maxWords":20}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "short", out["result"])
	})

	t.Run("sentiment fallback", func(t *testing.T) {
		code, out := serve(t, llm.NewMockProvider(llm.MockResponse{Text: "meh"}), "/sentiment", `{"text":"ok"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "unknown", out["sentiment"])
	})

	t.Run("key points", func(t *testing.T) {
		code, out := serve(t, llm.NewMockProvider(llm.MockResponse{Text: `["a","b"]`}), "/key-points", `{"text":"t","count":2}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, []any{"a", "b"}, out["points"])
	})

	t.Run("quick quiz fallback", func(t *testing.T) {
		code, out := serve(t, llm.NewMockProvider(llm.MockResponse{Text: "nope"}), "/quick-quiz", `{"content":"t"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, []any{}, out["questions"])
	})

	t.Run("chat", func(t *testing.T) {
		code, _ := serve(t, llm.NewMockProvider(llm.MockResponse{Text: "fine"}), "/chat",
			`{"messages":[{"role":"user","content":"hi"}],"message":"how are you?"}`)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("missing field", func(t *testing.T) {
		code, out := serve(t, llm.NewMockProvider(), "/translate", `{"text":"hola"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "targetLanguage is required", out["error"])
	})

	t.Run("bad kind", func(t *testing.T) {
		code, out := serve(t, llm.NewMockProvider(), "/creative", `{"topic":"sea","kind":"limerick"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, out["error"], "kind must be one of")
	})

	t.Run("bad chat role", func(t *testing.T) {
		code, _ := serve(t, llm.NewMockProvider(), "/chat", `{"messages":[{"role":"system","content":"x"}],"message":"m"}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("not configured", func(t *testing.T) {
		code, out := serve(t, nil, "/answer", `{"context":"c","question":"q"}`)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Server configuration error: API key not configured", out["error"])
	})

	t.Run("provider error", func(t *testing.T) {
		code, out := serve(t, llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrContentFiltered{Reason: "SAFETY"}}), "/improve", `{"text":"t"}`)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "content filtered by provider: SAFETY", out["error"])
	})
}
