package aiquiz_test

import (
	"encoding/json"
	"fmt"
)

func validQuestion(n int) map[string]any {
	return map[string]any{
		"question": fmt.Sprintf("Question %d?", n),
		"options": []any{
			map[string]any{"label": "A", "text": "Alpha"},
			map[string]any{"label": "B", "text": "Bravo"},
			map[string]any{"label": "C", "text": "Charlie"},
			map[string]any{"label": "D", "text": "Delta"},
		},
		"correctAnswer": "B",
		"explanation":   "Bravo is right because it is.",
		"sources": []any{
			map[string]any{"title": "Wikipedia - Bravo", "url": "https://en.wikipedia.org/wiki/Bravo"},
		},
	}
}

func validQuestions(n int) []map[string]any {
	qs := make([]map[string]any, n)
	for i := range qs {
		qs[i] = validQuestion(i + 1)
	}
	return qs
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
