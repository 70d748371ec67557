package assistant

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/sentiment", h.Sentiment)
	r.Post("/summarize", h.Summarize)
	r.Post("/translate", h.Translate)
	r.Post("/creative", h.Creative)
	r.Post("/answer", h.Answer)
	r.Post("/key-points", h.KeyPoints)
	r.Post("/improve", h.Improve)
	r.Post("/chat", h.Chat)
	r.Post("/quick-quiz", h.QuickQuiz)
	return r
}
