package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/quizgen/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.CreateQuiz)
	r.Get("/", h.ListQuizzes)
	r.Delete("/", h.ClearQuizzes)
	r.Get("/{id}", h.GetQuiz)
	r.Delete("/{id}", h.DeleteQuiz)
	return r
}
