package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/quizgen/docs"

	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/saulo-duarte/quizgen/internal/assistant"
	"github.com/saulo-duarte/quizgen/internal/auth"
	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/saulo-duarte/quizgen/internal/middlewares"
	"github.com/saulo-duarte/quizgen/internal/quiz"
	"github.com/saulo-duarte/quizgen/internal/topics"
)

// RouterConfig holds the feature handlers. AuthHandler and QuizHandler are
// nil when history is disabled; their routes are then not mounted.
type RouterConfig struct {
	AIQuizHandler    *aiquiz.Handler
	AssistantHandler *assistant.Handler
	TopicsHandler    *topics.Handler
	AuthHandler      *auth.Handler
	QuizHandler      *quiz.Handler
	AllowedOrigins   []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		config.Error(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		config.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/generate-question", aiquiz.Routes(cfg.AIQuizHandler))
		r.Mount("/topics", topics.Routes(cfg.TopicsHandler))
		r.Mount("/assist", assistant.Routes(cfg.AssistantHandler))

		if cfg.AuthHandler != nil && cfg.QuizHandler != nil {
			r.Mount("/auth", auth.Routes(cfg.AuthHandler))
			r.Mount("/history", quiz.Routes(cfg.QuizHandler))
		}
	})

	return r
}
