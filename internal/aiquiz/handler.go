package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/saulo-duarte/quizgen/internal/config"
)

const (
	msgTopicRequired = "Topic is required and must be a non-empty string"
	msgNotConfigured = "Server configuration error: API key not configured"
	msgUnexpected    = "An unexpected error occurred"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestions godoc
// @Summary      Generate quiz questions
// @Description  Generates five multiple-choice questions with explanations and sources for a topic
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request body GenerateRequest true "Quiz topic"
// @Success      200 {object} GenerateResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /api/generate-question [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topic, ok := decodeTopic(r)
	if !ok {
		config.Error(w, http.StatusBadRequest, msgTopicRequired)
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), topic)
	if err != nil {
		switch {
		case errors.Is(err, ErrTopicRequired):
			config.Error(w, http.StatusBadRequest, msgTopicRequired)
		case errors.Is(err, ErrNotConfigured):
			log.Error("LLM API key is not configured")
			config.Error(w, http.StatusInternalServerError, msgNotConfigured)
		default:
			log.WithError(err).WithField("topic", topic).Error("Failed to generate questions")
			msg := err.Error()
			if msg == "" {
				msg = msgUnexpected
			}
			config.Error(w, http.StatusInternalServerError, msg)
		}
		return
	}

	config.JSON(w, http.StatusOK, GenerateResponse{Success: true, Questions: questions})
}

// decodeTopic rejects bodies that are not JSON objects, a missing topic, a
// topic that is not a string, and a blank one.
func decodeTopic(r *http.Request) (string, bool) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", false
	}
	raw, ok := body["topic"]
	if !ok {
		return "", false
	}
	var topic string
	if err := json.Unmarshal(raw, &topic); err != nil {
		return "", false
	}
	topic = strings.TrimSpace(topic)
	return topic, topic != ""
}
