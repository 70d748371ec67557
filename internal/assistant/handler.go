package assistant

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/saulo-duarte/quizgen/internal/llm"
)

type Handler struct {
	assistant *Assistant
	validate  *validator.Validate
}

func NewHandler(a *Assistant) *Handler {
	return &Handler{assistant: a, validate: validator.New()}
}

func (h *Handler) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		config.Error(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log := config.WithContext(r.Context())
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		log.Error("LLM API key is not configured")
		config.Error(w, http.StatusInternalServerError, "Server configuration error: API key not configured")
	case errors.Is(err, ErrInvalidKind):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).WithField("path", r.URL.Path).Error("Assistant request failed")
		msg := err.Error()
		if msg == "" {
			msg = "An unexpected error occurred"
		}
		config.Error(w, http.StatusInternalServerError, msg)
	}
}

// Sentiment godoc
// @Summary      Analyze sentiment
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        request body TextRequest true "Input"
// @Success      200 {object} Sentiment
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /api/assist/sentiment [post]
func (h *Handler) Sentiment(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !h.bind(w, r, &req) {
		return
	}
	out, err := h.assistant.AnalyzeSentiment(r.Context(), req.Text)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, out)
}

// Summarize godoc
// @Summary      Summarize text
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        request body SummarizeRequest true "Input"
// @Success      200 {object} ResultResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /api/assist/summarize [post]
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if !h.bind(w, r, &req) {
		return
	}
	out, err := h.assistant.Summarize(r.Context(), req.Text, req.MaxWords)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, ResultResponse{Result: out})
}

// Translate godoc
// @Summary      Translate text
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        request body TranslateRequest true "Input"
// @Success      200 {object} ResultResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /api/assist/translate [post]
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if !h.bind(w, r, &req) {
		return
	}
	out, err := h.assistant.Translate(r.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, ResultResponse{Result: out})
}

// Creative godoc
// @Summary      Write a story, poem, essay or article
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        request body CreativeRequest true "Input"
// @Success      200 {object} ResultResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /api/assist/creative [post]
func (h *Handler) Creative(w http.ResponseWriter, r *http.Request) {
	var req CreativeRequest
	if !h.bind(w, r, &req) {
		return
	}
	out, err := h.assistant.CreativeContent(r.Context(), req.Topic, req.Kind)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, ResultResponse{Result: out})
}

// Answer godoc
// @Summary      Answer a question about a passage
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        request body AnswerRequest true "Input"
// @Success      200 {object} ResultResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /api/assist/answer [post]
func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !h.bind(w, r, &req) {
		return
	}
	out, err := h.assistant.AnswerQuestion(r.Context(), req.Context, req.Question)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, ResultResponse{Result: out})
}

// KeyPoints godoc
// @Summary      Extract key points
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        request body KeyPointsRequest true "Input"
// @Success      200 {object} KeyPointsResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /api/assist/key-points [post]
func (h *Handler) KeyPoints(w http.ResponseWriter, r *http.Request) {
	var req KeyPointsRequest
	if !h.bind(w, r, &req) {
		return
	}
	out, err := h.assistant.ExtractKeyPoints(r.Context(), req.Text, req.Count)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, KeyPointsResponse{Points: out})
}

// Improve godoc
// @Summary      Improve a piece of writing
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        request body ImproveRequest true "Input"
// @Success      200 {object} ResultResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /api/assist/improve [post]
func (h *Handler) Improve(w http.ResponseWriter, r *http.Request) {
	var req ImproveRequest
	if !h.bind(w, r, &req) {
		return
	}
	out, err := h.assistant.Improve(r.Context(), req.Text, req.Instruction)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, ResultResponse{Result: out})
}

// Chat godoc
// @Summary      Continue a conversation
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        request body ChatRequest true "Input"
// @Success      200 {object} ResultResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /api/assist/chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !h.bind(w, r, &req) {
		return
	}
	out, err := h.assistant.ChatWithHistory(r.Context(), req.Messages, req.Message)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, ResultResponse{Result: out})
}

// QuickQuiz godoc
// @Summary      Build a short quiz from content
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        request body QuickQuizRequest true "Input"
// @Success      200 {object} QuickQuizResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /api/assist/quick-quiz [post]
func (h *Handler) QuickQuiz(w http.ResponseWriter, r *http.Request) {
	var req QuickQuizRequest
	if !h.bind(w, r, &req) {
		return
	}
	out, err := h.assistant.QuickQuiz(r.Context(), req.Content, req.Count)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, QuickQuizResponse{Questions: out})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "min", "max":
		return field + " is out of range"
	default:
		return field + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
