package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/saulo-duarte/quizgen/internal/auth"
	"github.com/saulo-duarte/quizgen/internal/config"
)

type Handler struct {
	service  QuizService
	validate *validator.Validate
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s, validate: validator.New()}
}

// CreateQuiz godoc
// @Summary      Save a quiz attempt
// @Description  Stores the questions and answers of a finished quiz; the score is computed server-side
// @Tags         history
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateQuizRequest true "Finished quiz"
// @Success      201 {object} QuizDTO
// @Failure      400 {object} config.ErrorResponse
// @Failure      401 {object} config.ErrorResponse
// @Router       /api/history [post]
func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz attempt")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		config.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	quiz, err := h.service.SaveAttempt(r.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidQuestions) || errors.Is(err, ErrInvalidUserID) {
			config.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to save quiz attempt")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, ToQuizDTO(quiz))
}

// ListQuizzes godoc
// @Summary      List quiz attempts
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} QuizDTO
// @Failure      401 {object} config.ErrorResponse
// @Router       /api/history [get]
func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	quizzes, err := h.service.ListAttempts(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz attempts")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, ToQuizDTOs(quizzes))
}

// GetQuiz godoc
// @Summary      Get a quiz attempt
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Attempt ID"
// @Success      200 {object} QuizDTO
// @Failure      404 {object} config.ErrorResponse
// @Router       /api/history/{id} [get]
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	quiz, err := h.service.GetAttempt(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			config.Error(w, http.StatusNotFound, err.Error())
			return
		}
		log.WithError(err).Error("Failed to fetch quiz attempt")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, ToQuizDTO(quiz))
}

// DeleteQuiz godoc
// @Summary      Delete a quiz attempt
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Attempt ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} config.ErrorResponse
// @Router       /api/history/{id} [delete]
func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.DeleteAttempt(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			config.Error(w, http.StatusNotFound, err.Error())
			return
		}
		log.WithError(err).Error("Failed to delete quiz attempt")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

// ClearQuizzes godoc
// @Summary      Delete every quiz attempt
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ClearResponse
// @Router       /api/history [delete]
func (h *Handler) ClearQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	n, err := h.service.ClearAttempts(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to clear quiz history")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, ClearResponse{Deleted: n})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must have at least " + fe.Param() + " items"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " long"
	default:
		return fe.Field() + " is invalid"
	}
}
