package quiz

import (
	"encoding/json"

	"github.com/google/uuid"

	util "github.com/saulo-duarte/quizgen/internal/utils"
)

type CreateQuizRequest struct {
	Topic       string            `json:"topic" validate:"required,max=200"`
	Questions   []json.RawMessage `json:"questions" validate:"required,min=1,max=50"`
	UserAnswers map[int]string    `json:"userAnswers"`
}

type QuizDTO struct {
	ID             uuid.UUID       `json:"id"`
	Topic          string          `json:"topic"`
	Questions      json.RawMessage `json:"questions"`
	UserAnswers    json.RawMessage `json:"userAnswers"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	Percentage     int             `json:"percentage"`
	ScoreColor     util.ScoreColor `json:"scoreColor"`
	ScoreEmoji     string          `json:"scoreEmoji"`
	FormattedDate  string          `json:"formattedDate"`
	Timestamp      int64           `json:"timestamp"`
}

func ToQuizDTO(q *Quiz) QuizDTO {
	pct := util.Percentage(q.Score, q.TotalQuestions)
	return QuizDTO{
		ID:             q.ID,
		Topic:          q.Topic,
		Questions:      json.RawMessage(q.Questions),
		UserAnswers:    json.RawMessage(q.UserAnswers),
		Score:          q.Score,
		TotalQuestions: q.TotalQuestions,
		Percentage:     pct,
		ScoreColor:     util.ScoreColorFor(pct),
		ScoreEmoji:     util.ScoreEmoji(pct),
		FormattedDate:  util.FormatDate(q.CreatedAt),
		Timestamp:      q.CreatedAt.UnixMilli(),
	}
}

func ToQuizDTOs(quizzes []*Quiz) []QuizDTO {
	out := make([]QuizDTO, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, ToQuizDTO(q))
	}
	return out
}

type scoredQuestion struct {
	CorrectAnswer util.JSONText `json:"correctAnswer"`
}

type ClearResponse struct {
	Deleted int64 `json:"deleted"`
}
