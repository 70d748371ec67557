package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/saulo-duarte/quizgen/internal/config"
)

var (
	ErrNotFound         = errors.New("quiz not found")
	ErrInvalidQuestions = errors.New("every question must be an object with a string correctAnswer")
	ErrInvalidUserID    = errors.New("invalid user id")
)

type QuizService interface {
	SaveAttempt(ctx context.Context, userID string, req CreateQuizRequest) (*Quiz, error)
	ListAttempts(ctx context.Context, userID string) ([]*Quiz, error)
	GetAttempt(ctx context.Context, userID, id string) (*Quiz, error)
	DeleteAttempt(ctx context.Context, userID, id string) error
	ClearAttempts(ctx context.Context, userID string) (int64, error)
}

type quizService struct {
	repo QuizRepository
}

func NewService(repo QuizRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) SaveAttempt(ctx context.Context, userID string, req CreateQuizRequest) (*Quiz, error) {
	log := config.WithContext(ctx)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	score, err := Score(req.Questions, req.UserAnswers)
	if err != nil {
		return nil, err
	}

	questions, err := json.Marshal(req.Questions)
	if err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}
	answers := req.UserAnswers
	if answers == nil {
		answers = map[int]string{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}

	quiz := &Quiz{
		ID:             uuid.New(),
		UserID:         uid,
		Topic:          strings.TrimSpace(req.Topic),
		Questions:      datatypes.JSON(questions),
		UserAnswers:    datatypes.JSON(answersJSON),
		Score:          score,
		TotalQuestions: len(req.Questions),
	}
	if err := s.repo.Create(ctx, quiz); err != nil {
		log.WithError(err).Error("Failed to save quiz attempt")
		return nil, err
	}

	log.WithField("quiz_id", quiz.ID.String()).
		WithField("score", score).
		Info("Quiz attempt saved")
	return quiz, nil
}

func (s *quizService) ListAttempts(ctx context.Context, userID string) ([]*Quiz, error) {
	quizzes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quiz attempts")
		return nil, err
	}
	return quizzes, nil
}

func (s *quizService) GetAttempt(ctx context.Context, userID, id string) (*Quiz, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	quiz, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrNotFound
	}
	return quiz, nil
}

func (s *quizService) DeleteAttempt(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	config.WithContext(ctx).WithField("quiz_id", id).Info("Quiz attempt deleted")
	return nil
}

func (s *quizService) ClearAttempts(ctx context.Context, userID string) (int64, error) {
	n, err := s.repo.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	config.WithContext(ctx).WithField("deleted", n).Info("Quiz history cleared")
	return n, nil
}

// Score counts answers whose label equals the question's correctAnswer.
// A non-string correctAnswer is compared by its JSON text, so 1 matches
// the answer "1". Unanswered questions count as wrong.
func Score(questions []json.RawMessage, answers map[int]string) (int, error) {
	score := 0
	for i, raw := range questions {
		var q scoredQuestion
		if err := json.Unmarshal(raw, &q); err != nil || q.CorrectAnswer == "" {
			return 0, ErrInvalidQuestions
		}
		if answer, ok := answers[i]; ok && answer == q.CorrectAnswer.String() {
			score++
		}
	}
	return score, nil
}
