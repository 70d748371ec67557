package quiz

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(ctx context.Context, q *Quiz) error
	GetByID(ctx context.Context, id, userID string) (*Quiz, error)
	ListByUser(ctx context.Context, userID string) ([]*Quiz, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// Migrate creates or updates the history table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Quiz{})
}

func (r *quizRepository) Create(ctx context.Context, q *Quiz) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// GetByID scopes the lookup to the owner. A miss returns nil, nil.
func (r *quizRepository) GetByID(ctx context.Context, id, userID string) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.WithContext(ctx).
		First(&quiz, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) ListByUser(ctx context.Context, userID string) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Quiz{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *quizRepository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Quiz{}, "user_id = ?", userID)
	return res.RowsAffected, res.Error
}
