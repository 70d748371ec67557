package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quiz is one completed attempt. Questions are stored exactly as they were
// served; UserAnswers maps the 0-based question index to the chosen label.
type Quiz struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Topic          string         `gorm:"type:text;not null" json:"topic"`
	Questions      datatypes.JSON `gorm:"type:jsonb;not null" json:"questions"`
	UserAnswers    datatypes.JSON `gorm:"type:jsonb;not null" json:"userAnswers"`
	Score          int            `gorm:"not null;default:0" json:"score"`
	TotalQuestions int            `gorm:"not null;default:0" json:"totalQuestions"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Quiz) TableName() string {
	return "quiz_history"
}
