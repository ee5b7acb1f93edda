package model

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt is the durable record of one completed scoring event.
// Attempts are additive: retrying a quiz creates a new row, never
// mutates or deletes an old one.
type QuizAttempt struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	QuizID         uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz           Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	UserID         string         `json:"user_id" gorm:"not null;index"`
	Score          int            `json:"score" gorm:"not null"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	CompletedAt    time.Time      `json:"completed_at" gorm:"autoCreateTime"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
