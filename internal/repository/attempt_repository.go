package repository

import (
	"gorm.io/gorm"

	"github.com/studyboi/quizforge/internal/model"
)

type AttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	// FindAllByUser lists a user's attempts, newest first, optionally
	// filtered to one quiz.
	FindAllByUser(userID string, quizID *uint) ([]model.QuizAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindAllByUser(userID string, quizID *uint) ([]model.QuizAttempt, error) {
	query := r.db.Preload("Quiz").Where("user_id = ?", userID)
	if quizID != nil {
		query = query.Where("quiz_id = ?", *quizID)
	}

	var attempts []model.QuizAttempt
	err := query.Order("completed_at DESC").Find(&attempts).Error
	return attempts, err
}
