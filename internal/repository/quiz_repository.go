package repository

import (
	"gorm.io/gorm"

	"github.com/studyboi/quizforge/internal/model"
)

type QuizRepository interface {
	// Create persists the quiz and its questions as one unit.
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	// FindAllVisible lists quizzes that are public or owned by the user.
	FindAllVisible(userID string) ([]model.Quiz, error)
	AddQuestion(question *model.QuizQuestion) error
	CountQuestions(quizID uint) (int64, error)
	Delete(id uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// One transaction for the quiz and all its questions: either the
	// whole unit is stored or none of it is.
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(quiz).Error
	})
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.order_in_quiz ASC")
	}).First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAllVisible(userID string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.
		Where("is_public = ? OR created_by = ?", true, userID).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) AddQuestion(question *model.QuizQuestion) error {
	return r.db.Create(question).Error
}

func (r *quizRepository) CountQuestions(quizID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizQuestion{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count, err
}

func (r *quizRepository) Delete(id uint) error {
	// Questions go with the quiz; the quiz is their sole owner.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}
