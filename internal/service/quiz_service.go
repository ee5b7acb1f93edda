package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/studyboi/quizforge/internal/dto"
	"github.com/studyboi/quizforge/internal/model"
	"github.com/studyboi/quizforge/internal/repository"
)

// QuizService is the read/authoring surface over persisted quizzes.
type QuizService interface {
	ListQuizzes(userID string) ([]dto.QuizSummaryResponse, error)
	GetQuiz(quizID uint, userID string) (*dto.QuizResponse, error)
	AddQuestion(quizID uint, userID string, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuiz(quizID uint, userID string) error
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) ListQuizzes(userID string) ([]dto.QuizSummaryResponse, error) {
	quizzes, err := s.quizRepo.FindAllVisible(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	summaries := make([]dto.QuizSummaryResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		var summary dto.QuizSummaryResponse
		if err := copier.Copy(&summary, &quiz); err != nil {
			log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Error copying quiz to summary DTO")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *quizService) GetQuiz(quizID uint, userID string) (*dto.QuizResponse, error) {
	quiz, err := s.loadVisible(quizID, userID)
	if err != nil {
		return nil, err
	}

	var resp dto.QuizResponse
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}

// AddQuestion hand-authors a question on an owned quiz. It enforces the
// same canonical shape as generated questions: exactly 4 non-empty
// options and a correct index in [0,3].
func (s *quizService) AddQuestion(quizID uint, userID string, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}
	if quiz.CreatedBy != userID {
		return nil, ErrNotOwner
	}

	options := make(model.OptionList, 0, len(req.Options))
	for i, opt := range req.Options {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			return nil, fmt.Errorf("option %d must be a non-empty string", i+1)
		}
		options = append(options, trimmed)
	}

	count, err := s.quizRepo.CountQuestions(quizID)
	if err != nil {
		return nil, fmt.Errorf("error counting questions for quiz %d: %w", quizID, err)
	}

	question := &model.QuizQuestion{
		QuizID:       quizID,
		Question:     strings.TrimSpace(req.Question),
		Options:      options,
		CorrectIndex: *req.CorrectIndex,
		OrderInQuiz:  int(count),
	}
	if e := strings.TrimSpace(req.Explanation); e != "" {
		question.Explanation = &e
	}

	if err := s.quizRepo.AddQuestion(question); err != nil {
		return nil, fmt.Errorf("failed to save question: %w", err)
	}
	log.Info().Uint("quizID", quizID).Uint("questionID", question.ID).Msg("Question added to quiz")

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) DeleteQuiz(quizID uint, userID string) error {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}
	if quiz.CreatedBy != userID {
		return ErrNotOwner
	}

	if err := s.quizRepo.Delete(quizID); err != nil {
		return fmt.Errorf("failed to delete quiz %d: %w", quizID, err)
	}
	log.Info().Uint("quizID", quizID).Str("userID", userID).Msg("Quiz deleted")
	return nil
}

func (s *quizService) loadVisible(quizID uint, userID string) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}
	if !quiz.IsPublic && quiz.CreatedBy != userID {
		return nil, ErrAccessDenied
	}
	return quiz, nil
}
