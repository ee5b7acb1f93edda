package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/studyboi/quizforge/internal/dto"
	"github.com/studyboi/quizforge/internal/model"
	"github.com/studyboi/quizforge/internal/repository"
)

// AttemptService records completed sessions and serves attempt history.
// It implements session.AttemptRecorder.
type AttemptService interface {
	RecordAttempt(ctx context.Context, attempt *model.QuizAttempt) error
	ListAttempts(userID string, quizID *uint) ([]dto.AttemptResponse, error)
}

type attemptService struct {
	attemptRepo repository.AttemptRepository
}

func NewAttemptService(attemptRepo repository.AttemptRepository) AttemptService {
	return &attemptService{attemptRepo: attemptRepo}
}

func (s *attemptService) RecordAttempt(ctx context.Context, attempt *model.QuizAttempt) error {
	if attempt.Score < 0 || attempt.Score > attempt.TotalQuestions {
		return fmt.Errorf("score %d out of range for %d questions", attempt.Score, attempt.TotalQuestions)
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}
	log.Info().Uint("quizID", attempt.QuizID).Str("userID", attempt.UserID).Int("score", attempt.Score).Msg("Attempt recorded")
	return nil
}

func (s *attemptService) ListAttempts(userID string, quizID *uint) ([]dto.AttemptResponse, error) {
	attempts, err := s.attemptRepo.FindAllByUser(userID, quizID)
	if err != nil {
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}

	responses := make([]dto.AttemptResponse, 0, len(attempts))
	for _, attempt := range attempts {
		var resp dto.AttemptResponse
		if err := copier.Copy(&resp, &attempt); err != nil {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("Error copying attempt to DTO")
			continue
		}
		resp.QuizTitle = attempt.Quiz.Title
		resp.QuizSubject = attempt.Quiz.Subject
		resp.QuizDifficulty = attempt.Quiz.Difficulty
		responses = append(responses, resp)
	}
	return responses, nil
}
