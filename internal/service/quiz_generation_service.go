package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/studyboi/quizforge/internal/dto"
	"github.com/studyboi/quizforge/internal/generation"
	"github.com/studyboi/quizforge/internal/repository"
)

// QuizGenerationService runs the full generation pipeline: compose the
// prompt, call the model, parse and normalize the reply, persist the
// quiz with its questions as one unit.
type QuizGenerationService interface {
	GenerateQuiz(ctx context.Context, userID string, req dto.GenerateQuizRequest) (*dto.QuizResponse, error)
}

type quizGenerationService struct {
	client    generation.Client
	assembler *generation.Assembler
	quizRepo  repository.QuizRepository
}

func NewQuizGenerationService(client generation.Client, assembler *generation.Assembler, quizRepo repository.QuizRepository) QuizGenerationService {
	return &quizGenerationService{
		client:    client,
		assembler: assembler,
		quizRepo:  quizRepo,
	}
}

func (s *quizGenerationService) GenerateQuiz(ctx context.Context, userID string, req dto.GenerateQuizRequest) (*dto.QuizResponse, error) {
	genReq, err := generation.NewRequest(req.Topic, req.Difficulty, req.QuestionCount, req.GradeLevel, req.AdditionalInfo, req.IsPublic)
	if err != nil {
		return nil, fmt.Errorf("invalid generation request: %w", err)
	}

	prompt := generation.BuildPrompt(genReq)
	log.Info().Str("topic", genReq.Topic).Str("difficulty", genReq.Difficulty).Int("count", genReq.QuestionCount).Msg("Generating quiz")

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	doc, err := generation.ParseResponse(raw)
	if err != nil {
		log.Warn().Err(err).Str("topic", genReq.Topic).Msg("Generation response could not be parsed")
		return nil, err
	}

	quiz, err := s.assembler.Assemble(doc, genReq)
	if err != nil {
		return nil, err
	}
	quiz.CreatedBy = userID

	if err := s.quizRepo.Create(quiz); err != nil {
		log.Error().Err(err).Str("title", quiz.Title).Msg("Failed to persist generated quiz")
		return nil, fmt.Errorf("failed to save quiz: %w", err)
	}

	log.Info().Uint("quizID", quiz.ID).Int("questions", len(quiz.Questions)).Msg("Quiz generated and saved")

	var resp dto.QuizResponse
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("error preparing response: %w", err)
	}
	return &resp, nil
}
