package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/studyboi/quizforge/internal/dto"
	"github.com/studyboi/quizforge/internal/repository"
	"github.com/studyboi/quizforge/internal/session"
)

// ErrNoSession means the caller acted on a quiz without opening a
// session first.
var ErrNoSession = errors.New("no open session for this quiz")

// SessionService drives the per-user quiz-taking state machine behind
// the HTTP surface.
type SessionService interface {
	Open(quizID uint, userID string) (*dto.SessionResponse, error)
	SelectAnswer(quizID uint, userID string, optionIndex int) (*dto.SessionResponse, error)
	Move(quizID uint, userID string, direction string) (*dto.SessionResponse, error)
	Submit(ctx context.Context, quizID uint, userID string) (*dto.ScoreResultResponse, error)
	Retry(quizID uint, userID string) (*dto.SessionResponse, error)
}

type sessionService struct {
	quizRepo repository.QuizRepository
	manager  *session.Manager
}

func NewSessionService(quizRepo repository.QuizRepository, manager *session.Manager) SessionService {
	return &sessionService{quizRepo: quizRepo, manager: manager}
}

func (s *sessionService) Open(quizID uint, userID string) (*dto.SessionResponse, error) {
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

	sess, err := s.manager.Open(quiz, userID)
	if err != nil {
		return nil, err
	}
	log.Info().Uint("quizID", quizID).Str("userID", userID).Msg("Quiz session opened")
	return snapshotResponse(sess), nil
}

func (s *sessionService) SelectAnswer(quizID uint, userID string, optionIndex int) (*dto.SessionResponse, error) {
	sess, ok := s.manager.Get(userID, quizID)
	if !ok {
		return nil, ErrNoSession
	}
	if err := sess.SelectAnswer(optionIndex); err != nil {
		return nil, err
	}
	return snapshotResponse(sess), nil
}

func (s *sessionService) Move(quizID uint, userID string, direction string) (*dto.SessionResponse, error) {
	sess, ok := s.manager.Get(userID, quizID)
	if !ok {
		return nil, ErrNoSession
	}
	switch direction {
	case "next":
		sess.Next()
	case "previous":
		sess.Previous()
	default:
		return nil, fmt.Errorf("unknown direction %q", direction)
	}
	return snapshotResponse(sess), nil
}

func (s *sessionService) Submit(ctx context.Context, quizID uint, userID string) (*dto.ScoreResultResponse, error) {
	sess, ok := s.manager.Get(userID, quizID)
	if !ok {
		return nil, ErrNoSession
	}
	result, err := sess.Submit(ctx)
	if err != nil {
		return nil, err
	}
	return scoreResponse(result), nil
}

func (s *sessionService) Retry(quizID uint, userID string) (*dto.SessionResponse, error) {
	sess, ok := s.manager.Get(userID, quizID)
	if !ok {
		return nil, ErrNoSession
	}
	if err := sess.Retry(); err != nil {
		return nil, err
	}
	return snapshotResponse(sess), nil
}

func snapshotResponse(sess *session.Session) *dto.SessionResponse {
	snap := sess.Snapshot()
	return &dto.SessionResponse{
		QuizID:       snap.QuizID,
		Phase:        string(snap.Phase),
		CurrentIndex: snap.CurrentIndex,
		Selections:   snap.Selections,
		Answered:     snap.Answered,
		Total:        snap.Total,
		Result:       scoreResponse(snap.Result),
	}
}

func scoreResponse(result *session.ScoreResult) *dto.ScoreResultResponse {
	if result == nil {
		return nil
	}
	return &dto.ScoreResultResponse{
		Score:              result.Score,
		Total:              result.Total,
		Percentage:         result.Percentage,
		PerQuestionCorrect: result.PerQuestionCorrect,
	}
}
