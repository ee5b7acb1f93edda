package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/studyboi/quizforge/internal/model"
)

// Phase is the lifecycle state of one quiz-taking session.
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseSubmitting Phase = "submitting"
	PhaseCompleted  Phase = "completed"
)

// AttemptRecorder persists the durable record of a completed session.
type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, attempt *model.QuizAttempt) error
}

// Session is a replayable state machine over one loaded quiz for one
// user. It is owned by a single caller; the internal mutex only guards
// against accidental double-invocation (a double-clicked submit), not
// full concurrent use from multiple owners.
type Session struct {
	mu sync.Mutex

	quiz      *model.Quiz
	questions []model.QuizQuestion
	userID    string

	phase      Phase
	current    int
	selections []int
	result     *ScoreResult

	recorder AttemptRecorder
}

// New starts a session over the given quiz. The quiz must have at least
// one question; questions are expected in display order.
func New(quiz *model.Quiz, userID string, recorder AttemptRecorder) (*Session, error) {
	if quiz == nil || len(quiz.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	selections := make([]int, len(quiz.Questions))
	for i := range selections {
		selections[i] = Unanswered
	}

	return &Session{
		quiz:       quiz,
		questions:  quiz.Questions,
		userID:     userID,
		phase:      PhaseInProgress,
		selections: selections,
		recorder:   recorder,
	}, nil
}

// SelectAnswer records the chosen option for the current question.
func (s *Session) SelectAnswer(optionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInProgress {
		return fmt.Errorf("cannot answer in phase %s", s.phase)
	}
	if optionIndex < 0 || optionIndex >= len(s.questions[s.current].Options) {
		return ErrInvalidOption
	}
	s.selections[s.current] = optionIndex
	return nil
}

// Next advances to the following question; a no-op at the last one.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current < len(s.questions)-1 {
		s.current++
	}
}

// Previous moves back one question; a no-op at the first one.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current > 0 {
		s.current--
	}
}

// Submit grades the session and records the attempt. It fails with
// ErrIncompleteAnswers while any question is unanswered. A repeated
// submit on a completed session returns the existing result without
// recording a duplicate attempt.
func (s *Session) Submit(ctx context.Context) (*ScoreResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-click guard: once submitting or completed, hand back the
	// existing result instead of recording again.
	if s.phase == PhaseCompleted || s.phase == PhaseSubmitting {
		return s.result, nil
	}

	for _, sel := range s.selections {
		if sel == Unanswered {
			return nil, ErrIncompleteAnswers
		}
	}

	s.phase = PhaseSubmitting
	result := Score(s.questions, s.selections)

	attempt := &model.QuizAttempt{
		QuizID:         s.quiz.ID,
		UserID:         s.userID,
		Score:          result.Score,
		TotalQuestions: result.Total,
	}
	if err := s.recorder.RecordAttempt(ctx, attempt); err != nil {
		// Keep the session resumable so the user can submit again.
		s.phase = PhaseInProgress
		log.Error().Err(err).Uint("quizID", s.quiz.ID).Str("userID", s.userID).Msg("Failed to record quiz attempt")
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	s.result = &result
	s.phase = PhaseCompleted
	log.Info().Uint("quizID", s.quiz.ID).Str("userID", s.userID).Int("score", result.Score).Int("total", result.Total).Msg("Quiz attempt completed")
	return s.result, nil
}

// Retry resets a completed session back to the start. The previously
// recorded attempt stays: each submission is an independent, additive
// record.
func (s *Session) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseCompleted {
		return ErrNotCompleted
	}
	for i := range s.selections {
		s.selections[i] = Unanswered
	}
	s.current = 0
	s.result = nil
	s.phase = PhaseInProgress
	return nil
}

// Snapshot is a read-only view of the session for callers.
type Snapshot struct {
	QuizID       uint
	Phase        Phase
	CurrentIndex int
	Selections   []int
	Answered     int
	Total        int
	Result       *ScoreResult
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	selections := make([]int, len(s.selections))
	copy(selections, s.selections)

	answered := 0
	for _, sel := range selections {
		if sel != Unanswered {
			answered++
		}
	}

	return Snapshot{
		QuizID:       s.quiz.ID,
		Phase:        s.phase,
		CurrentIndex: s.current,
		Selections:   selections,
		Answered:     answered,
		Total:        len(s.questions),
		Result:       s.result,
	}
}

// Quiz returns the quiz this session runs over.
func (s *Session) Quiz() *model.Quiz {
	return s.quiz
}
