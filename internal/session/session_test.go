package session

import (
	"context"
	"errors"
	"testing"

	"github.com/studyboi/quizforge/internal/model"
)

type fakeRecorder struct {
	attempts []*model.QuizAttempt
	err      error
}

func (f *fakeRecorder) RecordAttempt(ctx context.Context, attempt *model.QuizAttempt) error {
	if f.err != nil {
		return f.err
	}
	f.attempts = append(f.attempts, attempt)
	return nil
}

func testQuiz(correct ...int) *model.Quiz {
	quiz := &model.Quiz{
		Title:      "Test Quiz",
		Subject:    "Testing",
		Difficulty: "easy",
		Questions:  questionsWithAnswers(correct...),
	}
	quiz.ID = 7
	return quiz
}

func mustNew(t *testing.T, quiz *model.Quiz, recorder AttemptRecorder) *Session {
	t.Helper()
	sess, err := New(quiz, "user-1", recorder)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sess
}

func TestNewRejectsEmptyQuiz(t *testing.T) {
	tests := []struct {
		name string
		quiz *model.Quiz
	}{
		{name: "nil quiz", quiz: nil},
		{name: "no questions", quiz: &model.Quiz{Title: "Empty"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.quiz, "user-1", &fakeRecorder{})
			if !errors.Is(err, ErrNoQuestions) {
				t.Errorf("error = %v, want ErrNoQuestions", err)
			}
		})
	}
}

func TestNewInitialState(t *testing.T) {
	sess := mustNew(t, testQuiz(0, 1, 2), &fakeRecorder{})
	snap := sess.Snapshot()

	if snap.Phase != PhaseInProgress {
		t.Errorf("Phase = %s, want %s", snap.Phase, PhaseInProgress)
	}
	if snap.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", snap.CurrentIndex)
	}
	if snap.Answered != 0 {
		t.Errorf("Answered = %d, want 0", snap.Answered)
	}
	for i, sel := range snap.Selections {
		if sel != Unanswered {
			t.Errorf("Selections[%d] = %d, want %d", i, sel, Unanswered)
		}
	}
}

func TestSelectAnswer(t *testing.T) {
	sess := mustNew(t, testQuiz(0, 1), &fakeRecorder{})

	if err := sess.SelectAnswer(2); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	snap := sess.Snapshot()
	if snap.Selections[0] != 2 {
		t.Errorf("Selections[0] = %d, want 2", snap.Selections[0])
	}
	if snap.Answered != 1 {
		t.Errorf("Answered = %d, want 1", snap.Answered)
	}

	// Re-answering the same question overwrites, not appends.
	if err := sess.SelectAnswer(3); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	snap = sess.Snapshot()
	if snap.Selections[0] != 3 {
		t.Errorf("Selections[0] = %d, want 3", snap.Selections[0])
	}
	if snap.Answered != 1 {
		t.Errorf("Answered = %d, want 1", snap.Answered)
	}
}

func TestSelectAnswerOutOfRange(t *testing.T) {
	sess := mustNew(t, testQuiz(0), &fakeRecorder{})

	for _, idx := range []int{-1, 4, 100} {
		if err := sess.SelectAnswer(idx); !errors.Is(err, ErrInvalidOption) {
			t.Errorf("SelectAnswer(%d) = %v, want ErrInvalidOption", idx, err)
		}
	}
	if snap := sess.Snapshot(); snap.Answered != 0 {
		t.Errorf("Answered = %d, want 0 after rejected selections", snap.Answered)
	}
}

func TestNavigationBounds(t *testing.T) {
	sess := mustNew(t, testQuiz(0, 1, 2), &fakeRecorder{})

	sess.Previous()
	if snap := sess.Snapshot(); snap.CurrentIndex != 0 {
		t.Errorf("Previous at first question moved to %d", snap.CurrentIndex)
	}

	sess.Next()
	sess.Next()
	sess.Next()
	sess.Next()
	if snap := sess.Snapshot(); snap.CurrentIndex != 2 {
		t.Errorf("Next past last question moved to %d, want 2", snap.CurrentIndex)
	}

	sess.Previous()
	if snap := sess.Snapshot(); snap.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", snap.CurrentIndex)
	}
}

func answerAll(t *testing.T, sess *Session, selections ...int) {
	t.Helper()
	for i, sel := range selections {
		if err := sess.SelectAnswer(sel); err != nil {
			t.Fatalf("SelectAnswer(%d): %v", sel, err)
		}
		if i < len(selections)-1 {
			sess.Next()
		}
	}
}

func TestSubmitIncomplete(t *testing.T) {
	recorder := &fakeRecorder{}
	sess := mustNew(t, testQuiz(0, 1, 2), recorder)

	if err := sess.SelectAnswer(0); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}

	_, err := sess.Submit(context.Background())
	if !errors.Is(err, ErrIncompleteAnswers) {
		t.Fatalf("Submit = %v, want ErrIncompleteAnswers", err)
	}
	if len(recorder.attempts) != 0 {
		t.Errorf("recorded %d attempts, want 0", len(recorder.attempts))
	}
	if snap := sess.Snapshot(); snap.Phase != PhaseInProgress {
		t.Errorf("Phase = %s, want %s after failed submit", snap.Phase, PhaseInProgress)
	}
}

func TestSubmit(t *testing.T) {
	recorder := &fakeRecorder{}
	sess := mustNew(t, testQuiz(0, 1, 2), recorder)
	answerAll(t, sess, 0, 1, 3)

	result, err := sess.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 2 || result.Total != 3 {
		t.Errorf("result = %d/%d, want 2/3", result.Score, result.Total)
	}
	if result.Percentage != 67 {
		t.Errorf("Percentage = %d, want 67", result.Percentage)
	}
	if snap := sess.Snapshot(); snap.Phase != PhaseCompleted {
		t.Errorf("Phase = %s, want %s", snap.Phase, PhaseCompleted)
	}

	if len(recorder.attempts) != 1 {
		t.Fatalf("recorded %d attempts, want 1", len(recorder.attempts))
	}
	attempt := recorder.attempts[0]
	if attempt.QuizID != 7 || attempt.UserID != "user-1" {
		t.Errorf("attempt identity = (%d, %s), want (7, user-1)", attempt.QuizID, attempt.UserID)
	}
	if attempt.Score != 2 || attempt.TotalQuestions != 3 {
		t.Errorf("attempt = %d/%d, want 2/3", attempt.Score, attempt.TotalQuestions)
	}
}

func TestSubmitTwiceRecordsOnce(t *testing.T) {
	recorder := &fakeRecorder{}
	sess := mustNew(t, testQuiz(0, 1), recorder)
	answerAll(t, sess, 0, 1)

	first, err := sess.Submit(context.Background())
	if err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	second, err := sess.Submit(context.Background())
	if err != nil {
		t.Fatalf("second Submit: %v", err)
	}

	if first != second {
		t.Error("second submit returned a different result")
	}
	if len(recorder.attempts) != 1 {
		t.Errorf("recorded %d attempts, want 1", len(recorder.attempts))
	}
}

func TestSubmitRecorderFailureIsRetryable(t *testing.T) {
	recorder := &fakeRecorder{err: errors.New("db down")}
	sess := mustNew(t, testQuiz(0), recorder)
	answerAll(t, sess, 0)

	if _, err := sess.Submit(context.Background()); err == nil {
		t.Fatal("expected error from failing recorder")
	}
	if snap := sess.Snapshot(); snap.Phase != PhaseInProgress {
		t.Fatalf("Phase = %s, want %s after recorder failure", snap.Phase, PhaseInProgress)
	}

	recorder.err = nil
	result, err := sess.Submit(context.Background())
	if err != nil {
		t.Fatalf("retried Submit: %v", err)
	}
	if result.Score != 1 {
		t.Errorf("Score = %d, want 1", result.Score)
	}
	if len(recorder.attempts) != 1 {
		t.Errorf("recorded %d attempts, want 1", len(recorder.attempts))
	}
}

func TestRetry(t *testing.T) {
	recorder := &fakeRecorder{}
	sess := mustNew(t, testQuiz(0, 1), recorder)

	if err := sess.Retry(); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("Retry before completion = %v, want ErrNotCompleted", err)
	}

	answerAll(t, sess, 0, 1)
	if _, err := sess.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := sess.Retry(); err != nil {
		t.Fatalf("Retry: %v", err)
	}
	snap := sess.Snapshot()
	if snap.Phase != PhaseInProgress {
		t.Errorf("Phase = %s, want %s", snap.Phase, PhaseInProgress)
	}
	if snap.CurrentIndex != 0 || snap.Answered != 0 {
		t.Errorf("CurrentIndex = %d, Answered = %d, want 0, 0", snap.CurrentIndex, snap.Answered)
	}
	if snap.Result != nil {
		t.Error("Result survived retry")
	}

	// A second pass records a second, independent attempt.
	answerAll(t, sess, 1, 0)
	if _, err := sess.Submit(context.Background()); err != nil {
		t.Fatalf("second Submit: %v", err)
	}
	if len(recorder.attempts) != 2 {
		t.Errorf("recorded %d attempts, want 2", len(recorder.attempts))
	}
}
