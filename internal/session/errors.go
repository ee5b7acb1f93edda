package session

import "errors"

var (
	// ErrIncompleteAnswers means submit was called with at least one
	// unanswered question. Recoverable: the session stays in progress.
	ErrIncompleteAnswers = errors.New("all questions must be answered before submitting")

	// ErrInvalidOption means the selected option index is outside the
	// question's option range.
	ErrInvalidOption = errors.New("selected option index is out of range")

	// ErrNotCompleted means retry was called before the session finished.
	ErrNotCompleted = errors.New("session is not completed")

	// ErrNoQuestions means the quiz has no questions to take.
	ErrNoQuestions = errors.New("quiz has no questions")
)
