package service

import "errors"

var (
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrAccessDenied means the quiz is private and not owned by the caller.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotOwner means the operation requires quiz ownership.
	ErrNotOwner = errors.New("not the quiz owner")
)
