package domain

import "errors"

var (
	// ErrEmptyQuestionSet is returned when a session is started with no questions.
	ErrEmptyQuestionSet = errors.New("question set has no questions")
	// ErrInvalidSubmission indicates a submit or advance out of phase, or with an empty answer.
	ErrInvalidSubmission = errors.New("invalid submission for current session phase")
	// ErrUnknownQuestionType indicates a question type outside the supported set.
	ErrUnknownQuestionType = errors.New("unknown question type")
	// ErrQuestionSetNotFound indicates no question set exists for a share code.
	ErrQuestionSetNotFound = errors.New("question set not found")
	// ErrSessionNotFound is returned when acting on a session that was never started.
	ErrSessionNotFound = errors.New("game session not found")
)
