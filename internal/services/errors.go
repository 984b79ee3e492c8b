package services

import "github.com/pkg/errors"

var (
	// ErrInvalidCredentials is returned for an unknown username or a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrDuplicateUsername is returned when registering or provisioning a taken username.
	ErrDuplicateUsername = errors.New("username already registered")
	// ErrInvalidInput is returned when a required field is empty or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidQuestion is returned when the correct answer is not one of the options.
	ErrInvalidQuestion = errors.New("correct answer must match one of the options")
	// ErrEmptyPool is returned by the quiz when no questions exist.
	ErrEmptyPool = errors.New("no questions available")
	// ErrQuestionNotFound is returned when a question id does not exist.
	ErrQuestionNotFound = errors.New("question not found")
)
