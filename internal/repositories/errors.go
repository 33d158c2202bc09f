package repositories

import "errors"

var (
	// ErrInvalidInput marks a request rejected by validation before any
	// store access. The caller can retry with corrected input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateUser is returned when a unique constraint on email or
	// username is violated.
	ErrDuplicateUser = errors.New("email or username already taken")

	// ErrDatabaseOperation wraps execute/commit failures after rollback.
	// Callers should surface a generic failure, never this error's text.
	ErrDatabaseOperation = errors.New("database operation failed")
)
