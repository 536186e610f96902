package repository

import "errors"

// Sentinel errors shared by all repository implementations. Callers branch
// with errors.Is; handlers translate them into HTTP statuses.
var (
	ErrNotFound       = errors.New("record not found")
	ErrInvalidID      = errors.New("invalid id")
	ErrDuplicateEmail = errors.New("email already exists")
)
