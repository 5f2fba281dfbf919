package repository

import "errors"

var (
	// ErrNotFound means no record matched the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey means a unique constraint (username, email) was violated.
	ErrDuplicateKey = errors.New("duplicate key")
)

// DuplicateKeyError names the field whose unique constraint fired. It matches
// ErrDuplicateKey under errors.Is, so callers that do not care which field
// collided keep working.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string { return "duplicate key: " + e.Field }

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }
