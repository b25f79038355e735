package utils

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInsert     = errors.New("store returned no rows for insert")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrAuthProvider    = errors.New("auth provider error")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrNotFound        = errors.New("record not found")

	// ErrEmptyResultInsert is the ErrEmptyInsert of the second write in a
	// request-plus-result store.
	ErrEmptyResultInsert = fmt.Errorf("analysis result: %w", ErrEmptyInsert)
)

// ProviderError carries the auth provider's own message so it can be
// relayed to the caller unchanged.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrAuthProvider
}
