package domain

import "errors"

var (
	ErrNotFound = errors.New("resource not found")
	// ErrConflict means the record exists but is not in a state that allows the write.
	ErrConflict = errors.New("resource state conflict")
)
