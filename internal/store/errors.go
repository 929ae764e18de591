package store

import "errors"

// Sentinel errors callers match with errors.Is. Anything else out of this
// package is an infrastructure failure.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
