package domain

import "errors"

var (
	// ErrInvalidInput is returned for malformed or out-of-range user input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorruptData is returned when persisted state cannot be decoded or
	// was written by an incompatible schema version.
	ErrCorruptData = errors.New("corrupt data")

	// ErrNotFound is returned when a lookup by name or ID misses.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguousID is returned when an ID prefix matches more than one entry.
	ErrAmbiguousID = errors.New("ambiguous id")
)
