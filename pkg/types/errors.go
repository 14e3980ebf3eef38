package types

import "errors"

// Storage lifecycle and validation errors. Repository operations wrap these
// with context via fmt.Errorf("...: %w", err); callers test with errors.Is.
var (
	// ErrStorageUnavailable means the embedded database could not be
	// opened or prepared (permissions, disk). Fatal to every operation;
	// never retried.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidBackup means an import document failed shape validation.
	// Import rejects the document before any mutation.
	ErrInvalidBackup = errors.New("invalid backup document")

	ErrInvalidData   = errors.New("invalid record data")
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidActive = errors.New("invalid active value")
)
