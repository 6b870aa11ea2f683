package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownStage indicates a stage identifier outside the fixed set.
	ErrUnknownStage = errors.New("unknown stage")

	// ErrInvalidTransition indicates a stage transition request that the
	// workflow rules reject. The workflow state is left unchanged.
	ErrInvalidTransition = errors.New("invalid stage transition")

	// ErrStateVersionMismatch indicates a persisted workflow snapshot was
	// written by a different schema version. The snapshot is discarded
	// rather than migrated.
	ErrStateVersionMismatch = errors.New("workflow state version mismatch")

	// ErrCorruptSnapshot indicates a persisted workflow snapshot that does
	// not decode into the expected shape.
	ErrCorruptSnapshot = errors.New("corrupt workflow snapshot")
)
