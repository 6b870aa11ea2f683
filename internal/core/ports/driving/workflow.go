package driving

import (
	"context"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
)

// WorkflowService drives one procurement workflow session through its
// seven fixed stages. Invalid transition requests are safe no-ops that
// return domain.ErrInvalidTransition; they never leave the state changed.
type WorkflowService interface {
	// State returns a copy of the current workflow state.
	State() domain.WorkflowState

	// Advance moves to the immediate successor stage, recording the
	// payload against the stage being left. No-op at the last stage.
	Advance(ctx context.Context, payload any) error

	// GoBack returns to the most recently completed stage. No-op when
	// the history is empty.
	GoBack(ctx context.Context) error

	// JumpTo moves to a stage that is current, previously completed, or
	// the immediate predecessor of the current stage.
	JumpTo(ctx context.Context, stage domain.Stage) error

	// ManuallyAdvanceTo skips forward to a strictly later stage, marking
	// every stage in between as completed.
	ManuallyAdvanceTo(ctx context.Context, stage domain.Stage, payload any) error

	// CheckTransition scans AI output text for the current stage's
	// trigger phrases and advances when one matches. Reports whether a
	// transition happened.
	CheckTransition(ctx context.Context, aiText string) (bool, error)

	// Reset returns to the initial stage with empty history.
	Reset(ctx context.Context) error
}
