package driven

import (
	"context"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
)

// StateStore persists workflow snapshots in an external key-value medium,
// one state slot per session key. Serialised snapshots carry a schema
// version; Load reports a stored snapshot written by a different schema
// as domain.ErrStateVersionMismatch so the caller can discard it.
type StateStore interface {
	// Load reads the snapshot for a session key.
	// Returns domain.ErrNotFound when no snapshot exists,
	// domain.ErrStateVersionMismatch for a stale schema version, and
	// domain.ErrCorruptSnapshot for undecodable data.
	Load(ctx context.Context, sessionKey string) (*domain.WorkflowState, error)

	// Save writes the full snapshot for a session key, replacing any
	// previous one.
	Save(ctx context.Context, sessionKey string, state *domain.WorkflowState) error

	// Delete removes the snapshot for a session key. Deleting a missing
	// snapshot is not an error.
	Delete(ctx context.Context, sessionKey string) error
}
