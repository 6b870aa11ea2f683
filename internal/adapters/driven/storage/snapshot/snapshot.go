// Package snapshot serialises workflow state into a versioned envelope.
//
// The schema version is attached here, at the serialisation boundary,
// so the workflow service itself stays storage-agnostic. On load, a
// version mismatch or a structurally invalid payload is reported as a
// distinct error; callers discard the snapshot and start fresh rather
// than attempt migration.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
)

// SchemaVersion tags every written snapshot. Bump it when the
// WorkflowState shape changes; stale snapshots are then discarded on
// load instead of corrupting new state.
const SchemaVersion = "3"

// envelope is the on-disk shape of a snapshot.
type envelope struct {
	Version string               `json:"version"`
	State   *domain.WorkflowState `json:"state"`
}

// Encode serialises a workflow state with the current schema version.
func Encode(state *domain.WorkflowState) ([]byte, error) {
	if state == nil {
		return nil, domain.ErrInvalidInput
	}
	data, err := json.Marshal(envelope{Version: SchemaVersion, State: state})
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// Decode deserialises a snapshot, enforcing the schema version and the
// required state shape. Returns domain.ErrStateVersionMismatch for a
// stale version and domain.ErrCorruptSnapshot for undecodable or
// malformed payloads.
func Decode(data []byte) (*domain.WorkflowState, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	if env.Version != SchemaVersion {
		return nil, fmt.Errorf("%w: stored %q, want %q", domain.ErrStateVersionMismatch, env.Version, SchemaVersion)
	}
	if !env.State.Valid() {
		return nil, fmt.Errorf("%w: missing required shape", domain.ErrCorruptSnapshot)
	}
	return env.State, nil
}
