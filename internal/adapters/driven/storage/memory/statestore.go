// Package memory provides an in-memory StateStore for testing and for
// throwaway sessions.
package memory

import (
	"context"
	"sync"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/adapters/driven/storage/snapshot"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore keeps encoded snapshots in a map. Snapshots go through the
// same envelope codec as the durable backends so version handling is
// identical everywhere.
type StateStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewStateStore creates an empty in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{snapshots: make(map[string][]byte)}
}

// Load reads the snapshot for a session key.
func (s *StateStore) Load(_ context.Context, sessionKey string) (*domain.WorkflowState, error) {
	s.mu.RLock()
	data, ok := s.snapshots[sessionKey]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return snapshot.Decode(data)
}

// Save writes the full snapshot for a session key.
func (s *StateStore) Save(_ context.Context, sessionKey string, state *domain.WorkflowState) error {
	data, err := snapshot.Encode(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snapshots[sessionKey] = data
	s.mu.Unlock()
	return nil
}

// Delete removes the snapshot for a session key.
func (s *StateStore) Delete(_ context.Context, sessionKey string) error {
	s.mu.Lock()
	delete(s.snapshots, sessionKey)
	s.mu.Unlock()
	return nil
}

// Put stores raw bytes under a session key, bypassing the codec.
// Used by tests to simulate stale or corrupt snapshots.
func (s *StateStore) Put(sessionKey string, data []byte) {
	s.mu.Lock()
	s.snapshots[sessionKey] = data
	s.mu.Unlock()
}
