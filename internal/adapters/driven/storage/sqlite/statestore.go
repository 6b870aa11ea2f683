// Package sqlite provides a durable StateStore backed by SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/adapters/driven/storage/snapshot"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS workflow_snapshots (
	session_key TEXT PRIMARY KEY,
	snapshot    BLOB NOT NULL,
	updated_at  DATETIME NOT NULL
)`

// StateStore persists one encoded snapshot row per session key.
type StateStore struct {
	db   *sql.DB
	path string
}

// NewStateStore opens (or creates) the snapshot database in dataDir.
// If dataDir is empty, defaults to ~/.procure/data/workflow.db.
func NewStateStore(dataDir string) (*StateStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".procure", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "workflow.db")

	// WAL mode for better concurrency between CLI invocations
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshot table: %w", err)
	}

	return &StateStore{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *StateStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *StateStore) Path() string {
	return s.path
}

// Load reads the snapshot for a session key.
func (s *StateStore) Load(ctx context.Context, sessionKey string) (*domain.WorkflowState, error) {
	var data []byte
	row := s.db.QueryRowContext(ctx,
		"SELECT snapshot FROM workflow_snapshots WHERE session_key = ?", sessionKey)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return snapshot.Decode(data)
}

// Save writes the full snapshot for a session key, replacing any
// previous one.
func (s *StateStore) Save(ctx context.Context, sessionKey string, state *domain.WorkflowState) error {
	data, err := snapshot.Encode(state)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO workflow_snapshots (session_key, snapshot, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(session_key) DO UPDATE SET
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at`,
		sessionKey, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Delete removes the snapshot for a session key.
func (s *StateStore) Delete(ctx context.Context, sessionKey string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM workflow_snapshots WHERE session_key = ?", sessionKey); err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	return nil
}
