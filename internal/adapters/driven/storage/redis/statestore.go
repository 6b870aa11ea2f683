// Package redis provides a StateStore backed by a redis key-value
// store, for deployments where several machines share one workflow
// session space.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/adapters/driven/storage/snapshot"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// keyPrefix namespaces workflow snapshots in the shared keyspace.
const keyPrefix = "procure:workflow:"

// StateStore stores one encoded snapshot per session key under
// procure:workflow:<session>.
type StateStore struct {
	client *redis.Client
}

// NewStateStore connects to redis using a connection URL
// (redis://host:port/db) and verifies the connection.
func NewStateStore(ctx context.Context, redisURL string) (*StateStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &StateStore{client: client}, nil
}

// NewStateStoreWithClient wraps an existing client, used in tests.
func NewStateStoreWithClient(client *redis.Client) *StateStore {
	return &StateStore{client: client}
}

// Close releases the underlying connection pool.
func (s *StateStore) Close() error {
	return s.client.Close()
}

// Load reads the snapshot for a session key.
func (s *StateStore) Load(ctx context.Context, sessionKey string) (*domain.WorkflowState, error) {
	data, err := s.client.Get(ctx, keyPrefix+sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return snapshot.Decode(data)
}

// Save writes the full snapshot for a session key. Snapshots do not
// expire; workflow sessions end through an explicit reset.
func (s *StateStore) Save(ctx context.Context, sessionKey string, state *domain.WorkflowState) error {
	data, err := snapshot.Encode(state)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, keyPrefix+sessionKey, data, 0).Err(); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Delete removes the snapshot for a session key.
func (s *StateStore) Delete(ctx context.Context, sessionKey string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionKey).Err(); err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	return nil
}
