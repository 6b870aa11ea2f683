package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *StateStore {
	t.Helper()

	store, err := NewStateStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStateStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStateStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "workflow.db"), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStateStoreInvalidDir(t *testing.T) {
	_, err := NewStateStore("/invalid\x00path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestStateStoreRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	state := domain.NewWorkflowState()
	state.CurrentStage = domain.StageDeepSourcing
	state.CompletedStages = []domain.Stage{
		domain.StageRequirementInput,
		domain.StagePreliminaryResearch,
	}
	state.StageData[domain.StageRequirementInput] = "采购需求原文"

	require.NoError(t, store.Save(ctx, "session-1", state))

	got, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StageDeepSourcing, got.CurrentStage)
	assert.Len(t, got.CompletedStages, 2)
	assert.Equal(t, "采购需求原文", got.StageData[domain.StageRequirementInput])
}

func TestStateStoreOverwrite(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s", domain.NewWorkflowState()))

	updated := domain.NewWorkflowState()
	updated.CurrentStage = domain.StageRefinement
	require.NoError(t, store.Save(ctx, "s", updated))

	got, err := store.Load(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, domain.StageRefinement, got.CurrentStage)
}

func TestStateStoreMissing(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Load(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStateStoreDelete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s", domain.NewWorkflowState()))
	require.NoError(t, store.Delete(ctx, "s"))

	_, err := store.Load(ctx, "s")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStateStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStateStore(dir)
	require.NoError(t, err)
	state := domain.NewWorkflowState()
	state.CurrentStage = domain.StageSupplierFavorite
	require.NoError(t, store.Save(ctx, "s", state))
	require.NoError(t, store.Close())

	reopened, err := NewStateStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, domain.StageSupplierFavorite, got.CurrentStage)
}

func TestStateStoreStaleVersionDiscarded(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// plant a snapshot written by an old schema version directly
	_, err := store.db.ExecContext(ctx, `
		INSERT INTO workflow_snapshots (session_key, snapshot, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)`,
		"s", []byte(`{"version": "1", "state": {"currentStage": "requirement_input"}}`))
	require.NoError(t, err)

	_, err = store.Load(ctx, "s")
	assert.ErrorIs(t, err, domain.ErrStateVersionMismatch)
}
