package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/adapters/driven/storage/memory"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
)

// setupTestStore swaps the storage backend for an in-memory store and
// resets global flag state when the test finishes.
func setupTestStore(t *testing.T) *memory.StateStore {
	t.Helper()

	store := memory.NewStateStore()
	original := newStateStore
	newStateStore = func(context.Context) (driven.StateStore, func(), error) {
		return store, func() {}, nil
	}

	t.Cleanup(func() {
		newStateStore = original
		sessionFlag = ""
		verboseFlag = false
		extractJSON = false
		extractOwner = ""
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})
	return store
}

// execute runs the root command with the given arguments and returns
// the combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// executeWithInput is execute with text piped to stdin.
func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	rootCmd.SetIn(strings.NewReader(input))
	return execute(t, args...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}
