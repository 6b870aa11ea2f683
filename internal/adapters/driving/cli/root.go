// Package cli is the cobra command surface. Commands are thin plumbing
// over the extraction engines and the workflow service; each command
// lives in its own file and registers itself on rootCmd in init().
package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/adapters/driven/config/file"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/adapters/driven/storage/memory"
	redisstore "github.com/erozihovefi85-debug/procureai-agent-sub001/internal/adapters/driven/storage/redis"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/adapters/driven/storage/sqlite"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/services"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/logger"
)

// version is set by Execute from the main package build info.
var version = "dev"

var (
	verboseFlag bool
	sessionFlag string
)

var rootCmd = &cobra.Command{
	Use:   "procure",
	Short: "Procurement assistant: entity extraction and workflow tracking",
	Long: `Procure recovers suppliers and wishlist products from AI conversation
text and tracks a procurement session through its seven workflow stages.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verboseFlag {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&sessionFlag, "session", "", "workflow session key (generated when empty)")
}

// Execute runs the CLI with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// sessionKey returns the --session value, generating a fresh identifier
// when the flag was not set.
func sessionKey() string {
	if sessionFlag != "" {
		return sessionFlag
	}
	return uuid.NewString()
}

// newStateStore builds the configured storage backend. Swapped out by
// CLI tests. The returned closer releases backend resources and is
// always safe to call.
var newStateStore = func(ctx context.Context) (driven.StateStore, func(), error) {
	settingsStore, err := file.NewSettingsStore("")
	if err != nil {
		return nil, nil, fmt.Errorf("opening settings: %w", err)
	}
	settings, err := settingsStore.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}
	if settings.Verbose {
		logger.SetVerbose(true)
	}

	switch settings.Storage {
	case domain.StorageMemory:
		return memory.NewStateStore(), func() {}, nil
	case domain.StorageRedis:
		store, err := redisstore.NewStateStore(ctx, settings.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		store, err := sqlite.NewStateStore(settings.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}
}

// newWorkflowService wires the configured state store into a workflow
// service for the current session.
func newWorkflowService(ctx context.Context) (*services.WorkflowService, func(), error) {
	store, closeStore, err := newStateStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc, err := services.NewWorkflowService(ctx, store, workflowSessionKey())
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return svc, closeStore, nil
}

// workflowSessionKey is like sessionKey but keeps a stable default so
// repeated workflow commands without --session address the same session.
func workflowSessionKey() string {
	if sessionFlag != "" {
		return sessionFlag
	}
	return "default"
}
