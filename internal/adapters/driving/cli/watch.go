package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/extractors/product"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/extractors/supplier"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/logger"
)

var watchOwner string

var watchCmd = &cobra.Command{
	Use:   "watch <transcript-file>",
	Short: "Watch a conversation transcript and react to changes",
	Long: `Watches a conversation transcript file. On every write the new content
is scanned for suppliers and products, and the workflow session is
checked for stage transition triggers. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchOwner, "owner", "", "owner identifier stamped on entities")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("transcript file: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, closeStore, err := newWorkflowService(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	session := workflowSessionKey()
	supplierEngine := supplier.NewEngine()
	productEngine := product.NewEngine()

	// Offset into the transcript already processed. Only appended text
	// is re-scanned, so earlier entities are not reported twice.
	var processed int64
	if info, err := os.Stat(path); err == nil {
		processed = info.Size()
	}

	cmd.Printf("Watching %s (session %s). Ctrl-C to stop.\n", path, session)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			text, next, err := readAppended(path, processed)
			if err != nil {
				logger.Warn("watch: reading transcript: %v", err)
				continue
			}
			processed = next
			if text == "" {
				continue
			}

			if suppliers := supplierEngine.Extract(text, watchOwner, session); len(suppliers) > 0 {
				cmd.Printf("Found %d supplier(s):\n", len(suppliers))
				for _, s := range suppliers {
					cmd.Printf("  - %s\n", s.Name)
				}
			}
			if products := productEngine.Extract(text, watchOwner, session); len(products) > 0 {
				cmd.Printf("Found %d product(s):\n", len(products))
				for _, p := range products {
					cmd.Printf("  - %s\n", p.Name)
				}
			}

			moved, err := svc.CheckTransition(ctx, text)
			if err != nil {
				logger.Warn("watch: transition check: %v", err)
				continue
			}
			if moved {
				cmd.Printf("Workflow advanced to: %s\n", svc.State().CurrentStage)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)
		}
	}
}

// readAppended returns the transcript content past the given offset and
// the new offset. A truncated file is re-read from the start.
func readAppended(path string, offset int64) (string, int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", offset, err
	}
	size := int64(len(data))
	if size < offset {
		offset = 0
	}
	return string(data[offset:]), size, nil
}
