package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Manage the procurement workflow session",
	Long: `Tracks one procurement session through its seven fixed stages.
The session is addressed by --session; without the flag the "default"
session is used.`,
	RunE: runWorkflowStatus,
}

var workflowStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current stage and history",
	RunE:  runWorkflowStatus,
}

var workflowAdvanceCmd = &cobra.Command{
	Use:   "advance [note]",
	Short: "Advance to the next stage",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWorkflowAdvance,
}

var workflowBackCmd = &cobra.Command{
	Use:   "back",
	Short: "Return to the most recently completed stage",
	RunE:  runWorkflowBack,
}

var workflowJumpCmd = &cobra.Command{
	Use:   "jump <stage>",
	Short: "Jump to a previously visited stage",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkflowJump,
}

var workflowGotoCmd = &cobra.Command{
	Use:   "goto <stage>",
	Short: "Skip forward to a later stage, completing the stages in between",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkflowGoto,
}

var workflowCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Scan AI output text for the current stage's trigger phrases",
	Long: `Reads AI output text from the given file (or stdin) and advances the
workflow when the text contains one of the current stage's trigger
phrases. Prints whether a transition happened.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWorkflowCheck,
}

var workflowResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the session to the first stage",
	RunE:  runWorkflowReset,
}

func init() {
	workflowCmd.AddCommand(workflowStatusCmd)
	workflowCmd.AddCommand(workflowAdvanceCmd)
	workflowCmd.AddCommand(workflowBackCmd)
	workflowCmd.AddCommand(workflowJumpCmd)
	workflowCmd.AddCommand(workflowGotoCmd)
	workflowCmd.AddCommand(workflowCheckCmd)
	workflowCmd.AddCommand(workflowResetCmd)
	rootCmd.AddCommand(workflowCmd)
}

func runWorkflowStatus(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	svc, closeStore, err := newWorkflowService(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	state := svc.State()
	completed := make(map[domain.Stage]bool, len(state.CompletedStages))
	for _, s := range state.CompletedStages {
		completed[s] = true
	}

	cmd.Printf("Session: %s\n\n", workflowSessionKey())
	for _, cfg := range domain.StageConfigs() {
		marker := " "
		label := cfg.Title
		switch {
		case cfg.Stage == state.CurrentStage:
			marker = ">"
			label = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(cfg.Color)).
				Render(cfg.Title)
		case completed[cfg.Stage]:
			marker = "✓"
			label = lipgloss.NewStyle().
				Foreground(lipgloss.Color(cfg.Color)).
				Render(cfg.Title)
		}
		cmd.Printf("  %s %s %s (%s)\n", marker, cfg.Icon, label, cfg.Stage)
	}
	cmd.Printf("\nUpdated: %s\n", state.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runWorkflowAdvance(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, closeStore, err := newWorkflowService(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	var payload any
	if len(args) == 1 && args[0] != "" {
		payload = args[0]
	}

	before := svc.State().CurrentStage
	if err := svc.Advance(ctx, payload); err != nil {
		return err
	}
	after := svc.State().CurrentStage
	if before == after {
		cmd.Printf("Already at the final stage (%s).\n", after)
		return nil
	}
	cmd.Printf("Advanced: %s -> %s\n", before, after)
	return nil
}

func runWorkflowBack(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	svc, closeStore, err := newWorkflowService(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	before := svc.State().CurrentStage
	if err := svc.GoBack(ctx); err != nil {
		return err
	}
	after := svc.State().CurrentStage
	if before == after {
		cmd.Println("No completed stage to return to.")
		return nil
	}
	cmd.Printf("Returned: %s -> %s\n", before, after)
	return nil
}

func runWorkflowJump(cmd *cobra.Command, args []string) error {
	stage, err := domain.ParseStage(args[0])
	if err != nil {
		return fmt.Errorf("stage %q: %w", args[0], err)
	}

	ctx := context.Background()
	svc, closeStore, err := newWorkflowService(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := svc.JumpTo(ctx, stage); err != nil {
		return err
	}
	cmd.Printf("Now at: %s\n", stage)
	return nil
}

func runWorkflowGoto(cmd *cobra.Command, args []string) error {
	stage, err := domain.ParseStage(args[0])
	if err != nil {
		return fmt.Errorf("stage %q: %w", args[0], err)
	}

	ctx := context.Background()
	svc, closeStore, err := newWorkflowService(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := svc.ManuallyAdvanceTo(ctx, stage, nil); err != nil {
		return err
	}
	cmd.Printf("Now at: %s\n", stage)
	return nil
}

func runWorkflowCheck(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	svc, closeStore, err := newWorkflowService(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	moved, err := svc.CheckTransition(ctx, text)
	if err != nil {
		return err
	}
	if moved {
		cmd.Printf("Transition triggered, now at: %s\n", svc.State().CurrentStage)
	} else {
		cmd.Printf("No trigger matched, still at: %s\n", svc.State().CurrentStage)
	}
	return nil
}

func runWorkflowReset(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	svc, closeStore, err := newWorkflowService(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := svc.Reset(ctx); err != nil {
		return err
	}
	cmd.Printf("Workflow reset to %s.\n", domain.InitialStage)
	return nil
}
