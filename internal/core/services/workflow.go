package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driving"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/logger"
)

// Ensure WorkflowService implements the interface.
var _ driving.WorkflowService = (*WorkflowService)(nil)

// WorkflowService drives one procurement workflow session through the
// seven fixed stages. It is the sole mutator of its WorkflowState and
// writes a full snapshot through the state store after every mutation.
//
// The service is built for exactly one active mutator per session key.
// Concurrent callers must serialise access externally, e.g. one service
// instance per session.
type WorkflowService struct {
	store      driven.StateStore
	sessionKey string
	state      *domain.WorkflowState
}

// NewWorkflowService loads the session's persisted state, or starts
// fresh. Workflow state is disposable: a missing, stale-versioned or
// structurally invalid snapshot silently yields the initial state
// rather than an error.
func NewWorkflowService(ctx context.Context, store driven.StateStore, sessionKey string) (*WorkflowService, error) {
	svc := &WorkflowService{store: store, sessionKey: sessionKey}

	state, err := store.Load(ctx, sessionKey)
	switch {
	case err == nil:
		svc.state = state
	case errors.Is(err, domain.ErrNotFound):
		svc.state = domain.NewWorkflowState()
	case errors.Is(err, domain.ErrStateVersionMismatch), errors.Is(err, domain.ErrCorruptSnapshot):
		logger.Warn("workflow session %q: discarding unusable snapshot: %v", sessionKey, err)
		svc.state = domain.NewWorkflowState()
	default:
		return nil, fmt.Errorf("loading workflow state: %w", err)
	}
	return svc, nil
}

// State returns a copy of the current workflow state.
func (s *WorkflowService) State() domain.WorkflowState {
	return *s.state.Clone()
}

// Advance moves to the immediate successor of the current stage,
// appending the pre-move stage to the completed history and recording
// the payload (or keeping the prior value when payload is nil) against
// the stage being left. At the last stage this is a no-op.
func (s *WorkflowService) Advance(ctx context.Context, payload any) error {
	next, ok := s.state.CurrentStage.Next()
	if !ok {
		logger.Debug("workflow session %q: already at final stage %s", s.sessionKey, s.state.CurrentStage)
		return nil
	}

	leaving := s.state.CurrentStage
	s.state.CompletedStages = append(s.state.CompletedStages, leaving)
	if payload != nil {
		s.state.StageData[leaving] = payload
	}
	s.state.CurrentStage = next
	s.state.UpdatedAt = time.Now()

	return s.persist(ctx)
}

// GoBack pops the most recently completed stage and makes it current
// again. This steps back exactly one stage; it is not an undo stack
// walk. With an empty history this is a no-op.
func (s *WorkflowService) GoBack(ctx context.Context) error {
	n := len(s.state.CompletedStages)
	if n == 0 {
		logger.Debug("workflow session %q: no completed stage to return to", s.sessionKey)
		return nil
	}

	s.state.CurrentStage = s.state.CompletedStages[n-1]
	s.state.CompletedStages = s.state.CompletedStages[:n-1]
	s.state.UpdatedAt = time.Now()

	return s.persist(ctx)
}

// JumpTo moves to a stage the user has already seen: the current stage,
// a previously completed one, or the immediate predecessor of the
// current stage. Any other target is rejected and the state is left
// unchanged.
func (s *WorkflowService) JumpTo(ctx context.Context, stage domain.Stage) error {
	if !stage.Known() {
		return s.reject("jump to %s: %w", stage, domain.ErrUnknownStage)
	}
	if stage == s.state.CurrentStage {
		return nil
	}
	if !s.reachable(stage) {
		return s.reject("jump to %s from %s: %w", stage, s.state.CurrentStage, domain.ErrInvalidTransition)
	}

	s.state.CurrentStage = stage
	s.state.UpdatedAt = time.Now()

	return s.persist(ctx)
}

// reachable reports whether a stage may be jumped to: previously
// completed, or the immediate predecessor of the current stage.
func (s *WorkflowService) reachable(stage domain.Stage) bool {
	for _, done := range s.state.CompletedStages {
		if done == stage {
			return true
		}
	}
	if prev, ok := s.state.CurrentStage.Prev(); ok && prev == stage {
		return true
	}
	return false
}

// ManuallyAdvanceTo skips forward to a strictly later stage. Every
// stage from the old current stage up to (but excluding) the target is
// appended to the completed history, and the payload is recorded
// against the stage being left. Targets at or before the current stage
// are rejected.
func (s *WorkflowService) ManuallyAdvanceTo(ctx context.Context, stage domain.Stage, payload any) error {
	target := stage.Ordinal()
	if target < 0 {
		return s.reject("manual advance to %s: %w", stage, domain.ErrUnknownStage)
	}
	current := s.state.CurrentStage.Ordinal()
	if target <= current {
		return s.reject("manual advance to %s from %s: target is not ahead: %w",
			stage, s.state.CurrentStage, domain.ErrInvalidTransition)
	}

	leaving := s.state.CurrentStage
	for i := current; i < target; i++ {
		s.state.CompletedStages = append(s.state.CompletedStages, domain.StageOrder[i])
	}
	if payload != nil {
		s.state.StageData[leaving] = payload
	}
	s.state.CurrentStage = stage
	s.state.UpdatedAt = time.Now()

	return s.persist(ctx)
}

// CheckTransition scans AI output text for the current stage's trigger
// phrases and advances when one is a substring of the text. Stages with
// an empty trigger list never auto-advance. Reports whether a
// transition happened; no match leaves the state untouched.
func (s *WorkflowService) CheckTransition(ctx context.Context, aiText string) (bool, error) {
	cfg, ok := domain.ConfigFor(s.state.CurrentStage)
	if !ok {
		return false, nil
	}

	for _, phrase := range cfg.Triggers {
		if !strings.Contains(aiText, phrase) {
			continue
		}
		logger.Info("workflow session %q: trigger %q matched at stage %s", s.sessionKey, phrase, s.state.CurrentStage)
		if err := s.Advance(ctx, map[string]any{"aiResponse": aiText}); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// Reset returns to the initial stage with empty history and fresh
// timestamps.
func (s *WorkflowService) Reset(ctx context.Context) error {
	s.state = domain.NewWorkflowState()
	return s.persist(ctx)
}

// reject logs a diagnostic for an invalid transition request and
// returns the sentinel. The state is never changed on rejection.
func (s *WorkflowService) reject(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	logger.Warn("workflow session %q: %v", s.sessionKey, err)
	return err
}

// persist writes the full state snapshot. The in-memory state stays
// authoritative even when the write fails.
func (s *WorkflowService) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.sessionKey, s.state); err != nil {
		logger.Warn("workflow session %q: snapshot write failed: %v", s.sessionKey, err)
		return fmt.Errorf("persisting workflow state: %w", err)
	}
	return nil
}
