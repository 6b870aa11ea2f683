package domain

import "time"

// Stage identifies one step of the procurement workflow.
type Stage string

// The seven workflow stages in their fixed total order. There is no
// branching path and no terminal exit: advancing past the last stage is
// a no-op.
const (
	StageRequirementInput    Stage = "requirement_input"
	StagePreliminaryResearch Stage = "preliminary_research"
	StageRefinement          Stage = "refinement"
	StageRequirementList     Stage = "requirement_list"
	StageDeepSourcing        Stage = "deep_sourcing"
	StageSupplierFavorite    Stage = "supplier_favorite"
	StageSupplierInterview   Stage = "supplier_interview"
)

// StageOrder is the workflow's total order.
var StageOrder = []Stage{
	StageRequirementInput,
	StagePreliminaryResearch,
	StageRefinement,
	StageRequirementList,
	StageDeepSourcing,
	StageSupplierFavorite,
	StageSupplierInterview,
}

// InitialStage is where every workflow session starts.
const InitialStage = StageRequirementInput

// Ordinal returns the stage's zero-based position in the total order,
// or -1 for an unknown stage.
func (s Stage) Ordinal() int {
	for i, stage := range StageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// Known reports whether s is one of the seven fixed stages.
func (s Stage) Known() bool {
	return s.Ordinal() >= 0
}

// Next returns the immediate successor stage. The second return value is
// false at the last stage or for unknown stages.
func (s Stage) Next() (Stage, bool) {
	i := s.Ordinal()
	if i < 0 || i+1 >= len(StageOrder) {
		return "", false
	}
	return StageOrder[i+1], true
}

// Prev returns the immediate predecessor stage. The second return value
// is false at the first stage or for unknown stages.
func (s Stage) Prev() (Stage, bool) {
	i := s.Ordinal()
	if i <= 0 {
		return "", false
	}
	return StageOrder[i-1], true
}

// ParseStage validates a stage identifier.
func ParseStage(raw string) (Stage, error) {
	s := Stage(raw)
	if !s.Known() {
		return "", ErrUnknownStage
	}
	return s, nil
}

// WorkflowState is the full state of one procurement workflow session.
// The workflow service is its sole mutator; storage adapters persist it
// verbatim inside a versioned snapshot envelope.
type WorkflowState struct {
	// CurrentStage is always one of the seven fixed stages.
	CurrentStage Stage `json:"currentStage"`

	// CompletedStages lists previously visited stages in visit order.
	// Revisiting a stage appends it again; duplicates are allowed.
	CompletedStages []Stage `json:"completedStages"`

	// StageData maps a stage to the payload captured when that stage was
	// last active.
	StageData map[Stage]any `json:"stageData"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewWorkflowState returns the initial state: first stage, empty history,
// fresh timestamps.
func NewWorkflowState() *WorkflowState {
	now := time.Now()
	return &WorkflowState{
		CurrentStage:    InitialStage,
		CompletedStages: []Stage{},
		StageData:       make(map[Stage]any),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Valid reports whether the state has the required shape. Used when
// loading persisted snapshots: an invalid snapshot is discarded in favour
// of the initial state.
func (w *WorkflowState) Valid() bool {
	return w != nil && w.CurrentStage.Known()
}

// Clone returns a deep-enough copy for handing state to callers without
// aliasing the service's internal slices and maps.
func (w *WorkflowState) Clone() *WorkflowState {
	if w == nil {
		return nil
	}
	cp := *w
	cp.CompletedStages = append([]Stage(nil), w.CompletedStages...)
	cp.StageData = make(map[Stage]any, len(w.StageData))
	for k, v := range w.StageData {
		cp.StageData[k] = v
	}
	return &cp
}
