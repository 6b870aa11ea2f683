package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageOrdinal(t *testing.T) {
	assert.Equal(t, 0, StageRequirementInput.Ordinal())
	assert.Equal(t, 4, StageDeepSourcing.Ordinal())
	assert.Equal(t, 6, StageSupplierInterview.Ordinal())
	assert.Equal(t, -1, Stage("bogus").Ordinal())
}

func TestStageNextPrev(t *testing.T) {
	next, ok := StageRequirementInput.Next()
	require.True(t, ok)
	assert.Equal(t, StagePreliminaryResearch, next)

	_, ok = StageSupplierInterview.Next()
	assert.False(t, ok)

	prev, ok := StagePreliminaryResearch.Prev()
	require.True(t, ok)
	assert.Equal(t, StageRequirementInput, prev)

	_, ok = StageRequirementInput.Prev()
	assert.False(t, ok)
}

func TestParseStage(t *testing.T) {
	s, err := ParseStage("deep_sourcing")
	require.NoError(t, err)
	assert.Equal(t, StageDeepSourcing, s)

	_, err = ParseStage("shipping")
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestNewWorkflowState(t *testing.T) {
	state := NewWorkflowState()

	assert.Equal(t, InitialStage, state.CurrentStage)
	assert.Empty(t, state.CompletedStages)
	assert.NotNil(t, state.StageData)
	assert.False(t, state.CreatedAt.IsZero())
	assert.True(t, state.Valid())
}

func TestWorkflowStateValid(t *testing.T) {
	assert.False(t, (*WorkflowState)(nil).Valid())
	assert.False(t, (&WorkflowState{CurrentStage: "nope"}).Valid())
	assert.True(t, (&WorkflowState{CurrentStage: StageRefinement}).Valid())
}

func TestWorkflowStateClone(t *testing.T) {
	state := NewWorkflowState()
	state.CompletedStages = append(state.CompletedStages, StageRequirementInput)
	state.StageData[StageRequirementInput] = "payload"

	cp := state.Clone()
	cp.CompletedStages[0] = StageRefinement
	cp.StageData[StageRequirementInput] = "changed"

	assert.Equal(t, StageRequirementInput, state.CompletedStages[0])
	assert.Equal(t, "payload", state.StageData[StageRequirementInput])
}
