package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

func TestIllegalTransitionError_QuotesAPICodesOnly(t *testing.T) {
	err := &IllegalTransitionError{
		BotID:     "bot_aaaaaaaaaaaaaaaa",
		Kind:      lifecycle.EventRecordingPaused,
		FromState: lifecycle.StateReady,
		ValidFrom: []lifecycle.BotState{lifecycle.StateJoinedRecording},
	}

	msg := err.Error()
	assert.Contains(t, msg, "recording_paused")
	assert.Contains(t, msg, "'ready'")
	assert.Contains(t, msg, "joined_recording")
	assert.NotContains(t, msg, "'1'")
	assert.NotContains(t, msg, "'4'")
}

func TestInvalidEventCombinationError(t *testing.T) {
	missing := &InvalidEventCombinationError{Kind: lifecycle.EventFatalError}
	assert.Contains(t, missing.Error(), "requires a sub kind")

	wrong := &InvalidEventCombinationError{
		Kind:    lifecycle.EventFatalError,
		SubKind: subKindPtr(lifecycle.SubKindUserRequested),
	}
	assert.Contains(t, wrong.Error(), "not permitted")
}

func TestErrorPredicates(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NewValidationError("field", "bad"))
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(errors.New("other")))

	assert.True(t, IsIllegalTransition(fmt.Errorf("x: %w", &IllegalTransitionError{})))
	assert.True(t, IsInvariantViolation(fmt.Errorf("x: %w", &InvariantViolationError{})))
	assert.True(t, IsInvalidEventCombination(fmt.Errorf("x: %w", &InvalidEventCombinationError{})))
	assert.False(t, IsIllegalTransition(ErrNotFound))
}

func TestIsOptimisticConflict(t *testing.T) {
	assert.True(t, isOptimisticConflict(errStaleVersion))
	assert.True(t, isOptimisticConflict(fmt.Errorf("wrap: %w", errStaleVersion)))
	assert.False(t, isOptimisticConflict(ErrNotFound))
}
