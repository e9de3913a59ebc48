package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("known kind", func(t *testing.T) {
		tr, ok := Lookup(EventJoinRequested)
		require.True(t, ok)
		assert.ElementsMatch(t, []BotState{StateReady, StateStaged}, tr.ValidFrom)
		state, err := tr.Target.Resolve(nil)
		require.NoError(t, err)
		assert.Equal(t, StateJoining, state)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, ok := Lookup(EventKind("made_up"))
		assert.False(t, ok)
	})
}

func TestFatalErrorReachableFromAllNonTerminalStates(t *testing.T) {
	tr, ok := Lookup(EventFatalError)
	require.True(t, ok)

	for state := range stateAPICodes {
		if state.IsPostMeeting() {
			assert.False(t, StateIn(state, tr.ValidFrom),
				"fatal_error must not fire from terminal state %s", state.APICode())
		} else {
			assert.True(t, StateIn(state, tr.ValidFrom),
				"fatal_error must fire from %s", state.APICode())
		}
	}
}

func TestDataDeletedOnlyFromTerminalStates(t *testing.T) {
	assert.ElementsMatch(t,
		[]BotState{StateFatalError, StateEnded},
		ValidFrom(EventDataDeleted))
}

func TestPostProcessingCompletedOnlyFromPostProcessing(t *testing.T) {
	assert.Equal(t, []BotState{StatePostProcessing}, ValidFrom(EventPostProcessingCompleted))
}

func TestBreakoutRoomTargetResolution(t *testing.T) {
	tr, ok := Lookup(EventBotJoinedBreakoutRoom)
	require.True(t, ok)
	require.Equal(t, TargetFromLastEvent, tr.Target.Kind)

	t.Run("resolves to the joined state the bot left from", func(t *testing.T) {
		for _, joined := range JoinedStates {
			state, err := tr.Target.Resolve(&LastEvent{
				Kind:     EventBotBeganJoiningBreakoutRoom,
				OldState: joined,
			})
			require.NoError(t, err)
			assert.Equal(t, joined, state)
		}
	})

	t.Run("rejects nil last event", func(t *testing.T) {
		_, err := tr.Target.Resolve(nil)
		assert.ErrorIs(t, err, ErrUnresolvableTarget)
	})

	t.Run("rejects wrong last event kind", func(t *testing.T) {
		_, err := tr.Target.Resolve(&LastEvent{
			Kind:     EventBotJoinedMeeting,
			OldState: StateJoinedRecording,
		})
		assert.ErrorIs(t, err, ErrUnresolvableTarget)
	})

	t.Run("rejects non-joined old_state", func(t *testing.T) {
		_, err := tr.Target.Resolve(&LastEvent{
			Kind:     EventBotBeganJoiningBreakoutRoom,
			OldState: StateWaitingRoom,
		})
		assert.ErrorIs(t, err, ErrUnresolvableTarget)
	})
}

func TestAllTargetsResolveToValidStates(t *testing.T) {
	for kind, tr := range transitions {
		if tr.Target.Kind != TargetConstant {
			continue
		}
		assert.True(t, tr.Target.State.Valid(), "target of %s must be a defined state", kind)
		for _, from := range tr.ValidFrom {
			assert.True(t, from.Valid(), "valid_from of %s contains undefined state %d", kind, from)
		}
	}
}

func TestValidFromAPICodes(t *testing.T) {
	codes := ValidFromAPICodes(EventDataDeleted)
	assert.ElementsMatch(t, []string{"fatal_error", "ended"}, codes)
}

func TestRequesterEvent(t *testing.T) {
	cases := map[BotState]EventKind{
		StateJoining:       EventJoinRequested,
		StateLeaving:       EventLeaveRequested,
		StateConnecting:    EventConnectRequested,
		StateDisconnecting: EventDisconnectRequested,
	}
	for state, want := range cases {
		kind, ok := RequesterEvent(state)
		require.True(t, ok, "state %s", state.APICode())
		assert.Equal(t, want, kind)
	}

	_, ok := RequesterEvent(StateJoinedRecording)
	assert.False(t, ok)
}

func TestCapabilityPredicates(t *testing.T) {
	predicates := map[string]func(BotState) bool{
		"can_play_media":                     CanPlayMedia,
		"can_admit_from_waiting_room":        CanAdmitFromWaitingRoom,
		"can_update_transcription_settings":  CanUpdateTranscriptionSettings,
		"can_pause_recording":                CanPauseRecording,
		"can_resume_recording":               CanResumeRecording,
		"can_change_gallery_view_page":       CanChangeGalleryViewPage,
	}
	for name, predicate := range predicates {
		for _, joined := range JoinedStates {
			assert.True(t, predicate(joined), "%s must hold in %s", name, joined.APICode())
		}
		for _, other := range []BotState{StateReady, StateJoining, StateWaitingRoom, StateLeaving, StateEnded} {
			assert.False(t, predicate(other), "%s must not hold in %s", name, other.APICode())
		}
	}
}
