package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sub(s EventSubKind) *EventSubKind { return &s }

func TestCombinationValid(t *testing.T) {
	t.Run("plain kinds require null subkind", func(t *testing.T) {
		assert.True(t, CombinationValid(EventJoinRequested, nil))
		assert.False(t, CombinationValid(EventJoinRequested, sub(SubKindUserRequested)))
		assert.True(t, CombinationValid(EventMeetingEnded, nil))
	})

	t.Run("fatal_error requires a permitted subkind", func(t *testing.T) {
		assert.True(t, CombinationValid(EventFatalError, sub(SubKindHeartbeatTimeout)))
		assert.True(t, CombinationValid(EventFatalError, sub(SubKindOutOfCredits)))
		assert.False(t, CombinationValid(EventFatalError, nil))
		assert.False(t, CombinationValid(EventFatalError, sub(SubKindUserRequested)))
	})

	t.Run("could_not_join requires a permitted subkind", func(t *testing.T) {
		assert.True(t, CombinationValid(EventCouldNotJoin, sub(SubKindMeetingNotFound)))
		assert.False(t, CombinationValid(EventCouldNotJoin, nil))
		assert.False(t, CombinationValid(EventCouldNotJoin, sub(SubKindHeartbeatTimeout)))
	})

	t.Run("leave_requested tolerates null for legacy producers", func(t *testing.T) {
		assert.True(t, CombinationValid(EventLeaveRequested, nil))
		assert.True(t, CombinationValid(EventLeaveRequested, sub(SubKindAutoLeaveSilence)))
		assert.False(t, CombinationValid(EventLeaveRequested, sub(SubKindMeetingNotFound)))
	})

	t.Run("recording permission denied requires a permitted subkind", func(t *testing.T) {
		assert.True(t, CombinationValid(EventBotRecordingPermissionDenied, sub(SubKindHostDeniedPermission)))
		assert.False(t, CombinationValid(EventBotRecordingPermissionDenied, nil))
	})
}

func TestRequiresSubKind(t *testing.T) {
	assert.True(t, RequiresSubKind(EventFatalError))
	assert.True(t, RequiresSubKind(EventCouldNotJoin))
	assert.True(t, RequiresSubKind(EventBotRecordingPermissionDenied))
	assert.False(t, RequiresSubKind(EventLeaveRequested), "null permitted for legacy traffic")
	assert.False(t, RequiresSubKind(EventJoinRequested))
}

func TestPermittedSubKinds(t *testing.T) {
	assert.Len(t, PermittedSubKinds(EventFatalError), 7)
	assert.Len(t, PermittedSubKinds(EventCouldNotJoin), 12)
	assert.Len(t, PermittedSubKinds(EventLeaveRequested), 5)
	assert.Len(t, PermittedSubKinds(EventBotRecordingPermissionDenied), 3)
	assert.Nil(t, PermittedSubKinds(EventBotJoinedMeeting))
}
