package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerAPICodes(t *testing.T) {
	assert.Equal(t, "bot.state_change", TriggerBotStateChange.APICode())
	assert.Equal(t, "participant_events.all", TriggerParticipantEventsAll.APICode())

	kind, ok := TriggerKindFromAPICode("transcript.update")
	assert.True(t, ok)
	assert.Equal(t, TriggerTranscriptUpdate, kind)

	_, ok = TriggerKindFromAPICode("nope")
	assert.False(t, ok)
}

func TestTriggerKindValid(t *testing.T) {
	assert.True(t, TriggerBotStateChange.Valid())
	assert.True(t, TriggerChatMessagesUpdate.Valid())
	assert.False(t, TriggerKind(0).Valid())
	assert.False(t, TriggerKind(99).Valid())
	assert.Equal(t, "unknown", TriggerKind(99).APICode())
}
