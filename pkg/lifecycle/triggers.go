package lifecycle

// TriggerKind identifies a webhook trigger. Numeric codes are the storage
// representation; API codes appear in subscription payloads.
type TriggerKind int

const (
	TriggerBotStateChange                TriggerKind = 1
	TriggerTranscriptUpdate              TriggerKind = 2
	TriggerChatMessagesUpdate            TriggerKind = 3
	TriggerParticipantEventsJoinLeave    TriggerKind = 4
	TriggerCalendarEventsUpdate          TriggerKind = 5
	TriggerCalendarStateChange           TriggerKind = 6
	TriggerAsyncTranscriptionStateChange TriggerKind = 7
	TriggerZoomOAuthConnectionStateChange TriggerKind = 8
	TriggerBotLogsUpdate                 TriggerKind = 9
	TriggerParticipantEventsAll          TriggerKind = 10
)

var triggerAPICodes = map[TriggerKind]string{
	TriggerBotStateChange:                 "bot.state_change",
	TriggerTranscriptUpdate:               "transcript.update",
	TriggerChatMessagesUpdate:             "chat_messages.update",
	TriggerParticipantEventsJoinLeave:     "participant_events.join_leave",
	TriggerCalendarEventsUpdate:           "calendar.events_update",
	TriggerCalendarStateChange:            "calendar.state_change",
	TriggerAsyncTranscriptionStateChange:  "async_transcription.state_change",
	TriggerZoomOAuthConnectionStateChange: "zoom_oauth_connection.state_change",
	TriggerBotLogsUpdate:                  "bot_logs.update",
	TriggerParticipantEventsAll:           "participant_events.all",
}

// APICode returns the external representation of the trigger kind.
func (t TriggerKind) APICode() string {
	if code, ok := triggerAPICodes[t]; ok {
		return code
	}
	return "unknown"
}

// Valid reports whether t is a defined trigger kind.
func (t TriggerKind) Valid() bool {
	_, ok := triggerAPICodes[t]
	return ok
}

// TriggerKindFromAPICode parses an API code back to its trigger kind.
func TriggerKindFromAPICode(code string) (TriggerKind, bool) {
	for kind, apiCode := range triggerAPICodes {
		if apiCode == code {
			return kind, true
		}
	}
	return 0, false
}
