// Package lifecycle defines the bot state taxonomy, event kinds and
// subkinds, the transition table that governs every bot session, and the
// webhook trigger kinds. The numeric state codes are part of the storage
// contract and must never be renumbered; the string API codes are the only
// representation that leaves the process.
package lifecycle

// BotState is the persisted state of a bot session. Values are stable
// numeric codes; new states must use fresh numbers.
type BotState int

const (
	StateReady                           BotState = 1
	StateJoining                         BotState = 2
	StateJoinedNotRecording              BotState = 3
	StateJoinedRecording                 BotState = 4
	StateLeaving                         BotState = 5
	StatePostProcessing                  BotState = 6
	StateFatalError                      BotState = 7
	StateWaitingRoom                     BotState = 8
	StateEnded                           BotState = 9
	StateDataDeleted                     BotState = 10
	StateScheduled                       BotState = 11
	StateStaged                          BotState = 12
	StateJoinedRecordingPaused           BotState = 13
	StateJoiningBreakoutRoom             BotState = 14
	StateLeavingBreakoutRoom             BotState = 15
	StateJoinedRecordingPermissionDenied BotState = 16

	// App-session sub-graph (Zoom RTMS, Google Meet Media API).
	StateConnecting    BotState = 100
	StateConnected     BotState = 101
	StateDisconnecting BotState = 102
)

var stateAPICodes = map[BotState]string{
	StateReady:                           "ready",
	StateJoining:                         "joining",
	StateJoinedNotRecording:              "joined_not_recording",
	StateJoinedRecording:                 "joined_recording",
	StateLeaving:                         "leaving",
	StatePostProcessing:                  "post_processing",
	StateFatalError:                      "fatal_error",
	StateWaitingRoom:                     "waiting_room",
	StateEnded:                           "ended",
	StateDataDeleted:                     "data_deleted",
	StateScheduled:                       "scheduled",
	StateStaged:                          "staged",
	StateJoinedRecordingPaused:           "joined_recording_paused",
	StateJoiningBreakoutRoom:             "joining_breakout_room",
	StateLeavingBreakoutRoom:             "leaving_breakout_room",
	StateJoinedRecordingPermissionDenied: "joined_recording_permission_denied",
	StateConnecting:                      "connecting",
	StateConnected:                       "connected",
	StateDisconnecting:                   "disconnecting",
}

// APICode returns the external string representation of the state.
// Numeric codes never leak past the persistence layer.
func (s BotState) APICode() string {
	if code, ok := stateAPICodes[s]; ok {
		return code
	}
	return "unknown"
}

// Valid reports whether s is a defined bot state.
func (s BotState) Valid() bool {
	_, ok := stateAPICodes[s]
	return ok
}

// IsPostMeeting reports whether s is a terminal (post-meeting) state.
func (s BotState) IsPostMeeting() bool {
	return s == StateFatalError || s == StateEnded || s == StateDataDeleted
}

// IsPreMeeting reports whether the bot has not yet attempted to join.
func (s BotState) IsPreMeeting() bool {
	return s == StateReady || s == StateScheduled || s == StateStaged
}

// IsInMeeting reports whether s is neither pre- nor post-meeting.
func (s BotState) IsInMeeting() bool {
	return s.Valid() && !s.IsPreMeeting() && !s.IsPostMeeting()
}

// JoinedStates are the four states in which the bot is fully present in the
// main meeting. Breakout-room re-entry transitions resolve back into one of
// these.
var JoinedStates = []BotState{
	StateJoinedNotRecording,
	StateJoinedRecording,
	StateJoinedRecordingPaused,
	StateJoinedRecordingPermissionDenied,
}

// IsJoined reports whether s is one of the four joined states.
func (s BotState) IsJoined() bool {
	switch s {
	case StateJoinedNotRecording, StateJoinedRecording,
		StateJoinedRecordingPaused, StateJoinedRecordingPermissionDenied:
		return true
	}
	return false
}

// SessionKind distinguishes browser bots from app sessions. App sessions use
// the CONNECTING/CONNECTED/DISCONNECTING sub-graph and the app_ id prefix.
type SessionKind string

const (
	SessionKindBot        SessionKind = "bot"
	SessionKindAppSession SessionKind = "app_session"
)
