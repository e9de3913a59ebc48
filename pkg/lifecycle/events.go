package lifecycle

// EventKind identifies the cause of a bot state transition. The string
// values are API codes: they appear verbatim in event rows and webhook
// payloads.
type EventKind string

const (
	EventJoinRequested                 EventKind = "join_requested"
	EventBotPutInWaitingRoom           EventKind = "bot_put_in_waiting_room"
	EventBotJoinedMeeting              EventKind = "bot_joined_meeting"
	EventBotRecordingPermissionGranted EventKind = "bot_recording_permission_granted"
	EventBotRecordingPermissionDenied  EventKind = "bot_recording_permission_denied"
	EventRecordingPaused               EventKind = "recording_paused"
	EventRecordingResumed              EventKind = "recording_resumed"
	EventMeetingEnded                  EventKind = "meeting_ended"
	EventLeaveRequested                EventKind = "leave_requested"
	EventBotLeftMeeting                EventKind = "bot_left_meeting"
	EventPostProcessingCompleted       EventKind = "post_processing_completed"
	EventFatalError                    EventKind = "fatal_error"
	EventCouldNotJoin                  EventKind = "could_not_join"
	EventDataDeleted                   EventKind = "data_deleted"
	EventStaged                        EventKind = "staged"

	EventBotBeganJoiningBreakoutRoom EventKind = "bot_began_joining_breakout_room"
	EventBotJoinedBreakoutRoom       EventKind = "bot_joined_breakout_room"
	EventBotBeganLeavingBreakoutRoom EventKind = "bot_began_leaving_breakout_room"
	EventBotLeftBreakoutRoom         EventKind = "bot_left_breakout_room"

	// App-session sub-graph.
	EventConnectRequested    EventKind = "connect_requested"
	EventBotConnected        EventKind = "bot_connected"
	EventDisconnectRequested EventKind = "disconnect_requested"
	EventBotDisconnected     EventKind = "bot_disconnected"
)

// EventSubKind refines certain event kinds with the specific cause.
type EventSubKind string

// FATAL_ERROR subkinds.
const (
	SubKindProcessTerminated     EventSubKind = "process_terminated"
	SubKindAttendeeInternalError EventSubKind = "attendee_internal_error"
	SubKindOutOfCredits          EventSubKind = "out_of_credits"
	SubKindRTMPConnectionFailed  EventSubKind = "rtmp_connection_failed"
	SubKindUIElementNotFound     EventSubKind = "ui_element_not_found"
	SubKindHeartbeatTimeout      EventSubKind = "heartbeat_timeout"
	SubKindBotNotLaunched        EventSubKind = "bot_not_launched"
)

// COULD_NOT_JOIN subkinds.
const (
	SubKindMeetingNotStartedWaitingForHost          EventSubKind = "meeting_not_started_waiting_for_host"
	SubKindUnableToConnectToMeeting                 EventSubKind = "unable_to_connect_to_meeting"
	SubKindWaitingRoomTimeoutExceeded               EventSubKind = "waiting_room_timeout_exceeded"
	SubKindZoomAuthorizationFailed                  EventSubKind = "zoom_authorization_failed"
	SubKindLoginRequired                            EventSubKind = "login_required"
	SubKindAuthorizedUserNotInMeetingTimeoutExceeded EventSubKind = "authorized_user_not_in_meeting_timeout_exceeded"
	SubKindBotLoginAttemptFailed                    EventSubKind = "bot_login_attempt_failed"
	SubKindZoomMeetingStatusFailed                  EventSubKind = "zoom_meeting_status_failed"
	SubKindUnpublishedZoomApp                       EventSubKind = "unpublished_zoom_app"
	SubKindZoomSDKInternalError                     EventSubKind = "zoom_sdk_internal_error"
	SubKindRequestToJoinDenied                      EventSubKind = "request_to_join_denied"
	SubKindMeetingNotFound                          EventSubKind = "meeting_not_found"
)

// LEAVE_REQUESTED subkinds. A null subkind is tolerated on write for legacy
// producers; new code always supplies one.
const (
	SubKindUserRequested                         EventSubKind = "user_requested"
	SubKindAutoLeaveSilence                      EventSubKind = "auto_leave_silence"
	SubKindAutoLeaveOnlyParticipantInMeeting     EventSubKind = "auto_leave_only_participant_in_meeting"
	SubKindAutoLeaveMaxUptimeExceeded            EventSubKind = "auto_leave_max_uptime_exceeded"
	SubKindAutoLeaveCouldNotEnableClosedCaptions EventSubKind = "auto_leave_could_not_enable_closed_captions"
)

// BOT_RECORDING_PERMISSION_DENIED subkinds.
const (
	SubKindHostDeniedPermission           EventSubKind = "host_denied_permission"
	SubKindRequestTimedOut                EventSubKind = "request_timed_out"
	SubKindHostClientCannotGrantPermission EventSubKind = "host_client_cannot_grant_permission"
)

// permittedSubKinds maps the event kinds that carry a subkind to their
// permitted sets. Every other event kind requires a null subkind.
var permittedSubKinds = map[EventKind][]EventSubKind{
	EventFatalError: {
		SubKindProcessTerminated,
		SubKindAttendeeInternalError,
		SubKindOutOfCredits,
		SubKindRTMPConnectionFailed,
		SubKindUIElementNotFound,
		SubKindHeartbeatTimeout,
		SubKindBotNotLaunched,
	},
	EventCouldNotJoin: {
		SubKindMeetingNotStartedWaitingForHost,
		SubKindUnableToConnectToMeeting,
		SubKindWaitingRoomTimeoutExceeded,
		SubKindZoomAuthorizationFailed,
		SubKindLoginRequired,
		SubKindAuthorizedUserNotInMeetingTimeoutExceeded,
		SubKindBotLoginAttemptFailed,
		SubKindZoomMeetingStatusFailed,
		SubKindUnpublishedZoomApp,
		SubKindZoomSDKInternalError,
		SubKindRequestToJoinDenied,
		SubKindMeetingNotFound,
	},
	EventLeaveRequested: {
		SubKindUserRequested,
		SubKindAutoLeaveSilence,
		SubKindAutoLeaveOnlyParticipantInMeeting,
		SubKindAutoLeaveMaxUptimeExceeded,
		SubKindAutoLeaveCouldNotEnableClosedCaptions,
	},
	EventBotRecordingPermissionDenied: {
		SubKindHostDeniedPermission,
		SubKindRequestTimedOut,
		SubKindHostClientCannotGrantPermission,
	},
}

// subKindOptional lists the subkinded events where a null subkind is still
// accepted on write (legacy traffic).
var subKindOptional = map[EventKind]bool{
	EventLeaveRequested: true,
}

// PermittedSubKinds returns the allowed subkinds for kind, or nil if the
// kind requires a null subkind.
func PermittedSubKinds(kind EventKind) []EventSubKind {
	return permittedSubKinds[kind]
}

// RequiresSubKind reports whether kind must carry a non-null subkind.
func RequiresSubKind(kind EventKind) bool {
	_, ok := permittedSubKinds[kind]
	return ok && !subKindOptional[kind]
}

// CombinationValid reports whether (kind, subKind) satisfies the taxonomy
// rules. A nil subKind means "null". The engine enforces this before writing;
// the database check constraint enforces it again at the persistence layer.
func CombinationValid(kind EventKind, subKind *EventSubKind) bool {
	permitted, subkinded := permittedSubKinds[kind]
	if !subkinded {
		return subKind == nil
	}
	if subKind == nil {
		return subKindOptional[kind]
	}
	for _, s := range permitted {
		if s == *subKind {
			return true
		}
	}
	return false
}
