package lifecycle

// Values implements ent's EnumValues so schemas can bind enum columns
// directly to these types.

func (SessionKind) Values() []string {
	return []string{string(SessionKindBot), string(SessionKindAppSession)}
}

func (RecordingState) Values() []string {
	return []string{
		string(RecordingNotStarted),
		string(RecordingInProgress),
		string(RecordingPaused),
		string(RecordingComplete),
		string(RecordingFailed),
	}
}

func (TranscriptionState) Values() []string {
	return []string{
		string(TranscriptionNotStarted),
		string(TranscriptionInProgress),
		string(TranscriptionComplete),
		string(TranscriptionFailed),
	}
}

func (RecordingKind) Values() []string {
	return []string{
		string(RecordingKindAudioVideo),
		string(RecordingKindAudioOnly),
		string(RecordingKindNoRecording),
	}
}

func (TranscriptionKind) Values() []string {
	return []string{
		string(TranscriptionKindNone),
		string(TranscriptionKindRealtime),
		string(TranscriptionKindPostMeeting),
		string(TranscriptionKindClosedCaption),
	}
}

func (EventKind) Values() []string {
	return []string{
		string(EventJoinRequested),
		string(EventBotPutInWaitingRoom),
		string(EventBotJoinedMeeting),
		string(EventBotRecordingPermissionGranted),
		string(EventBotRecordingPermissionDenied),
		string(EventRecordingPaused),
		string(EventRecordingResumed),
		string(EventMeetingEnded),
		string(EventLeaveRequested),
		string(EventBotLeftMeeting),
		string(EventPostProcessingCompleted),
		string(EventFatalError),
		string(EventCouldNotJoin),
		string(EventDataDeleted),
		string(EventStaged),
		string(EventBotBeganJoiningBreakoutRoom),
		string(EventBotJoinedBreakoutRoom),
		string(EventBotBeganLeavingBreakoutRoom),
		string(EventBotLeftBreakoutRoom),
		string(EventConnectRequested),
		string(EventBotConnected),
		string(EventDisconnectRequested),
		string(EventBotDisconnected),
	}
}

func (EventSubKind) Values() []string {
	var values []string
	seen := make(map[EventSubKind]bool)
	for _, kinds := range permittedSubKinds {
		for _, k := range kinds {
			if !seen[k] {
				seen[k] = true
				values = append(values, string(k))
			}
		}
	}
	return values
}

// DeliveryStatus is the terminal status of a webhook delivery attempt.
type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySuccess DeliveryStatus = "success"
	DeliveryFailure DeliveryStatus = "failure"
)

func (DeliveryStatus) Values() []string {
	return []string{
		string(DeliveryPending),
		string(DeliverySuccess),
		string(DeliveryFailure),
	}
}
