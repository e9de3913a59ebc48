package lifecycle

// RecordingState is the lifecycle of a single recording, driven as a side
// effect of bot transitions.
type RecordingState string

const (
	RecordingNotStarted RecordingState = "not_started"
	RecordingInProgress RecordingState = "in_progress"
	RecordingPaused     RecordingState = "paused"
	RecordingComplete   RecordingState = "complete"
	RecordingFailed     RecordingState = "failed"
)

// Active reports whether the recording counts against the single-active
// invariant: at most one recording per bot may be IN_PROGRESS or PAUSED.
func (s RecordingState) Active() bool {
	return s == RecordingInProgress || s == RecordingPaused
}

// Terminal reports whether the recording has finished.
func (s RecordingState) Terminal() bool {
	return s == RecordingComplete || s == RecordingFailed
}

// TranscriptionState tracks transcription progress for a recording.
type TranscriptionState string

const (
	TranscriptionNotStarted TranscriptionState = "not_started"
	TranscriptionInProgress TranscriptionState = "in_progress"
	TranscriptionComplete   TranscriptionState = "complete"
	TranscriptionFailed     TranscriptionState = "failed"
)

// RecordingKind selects what media the bot captures.
type RecordingKind string

const (
	RecordingKindAudioVideo  RecordingKind = "audio_and_video"
	RecordingKindAudioOnly   RecordingKind = "audio_only"
	RecordingKindNoRecording RecordingKind = "no_recording"
)

// TranscriptionKind selects how speech is transcribed.
type TranscriptionKind string

const (
	TranscriptionKindNone         TranscriptionKind = "none"
	TranscriptionKindRealtime     TranscriptionKind = "realtime"
	TranscriptionKindPostMeeting  TranscriptionKind = "post_meeting"
	TranscriptionKindClosedCaption TranscriptionKind = "closed_caption"
)

// FailureReasonUtterancesPending is appended to a failed transcription's
// failure reasons when utterances were still unresolved at termination.
const FailureReasonUtterancesPending = "utterances_still_in_progress_when_recording_terminated"
