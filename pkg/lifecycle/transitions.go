package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolvableTarget is returned when a from-last-event target cannot be
// resolved against the bot's history.
var ErrUnresolvableTarget = errors.New("transition target unresolvable from last event")

// LastEvent is the slice of a bot's most recent event needed to resolve
// history-dependent transition targets.
type LastEvent struct {
	Kind     EventKind
	OldState BotState
}

// TargetKind discriminates the Target variant.
type TargetKind int

const (
	// TargetConstant resolves to a fixed state.
	TargetConstant TargetKind = iota
	// TargetFromLastEvent resolves to the old_state of the bot's last event,
	// provided that event has the required kind and a joined old_state.
	// Used for breakout-room re-entry, which returns the bot to whatever
	// joined state it held before entering the breakout room.
	TargetFromLastEvent
)

// Target is the "to" side of a transition: either a constant state or a
// function of the bot's last event.
type Target struct {
	Kind         TargetKind
	State        BotState  // set when Kind == TargetConstant
	RequiredLast EventKind // set when Kind == TargetFromLastEvent
}

// ToState builds a constant target.
func ToState(s BotState) Target {
	return Target{Kind: TargetConstant, State: s}
}

// FromLastEvent builds a history-dependent target requiring the bot's last
// event to be of the given kind.
func FromLastEvent(required EventKind) Target {
	return Target{Kind: TargetFromLastEvent, RequiredLast: required}
}

// Resolve computes the destination state. last may be nil when the bot has
// no events yet; constant targets ignore it.
func (t Target) Resolve(last *LastEvent) (BotState, error) {
	switch t.Kind {
	case TargetConstant:
		return t.State, nil
	case TargetFromLastEvent:
		if last == nil {
			return 0, fmt.Errorf("%w: bot has no prior events", ErrUnresolvableTarget)
		}
		if last.Kind != t.RequiredLast {
			return 0, fmt.Errorf("%w: last event is %q, need %q",
				ErrUnresolvableTarget, last.Kind, t.RequiredLast)
		}
		if !last.OldState.IsJoined() {
			return 0, fmt.Errorf("%w: last event old_state %q is not a joined state",
				ErrUnresolvableTarget, last.OldState.APICode())
		}
		return last.OldState, nil
	default:
		return 0, fmt.Errorf("%w: unknown target kind %d", ErrUnresolvableTarget, t.Kind)
	}
}

// Transition is one row of the static transition table.
type Transition struct {
	ValidFrom []BotState
	Target    Target
}

func anyNonTerminal() []BotState {
	var from []BotState
	for s := range stateAPICodes {
		if !s.IsPostMeeting() {
			from = append(from, s)
		}
	}
	return from
}

var inMeetingMainRoom = []BotState{
	StateJoining, StateWaitingRoom,
	StateJoinedNotRecording, StateJoinedRecording,
	StateJoinedRecordingPaused, StateJoinedRecordingPermissionDenied,
	StateJoiningBreakoutRoom, StateLeavingBreakoutRoom,
}

// transitions is the complete static transition table. FATAL_ERROR is
// deliberately reachable from every non-terminal state, including
// POST_PROCESSING and STAGED; the operational record shows launch and
// post-processing failures from both.
var transitions = map[EventKind]Transition{
	EventStaged:        {ValidFrom: []BotState{StateScheduled}, Target: ToState(StateStaged)},
	EventJoinRequested: {ValidFrom: []BotState{StateReady, StateStaged}, Target: ToState(StateJoining)},

	EventBotPutInWaitingRoom: {ValidFrom: []BotState{StateJoining}, Target: ToState(StateWaitingRoom)},
	EventBotJoinedMeeting:    {ValidFrom: []BotState{StateJoining, StateWaitingRoom}, Target: ToState(StateJoinedNotRecording)},

	EventBotRecordingPermissionGranted: {
		ValidFrom: []BotState{StateJoinedNotRecording, StateJoinedRecordingPermissionDenied},
		Target:    ToState(StateJoinedRecording),
	},
	EventBotRecordingPermissionDenied: {
		ValidFrom: []BotState{StateJoinedNotRecording, StateJoinedRecording},
		Target:    ToState(StateJoinedRecordingPermissionDenied),
	},
	EventRecordingPaused:  {ValidFrom: []BotState{StateJoinedRecording}, Target: ToState(StateJoinedRecordingPaused)},
	EventRecordingResumed: {ValidFrom: []BotState{StateJoinedRecordingPaused}, Target: ToState(StateJoinedRecording)},

	EventLeaveRequested: {
		ValidFrom: inMeetingMainRoom,
		Target:    ToState(StateLeaving),
	},
	EventMeetingEnded: {
		ValidFrom: append([]BotState{StateLeaving}, inMeetingMainRoom...),
		Target:    ToState(StatePostProcessing),
	},
	EventBotLeftMeeting:          {ValidFrom: []BotState{StateLeaving}, Target: ToState(StatePostProcessing)},
	EventPostProcessingCompleted: {ValidFrom: []BotState{StatePostProcessing}, Target: ToState(StateEnded)},

	EventCouldNotJoin: {
		ValidFrom: []BotState{StateJoining, StateWaitingRoom, StateConnecting},
		Target:    ToState(StateFatalError),
	},
	EventFatalError:  {ValidFrom: anyNonTerminal(), Target: ToState(StateFatalError)},
	EventDataDeleted: {ValidFrom: []BotState{StateFatalError, StateEnded}, Target: ToState(StateDataDeleted)},

	EventBotBeganJoiningBreakoutRoom: {
		ValidFrom: JoinedStates,
		Target:    ToState(StateJoiningBreakoutRoom),
	},
	EventBotJoinedBreakoutRoom: {
		ValidFrom: []BotState{StateJoiningBreakoutRoom},
		Target:    FromLastEvent(EventBotBeganJoiningBreakoutRoom),
	},
	EventBotBeganLeavingBreakoutRoom: {
		ValidFrom: JoinedStates,
		Target:    ToState(StateLeavingBreakoutRoom),
	},
	EventBotLeftBreakoutRoom: {
		ValidFrom: []BotState{StateLeavingBreakoutRoom},
		Target:    FromLastEvent(EventBotBeganLeavingBreakoutRoom),
	},

	EventConnectRequested:    {ValidFrom: []BotState{StateReady, StateStaged}, Target: ToState(StateConnecting)},
	EventBotConnected:        {ValidFrom: []BotState{StateConnecting}, Target: ToState(StateConnected)},
	EventDisconnectRequested: {ValidFrom: []BotState{StateConnected}, Target: ToState(StateDisconnecting)},
	EventBotDisconnected:     {ValidFrom: []BotState{StateDisconnecting}, Target: ToState(StatePostProcessing)},
}

// Lookup returns the transition table entry for kind.
func Lookup(kind EventKind) (Transition, bool) {
	t, ok := transitions[kind]
	return t, ok
}

// ValidFrom returns the permitted source states for kind, or nil when the
// kind has no transition entry.
func ValidFrom(kind EventKind) []BotState {
	return transitions[kind].ValidFrom
}

// ValidFromAPICodes renders the permitted source states for kind as API
// codes, for error messages. Numeric codes never appear in user-visible text.
func ValidFromAPICodes(kind EventKind) []string {
	from := ValidFrom(kind)
	codes := make([]string, 0, len(from))
	for _, s := range from {
		codes = append(codes, s.APICode())
	}
	return codes
}

// StateIn reports whether s appears in states.
func StateIn(s BotState, states []BotState) bool {
	for _, candidate := range states {
		if candidate == s {
			return true
		}
	}
	return false
}

// FormatStates joins API codes for error messages.
func FormatStates(codes []string) string {
	return strings.Join(codes, ", ")
}

// requesterEvents maps each "in flight" state to the event kind that
// requested it. RecordRequestTaken uses this to assert the last event before
// stamping requested_action_taken_at.
var requesterEvents = map[BotState]EventKind{
	StateJoining:       EventJoinRequested,
	StateLeaving:       EventLeaveRequested,
	StateConnecting:    EventConnectRequested,
	StateDisconnecting: EventDisconnectRequested,
}

// RequesterEvent returns the event kind expected to have put the bot into
// state, for the four requestable states.
func RequesterEvent(state BotState) (EventKind, bool) {
	kind, ok := requesterEvents[state]
	return kind, ok
}

// Capability predicates. Each is derived from the transition table's view of
// where the corresponding request is serviceable: all hold exactly on the
// four joined states.

// CanPlayMedia reports whether media playback requests are serviceable.
func CanPlayMedia(s BotState) bool { return s.IsJoined() }

// CanAdmitFromWaitingRoom reports whether the bot can admit attendees.
func CanAdmitFromWaitingRoom(s BotState) bool { return s.IsJoined() }

// CanUpdateTranscriptionSettings reports whether transcription settings may
// be changed mid-meeting.
func CanUpdateTranscriptionSettings(s BotState) bool { return s.IsJoined() }

// CanPauseRecording reports whether a pause request is serviceable.
func CanPauseRecording(s BotState) bool { return s.IsJoined() }

// CanResumeRecording reports whether a resume request is serviceable.
func CanResumeRecording(s BotState) bool { return s.IsJoined() }

// CanChangeGalleryViewPage reports whether gallery view paging is serviceable.
func CanChangeGalleryViewPage(s BotState) bool { return s.IsJoined() }
