package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/recording"
	"github.com/stenobot-io/stenobot/ent/utterance"
	"github.com/stenobot-io/stenobot/pkg/ids"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// RecordingService manages the recording sub-engine. All mutating methods
// run inside the caller's transaction; the transition engine invokes them
// as entering hooks.
type RecordingService struct {
	logger *slog.Logger
}

// NewRecordingService creates a new RecordingService
func NewRecordingService(logger *slog.Logger) *RecordingService {
	return &RecordingService{logger: logger.With("service", "recording")}
}

// Create creates a recording in NOT_STARTED for a bot.
func (s *RecordingService) Create(ctx context.Context, tx *ent.Tx, botID string, recKind lifecycle.RecordingKind, trKind lifecycle.TranscriptionKind) (*ent.Recording, error) {
	rec, err := tx.Recording.Create().
		SetID(ids.New(ids.PrefixRecording)).
		SetBotID(botID).
		SetRecordingKind(recKind).
		SetTranscriptionKind(trKind).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording: %w", err)
	}
	return rec, nil
}

// StartPending promotes the bot's single NOT_STARTED or PAUSED recording to
// IN_PROGRESS. started_at is stamped on first start only, not on resume.
// Requires exactly one pending recording; anything else is an invariant
// violation.
func (s *RecordingService) StartPending(ctx context.Context, tx *ent.Tx, botID string, state lifecycle.BotState) error {
	pending, err := tx.Recording.Query().
		Where(
			recording.BotID(botID),
			recording.StateIn(lifecycle.RecordingNotStarted, lifecycle.RecordingPaused),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query pending recordings: %w", err)
	}
	if len(pending) != 1 {
		return &InvariantViolationError{
			BotID:   botID,
			State:   state,
			Message: fmt.Sprintf("expected exactly one pending recording, found %d", len(pending)),
		}
	}

	rec := pending[0]
	upd := tx.Recording.UpdateOneID(rec.ID).
		SetState(lifecycle.RecordingInProgress).
		SetVersion(rec.Version + 1)
	if rec.StartedAt == nil {
		upd.SetStartedAt(time.Now())
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("failed to start recording %s: %w", rec.ID, err)
	}

	s.logger.InfoContext(ctx, "recording started",
		"bot_id", botID, "recording_id", rec.ID, "resumed", rec.StartedAt != nil)
	return nil
}

// PauseActive demotes the bot's IN_PROGRESS recording to PAUSED. When
// tolerateMissing is false, exactly one active recording is required; when
// true, zero is also accepted (permission-denied entry races the platform's
// own pause).
func (s *RecordingService) PauseActive(ctx context.Context, tx *ent.Tx, botID string, state lifecycle.BotState, tolerateMissing bool) error {
	active, err := tx.Recording.Query().
		Where(
			recording.BotID(botID),
			recording.StateEQ(lifecycle.RecordingInProgress),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query active recordings: %w", err)
	}

	switch len(active) {
	case 0:
		if tolerateMissing {
			return nil
		}
		return &InvariantViolationError{
			BotID:   botID,
			State:   state,
			Message: "expected exactly one in-progress recording, found none",
		}
	case 1:
		// fall through
	default:
		return &InvariantViolationError{
			BotID:   botID,
			State:   state,
			Message: fmt.Sprintf("expected at most one in-progress recording, found %d", len(active)),
		}
	}

	rec := active[0]
	_, err = tx.Recording.UpdateOneID(rec.ID).
		SetState(lifecycle.RecordingPaused).
		SetVersion(rec.Version + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to pause recording %s: %w", rec.ID, err)
	}
	return nil
}

// Terminate finalizes every IN_PROGRESS or PAUSED recording of the bot on
// entry into a post-meeting state. A recording completes when a media file
// was uploaded or its kind is no_recording; otherwise it fails. An
// in-progress transcription completes only when every utterance resolved.
// Returns the distinct transcription failure reasons collected across
// terminated recordings, for the event metadata.
func (s *RecordingService) Terminate(ctx context.Context, tx *ent.Tx, botID string) ([]string, error) {
	open, err := tx.Recording.Query().
		Where(
			recording.BotID(botID),
			recording.StateIn(lifecycle.RecordingInProgress, lifecycle.RecordingPaused),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query open recordings: %w", err)
	}

	var collected []string
	for _, rec := range open {
		finalState := lifecycle.RecordingFailed
		if rec.MediaBlobID != nil || rec.RecordingKind == lifecycle.RecordingKindNoRecording {
			finalState = lifecycle.RecordingComplete
		}

		upd := tx.Recording.UpdateOneID(rec.ID).
			SetState(finalState).
			SetCompletedAt(time.Now()).
			SetVersion(rec.Version + 1)

		if rec.TranscriptionState == lifecycle.TranscriptionInProgress {
			reasons, pending, err := s.utteranceFailures(ctx, tx, rec.ID)
			if err != nil {
				return nil, err
			}
			if len(reasons) == 0 && !pending {
				upd.SetTranscriptionState(lifecycle.TranscriptionComplete)
			} else {
				if pending {
					reasons = append(reasons, lifecycle.FailureReasonUtterancesPending)
				}
				upd.SetTranscriptionState(lifecycle.TranscriptionFailed)
				upd.SetFailureReasons(reasons)
				collected = append(collected, reasons...)
			}
		}

		if _, err := upd.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to terminate recording %s: %w", rec.ID, err)
		}

		s.logger.InfoContext(ctx, "recording terminated",
			"bot_id", botID, "recording_id", rec.ID, "final_state", finalState)
	}

	return dedupe(collected), nil
}

// utteranceFailures returns the distinct failure reasons across the
// recording's utterances and whether any utterance is still unresolved
// (neither transcribed nor failed).
func (s *RecordingService) utteranceFailures(ctx context.Context, tx *ent.Tx, recordingID string) ([]string, bool, error) {
	failed, err := tx.Utterance.Query().
		Where(
			utterance.RecordingID(recordingID),
			utterance.FailureReasonNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query failed utterances: %w", err)
	}

	var reasons []string
	for _, u := range failed {
		if u.FailureReason != nil {
			reasons = append(reasons, *u.FailureReason)
		}
	}

	pendingCount, err := tx.Utterance.Query().
		Where(
			utterance.RecordingID(recordingID),
			utterance.TranscriptionIsNil(),
			utterance.FailureReasonIsNil(),
		).
		Count(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to count pending utterances: %w", err)
	}

	return dedupe(reasons), pendingCount > 0, nil
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
