package services

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/bot"
	"github.com/stenobot-io/stenobot/ent/botevent"
	"github.com/stenobot-io/stenobot/ent/project"
	"github.com/stenobot-io/stenobot/pkg/ids"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// transitionRetries bounds the apply loop. Only optimistic conflicts are
// retried; taxonomy and transition errors surface immediately.
const transitionRetries = 3

// AlertSink receives operator alerts on fatal errors. The Slack
// implementation lives in pkg/alerts; a nil sink disables alerting.
type AlertSink interface {
	BotFatalError(ctx context.Context, botID, meetingURL, subKindCode string)
}

// CreateBotParams describes a new bot session.
type CreateBotParams struct {
	ProjectID         string
	Name              string
	MeetingURL        string
	SessionKind       lifecycle.SessionKind
	JoinAt            *time.Time
	DeduplicationKey  *string
	Settings          map[string]interface{}
	Metadata          map[string]interface{}
	RecordingKind     lifecycle.RecordingKind
	TranscriptionKind lifecycle.TranscriptionKind
}

// BotService is the transition engine: the only writer of bot state. Every
// durable write goes through an optimistic version check inside a
// serializable transaction, so concurrent workers interleave safely with no
// in-memory locks.
type BotService struct {
	client         *ent.Client
	recordings     *RecordingService
	credits        *CreditService
	webhooks       *WebhookService
	alerts         AlertSink
	billingEnabled bool
	logger         *slog.Logger
}

// NewBotService creates a new BotService. alerts may be nil.
func NewBotService(client *ent.Client, recordings *RecordingService, credits *CreditService, webhooks *WebhookService, alerts AlertSink, billingEnabled bool, logger *slog.Logger) *BotService {
	return &BotService{
		client:         client,
		recordings:     recordings,
		credits:        credits,
		webhooks:       webhooks,
		alerts:         alerts,
		billingEnabled: billingEnabled,
		logger:         logger.With("service", "bot"),
	}
}

// CreateBot creates a bot in READY, or SCHEDULED when join_at is set, along
// with its initial recording row. A duplicate deduplication key among live
// bots of the project surfaces as ErrAlreadyExists.
func (s *BotService) CreateBot(ctx context.Context, params CreateBotParams) (*ent.Bot, error) {
	if params.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if params.MeetingURL == "" {
		return nil, NewValidationError("meeting_url", "required")
	}

	kind := params.SessionKind
	if kind == "" {
		kind = lifecycle.SessionKindBot
	}
	prefix := ids.PrefixBot
	if kind == lifecycle.SessionKindAppSession {
		prefix = ids.PrefixAppSession
	}

	state := lifecycle.StateReady
	if params.JoinAt != nil {
		state = lifecycle.StateScheduled
	}

	recKind := params.RecordingKind
	if recKind == "" {
		recKind = lifecycle.RecordingKindAudioVideo
	}
	trKind := params.TranscriptionKind
	if trKind == "" {
		trKind = lifecycle.TranscriptionKindNone
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	create := tx.Bot.Create().
		SetID(ids.New(prefix)).
		SetProjectID(params.ProjectID).
		SetMeetingURL(params.MeetingURL).
		SetState(state).
		SetSessionKind(kind).
		SetNillableJoinAt(params.JoinAt).
		SetNillableDeduplicationKey(params.DeduplicationKey)
	if params.Name != "" {
		create.SetName(params.Name)
	}
	if params.Settings != nil {
		create.SetSettings(params.Settings)
	}
	if params.Metadata != nil {
		create.SetMetadata(params.Metadata)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if isIntegrityViolation(err) {
			return nil, fmt.Errorf("live bot with deduplication key already exists: %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	if _, err := s.recordings.Create(ctx, tx, created.ID, recKind, trKind); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bot creation: %w", err)
	}

	s.logger.InfoContext(ctx, "bot created",
		"bot_id", created.ID, "project_id", params.ProjectID, "state", state.APICode())
	return created, nil
}

// GetBot loads a bot by id.
func (s *BotService) GetBot(ctx context.Context, botID string) (*ent.Bot, error) {
	b, err := s.client.Bot.Get(ctx, botID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("bot %s: %w", botID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load bot: %w", err)
	}
	return b, nil
}

// applyOutcome carries the side effects of a committed transition out of the
// transaction scope.
type applyOutcome struct {
	event      *ent.BotEvent
	attempts   []*ent.WebhookDeliveryAttempt
	meetingURL string
}

// ApplyEvent is the single entry point for bot state transitions. It
// validates the event taxonomy, resolves the transition, performs the state
// write under an optimistic version check, runs the entering hooks, appends
// the immutable event row, and enqueues the state-change webhook — all in
// one serializable transaction, retried up to 3 times on version conflicts.
func (s *BotService) ApplyEvent(ctx context.Context, botID string, kind lifecycle.EventKind, subKind *lifecycle.EventSubKind, metadata map[string]interface{}) (*ent.BotEvent, error) {
	if !lifecycle.CombinationValid(kind, subKind) {
		return nil, &InvalidEventCombinationError{Kind: kind, SubKind: subKind}
	}
	transition, ok := lifecycle.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("event kind '%s': %w", kind, ErrUndefinedEventKind)
	}

	var lastErr error
	for attempt := 0; attempt < transitionRetries; attempt++ {
		outcome, err := s.applyOnce(ctx, botID, kind, subKind, metadata, transition)
		if err != nil {
			if isSerializationFailure(err) || isOptimisticConflict(err) {
				lastErr = err
				continue
			}
			return nil, err
		}

		s.webhooks.Nudge(ctx, outcome.attempts)
		if outcome.event.NewState == lifecycle.StateFatalError && s.alerts != nil {
			code := ""
			if outcome.event.EventSubKind != nil {
				code = string(*outcome.event.EventSubKind)
			}
			s.alerts.BotFatalError(ctx, botID, outcome.meetingURL, code)
		}
		return outcome.event, nil
	}
	return nil, fmt.Errorf("transition did not commit after %d attempts: %w: %w",
		transitionRetries, ErrOptimisticConflict, lastErr)
}

// applyOnce runs one full attempt inside its own serializable transaction.
func (s *BotService) applyOnce(ctx context.Context, botID string, kind lifecycle.EventKind, subKind *lifecycle.EventSubKind, metadata map[string]interface{}, transition lifecycle.Transition) (*applyOutcome, error) {
	tx, err := s.client.BeginTx(ctx, &stdsql.TxOptions{Isolation: stdsql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	b, err := tx.Bot.Get(ctx, botID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("bot %s: %w", botID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load bot: %w", err)
	}
	oldState := b.State

	if !lifecycle.StateIn(oldState, transition.ValidFrom) {
		return nil, &IllegalTransitionError{
			BotID:     botID,
			Kind:      kind,
			FromState: oldState,
			ValidFrom: transition.ValidFrom,
		}
	}

	newState, err := s.resolveTarget(ctx, tx, botID, transition.Target)
	if err != nil {
		return nil, err
	}

	// Optimistic write: the version predicate rejects a stale read. A miss
	// means another worker moved the bot since our load.
	n, err := tx.Bot.Update().
		Where(bot.ID(botID), bot.Version(b.Version)).
		SetState(newState).
		SetVersion(b.Version + 1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to write bot state: %w", err)
	}
	if n == 0 {
		return nil, errStaleVersion
	}

	// Re-read inside the same transaction. A mismatch here means a writer
	// in this process bypassed the version check; report, never mask.
	check, err := tx.Bot.Get(ctx, botID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read bot state: %w", err)
	}
	if check.State != newState {
		return nil, fmt.Errorf("bot %s: wrote '%s' but observed '%s': %w",
			botID, newState.APICode(), check.State.APICode(), ErrConcurrentStateOverwrite)
	}

	eventMetadata := cloneMetadata(metadata)

	if err := s.runEnteringHooks(ctx, tx, b, kind, newState, eventMetadata); err != nil {
		return nil, err
	}

	if !oldState.IsPostMeeting() && newState.IsPostMeeting() {
		if err := s.finalizeMeeting(ctx, tx, b, kind, eventMetadata); err != nil {
			return nil, err
		}
	}

	event, err := tx.BotEvent.Create().
		SetID(ids.New(ids.PrefixBotEvent)).
		SetBotID(botID).
		SetOldState(oldState).
		SetNewState(newState).
		SetEventKind(kind).
		SetNillableEventSubKind(subKind).
		SetMetadata(eventMetadata).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append bot event: %w", err)
	}

	payload := map[string]interface{}{
		"event_type":     string(kind),
		"event_sub_type": subKindCode(subKind),
		"event_metadata": eventMetadata,
		"old_state":      oldState.APICode(),
		"new_state":      newState.APICode(),
		"created_at":     event.CreatedAt.UTC().Format(time.RFC3339),
	}
	attempts, err := s.webhooks.EmitTx(ctx, tx, lifecycle.TriggerBotStateChange,
		WebhookSubject{ProjectID: b.ProjectID, BotID: &botID}, payload)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	s.logger.InfoContext(ctx, "bot transitioned",
		"bot_id", botID,
		"event_kind", kind,
		"old_state", oldState.APICode(),
		"new_state", newState.APICode())

	return &applyOutcome{event: event, attempts: attempts, meetingURL: b.MeetingURL}, nil
}

// resolveTarget computes the destination state, consulting the bot's last
// event for history-dependent targets (breakout-room re-entry).
func (s *BotService) resolveTarget(ctx context.Context, tx *ent.Tx, botID string, target lifecycle.Target) (lifecycle.BotState, error) {
	var last *lifecycle.LastEvent
	if target.Kind == lifecycle.TargetFromLastEvent {
		prev, err := tx.BotEvent.Query().
			Where(botevent.BotID(botID)).
			Order(ent.Desc(botevent.FieldCreatedAt)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return 0, fmt.Errorf("failed to load last event: %w", err)
		}
		if prev != nil {
			last = &lifecycle.LastEvent{Kind: prev.EventKind, OldState: prev.OldState}
		}
	}
	return target.Resolve(last)
}

// runEnteringHooks executes the per-state hooks after the state write.
// Breakout re-entry events land in JOINED_RECORDING without a pending
// recording, so they skip the start assertion.
func (s *BotService) runEnteringHooks(ctx context.Context, tx *ent.Tx, b *ent.Bot, kind lifecycle.EventKind, newState lifecycle.BotState, metadata map[string]interface{}) error {
	switch newState {
	case lifecycle.StateStaged:
		return s.assertStagedJoinAt(b, metadata)
	case lifecycle.StateJoinedRecording, lifecycle.StateConnected:
		if kind == lifecycle.EventBotJoinedBreakoutRoom || kind == lifecycle.EventBotLeftBreakoutRoom {
			return nil
		}
		return s.recordings.StartPending(ctx, tx, b.ID, newState)
	case lifecycle.StateJoinedRecordingPaused:
		return s.recordings.PauseActive(ctx, tx, b.ID, newState, false)
	case lifecycle.StateJoinedRecordingPermissionDenied:
		return s.recordings.PauseActive(ctx, tx, b.ID, newState, true)
	case lifecycle.StateDataDeleted:
		return s.purgeBotData(ctx, tx, b.ID)
	}
	return nil
}

// assertStagedJoinAt requires the staging event to carry the bot's
// scheduled join time, protecting against staging a rescheduled bot.
func (s *BotService) assertStagedJoinAt(b *ent.Bot, metadata map[string]interface{}) error {
	if b.JoinAt == nil {
		return NewValidationError("join_at", "bot has no scheduled join time")
	}
	raw, ok := metadata["join_at"].(string)
	if !ok {
		return NewValidationError("join_at", "staging event must carry the scheduled join time")
	}
	claimed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return NewValidationError("join_at", "not a valid RFC 3339 timestamp")
	}
	if !claimed.Equal(*b.JoinAt) {
		return NewValidationError("join_at", fmt.Sprintf(
			"staging event join time %s does not match scheduled %s",
			claimed.UTC().Format(time.RFC3339), b.JoinAt.UTC().Format(time.RFC3339)))
	}
	return nil
}

// finalizeMeeting runs on the transition that crosses into a post-meeting
// state: terminate open recordings, record the measured duration, and debit
// credits unless the meeting ended in a fatal error.
func (s *BotService) finalizeMeeting(ctx context.Context, tx *ent.Tx, b *ent.Bot, kind lifecycle.EventKind, metadata map[string]interface{}) error {
	reasons, err := s.recordings.Terminate(ctx, tx, b.ID)
	if err != nil {
		return err
	}
	if len(reasons) > 0 {
		metadata["transcription_failure_reasons"] = reasons
	}

	duration := lifecycle.DurationSeconds(b.FirstHeartbeatTimestamp, b.LastHeartbeatTimestamp)
	metadata["bot_duration_seconds"] = duration

	if kind == lifecycle.EventFatalError || !s.billingEnabled {
		return nil
	}

	centicredits := lifecycle.CenticreditsForDuration(duration)
	metadata["credits_consumed"] = lifecycle.CreditsForCenticredits(centicredits)
	if centicredits == 0 {
		return nil
	}

	proj, err := tx.Project.Query().
		Where(project.ID(b.ProjectID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load project for billing: %w", err)
	}

	botID := b.ID
	_, err = s.credits.CreateTransactionTx(ctx, tx, TransactionParams{
		OrganizationID:    proj.OrganizationID,
		DeltaCenticredits: -centicredits,
		BotID:             &botID,
		Description:       fmt.Sprintf("meeting usage for bot %s (%ds)", b.ID, duration),
	})
	if err != nil {
		return err
	}
	return nil
}

func subKindCode(subKind *lifecycle.EventSubKind) interface{} {
	if subKind == nil {
		return nil
	}
	return string(*subKind)
}

func cloneMetadata(metadata map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(metadata)+3)
	for k, v := range metadata {
		out[k] = v
	}
	return out
}
