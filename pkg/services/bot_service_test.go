package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/botevent"
	"github.com/stenobot-io/stenobot/ent/recording"
	"github.com/stenobot-io/stenobot/pkg/ids"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
	testdb "github.com/stenobot-io/stenobot/test/database"
)

func TestBotService_CreateBot(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	t.Run("creates ready bot with initial recording", func(t *testing.T) {
		b, err := svc.CreateBot(ctx, CreateBotParams{
			ProjectID:  proj.ID,
			MeetingURL: "https://meet.example.com/abc",
		})
		require.NoError(t, err)
		assert.Equal(t, lifecycle.StateReady, b.State)
		assert.Equal(t, lifecycle.SessionKindBot, b.SessionKind)
		assert.True(t, ids.HasPrefix(b.ID, ids.PrefixBot))
		assert.Equal(t, "Notetaker", b.Name)

		recs, err := client.Recording.Query().
			Where(recording.BotID(b.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, lifecycle.RecordingNotStarted, recs[0].State)
		assert.Equal(t, lifecycle.RecordingKindAudioVideo, recs[0].RecordingKind)
		assert.Equal(t, lifecycle.TranscriptionKindNone, recs[0].TranscriptionKind)
	})

	t.Run("join_at makes the bot scheduled", func(t *testing.T) {
		joinAt := time.Now().Add(2 * time.Hour)
		b, err := svc.CreateBot(ctx, CreateBotParams{
			ProjectID:  proj.ID,
			MeetingURL: "https://meet.example.com/later",
			JoinAt:     &joinAt,
		})
		require.NoError(t, err)
		assert.Equal(t, lifecycle.StateScheduled, b.State)
	})

	t.Run("app session gets app prefix and state graph", func(t *testing.T) {
		b, err := svc.CreateBot(ctx, CreateBotParams{
			ProjectID:   proj.ID,
			MeetingURL:  "https://zoom.us/j/123",
			SessionKind: lifecycle.SessionKindAppSession,
		})
		require.NoError(t, err)
		assert.True(t, ids.HasPrefix(b.ID, ids.PrefixAppSession))
	})

	t.Run("duplicate deduplication key among live bots is rejected", func(t *testing.T) {
		key := "dedup-1"
		_, err := svc.CreateBot(ctx, CreateBotParams{
			ProjectID:        proj.ID,
			MeetingURL:       "https://meet.example.com/x",
			DeduplicationKey: &key,
		})
		require.NoError(t, err)

		_, err = svc.CreateBot(ctx, CreateBotParams{
			ProjectID:        proj.ID,
			MeetingURL:       "https://meet.example.com/x",
			DeduplicationKey: &key,
		})
		require.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("deduplication key is reusable after the bot reaches a terminal state", func(t *testing.T) {
		key := "dedup-2"
		first, err := svc.CreateBot(ctx, CreateBotParams{
			ProjectID:        proj.ID,
			MeetingURL:       "https://meet.example.com/y",
			DeduplicationKey: &key,
		})
		require.NoError(t, err)

		mustApply(t, svc, first.ID, lifecycle.EventFatalError, subKindPtr(lifecycle.SubKindBotNotLaunched))

		_, err = svc.CreateBot(ctx, CreateBotParams{
			ProjectID:        proj.ID,
			MeetingURL:       "https://meet.example.com/y",
			DeduplicationKey: &key,
		})
		require.NoError(t, err)
	})

	t.Run("missing meeting url is a validation error", func(t *testing.T) {
		_, err := svc.CreateBot(ctx, CreateBotParams{ProjectID: proj.ID})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestBotService_ApplyEvent_HappyPath(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)

	event := mustApply(t, svc, b.ID, lifecycle.EventJoinRequested, nil)
	assert.Equal(t, lifecycle.StateReady, event.OldState)
	assert.Equal(t, lifecycle.StateJoining, event.NewState)

	mustApply(t, svc, b.ID, lifecycle.EventBotJoinedMeeting, nil)
	mustApply(t, svc, b.ID, lifecycle.EventBotRecordingPermissionGranted, nil)

	// Permission grant promotes the recording.
	rec, err := client.Recording.Query().Where(recording.BotID(b.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RecordingInProgress, rec.State)
	require.NotNil(t, rec.StartedAt)

	// Simulate the media upload before leaving.
	_, err = client.Recording.UpdateOneID(rec.ID).
		SetMediaBlobID(ids.New(ids.PrefixBlob)).
		Save(ctx)
	require.NoError(t, err)

	mustApply(t, svc, b.ID, lifecycle.EventLeaveRequested, subKindPtr(lifecycle.SubKindUserRequested))
	mustApply(t, svc, b.ID, lifecycle.EventBotLeftMeeting, nil)
	mustApply(t, svc, b.ID, lifecycle.EventPostProcessingCompleted, nil)

	loaded, err := svc.GetBot(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StateEnded, loaded.State)

	// The recording completed because media was uploaded.
	rec, err = client.Recording.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RecordingComplete, rec.State)
	require.NotNil(t, rec.CompletedAt)
}

func TestBotService_ApplyEvent_EventHistory(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)
	driveToJoinedRecording(t, svc, b.ID)

	count, err := client.BotEvent.Query().
		Where(botevent.BotID(b.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Each event chains old_state -> new_state without gaps.
	events, err := client.BotEvent.Query().
		Where(botevent.BotID(b.ID)).
		Order(ent.Asc(botevent.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)
	for i := 1; i < len(events); i++ {
		assert.Equal(t, events[i-1].NewState, events[i].OldState)
	}

	// The version advanced once per transition.
	loaded, err := svc.GetBot(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), loaded.Version)
}

func TestBotService_ApplyEvent_IllegalTransition(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)

	_, err := svc.ApplyEvent(ctx, b.ID, lifecycle.EventRecordingPaused, nil, nil)
	require.Error(t, err)
	assert.True(t, IsIllegalTransition(err))
	// Error text quotes API codes, never numeric storage codes.
	assert.Contains(t, err.Error(), "ready")
	assert.Contains(t, err.Error(), "joined_recording")
	assert.NotContains(t, err.Error(), "state '1'")

	// Nothing was written.
	loaded, err := svc.GetBot(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StateReady, loaded.State)
	assert.Equal(t, int64(0), loaded.Version)

	count, err := client.BotEvent.Query().Where(botevent.BotID(b.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestBotService_ApplyEvent_Taxonomy(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)

	t.Run("fatal_error without subkind is rejected", func(t *testing.T) {
		_, err := svc.ApplyEvent(ctx, b.ID, lifecycle.EventFatalError, nil, nil)
		require.Error(t, err)
		assert.True(t, IsInvalidEventCombination(err))
	})

	t.Run("subkind on a plain event is rejected", func(t *testing.T) {
		_, err := svc.ApplyEvent(ctx, b.ID, lifecycle.EventJoinRequested,
			subKindPtr(lifecycle.SubKindUserRequested), nil)
		require.Error(t, err)
		assert.True(t, IsInvalidEventCombination(err))
	})

	t.Run("wrong subkind set for the kind is rejected", func(t *testing.T) {
		_, err := svc.ApplyEvent(ctx, b.ID, lifecycle.EventFatalError,
			subKindPtr(lifecycle.SubKindUserRequested), nil)
		require.Error(t, err)
		assert.True(t, IsInvalidEventCombination(err))
	})

	t.Run("unknown event kind", func(t *testing.T) {
		_, err := svc.ApplyEvent(ctx, b.ID, lifecycle.EventKind("made_up"), nil, nil)
		require.ErrorIs(t, err, ErrUndefinedEventKind)
	})

	t.Run("leave_requested tolerates a null subkind", func(t *testing.T) {
		bot2 := createTestBot(t, svc, proj.ID)
		driveToJoinedRecording(t, svc, bot2.ID)
		_, err := svc.ApplyEvent(ctx, bot2.ID, lifecycle.EventLeaveRequested, nil, nil)
		require.NoError(t, err)
	})
}

func TestBotService_ApplyEvent_BreakoutRoomReentry(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)
	driveToJoinedRecording(t, svc, b.ID)

	mustApply(t, svc, b.ID, lifecycle.EventBotBeganJoiningBreakoutRoom, nil)
	event := mustApply(t, svc, b.ID, lifecycle.EventBotJoinedBreakoutRoom, nil)

	// Re-entry resolves to the joined state held before the breakout room.
	assert.Equal(t, lifecycle.StateJoinedRecording, event.NewState)

	// The recording hook is skipped on re-entry: the recording is already
	// in progress, and asserting a pending one would break the invariant.
	rec, err := client.Recording.Query().Where(recording.BotID(b.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RecordingInProgress, rec.State)

	// Same for leaving the breakout room.
	mustApply(t, svc, b.ID, lifecycle.EventBotBeganLeavingBreakoutRoom, nil)
	event = mustApply(t, svc, b.ID, lifecycle.EventBotLeftBreakoutRoom, nil)
	assert.Equal(t, lifecycle.StateJoinedRecording, event.NewState)
}

func TestBotService_ApplyEvent_PauseResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)
	driveToJoinedRecording(t, svc, b.ID)

	rec, err := client.Recording.Query().Where(recording.BotID(b.ID)).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec.StartedAt)
	firstStart := *rec.StartedAt

	mustApply(t, svc, b.ID, lifecycle.EventRecordingPaused, nil)
	rec, err = client.Recording.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RecordingPaused, rec.State)

	mustApply(t, svc, b.ID, lifecycle.EventRecordingResumed, nil)
	rec, err = client.Recording.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RecordingInProgress, rec.State)

	// started_at is stamped on first start only, not on resume.
	require.NotNil(t, rec.StartedAt)
	assert.True(t, rec.StartedAt.Equal(firstStart))
}

func TestBotService_ApplyEvent_PermissionDenied(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)
	driveToJoinedRecording(t, svc, b.ID)

	event := mustApply(t, svc, b.ID, lifecycle.EventBotRecordingPermissionDenied,
		subKindPtr(lifecycle.SubKindHostDeniedPermission))
	assert.Equal(t, lifecycle.StateJoinedRecordingPermissionDenied, event.NewState)

	rec, err := client.Recording.Query().Where(recording.BotID(b.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RecordingPaused, rec.State)

	// Re-grant resumes recording.
	event = mustApply(t, svc, b.ID, lifecycle.EventBotRecordingPermissionGranted, nil)
	assert.Equal(t, lifecycle.StateJoinedRecording, event.NewState)
	rec, err = client.Recording.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RecordingInProgress, rec.State)
}

func TestBotService_ApplyEvent_BillingOnMeetingEnd(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	credits := NewCreditService(client.Client, testLogger())
	_, err := credits.CreateTransaction(ctx, TransactionParams{
		OrganizationID:    org.ID,
		DeltaCenticredits: 1000,
		Description:       "initial grant",
	})
	require.NoError(t, err)

	b := createTestBot(t, svc, proj.ID)
	driveToJoinedRecording(t, svc, b.ID)

	// One hour of measured uptime.
	now := time.Now().Unix()
	_, err = client.Bot.UpdateOneID(b.ID).
		SetFirstHeartbeatTimestamp(now - 3600).
		SetLastHeartbeatTimestamp(now).
		Save(ctx)
	require.NoError(t, err)

	mustApply(t, svc, b.ID, lifecycle.EventLeaveRequested, subKindPtr(lifecycle.SubKindUserRequested))
	mustApply(t, svc, b.ID, lifecycle.EventBotLeftMeeting, nil)
	event := mustApply(t, svc, b.ID, lifecycle.EventPostProcessingCompleted, nil)

	// The terminal event carries the measured duration and the debit.
	stored, err := client.BotEvent.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3600, stored.Metadata["bot_duration_seconds"])
	assert.EqualValues(t, 1.0, stored.Metadata["credits_consumed"])

	// 3600s at 100 centicredits/hour.
	balance, err := credits.Balance(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(900), balance)

	// The debit joined the ledger chain under the grant.
	txs, err := client.CreditTransaction.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 2)
}

func TestBotService_ApplyEvent_MinimumBilledDuration(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)
	driveToJoinedRecording(t, svc, b.ID)

	// A single heartbeat: first == last floors to 30 billed seconds.
	now := time.Now().Unix()
	_, err := client.Bot.UpdateOneID(b.ID).
		SetFirstHeartbeatTimestamp(now).
		SetLastHeartbeatTimestamp(now).
		Save(ctx)
	require.NoError(t, err)

	mustApply(t, svc, b.ID, lifecycle.EventMeetingEnded, nil)
	event := mustApply(t, svc, b.ID, lifecycle.EventPostProcessingCompleted, nil)

	stored, err := client.BotEvent.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 30, stored.Metadata["bot_duration_seconds"])
	// ceil(30 * 100 / 3600) = 1 centicredit = 0.01 credits.
	assert.EqualValues(t, 0.01, stored.Metadata["credits_consumed"])

	balance, err := NewCreditService(client.Client, testLogger()).Balance(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), balance)
}

func TestBotService_ApplyEvent_FatalErrorSkipsBilling(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)
	driveToJoinedRecording(t, svc, b.ID)

	now := time.Now().Unix()
	_, err := client.Bot.UpdateOneID(b.ID).
		SetFirstHeartbeatTimestamp(now - 1800).
		SetLastHeartbeatTimestamp(now).
		Save(ctx)
	require.NoError(t, err)

	event := mustApply(t, svc, b.ID, lifecycle.EventFatalError,
		subKindPtr(lifecycle.SubKindProcessTerminated))
	assert.Equal(t, lifecycle.StateFatalError, event.NewState)

	// Duration is recorded but no credits are consumed.
	stored, err := client.BotEvent.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1800, stored.Metadata["bot_duration_seconds"])
	_, billed := stored.Metadata["credits_consumed"]
	assert.False(t, billed)

	count, err := client.CreditTransaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// The open recording failed: no media was uploaded.
	rec, err := client.Recording.Query().Where(recording.BotID(b.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RecordingFailed, rec.State)
}

func TestBotService_ApplyEvent_Staged(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	joinAt := time.Now().Add(10 * time.Minute).Truncate(time.Second)
	b, err := svc.CreateBot(ctx, CreateBotParams{
		ProjectID:  proj.ID,
		MeetingURL: "https://meet.example.com/sched",
		JoinAt:     &joinAt,
	})
	require.NoError(t, err)

	t.Run("staging without the scheduled time is rejected", func(t *testing.T) {
		_, err := svc.ApplyEvent(ctx, b.ID, lifecycle.EventStaged, nil, nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("staging with a mismatched time is rejected", func(t *testing.T) {
		_, err := svc.ApplyEvent(ctx, b.ID, lifecycle.EventStaged, nil, map[string]interface{}{
			"join_at": joinAt.Add(time.Hour).UTC().Format(time.RFC3339),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("staging with the scheduled time succeeds", func(t *testing.T) {
		event, err := svc.ApplyEvent(ctx, b.ID, lifecycle.EventStaged, nil, map[string]interface{}{
			"join_at": joinAt.UTC().Format(time.RFC3339),
		})
		require.NoError(t, err)
		assert.Equal(t, lifecycle.StateStaged, event.NewState)
	})
}

func TestBotService_ApplyEvent_DataDeleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)
	driveToJoinedRecording(t, svc, b.ID)

	rec, err := client.Recording.Query().Where(recording.BotID(b.ID)).Only(ctx)
	require.NoError(t, err)
	_, err = client.Recording.UpdateOneID(rec.ID).
		SetMediaBlobID(ids.New(ids.PrefixBlob)).
		Save(ctx)
	require.NoError(t, err)

	// Meeting content that must be purged.
	_, err = client.Participant.Create().
		SetID(ids.New(ids.PrefixParticipant)).
		SetBotID(b.ID).
		SetPlatformUUID("platform-uuid-1").
		SetFullName("Alice Example").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ChatMessage.Create().
		SetID(ids.New(ids.PrefixChatMessage)).
		SetBotID(b.ID).
		SetText("hello").
		SetTimestampMs(1000).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Utterance.Create().
		SetID(ids.New(ids.PrefixTranscription)).
		SetRecordingID(rec.ID).
		SetTimestampMs(0).
		SetDurationMs(1500).
		SetTranscription(map[string]interface{}{"text": "hello there"}).
		Save(ctx)
	require.NoError(t, err)

	mustApply(t, svc, b.ID, lifecycle.EventMeetingEnded, nil)
	mustApply(t, svc, b.ID, lifecycle.EventPostProcessingCompleted, nil)
	event := mustApply(t, svc, b.ID, lifecycle.EventDataDeleted, nil)
	assert.Equal(t, lifecycle.StateDataDeleted, event.NewState)

	// Meeting content is gone; the media pointer is cleared.
	participants, err := client.Participant.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, participants)
	messages, err := client.ChatMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, messages)
	utterances, err := client.Utterance.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, utterances)

	rec, err = client.Recording.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, rec.MediaBlobID)

	// The audit trail survives: every event row is still there.
	events, err := client.BotEvent.Query().Where(botevent.BotID(b.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, events)

	// Deleting twice is an illegal transition, not silent success.
	_, err = svc.ApplyEvent(ctx, b.ID, lifecycle.EventDataDeleted, nil, nil)
	require.Error(t, err)
	assert.True(t, IsIllegalTransition(err))
}

func TestBotService_ApplyEvent_AppSessionGraph(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b, err := svc.CreateBot(ctx, CreateBotParams{
		ProjectID:   proj.ID,
		MeetingURL:  "https://zoom.us/j/456",
		SessionKind: lifecycle.SessionKindAppSession,
	})
	require.NoError(t, err)

	mustApply(t, svc, b.ID, lifecycle.EventConnectRequested, nil)
	event := mustApply(t, svc, b.ID, lifecycle.EventBotConnected, nil)
	assert.Equal(t, lifecycle.StateConnected, event.NewState)

	// Connecting starts the recording, same as joining a meeting.
	rec, err := client.Recording.Query().Where(recording.BotID(b.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RecordingInProgress, rec.State)

	mustApply(t, svc, b.ID, lifecycle.EventDisconnectRequested, nil)
	event = mustApply(t, svc, b.ID, lifecycle.EventBotDisconnected, nil)
	assert.Equal(t, lifecycle.StatePostProcessing, event.NewState)
}

func TestBotService_ApplyEvent_NotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)

	_, err := svc.ApplyEvent(context.Background(), "bot_0000000000000000",
		lifecycle.EventJoinRequested, nil, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBotService_ApplyEvent_ConcurrentWorkersSingleWinner(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)

	// Several workers race the same event against the same ready bot.
	// Exactly one transition commits; the others retry, re-read the new
	// state, and fail the transition lookup.
	const workers = 4
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ApplyEvent(ctx, b.ID, lifecycle.EventJoinRequested, nil, nil)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i, err := range errs {
		if err == nil {
			winners++
			continue
		}
		assert.True(t, IsIllegalTransition(err), "worker %d: %v", i, err)
	}
	assert.Equal(t, 1, winners)

	stored, err := client.Bot.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StateJoining, stored.State)
	assert.Equal(t, int64(1), stored.Version)

	// The losers left no trace: one event row, one state-change fanout pass.
	events, err := client.BotEvent.Query().Where(botevent.BotID(b.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, events)
}
