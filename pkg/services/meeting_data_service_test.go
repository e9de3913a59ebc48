package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenobot-io/stenobot/ent/participant"
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
	testdb "github.com/stenobot-io/stenobot/test/database"
)

func TestMeetingDataService_RecordParticipantEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	b := createTestBot(t, svc, proj.ID)
	driveToJoinedRecording(t, svc, b.ID)

	createTestSubscription(t, client, proj.ID, nil,
		lifecycle.TriggerParticipantEventsJoinLeave, lifecycle.TriggerParticipantEventsAll)

	webhooks := NewWebhookService(client.Client, nil, testLogger())
	meetingData := NewMeetingDataService(client.Client, webhooks, testLogger())

	err := meetingData.RecordParticipantEvent(ctx, b.ID, ParticipantEventParams{
		PlatformUUID: "platform-uuid-1",
		FullName:     "Ada Lovelace",
		IsHost:       true,
		Kind:         "join",
		TimestampMS:  1000,
	})
	require.NoError(t, err)

	p, err := client.Participant.Query().
		Where(participant.BotID(b.ID), participant.PlatformUUID("platform-uuid-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.FullName)
	assert.True(t, p.IsHost)

	// Join events reach both the join_leave and the all trigger.
	joinLeave, err := client.WebhookDeliveryAttempt.Query().
		Where(webhookdeliveryattempt.TriggerEQ(lifecycle.TriggerParticipantEventsJoinLeave)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, joinLeave)
	all, err := client.WebhookDeliveryAttempt.Query().
		Where(webhookdeliveryattempt.TriggerEQ(lifecycle.TriggerParticipantEventsAll)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, all)

	// Re-observing the participant updates in place, no duplicate row.
	err = meetingData.RecordParticipantEvent(ctx, b.ID, ParticipantEventParams{
		PlatformUUID: "platform-uuid-1",
		FullName:     "Ada L.",
		IsHost:       false,
		Kind:         "webcam_on",
		TimestampMS:  2000,
	})
	require.NoError(t, err)

	count, err := client.Participant.Query().Where(participant.BotID(b.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	p, err = client.Participant.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", p.FullName)
	assert.False(t, p.IsHost)

	// webcam_on is not a join/leave event.
	joinLeave, err = client.WebhookDeliveryAttempt.Query().
		Where(webhookdeliveryattempt.TriggerEQ(lifecycle.TriggerParticipantEventsJoinLeave)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, joinLeave)
}

func TestMeetingDataService_RecordChatMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	b := createTestBot(t, svc, proj.ID)
	driveToJoinedRecording(t, svc, b.ID)

	createTestSubscription(t, client, proj.ID, nil, lifecycle.TriggerChatMessagesUpdate)

	webhooks := NewWebhookService(client.Client, nil, testLogger())
	meetingData := NewMeetingDataService(client.Client, webhooks, testLogger())

	require.NoError(t, meetingData.RecordParticipantEvent(ctx, b.ID, ParticipantEventParams{
		PlatformUUID: "sender-uuid",
		FullName:     "Grace Hopper",
		Kind:         "join",
	}))

	t.Run("known sender links the participant", func(t *testing.T) {
		msg, err := meetingData.RecordChatMessage(ctx, b.ID, ChatMessageParams{
			SenderPlatformUUID: strPtr("sender-uuid"),
			Text:               "hello",
			TimestampMS:        1500,
		})
		require.NoError(t, err)
		require.NotNil(t, msg.ParticipantID)

		attempts, err := client.WebhookDeliveryAttempt.Query().
			Where(webhookdeliveryattempt.TriggerEQ(lifecycle.TriggerChatMessagesUpdate)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, attempts, 1)
		assert.Equal(t, "hello", attempts[0].Payload["text"])
	})

	t.Run("unknown sender keeps the message unlinked", func(t *testing.T) {
		msg, err := meetingData.RecordChatMessage(ctx, b.ID, ChatMessageParams{
			SenderPlatformUUID: strPtr("never-seen"),
			Text:               "anonymous",
		})
		require.NoError(t, err)
		assert.Nil(t, msg.ParticipantID)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		_, err := meetingData.RecordChatMessage(ctx, b.ID, ChatMessageParams{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestMeetingDataService_RejectsDeletedBots(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	b := createTestBot(t, svc, proj.ID)

	subKind := lifecycle.SubKindProcessTerminated
	mustApply(t, svc, b.ID, lifecycle.EventFatalError, &subKind)
	mustApply(t, svc, b.ID, lifecycle.EventDataDeleted, nil)

	webhooks := NewWebhookService(client.Client, nil, testLogger())
	meetingData := NewMeetingDataService(client.Client, webhooks, testLogger())

	err := meetingData.RecordParticipantEvent(ctx, b.ID, ParticipantEventParams{
		PlatformUUID: "late-uuid",
		Kind:         "join",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = meetingData.RecordChatMessage(ctx, b.ID, ChatMessageParams{Text: "too late"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
