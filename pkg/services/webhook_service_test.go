package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
	"github.com/stenobot-io/stenobot/pkg/database"
	"github.com/stenobot-io/stenobot/pkg/ids"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
	testdb "github.com/stenobot-io/stenobot/test/database"
)

func createTestSubscription(t *testing.T, client *database.Client, projectID string, botID *string, triggers ...lifecycle.TriggerKind) *ent.WebhookSubscription {
	t.Helper()
	sub, err := client.WebhookSubscription.Create().
		SetID(ids.New(ids.PrefixWebhook)).
		SetProjectID(projectID).
		SetURL("https://hooks.example.com/receive").
		SetTriggers(triggers).
		SetNillableBotID(botID).
		Save(context.Background())
	require.NoError(t, err)
	return sub
}

func TestSubscriptionMatches(t *testing.T) {
	botA := "bot_aaaaaaaaaaaaaaaa"
	botB := "bot_bbbbbbbbbbbbbbbb"

	projectWide := &ent.WebhookSubscription{
		Triggers: []lifecycle.TriggerKind{lifecycle.TriggerBotStateChange},
	}
	botScoped := &ent.WebhookSubscription{
		BotID:    &botA,
		Triggers: []lifecycle.TriggerKind{lifecycle.TriggerBotStateChange},
	}
	otherTrigger := &ent.WebhookSubscription{
		Triggers: []lifecycle.TriggerKind{lifecycle.TriggerTranscriptUpdate},
	}

	assert.True(t, subscriptionMatches(projectWide, lifecycle.TriggerBotStateChange, &botA))
	assert.True(t, subscriptionMatches(projectWide, lifecycle.TriggerBotStateChange, nil))
	assert.True(t, subscriptionMatches(botScoped, lifecycle.TriggerBotStateChange, &botA))
	assert.False(t, subscriptionMatches(botScoped, lifecycle.TriggerBotStateChange, &botB))
	assert.False(t, subscriptionMatches(botScoped, lifecycle.TriggerBotStateChange, nil))
	assert.False(t, subscriptionMatches(otherTrigger, lifecycle.TriggerBotStateChange, &botA))
}

func TestWebhookService_Emit(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWebhookService(client.Client, nil, testLogger())
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	botID := "bot_cccccccccccccccc"

	matching := createTestSubscription(t, client, proj.ID, nil, lifecycle.TriggerBotStateChange)
	createTestSubscription(t, client, proj.ID, nil, lifecycle.TriggerTranscriptUpdate)
	otherBot := "bot_dddddddddddddddd"
	createTestSubscription(t, client, proj.ID, &otherBot, lifecycle.TriggerBotStateChange)

	attempts, err := svc.Emit(ctx, lifecycle.TriggerBotStateChange,
		WebhookSubject{ProjectID: proj.ID, BotID: &botID},
		map[string]interface{}{"new_state": "joining"})
	require.NoError(t, err)
	require.Len(t, attempts, 1)

	attempt := attempts[0]
	assert.Equal(t, matching.ID, attempt.SubscriptionID)
	assert.Equal(t, lifecycle.DeliveryPending, attempt.Status)
	assert.Equal(t, lifecycle.TriggerBotStateChange, attempt.Trigger)
	assert.NotEmpty(t, attempt.IdempotencyKey)
	require.NotNil(t, attempt.BotID)
	assert.Equal(t, botID, *attempt.BotID)
	assert.Equal(t, 0, attempt.AttemptCount)
}

func TestWebhookService_Emit_InactiveSubscriptionSkipped(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWebhookService(client.Client, nil, testLogger())
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	sub := createTestSubscription(t, client, proj.ID, nil, lifecycle.TriggerBotStateChange)
	_, err := client.WebhookSubscription.UpdateOneID(sub.ID).
		SetIsActive(false).
		Save(ctx)
	require.NoError(t, err)

	attempts, err := svc.Emit(ctx, lifecycle.TriggerBotStateChange,
		WebhookSubject{ProjectID: proj.ID}, map[string]interface{}{})
	require.NoError(t, err)
	assert.Empty(t, attempts)
}

func TestWebhookService_Emit_InvalidTrigger(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWebhookService(client.Client, nil, testLogger())

	_, err := svc.Emit(context.Background(), lifecycle.TriggerKind(99),
		WebhookSubject{ProjectID: "proj_x"}, map[string]interface{}{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestWebhookService_StateChangeAttemptsEnqueuedWithTransition(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	createTestSubscription(t, client, proj.ID, nil, lifecycle.TriggerBotStateChange)
	b := createTestBot(t, svc, proj.ID)

	mustApply(t, svc, b.ID, lifecycle.EventJoinRequested, nil)

	attempts, err := client.WebhookDeliveryAttempt.Query().
		Where(webhookdeliveryattempt.BotID(b.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 1)

	payload := attempts[0].Payload
	assert.Equal(t, "join_requested", payload["event_type"])
	assert.Equal(t, "ready", payload["old_state"])
	assert.Equal(t, "joining", payload["new_state"])
	assert.Nil(t, payload["event_sub_type"])
}
