package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenobot-io/stenobot/pkg/lifecycle"
	testdb "github.com/stenobot-io/stenobot/test/database"
)

func TestBotService_SetHeartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)

	require.NoError(t, svc.SetHeartbeat(ctx, b.ID))

	loaded, err := svc.GetBot(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.FirstHeartbeatTimestamp)
	require.NotNil(t, loaded.LastHeartbeatTimestamp)
	assert.Equal(t, *loaded.FirstHeartbeatTimestamp, *loaded.LastHeartbeatTimestamp)
	first := *loaded.FirstHeartbeatTimestamp

	// Later heartbeats move last only; first is immutable once set.
	_, err = client.Bot.UpdateOneID(b.ID).
		SetLastHeartbeatTimestamp(first - 100). // will be overwritten
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.SetHeartbeat(ctx, b.ID))

	loaded, err = svc.GetBot(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, first, *loaded.FirstHeartbeatTimestamp)
	assert.GreaterOrEqual(t, *loaded.LastHeartbeatTimestamp, first)

	// Each heartbeat bumps the version like any other durable write.
	assert.GreaterOrEqual(t, loaded.Version, int64(2))
}

func TestBotService_SetHeartbeat_NotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)

	err := svc.SetHeartbeat(context.Background(), "bot_0000000000000000")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBotService_RecordRequestTaken(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestBotService(t, client)
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	ctx := context.Background()

	b := createTestBot(t, svc, proj.ID)

	t.Run("no action in flight in ready", func(t *testing.T) {
		_, err := svc.RecordRequestTaken(ctx, b.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	mustApply(t, svc, b.ID, lifecycle.EventJoinRequested, nil)

	t.Run("stamps the join request", func(t *testing.T) {
		event, err := svc.RecordRequestTaken(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.EventJoinRequested, event.EventKind)
		require.NotNil(t, event.RequestedActionTakenAt)
	})

	t.Run("double stamp is rejected", func(t *testing.T) {
		_, err := svc.RecordRequestTaken(ctx, b.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
