package cleanup

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenobot-io/stenobot/pkg/config"
	"github.com/stenobot-io/stenobot/pkg/database"
	"github.com/stenobot-io/stenobot/pkg/ids"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
	"github.com/stenobot-io/stenobot/pkg/services"
	testdb "github.com/stenobot-io/stenobot/test/database"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupSweepTest(t *testing.T) (*database.Client, *services.BotService, string) {
	t.Helper()
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	logger := testLogger()

	org, err := client.Organization.Create().
		SetID(uuid.New().String()).
		SetName("Test Org").
		Save(ctx)
	require.NoError(t, err)
	proj, err := client.Project.Create().
		SetID(ids.New(ids.PrefixProject)).
		SetOrganizationID(org.ID).
		SetName("Test Project").
		SetWebhookSecret("whsec_cleanup_test").
		Save(ctx)
	require.NoError(t, err)

	recordings := services.NewRecordingService(logger)
	credits := services.NewCreditService(client.Client, logger)
	webhooks := services.NewWebhookService(client.Client, nil, logger)
	bots := services.NewBotService(client.Client, recordings, credits, webhooks, nil, false, logger)
	return client, bots, proj.ID
}

// createFatalBot creates a bot and drives it into FATAL_ERROR.
func createFatalBot(t *testing.T, bots *services.BotService, projectID string) string {
	t.Helper()
	ctx := context.Background()
	b, err := bots.CreateBot(ctx, services.CreateBotParams{
		ProjectID:  projectID,
		MeetingURL: "https://meet.example.com/sweep",
	})
	require.NoError(t, err)
	subKind := lifecycle.SubKindProcessTerminated
	_, err = bots.ApplyEvent(ctx, b.ID, lifecycle.EventFatalError, &subKind, nil)
	require.NoError(t, err)
	return b.ID
}

// age backdates the bot's updated_at so the sweep sees it as expired.
func age(t *testing.T, client *database.Client, botID string, d time.Duration) {
	t.Helper()
	_, err := client.Bot.UpdateOneID(botID).
		SetUpdatedAt(time.Now().Add(-d)).
		Save(context.Background())
	require.NoError(t, err)
}

func TestSweep_DeletesExpiredBots(t *testing.T) {
	client, bots, projectID := setupSweepTest(t)
	ctx := context.Background()

	expired := createFatalBot(t, bots, projectID)
	age(t, client, expired, 48*time.Hour)
	fresh := createFatalBot(t, bots, projectID)

	cfg := &config.RetentionConfig{SweepInterval: time.Hour, EndedRetention: 24 * time.Hour}
	s := NewService(cfg, client.Client, bots, testLogger())
	s.sweep(ctx)

	expiredBot, err := client.Bot.Get(ctx, expired)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StateDataDeleted, expiredBot.State)

	freshBot, err := client.Bot.Get(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StateFatalError, freshBot.State)
}

func TestSweep_IgnoresLiveBots(t *testing.T) {
	client, bots, projectID := setupSweepTest(t)
	ctx := context.Background()

	b, err := bots.CreateBot(ctx, services.CreateBotParams{
		ProjectID:  projectID,
		MeetingURL: "https://meet.example.com/live",
	})
	require.NoError(t, err)
	age(t, client, b.ID, 365*24*time.Hour)

	cfg := &config.RetentionConfig{SweepInterval: time.Hour, EndedRetention: 24 * time.Hour}
	s := NewService(cfg, client.Client, bots, testLogger())
	s.sweep(ctx)

	stored, err := client.Bot.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StateReady, stored.State)
}

func TestSweep_Idempotent(t *testing.T) {
	client, bots, projectID := setupSweepTest(t)
	ctx := context.Background()

	expired := createFatalBot(t, bots, projectID)
	age(t, client, expired, 48*time.Hour)

	cfg := &config.RetentionConfig{SweepInterval: time.Hour, EndedRetention: 24 * time.Hour}
	s := NewService(cfg, client.Client, bots, testLogger())
	s.sweep(ctx)
	// A second pass finds no transition to apply and must not error out.
	age(t, client, expired, 48*time.Hour)
	s.sweep(ctx)

	stored, err := client.Bot.Get(ctx, expired)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StateDataDeleted, stored.State)
}

func TestService_StartStop(t *testing.T) {
	client, bots, _ := setupSweepTest(t)

	cfg := &config.RetentionConfig{SweepInterval: time.Hour, EndedRetention: 24 * time.Hour}
	s := NewService(cfg, client.Client, bots, testLogger())
	s.Start(context.Background())

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
