package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/pkg/database"
	"github.com/stenobot-io/stenobot/pkg/ids"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupTestBotService builds a full transition engine against the test
// database, with billing enabled and no alert sink.
func setupTestBotService(t *testing.T, client *database.Client) *BotService {
	t.Helper()
	logger := testLogger()
	recordings := NewRecordingService(logger)
	credits := NewCreditService(client.Client, logger)
	webhooks := NewWebhookService(client.Client, nil, logger)
	return NewBotService(client.Client, recordings, credits, webhooks, nil, true, logger)
}

func createTestOrganization(t *testing.T, client *database.Client) *ent.Organization {
	t.Helper()
	org, err := client.Organization.Create().
		SetID(uuid.New().String()).
		SetName("Test Org").
		Save(context.Background())
	require.NoError(t, err)
	return org
}

func createTestProject(t *testing.T, client *database.Client, organizationID string) *ent.Project {
	t.Helper()
	proj, err := client.Project.Create().
		SetID(ids.New(ids.PrefixProject)).
		SetOrganizationID(organizationID).
		SetName("Test Project").
		SetWebhookSecret("whsec_test_secret").
		Save(context.Background())
	require.NoError(t, err)
	return proj
}

// createTestBot creates a bot in READY through the service, so the initial
// recording row exists like in production.
func createTestBot(t *testing.T, svc *BotService, projectID string) *ent.Bot {
	t.Helper()
	b, err := svc.CreateBot(context.Background(), CreateBotParams{
		ProjectID:  projectID,
		MeetingURL: "https://meet.example.com/abc-defg-hij",
	})
	require.NoError(t, err)
	return b
}

// mustApply applies an event and fails the test on any error.
func mustApply(t *testing.T, svc *BotService, botID string, kind lifecycle.EventKind, subKind *lifecycle.EventSubKind) *ent.BotEvent {
	t.Helper()
	event, err := svc.ApplyEvent(context.Background(), botID, kind, subKind, nil)
	require.NoError(t, err)
	return event
}

// driveToJoinedRecording walks a fresh READY bot to JOINED_RECORDING.
func driveToJoinedRecording(t *testing.T, svc *BotService, botID string) {
	t.Helper()
	mustApply(t, svc, botID, lifecycle.EventJoinRequested, nil)
	mustApply(t, svc, botID, lifecycle.EventBotJoinedMeeting, nil)
	mustApply(t, svc, botID, lifecycle.EventBotRecordingPermissionGranted, nil)
}

func subKindPtr(k lifecycle.EventSubKind) *lifecycle.EventSubKind {
	return &k
}

func strPtr(s string) *string {
	return &s
}
