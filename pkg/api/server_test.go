package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/pkg/credentials"
	"github.com/stenobot-io/stenobot/pkg/database"
	"github.com/stenobot-io/stenobot/pkg/ids"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
	"github.com/stenobot-io/stenobot/pkg/services"
	testdb "github.com/stenobot-io/stenobot/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	client  *database.Client
	router  *gin.Engine
	bots    *services.BotService
	project *ent.Project
	token   string
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	org, err := client.Organization.Create().
		SetID(uuid.New().String()).
		SetName("Test Org").
		Save(ctx)
	require.NoError(t, err)
	proj, err := client.Project.Create().
		SetID(ids.New(ids.PrefixProject)).
		SetOrganizationID(org.ID).
		SetName("Test Project").
		SetWebhookSecret("whsec_api_test").
		Save(ctx)
	require.NoError(t, err)

	token := "sk_test_" + uuid.New().String()
	_, err = client.APIKey.Create().
		SetID(ids.New(ids.PrefixAPIKey)).
		SetProjectID(proj.ID).
		SetName("test key").
		SetTokenDigest(DigestToken(token)).
		Save(ctx)
	require.NoError(t, err)

	key := make([]byte, credentials.KeySize)
	_, err = rand.Read(key)
	require.NoError(t, err)
	box, err := credentials.NewBox(key)
	require.NoError(t, err)

	recordings := services.NewRecordingService(logger)
	creditsSvc := services.NewCreditService(client.Client, logger)
	webhooks := services.NewWebhookService(client.Client, nil, logger)
	creds := services.NewCredentialService(client.Client, box, logger)
	bots := services.NewBotService(client.Client, recordings, creditsSvc, webhooks, nil, true, logger)
	meetingData := services.NewMeetingDataService(client.Client, webhooks, logger)

	server := NewServer(client, bots, webhooks, creds, meetingData)
	return &testEnv{
		client:  client,
		router:  server.Router(),
		bots:    bots,
		project: proj,
		token:   token,
	}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAPI_Auth(t *testing.T) {
	env := setupTestServer(t)

	t.Run("missing token", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/webhook_subscriptions", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/webhook_subscriptions", nil, "sk_test_bogus")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/webhook_subscriptions", nil, env.token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("disabled key is rejected", func(t *testing.T) {
		ctx := context.Background()
		disabled := "sk_test_disabled"
		key, err := env.client.APIKey.Create().
			SetID(ids.New(ids.PrefixAPIKey)).
			SetProjectID(env.project.ID).
			SetName("revoked").
			SetTokenDigest(DigestToken(disabled)).
			Save(ctx)
		require.NoError(t, err)
		_, err = env.client.APIKey.UpdateOneID(key.ID).SetDisabledAt(key.CreatedAt).Save(ctx)
		require.NoError(t, err)

		w := env.request(t, http.MethodGet, "/api/v1/webhook_subscriptions", nil, disabled)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAPI_CreateAndGetBot(t *testing.T) {
	env := setupTestServer(t)

	w := env.request(t, http.MethodPost, "/api/v1/bots", map[string]interface{}{
		"meeting_url": "https://meet.example.com/abc",
		"bot_name":    "Minutes Bot",
	}, env.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode(t, w)
	assert.Equal(t, "ready", created["state"])
	assert.Equal(t, "Minutes Bot", created["bot_name"])
	botID, _ := created["id"].(string)
	assert.True(t, ids.HasPrefix(botID, ids.PrefixBot))

	w = env.request(t, http.MethodGet, "/api/v1/bots/"+botID, nil, env.token)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, botID, got["id"])
	assert.Equal(t, "ready", got["state"])
}

func TestAPI_CreateBot_Validation(t *testing.T) {
	env := setupTestServer(t)

	t.Run("missing meeting url", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/bots", map[string]interface{}{
			"bot_name": "No URL",
		}, env.token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown session kind", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/bots", map[string]interface{}{
			"meeting_url":  "https://meet.example.com/abc",
			"session_kind": "hologram",
		}, env.token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("two transcription providers", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/bots", map[string]interface{}{
			"meeting_url": "https://meet.example.com/abc",
			"transcription_settings": map[string]interface{}{
				"deepgram": map[string]interface{}{},
				"openai":   map[string]interface{}{},
			},
		}, env.token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate deduplication key", func(t *testing.T) {
		body := map[string]interface{}{
			"meeting_url":       "https://meet.example.com/dup",
			"deduplication_key": "api-dup",
		}
		w := env.request(t, http.MethodPost, "/api/v1/bots", body, env.token)
		require.Equal(t, http.StatusCreated, w.Code)
		w = env.request(t, http.MethodPost, "/api/v1/bots", body, env.token)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAPI_LeaveBot(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	b, err := env.bots.CreateBot(ctx, services.CreateBotParams{
		ProjectID:  env.project.ID,
		MeetingURL: "https://meet.example.com/leave",
	})
	require.NoError(t, err)
	_, err = env.bots.ApplyEvent(ctx, b.ID, lifecycle.EventJoinRequested, nil, nil)
	require.NoError(t, err)
	_, err = env.bots.ApplyEvent(ctx, b.ID, lifecycle.EventBotJoinedMeeting, nil, nil)
	require.NoError(t, err)

	w := env.request(t, http.MethodPost, "/api/v1/bots/"+b.ID+"/leave", nil, env.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	event := decode(t, w)
	assert.Equal(t, "leaving", event["new_state"])
	// The default leave reason is user_requested; the API never emits a
	// null sub kind for new leave requests.
	assert.Equal(t, "user_requested", event["event_sub_kind"])

	// Leaving twice is a state conflict.
	w = env.request(t, http.MethodPost, "/api/v1/bots/"+b.ID+"/leave", nil, env.token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAPI_ListBotEvents(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	b, err := env.bots.CreateBot(ctx, services.CreateBotParams{
		ProjectID:  env.project.ID,
		MeetingURL: "https://meet.example.com/events",
	})
	require.NoError(t, err)
	_, err = env.bots.ApplyEvent(ctx, b.ID, lifecycle.EventJoinRequested, nil, nil)
	require.NoError(t, err)
	_, err = env.bots.ApplyEvent(ctx, b.ID, lifecycle.EventBotJoinedMeeting, nil, nil)
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/api/v1/bots/"+b.ID+"/events", nil, env.token)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Events []BotEventResponse `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Events, 2)
	assert.Equal(t, "ready", out.Events[0].OldState)
	assert.Equal(t, "joining", out.Events[0].NewState)
	assert.Equal(t, "joined_not_recording", out.Events[1].NewState)
}

func TestAPI_ForeignBotReadsNotFound(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	// A second tenant.
	otherOrg, err := env.client.Organization.Create().
		SetID(uuid.New().String()).
		SetName("Other Org").
		Save(ctx)
	require.NoError(t, err)
	otherProj, err := env.client.Project.Create().
		SetID(ids.New(ids.PrefixProject)).
		SetOrganizationID(otherOrg.ID).
		SetName("Other Project").
		SetWebhookSecret("whsec_other").
		Save(ctx)
	require.NoError(t, err)
	otherToken := "sk_test_other"
	_, err = env.client.APIKey.Create().
		SetID(ids.New(ids.PrefixAPIKey)).
		SetProjectID(otherProj.ID).
		SetName("other key").
		SetTokenDigest(DigestToken(otherToken)).
		Save(ctx)
	require.NoError(t, err)

	b, err := env.bots.CreateBot(ctx, services.CreateBotParams{
		ProjectID:  env.project.ID,
		MeetingURL: "https://meet.example.com/private",
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/api/v1/bots/"+b.ID, nil, otherToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_InternalEventCallback(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	b, err := env.bots.CreateBot(ctx, services.CreateBotParams{
		ProjectID:  env.project.ID,
		MeetingURL: "https://meet.example.com/internal",
	})
	require.NoError(t, err)

	t.Run("applies an event", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/internal/v1/bots/"+b.ID+"/events",
			map[string]interface{}{"event_kind": "join_requested"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		event := decode(t, w)
		assert.Equal(t, "joining", event["new_state"])
	})

	t.Run("illegal transition is a conflict", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/internal/v1/bots/"+b.ID+"/events",
			map[string]interface{}{"event_kind": "recording_paused"}, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid combination is a bad request", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/internal/v1/bots/"+b.ID+"/events",
			map[string]interface{}{"event_kind": "fatal_error"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("heartbeat", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/internal/v1/bots/"+b.ID+"/heartbeat", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("request taken", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/internal/v1/bots/"+b.ID+"/request_taken", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		event := decode(t, w)
		assert.Equal(t, "join_requested", event["event_kind"])
	})
}

func TestAPI_Subscriptions(t *testing.T) {
	env := setupTestServer(t)

	t.Run("create", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/webhook_subscriptions", map[string]interface{}{
			"url":      "https://hooks.example.com/sink",
			"triggers": []string{"bot.state_change", "transcript.update"},
		}, env.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		sub := decode(t, w)
		assert.ElementsMatch(t, []interface{}{"bot.state_change", "transcript.update"}, sub["triggers"])
		assert.Equal(t, true, sub["is_active"])
	})

	t.Run("unknown trigger", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/webhook_subscriptions", map[string]interface{}{
			"url":      "https://hooks.example.com/sink",
			"triggers": []string{"bot.becomes_sentient"},
		}, env.token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list and deactivate", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/webhook_subscriptions", nil, env.token)
		require.Equal(t, http.StatusOK, w.Code)
		var out struct {
			Subscriptions []SubscriptionResponse `json:"webhook_subscriptions"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.NotEmpty(t, out.Subscriptions)

		subID := out.Subscriptions[0].ID
		w = env.request(t, http.MethodDelete, "/api/v1/webhook_subscriptions/"+subID, nil, env.token)
		assert.Equal(t, http.StatusNoContent, w.Code)

		// Deactivated, not deleted: history keeps its parent row.
		stored, err := env.client.WebhookSubscription.Get(context.Background(), subID)
		require.NoError(t, err)
		assert.False(t, stored.IsActive)
	})

	t.Run("delete unknown", func(t *testing.T) {
		w := env.request(t, http.MethodDelete, "/api/v1/webhook_subscriptions/webhook_0000000000000000", nil, env.token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAPI_Credentials(t *testing.T) {
	env := setupTestServer(t)

	value := map[string]interface{}{"client_id": "zoom-app", "client_secret": "hunter2"}

	w := env.request(t, http.MethodPut, "/api/v1/credentials/zoom_oauth",
		map[string]interface{}{"value": value}, env.token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = env.request(t, http.MethodGet, "/api/v1/credentials/zoom_oauth", nil, env.token)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, value, got["value"])

	w = env.request(t, http.MethodDelete, "/api/v1/credentials/zoom_oauth", nil, env.token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/credentials/zoom_oauth", nil, env.token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_ListBots(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	for _, url := range []string{"https://meet.example.com/a", "https://meet.example.com/b"} {
		_, err := env.bots.CreateBot(ctx, services.CreateBotParams{
			ProjectID:  env.project.ID,
			MeetingURL: url,
		})
		require.NoError(t, err)
	}

	w := env.request(t, http.MethodGet, "/api/v1/bots", nil, env.token)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Bots []BotResponse `json:"bots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Bots, 2)
	for _, b := range out.Bots {
		assert.Equal(t, "ready", b.State)
		assert.Equal(t, env.project.ID, b.ProjectID)
	}
}

func TestAPI_DeleteBotIsLeave(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	b, err := env.bots.CreateBot(ctx, services.CreateBotParams{
		ProjectID:  env.project.ID,
		MeetingURL: "https://meet.example.com/del",
	})
	require.NoError(t, err)
	_, err = env.bots.ApplyEvent(ctx, b.ID, lifecycle.EventJoinRequested, nil, nil)
	require.NoError(t, err)
	_, err = env.bots.ApplyEvent(ctx, b.ID, lifecycle.EventBotJoinedMeeting, nil, nil)
	require.NoError(t, err)

	w := env.request(t, http.MethodDelete, "/api/v1/bots/"+b.ID, nil, env.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	event := decode(t, w)
	assert.Equal(t, "leaving", event["new_state"])
}

func TestAPI_MeetingDataCallbacks(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	b, err := env.bots.CreateBot(ctx, services.CreateBotParams{
		ProjectID:  env.project.ID,
		MeetingURL: "https://meet.example.com/data",
	})
	require.NoError(t, err)
	_, err = env.bots.ApplyEvent(ctx, b.ID, lifecycle.EventJoinRequested, nil, nil)
	require.NoError(t, err)
	_, err = env.bots.ApplyEvent(ctx, b.ID, lifecycle.EventBotJoinedMeeting, nil, nil)
	require.NoError(t, err)

	t.Run("participant event", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/internal/v1/bots/"+b.ID+"/participant_events",
			map[string]interface{}{
				"platform_uuid": "uuid-1",
				"full_name":     "Ada Lovelace",
				"kind":          "join",
				"timestamp_ms":  1000,
			}, "")
		assert.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	t.Run("participant event missing kind", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/internal/v1/bots/"+b.ID+"/participant_events",
			map[string]interface{}{"platform_uuid": "uuid-1"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("chat message", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/internal/v1/bots/"+b.ID+"/chat_messages",
			map[string]interface{}{
				"sender_platform_uuid": "uuid-1",
				"text":                 "hello",
				"timestamp_ms":         1500,
			}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decode(t, w)
		id, _ := body["id"].(string)
		assert.True(t, ids.HasPrefix(id, ids.PrefixChatMessage))
	})

	t.Run("unknown bot", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/internal/v1/bots/bot_0000000000000000/chat_messages",
			map[string]interface{}{"text": "hello"}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAPI_Health(t *testing.T) {
	env := setupTestServer(t)
	w := env.request(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
}
