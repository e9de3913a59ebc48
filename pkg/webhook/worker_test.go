package webhook

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/pkg/config"
	"github.com/stenobot-io/stenobot/pkg/database"
	"github.com/stenobot-io/stenobot/pkg/ids"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
	testdb "github.com/stenobot-io/stenobot/test/database"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDispatchConfig() *config.DispatchConfig {
	cfg := config.DefaultDispatchConfig()
	cfg.PollInterval = 50 * time.Millisecond
	cfg.RequestTimeout = 2 * time.Second
	return cfg
}

const testWebhookSecret = "whsec_worker_test"

// enqueueAttempt seeds a project, a subscription pointed at url, and one
// pending delivery attempt.
func enqueueAttempt(t *testing.T, client *database.Client, url string) *ent.WebhookDeliveryAttempt {
	t.Helper()
	ctx := context.Background()

	org, err := client.Organization.Create().
		SetID(uuid.New().String()).
		SetName("Test Org").
		Save(ctx)
	require.NoError(t, err)
	proj, err := client.Project.Create().
		SetID(ids.New(ids.PrefixProject)).
		SetOrganizationID(org.ID).
		SetName("Test Project").
		SetWebhookSecret(testWebhookSecret).
		Save(ctx)
	require.NoError(t, err)
	sub, err := client.WebhookSubscription.Create().
		SetID(ids.New(ids.PrefixWebhook)).
		SetProjectID(proj.ID).
		SetURL(url).
		SetTriggers([]lifecycle.TriggerKind{lifecycle.TriggerBotStateChange}).
		Save(ctx)
	require.NoError(t, err)

	attempt, err := client.WebhookDeliveryAttempt.Create().
		SetID(uuid.New().String()).
		SetSubscriptionID(sub.ID).
		SetTrigger(lifecycle.TriggerBotStateChange).
		SetIdempotencyKey(uuid.New().String()).
		SetPayload(map[string]interface{}{"new_state": "joining", "old_state": "ready"}).
		SetStatus(lifecycle.DeliveryPending).
		Save(ctx)
	require.NoError(t, err)
	return attempt
}

func TestWorker_DeliverSuccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	type received struct {
		body      []byte
		signature string
		idemKey   string
		trigger   string
	}
	got := make(chan received, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- received{
			body:      body,
			signature: r.Header.Get(HeaderSignature),
			idemKey:   r.Header.Get(HeaderIdempotencyKey),
			trigger:   r.Header.Get(HeaderTrigger),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	attempt := enqueueAttempt(t, client, server.URL)
	w := NewWorker("test-0", client.Client, testDispatchConfig(), make(chan struct{}), testLogger())

	require.NoError(t, w.deliverNext(ctx))

	r := <-got
	assert.True(t, VerifySignature(testWebhookSecret, r.body, r.signature))
	assert.Equal(t, attempt.IdempotencyKey, r.idemKey)
	assert.Equal(t, "bot.state_change", r.trigger)
	assert.JSONEq(t, `{"new_state":"joining","old_state":"ready"}`, string(r.body))

	stored, err := client.WebhookDeliveryAttempt.Get(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.DeliverySuccess, stored.Status)
	assert.Equal(t, 1, stored.AttemptCount)
	require.NotNil(t, stored.SucceededAt)
	assert.Nil(t, stored.NextAttemptAt)
}

func TestWorker_FailureSchedulesRetry(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusInternalServerError)
	}))
	defer server.Close()

	attempt := enqueueAttempt(t, client, server.URL)
	cfg := testDispatchConfig()
	w := NewWorker("test-0", client.Client, cfg, make(chan struct{}), testLogger())

	require.NoError(t, w.deliverNext(ctx))

	stored, err := client.WebhookDeliveryAttempt.Get(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.DeliveryPending, stored.Status)
	assert.Equal(t, 1, stored.AttemptCount)
	require.Len(t, stored.ResponseBodies, 1)
	assert.Contains(t, stored.ResponseBodies[0], "status 500")
	assert.Contains(t, stored.ResponseBodies[0], "upstream broken")

	// First retry lands roughly BackoffBase out.
	require.NotNil(t, stored.NextAttemptAt)
	delay := time.Until(*stored.NextAttemptAt)
	assert.Greater(t, delay, cfg.BackoffBase-10*time.Second)
	assert.LessOrEqual(t, delay, cfg.BackoffBase+time.Minute)
}

func TestWorker_ExhaustedAttemptsFailTerminally(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	attempt := enqueueAttempt(t, client, server.URL)
	cfg := testDispatchConfig()
	cfg.MaxAttempts = 1
	w := NewWorker("test-0", client.Client, cfg, make(chan struct{}), testLogger())

	require.NoError(t, w.deliverNext(ctx))

	stored, err := client.WebhookDeliveryAttempt.Get(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.DeliveryFailure, stored.Status)
	assert.Nil(t, stored.NextAttemptAt)

	// A terminally failed attempt is never claimed again.
	require.ErrorIs(t, w.deliverNext(ctx), ErrNoAttemptsDue)
}

func TestWorker_ScheduledAttemptsAreNotDueEarly(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	attempt := enqueueAttempt(t, client, "http://127.0.0.1:0/unused")
	_, err := client.WebhookDeliveryAttempt.UpdateOneID(attempt.ID).
		SetNextAttemptAt(time.Now().Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	w := NewWorker("test-0", client.Client, testDispatchConfig(), make(chan struct{}), testLogger())
	require.ErrorIs(t, w.deliverNext(ctx), ErrNoAttemptsDue)
}

func TestWorker_NoAttemptsDue(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWorker("test-0", client.Client, testDispatchConfig(), make(chan struct{}), testLogger())
	require.ErrorIs(t, w.deliverNext(context.Background()), ErrNoAttemptsDue)
}

func TestWorker_Backoff(t *testing.T) {
	cfg := config.DefaultDispatchConfig() // base 30s, cap 1h
	w := NewWorker("test-0", nil, cfg, make(chan struct{}), testLogger())

	assert.Equal(t, 30*time.Second, w.backoff(0))
	assert.Equal(t, 30*time.Second, w.backoff(1))
	assert.Equal(t, 60*time.Second, w.backoff(2))
	assert.Equal(t, 2*time.Minute, w.backoff(3))
	assert.Equal(t, 16*time.Minute, w.backoff(6))
	assert.Equal(t, 32*time.Minute, w.backoff(7))
	assert.Equal(t, time.Hour, w.backoff(8))
	assert.Equal(t, time.Hour, w.backoff(50))
}

func TestDispatcher_EndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	delivered := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivered <- struct{}{}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	attempt := enqueueAttempt(t, client, server.URL)

	cfg := testDispatchConfig()
	cfg.WorkerCount = 2
	d := NewDispatcher(client.Client, cfg, testLogger())
	d.Start(ctx)
	defer d.Stop()

	d.NotifyPending(ctx)

	select {
	case <-delivered:
	case <-time.After(5 * time.Second):
		t.Fatal("delivery did not happen in time")
	}

	require.Eventually(t, func() bool {
		stored, err := client.WebhookDeliveryAttempt.Get(ctx, attempt.ID)
		return err == nil && stored.Status == lifecycle.DeliverySuccess
	}, 5*time.Second, 50*time.Millisecond)
}
