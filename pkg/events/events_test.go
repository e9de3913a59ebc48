package events

import (
	"context"
	stdsql "database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	testdb "github.com/stenobot-io/stenobot/test/database"
	"github.com/stenobot-io/stenobot/test/util"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// chanWaker funnels dispatch nudges into a channel.
type chanWaker struct {
	woken chan struct{}
}

func (w *chanWaker) NotifyPending(ctx context.Context) {
	select {
	case w.woken <- struct{}{}:
	default:
	}
}

func TestNotifyRoundTrip(t *testing.T) {
	// Schemas do not scope NOTIFY; publisher and listener share the database
	// regardless of which test schema each connection defaults to.
	client := testdb.NewTestClient(t)
	connString := util.GetBaseConnectionString(t)
	ctx := context.Background()

	waker := &chanWaker{woken: make(chan struct{}, 1)}
	listener := NewNotifyListener(connString, waker, testLogger())
	listener.Start(ctx)
	defer listener.Stop()

	publisher := NewPublisher(client.DB(), testLogger())

	// The listener connects asynchronously; retry the publish until the
	// nudge lands or the deadline passes.
	deadline := time.After(10 * time.Second)
	for {
		publisher.NotifyPending(ctx)
		select {
		case <-waker.woken:
			return
		case <-deadline:
			t.Fatal("listener never received the dispatch nudge")
		case <-time.After(200 * time.Millisecond):
		}
	}
}

func TestNotifyListener_StopWithoutStart(t *testing.T) {
	listener := NewNotifyListener("postgres://unused", &chanWaker{woken: make(chan struct{}, 1)}, testLogger())
	// Must not panic or block.
	listener.Stop()
}

func TestNotifyListener_StopUnblocksBadConnString(t *testing.T) {
	listener := NewNotifyListener("postgres://127.0.0.1:1/none", &chanWaker{woken: make(chan struct{}, 1)}, testLogger())
	listener.Start(context.Background())

	done := make(chan struct{})
	go func() {
		listener.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Stop did not return while the listener was retrying")
	}
}

func TestPublisher_NotifyPendingSwallowsErrors(t *testing.T) {
	db, err := stdsql.Open("pgx", "postgres://127.0.0.1:1/none")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	publisher := NewPublisher(db, testLogger())
	// Best-effort: a failed NOTIFY is logged, never surfaced.
	publisher.NotifyPending(context.Background())
}
