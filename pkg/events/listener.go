package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

// Waker receives dispatch nudges; the webhook dispatcher implements it.
type Waker interface {
	NotifyPending(ctx context.Context)
}

// NotifyListener holds a dedicated pgx connection LISTENing on the dispatch
// channel and wakes the local dispatcher on each notification. The receive
// loop is the sole user of the connection.
type NotifyListener struct {
	connString string
	waker      Waker
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
	logger     *slog.Logger
}

// NewNotifyListener creates a listener. connString is the database DSN; the
// listener opens its own connection because LISTEN pins one.
func NewNotifyListener(connString string, waker Waker, logger *slog.Logger) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		waker:      waker,
		logger:     logger.With("component", "notify_listener"),
	}
}

// Start begins the receive loop. Connection failures retry with a flat
// delay; the dispatcher's poll loop covers the gaps.
func (l *NotifyListener) Start(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()
	l.logger.Info("notify listener started", "channel", DispatchChannel)
}

// Stop cancels the receive loop and waits for it to exit.
func (l *NotifyListener) Stop() {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}
	l.logger.Info("notify listener stopped")
}

func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			l.logger.Warn("listen connect failed, retrying", "error", err)
			if !sleepCtx(ctx, 5*time.Second) {
				return
			}
			continue
		}

		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{DispatchChannel}.Sanitize()); err != nil {
			l.logger.Warn("LISTEN failed, retrying", "error", err)
			_ = conn.Close(ctx)
			if !sleepCtx(ctx, 5*time.Second) {
				return
			}
			continue
		}

		for {
			if _, err := conn.WaitForNotification(ctx); err != nil {
				if ctx.Err() != nil {
					_ = conn.Close(context.Background())
					return
				}
				l.logger.Warn("notification wait failed, reconnecting", "error", err)
				_ = conn.Close(ctx)
				break
			}
			l.waker.NotifyPending(ctx)
		}
	}
}

// sleepCtx waits for d or context cancellation; false means cancelled.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
