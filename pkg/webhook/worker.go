package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
	"github.com/stenobot-io/stenobot/pkg/config"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// ErrNoAttemptsDue signals an empty poll; the worker sleeps until the next
// interval or nudge.
var ErrNoAttemptsDue = errors.New("no delivery attempts due")

// maxStoredResponseBody bounds what we keep of each response for debugging.
const maxStoredResponseBody = 4096

// Worker is a single delivery worker. It claims due attempts with
// FOR UPDATE SKIP LOCKED, performs the HTTP request outside the claim
// transaction, and finalizes the attempt row.
type Worker struct {
	id         string
	client     *ent.Client
	config     *config.DispatchConfig
	httpClient *http.Client
	wakeCh     <-chan struct{}
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	logger     *slog.Logger
}

// NewWorker creates a delivery worker. wakeCh carries dispatch nudges shared
// across the pool.
func NewWorker(id string, client *ent.Client, cfg *config.DispatchConfig, wakeCh <-chan struct{}, logger *slog.Logger) *Worker {
	return &Worker{
		id:     id,
		client: client,
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		wakeCh: wakeCh,
		stopCh: make(chan struct{}),
		logger: logger.With("worker_id", id),
	}
}

// Start begins the worker loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish. Safe to call
// multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	w.logger.Info("delivery worker started")

	for {
		select {
		case <-w.stopCh:
			w.logger.Info("delivery worker shutting down")
			return
		case <-ctx.Done():
			w.logger.Info("context cancelled, delivery worker shutting down")
			return
		default:
			if err := w.deliverNext(ctx); err != nil {
				if errors.Is(err, ErrNoAttemptsDue) {
					w.sleep(w.config.PollInterval)
					continue
				}
				w.logger.Error("delivery error", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the poll interval, a nudge, or shutdown.
func (w *Worker) sleep(d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-w.stopCh:
	case <-w.wakeCh:
	case <-timer.C:
	}
}

// deliverNext claims one due attempt and delivers it.
func (w *Worker) deliverNext(ctx context.Context) error {
	attempt, err := w.claimNextAttempt(ctx)
	if err != nil {
		return err
	}

	sub, err := attempt.QuerySubscription().Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load subscription for attempt %s: %w", attempt.ID, err)
	}
	proj, err := sub.QueryProject().Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load project for subscription %s: %w", sub.ID, err)
	}

	status, responseBody := w.post(ctx, sub.URL, proj.WebhookSecret, attempt)
	return w.finalize(ctx, attempt, status, responseBody)
}

// claimNextAttempt atomically claims the next due pending attempt using
// FOR UPDATE SKIP LOCKED, stamping last_attempted_at and bumping the
// counter so a crashed worker's claim ages out of the due window.
func (w *Worker) claimNextAttempt(ctx context.Context) (*ent.WebhookDeliveryAttempt, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	attempt, err := tx.WebhookDeliveryAttempt.Query().
		Where(
			webhookdeliveryattempt.StatusEQ(lifecycle.DeliveryPending),
			webhookdeliveryattempt.Or(
				webhookdeliveryattempt.NextAttemptAtIsNil(),
				webhookdeliveryattempt.NextAttemptAtLTE(now),
			),
		).
		Order(ent.Asc(webhookdeliveryattempt.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoAttemptsDue
		}
		return nil, fmt.Errorf("failed to query due attempts: %w", err)
	}

	attempt, err = attempt.Update().
		SetAttemptCount(attempt.AttemptCount + 1).
		SetLastAttemptedAt(now).
		SetNextAttemptAt(now.Add(w.config.RequestTimeout + w.config.BackoffBase)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	// Detach the entity from the committed transaction so traversals below
	// run on the base client.
	return attempt.Unwrap(), nil
}

// post performs the signed HTTP request. Returns the HTTP status (0 on
// transport error) and a truncated response body or error description.
func (w *Worker) post(ctx context.Context, url, secret string, attempt *ent.WebhookDeliveryAttempt) (int, string) {
	body, err := CanonicalJSON(attempt.Payload)
	if err != nil {
		return 0, fmt.Sprintf("payload marshal failed: %v", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, w.config.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Sprintf("request build failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderIdempotencyKey, attempt.IdempotencyKey)
	req.Header.Set(HeaderSignature, Sign(secret, body))
	req.Header.Set(HeaderTrigger, attempt.Trigger.APICode())

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Sprintf("request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxStoredResponseBody))
	return resp.StatusCode, string(respBody)
}

// finalize writes the outcome of one delivery attempt: success on 2xx,
// otherwise schedule the next retry at base * 2^(attempts-1) or mark the
// attempt terminally failed once the budget is spent.
func (w *Worker) finalize(ctx context.Context, attempt *ent.WebhookDeliveryAttempt, httpStatus int, responseBody string) error {
	now := time.Now()
	upd := w.client.WebhookDeliveryAttempt.UpdateOneID(attempt.ID)

	if httpStatus >= 200 && httpStatus < 300 {
		upd.SetStatus(lifecycle.DeliverySuccess).
			SetSucceededAt(now).
			ClearNextAttemptAt()
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("failed to mark attempt succeeded: %w", err)
		}
		w.logger.Info("webhook delivered",
			"attempt_id", attempt.ID, "trigger", attempt.Trigger.APICode(),
			"attempts", attempt.AttemptCount)
		return nil
	}

	bodies := append(attempt.ResponseBodies,
		fmt.Sprintf("attempt %d: status %d: %s", attempt.AttemptCount, httpStatus, responseBody))
	upd.SetResponseBodies(bodies)

	if attempt.AttemptCount >= w.config.MaxAttempts {
		upd.SetStatus(lifecycle.DeliveryFailure).
			ClearNextAttemptAt()
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("failed to mark attempt failed: %w", err)
		}
		w.logger.Warn("webhook delivery exhausted",
			"attempt_id", attempt.ID, "trigger", attempt.Trigger.APICode(),
			"attempts", attempt.AttemptCount)
		return nil
	}

	upd.SetNextAttemptAt(now.Add(w.backoff(attempt.AttemptCount)))
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("failed to schedule retry: %w", err)
	}
	return nil
}

// backoff computes the delay before retry n+1: base * 2^(n-1), capped.
func (w *Worker) backoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := w.config.BackoffBase
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= w.config.BackoffCap {
			return w.config.BackoffCap
		}
	}
	if d > w.config.BackoffCap {
		return w.config.BackoffCap
	}
	return d
}
