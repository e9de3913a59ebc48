package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/webhooksubscription"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// WebhookSubject identifies the domain object a webhook payload is about.
// Exactly one of the optional ids is set, matching the trigger kind.
type WebhookSubject struct {
	ProjectID              string
	BotID                  *string
	CalendarID             *string
	ZoomOAuthConnectionID  *string
}

// DispatchNotifier nudges the delivery worker that new pending attempts
// exist, so dispatch latency is not bounded by the poll interval.
type DispatchNotifier interface {
	NotifyPending(ctx context.Context)
}

// WebhookService fans a payload out to the matching subscriptions by
// inserting pending delivery attempts. The delivery worker picks them up
// asynchronously.
type WebhookService struct {
	client   *ent.Client
	notifier DispatchNotifier
	logger   *slog.Logger
}

// NewWebhookService creates a new WebhookService. notifier may be nil; the
// delivery worker then relies on polling alone.
func NewWebhookService(client *ent.Client, notifier DispatchNotifier, logger *slog.Logger) *WebhookService {
	return &WebhookService{
		client:   client,
		notifier: notifier,
		logger:   logger.With("service", "webhook"),
	}
}

// Emit inserts delivery attempts outside any caller transaction.
func (s *WebhookService) Emit(ctx context.Context, trigger lifecycle.TriggerKind, subject WebhookSubject, payload map[string]interface{}) ([]*ent.WebhookDeliveryAttempt, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	attempts, err := s.EmitTx(ctx, tx, trigger, subject, payload)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit delivery attempts: %w", err)
	}
	s.Nudge(ctx, attempts)
	return attempts, nil
}

// EmitTx inserts delivery attempts inside the caller's transaction, so they
// commit atomically with the change that caused them. The caller must call
// Nudge after a successful commit.
func (s *WebhookService) EmitTx(ctx context.Context, tx *ent.Tx, trigger lifecycle.TriggerKind, subject WebhookSubject, payload map[string]interface{}) ([]*ent.WebhookDeliveryAttempt, error) {
	if !trigger.Valid() {
		return nil, NewValidationError("trigger", fmt.Sprintf("unknown trigger kind %d", trigger))
	}

	subs, err := tx.WebhookSubscription.Query().
		Where(
			webhooksubscription.ProjectID(subject.ProjectID),
			webhooksubscription.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}

	var attempts []*ent.WebhookDeliveryAttempt
	for _, sub := range subs {
		if !subscriptionMatches(sub, trigger, subject.BotID) {
			continue
		}

		attempt, err := tx.WebhookDeliveryAttempt.Create().
			SetID(uuid.New().String()).
			SetSubscriptionID(sub.ID).
			SetTrigger(trigger).
			SetIdempotencyKey(uuid.New().String()).
			SetPayload(payload).
			SetStatus(lifecycle.DeliveryPending).
			SetNillableBotID(subject.BotID).
			SetNillableCalendarID(subject.CalendarID).
			SetNillableZoomOauthConnectionID(subject.ZoomOAuthConnectionID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create delivery attempt for subscription %s: %w", sub.ID, err)
		}
		attempts = append(attempts, attempt)
	}

	if len(attempts) > 0 {
		s.logger.InfoContext(ctx, "delivery attempts enqueued",
			"trigger", trigger.APICode(), "project_id", subject.ProjectID, "count", len(attempts))
	}
	return attempts, nil
}

// Nudge wakes the delivery worker when attempts were enqueued.
func (s *WebhookService) Nudge(ctx context.Context, attempts []*ent.WebhookDeliveryAttempt) {
	if s.notifier != nil && len(attempts) > 0 {
		s.notifier.NotifyPending(ctx)
	}
}

// subscriptionMatches reports whether the subscription carries the trigger
// and its scope covers the subject: project-wide subscriptions match every
// bot, bot-scoped ones match only their own.
func subscriptionMatches(sub *ent.WebhookSubscription, trigger lifecycle.TriggerKind, botID *string) bool {
	if sub.BotID != nil {
		if botID == nil || *sub.BotID != *botID {
			return false
		}
	}
	for _, t := range sub.Triggers {
		if t == trigger {
			return true
		}
	}
	return false
}
