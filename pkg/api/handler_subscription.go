package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/webhooksubscription"
	"github.com/stenobot-io/stenobot/pkg/ids"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
	"github.com/stenobot-io/stenobot/pkg/services"
)

// CreateSubscription handles POST /api/v1/webhook_subscriptions.
func (s *Server) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Triggers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one trigger is required"})
		return
	}

	triggers := make([]lifecycle.TriggerKind, 0, len(req.Triggers))
	for _, code := range req.Triggers {
		kind, ok := lifecycle.TriggerKindFromAPICode(code)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown trigger %q", code)})
			return
		}
		triggers = append(triggers, kind)
	}

	if req.BotID != nil {
		b, err := s.bots.GetBot(c.Request.Context(), *req.BotID)
		if err != nil || b.ProjectID != projectID(c) {
			respondServiceError(c, services.ErrNotFound)
			return
		}
	}

	sub, err := s.db.WebhookSubscription.Create().
		SetID(ids.New(ids.PrefixWebhook)).
		SetProjectID(projectID(c)).
		SetURL(req.URL).
		SetTriggers(triggers).
		SetNillableBotID(req.BotID).
		Save(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renderSubscription(sub))
}

// ListSubscriptions handles GET /api/v1/webhook_subscriptions.
func (s *Server) ListSubscriptions(c *gin.Context) {
	subs, err := s.db.WebhookSubscription.Query().
		Where(webhooksubscription.ProjectID(projectID(c))).
		Order(ent.Asc(webhooksubscription.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, renderSubscription(sub))
	}
	c.JSON(http.StatusOK, gin.H{"webhook_subscriptions": out})
}

// DeleteSubscription handles DELETE /api/v1/webhook_subscriptions/:subscription_id.
// Subscriptions deactivate rather than delete so their delivery history
// keeps a valid parent.
func (s *Server) DeleteSubscription(c *gin.Context) {
	n, err := s.db.WebhookSubscription.Update().
		Where(
			webhooksubscription.ID(c.Param("subscription_id")),
			webhooksubscription.ProjectID(projectID(c)),
		).
		SetIsActive(false).
		Save(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if n == 0 {
		respondServiceError(c, services.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// TestSubscription handles POST /api/v1/webhook_subscriptions/:subscription_id/test:
// enqueues a synthetic bot.state_change delivery so subscribers can verify
// their endpoint and signature handling.
func (s *Server) TestSubscription(c *gin.Context) {
	sub, err := s.db.WebhookSubscription.Query().
		Where(
			webhooksubscription.ID(c.Param("subscription_id")),
			webhooksubscription.ProjectID(projectID(c)),
		).
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			respondServiceError(c, services.ErrNotFound)
			return
		}
		respondServiceError(c, err)
		return
	}

	payload := map[string]interface{}{
		"test":    true,
		"nonce":   uuid.New().String(),
		"trigger": lifecycle.TriggerBotStateChange.APICode(),
	}
	attempts, err := s.webhooks.Emit(c.Request.Context(), lifecycle.TriggerBotStateChange,
		services.WebhookSubject{ProjectID: sub.ProjectID, BotID: sub.BotID}, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"enqueued": len(attempts)})
}
