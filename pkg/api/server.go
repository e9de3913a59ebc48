// Package api exposes the HTTP surface: the project-scoped public API, the
// internal media adapter callbacks, and health.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stenobot-io/stenobot/pkg/database"
	"github.com/stenobot-io/stenobot/pkg/services"
)

// Server represents the API server
type Server struct {
	db          *database.Client
	bots        *services.BotService
	webhooks    *services.WebhookService
	credentials *services.CredentialService
	meetingData *services.MeetingDataService
}

// NewServer creates a new API server
func NewServer(db *database.Client, bots *services.BotService, webhooks *services.WebhookService, creds *services.CredentialService, meetingData *services.MeetingDataService) *Server {
	return &Server{
		db:          db,
		bots:        bots,
		webhooks:    webhooks,
		credentials: creds,
		meetingData: meetingData,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1")
	v1.Use(RequireAPIKey(s.db.Client))
	{
		v1.POST("/bots", s.CreateBot)
		v1.GET("/bots", s.ListBots)
		v1.GET("/bots/:bot_id", s.GetBot)
		v1.POST("/bots/:bot_id/leave", s.LeaveBot)
		// DELETE is an alias for leave: customers never hard-delete a bot,
		// retention does.
		v1.DELETE("/bots/:bot_id", s.LeaveBot)
		v1.GET("/bots/:bot_id/events", s.ListBotEvents)

		v1.POST("/webhook_subscriptions", s.CreateSubscription)
		v1.GET("/webhook_subscriptions", s.ListSubscriptions)
		v1.DELETE("/webhook_subscriptions/:subscription_id", s.DeleteSubscription)
		v1.POST("/webhook_subscriptions/:subscription_id/test", s.TestSubscription)

		v1.PUT("/credentials/:credential_kind", s.SetCredential)
		v1.GET("/credentials/:credential_kind", s.GetCredential)
		v1.DELETE("/credentials/:credential_kind", s.DeleteCredential)
	}

	internal := r.Group("/internal/v1")
	{
		internal.POST("/bots/:bot_id/events", s.ApplyEvent)
		internal.POST("/bots/:bot_id/heartbeat", s.SetHeartbeat)
		internal.POST("/bots/:bot_id/request_taken", s.RecordRequestTaken)
		internal.POST("/bots/:bot_id/participant_events", s.RecordParticipantEvent)
		internal.POST("/bots/:bot_id/chat_messages", s.RecordChatMessage)
	}

	return r
}

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
