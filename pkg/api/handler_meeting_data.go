package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stenobot-io/stenobot/pkg/services"
)

// RecordParticipantEvent handles POST /internal/v1/bots/:bot_id/participant_events.
func (s *Server) RecordParticipantEvent(c *gin.Context) {
	var req ParticipantEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.meetingData.RecordParticipantEvent(c.Request.Context(), c.Param("bot_id"), services.ParticipantEventParams{
		PlatformUUID: req.PlatformUUID,
		FullName:     req.FullName,
		IsHost:       req.IsHost,
		Kind:         req.Kind,
		TimestampMS:  req.TimestampMS,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordChatMessage handles POST /internal/v1/bots/:bot_id/chat_messages.
func (s *Server) RecordChatMessage(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := s.meetingData.RecordChatMessage(c.Request.Context(), c.Param("bot_id"), services.ChatMessageParams{
		SenderPlatformUUID: req.SenderPlatformUUID,
		Text:               req.Text,
		TimestampMS:        req.TimestampMS,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": msg.ID})
}
