package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// Media adapter callbacks. These routes are reachable only on the internal
// surface; the adapters authenticate at the network layer, not with project
// API keys.

// ApplyEvent handles POST /internal/v1/bots/:bot_id/events: the single
// write path for bot state transitions.
func (s *Server) ApplyEvent(c *gin.Context) {
	var req ApplyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var subKind *lifecycle.EventSubKind
	if req.EventSubKind != nil {
		kind := lifecycle.EventSubKind(*req.EventSubKind)
		subKind = &kind
	}

	event, err := s.bots.ApplyEvent(c.Request.Context(), c.Param("bot_id"),
		lifecycle.EventKind(req.EventKind), subKind, req.Metadata)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderBotEvent(event))
}

// SetHeartbeat handles POST /internal/v1/bots/:bot_id/heartbeat.
func (s *Server) SetHeartbeat(c *gin.Context) {
	if err := s.bots.SetHeartbeat(c.Request.Context(), c.Param("bot_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordRequestTaken handles POST /internal/v1/bots/:bot_id/request_taken:
// the adapter confirms the requested action (join, leave, connect,
// disconnect) was executed on the platform.
func (s *Server) RecordRequestTaken(c *gin.Context) {
	event, err := s.bots.RecordRequestTaken(c.Request.Context(), c.Param("bot_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderBotEvent(event))
}
