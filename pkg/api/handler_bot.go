package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/bot"
	"github.com/stenobot-io/stenobot/ent/botevent"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
	"github.com/stenobot-io/stenobot/pkg/services"
	"github.com/stenobot-io/stenobot/pkg/transcription"
)

// CreateBot handles POST /api/v1/bots.
func (s *Server) CreateBot(c *gin.Context) {
	var req CreateBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := services.CreateBotParams{
		ProjectID:        projectID(c),
		Name:             req.Name,
		MeetingURL:       req.MeetingURL,
		JoinAt:           req.JoinAt,
		DeduplicationKey: req.DeduplicationKey,
		Metadata:         req.Metadata,
	}

	if req.SessionKind != "" {
		kind := lifecycle.SessionKind(req.SessionKind)
		if kind != lifecycle.SessionKindBot && kind != lifecycle.SessionKindAppSession {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown session_kind"})
			return
		}
		params.SessionKind = kind
	}
	if req.RecordingKind != "" {
		params.RecordingKind = lifecycle.RecordingKind(req.RecordingKind)
	}
	if req.TranscriptionKind != "" {
		params.TranscriptionKind = lifecycle.TranscriptionKind(req.TranscriptionKind)
	}

	if req.Transcription != nil {
		settings, err := parseTranscriptionSettings(req.Transcription)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := settings.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		params.Settings = map[string]interface{}{
			"transcription_settings": req.Transcription,
		}
	}

	created, err := s.bots.CreateBot(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renderBot(created))
}

// ListBots handles GET /api/v1/bots. Results are project-scoped and newest
// first.
func (s *Server) ListBots(c *gin.Context) {
	rows, err := s.db.Bot.Query().
		Where(bot.ProjectID(projectID(c))).
		Order(ent.Desc(bot.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]BotResponse, 0, len(rows))
	for _, b := range rows {
		out = append(out, renderBot(b))
	}
	c.JSON(http.StatusOK, gin.H{"bots": out})
}

// GetBot handles GET /api/v1/bots/:bot_id.
func (s *Server) GetBot(c *gin.Context) {
	b, err := s.loadProjectBot(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderBot(b))
}

// LeaveBot handles POST /api/v1/bots/:bot_id/leave. New requests always
// carry a sub kind; the default is user_requested.
func (s *Server) LeaveBot(c *gin.Context) {
	b, err := s.loadProjectBot(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var req LeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subKind := lifecycle.SubKindUserRequested
	if req.EventSubKind != nil {
		subKind = lifecycle.EventSubKind(*req.EventSubKind)
	}

	event, err := s.bots.ApplyEvent(c.Request.Context(), b.ID, lifecycle.EventLeaveRequested, &subKind, nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderBotEvent(event))
}

// ListBotEvents handles GET /api/v1/bots/:bot_id/events.
func (s *Server) ListBotEvents(c *gin.Context) {
	b, err := s.loadProjectBot(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rows, err := s.db.BotEvent.Query().
		Where(botevent.BotID(b.ID)).
		Order(ent.Asc(botevent.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]BotEventResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, renderBotEvent(e))
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

// loadProjectBot loads the path bot and checks it belongs to the caller's
// project. Foreign bots read as not found, never as forbidden.
func (s *Server) loadProjectBot(c *gin.Context) (*ent.Bot, error) {
	b, err := s.bots.GetBot(c.Request.Context(), c.Param("bot_id"))
	if err != nil {
		return nil, err
	}
	if b.ProjectID != projectID(c) {
		return nil, services.ErrNotFound
	}
	return b, nil
}

func parseTranscriptionSettings(raw map[string]interface{}) (transcription.Settings, error) {
	var settings transcription.Settings
	data, err := json.Marshal(raw)
	if err != nil {
		return settings, err
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, err
	}
	return settings, nil
}
