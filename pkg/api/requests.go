package api

import "time"

// CreateBotRequest is the body of POST /api/v1/bots.
type CreateBotRequest struct {
	MeetingURL        string                 `json:"meeting_url" binding:"required"`
	Name              string                 `json:"bot_name"`
	SessionKind       string                 `json:"session_kind"`
	JoinAt            *time.Time             `json:"join_at"`
	DeduplicationKey  *string                `json:"deduplication_key"`
	RecordingKind     string                 `json:"recording_kind"`
	TranscriptionKind string                 `json:"transcription_kind"`
	Transcription     map[string]interface{} `json:"transcription_settings"`
	Metadata          map[string]interface{} `json:"metadata"`
}

// ApplyEventRequest is the body of the media adapter's event callback.
// Kinds and subkinds are API codes; a missing sub kind means null.
type ApplyEventRequest struct {
	EventKind    string                 `json:"event_kind" binding:"required"`
	EventSubKind *string                `json:"event_sub_kind"`
	Metadata     map[string]interface{} `json:"metadata"`
}

// LeaveRequest is the body of POST /api/v1/bots/:bot_id/leave. The sub kind
// defaults to user_requested.
type LeaveRequest struct {
	EventSubKind *string `json:"event_sub_kind"`
}

// CreateSubscriptionRequest is the body of POST /api/v1/webhook_subscriptions.
// Triggers are API codes, e.g. "bot.state_change".
type CreateSubscriptionRequest struct {
	URL      string   `json:"url" binding:"required"`
	Triggers []string `json:"triggers" binding:"required"`
	BotID    *string  `json:"bot_id"`
}

// SetCredentialRequest is the body of PUT /api/v1/credentials/:kind.
type SetCredentialRequest struct {
	Value map[string]interface{} `json:"value" binding:"required"`
}

// ParticipantEventRequest is the body of the media adapter's participant
// event callback. Kind is the platform event, e.g. "join" or "leave".
type ParticipantEventRequest struct {
	PlatformUUID string `json:"platform_uuid" binding:"required"`
	FullName     string `json:"full_name"`
	IsHost       bool   `json:"is_host"`
	Kind         string `json:"kind" binding:"required"`
	TimestampMS  int64  `json:"timestamp_ms"`
}

// ChatMessageRequest is the body of the media adapter's chat message
// callback.
type ChatMessageRequest struct {
	SenderPlatformUUID *string `json:"sender_platform_uuid"`
	Text               string  `json:"text" binding:"required"`
	TimestampMS        int64   `json:"timestamp_ms"`
}
