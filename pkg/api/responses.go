package api

import (
	"time"

	"github.com/stenobot-io/stenobot/ent"
)

// BotResponse is the external rendering of a bot. The state is the API
// code; the numeric storage code never leaves the process.
type BotResponse struct {
	ID               string                 `json:"id"`
	ProjectID        string                 `json:"project_id"`
	Name             string                 `json:"bot_name"`
	MeetingURL       string                 `json:"meeting_url"`
	State            string                 `json:"state"`
	SessionKind      string                 `json:"session_kind"`
	JoinAt           *time.Time             `json:"join_at,omitempty"`
	DeduplicationKey *string                `json:"deduplication_key,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

func renderBot(b *ent.Bot) BotResponse {
	return BotResponse{
		ID:               b.ID,
		ProjectID:        b.ProjectID,
		Name:             b.Name,
		MeetingURL:       b.MeetingURL,
		State:            b.State.APICode(),
		SessionKind:      string(b.SessionKind),
		JoinAt:           b.JoinAt,
		DeduplicationKey: b.DeduplicationKey,
		Metadata:         b.Metadata,
		CreatedAt:        b.CreatedAt,
	}
}

// BotEventResponse is the external rendering of a bot event.
type BotEventResponse struct {
	ID           string                 `json:"id"`
	BotID        string                 `json:"bot_id"`
	OldState     string                 `json:"old_state"`
	NewState     string                 `json:"new_state"`
	EventKind    string                 `json:"event_kind"`
	EventSubKind *string                `json:"event_sub_kind,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

func renderBotEvent(e *ent.BotEvent) BotEventResponse {
	var subKind *string
	if e.EventSubKind != nil {
		code := string(*e.EventSubKind)
		subKind = &code
	}
	return BotEventResponse{
		ID:           e.ID,
		BotID:        e.BotID,
		OldState:     e.OldState.APICode(),
		NewState:     e.NewState.APICode(),
		EventKind:    string(e.EventKind),
		EventSubKind: subKind,
		Metadata:     e.Metadata,
		CreatedAt:    e.CreatedAt,
	}
}

// SubscriptionResponse is the external rendering of a webhook subscription.
type SubscriptionResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	BotID     *string   `json:"bot_id,omitempty"`
	URL       string    `json:"url"`
	Triggers  []string  `json:"triggers"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func renderSubscription(sub *ent.WebhookSubscription) SubscriptionResponse {
	triggers := make([]string, 0, len(sub.Triggers))
	for _, t := range sub.Triggers {
		triggers = append(triggers, t.APICode())
	}
	return SubscriptionResponse{
		ID:        sub.ID,
		ProjectID: sub.ProjectID,
		BotID:     sub.BotID,
		URL:       sub.URL,
		Triggers:  triggers,
		IsActive:  sub.IsActive,
		CreatedAt: sub.CreatedAt,
	}
}
