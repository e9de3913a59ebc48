package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/participant"
	"github.com/stenobot-io/stenobot/pkg/ids"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// MeetingDataService ingests the non-lifecycle data a bot observes in a
// meeting: participants joining and leaving, and chat messages. Rows are
// persisted for the retention window and each ingest fans out to webhook
// subscribers with its trigger kind.
type MeetingDataService struct {
	client   *ent.Client
	webhooks *WebhookService
	logger   *slog.Logger
}

// NewMeetingDataService creates a new MeetingDataService
func NewMeetingDataService(client *ent.Client, webhooks *WebhookService, logger *slog.Logger) *MeetingDataService {
	return &MeetingDataService{
		client:   client,
		webhooks: webhooks,
		logger:   logger.With("service", "meeting_data"),
	}
}

// ParticipantEventParams describes one observed participant event.
type ParticipantEventParams struct {
	PlatformUUID string
	FullName     string
	IsHost       bool
	// Kind is the platform event, e.g. "join", "leave", "webcam_on".
	Kind        string
	TimestampMS int64
}

// ChatMessageParams describes one observed chat message.
type ChatMessageParams struct {
	// SenderPlatformUUID links the message to a known participant when set.
	SenderPlatformUUID *string
	Text               string
	TimestampMS        int64
}

// RecordParticipantEvent upserts the participant row and relays the event.
// Join and leave events go to participant_events.join_leave subscribers;
// every event kind goes to participant_events.all subscribers.
func (s *MeetingDataService) RecordParticipantEvent(ctx context.Context, botID string, params ParticipantEventParams) error {
	if params.PlatformUUID == "" {
		return NewValidationError("platform_uuid", "required")
	}
	if params.Kind == "" {
		return NewValidationError("kind", "required")
	}

	b, err := s.loadIngestableBot(ctx, botID)
	if err != nil {
		return err
	}

	p, err := s.upsertParticipant(ctx, botID, params)
	if err != nil {
		return err
	}

	payload := map[string]interface{}{
		"id":             ids.New(ids.PrefixParticipantEvent),
		"bot_id":         botID,
		"participant_id": p.ID,
		"platform_uuid":  params.PlatformUUID,
		"full_name":      params.FullName,
		"is_host":        params.IsHost,
		"kind":           params.Kind,
		"timestamp_ms":   params.TimestampMS,
	}
	subject := WebhookSubject{ProjectID: b.ProjectID, BotID: &botID}

	if params.Kind == "join" || params.Kind == "leave" {
		if _, err := s.webhooks.Emit(ctx, lifecycle.TriggerParticipantEventsJoinLeave, subject, payload); err != nil {
			return err
		}
	}
	if _, err := s.webhooks.Emit(ctx, lifecycle.TriggerParticipantEventsAll, subject, payload); err != nil {
		return err
	}
	return nil
}

// RecordChatMessage persists the message and relays it to
// chat_messages.update subscribers.
func (s *MeetingDataService) RecordChatMessage(ctx context.Context, botID string, params ChatMessageParams) (*ent.ChatMessage, error) {
	if params.Text == "" {
		return nil, NewValidationError("text", "required")
	}

	b, err := s.loadIngestableBot(ctx, botID)
	if err != nil {
		return nil, err
	}

	var participantID *string
	if params.SenderPlatformUUID != nil {
		sender, err := s.client.Participant.Query().
			Where(
				participant.BotID(botID),
				participant.PlatformUUID(*params.SenderPlatformUUID),
			).
			Only(ctx)
		switch {
		case err == nil:
			participantID = &sender.ID
		case ent.IsNotFound(err):
			// Sender unseen so far; keep the message, drop the link.
		default:
			return nil, fmt.Errorf("failed to resolve sender: %w", err)
		}
	}

	msg, err := s.client.ChatMessage.Create().
		SetID(ids.New(ids.PrefixChatMessage)).
		SetBotID(botID).
		SetNillableParticipantID(participantID).
		SetText(params.Text).
		SetTimestampMs(params.TimestampMS).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store chat message: %w", err)
	}

	payload := map[string]interface{}{
		"id":           msg.ID,
		"bot_id":       botID,
		"text":         params.Text,
		"timestamp_ms": params.TimestampMS,
	}
	if participantID != nil {
		payload["participant_id"] = *participantID
	}
	if _, err := s.webhooks.Emit(ctx, lifecycle.TriggerChatMessagesUpdate,
		WebhookSubject{ProjectID: b.ProjectID, BotID: &botID}, payload); err != nil {
		return nil, err
	}
	return msg, nil
}

// loadIngestableBot loads the bot and rejects ingest after data deletion:
// nothing may resurrect purged meeting data.
func (s *MeetingDataService) loadIngestableBot(ctx context.Context, botID string) (*ent.Bot, error) {
	b, err := s.client.Bot.Get(ctx, botID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("bot %s: %w", botID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load bot: %w", err)
	}
	if b.State == lifecycle.StateDataDeleted {
		return nil, NewValidationError("state", "bot data has been deleted")
	}
	return b, nil
}

func (s *MeetingDataService) upsertParticipant(ctx context.Context, botID string, params ParticipantEventParams) (*ent.Participant, error) {
	existing, err := s.client.Participant.Query().
		Where(
			participant.BotID(botID),
			participant.PlatformUUID(params.PlatformUUID),
		).
		Only(ctx)
	switch {
	case err == nil:
		updated, err := s.client.Participant.UpdateOneID(existing.ID).
			SetFullName(params.FullName).
			SetIsHost(params.IsHost).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update participant: %w", err)
		}
		return updated, nil
	case ent.IsNotFound(err):
		created, err := s.client.Participant.Create().
			SetID(ids.New(ids.PrefixParticipant)).
			SetBotID(botID).
			SetPlatformUUID(params.PlatformUUID).
			SetFullName(params.FullName).
			SetIsHost(params.IsHost).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create participant: %w", err)
		}
		return created, nil
	default:
		return nil, fmt.Errorf("failed to query participant: %w", err)
	}
}
