package services

import (
	"context"
	"fmt"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/chatmessage"
	"github.com/stenobot-io/stenobot/ent/participant"
	"github.com/stenobot-io/stenobot/ent/recording"
	"github.com/stenobot-io/stenobot/ent/utterance"
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// purgeBotData removes everything that carries meeting content when the bot
// enters DATA_DELETED: utterances, participants, chat messages, media
// pointers, and delivery attempts whose payloads embed meeting data. State
// change attempts and the event history stay for audit.
func (s *BotService) purgeBotData(ctx context.Context, tx *ent.Tx, botID string) error {
	recordingIDs, err := tx.Recording.Query().
		Where(recording.BotID(botID)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recordings: %w", err)
	}

	if len(recordingIDs) > 0 {
		if _, err := tx.Utterance.Delete().
			Where(utterance.RecordingIDIn(recordingIDs...)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to purge utterances: %w", err)
		}
		if err := tx.Recording.Update().
			Where(recording.IDIn(recordingIDs...)).
			ClearMediaBlobID().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear media pointers: %w", err)
		}
	}

	if _, err := tx.Participant.Delete().
		Where(participant.BotID(botID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to purge participants: %w", err)
	}

	if _, err := tx.ChatMessage.Delete().
		Where(chatmessage.BotID(botID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to purge chat messages: %w", err)
	}

	if _, err := tx.WebhookDeliveryAttempt.Delete().
		Where(
			webhookdeliveryattempt.BotID(botID),
			webhookdeliveryattempt.TriggerNEQ(lifecycle.TriggerBotStateChange),
		).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to purge delivery attempts: %w", err)
	}

	s.logger.InfoContext(ctx, "bot data purged", "bot_id", botID)
	return nil
}
