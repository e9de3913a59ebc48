package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/bot"
	"github.com/stenobot-io/stenobot/ent/botevent"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// heartbeatRetries bounds the heartbeat CAS loop. Heartbeats race the
// transition engine constantly, so the budget is wider than for transitions.
const heartbeatRetries = 10

// SetHeartbeat stamps last_heartbeat_timestamp with the current epoch
// second, and first_heartbeat_timestamp too on the first call. Each attempt
// reloads the bot and writes under a version predicate; a stale version
// loops, up to 10 tries.
func (s *BotService) SetHeartbeat(ctx context.Context, botID string) error {
	for attempt := 0; attempt < heartbeatRetries; attempt++ {
		b, err := s.client.Bot.Get(ctx, botID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("bot %s: %w", botID, ErrNotFound)
			}
			return fmt.Errorf("failed to load bot: %w", err)
		}

		now := time.Now().Unix()
		upd := s.client.Bot.Update().
			Where(bot.ID(botID), bot.Version(b.Version)).
			SetLastHeartbeatTimestamp(now).
			SetVersion(b.Version + 1)
		if b.FirstHeartbeatTimestamp == nil {
			upd.SetFirstHeartbeatTimestamp(now)
		}

		n, err := upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to write heartbeat: %w", err)
		}
		if n > 0 {
			return nil
		}
	}
	return fmt.Errorf("heartbeat did not commit after %d attempts: %w",
		heartbeatRetries, ErrOptimisticConflict)
}

// RecordRequestTaken stamps requested_action_taken_at on the event that put
// the bot into its current in-flight state (JOINING, LEAVING, CONNECTING or
// DISCONNECTING). The media adapter calls this once the requested action has
// actually been executed on the platform.
func (s *BotService) RecordRequestTaken(ctx context.Context, botID string) (*ent.BotEvent, error) {
	b, err := s.GetBot(ctx, botID)
	if err != nil {
		return nil, err
	}

	expected, ok := lifecycle.RequesterEvent(b.State)
	if !ok {
		return nil, NewValidationError("state", fmt.Sprintf(
			"bot is in state '%s'; no requested action is in flight", b.State.APICode()))
	}

	last, err := s.client.BotEvent.Query().
		Where(botevent.BotID(botID)).
		Order(ent.Desc(botevent.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("state", "bot has no events")
		}
		return nil, fmt.Errorf("failed to load last event: %w", err)
	}

	if last.EventKind != expected {
		return nil, NewValidationError("state", fmt.Sprintf(
			"last event is '%s', expected '%s' for state '%s'",
			last.EventKind, expected, b.State.APICode()))
	}
	if last.RequestedActionTakenAt != nil {
		return nil, NewValidationError("state", "requested action already recorded as taken")
	}

	updated, err := s.client.BotEvent.UpdateOneID(last.ID).
		SetRequestedActionTakenAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to stamp requested action: %w", err)
	}
	return updated, nil
}
