// Package cleanup provides the data retention sweep.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/bot"
	"github.com/stenobot-io/stenobot/pkg/config"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
	"github.com/stenobot-io/stenobot/pkg/services"
)

// Service periodically applies DATA_DELETED to bots whose meeting ended
// longer ago than the retention window. The deletion goes through the
// transition engine like any other event, so the purge, the event row and
// the state-change webhook all happen in one transaction. Idempotent and
// safe to run from multiple pods: a bot already deleted by another sweep
// fails the transition and is skipped.
type Service struct {
	config     *config.RetentionConfig
	client     *ent.Client
	botService *services.BotService
	logger     *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, botService *services.BotService, logger *slog.Logger) *Service {
	return &Service{
		config:     cfg,
		client:     client,
		botService: botService,
		logger:     logger.With("component", "cleanup"),
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		"retention", s.config.EndedRetention,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep applies DATA_DELETED to every expired ENDED or FATAL_ERROR bot.
func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.EndedRetention)
	expired, err := s.client.Bot.Query().
		Where(
			bot.StateIn(lifecycle.StateEnded, lifecycle.StateFatalError),
			bot.UpdatedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "retention sweep query failed", "error", err)
		return
	}

	deleted := 0
	for _, botID := range expired {
		if _, err := s.botService.ApplyEvent(ctx, botID, lifecycle.EventDataDeleted, nil, nil); err != nil {
			// Concurrent sweeps race on the same bots; losing is expected.
			if services.IsIllegalTransition(err) {
				continue
			}
			s.logger.ErrorContext(ctx, "retention deletion failed", "bot_id", botID, "error", err)
			continue
		}
		deleted++
	}

	if deleted > 0 {
		s.logger.InfoContext(ctx, "retention sweep complete", "deleted", deleted, "candidates", len(expired))
	}
}
