package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

const postTimeout = 10 * time.Second

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token   string
	Channel string
}

// Service delivers operator alerts. Nil-safe: all methods are no-ops when
// the service is nil, so callers never branch on alerting being configured.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates a new alert service. Returns nil if Token or Channel is
// empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client: NewClient(cfg.Token, cfg.Channel),
		logger: slog.Default().With("component", "alert-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "alert-service"),
	}
}

// BotFatalError posts a fatal-error alert. Fail-open: errors are logged,
// never returned — alerting must not affect the transition that caused it.
func (s *Service) BotFatalError(ctx context.Context, botID, meetingURL, subKindCode string) {
	if s == nil {
		return
	}
	if err := s.client.PostMessage(ctx, BuildFatalErrorMessage(botID, meetingURL, subKindCode), postTimeout); err != nil {
		s.logger.ErrorContext(ctx, "failed to send fatal error alert",
			"bot_id", botID, "error", err)
	}
}

// BuildFatalErrorMessage creates Block Kit blocks for a fatal-error alert.
func BuildFatalErrorMessage(botID, meetingURL, subKindCode string) []goslack.Block {
	reason := subKindCode
	if reason == "" {
		reason = "unspecified"
	}
	text := fmt.Sprintf(":rotating_light: *Bot fatal error*\n*Bot:* `%s`\n*Reason:* `%s`", botID, reason)
	if meetingURL != "" {
		text += fmt.Sprintf("\n*Meeting:* %s", meetingURL)
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}
