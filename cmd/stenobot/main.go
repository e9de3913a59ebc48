// Stenobot lifecycle engine server — provides the HTTP API, runs the
// webhook delivery workers, and enforces data retention.
package main

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stenobot-io/stenobot/pkg/alerts"
	"github.com/stenobot-io/stenobot/pkg/api"
	"github.com/stenobot-io/stenobot/pkg/cleanup"
	"github.com/stenobot-io/stenobot/pkg/config"
	"github.com/stenobot-io/stenobot/pkg/credentials"
	"github.com/stenobot-io/stenobot/pkg/database"
	"github.com/stenobot-io/stenobot/pkg/events"
	"github.com/stenobot-io/stenobot/pkg/services"
	"github.com/stenobot-io/stenobot/pkg/webhook"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs embedded migrations on startup)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Credential sealing key
	if cfg.CredentialsEncryptionKey == "" {
		slog.Error("CREDENTIALS_ENCRYPTION_KEY is required")
		os.Exit(1)
	}
	box, err := credentials.NewBoxFromBase64(cfg.CredentialsEncryptionKey)
	if err != nil {
		slog.Error("Invalid CREDENTIALS_ENCRYPTION_KEY",
			"error", err, "want", base64.StdEncoding.EncodedLen(credentials.KeySize))
		os.Exit(1)
	}

	// 4. Domain services
	alertService := alerts.NewService(alerts.ServiceConfig{
		Token:   cfg.Slack.Token,
		Channel: cfg.Slack.Channel,
	})
	if !cfg.Slack.Enabled {
		alertService = nil
	}

	publisher := events.NewPublisher(dbClient.DB(), logger)
	recordingService := services.NewRecordingService(logger)
	creditService := services.NewCreditService(dbClient.Client, logger)
	webhookService := services.NewWebhookService(dbClient.Client, publisher, logger)
	credentialService := services.NewCredentialService(dbClient.Client, box, logger)
	meetingDataService := services.NewMeetingDataService(dbClient.Client, webhookService, logger)

	var alertSink services.AlertSink
	if alertService != nil {
		alertSink = alertService
	}
	botService := services.NewBotService(dbClient.Client, recordingService, creditService,
		webhookService, alertSink, cfg.BillingEnabled, logger)
	slog.Info("Services initialized", "billing_enabled", cfg.BillingEnabled)

	// 5. Webhook delivery workers and the cross-process dispatch nudge
	dispatcher := webhook.NewDispatcher(dbClient.Client, cfg.Dispatch, logger)
	dispatcher.Start(ctx)

	listener := events.NewNotifyListener(dbConfig.DSN(), dispatcher, logger)
	listener.Start(ctx)

	// 6. Retention sweep
	retention := cleanup.NewService(cfg.Retention, dbClient.Client, botService, logger)
	retention.Start(ctx)

	// 7. HTTP server
	server := api.NewServer(dbClient, botService, webhookService, credentialService, meetingDataService)
	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Stenobot started successfully", "delivery_workers", cfg.Dispatch.WorkerCount)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop intake first, then drain the workers.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	retention.Stop()
	listener.Stop()
	dispatcher.Stop()

	slog.Info("Shutdown complete")
}
