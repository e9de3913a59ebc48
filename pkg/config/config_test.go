package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.True(t, cfg.BillingEnabled)
	assert.Equal(t, 5, cfg.Dispatch.WorkerCount)
	assert.Equal(t, 30*time.Second, cfg.Dispatch.BackoffBase)
	assert.Equal(t, time.Hour, cfg.Dispatch.BackoffCap)
	assert.Equal(t, 10, cfg.Dispatch.MaxAttempts)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.EndedRetention)
	assert.False(t, cfg.Slack.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("BILLING_ENABLED", "false")
	t.Setenv("WEBHOOK_WORKER_COUNT", "12")
	t.Setenv("WEBHOOK_BACKOFF_BASE", "5s")
	t.Setenv("RETENTION_ENDED", "72h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.False(t, cfg.BillingEnabled)
	assert.Equal(t, 12, cfg.Dispatch.WorkerCount)
	assert.Equal(t, 5*time.Second, cfg.Dispatch.BackoffBase)
	assert.Equal(t, 72*time.Hour, cfg.Retention.EndedRetention)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("worker count", func(t *testing.T) {
		t.Setenv("WEBHOOK_WORKER_COUNT", "zero")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("negative worker count", func(t *testing.T) {
		t.Setenv("WEBHOOK_WORKER_COUNT", "-1")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("WEBHOOK_BACKOFF_BASE", "five minutes")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestLoad_SlackRequiresTokenAndChannel(t *testing.T) {
	t.Setenv("SLACK_ALERTS_ENABLED", "true")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_ALERT_CHANNEL", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("SLACK_ALERT_CHANNEL", "C0123456789")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Slack.Enabled)
	assert.Equal(t, "xoxb-test", cfg.Slack.Token)
}
