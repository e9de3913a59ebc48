// Package config carries process-wide configuration. Values load from the
// environment (optionally seeded by a .env file); defaults suit local
// development. Encryption keys and billing toggles are passed explicitly to
// the subsystems that need them, never read ambiently.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Load and handed
// to each subsystem at construction.
type Config struct {
	// ListenAddr is the HTTP API bind address.
	ListenAddr string

	// BillingEnabled controls whether meeting end debits credits.
	BillingEnabled bool

	// CredentialsEncryptionKey is the base64-encoded 32-byte AES key sealing
	// project credential blobs.
	CredentialsEncryptionKey string

	Dispatch  *DispatchConfig
	Retention *RetentionConfig
	Slack     *SlackConfig
}

// DispatchConfig controls the webhook delivery worker pool.
type DispatchConfig struct {
	// WorkerCount is the number of delivery goroutines.
	WorkerCount int

	// PollInterval is the base interval for checking due attempts. NOTIFY
	// nudges cut the latency below this in the common case.
	PollInterval time.Duration

	// RequestTimeout bounds each outbound HTTP request.
	RequestTimeout time.Duration

	// BackoffBase seeds the retry schedule: base * 2^(attempts-1).
	BackoffBase time.Duration

	// BackoffCap bounds a single retry delay.
	BackoffCap time.Duration

	// MaxAttempts is the terminal failure threshold.
	MaxAttempts int
}

// RetentionConfig controls the data deletion sweep.
type RetentionConfig struct {
	// SweepInterval is how often the cleanup loop runs.
	SweepInterval time.Duration

	// EndedRetention is how long an ENDED or FATAL_ERROR bot keeps its
	// meeting data before the sweep applies DATA_DELETED.
	EndedRetention time.Duration
}

// SlackConfig controls operator alerting.
type SlackConfig struct {
	// Enabled turns fatal-error alerts on.
	Enabled bool

	// Token is the bot token used by the Slack API client.
	Token string

	// Channel is the alert destination channel ID.
	Channel string
}

// DefaultDispatchConfig returns the built-in dispatch defaults.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		WorkerCount:    5,
		PollInterval:   2 * time.Second,
		RequestTimeout: 10 * time.Second,
		BackoffBase:    30 * time.Second,
		BackoffCap:     1 * time.Hour,
		MaxAttempts:    10,
	}
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SweepInterval:  1 * time.Hour,
		EndedRetention: 30 * 24 * time.Hour,
	}
}

// Load builds the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:               envOrDefault("LISTEN_ADDR", ":8080"),
		BillingEnabled:           envBool("BILLING_ENABLED", true),
		CredentialsEncryptionKey: os.Getenv("CREDENTIALS_ENCRYPTION_KEY"),
		Dispatch:                 DefaultDispatchConfig(),
		Retention:                DefaultRetentionConfig(),
		Slack: &SlackConfig{
			Enabled: envBool("SLACK_ALERTS_ENABLED", false),
			Token:   os.Getenv("SLACK_BOT_TOKEN"),
			Channel: os.Getenv("SLACK_ALERT_CHANNEL"),
		},
	}

	if v := os.Getenv("WEBHOOK_WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid WEBHOOK_WORKER_COUNT %q", v)
		}
		cfg.Dispatch.WorkerCount = n
	}
	if v := os.Getenv("WEBHOOK_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid WEBHOOK_MAX_ATTEMPTS %q", v)
		}
		cfg.Dispatch.MaxAttempts = n
	}
	if d, err := envDuration("WEBHOOK_REQUEST_TIMEOUT"); err != nil {
		return nil, err
	} else if d > 0 {
		cfg.Dispatch.RequestTimeout = d
	}
	if d, err := envDuration("WEBHOOK_BACKOFF_BASE"); err != nil {
		return nil, err
	} else if d > 0 {
		cfg.Dispatch.BackoffBase = d
	}
	if d, err := envDuration("RETENTION_SWEEP_INTERVAL"); err != nil {
		return nil, err
	} else if d > 0 {
		cfg.Retention.SweepInterval = d
	}
	if d, err := envDuration("RETENTION_ENDED"); err != nil {
		return nil, err
	} else if d > 0 {
		cfg.Retention.EndedRetention = d
	}

	if cfg.Slack.Enabled && (cfg.Slack.Token == "" || cfg.Slack.Channel == "") {
		return nil, fmt.Errorf("SLACK_ALERTS_ENABLED requires SLACK_BOT_TOKEN and SLACK_ALERT_CHANNEL")
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return parsed
}

func envDuration(key string) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
