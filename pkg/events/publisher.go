// Package events carries cross-process dispatch nudges over PostgreSQL
// NOTIFY/LISTEN. Delivery attempts live in the database; NOTIFY only cuts
// the poll latency, so every message is best-effort.
package events

import (
	"context"
	stdsql "database/sql"
	"log/slog"
)

// DispatchChannel is the NOTIFY channel carrying "pending delivery attempts
// exist" nudges.
const DispatchChannel = "stenobot_webhook_dispatch"

// Publisher sends dispatch nudges. It implements services.DispatchNotifier
// for deployments with multiple API processes: the NOTIFY reaches every
// listening dispatcher, not just the local one.
type Publisher struct {
	db     *stdsql.DB
	logger *slog.Logger
}

// NewPublisher creates a Publisher on the shared connection pool.
func NewPublisher(db *stdsql.DB, logger *slog.Logger) *Publisher {
	return &Publisher{db: db, logger: logger.With("component", "events_publisher")}
}

// NotifyPending broadcasts a dispatch nudge. Failures are logged, never
// surfaced: the poll loop guarantees eventual delivery.
func (p *Publisher) NotifyPending(ctx context.Context) {
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, '')", DispatchChannel); err != nil {
		p.logger.WarnContext(ctx, "dispatch notify failed", "error", err)
	}
}
