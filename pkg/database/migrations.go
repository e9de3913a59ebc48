package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates the PostgreSQL partial unique indexes
// that carry the hard invariants of the system. They must match the
// constraints in migrations/000001_init.up.sql; idempotent and safe to run
// on every startup (also used by the test harness, which migrates via
// Ent's schema creator instead of golang-migrate).
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Credit ledger linearity: at most one child per transaction, at most
	// one root per organization. The ledger's exactly-one-leaf invariant
	// follows from these two.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS credittransaction_parent_unique_child
		ON credit_transactions (parent_transaction_id)
		WHERE parent_transaction_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create ledger child index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS credittransaction_org_unique_root
		ON credit_transactions (organization_id)
		WHERE parent_transaction_id IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create ledger root index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS credittransaction_bot_unique
		ON credit_transactions (bot_id)
		WHERE bot_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create ledger bot index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS credittransaction_payment_intent_unique
		ON credit_transactions (stripe_payment_intent_id)
		WHERE stripe_payment_intent_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create ledger payment intent index: %w", err)
	}

	// Single active recording per bot.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS recording_bot_single_active
		ON recordings (bot_id)
		WHERE state IN ('in_progress', 'paused')`)
	if err != nil {
		return fmt.Errorf("failed to create active recording index: %w", err)
	}

	// Deduplication: within a project, one live bot per deduplication key.
	// States 7, 9, 10 are the post-meeting codes.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS bot_project_dedup_key_live
		ON bots (project_id, deduplication_key)
		WHERE deduplication_key IS NOT NULL AND state NOT IN (7, 9, 10)`)
	if err != nil {
		return fmt.Errorf("failed to create dedup key index: %w", err)
	}

	return nil
}
