package services

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/credittransaction"
	"github.com/stenobot-io/stenobot/pkg/ids"
)

// creditRetries bounds the standalone append loop. Races against concurrent
// appends surface as integrity violations on the linearity indexes and are
// retried here.
const creditRetries = 10

// TransactionParams describes one credit ledger append.
type TransactionParams struct {
	OrganizationID        string
	DeltaCenticredits     int64
	BotID                 *string
	StripePaymentIntentID *string
	Description           string
}

// CreditService appends to the per-organization credit ledger. The ledger is
// an immutable linked list: each transaction points at its parent, the
// database guarantees one child per transaction and one root per
// organization, and the materialized organization balance always equals the
// leaf's centicredits_after.
type CreditService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewCreditService creates a new CreditService
func NewCreditService(client *ent.Client, logger *slog.Logger) *CreditService {
	return &CreditService{
		client: client,
		logger: logger.With("service", "credit"),
	}
}

// CreateTransaction appends a transaction in its own serializable
// transaction, retrying integrity and serialization conflicts up to 10
// times. Used by purchase and adjustment flows; the transition engine calls
// CreateTransactionTx inside its own transaction instead.
func (s *CreditService) CreateTransaction(ctx context.Context, params TransactionParams) (*ent.CreditTransaction, error) {
	var lastErr error
	for attempt := 0; attempt < creditRetries; attempt++ {
		tx, err := s.client.BeginTx(ctx, &stdsql.TxOptions{Isolation: stdsql.LevelSerializable})
		if err != nil {
			return nil, fmt.Errorf("failed to start transaction: %w", err)
		}

		created, err := s.CreateTransactionTx(ctx, tx, params)
		if err != nil {
			_ = tx.Rollback()
			if isIntegrityViolation(err) || isSerializationFailure(err) {
				lastErr = err
				continue
			}
			return nil, err
		}

		if err := tx.Commit(); err != nil {
			if isIntegrityViolation(err) || isSerializationFailure(err) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("failed to commit credit transaction: %w", err)
		}
		return created, nil
	}
	return nil, fmt.Errorf("credit ledger append did not converge after %d attempts: %w: %w",
		creditRetries, ErrOptimisticConflict, lastErr)
}

// CreateTransactionTx appends a transaction inside the caller's transaction.
// Single attempt; the caller owns retry and commit.
func (s *CreditService) CreateTransactionTx(ctx context.Context, tx *ent.Tx, params TransactionParams) (*ent.CreditTransaction, error) {
	org, err := tx.Organization.Get(ctx, params.OrganizationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("organization %s: %w", params.OrganizationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}

	// The leaf is the unique transaction with no children. Never derived in
	// application state; always located fresh inside the transaction.
	leaf, err := tx.CreditTransaction.Query().
		Where(
			credittransaction.OrganizationID(params.OrganizationID),
			credittransaction.Not(credittransaction.HasChildren()),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to locate leaf transaction: %w", err)
	}

	before := org.Centicredits
	after := before + params.DeltaCenticredits

	create := tx.CreditTransaction.Create().
		SetID(ids.New(ids.PrefixCreditTransaction)).
		SetOrganizationID(params.OrganizationID).
		SetCenticreditsBefore(before).
		SetCenticreditsAfter(after).
		SetCenticreditsDelta(params.DeltaCenticredits).
		SetNillableBotID(params.BotID).
		SetNillableStripePaymentIntentID(params.StripePaymentIntentID)
	if leaf != nil {
		create.SetParentTransactionID(leaf.ID)
	}
	if params.Description != "" {
		create.SetDescription(params.Description)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert credit transaction: %w", err)
	}

	if _, err := tx.Organization.UpdateOneID(params.OrganizationID).
		SetCenticredits(after).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update organization balance: %w", err)
	}

	s.logger.InfoContext(ctx, "credit transaction appended",
		"organization_id", params.OrganizationID,
		"transaction_id", created.ID,
		"delta_centicredits", params.DeltaCenticredits,
		"balance_after", after)

	return created, nil
}

// Balance returns the organization's current balance in centicredits.
func (s *CreditService) Balance(ctx context.Context, organizationID string) (int64, error) {
	org, err := s.client.Organization.Get(ctx, organizationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, fmt.Errorf("organization %s: %w", organizationID, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to load organization: %w", err)
	}
	return org.Centicredits, nil
}
