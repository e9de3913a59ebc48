package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenobot-io/stenobot/ent/credittransaction"
	"github.com/stenobot-io/stenobot/pkg/ids"
	testdb "github.com/stenobot-io/stenobot/test/database"
)

func TestCreditService_CreateTransaction(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCreditService(client.Client, testLogger())
	org := createTestOrganization(t, client)
	ctx := context.Background()

	root, err := svc.CreateTransaction(ctx, TransactionParams{
		OrganizationID:    org.ID,
		DeltaCenticredits: 1000,
		Description:       "initial purchase",
	})
	require.NoError(t, err)
	assert.True(t, ids.HasPrefix(root.ID, ids.PrefixCreditTransaction))
	assert.Nil(t, root.ParentTransactionID)
	assert.Equal(t, int64(0), root.CenticreditsBefore)
	assert.Equal(t, int64(1000), root.CenticreditsAfter)

	child, err := svc.CreateTransaction(ctx, TransactionParams{
		OrganizationID:    org.ID,
		DeltaCenticredits: -250,
		Description:       "usage",
	})
	require.NoError(t, err)
	require.NotNil(t, child.ParentTransactionID)
	assert.Equal(t, root.ID, *child.ParentTransactionID)
	assert.Equal(t, int64(1000), child.CenticreditsBefore)
	assert.Equal(t, int64(750), child.CenticreditsAfter)

	balance, err := svc.Balance(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(750), balance)
}

func TestCreditService_CreateTransaction_UnknownOrganization(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCreditService(client.Client, testLogger())

	_, err := svc.CreateTransaction(context.Background(), TransactionParams{
		OrganizationID:    uuid.New().String(),
		DeltaCenticredits: 100,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreditService_LedgerLinearityEnforcedByDatabase(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCreditService(client.Client, testLogger())
	org := createTestOrganization(t, client)
	ctx := context.Background()

	root, err := svc.CreateTransaction(ctx, TransactionParams{
		OrganizationID:    org.ID,
		DeltaCenticredits: 500,
	})
	require.NoError(t, err)

	// A second root for the same organization violates the partial unique
	// index on (organization_id) WHERE parent IS NULL.
	_, err = client.CreditTransaction.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(org.ID).
		SetCenticreditsBefore(0).
		SetCenticreditsAfter(100).
		SetCenticreditsDelta(100).
		Save(ctx)
	require.Error(t, err)

	// A second child of the root violates the partial unique index on
	// (parent_transaction_id) WHERE NOT NULL.
	_, err = svc.CreateTransaction(ctx, TransactionParams{
		OrganizationID:    org.ID,
		DeltaCenticredits: -100,
	})
	require.NoError(t, err)
	_, err = client.CreditTransaction.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(org.ID).
		SetParentTransactionID(root.ID).
		SetCenticreditsBefore(500).
		SetCenticreditsAfter(400).
		SetCenticreditsDelta(-100).
		Save(ctx)
	require.Error(t, err)
}

func TestCreditService_ConcurrentAppendsStayLinear(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCreditService(client.Client, testLogger())
	org := createTestOrganization(t, client)
	ctx := context.Background()

	const appends = 8
	var wg sync.WaitGroup
	errs := make([]error, appends)
	for i := 0; i < appends; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateTransaction(ctx, TransactionParams{
				OrganizationID:    org.ID,
				DeltaCenticredits: 10,
			})
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		require.NoError(t, err, "append %d", i)
	}

	balance, err := svc.Balance(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10*appends), balance)

	// Exactly one leaf, and the chain walks back to a single root.
	leaf, err := client.CreditTransaction.Query().
		Where(
			credittransaction.OrganizationID(org.ID),
			credittransaction.Not(credittransaction.HasChildren()),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, balance, leaf.CenticreditsAfter)

	steps := 0
	current := leaf
	for current.ParentTransactionID != nil {
		current, err = client.CreditTransaction.Get(ctx, *current.ParentTransactionID)
		require.NoError(t, err)
		steps++
	}
	assert.Equal(t, appends-1, steps)
}

func TestCreditService_BotScopedTransaction(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCreditService(client.Client, testLogger())
	org := createTestOrganization(t, client)
	proj := createTestProject(t, client, org.ID)
	bots := setupTestBotService(t, client)
	ctx := context.Background()

	b := createTestBot(t, bots, proj.ID)

	_, err := svc.CreateTransaction(ctx, TransactionParams{
		OrganizationID:    org.ID,
		DeltaCenticredits: -50,
		BotID:             &b.ID,
		Description:       "meeting usage",
	})
	require.NoError(t, err)

	// At most one transaction per bot: the partial unique index rejects a
	// second debit for the same meeting.
	_, err = svc.CreateTransaction(ctx, TransactionParams{
		OrganizationID:    org.ID,
		DeltaCenticredits: -50,
		BotID:             &b.ID,
	})
	require.Error(t, err)
}
