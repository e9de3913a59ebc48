package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CreditTransaction holds the schema definition for the CreditTransaction
// entity: an append-only linked list per organization. Linearity is enforced
// by the database, not application code:
//   - unique(parent_transaction_id): at most one child per transaction
//   - unique(organization_id) WHERE parent IS NULL: at most one root
//
// The current balance is the leaf's centicredits_after; rows never mutate.
type CreditTransaction struct {
	ent.Schema
}

// Fields of the CreditTransaction.
func (CreditTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("credit_transaction_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("parent_transaction_id").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("centicredits_before").
			Immutable(),
		field.Int64("centicredits_after").
			Immutable(),
		field.Int64("centicredits_delta").
			Immutable(),
		field.String("bot_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("stripe_payment_intent_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("description").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CreditTransaction.
func (CreditTransaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("credit_transactions").
			Field("organization_id").
			Unique().
			Required().
			Immutable(),
		edge.To("children", CreditTransaction.Type).
			From("parent").
			Field("parent_transaction_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the CreditTransaction.
func (CreditTransaction) Indexes() []ent.Index {
	return []ent.Index{
		// At most one child: the chain cannot fork.
		index.Fields("parent_transaction_id").
			Unique().
			Annotations(entsql.IndexWhere("parent_transaction_id IS NOT NULL")),
		// At most one root per organization: the chain cannot restart.
		index.Fields("organization_id").
			Unique().
			Annotations(entsql.IndexWhere("parent_transaction_id IS NULL")),
		// At most one transaction per bot / per payment intent.
		index.Fields("bot_id").
			Unique().
			Annotations(entsql.IndexWhere("bot_id IS NOT NULL")),
		index.Fields("stripe_payment_intent_id").
			Unique().
			Annotations(entsql.IndexWhere("stripe_payment_intent_id IS NOT NULL")),
	}
}
