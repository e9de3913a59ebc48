package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Organization holds the schema definition for the Organization entity.
// The credit balance mirrors the leaf credit transaction's centicredits_after.
type Organization struct {
	ent.Schema
}

// Fields of the Organization.
func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("organization_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Int64("centicredits").
			Default(0).
			Comment("Materialized balance; always equals the leaf transaction's centicredits_after"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Organization.
func (Organization) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("projects", Project.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("credit_transactions", CreditTransaction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
