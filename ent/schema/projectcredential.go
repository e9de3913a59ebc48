package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProjectCredential holds the schema definition for the ProjectCredential
// entity: a JSON credential blob sealed with AES-256-GCM. Plaintext never
// touches the database.
type ProjectCredential struct {
	ent.Schema
}

// Fields of the ProjectCredential.
func (ProjectCredential) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_credential_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("credential_kind").
			Comment("e.g. 'zoom_oauth', 'deepgram', 'google_meet_login'"),
		field.Bytes("encrypted_blob").
			Sensitive(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ProjectCredential.
func (ProjectCredential) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("credentials").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProjectCredential.
func (ProjectCredential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "credential_kind").
			Unique(),
	}
}
