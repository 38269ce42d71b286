package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Users are created on first OAuth authentication and never destroyed.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("provider").
			Immutable().
			Comment("Identity provider key (e.g., 'github', 'google')"),
		field.String("provider_account_id").
			Immutable().
			Comment("Stable account id scoped to the provider"),
		field.String("email"),
		field.String("name").
			Optional().
			Nillable(),
		field.String("avatar_url").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_login_at").
			Default(time.Now).
			Comment("Mutated on every successful authentication"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", LabSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("auth_tokens", AuthToken.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "provider_account_id").
			Unique(),
	}
}
