package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LabSession holds the schema definition for the LabSession entity.
// A session is a time-bounded, user-owned workspace backed by exactly one
// worker container. At most one session per (user_id, lab_slug) may have
// ended_at unset; SessionService.Start is the only writer that enforces it.
type LabSession struct {
	ent.Schema
}

// Fields of the LabSession.
func (LabSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("lab_slug").
			Immutable(),
		field.String("worker_ref").
			Comment("Supervisor-assigned worker handle; weak reference — the supervisor is authoritative about worker existence"),
		field.Int("ttl_seconds").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Immutable().
			Comment("Always created_at + ttl_seconds; sessions are never extended"),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Final once set (explicit stop, TTL sweep, or worker reconciliation)"),
	}
}

// Edges of the LabSession.
func (LabSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("sessions").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("attempts", Attempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the LabSession.
func (LabSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lab_slug"),
		index.Fields("lab_slug"),
		index.Fields("expires_at"),
	}
}
