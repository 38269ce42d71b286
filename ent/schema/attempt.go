package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt holds the schema definition for the Attempt entity.
// Attempts are append-only: rows are never mutated after insert and
// outlive the session they were graded under (history queries).
type Attempt struct {
	ent.Schema
}

// Fields of the Attempt.
func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attempt_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("lab_slug").
			Immutable(),
		field.Int("attempt_index").
			Immutable().
			Comment("Monotonic per session, starting at 1"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Bool("passed").
			Immutable(),
		field.JSON("failures", []map[string]interface{}{}).
			Comment("Ordered list of {code, message, hint?}; empty iff passed"),
		field.JSON("metrics", map[string]interface{}{}).
			Optional().
			Comment("Nested numeric map (build/runtime metrics)"),
		field.JSON("notes", map[string]interface{}{}).
			Optional().
			Comment("Free-form diagnostics (build logs, runtime logs)"),
	}
}

// Edges of the Attempt.
func (Attempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", LabSession.Type).
			Ref("attempts").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Attempt.
func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "attempt_index").
			Unique(),
		index.Fields("lab_slug"),
		index.Fields("created_at"),
	}
}
