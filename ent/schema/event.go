package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the persisted event log.
// Append-only except for retention pruning of terminal workflows. The
// integer primary key preserves append order and doubles as the WebSocket
// catch-up cursor.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Unique().
			Immutable(),
		field.String("event_id").
			Unique().
			Immutable().
			Comment("UUID assigned at publish time; dedupes redelivered messages"),
		field.String("event_type").
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.JSON("payload", map[string]any{}).
			Immutable(),
		field.String("source_stage").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("events").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "id"),
		index.Fields("event_type"),
	}
}
