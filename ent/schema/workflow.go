package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity.
// One workflow is a single end-to-end run of the five-stage pipeline
// (generate → compile → audit → test → deploy) for one NLP description.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("owner").
			Optional().
			Nillable().
			Comment("Requesting user reference, if any"),
		field.Text("nlp_description").
			Immutable().
			Comment("Original natural-language contract description"),
		field.String("contract_type").
			Default("Custom"),
		field.Enum("status").
			Values("created", "generating", "compiling", "auditing",
				"testing", "deploying", "completed", "failed", "cancelled").
			Default("created"),
		field.Int("progress").
			Default(0).
			Comment("0–100; monotonically non-decreasing until terminal"),
		field.String("network").
			Comment("Target network id (e.g., 'hyperion_testnet')"),

		// Feature toggles, post-validation. Unavailable features are
		// disabled at creation time with a warning appended.
		field.Bool("metisvm_enabled").Default(false),
		field.Bool("floating_point_enabled").Default(false),
		field.Bool("ai_inference_enabled").Default(false),
		field.Bool("eigenda_enabled").Default(false),
		field.Bool("pef_batch_enabled").Default(false),

			// Per-request pipeline options, read back by the claiming worker.
			field.String("audit_level").
				Default("standard"),
			field.Bool("skip_audit").Default(false),
			field.Bool("skip_testing").Default(false),
			field.Uint64("gas_limit").
				Default(0).
				Comment("0 means estimate at deploy time"),

		field.JSON("warnings", []string{}).
			Optional().
			Comment("Feature-validation warnings shown to the user"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Checked by the orchestrator at stage boundaries"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica claim coordination"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the workflow"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("contracts", Contract.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("network"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}
