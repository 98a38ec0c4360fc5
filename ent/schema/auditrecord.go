package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditRecord holds the schema definition for an audit of one contract.
type AuditRecord struct {
	ent.Schema
}

// Fields of the AuditRecord.
func (AuditRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("contract_id").
			Immutable(),
		field.String("audit_level").
			Default("standard").
			Comment("basic, standard, or comprehensive"),
		field.JSON("findings", []map[string]any{}).
			Optional().
			Comment("Deduplicated findings across all tools"),
		field.Int("critical_count").Default(0),
		field.Int("high_count").Default(0),
		field.Int("medium_count").Default(0),
		field.Int("low_count").Default(0),
		field.Int("info_count").Default(0),
		field.Int("risk_score").
			Default(0).
			Comment("Severity-weighted sum capped at 100"),
		field.Enum("status").
			Values("passed", "warning", "failed"),
		field.JSON("tools_run", []string{}).
			Optional(),
		field.JSON("tool_errors", map[string]string{}).
			Optional().
			Comment("tool name → error for tools that crashed or timed out"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AuditRecord.
func (AuditRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("audits").
			Field("contract_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditRecord.
func (AuditRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id"),
	}
}
