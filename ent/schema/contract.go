package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contract holds the schema definition for a generated contract.
// Created by the compilation stage; immutable thereafter.
type Contract struct {
	ent.Schema
}

// Fields of the Contract.
func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("contract_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("name").
			Comment("Contract name extracted from the source"),
		field.Text("source_code"),
		field.String("source_hash").
			Comment("Hex SHA-256 of source_code; identical hash ⇒ identical body"),
		field.JSON("abi", []map[string]any{}).
			Optional(),
		field.Text("bytecode").
			Comment("Creation bytecode, 0x-prefixed hex"),
		field.Text("deployed_bytecode").
			Optional().
			Comment("Runtime bytecode, 0x-prefixed hex"),
		field.String("solidity_version").
			Default("0.8.27").
			Comment("From the source pragma"),
		field.JSON("constructor_params", []map[string]any{}).
			Optional().
			Comment("Constructor parameter descriptors from the ABI"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Contract.
func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("contracts").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
		edge.To("audits", AuditRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("deployments", Deployment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Contract.
func (Contract) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id"),
		index.Fields("source_hash"),
	}
}
