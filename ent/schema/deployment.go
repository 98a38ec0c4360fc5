package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deployment holds the schema definition for one on-chain deployment
// of one contract.
type Deployment struct {
	ent.Schema
}

// Fields of the Deployment.
func (Deployment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("deployment_id").
			Unique().
			Immutable(),
		field.String("contract_id").
			Immutable(),
		field.String("network"),
		field.String("address").
			Optional().
			Comment("Deployed contract address, 0x-prefixed (20 bytes)"),
		field.String("tx_hash").
			Optional().
			Comment("Deployment transaction hash, 0x-prefixed (32 bytes)"),
		field.Int64("block_number").
			Optional(),
		field.Uint64("gas_used").
			Optional(),
		field.String("deployer_address"),
		field.String("eigenda_commitment").
			Optional().
			Nillable().
			Comment("Blob commitment when metadata was dispersed to EigenDA"),
		field.Enum("status").
			Values("pending", "confirmed", "failed").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("submitted_at").
			Default(time.Now),
		field.Time("confirmed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Deployment.
func (Deployment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("deployments").
			Field("contract_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Deployment.
func (Deployment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id"),
		index.Fields("network"),
		index.Fields("status"),
	}
}
