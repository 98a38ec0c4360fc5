package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Template holds the schema definition for a contract template used by
// retrieval-augmented generation. Templates are seeded offline and
// read-only to the engine.
//
// The 1536-dimension embedding lives in a pgvector column added by the
// SQL migrations (ent has no vector field type); similarity queries go
// through TemplateService with raw SQL. See pkg/database/migrations.
type Template struct {
	ent.Schema
}

// Fields of the Template.
func (Template) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("template_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("contract_type").
			Comment("e.g., 'ERC20', 'ERC721', 'DAO'"),
		field.Text("source_code"),
		field.Text("description").
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Template.
func (Template) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_type"),
		index.Fields("active"),
	}
}
