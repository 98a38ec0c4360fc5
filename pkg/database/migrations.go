package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateVectorIndexes creates the pgvector similarity index on template
// embeddings. The embedding column itself is added by the SQL migrations;
// the ivfflat index lives here so it can be rebuilt independently after
// bulk template seeding (ivfflat list quality depends on existing rows).
func CreateVectorIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Cosine-distance ivfflat index over the 1536-dim template embeddings.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_templates_embedding_ivfflat
		ON templates USING ivfflat (embedding vector_cosine_ops)
		WITH (lists = 100)`)
	if err != nil {
		return fmt.Errorf("failed to create template embedding index: %w", err)
	}

	return nil
}
