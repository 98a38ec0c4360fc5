// Package database provides a test database client over a per-test schema.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/pkg/database"
	"github.com/chainforge-ai/chainforge/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL
// service container. In local dev: spins up a pgvector testcontainer.
// The schema and connections are cleaned up when the test ends.
//
// The templates.embedding column lives outside the ent schema (SQL
// migrations add it in production), so it is added here before the vector
// index is built.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	_, err := db.ExecContext(ctx,
		`ALTER TABLE templates ADD COLUMN IF NOT EXISTS embedding vector(1536)`)
	require.NoError(t, err)

	drv := entsql.OpenDB(dialect.Postgres, db)
	err = database.CreateVectorIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
