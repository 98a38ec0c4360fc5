package database_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/pkg/database"
	testdb "github.com/chainforge-ai/chainforge/test/database"
)

func TestClientConnectivity(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestVectorSimilaritySearch(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Two templates with orthogonal embeddings; the query vector matches
	// the first one exactly.
	seed := func(id, name, vec string) {
		_, err := client.Template.Create().
			SetID(id).
			SetName(name).
			SetContractType("Token").
			SetSourceCode("pragma solidity ^0.8.27; contract T {}").
			Save(ctx)
		require.NoError(t, err)
		_, err = client.DB().ExecContext(ctx,
			`UPDATE templates SET embedding = $1::vector WHERE template_id = $2`, vec, id)
		require.NoError(t, err)
	}
	seed("tpl-a", "erc20-basic", unitVector(0))
	seed("tpl-b", "erc721-basic", unitVector(1))

	rows, err := client.DB().QueryContext(ctx,
		`SELECT template_id, 1 - (embedding <=> $1::vector) AS similarity
		FROM templates WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1::vector`, unitVector(0))
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	var sims []float64
	for rows.Next() {
		var id string
		var sim float64
		require.NoError(t, rows.Scan(&id, &sim))
		ids = append(ids, id)
		sims = append(sims, sim)
	}
	require.NoError(t, rows.Err())

	require.Equal(t, []string{"tpl-a", "tpl-b"}, ids)
	assert.InDelta(t, 1.0, sims[0], 1e-6)
	assert.Less(t, sims[1], 0.5)
}

// unitVector renders a 1536-dim unit vector with the 1 at position idx.
func unitVector(idx int) string {
	buf := make([]byte, 0, 4096)
	buf = append(buf, '[')
	for i := 0; i < 1536; i++ {
		if i > 0 {
			buf = append(buf, ',')
		}
		if i == idx {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}
	return string(append(buf, ']'))
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clear := func(t *testing.T) {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
		t.Cleanup(func() {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
		})
	}

	t.Run("defaults", func(t *testing.T) {
		clear(t)
		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "chainforge", cfg.User)
		assert.Equal(t, "chainforge", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 20, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clear(t)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_PASSWORD", "secret")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")

		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "secret", cfg.Password)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
	})

	t.Run("invalid port", func(t *testing.T) {
		clear(t)
		os.Setenv("DB_PORT", "not_a_number")

		_, err := database.LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestHealthStatusJSONMilliseconds(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	// Durations serialize as milliseconds, not nanoseconds.
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, fmt.Sprintf("response_time_ms missing in %s", jsonBytes))
	assert.GreaterOrEqual(t, responseTime, float64(0))
	assert.Less(t, responseTime, float64(1000000))

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, waitDuration, float64(0))
}
