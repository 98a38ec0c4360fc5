package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/pkg/llm"
	"github.com/chainforge-ai/chainforge/pkg/services"
	testdb "github.com/chainforge-ai/chainforge/test/database"
)

// axisEmbedding builds a 1536-dim unit vector along one axis, so cosine
// similarity between distinct axes is exactly 0.
func axisEmbedding(axis int) []float32 {
	v := make([]float32, llm.EmbeddingDimensions)
	v[axis] = 1
	return v
}

func seedTemplate(t *testing.T, svc *services.TemplateService, name, contractType string, axis int) string {
	t.Helper()
	id, err := svc.Seed(context.Background(), services.SeedTemplateInput{
		Name:         name,
		ContractType: contractType,
		SourceCode:   "pragma solidity ^0.8.27; contract " + name + " {}",
		Description:  name + " reference implementation",
		Tags:         []string{"seeded"},
		Embedding:    axisEmbedding(axis),
	})
	require.NoError(t, err)
	return id
}

func TestTemplateSeedAndSearch(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTemplateService(client.Client)
	ctx := context.Background()

	tokenID := seedTemplate(t, svc, "Erc20Capped", "ERC20", 0)
	seedTemplate(t, svc, "Erc721Basic", "ERC721", 1)
	seedTemplate(t, svc, "DaoVoting", "DAO", 2)

	t.Run("nearest first", func(t *testing.T) {
		got, err := svc.SearchSimilar(ctx, axisEmbedding(0), "", 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, tokenID, got[0].ID)
		assert.InDelta(t, 1.0, got[0].Similarity, 1e-6)
		assert.Less(t, got[1].Similarity, 0.5)
	})

	t.Run("contract type filter", func(t *testing.T) {
		got, err := svc.SearchSimilar(ctx, axisEmbedding(0), "ERC721", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Erc721Basic", got[0].Name)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := svc.SearchSimilar(ctx, axisEmbedding(0), "", 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("dimension check", func(t *testing.T) {
		_, err := svc.SearchSimilar(ctx, []float32{1, 2, 3}, "", 10)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := svc.Seed(ctx, services.SeedTemplateInput{
			Name:       "Erc20Capped",
			SourceCode: "contract Erc20Capped {}",
			Embedding:  axisEmbedding(0),
		})
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})
}

func TestTemplateSeedValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTemplateService(client.Client)
	ctx := context.Background()

	_, err := svc.Seed(ctx, services.SeedTemplateInput{SourceCode: "src", Embedding: axisEmbedding(0)})
	assert.True(t, services.IsValidationError(err))

	_, err = svc.Seed(ctx, services.SeedTemplateInput{Name: "NoSource", Embedding: axisEmbedding(0)})
	assert.True(t, services.IsValidationError(err))

	_, err = svc.Seed(ctx, services.SeedTemplateInput{Name: "BadDims", SourceCode: "src", Embedding: []float32{1}})
	assert.True(t, services.IsValidationError(err))
}
