package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct {
	vec []float32
	err error
}

func (s *stubEmbedder) Embed(context.Context, string) ([]float32, error) {
	return s.vec, s.err
}

type stubSearcher struct {
	results      []Template
	err          error
	gotType      string
	gotLimit     int
	gotEmbedding []float32
}

func (s *stubSearcher) SearchSimilar(_ context.Context, embedding []float32, contractType string, limit int) ([]Template, error) {
	s.gotEmbedding = embedding
	s.gotType = contractType
	s.gotLimit = limit
	return s.results, s.err
}

func TestRetrieveFiltersByThreshold(t *testing.T) {
	searcher := &stubSearcher{results: []Template{
		{Name: "erc20-basic", Similarity: 0.93},
		{Name: "erc20-mintable", Similarity: 0.7},
		{Name: "erc721-basic", Similarity: 0.699},
	}}
	r := NewRetriever(&stubEmbedder{vec: make([]float32, 1536)}, searcher)

	got := r.Retrieve(context.Background(), "an ERC20 token", "ERC20")

	// Exactly 0.7 is included; 0.699 is excluded.
	require.Len(t, got, 2)
	assert.Equal(t, "erc20-basic", got[0].Name)
	assert.Equal(t, "erc20-mintable", got[1].Name)
	assert.Equal(t, "ERC20", searcher.gotType)
	assert.Equal(t, MaxResults, searcher.gotLimit)
}

func TestRetrieveEmptyOnEmbedFailure(t *testing.T) {
	searcher := &stubSearcher{results: []Template{{Name: "x", Similarity: 0.99}}}
	r := NewRetriever(&stubEmbedder{err: errors.New("embedding provider down")}, searcher)

	got := r.Retrieve(context.Background(), "anything", "")
	assert.Empty(t, got)
	assert.Nil(t, searcher.gotEmbedding, "search must not run when embedding fails")
}

func TestRetrieveEmptyOnSearchFailure(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("index offline")}
	r := NewRetriever(&stubEmbedder{vec: make([]float32, 1536)}, searcher)

	got := r.Retrieve(context.Background(), "anything", "")
	assert.Empty(t, got)
}

func TestRetrievePassesEmbeddingThrough(t *testing.T) {
	vec := make([]float32, 1536)
	vec[0] = 0.5
	searcher := &stubSearcher{}
	r := NewRetriever(&stubEmbedder{vec: vec}, searcher)

	r.Retrieve(context.Background(), "q", "")
	assert.Equal(t, vec, searcher.gotEmbedding)
}
