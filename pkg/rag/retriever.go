// Package rag implements retrieval-augmented generation support: given a
// user query, it returns the contract templates most similar to it so the
// generation prompt can cite real reference code.
package rag

import (
	"context"
	"log/slog"
)

// SimilarityThreshold is the inclusive cosine-similarity floor. A template
// scoring exactly at the threshold is returned.
const SimilarityThreshold = 0.7

// MaxResults caps how many templates one retrieval returns.
const MaxResults = 5

// Template is one retrieved contract template with its similarity score.
type Template struct {
	ID           string
	Name         string
	ContractType string
	SourceCode   string
	Description  string
	Similarity   float64
}

// Embedder embeds the user query. Implemented by llm.OpenAIProvider.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Searcher runs the k-nearest-neighbor lookup against the template store.
// Implemented by services.TemplateService over the pgvector index. Results
// arrive ordered by descending similarity.
type Searcher interface {
	SearchSimilar(ctx context.Context, embedding []float32, contractType string, limit int) ([]Template, error)
}

// Retriever ties the embedder and the template store together.
type Retriever struct {
	embedder Embedder
	searcher Searcher
}

// NewRetriever creates a retriever.
func NewRetriever(embedder Embedder, searcher Searcher) *Retriever {
	return &Retriever{embedder: embedder, searcher: searcher}
}

// Retrieve returns up to MaxResults templates with similarity ≥
// SimilarityThreshold, ordered by descending similarity. contractType, when
// non-empty, filters the candidate set.
//
// Failure policy: an embedding or lookup failure degrades to an empty
// result. The generator proceeds template-free rather than failing the
// workflow.
func (r *Retriever) Retrieve(ctx context.Context, query, contractType string) []Template {
	embedding, err := r.embedder.Embed(ctx, query)
	if err != nil {
		slog.Warn("Query embedding failed; generating without templates", "error", err)
		return nil
	}

	candidates, err := r.searcher.SearchSimilar(ctx, embedding, contractType, MaxResults)
	if err != nil {
		slog.Warn("Template search failed; generating without templates", "error", err)
		return nil
	}

	results := make([]Template, 0, len(candidates))
	for _, tpl := range candidates {
		if tpl.Similarity >= SimilarityThreshold {
			results = append(results, tpl)
		}
	}
	return results
}
