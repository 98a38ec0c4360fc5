// Package llm provides the language-model providers used by the generation
// stage (Gemini primary, OpenAI secondary) and the embedding provider used
// by the RAG retriever. Providers share a uniform interface; selection is
// configuration, not failover.
package llm

import "context"

// GenerateRequest is one text-generation call.
type GenerateRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Provider generates text from a prompt.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Embedder produces the 1536-dimension embeddings the template index is
// built on.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingDimensions is the fixed embedding width. The pgvector column and
// the ivfflat index are declared with the same value.
const EmbeddingDimensions = 1536
