package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/pkg/llm"
	"github.com/chainforge-ai/chainforge/pkg/rag"
)

// TemplateService reads and seeds contract templates. Similarity search
// goes through raw SQL: the embedding column and its ivfflat index are
// created by the SQL migrations, outside the ent schema.
type TemplateService struct {
	client *ent.Client
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(client *ent.Client) *TemplateService {
	return &TemplateService{client: client}
}

// SearchSimilar runs a cosine k-nearest-neighbor query over the template
// embeddings. Results arrive ordered by descending similarity; the caller
// applies the similarity threshold. Implements the retriever's search
// contract.
func (s *TemplateService) SearchSimilar(ctx context.Context, embedding []float32, contractType string, limit int) ([]rag.Template, error) {
	if len(embedding) != llm.EmbeddingDimensions {
		return nil, NewValidationError("embedding", fmt.Sprintf("expected %d dimensions, got %d", llm.EmbeddingDimensions, len(embedding)))
	}
	if limit <= 0 {
		limit = rag.MaxResults
	}

	query := `
		SELECT template_id, name, contract_type, source_code, COALESCE(description, ''),
		       1 - (embedding <=> $1::vector) AS similarity
		FROM templates
		WHERE active AND embedding IS NOT NULL`
	args := []any{vectorLiteral(embedding)}
	if contractType != "" {
		query += ` AND contract_type = $2`
		args = append(args, contractType)
	}
	query += fmt.Sprintf(` ORDER BY embedding <=> $1::vector LIMIT %d`, limit)

	rows, err := s.client.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search templates: %w", err)
	}
	defer rows.Close()

	var results []rag.Template
	for rows.Next() {
		var tpl rag.Template
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.ContractType, &tpl.SourceCode, &tpl.Description, &tpl.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan template row: %w", err)
		}
		results = append(results, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("template search failed: %w", err)
	}
	return results, nil
}

// SeedTemplateInput is the input to Seed.
type SeedTemplateInput struct {
	Name         string
	ContractType string
	SourceCode   string
	Description  string
	Tags         []string
	Embedding    []float32
}

// Seed inserts a template with its embedding. Used by the seeding CLI path;
// the engine itself only reads templates.
func (s *TemplateService) Seed(ctx context.Context, in SeedTemplateInput) (string, error) {
	if in.Name == "" {
		return "", NewValidationError("name", "required")
	}
	if in.SourceCode == "" {
		return "", NewValidationError("source_code", "required")
	}
	if len(in.Embedding) != llm.EmbeddingDimensions {
		return "", NewValidationError("embedding", fmt.Sprintf("expected %d dimensions, got %d", llm.EmbeddingDimensions, len(in.Embedding)))
	}

	builder := s.client.Template.Create().
		SetID(uuid.New().String()).
		SetName(in.Name).
		SetContractType(in.ContractType).
		SetSourceCode(in.SourceCode)
	if in.Description != "" {
		builder.SetDescription(in.Description)
	}
	if len(in.Tags) > 0 {
		builder.SetTags(in.Tags)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return "", ErrAlreadyExists
		}
		return "", fmt.Errorf("failed to create template: %w", err)
	}

	// The embedding column is outside the ent schema; write it directly.
	_, err = s.client.ExecContext(ctx,
		`UPDATE templates SET embedding = $1::vector WHERE template_id = $2`,
		vectorLiteral(in.Embedding), row.ID)
	if err != nil {
		return "", fmt.Errorf("failed to store template embedding: %w", err)
	}
	return row.ID, nil
}

// vectorLiteral renders an embedding in pgvector's input syntax.
func vectorLiteral(embedding []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range embedding {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}
