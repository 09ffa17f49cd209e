package agent

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"
)

// VectorHit is one semantic-search candidate.
type VectorHit struct {
	// Kind is "product" or "knowledge".
	Kind  string
	RefID string
	Score float32
}

// VectorSearcher is the optional semantic index. Failures are never fatal to
// a turn; retrieval degrades to database matching.
type VectorSearcher interface {
	Search(ctx context.Context, tenantID, query string, topK int, minScore float32) ([]VectorHit, error)
}

// Embedder turns a query into the vector the index was built with.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// qdrantSearcher implements VectorSearcher against a qdrant collection whose
// points carry tenant_id, kind, and ref_id payload fields.
type qdrantSearcher struct {
	client     *qdrant.Client
	collection string
	embedder   Embedder
}

// NewQdrantSearcher creates a VectorSearcher over the given collection.
func NewQdrantSearcher(client *qdrant.Client, collection string, embedder Embedder) VectorSearcher {
	return &qdrantSearcher{client: client, collection: collection, embedder: embedder}
}

func (s *qdrantSearcher) Search(ctx context.Context, tenantID, query string, topK int, minScore float32) ([]VectorHit, error) {
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vec...),
		Limit:          qdrant.PtrOf(uint64(topK)),
		ScoreThreshold: qdrant.PtrOf(minScore),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("tenant_id", tenantID),
			},
		},
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query vector index: %w", err)
	}

	hits := make([]VectorHit, 0, len(points))
	for _, p := range points {
		payload := p.GetPayload()
		hits = append(hits, VectorHit{
			Kind:  payload["kind"].GetStringValue(),
			RefID: payload["ref_id"].GetStringValue(),
			Score: p.GetScore(),
		})
	}
	return hits, nil
}
