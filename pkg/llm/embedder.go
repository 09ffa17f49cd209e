package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// defaultEmbeddingModel is used when no model is configured.
const defaultEmbeddingModel = "text-embedding-3-small"

// EmbeddingService captures the subset of the OpenAI SDK used by the
// embedder. It is satisfied by client.Embeddings so tests can pass a mock.
type EmbeddingService interface {
	New(ctx context.Context, params openai.EmbeddingNewParams, opts ...option.RequestOption) (*openai.CreateEmbeddingResponse, error)
}

// OpenAIEmbedder produces query vectors for the semantic index.
type OpenAIEmbedder struct {
	embeddings EmbeddingService
	model      string
}

// NewOpenAIEmbedder builds an embedder from the OPENAI_API_KEY environment
// variable. model may be empty to use the default.
func NewOpenAIEmbedder(model string) (*OpenAIEmbedder, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("embedder: environment variable OPENAI_API_KEY is not set")
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return NewOpenAIEmbedderWithClient(model, &client.Embeddings), nil
}

// NewOpenAIEmbedderWithClient builds the embedder around an existing
// embedding service (used by tests).
func NewOpenAIEmbedderWithClient(model string, embeddings EmbeddingService) *OpenAIEmbedder {
	if model == "" {
		model = defaultEmbeddingModel
	}
	return &OpenAIEmbedder{embeddings: embeddings, model: model}
}

// Embed returns the vector for one query text.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(e.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfString: openai.String(text),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding response carried no vectors")
	}

	vec := make([]float32, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vec[i] = float32(v)
	}
	return vec, nil
}
