package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEmbeddings struct {
	gotParams openai.EmbeddingNewParams
	resp      *openai.CreateEmbeddingResponse
	err       error
}

func (m *mockEmbeddings) New(_ context.Context, params openai.EmbeddingNewParams, _ ...option.RequestOption) (*openai.CreateEmbeddingResponse, error) {
	m.gotParams = params
	return m.resp, m.err
}

func TestEmbed(t *testing.T) {
	mock := &mockEmbeddings{
		resp: &openai.CreateEmbeddingResponse{
			Data: []openai.Embedding{{Embedding: []float64{0.1, -0.5, 0.9}}},
		},
	}
	e := NewOpenAIEmbedderWithClient("", mock)

	vec, err := e.Embed(context.Background(), "red ankara dress size 12")
	require.NoError(t, err)

	assert.Equal(t, []float32{0.1, -0.5, 0.9}, vec)
	assert.Equal(t, openai.EmbeddingModel(defaultEmbeddingModel), mock.gotParams.Model)
}

func TestEmbed_RequestError(t *testing.T) {
	e := NewOpenAIEmbedderWithClient("text-embedding-3-large", &mockEmbeddings{err: errors.New("quota exceeded")})

	_, err := e.Embed(context.Background(), "query")
	assert.ErrorContains(t, err, "embedding request failed")
}

func TestEmbed_EmptyResponse(t *testing.T) {
	e := NewOpenAIEmbedderWithClient("", &mockEmbeddings{resp: &openai.CreateEmbeddingResponse{}})

	_, err := e.Embed(context.Background(), "query")
	assert.Error(t, err)
}
