package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/pkg/config"
	testdb "github.com/sokochat/sokochat/test/database"
)

func seedRetrievalTenant(t *testing.T, client *ent.Client) string {
	t.Helper()
	id := uuid.New().String()
	_, err := client.Tenant.Create().
		SetID(id).
		SetName("Duka la Mitumba").
		SetSlug("duka-" + id[:8]).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func seedProduct(t *testing.T, client *ent.Client, tenantID, name string, tags []string, priceCents, stock int) (productID, variantID string) {
	t.Helper()
	ctx := context.Background()
	productID = uuid.NewString()
	create := client.Product.Create().
		SetID(productID).
		SetTenantID(tenantID).
		SetName(name)
	if len(tags) > 0 {
		create.SetTags(tags)
	}
	_, err := create.Save(ctx)
	require.NoError(t, err)

	variantID = uuid.NewString()
	_, err = client.ProductVariant.Create().
		SetID(variantID).
		SetTenantID(tenantID).
		SetProductID(productID).
		SetLabel("Blue / M").
		SetPriceCents(priceCents).
		SetCurrency("KES").
		SetStock(stock).
		SetAttributes(map[string]string{"color": "blue"}).
		Save(ctx)
	require.NoError(t, err)
	return productID, variantID
}

func TestRetriever_MatchesCatalogAndKnowledge(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedRetrievalTenant(t, client)
	ctx := context.Background()

	seedProduct(t, client, tenantID, "Kitenge Dress", []string{"dresses"}, 250000, 5)
	seedProduct(t, client, tenantID, "Leather Sandals", []string{"shoes"}, 180000, 3)

	_, err := client.KnowledgeEntry.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetTitle("Delivery").
		SetBody("Delivery within Nairobi is KES 200 and takes 2 days.").
		Save(ctx)
	require.NoError(t, err)

	r := NewRetriever(client, config.DefaultAgentConfig().Retrieval, nil)

	ret, err := r.Retrieve(ctx, tenantID, "do you have dresses for delivery?")
	require.NoError(t, err)

	require.Len(t, ret.Candidates, 1)
	assert.Equal(t, "Kitenge Dress", ret.Candidates[0].ProductName)
	require.Len(t, ret.Knowledge, 1)
	assert.Contains(t, ret.Knowledge[0].Body, "Nairobi")

	require.Len(t, ret.Pack.Catalog, 1)
	assert.Equal(t, 250000, ret.Pack.Catalog[0].PriceCents)
	assert.True(t, ret.Pack.Catalog[0].InStock)
	require.Len(t, ret.Pack.Knowledge, 1)
}

func TestRetriever_IgnoresOtherTenants(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantA := seedRetrievalTenant(t, client)
	tenantB := seedRetrievalTenant(t, client)
	seedProduct(t, client, tenantB, "Kitenge Dress", []string{"dresses"}, 250000, 5)

	r := NewRetriever(client, config.DefaultAgentConfig().Retrieval, nil)
	ret, err := r.Retrieve(context.Background(), tenantA, "show me dresses")
	require.NoError(t, err)
	assert.Empty(t, ret.Candidates)
}

type stubVector struct {
	hits []VectorHit
	err  error
}

func (s *stubVector) Search(context.Context, string, string, int, float32) ([]VectorHit, error) {
	return s.hits, s.err
}

func TestRetriever_VectorWidensCandidates(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedRetrievalTenant(t, client)

	// Token matching alone would miss this product for the query below.
	productID, _ := seedProduct(t, client, tenantID, "Ankara Gown", nil, 320000, 2)

	cfg := config.DefaultAgentConfig().Retrieval
	cfg.VectorEnabled = true
	r := NewRetriever(client, cfg, &stubVector{hits: []VectorHit{
		{Kind: "product", RefID: productID, Score: 0.9},
	}})

	ret, err := r.Retrieve(context.Background(), tenantID, "something nice for a wedding")
	require.NoError(t, err)
	require.Len(t, ret.Candidates, 1)
	assert.Equal(t, "Ankara Gown", ret.Candidates[0].ProductName)
}

func TestRetriever_VectorFailureDegrades(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedRetrievalTenant(t, client)
	seedProduct(t, client, tenantID, "Kitenge Dress", []string{"dresses"}, 250000, 5)

	cfg := config.DefaultAgentConfig().Retrieval
	cfg.VectorEnabled = true
	r := NewRetriever(client, cfg, &stubVector{err: errors.New("index unreachable")})

	ret, err := r.Retrieve(context.Background(), tenantID, "show me dresses")
	require.NoError(t, err, "semantic retrieval failure is never fatal")
	require.Len(t, ret.Candidates, 1)
}
