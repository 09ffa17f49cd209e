package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProductBody() createProductRequest {
	return createProductRequest{
		Name:        "Ankara Dress",
		Description: "Handmade ankara print dress",
		Tags:        []string{"clothing"},
		Variants: []productVariantRequest{
			{Label: "Size M", PriceCents: 250000, Currency: "KES", Stock: 5},
			{Label: "Size L", PriceCents: 250000, Currency: "KES", Stock: 3, Attributes: map[string]string{"size": "L"}},
		},
	}
}

type productJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Edges struct {
		Variants []struct {
			ID         string `json:"id"`
			Label      string `json:"label"`
			PriceCents int    `json:"price_cents"`
			Stock      int    `json:"stock"`
		} `json:"variants"`
	} `json:"edges"`
}

func (ts *testServer) createProduct(t *testing.T) productJSON {
	t.Helper()
	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/catalog/products", createProductBody())))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var p productJSON
	decodeJSON(t, rec, &p)
	return p
}

func TestCreateProduct(t *testing.T) {
	ts := newTestServer(t)

	p := ts.createProduct(t)
	assert.Equal(t, "Ankara Dress", p.Name)
	require.Len(t, p.Edges.Variants, 2)
	assert.Equal(t, 250000, p.Edges.Variants[0].PriceCents)
}

func TestCreateProduct_NoVariants(t *testing.T) {
	ts := newTestServer(t)

	body := createProductBody()
	body.Variants = nil
	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/catalog/products", body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidationFailed, errorCode(t, rec))
}

func TestCreateProduct_RequiresCatalogScope(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.member(t, "staff@duka.example")

	req := jsonRequest(t, http.MethodPost, "/v1/catalog/products", createProductBody())
	asUser(req, token)
	req.Header.Set(tenantIDHeader, ts.tenant.ID)
	req.Header.Set(tenantKeyHeader, ts.apiKey)

	rec := ts.serve(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, CodeInsufficientPermissions, errorCode(t, rec))
}

func TestListProducts_ExcludesArchived(t *testing.T) {
	ts := newTestServer(t)

	keep := ts.createProduct(t)
	archived := ts.createProduct(t)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/catalog/products/"+archived.ID+"/archive", nil)))
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/catalog/products", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Count   int           `json:"count"`
		Results []productJSON `json:"results"`
	}
	decodeJSON(t, rec, &page)
	require.Equal(t, 1, page.Count)
	assert.Equal(t, keep.ID, page.Results[0].ID)
}

func TestSetStock(t *testing.T) {
	ts := newTestServer(t)
	p := ts.createProduct(t)
	variantID := p.Edges.Variants[0].ID

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPatch,
		"/v1/catalog/variants/"+variantID+"/stock", setStockRequest{Stock: 40})))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var v struct {
		Stock int `json:"stock"`
	}
	decodeJSON(t, rec, &v)
	assert.Equal(t, 40, v.Stock)
}

func TestSetStock_UnknownVariant(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPatch,
		"/v1/catalog/variants/nope/stock", setStockRequest{Stock: 1})))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotFound, errorCode(t, rec))
}

func TestKnowledgeLifecycle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/catalog/knowledge", knowledgeEntryRequest{
		Title: "Delivery policy",
		Body:  "We deliver within Nairobi in 24 hours.",
		Tags:  []string{"policy"},
	})))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var entry struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	decodeJSON(t, rec, &entry)
	assert.Equal(t, "Delivery policy", entry.Title)

	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/catalog/knowledge", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Count int `json:"count"`
	}
	decodeJSON(t, rec, &page)
	assert.Equal(t, 1, page.Count)

	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodDelete, "/v1/catalog/knowledge/"+entry.ID, nil)))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/catalog/knowledge", nil)))
	decodeJSON(t, rec, &page)
	assert.Equal(t, 0, page.Count)
}

func TestCreateKnowledgeEntry_MissingBody(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/catalog/knowledge", knowledgeEntryRequest{
		Title: "Empty",
	})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidationFailed, errorCode(t, rec))
}
