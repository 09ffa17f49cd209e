package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(jsonRequest(t, http.MethodPost, "/v1/auth/register", map[string]string{
		"email":    "mary@duka.example",
		"password": "a long enough password",
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg TokenResponse
	decodeJSON(t, rec, &reg)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "mary@duka.example", reg.Email)

	rec = ts.serve(jsonRequest(t, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "mary@duka.example",
		"password": "a long enough password",
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	var login TokenResponse
	decodeJSON(t, rec, &login)
	assert.Equal(t, reg.UserID, login.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(jsonRequest(t, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "owner@duka.example",
		"password": "wrong",
	}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeAuthenticationRequired, errorCode(t, rec))
}

func TestCreateTenant_ReturnsPlaintextKeyOnce(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(asUser(jsonRequest(t, http.MethodPost, "/v1/tenants", map[string]string{
		"name":     "Mama Njeri Salon",
		"slug":     "mama-njeri-salon",
		"timezone": "Africa/Nairobi",
	}), ts.ownerToken))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp TenantCreatedResponse
	decodeJSON(t, rec, &resp)
	assert.NotEmpty(t, resp.TenantID)
	assert.Equal(t, "mama-njeri-salon", resp.Slug)
	assert.True(t, strings.HasPrefix(resp.APIKey, "sk_"), "plaintext key returned once, got %q", resp.APIKey)

	// The stored tenant never carries the plaintext key.
	var page Page
	rec = ts.serve(asUser(jsonRequest(t, http.MethodGet, "/v1/tenants", nil), ts.ownerToken))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &page)
	assert.Equal(t, 2, page.Count)
	assert.NotContains(t, rec.Body.String(), resp.APIKey)
}

func TestCreateTenant_DuplicateSlug(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(asUser(jsonRequest(t, http.MethodPost, "/v1/tenants", map[string]string{
		"name": "Duka Two", "slug": "duka-la-mitumba", "timezone": "UTC",
	}), ts.ownerToken))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, CodeConflict, errorCode(t, rec))
}

func TestPlatformSuspendAndActivate(t *testing.T) {
	ts := newTestServer(t)
	operator, token := ts.platformOperator(t)
	_ = operator

	rec := ts.serve(asUser(jsonRequest(t, http.MethodPost, "/v1/platform/tenants/"+ts.tenant.ID+"/suspend", nil), token))
	require.Equal(t, http.StatusOK, rec.Code)

	// Suspended tenants lose API access.
	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/customers", nil)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, CodeTenantAccessDenied, errorCode(t, rec))

	rec = ts.serve(asUser(jsonRequest(t, http.MethodPost, "/v1/platform/tenants/"+ts.tenant.ID+"/activate", nil), token))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/customers", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
