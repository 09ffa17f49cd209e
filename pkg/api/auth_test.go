package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent/tenant"
)

func TestAuthenticate_MissingHeader(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(jsonRequest(t, http.MethodGet, "/v1/tenants", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeAuthenticationRequired, errorCode(t, rec))
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	ts := newTestServer(t)

	req := jsonRequest(t, http.MethodGet, "/v1/tenants", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := ts.serve(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeInvalidToken, errorCode(t, rec))
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(asUser(jsonRequest(t, http.MethodGet, "/v1/tenants", nil), "not-a-token"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeInvalidToken, errorCode(t, rec))
}

func TestRequireSuperuser_RegularUserRejected(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(asUser(jsonRequest(t, http.MethodGet, "/v1/platform/tenants", nil), ts.ownerToken))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, CodeInsufficientPermissions, errorCode(t, rec))
}

func TestRequireSuperuser_Allowed(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.client.User.UpdateOneID(ts.owner.ID).SetIsSuperuser(true).Exec(context.Background()))

	rec := ts.serve(asUser(jsonRequest(t, http.MethodGet, "/v1/platform/tenants", nil), ts.ownerToken))

	assert.Equal(t, http.StatusOK, rec.Code)
	var page Page
	decodeJSON(t, rec, &page)
	assert.Equal(t, 1, page.Count)
}

func TestRequireTenant_MissingHeaders(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(asUser(jsonRequest(t, http.MethodGet, "/v1/customers", nil), ts.ownerToken))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeTenantContextRequired, errorCode(t, rec))
}

func TestRequireTenant_WrongAPIKey(t *testing.T) {
	ts := newTestServer(t)

	req := asUser(jsonRequest(t, http.MethodGet, "/v1/customers", nil), ts.ownerToken)
	req.Header.Set(tenantIDHeader, ts.tenant.ID)
	req.Header.Set(tenantKeyHeader, "sk_wrong")
	rec := ts.serve(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, CodeTenantAccessDenied, errorCode(t, rec))
}

func TestRequireTenant_UnknownTenant(t *testing.T) {
	ts := newTestServer(t)

	req := asUser(jsonRequest(t, http.MethodGet, "/v1/customers", nil), ts.ownerToken)
	req.Header.Set(tenantIDHeader, "no-such-tenant")
	req.Header.Set(tenantKeyHeader, ts.apiKey)
	rec := ts.serve(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, CodeTenantAccessDenied, errorCode(t, rec))
}

func TestRequireTenant_NonMemberRejected(t *testing.T) {
	ts := newTestServer(t)

	// Registered user with a valid key but no membership in the tenant.
	_, err := ts.auth.Register(context.Background(), "stranger@elsewhere.example", "some password")
	require.NoError(t, err)
	token, _, err := ts.auth.Login(context.Background(), "stranger@elsewhere.example", "some password")
	require.NoError(t, err)

	req := asUser(jsonRequest(t, http.MethodGet, "/v1/customers", nil), token)
	req.Header.Set(tenantIDHeader, ts.tenant.ID)
	req.Header.Set(tenantKeyHeader, ts.apiKey)
	rec := ts.serve(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, CodeTenantAccessDenied, errorCode(t, rec))
}

func TestRequireTenant_SuspendedTenantRejected(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.client.Tenant.UpdateOneID(ts.tenant.ID).
		SetStatus(tenant.StatusSuspended).
		Exec(context.Background()))

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/customers", nil)))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, CodeTenantAccessDenied, errorCode(t, rec))
}

func TestRequireScopes_MemberWithoutRoles(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.member(t, "agent@duka.example")

	req := asUser(jsonRequest(t, http.MethodGet, "/v1/customers", nil), token)
	req.Header.Set(tenantIDHeader, ts.tenant.ID)
	req.Header.Set(tenantKeyHeader, ts.apiKey)
	rec := ts.serve(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	var resp ErrorResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, CodeInsufficientPermissions, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "required")
}

func TestRequireScopes_OwnerAllowed(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/customers", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
}
