package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/role"
	"github.com/sokochat/sokochat/ent/withdrawal"
	"github.com/sokochat/sokochat/pkg/services"
)

// financeAdmin adds a member holding the Finance Admin seed role, so it can
// approve withdrawals it did not initiate.
func (ts *testServer) financeAdmin(t *testing.T, email string) (*ent.User, string) {
	t.Helper()
	ctx := context.Background()

	u, token := ts.member(t, email)
	r, err := ts.client.Role.Query().
		Where(role.TenantID(ts.tenant.ID), role.Name(services.RoleFinanceAdmin)).
		Only(ctx)
	require.NoError(t, err)
	require.NoError(t, ts.scopes.AssignRole(ctx, ts.tenant.ID, u.ID, r.ID))
	return u, token
}

func (ts *testServer) asTenantUser(req *http.Request, token string) *http.Request {
	asUser(req, token)
	req.Header.Set(tenantIDHeader, ts.tenant.ID)
	req.Header.Set(tenantKeyHeader, ts.apiKey)
	return req
}

func TestWithdraw(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/wallet/withdraw", map[string]interface{}{
		"amount_cents": 150000,
		"currency":     "KES",
	})))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var w map[string]interface{}
	decodeJSON(t, rec, &w)
	assert.Equal(t, string(withdrawal.StatusPending), w["status"])
	assert.Equal(t, ts.owner.ID, w["created_by"])
}

func TestWithdraw_SelfApprovalRejected(t *testing.T) {
	ts := newTestServer(t)

	w, err := ts.withdrawals.Create(context.Background(), ts.tenant.ID, ts.owner.ID, 50000, "KES")
	require.NoError(t, err)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/wallet/withdrawals/"+w.ID+"/approve", nil)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, CodeFourEyesViolation, errorCode(t, rec))
}

func TestWithdraw_SecondUserApproves(t *testing.T) {
	ts := newTestServer(t)
	_, approverToken := ts.financeAdmin(t, "finance@duka.example")

	w, err := ts.withdrawals.Create(context.Background(), ts.tenant.ID, ts.owner.ID, 50000, "KES")
	require.NoError(t, err)

	rec := ts.serve(ts.asTenantUser(
		jsonRequest(t, http.MethodPost, "/v1/wallet/withdrawals/"+w.ID+"/approve", nil), approverToken))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var approved map[string]interface{}
	decodeJSON(t, rec, &approved)
	assert.Equal(t, string(withdrawal.StatusApproved), approved["status"])
}

func TestWithdraw_ApproveRequiresScope(t *testing.T) {
	ts := newTestServer(t)
	_, plainToken := ts.member(t, "staff@duka.example")

	w, err := ts.withdrawals.Create(context.Background(), ts.tenant.ID, ts.owner.ID, 50000, "KES")
	require.NoError(t, err)

	rec := ts.serve(ts.asTenantUser(
		jsonRequest(t, http.MethodPost, "/v1/wallet/withdrawals/"+w.ID+"/approve", nil), plainToken))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, CodeInsufficientPermissions, errorCode(t, rec))
}

func TestListWithdrawals(t *testing.T) {
	ts := newTestServer(t)

	for i := 0; i < 2; i++ {
		_, err := ts.withdrawals.Create(context.Background(), ts.tenant.ID, ts.owner.ID, 10000, "KES")
		require.NoError(t, err)
	}

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/wallet/withdrawals", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var page Page
	decodeJSON(t, rec, &page)
	assert.Equal(t, 2, page.Count)
}
