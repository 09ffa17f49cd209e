package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent/role"
)

func (f *fixture) roleID(t *testing.T, name string) string {
	t.Helper()
	r, err := f.client.Role.Query().
		Where(role.TenantID(f.tenant.ID), role.Name(name)).
		Only(context.Background())
	require.NoError(t, err)
	return r.ID
}

func TestScopeService_RoleUnion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.register(t, "staff@duka.example")

	scopes, err := f.scopes.Resolve(ctx, f.tenant.ID, u.ID)
	require.NoError(t, err)
	assert.Empty(t, scopes, "membership without roles grants nothing")

	require.NoError(t, f.scopes.AssignRole(ctx, f.tenant.ID, u.ID, f.roleID(t, RoleAnalyst)))
	require.NoError(t, f.scopes.AssignRole(ctx, f.tenant.ID, u.ID, f.roleID(t, RoleCatalogManager)))

	scopes, err = f.scopes.Resolve(ctx, f.tenant.ID, u.ID)
	require.NoError(t, err)
	assert.Contains(t, scopes, ScopeAnalyticsView)
	assert.Contains(t, scopes, ScopeCatalogEdit)
	assert.NotContains(t, scopes, ScopeWithdrawApprove)
}

func TestScopeService_DenyOverridesRoleGrant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.register(t, "staff@duka.example")
	require.NoError(t, f.scopes.AssignRole(ctx, f.tenant.ID, u.ID, f.roleID(t, RoleCatalogManager)))

	require.NoError(t, f.scopes.SetOverride(ctx, f.tenant.ID, u.ID, ScopeCatalogEdit, false))
	scopes, err := f.scopes.Resolve(ctx, f.tenant.ID, u.ID)
	require.NoError(t, err)
	assert.NotContains(t, scopes, ScopeCatalogEdit)
	assert.Contains(t, scopes, ScopeCatalogView, "other role grants survive the deny")

	require.NoError(t, f.scopes.ClearOverride(ctx, f.tenant.ID, u.ID, ScopeCatalogEdit))
	scopes, err = f.scopes.Resolve(ctx, f.tenant.ID, u.ID)
	require.NoError(t, err)
	assert.Contains(t, scopes, ScopeCatalogEdit)
}

func TestScopeService_GrantBeyondRoles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.register(t, "staff@duka.example")
	require.NoError(t, f.scopes.SetOverride(ctx, f.tenant.ID, u.ID, ScopeFinanceView, true))

	scopes, err := f.scopes.Resolve(ctx, f.tenant.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{ScopeFinanceView}, scopes)
}

func TestScopeService_DenyBeatsGrantOnSameCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.register(t, "staff@duka.example")
	require.NoError(t, f.scopes.AssignRole(ctx, f.tenant.ID, u.ID, f.roleID(t, RoleAnalyst)))

	// Flipping the same code both ways ends wherever the last write left it.
	require.NoError(t, f.scopes.SetOverride(ctx, f.tenant.ID, u.ID, ScopeOrdersView, true))
	require.NoError(t, f.scopes.SetOverride(ctx, f.tenant.ID, u.ID, ScopeOrdersView, false))

	scopes, err := f.scopes.Resolve(ctx, f.tenant.ID, u.ID)
	require.NoError(t, err)
	assert.NotContains(t, scopes, ScopeOrdersView)
}

func TestScopeService_NoMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	outsider, err := f.auth.Register(ctx, "outsider@example.com", "long enough password")
	require.NoError(t, err)

	_, err = f.scopes.Resolve(ctx, f.tenant.ID, outsider.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScopeService_RemoveRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.register(t, "staff@duka.example")
	analystID := f.roleID(t, RoleAnalyst)
	require.NoError(t, f.scopes.AssignRole(ctx, f.tenant.ID, u.ID, analystID))
	require.NoError(t, f.scopes.RemoveRole(ctx, f.tenant.ID, u.ID, analystID))

	scopes, err := f.scopes.Resolve(ctx, f.tenant.ID, u.ID)
	require.NoError(t, err)
	assert.Empty(t, scopes)
}

func TestScopeService_AssignRoleFromAnotherTenant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.tenants.CreateTenant(ctx, CreateTenantInput{
		OwnerUserID: f.owner.ID,
		Name:        "Second Shop",
		Slug:        "second-shop",
	})
	require.NoError(t, err)

	u := f.register(t, "staff@duka.example")
	foreignRole, err := f.client.Role.Query().
		Where(role.TenantID(other.Tenant.ID), role.Name(RoleOwner)).
		Only(ctx)
	require.NoError(t, err)

	err = f.scopes.AssignRole(ctx, f.tenant.ID, u.ID, foreignRole.ID)
	assert.ErrorIs(t, err, ErrNotFound, "roles never cross tenants")
}

func TestHasAll(t *testing.T) {
	scopes := []string{ScopeCatalogView, ScopeCatalogEdit}
	assert.True(t, HasAll(scopes, []string{ScopeCatalogView}))
	assert.True(t, HasAll(scopes, nil))
	assert.False(t, HasAll(scopes, []string{ScopeCatalogView, ScopeFinanceView}))
	assert.False(t, HasAll(nil, []string{ScopeCatalogView}))
}
