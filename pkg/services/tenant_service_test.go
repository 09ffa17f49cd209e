package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent/role"
	"github.com/sokochat/sokochat/ent/tenant"
)

func TestTenantService_CreateTenantBundle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, tenant.StatusTrial, f.tenant.Status)
	assert.Equal(t, "starter", f.tenant.SubscriptionTier)
	assert.NotNil(t, f.tenant.TrialEndsAt)

	roles, err := f.client.Role.Query().
		Where(role.TenantID(f.tenant.ID)).
		WithPermissions().
		All(ctx)
	require.NoError(t, err)
	require.Len(t, roles, len(seedRoleGrants()))

	byName := make(map[string]int)
	for _, r := range roles {
		assert.True(t, r.IsSystem)
		byName[r.Name] = len(r.Edges.Permissions)
	}
	assert.Equal(t, len(AllScopes), byName[RoleOwner])
	assert.Equal(t, len(AllScopes)-1, byName[RoleAdmin], "admin lacks withdrawal approval")

	settings, err := f.client.TenantSettings.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, settings, 1)

	scopes, err := f.scopes.Resolve(ctx, f.tenant.ID, f.owner.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, AllScopes, scopes, "owner holds every scope")

	assert.True(t, strings.HasPrefix(f.apiKey, "sk_"))
	assert.True(t, f.tenants.VerifyAPIKey(ctx, f.tenant, f.apiKey))
	assert.False(t, f.tenants.VerifyAPIKey(ctx, f.tenant, "sk_wrong"))
}

func TestTenantService_SlugConflict(t *testing.T) {
	f := newFixture(t)

	_, err := f.tenants.CreateTenant(context.Background(), CreateTenantInput{
		OwnerUserID: f.owner.ID,
		Name:        "Second Shop",
		Slug:        "duka-la-mitumba",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestTenantService_SlugValidation(t *testing.T) {
	f := newFixture(t)

	for _, slug := range []string{"", "Has-Caps", "spaces here", "-leading", "trailing-"} {
		_, err := f.tenants.CreateTenant(context.Background(), CreateTenantInput{
			OwnerUserID: f.owner.ID,
			Name:        "Shop",
			Slug:        slug,
		})
		assert.True(t, IsValidationError(err), "slug %q", slug)
	}
}

func TestTenantService_LifecycleTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	suspended, err := f.tenants.Suspend(ctx, f.tenant.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.StatusSuspended, suspended.Status)

	_, err = f.tenants.Suspend(ctx, f.tenant.ID, f.owner.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "suspended tenant cannot be suspended again")

	activated, err := f.tenants.Activate(ctx, f.tenant.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.StatusActive, activated.Status)

	canceled, err := f.tenants.Cancel(ctx, f.tenant.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.StatusCanceled, canceled.Status)

	_, err = f.tenants.Activate(ctx, f.tenant.ID, f.owner.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "canceled is terminal")

	logs, _, err := f.audit.List(ctx, f.tenant.ID, 50, 0)
	require.NoError(t, err)
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	assert.Contains(t, actions, "tenant.suspended")
	assert.Contains(t, actions, "tenant.active")
	assert.Contains(t, actions, "tenant.canceled")
}

func TestTenantService_APIKeyRotation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	second, err := f.tenants.CreateAPIKey(ctx, f.tenant.ID, "ci")
	require.NoError(t, err)
	assert.NotEqual(t, f.apiKey, second)

	tn, err := f.client.Tenant.Get(ctx, f.tenant.ID)
	require.NoError(t, err)
	require.Len(t, tn.APIKeys, 2)
	assert.True(t, f.tenants.VerifyAPIKey(ctx, tn, f.apiKey))
	assert.True(t, f.tenants.VerifyAPIKey(ctx, tn, second))

	// A verified key gets a usage stamp.
	tn, err = f.client.Tenant.Get(ctx, f.tenant.ID)
	require.NoError(t, err)
	stamped := 0
	for _, entry := range tn.APIKeys {
		if entry.LastUsedAt != nil {
			stamped++
		}
	}
	assert.Equal(t, 2, stamped)
}

func TestTenantService_Memberships(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tenants, err := f.tenants.Memberships(ctx, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, f.tenant.ID, tenants[0].ID)

	stranger, err := f.auth.Register(ctx, "stranger@example.com", "long enough password")
	require.NoError(t, err)
	tenants, err = f.tenants.Memberships(ctx, stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, tenants)
}
