package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/tenantuser"
	"github.com/sokochat/sokochat/pkg/config"
	testdb "github.com/sokochat/sokochat/test/database"
)

func testConfig() *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{Tier: "starter", Currency: "KES"},
	}
}

// fixture wires the core services against a per-test schema with one tenant
// owned by one registered user.
type fixture struct {
	client  *ent.Client
	audit   *AuditService
	auth    *AuthService
	tenants *TenantService
	scopes  *ScopeService

	owner  *ent.User
	tenant *ent.Tenant
	apiKey string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	client := testdb.NewTestClient(t)
	audit := NewAuditService(client)
	f := &fixture{
		client:  client,
		audit:   audit,
		auth:    NewAuthService(client, []byte("test-signing-secret")),
		tenants: NewTenantService(client, testConfig(), audit),
		scopes:  NewScopeService(client, nil),
	}

	owner, err := f.auth.Register(ctx, "owner@duka.example", "correct horse battery")
	require.NoError(t, err)
	f.owner = owner

	res, err := f.tenants.CreateTenant(ctx, CreateTenantInput{
		OwnerUserID: owner.ID,
		Name:        "Duka la Mitumba",
		Slug:        "duka-la-mitumba",
		Timezone:    "Africa/Nairobi",
	})
	require.NoError(t, err)
	f.tenant = res.Tenant
	f.apiKey = res.PlaintextAPIKey

	return f
}

// register creates a second user and an accepted membership without roles.
func (f *fixture) register(t *testing.T, email string) *ent.User {
	t.Helper()
	ctx := context.Background()

	u, err := f.auth.Register(ctx, email, "another password")
	require.NoError(t, err)

	_, err = f.client.TenantUser.Create().
		SetID(u.ID + "-membership").
		SetTenantID(f.tenant.ID).
		SetUserID(u.ID).
		SetInvitationStatus(tenantuser.InvitationStatusAccepted).
		Save(ctx)
	require.NoError(t, err)
	return u
}
