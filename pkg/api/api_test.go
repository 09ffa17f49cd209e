package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/tenantuser"
	"github.com/sokochat/sokochat/pkg/campaign"
	"github.com/sokochat/sokochat/pkg/checkout"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/crypto"
	"github.com/sokochat/sokochat/pkg/dispatch"
	"github.com/sokochat/sokochat/pkg/harmonizer"
	"github.com/sokochat/sokochat/pkg/outbox"
	"github.com/sokochat/sokochat/pkg/payments"
	"github.com/sokochat/sokochat/pkg/services"
	"github.com/sokochat/sokochat/pkg/telephony"
	testdb "github.com/sokochat/sokochat/test/database"
)

const testDailyLimit = 100

func testAPIConfig() *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{Tier: "starter", Currency: "KES"},
		System: &config.SystemConfig{
			PublicBaseURL:    "https://api.sokochat.test",
			WebhookTolerance: 5 * time.Minute,
		},
		Dispatch: config.DefaultDispatchConfig(),
		Queue:    config.DefaultQueueConfig(),
		Campaign: config.DefaultCampaignConfig(),
		TierRegistry: config.NewTierRegistry(map[string]*config.TierConfig{
			"starter": {MaxCampaignVariants: 2, DailyMessageLimit: testDailyLimit},
		}),
	}
}

type stubSender struct {
	mu     sync.Mutex
	inputs []telephony.SendInput
}

func (s *stubSender) Send(_ context.Context, _ telephony.Credentials, in telephony.SendInput) (*telephony.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = append(s.inputs, in)
	return &telephony.Receipt{ProviderMessageID: "wamid." + uuid.NewString(), AcceptedAt: time.Now()}, nil
}

type stubInitiator struct{}

func (stubInitiator) Initiate(context.Context, payments.Credentials, payments.InitiateInput) (*payments.InitiateResult, error) {
	return &payments.InitiateResult{ProviderRef: "pay-ref-1", Instructions: "Approve the prompt on your phone."}, nil
}

// testServer is a full API server on a per-test schema, with one tenant
// owned by one registered user and working telephony credentials.
type testServer struct {
	*Server
	client *ent.Client

	owner      *ent.User
	ownerToken string
	tenant     *ent.Tenant
	apiKey     string

	sender *stubSender
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	db := testdb.NewTestDB(t)
	client := db.Client
	cfg := testAPIConfig()

	codec, err := crypto.NewCodec(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)

	audit := services.NewAuditService(client)
	auth := services.NewAuthService(client, []byte("test-signing-secret"))
	tenants := services.NewTenantService(client, cfg, audit)
	customers := services.NewCustomerService(client, audit)
	convos := services.NewConversationService(client, audit)
	settings := services.NewSettingsService(client, codec, audit)

	sender := &stubSender{}
	dispatcher := dispatch.NewDispatcher(client, cfg, dispatch.NewMemoryRateLimitStore(), sender, settings)

	srv := NewServer(cfg, db, Deps{
		Auth:          auth,
		Tenants:       tenants,
		Scopes:        services.NewScopeService(client, nil),
		Audit:         audit,
		Customers:     customers,
		Conversations: convos,
		Messages:      services.NewMessageService(client, dispatcher, customers, convos),
		Templates:     services.NewTemplateService(client),
		Appointments:  services.NewAppointmentService(client, audit),
		Withdrawals:   services.NewWithdrawalService(client, audit),
		Orders:        services.NewOrderService(client, outbox.NewPublisher(db.DB()), audit),
		Settings:      settings,
		Catalog:       services.NewCatalogService(client, audit),
		Campaigns:     campaign.NewEngine(client, cfg, dispatcher),
		Harmonizer: harmonizer.New(harmonizer.NewMemoryStore(), config.DefaultHarmonizerConfig(),
			harmonizer.TurnHandlerFunc(func(context.Context, harmonizer.Turn) error { return nil })),
		Checkout: checkout.NewMachine(client, stubInitiator{}, dispatcher),
	})

	ts := &testServer{Server: srv, client: client, sender: sender}

	owner, err := auth.Register(ctx, "owner@duka.example", "correct horse battery")
	require.NoError(t, err)
	ts.owner = owner

	token, err := auth.MintToken(owner.ID)
	require.NoError(t, err)
	ts.ownerToken = token

	res, err := tenants.CreateTenant(ctx, services.CreateTenantInput{
		OwnerUserID: owner.ID,
		Name:        "Duka la Mitumba",
		Slug:        "duka-la-mitumba",
		Timezone:    "Africa/Nairobi",
	})
	require.NoError(t, err)
	ts.apiKey = res.PlaintextAPIKey

	// Disable quiet hours so send outcomes don't depend on the wall clock.
	tn, err := client.Tenant.UpdateOneID(res.Tenant.ID).
		SetQuietHoursStart(0).
		SetQuietHoursEnd(0).
		Save(ctx)
	require.NoError(t, err)
	ts.tenant = tn

	require.NoError(t, settings.UpdateIntegration(ctx, tn.ID, owner.ID, services.IntegrationTelephony, map[string]string{
		"account_sid": "AC1",
		"auth_token":  "twilio-auth-token",
		"from_number": "+254711000000",
	}))

	return ts
}

// member registers a second user with an accepted membership and no roles,
// and returns the user plus a minted token.
func (ts *testServer) member(t *testing.T, email string) (*ent.User, string) {
	t.Helper()
	ctx := context.Background()

	u, err := ts.auth.Register(ctx, email, "another password")
	require.NoError(t, err)
	_, err = ts.client.TenantUser.Create().
		SetID(u.ID + "-membership").
		SetTenantID(ts.tenant.ID).
		SetUserID(u.ID).
		SetInvitationStatus(tenantuser.InvitationStatusAccepted).
		Save(ctx)
	require.NoError(t, err)

	token, err := ts.auth.MintToken(u.ID)
	require.NoError(t, err)
	return u, token
}

// platformOperator registers a superuser and returns it with a minted token.
func (ts *testServer) platformOperator(t *testing.T) (*ent.User, string) {
	t.Helper()
	ctx := context.Background()

	u, err := ts.auth.Register(ctx, "ops@sokochat.example", "operator password")
	require.NoError(t, err)
	u, err = ts.client.User.UpdateOneID(u.ID).SetIsSuperuser(true).Save(ctx)
	require.NoError(t, err)

	token, err := ts.auth.MintToken(u.ID)
	require.NoError(t, err)
	return u, token
}

func (ts *testServer) seedCustomer(t *testing.T, phone string) *ent.Customer {
	t.Helper()
	cust, err := ts.customers.Create(context.Background(), services.CreateCustomerInput{
		TenantID:  ts.tenant.ID,
		PhoneE164: phone,
	})
	require.NoError(t, err)
	return cust
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// asUser attaches a bearer token.
func asUser(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// asTenant attaches the owner's bearer token plus the tenant headers.
func (ts *testServer) asTenant(req *http.Request) *http.Request {
	asUser(req, ts.ownerToken)
	req.Header.Set(tenantIDHeader, ts.tenant.ID)
	req.Header.Set(tenantKeyHeader, ts.apiKey)
	return req
}

func (ts *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	decodeJSON(t, rec, &resp)
	return resp.Error.Code
}
