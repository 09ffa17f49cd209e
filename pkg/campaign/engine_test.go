package campaign

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	entcampaign "github.com/sokochat/sokochat/ent/campaign"
	"github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/dispatch"
	testdb "github.com/sokochat/sokochat/test/database"
)

type stubDispatcher struct {
	mu    sync.Mutex
	calls []dispatch.Input
}

func (s *stubDispatcher) Send(_ context.Context, in dispatch.Input) (*dispatch.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, in)
	return &dispatch.Result{Outcome: dispatch.OutcomeSent, Message: &ent.Message{ID: uuid.NewString()}}, nil
}

func campaignTestConfig() *config.Config {
	return &config.Config{
		Campaign: config.DefaultCampaignConfig(),
		TierRegistry: config.NewTierRegistry(map[string]*config.TierConfig{
			"starter": {MaxCampaignVariants: 2, DailyMessageLimit: 100},
		}),
	}
}

func seedCampaignTenant(t *testing.T, client *ent.Client) string {
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

// seedAudienceCustomer creates a customer with a conversation.
func seedAudienceCustomer(t *testing.T, client *ent.Client, tenantID string, promotional bool, tags []string) string {
	t.Helper()
	ctx := context.Background()
	id := uuid.New().String()

	create := client.Customer.Create().
		SetID(id).
		SetTenantID(tenantID).
		SetPhoneE164("+2547" + id[:8]).
		SetPromotionalMessages(promotional).
		SetLastActivityAt(time.Now().Add(-24 * time.Hour))
	if len(tags) > 0 {
		create.SetTags(tags)
	}
	_, err := create.Save(ctx)
	require.NoError(t, err)

	_, err = client.Conversation.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetCustomerID(id).
		Save(ctx)
	require.NoError(t, err)
	return id
}

func TestEngine_CreateValidatesTierVariantCap(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedCampaignTenant(t, client)
	e := NewEngine(client, campaignTestConfig(), &stubDispatcher{})
	ctx := context.Background()

	_, err := e.Create(ctx, CreateInput{
		TenantID: tenantID,
		Name:     "three arms",
		IsABTest: true,
		Variants: []schema.CampaignVariant{
			{Name: "a", Content: "A"}, {Name: "b", Content: "B"}, {Name: "c", Content: "C"},
		},
	})
	assert.ErrorIs(t, err, ErrTooManyVariants)

	_, err = e.Create(ctx, CreateInput{
		TenantID: tenantID,
		Name:     "one arm",
		IsABTest: true,
		Variants: []schema.CampaignVariant{{Name: "a", Content: "A"}},
	})
	assert.ErrorIs(t, err, ErrTooFewVariants)

	c, err := e.Create(ctx, CreateInput{
		TenantID: tenantID,
		Name:     "two arms",
		IsABTest: true,
		Variants: []schema.CampaignVariant{
			{Name: "a", Content: "A"}, {Name: "b", Content: "B"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entcampaign.StatusDraft, c.Status)
}

func TestEngine_ExecuteFiltersConsentAndCounts(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedCampaignTenant(t, client)
	d := &stubDispatcher{}
	e := NewEngine(client, campaignTestConfig(), d)
	ctx := context.Background()

	consenting := seedAudienceCustomer(t, client, tenantID, true, nil)
	seedAudienceCustomer(t, client, tenantID, true, nil)
	optedOut := seedAudienceCustomer(t, client, tenantID, false, nil)

	c, err := e.Create(ctx, CreateInput{
		TenantID: tenantID,
		Name:     "new stock",
		Content:  "Mzigo mpya umefika!",
	})
	require.NoError(t, err)

	res, err := e.Execute(ctx, tenantID, c.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Targeted)
	assert.Equal(t, 2, res.Delivered)
	assert.Equal(t, 1, res.SkippedNoConsent)
	assert.Zero(t, res.Failed)

	require.Len(t, d.calls, 2)
	for _, in := range d.calls {
		assert.NotEqual(t, optedOut, in.CustomerID)
		assert.Equal(t, "Mzigo mpya umefika!", in.Content)
	}
	_ = consenting

	got, err := client.Campaign.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, entcampaign.StatusCompleted, got.Status)
	assert.Equal(t, 2, got.DeliveredCount)
	assert.Equal(t, 1, got.SkippedNoConsentCount)
}

func TestEngine_ExecuteRejectsCompleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedCampaignTenant(t, client)
	e := NewEngine(client, campaignTestConfig(), &stubDispatcher{})
	ctx := context.Background()

	c, err := e.Create(ctx, CreateInput{TenantID: tenantID, Name: "done", Content: "x"})
	require.NoError(t, err)
	_, err = e.Execute(ctx, tenantID, c.ID)
	require.NoError(t, err)

	_, err = e.Execute(ctx, tenantID, c.ID)
	assert.ErrorIs(t, err, ErrNotExecutable)
}

func TestEngine_TargetingByTags(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedCampaignTenant(t, client)
	d := &stubDispatcher{}
	e := NewEngine(client, campaignTestConfig(), d)
	ctx := context.Background()

	vip := seedAudienceCustomer(t, client, tenantID, true, []string{"vip"})
	seedAudienceCustomer(t, client, tenantID, true, []string{"wholesale"})

	c, err := e.Create(ctx, CreateInput{
		TenantID:  tenantID,
		Name:      "vip only",
		Targeting: &schema.CampaignTargeting{Tags: []string{"vip"}},
		Content:   "Ofa ya VIP",
	})
	require.NoError(t, err)

	res, err := e.Execute(ctx, tenantID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Delivered)
	require.Len(t, d.calls, 1)
	assert.Equal(t, vip, d.calls[0].CustomerID)
}

func TestEngine_TargetingByPurchaseWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedCampaignTenant(t, client)
	d := &stubDispatcher{}
	e := NewEngine(client, campaignTestConfig(), d)
	ctx := context.Background()

	buyer := seedAudienceCustomer(t, client, tenantID, true, nil)
	seedAudienceCustomer(t, client, tenantID, true, nil)

	_, err := client.Order.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetCustomerID(buyer).
		SetStatus(order.StatusPaid).
		SetTotalCents(250000).
		SetCurrency("KES").
		Save(ctx)
	require.NoError(t, err)

	c, err := e.Create(ctx, CreateInput{
		TenantID:  tenantID,
		Name:      "repeat buyers",
		Targeting: &schema.CampaignTargeting{PurchasedWithinDays: 30},
		Content:   "Asante kwa kununua! Ofa mpya kwako.",
	})
	require.NoError(t, err)

	res, err := e.Execute(ctx, tenantID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Delivered)
	require.Len(t, d.calls, 1)
	assert.Equal(t, buyer, d.calls[0].CustomerID)
}

func TestEngine_ABTestPartitionsEvenly(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedCampaignTenant(t, client)
	d := &stubDispatcher{}
	e := NewEngine(client, campaignTestConfig(), d)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		seedAudienceCustomer(t, client, tenantID, true, nil)
	}

	c, err := e.Create(ctx, CreateInput{
		TenantID: tenantID,
		Name:     "ab",
		IsABTest: true,
		Variants: []schema.CampaignVariant{
			{Name: "a", Content: "Version A"},
			{Name: "b", Content: "Version B"},
		},
	})
	require.NoError(t, err)

	_, err = e.Execute(ctx, tenantID, c.ID)
	require.NoError(t, err)

	got, err := client.Campaign.Get(ctx, c.ID)
	require.NoError(t, err)

	assignments, ok := got.Metadata["variant_assignments"].(map[string]interface{})
	require.True(t, ok, "assignments recorded in metadata")
	require.Len(t, assignments, 10)

	counts := map[string]int{}
	for _, v := range assignments {
		counts[v.(string)]++
	}
	assert.Equal(t, 5, counts["a"])
	assert.Equal(t, 5, counts["b"])

	// Dispatched content matches the assigned arm.
	byContent := map[string]int{}
	for _, in := range d.calls {
		byContent[in.Content]++
	}
	assert.Equal(t, 5, byContent["Version A"])
	assert.Equal(t, 5, byContent["Version B"])
}

func TestEngine_ExecuteDue(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedCampaignTenant(t, client)
	seedAudienceCustomer(t, client, tenantID, true, nil)
	d := &stubDispatcher{}
	e := NewEngine(client, campaignTestConfig(), d)
	ctx := context.Background()

	due := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)
	_, err := e.Create(ctx, CreateInput{
		TenantID:    tenantID,
		Name:        "due blast",
		Content:     "Karibu! Ofa mpya leo.",
		ScheduledAt: &due,
	})
	require.NoError(t, err)
	notDue, err := e.Create(ctx, CreateInput{
		TenantID:    tenantID,
		Name:        "future blast",
		Content:     "bado",
		ScheduledAt: &future,
	})
	require.NoError(t, err)

	n, err := e.ExecuteDue(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, d.calls, 1)

	later, err := client.Campaign.Get(ctx, notDue.ID)
	require.NoError(t, err)
	assert.Equal(t, entcampaign.StatusScheduled, later.Status)

	// Nothing remains due.
	n, err = e.ExecuteDue(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}
