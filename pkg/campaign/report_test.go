package campaign

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent/schema"
	testdb "github.com/sokochat/sokochat/test/database"
)

func TestTwoProportionZTest(t *testing.T) {
	t.Run("clear difference is significant", func(t *testing.T) {
		// 40% vs 10% response over 100 sends each.
		z, p, ok := twoProportionZTest(40, 100, 10, 100)
		require.True(t, ok)
		assert.Greater(t, z, 4.0)
		assert.Less(t, p, 0.001)
	})

	t.Run("identical rates are not significant", func(t *testing.T) {
		z, p, ok := twoProportionZTest(20, 100, 20, 100)
		require.True(t, ok)
		assert.InDelta(t, 0.0, z, 0.0001)
		assert.InDelta(t, 1.0, p, 0.0001)
	})

	t.Run("zero responses on both arms yields no verdict", func(t *testing.T) {
		_, _, ok := twoProportionZTest(0, 100, 0, 100)
		assert.False(t, ok, "pooled proportion of zero has no standard error")
	})

	t.Run("empty arm yields no verdict", func(t *testing.T) {
		_, _, ok := twoProportionZTest(5, 0, 10, 100)
		assert.False(t, ok)
	})
}

func TestEngine_ReportDeclaresWinner(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedCampaignTenant(t, client)
	e := NewEngine(client, campaignTestConfig(), &stubDispatcher{})
	ctx := context.Background()

	c, err := e.Create(ctx, CreateInput{
		TenantID: tenantID,
		Name:     "ab",
		IsABTest: true,
		Variants: []schema.CampaignVariant{
			{Name: "a", Content: "A"},
			{Name: "b", Content: "B"},
		},
	})
	require.NoError(t, err)

	// Simulate an executed campaign with a decisive split.
	meta := map[string]interface{}{
		"variant_stats": map[string]map[string]int{
			"a": {"assigned": 100, "delivered": 100, "responses": 40},
			"b": {"assigned": 100, "delivered": 100, "responses": 10},
		},
	}
	require.NoError(t, client.Campaign.UpdateOneID(c.ID).
		SetMetadata(meta).
		SetDeliveredCount(200).
		Exec(ctx))

	r, err := e.Report(ctx, tenantID, c.ID)
	require.NoError(t, err)

	require.Len(t, r.Variants, 2)
	assert.InDelta(t, 0.4, r.Variants[0].ResponseRate, 0.001)
	assert.True(t, r.Significant)
	assert.Equal(t, "a", r.Winner)
	assert.Less(t, r.PValue, 0.05)
}

func TestEngine_ReportWithholdsVerdictBelowMinSample(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedCampaignTenant(t, client)
	e := NewEngine(client, campaignTestConfig(), &stubDispatcher{})
	ctx := context.Background()

	c, err := e.Create(ctx, CreateInput{
		TenantID: tenantID,
		Name:     "ab small",
		IsABTest: true,
		Variants: []schema.CampaignVariant{
			{Name: "a", Content: "A"},
			{Name: "b", Content: "B"},
		},
	})
	require.NoError(t, err)

	// Decisive rates but only 10 per arm — below MinSamplePerVariant (30).
	meta := map[string]interface{}{
		"variant_stats": map[string]map[string]int{
			"a": {"assigned": 10, "delivered": 10, "responses": 8},
			"b": {"assigned": 10, "delivered": 10, "responses": 1},
		},
	}
	require.NoError(t, client.Campaign.UpdateOneID(c.ID).SetMetadata(meta).Exec(ctx))

	r, err := e.Report(ctx, tenantID, c.ID)
	require.NoError(t, err)
	assert.False(t, r.Significant)
	assert.Empty(t, r.Winner)
}

func TestEngine_ReportSingleArm(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedCampaignTenant(t, client)
	e := NewEngine(client, campaignTestConfig(), &stubDispatcher{})
	ctx := context.Background()

	c, err := e.Create(ctx, CreateInput{TenantID: tenantID, Name: "plain", Content: "x"})
	require.NoError(t, err)

	require.NoError(t, client.Campaign.UpdateOneID(c.ID).
		SetTargetedCount(50).
		SetDeliveredCount(45).
		SetFailedCount(5).
		Exec(ctx))

	r, err := e.Report(ctx, tenantID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, r.Delivered)
	assert.Empty(t, r.Variants)
	assert.Empty(t, r.Winner)
}
