// Package campaign implements targeted outbound campaigns: tier-validated
// A/B variants, audience computation from targeting predicates intersected
// with promotional consent, even variant partitioning, dispatch with
// counters, and the statistical report.
package campaign

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	entcampaign "github.com/sokochat/sokochat/ent/campaign"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/customer"
	"github.com/sokochat/sokochat/ent/message"
	"github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/ent/tenant"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/dispatch"
)

var (
	// ErrTooManyVariants indicates the tenant's tier caps A/B arms below the
	// requested count.
	ErrTooManyVariants = errors.New("variant count exceeds the tier limit")

	// ErrTooFewVariants indicates an A/B test with fewer than two arms.
	ErrTooFewVariants = errors.New("an A/B test needs at least two variants")

	// ErrNotExecutable indicates the campaign is not in an executable state.
	ErrNotExecutable = errors.New("campaign is not in an executable state")

	// ErrCampaignNotFound indicates no such campaign under the tenant.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// MessageDispatcher is the dispatch capability the engine needs.
type MessageDispatcher interface {
	Send(ctx context.Context, in dispatch.Input) (*dispatch.Result, error)
}

// CreateInput describes a new campaign.
type CreateInput struct {
	TenantID    string
	Name        string
	Targeting   *schema.CampaignTargeting
	IsABTest    bool
	Variants    []schema.CampaignVariant
	Content     string
	ScheduledAt *time.Time
}

// ExecutionResult summarizes one campaign run.
type ExecutionResult struct {
	Targeted         int `json:"targeted"`
	Delivered        int `json:"delivered"`
	Failed           int `json:"failed"`
	SkippedNoConsent int `json:"skipped_no_consent"`
}

// Engine runs campaigns. Safe for concurrent use.
type Engine struct {
	client     *ent.Client
	cfg        *config.Config
	dispatcher MessageDispatcher

	now func() time.Time
}

// NewEngine creates a campaign Engine.
func NewEngine(client *ent.Client, cfg *config.Config, dispatcher MessageDispatcher) *Engine {
	return &Engine{
		client:     client,
		cfg:        cfg,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Create validates the variant count against the tenant's tier and stores
// the campaign as a draft (or scheduled, when ScheduledAt is set).
func (e *Engine) Create(ctx context.Context, in CreateInput) (*ent.Campaign, error) {
	tn, err := e.client.Tenant.Query().
		Where(tenant.ID(in.TenantID), tenant.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	if in.IsABTest {
		if len(in.Variants) < 2 {
			return nil, ErrTooFewVariants
		}
		tier, err := e.cfg.GetTier(tn.SubscriptionTier)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tier: %w", err)
		}
		if len(in.Variants) > tier.MaxCampaignVariants {
			return nil, fmt.Errorf("%w: %d requested, tier allows %d",
				ErrTooManyVariants, len(in.Variants), tier.MaxCampaignVariants)
		}
	}

	status := entcampaign.StatusDraft
	if in.ScheduledAt != nil {
		status = entcampaign.StatusScheduled
	}

	create := e.client.Campaign.Create().
		SetID(uuid.NewString()).
		SetTenantID(in.TenantID).
		SetName(in.Name).
		SetIsAbTest(in.IsABTest).
		SetStatus(status)
	if in.Targeting != nil {
		create.SetTargeting(in.Targeting)
	}
	if in.IsABTest {
		create.SetVariants(in.Variants)
	} else {
		create.SetContent(in.Content)
	}
	if in.ScheduledAt != nil {
		create.SetScheduledAt(*in.ScheduledAt)
	}

	c, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return c, nil
}

// Execute runs the campaign: computes the audience, partitions it across
// variants, dispatches every send, and records counters plus per-customer
// variant assignments in the campaign metadata.
func (e *Engine) Execute(ctx context.Context, tenantID, campaignID string) (*ExecutionResult, error) {
	c, err := e.get(ctx, tenantID, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Status != entcampaign.StatusDraft && c.Status != entcampaign.StatusScheduled {
		return nil, fmt.Errorf("%w: status %s", ErrNotExecutable, c.Status)
	}

	if _, err := c.Update().SetStatus(entcampaign.StatusSending).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark campaign sending: %w", err)
	}

	audience, skippedNoConsent, err := e.audience(ctx, tenantID, c.Targeting)
	if err != nil {
		return nil, err
	}

	assignments := e.assignVariants(c, audience)

	res := &ExecutionResult{
		Targeted:         len(audience) + skippedNoConsent,
		SkippedNoConsent: skippedNoConsent,
	}
	variantStats := make(map[string]map[string]int)

	for _, cust := range audience {
		variantName, content := e.variantContent(c, assignments[cust.ID])
		if variantName != "" {
			if variantStats[variantName] == nil {
				variantStats[variantName] = map[string]int{"assigned": 0, "delivered": 0, "responses": 0}
			}
			variantStats[variantName]["assigned"]++
		}

		conversationID, err := e.resolveConversation(ctx, tenantID, cust.ID)
		if err != nil {
			res.Failed++
			slog.Error("Campaign conversation lookup failed",
				"campaign_id", c.ID, "customer_id", cust.ID, "error", err)
			continue
		}

		sendRes, err := e.dispatcher.Send(ctx, dispatch.Input{
			TenantID:       tenantID,
			ConversationID: conversationID,
			CustomerID:     cust.ID,
			MessageType:    message.MessageTypeCampaign,
			Content:        content,
		})
		switch {
		case err != nil:
			res.Failed++
			slog.Error("Campaign send failed",
				"campaign_id", c.ID, "customer_id", cust.ID, "error", err)
		case sendRes.Outcome == dispatch.OutcomeSent:
			res.Delivered++
			if variantName != "" {
				variantStats[variantName]["delivered"]++
			}
		case sendRes.Outcome == dispatch.OutcomeSkippedNoConsent:
			res.SkippedNoConsent++
		default:
			// Deferred sends count as delivered-in-flight; the scheduler owns
			// them now.
			res.Delivered++
			if variantName != "" {
				variantStats[variantName]["delivered"]++
			}
		}
	}

	meta := c.Metadata
	if meta == nil {
		meta = make(map[string]interface{})
	}
	meta["variant_assignments"] = assignments
	meta["variant_stats"] = variantStats
	meta["executed_at"] = e.now().Format(time.RFC3339)

	if _, err := c.Update().
		SetStatus(entcampaign.StatusCompleted).
		SetTargetedCount(res.Targeted).
		SetDeliveredCount(res.Delivered).
		SetFailedCount(res.Failed).
		SetSkippedNoConsentCount(res.SkippedNoConsent).
		SetMetadata(meta).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to record campaign counters: %w", err)
	}

	slog.Info("Campaign executed",
		"campaign_id", c.ID,
		"targeted", res.Targeted,
		"delivered", res.Delivered,
		"failed", res.Failed,
		"skipped_no_consent", res.SkippedNoConsent)
	return res, nil
}

// audience returns consenting customers matching the targeting predicate,
// plus the count of matching customers excluded for missing consent.
func (e *Engine) audience(ctx context.Context, tenantID string, targeting *schema.CampaignTargeting) ([]*ent.Customer, int, error) {
	q := e.client.Customer.Query().
		Where(
			customer.TenantID(tenantID),
			customer.DeletedAtIsNil(),
		)

	if targeting != nil {
		if targeting.ActiveWithinDays > 0 {
			cutoff := e.now().AddDate(0, 0, -targeting.ActiveWithinDays)
			q = q.Where(customer.LastActivityAtNotNil(), customer.LastActivityAtGTE(cutoff))
		}
	}

	matched, err := q.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query audience: %w", err)
	}

	if targeting != nil && len(targeting.Tags) > 0 {
		matched = filterByTags(matched, targeting.Tags)
	}

	if targeting != nil && targeting.PurchasedWithinDays > 0 {
		matched, err = e.filterByPurchase(ctx, tenantID, matched, targeting.PurchasedWithinDays)
		if err != nil {
			return nil, 0, err
		}
	}

	var audience []*ent.Customer
	skipped := 0
	for _, cust := range matched {
		if cust.PromotionalMessages {
			audience = append(audience, cust)
		} else {
			skipped++
		}
	}
	return audience, skipped, nil
}

// filterByTags keeps customers carrying at least one of the wanted tags.
func filterByTags(customers []*ent.Customer, tags []string) []*ent.Customer {
	wanted := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		wanted[tag] = struct{}{}
	}
	var out []*ent.Customer
	for _, cust := range customers {
		for _, tag := range cust.Tags {
			if _, ok := wanted[tag]; ok {
				out = append(out, cust)
				break
			}
		}
	}
	return out
}

// filterByPurchase keeps customers with a paid or fulfilled order inside the
// window.
func (e *Engine) filterByPurchase(ctx context.Context, tenantID string, customers []*ent.Customer, days int) ([]*ent.Customer, error) {
	cutoff := e.now().AddDate(0, 0, -days)
	ids := make([]string, len(customers))
	for i, cust := range customers {
		ids[i] = cust.ID
	}

	buyers, err := e.client.Order.Query().
		Where(
			order.TenantID(tenantID),
			order.CustomerIDIn(ids...),
			order.StatusIn(order.StatusPaid, order.StatusFulfilled),
			order.CreatedAtGTE(cutoff),
		).
		Select(order.FieldCustomerID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent buyers: %w", err)
	}

	bought := make(map[string]struct{}, len(buyers))
	for _, id := range buyers {
		bought[id] = struct{}{}
	}
	var out []*ent.Customer
	for _, cust := range customers {
		if _, ok := bought[cust.ID]; ok {
			out = append(out, cust)
		}
	}
	return out, nil
}

// assignVariants shuffles the audience and partitions it evenly across the
// A/B arms. Returns customer id → variant name; empty for single-arm
// campaigns.
func (e *Engine) assignVariants(c *ent.Campaign, audience []*ent.Customer) map[string]string {
	assignments := make(map[string]string)
	if !c.IsAbTest || len(c.Variants) == 0 {
		return assignments
	}

	shuffled := make([]*ent.Customer, len(audience))
	copy(shuffled, audience)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for i, cust := range shuffled {
		assignments[cust.ID] = c.Variants[i%len(c.Variants)].Name
	}
	return assignments
}

// variantContent resolves the body to send for one customer.
func (e *Engine) variantContent(c *ent.Campaign, variantName string) (string, string) {
	if !c.IsAbTest {
		return "", c.Content
	}
	for _, v := range c.Variants {
		if v.Name == variantName {
			return v.Name, v.Content
		}
	}
	// Unassigned (single-arm fallback): first variant.
	return c.Variants[0].Name, c.Variants[0].Content
}

// RecordResponse attributes an inbound reply to the campaign variant the
// customer was assigned. Called by the conversation pipeline when a targeted
// customer replies inside the attribution window.
func (e *Engine) RecordResponse(ctx context.Context, tenantID, campaignID, customerID string) error {
	c, err := e.get(ctx, tenantID, campaignID)
	if err != nil {
		return err
	}

	meta := c.Metadata
	if meta == nil {
		meta = make(map[string]interface{})
	}
	if stats, ok := meta["variant_stats"].(map[string]interface{}); ok {
		if name := assignmentFor(meta, customerID); name != "" {
			if vs, ok := stats[name].(map[string]interface{}); ok {
				vs["responses"] = toInt(vs["responses"]) + 1
			}
		}
	} else if stats, ok := meta["variant_stats"].(map[string]map[string]int); ok {
		if name := assignmentFor(meta, customerID); name != "" {
			if vs, ok := stats[name]; ok {
				vs["responses"]++
			}
		}
	}

	if _, err := c.Update().
		AddResponseCount(1).
		SetMetadata(meta).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to record campaign response: %w", err)
	}
	return nil
}

// resolveConversation finds the customer's most recent conversation, or
// opens one for customers who have never messaged in.
func (e *Engine) resolveConversation(ctx context.Context, tenantID, customerID string) (string, error) {
	conv, err := e.client.Conversation.Query().
		Where(
			conversation.TenantID(tenantID),
			conversation.CustomerID(customerID),
			conversation.DeletedAtIsNil(),
		).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		return conv.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", err
	}

	conv, err = e.client.Conversation.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetCustomerID(customerID).
		Save(ctx)
	if err != nil {
		return "", err
	}
	return conv.ID, nil
}

func (e *Engine) get(ctx context.Context, tenantID, campaignID string) (*ent.Campaign, error) {
	c, err := e.client.Campaign.Query().
		Where(
			entcampaign.ID(campaignID),
			entcampaign.TenantID(tenantID),
			entcampaign.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	return c, nil
}

// assignmentFor reads a customer's variant from metadata, tolerating both
// the in-memory and JSON-roundtripped map shapes.
func assignmentFor(meta map[string]interface{}, customerID string) string {
	switch m := meta["variant_assignments"].(type) {
	case map[string]string:
		return m[customerID]
	case map[string]interface{}:
		if s, ok := m[customerID].(string); ok {
			return s
		}
	}
	return ""
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

// attributionWindow bounds how far back an inbound reply can be credited to
// a campaign send.
const attributionWindow = 7 * 24 * time.Hour

// AttributeResponse credits an inbound reply to the most recent completed
// A/B campaign that assigned this customer a variant. Each customer is
// credited at most once per campaign; customers outside any recent audience
// are a no-op.
func (e *Engine) AttributeResponse(ctx context.Context, tenantID, customerID string) error {
	cutoff := e.now().Add(-attributionWindow)
	camps, err := e.client.Campaign.Query().
		Where(
			entcampaign.TenantID(tenantID),
			entcampaign.StatusEQ(entcampaign.StatusCompleted),
			entcampaign.IsAbTest(true),
			entcampaign.UpdatedAtGTE(cutoff),
		).
		Order(ent.Desc(entcampaign.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query recent campaigns: %w", err)
	}

	for _, c := range camps {
		if assignmentFor(c.Metadata, customerID) == "" {
			continue
		}
		if hasResponded(c.Metadata, customerID) {
			return nil
		}
		if err := e.RecordResponse(ctx, tenantID, c.ID, customerID); err != nil {
			return err
		}
		return e.markResponded(ctx, c, customerID)
	}
	return nil
}

// hasResponded reads the per-campaign responded set, tolerating the
// JSON-roundtripped map shape.
func hasResponded(meta map[string]interface{}, customerID string) bool {
	if meta == nil {
		return false
	}
	switch responded := meta["responded"].(type) {
	case map[string]interface{}:
		_, ok := responded[customerID]
		return ok
	case map[string]bool:
		return responded[customerID]
	}
	return false
}

func (e *Engine) markResponded(ctx context.Context, c *ent.Campaign, customerID string) error {
	// Reload so the RecordResponse stats bump is not overwritten.
	c, err := e.client.Campaign.Get(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("failed to reload campaign: %w", err)
	}
	meta := c.Metadata
	if meta == nil {
		meta = make(map[string]interface{})
	}
	responded, ok := meta["responded"].(map[string]interface{})
	if !ok {
		responded = make(map[string]interface{})
		meta["responded"] = responded
	}
	responded[customerID] = true

	if err := c.Update().SetMetadata(meta).Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark campaign response: %w", err)
	}
	return nil
}

// ExecuteDue runs every scheduled campaign whose send time has arrived.
// Campaigns execute independently; one failure does not block the rest.
func (e *Engine) ExecuteDue(ctx context.Context, now time.Time) (int, error) {
	due, err := e.client.Campaign.Query().
		Where(
			entcampaign.StatusEQ(entcampaign.StatusScheduled),
			entcampaign.ScheduledAtNotNil(),
			entcampaign.ScheduledAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list due campaigns: %w", err)
	}

	executed := 0
	for _, c := range due {
		if _, err := e.Execute(ctx, c.TenantID, c.ID); err != nil {
			slog.Error("Scheduled campaign execution failed",
				"tenant_id", c.TenantID, "campaign_id", c.ID, "error", err)
			continue
		}
		executed++
	}
	return executed, nil
}
