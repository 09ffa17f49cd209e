// Package dispatch delivers outbound WhatsApp messages. Every send funnels
// through one pipeline: consent, the tenant's sliding 24h rate limit, quiet
// hours, template rendering, the telephony provider, and finally a Message
// row recording the outcome.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/customer"
	"github.com/sokochat/sokochat/ent/message"
	"github.com/sokochat/sokochat/ent/messagetemplate"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
	"github.com/sokochat/sokochat/ent/tenant"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/telephony"
)

// spillRetryDelay is how far out a send is rescheduled when the provider
// keeps rate-limiting us past the retry budget.
const spillRetryDelay = 5 * time.Minute

var (
	// ErrRateLimited indicates the tenant exhausted its daily message quota
	// and the message type does not qualify for next-day queueing.
	ErrRateLimited = errors.New("daily message limit exceeded")

	// ErrNoConsent indicates the customer has not opted in to this message
	// type.
	ErrNoConsent = errors.New("customer has not consented to this message type")
)

// CredentialsProvider resolves a tenant's decrypted telephony credentials.
type CredentialsProvider interface {
	TelephonyCredentials(ctx context.Context, tenantID string) (telephony.Credentials, error)
}

// Outcome classifies what the pipeline did with a send request.
type Outcome string

const (
	OutcomeSent              Outcome = "sent"
	OutcomeDeferredQuiet     Outcome = "deferred_quiet_hours"
	OutcomeDeferredRateLimit Outcome = "deferred_rate_limit"
	OutcomeSkippedNoConsent  Outcome = "skipped_no_consent"
	OutcomeFailed            Outcome = "failed"
)

// Input is one outbound send request.
type Input struct {
	TenantID       string
	ConversationID string
	CustomerID     string
	MessageType    message.MessageType
	Content        string

	// TemplateID, when set, renders the template with TemplateContext and
	// overrides Content.
	TemplateID      string
	TemplateContext map[string]string

	MediaURL string
}

// Result reports where a send request ended up. Message is set when a
// Message row was written; Scheduled when the send was deferred.
type Result struct {
	Outcome   Outcome
	Message   *ent.Message
	Scheduled *ent.ScheduledMessage
}

// RateLimitStatus is the tenant's current quota utilization.
type RateLimitStatus struct {
	Limit     int     `json:"limit"`
	Used      int     `json:"used"`
	Remaining int     `json:"remaining"`
	Usage     float64 `json:"usage"`
}

// Dispatcher runs the outbound pipeline. Safe for concurrent use.
type Dispatcher struct {
	client  *ent.Client
	cfg     *config.Config
	limiter RateLimitStore
	sender  telephony.Sender
	creds   CredentialsProvider

	// overridable in tests
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(client *ent.Client, cfg *config.Config, limiter RateLimitStore, sender telephony.Sender, creds CredentialsProvider) *Dispatcher {
	if client == nil {
		panic("dispatch: nil ent client")
	}
	return &Dispatcher{
		client:  client,
		cfg:     cfg,
		limiter: limiter,
		sender:  sender,
		creds:   creds,
		sleep:   sleepCtx,
		now:     time.Now,
	}
}

// SendTransactional satisfies the checkout notifier contract: transactional
// sends bypass consent, rate limiting, and quiet hours.
func (d *Dispatcher) SendTransactional(ctx context.Context, tenantID, conversationID, customerID, text string) error {
	_, err := d.Send(ctx, Input{
		TenantID:       tenantID,
		ConversationID: conversationID,
		CustomerID:     customerID,
		MessageType:    message.MessageTypeAutomatedTransactional,
		Content:        text,
	})
	return err
}

// Send runs one request through the pipeline. A skipped or deferred send
// returns a Result with the corresponding outcome and a nil error, except
// that a rate-limited explicit send returns ErrRateLimited so callers can
// surface it.
func (d *Dispatcher) Send(ctx context.Context, in Input) (*Result, error) {
	tn, err := d.client.Tenant.Query().
		Where(tenant.ID(in.TenantID), tenant.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	cust, err := d.client.Customer.Query().
		Where(customer.ID(in.CustomerID), customer.TenantID(in.TenantID), customer.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	if !consentAllows(in.MessageType, cust) {
		slog.Info("send skipped, no consent",
			"tenant_id", in.TenantID, "customer_id", in.CustomerID, "message_type", in.MessageType)
		return &Result{Outcome: OutcomeSkippedNoConsent}, nil
	}

	bypass := bypassesLimits(in.MessageType)
	now := d.now()

	var rateEntryID string
	if !bypass {
		res, err := d.applyRateLimit(ctx, tn, in, now)
		if err != nil || res != nil {
			return res, err
		}

		if res, ok := d.deferForQuietHours(ctx, tn, cust, in, now); ok {
			return res, nil
		}

		rateEntryID = uuid.NewString()
		if err := d.limiter.Record(ctx, in.TenantID, rateEntryID, now); err != nil {
			return nil, fmt.Errorf("failed to record against rate limit: %w", err)
		}
	}

	content, err := d.resolveContent(ctx, in)
	if err != nil {
		return nil, err
	}

	creds, err := d.creds.TelephonyCredentials(ctx, in.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve telephony credentials: %w", err)
	}

	receipt, sendErr := d.sendWithRetries(ctx, creds, telephony.SendInput{
		To:       cust.PhoneE164,
		Content:  content,
		MediaURL: in.MediaURL,
	})

	switch {
	case sendErr == nil:
		msg, err := d.recordMessage(ctx, in, content, message.StatusSent, receipt.ProviderMessageID, "")
		if err != nil {
			return nil, err
		}
		return &Result{Outcome: OutcomeSent, Message: msg}, nil

	case telephony.IsRetryable(sendErr):
		// Retry budget exhausted on a transient failure: hand the message to
		// the scheduler instead of dropping it.
		if rateEntryID != "" {
			d.refund(ctx, in.TenantID, rateEntryID)
		}
		sched, err := d.schedule(ctx, in, content, now.Add(spillRetryDelay), "provider throttled")
		if err != nil {
			return nil, err
		}
		slog.Warn("send spilled to scheduled queue after retries",
			"tenant_id", in.TenantID, "scheduled_message_id", sched.ID, "error", sendErr)
		return &Result{Outcome: OutcomeDeferredRateLimit, Scheduled: sched}, nil

	default:
		// Permanent failures do not count against the quota.
		if rateEntryID != "" {
			d.refund(ctx, in.TenantID, rateEntryID)
		}
		msg, err := d.recordMessage(ctx, in, content, message.StatusFailed, "", sendErr.Error())
		if err != nil {
			return nil, err
		}
		slog.Error("send failed permanently",
			"tenant_id", in.TenantID, "message_id", msg.ID, "error", sendErr)
		return &Result{Outcome: OutcomeFailed, Message: msg}, nil
	}
}

// Status returns the tenant's current rate-limit utilization.
func (d *Dispatcher) Status(ctx context.Context, tenantID string) (*RateLimitStatus, error) {
	tn, err := d.client.Tenant.Query().
		Where(tenant.ID(tenantID), tenant.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	limit := d.dailyLimit(tn)
	used, err := d.limiter.Count(ctx, tenantID, d.now())
	if err != nil {
		return nil, fmt.Errorf("failed to count sends: %w", err)
	}
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return &RateLimitStatus{
		Limit:     limit,
		Used:      used,
		Remaining: remaining,
		Usage:     float64(used) / float64(limit),
	}, nil
}

// applyRateLimit returns a non-nil Result (or error) when the send must not
// proceed; (nil, nil) means the pipeline continues.
func (d *Dispatcher) applyRateLimit(ctx context.Context, tn *ent.Tenant, in Input, now time.Time) (*Result, error) {
	limit := d.dailyLimit(tn)
	used, err := d.limiter.Count(ctx, in.TenantID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count sends: %w", err)
	}

	if used >= limit {
		if !queuesOnRateLimit(in.MessageType) {
			return nil, fmt.Errorf("%w: %d of %d used", ErrRateLimited, used, limit)
		}
		content, err := d.resolveContent(ctx, in)
		if err != nil {
			return nil, err
		}
		sched, err := d.schedule(ctx, in, content, d.nextSpillSlot(tn, now), "rate limit exceeded")
		if err != nil {
			return nil, err
		}
		slog.Info("send queued for next day, rate limit exceeded",
			"tenant_id", in.TenantID, "scheduled_message_id", sched.ID,
			"scheduled_at", sched.ScheduledAt)
		return &Result{Outcome: OutcomeDeferredRateLimit, Scheduled: sched}, nil
	}

	if float64(used+1) >= d.cfg.Dispatch.WarningThreshold*float64(limit) {
		warn, err := d.limiter.WarnOnce(ctx, in.TenantID, now)
		if err != nil {
			slog.Error("failed to check rate warning flag", "tenant_id", in.TenantID, "error", err)
		} else if warn {
			slog.Warn("tenant approaching daily message limit",
				"tenant_id", in.TenantID, "used", used+1, "limit", limit)
		}
	}
	return nil, nil
}

// deferForQuietHours reschedules non-time-sensitive sends that land in the
// tenant's quiet window to the window exit in the customer's timezone.
func (d *Dispatcher) deferForQuietHours(ctx context.Context, tn *ent.Tenant, cust *ent.Customer, in Input, now time.Time) (*Result, bool) {
	loc := quietLocation(tn, cust)
	exit, quiet := quietExit(now, loc, tn.QuietHoursStart, tn.QuietHoursEnd)
	if !quiet {
		return nil, false
	}
	content, err := d.resolveContent(ctx, in)
	if err != nil {
		slog.Error("failed to render content for quiet-hours deferral",
			"tenant_id", in.TenantID, "error", err)
		return nil, false
	}
	sched, err := d.schedule(ctx, in, content, exit, "quiet hours")
	if err != nil {
		slog.Error("failed to defer send past quiet hours",
			"tenant_id", in.TenantID, "error", err)
		return nil, false
	}
	slog.Info("send deferred past quiet hours",
		"tenant_id", in.TenantID, "scheduled_message_id", sched.ID, "scheduled_at", exit)
	return &Result{Outcome: OutcomeDeferredQuiet, Scheduled: sched}, true
}

// resolveContent renders the template when one is referenced, bumping its
// usage counter, and returns the literal content otherwise.
func (d *Dispatcher) resolveContent(ctx context.Context, in Input) (string, error) {
	if in.TemplateID == "" {
		return in.Content, nil
	}
	tmpl, err := d.client.MessageTemplate.Query().
		Where(
			messagetemplate.ID(in.TemplateID),
			messagetemplate.TenantID(in.TenantID),
			messagetemplate.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load template: %w", err)
	}
	if err := d.client.MessageTemplate.UpdateOneID(tmpl.ID).
		AddUsageCount(1).
		Exec(ctx); err != nil {
		slog.Error("failed to bump template usage", "template_id", tmpl.ID, "error", err)
	}
	rendered := RenderTemplate(tmpl.Content, in.TemplateContext)
	if missing := UnrenderedTokens(rendered); len(missing) > 0 {
		slog.Warn("template rendered with unresolved tokens",
			"template_id", tmpl.ID, "tokens", missing)
	}
	return rendered, nil
}

func (d *Dispatcher) sendWithRetries(ctx context.Context, creds telephony.Credentials, input telephony.SendInput) (*telephony.Receipt, error) {
	var lastErr error
	for attempt := 1; attempt <= d.cfg.Dispatch.MaxSendAttempts; attempt++ {
		receipt, err := d.sender.Send(ctx, creds, input)
		if err == nil {
			return receipt, nil
		}
		lastErr = err
		if !telephony.IsRetryable(err) || attempt == d.cfg.Dispatch.MaxSendAttempts {
			break
		}
		delay := backoffDelay(d.cfg.Dispatch.RetryBaseDelay, d.cfg.Dispatch.RetryMaxDelay, attempt)
		slog.Warn("telephony send throttled, retrying",
			"attempt", attempt, "delay", delay, "error", err)
		if err := d.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (d *Dispatcher) recordMessage(ctx context.Context, in Input, content string, status message.Status, providerMessageID, failureReason string) (*ent.Message, error) {
	create := d.client.Message.Create().
		SetID(uuid.NewString()).
		SetTenantID(in.TenantID).
		SetConversationID(in.ConversationID).
		SetDirection(message.DirectionOutbound).
		SetMessageType(in.MessageType).
		SetContent(content).
		SetStatus(status)
	if providerMessageID != "" {
		create.SetProviderMessageID(providerMessageID)
	}
	if failureReason != "" {
		create.SetFailureReason(failureReason)
	}
	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record message: %w", err)
	}
	return msg, nil
}

func (d *Dispatcher) schedule(ctx context.Context, in Input, content string, at time.Time, reason string) (*ent.ScheduledMessage, error) {
	create := d.client.ScheduledMessage.Create().
		SetID(uuid.NewString()).
		SetTenantID(in.TenantID).
		SetCustomerID(in.CustomerID).
		SetContent(content).
		SetMessageType(scheduledmessage.MessageType(in.MessageType)).
		SetScheduledAt(at)
	meta := map[string]interface{}{
		"deferred_reason": reason,
		"conversation_id": in.ConversationID,
	}
	if in.MediaURL != "" {
		meta["media_url"] = in.MediaURL
	}
	create.SetMetadata(meta)
	if in.TemplateID != "" {
		create.SetTemplateID(in.TemplateID)
		create.SetTemplateContext(in.TemplateContext)
	}
	sched, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule deferred send: %w", err)
	}
	return sched, nil
}

func (d *Dispatcher) refund(ctx context.Context, tenantID, entryID string) {
	if err := d.limiter.Refund(ctx, tenantID, entryID); err != nil {
		slog.Error("failed to refund rate limit entry", "tenant_id", tenantID, "error", err)
	}
}

// dailyLimit resolves the tenant's cap from its tier, falling back to the
// dispatch default for unknown tiers.
func (d *Dispatcher) dailyLimit(tn *ent.Tenant) int {
	tier, err := d.cfg.GetTier(tn.SubscriptionTier)
	if err != nil {
		slog.Warn("unknown subscription tier, using default limit",
			"tenant_id", tn.ID, "tier", tn.SubscriptionTier)
		return d.cfg.Dispatch.DailyMessageLimit
	}
	return tier.DailyMessageLimit
}

// nextSpillSlot is the spill hour tomorrow in the tenant's timezone.
func (d *Dispatcher) nextSpillSlot(tn *ent.Tenant, now time.Time) time.Time {
	loc := quietLocation(tn, nil)
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+1,
		d.cfg.Dispatch.QueueSpillHour, 0, 0, 0, loc)
}

// consentAllows checks the customer's opt-ins for the message type.
// Transactional, fallback, and merchant-initiated sends never require
// consent; reminders and promotional types do.
func consentAllows(t message.MessageType, cust *ent.Customer) bool {
	switch t {
	case message.MessageTypeReminder:
		return cust.ReminderMessages
	case message.MessageTypeReEngagement, message.MessageTypeCampaign:
		return cust.PromotionalMessages
	default:
		return true
	}
}

// bypassesLimits reports whether the type skips rate limiting and quiet
// hours. Transactional and fallback sends answer an in-flight customer
// interaction and must go out now.
func bypassesLimits(t message.MessageType) bool {
	return t == message.MessageTypeAutomatedTransactional || t == message.MessageTypeFallback
}

// queuesOnRateLimit reports whether a rate-limited send is queued for the
// next day instead of rejected. Only bulk promotional traffic qualifies;
// explicit and time-anchored sends surface the error.
func queuesOnRateLimit(t message.MessageType) bool {
	return t == message.MessageTypeCampaign || t == message.MessageTypeReEngagement
}

func backoffDelay(base, max time.Duration, attempt int) time.Duration {
	delay := base << (attempt - 1)
	if delay > max {
		delay = max
	}
	jitter := time.Duration(rand.Int64N(int64(delay)/10 + 1))
	return delay + jitter
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
