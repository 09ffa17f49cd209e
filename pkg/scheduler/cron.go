package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/customer"
	"github.com/sokochat/sokochat/ent/message"
	"github.com/sokochat/sokochat/ent/outboxevent"
	"github.com/sokochat/sokochat/ent/tenant"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/dispatch"
)

// paymentExpiryAge is how long an initiated payment may sit without a
// provider callback before it is expired server-side.
const paymentExpiryAge = 30 * time.Minute

// PaymentExpirer expires payment requests stuck in initiated.
type PaymentExpirer interface {
	ExpireStalePayments(ctx context.Context, olderThan time.Duration) (int, error)
}

// ReferencePurger hard-deletes expired reference context rows.
type ReferencePurger interface {
	DeleteExpired(ctx context.Context, cutoff time.Time) (int, error)
}

// CampaignRunner executes scheduled campaigns that have become due.
type CampaignRunner interface {
	ExecuteDue(ctx context.Context, now time.Time) (int, error)
}

// CronJobs owns the periodic platform jobs: re-engagement, dormant marking,
// retention purge, payment expiry, and due campaign execution.
type CronJobs struct {
	client     *ent.Client
	cfg        *config.Config
	dispatcher MessageDispatcher
	payments   PaymentExpirer
	refs       ReferencePurger
	campaigns  CampaignRunner
	cron       *cron.Cron

	now func() time.Time
}

// NewCronJobs creates the periodic job runner. payments and refs may be nil
// to disable the corresponding jobs.
func NewCronJobs(client *ent.Client, cfg *config.Config, dispatcher MessageDispatcher, payments PaymentExpirer, refs ReferencePurger) *CronJobs {
	return &CronJobs{
		client:     client,
		cfg:        cfg,
		dispatcher: dispatcher,
		payments:   payments,
		refs:       refs,
		cron:       cron.New(),
		now:        time.Now,
	}
}

// SetCampaignRunner enables the due campaign job.
func (j *CronJobs) SetCampaignRunner(r CampaignRunner) {
	j.campaigns = r
}

// Start registers the schedules and starts the cron runner.
func (j *CronJobs) Start() error {
	if _, err := j.cron.AddFunc(j.cfg.Campaign.ReengagementSchedule, func() {
		if err := j.RunReengagement(context.Background()); err != nil {
			slog.Error("Re-engagement job failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to register re-engagement schedule: %w", err)
	}

	if _, err := j.cron.AddFunc(j.cfg.Campaign.DormantSchedule, func() {
		if err := j.RunDormantMarking(context.Background()); err != nil {
			slog.Error("Dormant marking job failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to register dormant schedule: %w", err)
	}

	every := fmt.Sprintf("@every %s", j.cfg.Retention.CleanupInterval)
	if _, err := j.cron.AddFunc(every, func() {
		if err := j.RunRetentionPurge(context.Background()); err != nil {
			slog.Error("Retention purge failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to register retention schedule: %w", err)
	}

	if j.payments != nil {
		if _, err := j.cron.AddFunc("@every 10m", func() {
			if err := j.RunPaymentExpiry(context.Background()); err != nil {
				slog.Error("Payment expiry job failed", "error", err)
			}
		}); err != nil {
			return fmt.Errorf("failed to register payment expiry schedule: %w", err)
		}
	}

	if j.campaigns != nil {
		if _, err := j.cron.AddFunc("@every 1m", func() {
			if err := j.RunDueCampaigns(context.Background()); err != nil {
				slog.Error("Due campaign job failed", "error", err)
			}
		}); err != nil {
			return fmt.Errorf("failed to register due campaign schedule: %w", err)
		}
	}

	j.cron.Start()
	slog.Info("Cron jobs started",
		"reengagement", j.cfg.Campaign.ReengagementSchedule,
		"dormant", j.cfg.Campaign.DormantSchedule,
		"retention_every", j.cfg.Retention.CleanupInterval)
	return nil
}

// Stop stops the cron runner and waits for running jobs to finish.
func (j *CronJobs) Stop() {
	<-j.cron.Stop().Done()
	slog.Info("Cron jobs stopped")
}

// RunReengagement nudges customers inactive for the configured number of
// days who have opted into promotional messages. A customer already nudged
// inside the inactivity window is skipped.
func (j *CronJobs) RunReengagement(ctx context.Context) error {
	now := j.now()
	inactiveSince := now.AddDate(0, 0, -j.cfg.Campaign.ReengagementAfterDays)

	tenants, err := j.client.Tenant.Query().
		Where(
			tenant.DeletedAtIsNil(),
			tenant.StatusIn(tenant.StatusActive, tenant.StatusTrial),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tenants: %w", err)
	}

	nudged := 0
	for _, tn := range tenants {
		candidates, err := j.client.Customer.Query().
			Where(
				customer.TenantID(tn.ID),
				customer.DeletedAtIsNil(),
				customer.PromotionalMessages(true),
				customer.LastActivityAtNotNil(),
				customer.LastActivityAtLT(inactiveSince),
			).
			All(ctx)
		if err != nil {
			slog.Error("Failed to list re-engagement candidates",
				"tenant_id", tn.ID, "error", err)
			continue
		}

		for _, cust := range candidates {
			sent, err := j.reengageCustomer(ctx, tn, cust, inactiveSince)
			if err != nil {
				slog.Error("Re-engagement send failed",
					"tenant_id", tn.ID, "customer_id", cust.ID, "error", err)
				continue
			}
			if sent {
				nudged++
			}
		}
	}

	slog.Info("Re-engagement scan complete", "nudged", nudged)
	return nil
}

func (j *CronJobs) reengageCustomer(ctx context.Context, tn *ent.Tenant, cust *ent.Customer, inactiveSince time.Time) (bool, error) {
	convIDs, err := j.client.Conversation.Query().
		Where(
			conversation.TenantID(tn.ID),
			conversation.CustomerID(cust.ID),
		).
		IDs(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list conversations: %w", err)
	}
	if len(convIDs) == 0 {
		// Never talked to us; nothing to re-engage.
		return false, nil
	}

	// One nudge per inactivity window.
	already, err := j.client.Message.Query().
		Where(
			message.ConversationIDIn(convIDs...),
			message.MessageTypeEQ(message.MessageTypeReEngagement),
			message.CreatedAtGT(inactiveSince),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check prior nudges: %w", err)
	}
	if already {
		return false, nil
	}

	name := cust.DisplayName
	if name == "" {
		name = "there"
	}
	content := fmt.Sprintf("Hi %s! It's been a while — we've got new arrivals at %s. Reply to see what's in store.", name, tn.Name)

	res, err := j.dispatcher.Send(ctx, dispatch.Input{
		TenantID:       tn.ID,
		ConversationID: convIDs[len(convIDs)-1],
		CustomerID:     cust.ID,
		MessageType:    message.MessageTypeReEngagement,
		Content:        content,
	})
	if err != nil {
		return false, err
	}
	return res.Outcome == dispatch.OutcomeSent, nil
}

// RunDormantMarking flips conversations with no traffic for the configured
// number of days to dormant.
func (j *CronJobs) RunDormantMarking(ctx context.Context) error {
	cutoff := j.now().AddDate(0, 0, -j.cfg.Campaign.DormantAfterDays)

	marked, err := j.client.Conversation.Update().
		Where(
			conversation.StatusIn(conversation.StatusOpen, conversation.StatusBot, conversation.StatusHandoff),
			conversation.DeletedAtIsNil(),
			conversation.LastMessageAtNotNil(),
			conversation.LastMessageAtLT(cutoff),
		).
		SetStatus(conversation.StatusDormant).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark dormant conversations: %w", err)
	}

	if marked > 0 {
		slog.Info("Marked conversations dormant", "count", marked)
	}
	return nil
}

// RunRetentionPurge enforces the retention policy: expired reference
// contexts, handled outbox rows, and closed conversations past the retention
// window.
func (j *CronJobs) RunRetentionPurge(ctx context.Context) error {
	now := j.now()

	if j.refs != nil {
		n, err := j.refs.DeleteExpired(ctx, now.Add(-j.cfg.Retention.ReferenceContextTTL))
		if err != nil {
			slog.Error("Failed to purge expired reference contexts", "error", err)
		} else if n > 0 {
			slog.Info("Purged expired reference contexts", "count", n)
		}
	}

	outboxCutoff := now.Add(-j.cfg.Retention.HandledOutboxTTL)
	n, err := j.client.OutboxEvent.Delete().
		Where(
			outboxevent.HandledAtNotNil(),
			outboxevent.HandledAtLT(outboxCutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to purge handled outbox rows", "error", err)
	} else if n > 0 {
		slog.Info("Purged handled outbox rows", "count", n)
	}

	convCutoff := now.AddDate(0, 0, -j.cfg.Retention.ConversationRetentionDays)
	soft, err := j.client.Conversation.Update().
		Where(
			conversation.StatusEQ(conversation.StatusClosed),
			conversation.DeletedAtIsNil(),
			conversation.UpdatedAtLT(convCutoff),
		).
		SetDeletedAt(now).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to soft-delete aged conversations", "error", err)
	} else if soft > 0 {
		slog.Info("Soft-deleted aged conversations", "count", soft)
	}

	return nil
}

// RunDueCampaigns executes scheduled campaigns whose send time has arrived.
func (j *CronJobs) RunDueCampaigns(ctx context.Context) error {
	if j.campaigns == nil {
		return nil
	}
	n, err := j.campaigns.ExecuteDue(ctx, j.now())
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("Executed due campaigns", "count", n)
	}
	return nil
}

// RunPaymentExpiry expires payment requests stuck in initiated.
func (j *CronJobs) RunPaymentExpiry(ctx context.Context) error {
	n, err := j.payments.ExpireStalePayments(ctx, paymentExpiryAge)
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("Expired stale payment requests", "count", n)
	}
	return nil
}
