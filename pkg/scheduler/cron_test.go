package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/message"
	"github.com/sokochat/sokochat/ent/outboxevent"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/dispatch"
	testdb "github.com/sokochat/sokochat/test/database"
)

type stubPurger struct {
	cutoffs []time.Time
}

func (s *stubPurger) DeleteExpired(_ context.Context, cutoff time.Time) (int, error) {
	s.cutoffs = append(s.cutoffs, cutoff)
	return 3, nil
}

func cronTestConfig() *config.Config {
	return &config.Config{
		Campaign:  config.DefaultCampaignConfig(),
		Retention: config.DefaultRetentionConfig(),
	}
}

func newTestCronJobs(client *ent.Client, d MessageDispatcher, refs ReferencePurger) *CronJobs {
	return NewCronJobs(client, cronTestConfig(), d, nil, refs)
}

func TestCronJobs_Reengagement(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	ctx := context.Background()

	// Inactive for 10 days, promotional consent on.
	require.NoError(t, client.Customer.UpdateOneID(f.customerID).
		SetPromotionalMessages(true).
		SetLastActivityAt(time.Now().AddDate(0, 0, -10)).
		Exec(ctx))

	d := &stubDispatcher{result: &dispatch.Result{
		Outcome: dispatch.OutcomeSent,
		Message: &ent.Message{ID: "msg-1"},
	}}
	j := newTestCronJobs(client, d, nil)

	require.NoError(t, j.RunReengagement(ctx))

	require.Equal(t, 1, d.callCount())
	in := d.calls[0]
	assert.Equal(t, message.MessageTypeReEngagement, in.MessageType)
	assert.Equal(t, f.customerID, in.CustomerID)
	assert.Contains(t, in.Content, "Duka la Mitumba")
}

func TestCronJobs_ReengagementNudgesOncePerWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	ctx := context.Background()

	require.NoError(t, client.Customer.UpdateOneID(f.customerID).
		SetPromotionalMessages(true).
		SetLastActivityAt(time.Now().AddDate(0, 0, -10)).
		Exec(ctx))

	// A nudge already went out inside the inactivity window.
	_, err := client.Message.Create().
		SetID(uuid.NewString()).
		SetTenantID(f.tenantID).
		SetConversationID(f.conversationID).
		SetDirection(message.DirectionOutbound).
		SetMessageType(message.MessageTypeReEngagement).
		SetContent("we miss you").
		SetStatus(message.StatusSent).
		Save(ctx)
	require.NoError(t, err)

	d := &stubDispatcher{result: &dispatch.Result{Outcome: dispatch.OutcomeSent, Message: &ent.Message{ID: "x"}}}
	j := newTestCronJobs(client, d, nil)

	require.NoError(t, j.RunReengagement(ctx))
	assert.Zero(t, d.callCount(), "already-nudged customer is skipped")
}

func TestCronJobs_ReengagementSkipsWithoutConsent(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	ctx := context.Background()

	// Inactive but promotional consent off (the default).
	require.NoError(t, client.Customer.UpdateOneID(f.customerID).
		SetLastActivityAt(time.Now().AddDate(0, 0, -10)).
		Exec(ctx))

	d := &stubDispatcher{result: &dispatch.Result{Outcome: dispatch.OutcomeSent, Message: &ent.Message{ID: "x"}}}
	j := newTestCronJobs(client, d, nil)

	require.NoError(t, j.RunReengagement(ctx))
	assert.Zero(t, d.callCount())
}

func TestCronJobs_DormantMarking(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	ctx := context.Background()

	// Seeded conversation: stale.
	require.NoError(t, client.Conversation.UpdateOneID(f.conversationID).
		SetStatus(conversation.StatusBot).
		SetLastMessageAt(time.Now().AddDate(0, 0, -20)).
		Exec(ctx))

	// A second, active conversation.
	activeID := uuid.NewString()
	_, err := client.Conversation.Create().
		SetID(activeID).
		SetTenantID(f.tenantID).
		SetCustomerID(f.customerID).
		SetStatus(conversation.StatusBot).
		SetLastMessageAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	j := newTestCronJobs(client, &stubDispatcher{}, nil)
	require.NoError(t, j.RunDormantMarking(ctx))

	stale, err := client.Conversation.Get(ctx, f.conversationID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusDormant, stale.Status)

	active, err := client.Conversation.Get(ctx, activeID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusBot, active.Status)
}

func TestCronJobs_RetentionPurge(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	ctx := context.Background()

	// Handled outbox row past the TTL; a fresh handled row; an unhandled row.
	old := time.Now().Add(-8 * 24 * time.Hour)
	_, err := client.OutboxEvent.Create().
		SetTenantID(f.tenantID).
		SetTopic("order.paid").
		SetPayload(map[string]interface{}{"order_id": "o1"}).
		SetCreatedAt(old).
		SetHandledAt(old).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.OutboxEvent.Create().
		SetTenantID(f.tenantID).
		SetTopic("order.paid").
		SetPayload(map[string]interface{}{"order_id": "o2"}).
		SetHandledAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.OutboxEvent.Create().
		SetTenantID(f.tenantID).
		SetTopic("order.paid").
		SetPayload(map[string]interface{}{"order_id": "o3"}).
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	// Closed conversation past the retention window.
	require.NoError(t, client.Conversation.UpdateOneID(f.conversationID).
		SetStatus(conversation.StatusClosed).
		SetUpdatedAt(time.Now().AddDate(-2, 0, 0)).
		Exec(ctx))

	purger := &stubPurger{}
	j := newTestCronJobs(client, &stubDispatcher{}, purger)
	require.NoError(t, j.RunRetentionPurge(ctx))

	remaining, err := client.OutboxEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2, "only the aged handled row is purged")
	for _, ev := range remaining {
		if ev.HandledAt != nil {
			assert.WithinDuration(t, time.Now(), *ev.HandledAt, time.Minute)
		}
	}

	unhandled, err := client.OutboxEvent.Query().
		Where(outboxevent.HandledAtIsNil()).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, unhandled)

	conv, err := client.Conversation.Get(ctx, f.conversationID)
	require.NoError(t, err)
	assert.NotNil(t, conv.DeletedAt, "aged closed conversation soft-deleted")

	require.Len(t, purger.cutoffs, 1, "reference purge invoked")
}

type stubCampaignRunner struct {
	runs []time.Time
}

func (s *stubCampaignRunner) ExecuteDue(_ context.Context, now time.Time) (int, error) {
	s.runs = append(s.runs, now)
	return 2, nil
}

func TestCronJobs_RunDueCampaigns(t *testing.T) {
	client := testdb.NewTestClient(t)
	j := newTestCronJobs(client, &stubDispatcher{}, nil)

	runner := &stubCampaignRunner{}
	j.SetCampaignRunner(runner)

	require.NoError(t, j.RunDueCampaigns(context.Background()))
	require.Len(t, runner.runs, 1)
	assert.WithinDuration(t, time.Now(), runner.runs[0], time.Minute)
}

func TestCronJobs_RunDueCampaignsWithoutRunner(t *testing.T) {
	client := testdb.NewTestClient(t)
	j := newTestCronJobs(client, &stubDispatcher{}, nil)

	assert.NoError(t, j.RunDueCampaigns(context.Background()))
}
