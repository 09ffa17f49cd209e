package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/dispatch"
	testdb "github.com/sokochat/sokochat/test/database"
)

type stubDispatcher struct {
	mu     sync.Mutex
	result *dispatch.Result
	err    error
	calls  []dispatch.Input
}

func (s *stubDispatcher) Send(_ context.Context, in dispatch.Input) (*dispatch.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, in)
	return s.result, s.err
}

func (s *stubDispatcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type schedFixture struct {
	tenantID       string
	customerID     string
	conversationID string
}

func seedScheduler(t *testing.T, client *ent.Client) schedFixture {
	t.Helper()
	ctx := context.Background()

	f := schedFixture{
		tenantID:       uuid.New().String(),
		customerID:     uuid.New().String(),
		conversationID: uuid.New().String(),
	}

	_, err := client.Tenant.Create().
		SetID(f.tenantID).
		SetName("Duka la Mitumba").
		SetSlug("duka-" + f.tenantID[:8]).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Customer.Create().
		SetID(f.customerID).
		SetTenantID(f.tenantID).
		SetPhoneE164("+254700000001").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Conversation.Create().
		SetID(f.conversationID).
		SetTenantID(f.tenantID).
		SetCustomerID(f.customerID).
		Save(ctx)
	require.NoError(t, err)

	return f
}

func seedDueMessage(t *testing.T, client *ent.Client, f schedFixture, due time.Time) *ent.ScheduledMessage {
	t.Helper()
	row, err := client.ScheduledMessage.Create().
		SetID(uuid.NewString()).
		SetTenantID(f.tenantID).
		SetCustomerID(f.customerID).
		SetContent("Kumbuka miadi yako kesho.").
		SetMessageType(scheduledmessage.MessageTypeReminder).
		SetScheduledAt(due).
		SetMetadata(map[string]interface{}{"conversation_id": f.conversationID}).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func newTestWorker(client *ent.Client, d MessageDispatcher) *Worker {
	return NewWorker("pod-a-worker-0", "pod-a", client, config.DefaultQueueConfig(), d)
}

func TestWorker_ClaimAndDispatchSent(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	row := seedDueMessage(t, client, f, time.Now().Add(-time.Minute))

	d := &stubDispatcher{result: &dispatch.Result{
		Outcome: dispatch.OutcomeSent,
		Message: &ent.Message{ID: "msg-1"},
	}}
	w := newTestWorker(client, d)
	ctx := context.Background()

	require.NoError(t, w.pollAndDispatch(ctx))

	require.Equal(t, 1, d.callCount())
	in := d.calls[0]
	assert.Equal(t, f.conversationID, in.ConversationID)
	assert.Equal(t, f.customerID, in.CustomerID)
	assert.Equal(t, "Kumbuka miadi yako kesho.", in.Content)

	got, err := client.ScheduledMessage.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledmessage.StatusSent, got.Status)
	require.NotNil(t, got.SentMessageID)
	assert.Equal(t, "msg-1", *got.SentMessageID)
	require.NotNil(t, got.ClaimedBy)
	assert.Equal(t, "pod-a", *got.ClaimedBy)
}

func TestWorker_FutureMessagesNotClaimed(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	seedDueMessage(t, client, f, time.Now().Add(time.Hour))

	w := newTestWorker(client, &stubDispatcher{})
	_, err := w.claimNext(context.Background())
	assert.ErrorIs(t, err, ErrNoMessagesDue)
}

func TestWorker_ClaimedRowInvisibleToOthers(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	seedDueMessage(t, client, f, time.Now().Add(-time.Minute))

	w := newTestWorker(client, &stubDispatcher{})
	ctx := context.Background()

	_, err := w.claimNext(ctx)
	require.NoError(t, err)

	_, err = w.claimNext(ctx)
	assert.ErrorIs(t, err, ErrNoMessagesDue, "claimed rows are not re-claimed")
}

func TestWorker_NoConsentCancelsRow(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	row := seedDueMessage(t, client, f, time.Now().Add(-time.Minute))

	d := &stubDispatcher{result: &dispatch.Result{Outcome: dispatch.OutcomeSkippedNoConsent}}
	w := newTestWorker(client, d)
	ctx := context.Background()

	require.NoError(t, w.pollAndDispatch(ctx))

	got, err := client.ScheduledMessage.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledmessage.StatusCanceled, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Contains(t, *got.FailureReason, "consent")
}

func TestWorker_DeferredRowRetired(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	row := seedDueMessage(t, client, f, time.Now().Add(-time.Minute))

	d := &stubDispatcher{result: &dispatch.Result{
		Outcome:   dispatch.OutcomeDeferredQuiet,
		Scheduled: &ent.ScheduledMessage{ID: "replacement-1"},
	}}
	w := newTestWorker(client, d)
	ctx := context.Background()

	require.NoError(t, w.pollAndDispatch(ctx))

	got, err := client.ScheduledMessage.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledmessage.StatusCanceled, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Contains(t, *got.FailureReason, "replacement-1")
}

func TestWorker_DispatchErrorFailsRow(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	row := seedDueMessage(t, client, f, time.Now().Add(-time.Minute))

	d := &stubDispatcher{err: errors.New("daily message limit exceeded")}
	w := newTestWorker(client, d)
	ctx := context.Background()

	require.NoError(t, w.pollAndDispatch(ctx))

	got, err := client.ScheduledMessage.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledmessage.StatusFailed, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Contains(t, *got.FailureReason, "limit exceeded")
}

func TestWorker_NoRecipientFailsRow(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)

	row, err := client.ScheduledMessage.Create().
		SetID(uuid.NewString()).
		SetTenantID(f.tenantID).
		SetContent("orphan content").
		SetMessageType(scheduledmessage.MessageTypeCampaign).
		SetScheduledAt(time.Now().Add(-time.Minute)).
		Save(context.Background())
	require.NoError(t, err)

	d := &stubDispatcher{}
	w := newTestWorker(client, d)
	require.NoError(t, w.pollAndDispatch(context.Background()))

	got, err := client.ScheduledMessage.Get(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledmessage.StatusFailed, got.Status)
	assert.Zero(t, d.callCount())
}

func TestWorker_ResolvesConversationWhenMissing(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	ctx := context.Background()

	// Remove the seeded conversation so the worker must create one.
	_, err := client.Conversation.Delete().
		Where(conversation.ID(f.conversationID)).
		Exec(ctx)
	require.NoError(t, err)

	row, err := client.ScheduledMessage.Create().
		SetID(uuid.NewString()).
		SetTenantID(f.tenantID).
		SetCustomerID(f.customerID).
		SetContent("hello again").
		SetMessageType(scheduledmessage.MessageTypeReEngagement).
		SetScheduledAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	d := &stubDispatcher{result: &dispatch.Result{
		Outcome: dispatch.OutcomeSent,
		Message: &ent.Message{ID: "msg-2"},
	}}
	w := newTestWorker(client, d)
	require.NoError(t, w.pollAndDispatch(ctx))

	require.Equal(t, 1, d.callCount())
	assert.NotEmpty(t, d.calls[0].ConversationID)

	created, err := client.Conversation.Query().
		Where(conversation.CustomerID(f.customerID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, d.calls[0].ConversationID)

	got, err := client.ScheduledMessage.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledmessage.StatusSent, got.Status)
}

func TestPool_RecoversOrphanedClaims(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	ctx := context.Background()

	stale := seedDueMessage(t, client, f, time.Now().Add(-time.Hour))
	require.NoError(t, client.ScheduledMessage.UpdateOneID(stale.ID).
		SetClaimedBy("pod-dead").
		SetClaimedAt(time.Now().Add(-time.Hour)).
		Exec(ctx))

	fresh := seedDueMessage(t, client, f, time.Now().Add(-time.Minute))
	require.NoError(t, client.ScheduledMessage.UpdateOneID(fresh.ID).
		SetClaimedBy("pod-live").
		SetClaimedAt(time.Now()).
		Exec(ctx))

	p := NewWorkerPool("pod-a", client, config.DefaultQueueConfig(), &stubDispatcher{})
	require.NoError(t, p.recoverOrphanedClaims(ctx))

	got, err := client.ScheduledMessage.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ClaimedBy, "stale claim released")

	got, err = client.ScheduledMessage.Get(ctx, fresh.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ClaimedBy, "fresh claim kept")
	assert.Equal(t, "pod-live", *got.ClaimedBy)
}

func TestReleaseStartupClaims(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedScheduler(t, client)
	ctx := context.Background()

	mine := seedDueMessage(t, client, f, time.Now().Add(-time.Minute))
	require.NoError(t, client.ScheduledMessage.UpdateOneID(mine.ID).
		SetClaimedBy("pod-a").
		SetClaimedAt(time.Now().Add(-time.Minute)).
		Exec(ctx))

	other := seedDueMessage(t, client, f, time.Now().Add(-time.Minute))
	require.NoError(t, client.ScheduledMessage.UpdateOneID(other.ID).
		SetClaimedBy("pod-b").
		SetClaimedAt(time.Now().Add(-time.Minute)).
		Exec(ctx))

	require.NoError(t, ReleaseStartupClaims(ctx, client, "pod-a"))

	got, err := client.ScheduledMessage.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ClaimedBy)

	got, err = client.ScheduledMessage.Get(ctx, other.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ClaimedBy)
	assert.Equal(t, "pod-b", *got.ClaimedBy)
}
