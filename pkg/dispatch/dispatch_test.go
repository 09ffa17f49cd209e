package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/message"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/telephony"
	testdb "github.com/sokochat/sokochat/test/database"
)

type sendResult struct {
	receipt *telephony.Receipt
	err     error
}

type stubSender struct {
	mu      sync.Mutex
	results []sendResult
	calls   int
	inputs  []telephony.SendInput
}

func (s *stubSender) Send(_ context.Context, _ telephony.Credentials, in telephony.SendInput) (*telephony.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	s.calls++
	s.inputs = append(s.inputs, in)
	r := s.results[idx]
	return r.receipt, r.err
}

func okSender() *stubSender {
	return &stubSender{results: []sendResult{
		{receipt: &telephony.Receipt{ProviderMessageID: "wamid." + uuid.NewString(), AcceptedAt: time.Now()}},
	}}
}

type stubCreds struct{}

func (stubCreds) TelephonyCredentials(context.Context, string) (telephony.Credentials, error) {
	return telephony.Credentials{AccountSID: "AC1", AuthToken: "tok", FromNumber: "+254711000000"}, nil
}

const testDailyLimit = 5

func testDispatchConfig() *config.Config {
	return &config.Config{
		Dispatch: config.DefaultDispatchConfig(),
		TierRegistry: config.NewTierRegistry(map[string]*config.TierConfig{
			"starter": {MaxCampaignVariants: 2, DailyMessageLimit: testDailyLimit},
		}),
	}
}

type dispatchFixture struct {
	tenantID       string
	customerID     string
	conversationID string
}

func seedDispatch(t *testing.T, client *ent.Client, promotional bool) dispatchFixture {
	t.Helper()
	ctx := context.Background()

	f := dispatchFixture{
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
		SetPromotionalMessages(promotional).
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

// noon keeps non-transactional sends clear of the default quiet window.
var noon = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestDispatcher(client *ent.Client, sender telephony.Sender) (*Dispatcher, RateLimitStore) {
	store := NewMemoryRateLimitStore()
	d := NewDispatcher(client, testDispatchConfig(), store, sender, stubCreds{})
	d.sleep = func(context.Context, time.Duration) error { return nil }
	d.now = func() time.Time { return noon }
	return d, store
}

func fillQuota(t *testing.T, store RateLimitStore, tenantID string) {
	t.Helper()
	for i := 0; i < testDailyLimit; i++ {
		require.NoError(t, store.Record(context.Background(), tenantID, uuid.NewString(), noon.Add(-time.Hour)))
	}
}

func TestDispatcher_SendRecordsMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, false)
	sender := okSender()
	d, store := newTestDispatcher(client, sender)

	res, err := d.Send(context.Background(), Input{
		TenantID:       f.tenantID,
		ConversationID: f.conversationID,
		CustomerID:     f.customerID,
		MessageType:    message.MessageTypeManualOutbound,
		Content:        "Tuko na dress mpya leo!",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeSent, res.Outcome)
	require.NotNil(t, res.Message)

	assert.Equal(t, message.StatusSent, res.Message.Status)
	assert.Equal(t, message.DirectionOutbound, res.Message.Direction)
	require.NotNil(t, res.Message.ProviderMessageID)
	assert.NotEmpty(t, *res.Message.ProviderMessageID)
	assert.Equal(t, "+254700000001", sender.inputs[0].To)

	n, err := store.Count(context.Background(), f.tenantID, noon)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "successful send counts against the quota")
}

func TestDispatcher_NoConsentSkips(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, false)
	sender := okSender()
	d, _ := newTestDispatcher(client, sender)

	res, err := d.Send(context.Background(), Input{
		TenantID:       f.tenantID,
		ConversationID: f.conversationID,
		CustomerID:     f.customerID,
		MessageType:    message.MessageTypeCampaign,
		Content:        "Ofa ya wiki!",
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkippedNoConsent, res.Outcome)
	assert.Zero(t, sender.calls)

	count, err := client.Message.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDispatcher_ReminderConsent(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, false)
	d, _ := newTestDispatcher(client, okSender())
	ctx := context.Background()

	// Reminder consent defaults on.
	res, err := d.Send(ctx, Input{
		TenantID:       f.tenantID,
		ConversationID: f.conversationID,
		CustomerID:     f.customerID,
		MessageType:    message.MessageTypeReminder,
		Content:        "Kumbuka miadi yako kesho saa nne.",
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, res.Outcome)

	require.NoError(t, client.Customer.UpdateOneID(f.customerID).
		SetReminderMessages(false).
		Exec(ctx))

	res, err = d.Send(ctx, Input{
		TenantID:       f.tenantID,
		ConversationID: f.conversationID,
		CustomerID:     f.customerID,
		MessageType:    message.MessageTypeReminder,
		Content:        "Kumbuka miadi yako kesho saa nne.",
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkippedNoConsent, res.Outcome)
}

func TestDispatcher_ExplicitSendRateLimited(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, false)
	sender := okSender()
	d, store := newTestDispatcher(client, sender)
	fillQuota(t, store, f.tenantID)

	_, err := d.Send(context.Background(), Input{
		TenantID:       f.tenantID,
		ConversationID: f.conversationID,
		CustomerID:     f.customerID,
		MessageType:    message.MessageTypeManualOutbound,
		Content:        "hello",
	})
	require.ErrorIs(t, err, ErrRateLimited)
	assert.Zero(t, sender.calls)
}

func TestDispatcher_CampaignSpillsToNextDay(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, true)
	sender := okSender()
	d, store := newTestDispatcher(client, sender)
	fillQuota(t, store, f.tenantID)

	res, err := d.Send(context.Background(), Input{
		TenantID:       f.tenantID,
		ConversationID: f.conversationID,
		CustomerID:     f.customerID,
		MessageType:    message.MessageTypeCampaign,
		Content:        "Ofa ya wiki!",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeDeferredRateLimit, res.Outcome)
	require.NotNil(t, res.Scheduled)
	assert.Zero(t, sender.calls)

	assert.Equal(t, scheduledmessage.StatusPending, res.Scheduled.Status)
	want := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
	assert.True(t, res.Scheduled.ScheduledAt.Equal(want),
		"spilled to the next day's spill hour, got %s", res.Scheduled.ScheduledAt)
}

func TestDispatcher_TransactionalBypassesQuotaAndQuietHours(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, false)
	sender := okSender()
	d, store := newTestDispatcher(client, sender)
	fillQuota(t, store, f.tenantID)
	d.now = func() time.Time { return time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC) }

	err := d.SendTransactional(context.Background(), f.tenantID, f.conversationID, f.customerID,
		"Payment received — thank you!")
	require.NoError(t, err)
	assert.Equal(t, 1, sender.calls)

	n, err := store.Count(context.Background(), f.tenantID, noon)
	require.NoError(t, err)
	assert.Equal(t, testDailyLimit, n, "transactional sends do not consume quota")
}

func TestDispatcher_QuietHoursDefers(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, false)
	sender := okSender()
	d, store := newTestDispatcher(client, sender)
	d.now = func() time.Time { return time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC) }

	res, err := d.Send(context.Background(), Input{
		TenantID:       f.tenantID,
		ConversationID: f.conversationID,
		CustomerID:     f.customerID,
		MessageType:    message.MessageTypeReminder,
		Content:        "Kumbuka miadi yako kesho.",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeDeferredQuiet, res.Outcome)
	require.NotNil(t, res.Scheduled)
	assert.Zero(t, sender.calls)

	want := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
	assert.True(t, res.Scheduled.ScheduledAt.Equal(want),
		"deferred to the quiet window exit, got %s", res.Scheduled.ScheduledAt)

	n, err := store.Count(context.Background(), f.tenantID, noon)
	require.NoError(t, err)
	assert.Zero(t, n, "deferred sends do not consume quota")
}

func TestDispatcher_TemplateRendered(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, false)
	d, _ := newTestDispatcher(client, okSender())
	ctx := context.Background()

	templateID := uuid.New().String()
	_, err := client.MessageTemplate.Create().
		SetID(templateID).
		SetTenantID(f.tenantID).
		SetName("karibu").
		SetContent("Habari {{customer_name}}, karibu {{business_name}}!").
		Save(ctx)
	require.NoError(t, err)

	res, err := d.Send(ctx, Input{
		TenantID:       f.tenantID,
		ConversationID: f.conversationID,
		CustomerID:     f.customerID,
		MessageType:    message.MessageTypeManualOutbound,
		TemplateID:     templateID,
		TemplateContext: map[string]string{
			"customer_name": "Amina",
			"business_name": "Duka la Mitumba",
		},
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeSent, res.Outcome)
	assert.Equal(t, "Habari Amina, karibu Duka la Mitumba!", res.Message.Content)

	tmpl, err := client.MessageTemplate.Get(ctx, templateID)
	require.NoError(t, err)
	assert.Equal(t, 1, tmpl.UsageCount)
}

func TestDispatcher_PermanentFailureRefundsQuota(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, false)
	sender := &stubSender{results: []sendResult{
		{err: &telephony.SendError{Code: "63024", Message: "invalid recipient", Retryable: false}},
	}}
	d, store := newTestDispatcher(client, sender)

	res, err := d.Send(context.Background(), Input{
		TenantID:       f.tenantID,
		ConversationID: f.conversationID,
		CustomerID:     f.customerID,
		MessageType:    message.MessageTypeManualOutbound,
		Content:        "hello",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeFailed, res.Outcome)
	assert.Equal(t, 1, sender.calls, "permanent failures are not retried")

	assert.Equal(t, message.StatusFailed, res.Message.Status)
	require.NotNil(t, res.Message.FailureReason)
	assert.Contains(t, *res.Message.FailureReason, "invalid recipient")

	n, err := store.Count(context.Background(), f.tenantID, noon)
	require.NoError(t, err)
	assert.Zero(t, n, "permanent failures do not count against the quota")
}

func TestDispatcher_ThrottledRetriesThenSpills(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, false)
	sender := &stubSender{results: []sendResult{
		{err: &telephony.SendError{Code: "429", Message: "too many requests", Retryable: true}},
	}}
	d, store := newTestDispatcher(client, sender)

	res, err := d.Send(context.Background(), Input{
		TenantID:       f.tenantID,
		ConversationID: f.conversationID,
		CustomerID:     f.customerID,
		MessageType:    message.MessageTypeManualOutbound,
		Content:        "hello",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeDeferredRateLimit, res.Outcome)
	require.NotNil(t, res.Scheduled)
	assert.Equal(t, d.cfg.Dispatch.MaxSendAttempts, sender.calls)

	n, err := store.Count(context.Background(), f.tenantID, noon)
	require.NoError(t, err)
	assert.Zero(t, n, "spilled sends release their quota entry")
}

func TestDispatcher_ThrottledOnceThenSucceeds(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, false)
	sender := &stubSender{results: []sendResult{
		{err: &telephony.SendError{Code: "429", Message: "too many requests", Retryable: true}},
		{receipt: &telephony.Receipt{ProviderMessageID: "wamid.ok", AcceptedAt: time.Now()}},
	}}
	d, _ := newTestDispatcher(client, sender)

	res, err := d.Send(context.Background(), Input{
		TenantID:       f.tenantID,
		ConversationID: f.conversationID,
		CustomerID:     f.customerID,
		MessageType:    message.MessageTypeManualOutbound,
		Content:        "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, res.Outcome)
	assert.Equal(t, 2, sender.calls)
}

func TestDispatcher_Status(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := seedDispatch(t, client, false)
	d, store := newTestDispatcher(client, okSender())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Record(ctx, f.tenantID, uuid.NewString(), noon.Add(-time.Minute)))
	}

	status, err := d.Status(ctx, f.tenantID)
	require.NoError(t, err)
	assert.Equal(t, testDailyLimit, status.Limit)
	assert.Equal(t, 3, status.Used)
	assert.Equal(t, 2, status.Remaining)
	assert.InDelta(t, 0.6, status.Usage, 0.001)
}
