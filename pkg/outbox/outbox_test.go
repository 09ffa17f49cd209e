package outbox

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
	"github.com/sokochat/sokochat/ent/outboxevent"
	"github.com/sokochat/sokochat/pkg/dispatch"
	testdb "github.com/sokochat/sokochat/test/database"
)

type recordingHandler struct {
	mu     sync.Mutex
	topics []string
	fail   map[string]error
}

func (h *recordingHandler) Handle(_ context.Context, ev *ent.OutboxEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err, ok := h.fail[ev.Topic]; ok {
		return err
	}
	h.topics = append(h.topics, ev.Topic)
	return nil
}

func seedTenant(t *testing.T, client *ent.Client) string {
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

func seedEvent(t *testing.T, client *ent.Client, tenantID, topic string, payload map[string]interface{}) *ent.OutboxEvent {
	t.Helper()
	ev, err := client.OutboxEvent.Create().
		SetTenantID(tenantID).
		SetTopic(topic).
		SetPayload(payload).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

func TestPublisher_PublishInTransaction(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedTenant(t, client)
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)

	p := &Publisher{}
	ev, err := p.Publish(ctx, tx, tenantID, "order.paid", map[string]interface{}{"order_id": "o1"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	got, err := client.OutboxEvent.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "order.paid", got.Topic)
	assert.Equal(t, "o1", got.Payload["order_id"])
	assert.Nil(t, got.HandledAt)
}

func TestPublisher_RollbackDiscardsEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedTenant(t, client)
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)

	p := &Publisher{}
	_, err = p.Publish(ctx, tx, tenantID, "order.paid", map[string]interface{}{})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	count, err := client.OutboxEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "rolled-back domain change leaves no outbox row")
}

func TestDrainer_DrainsInOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedTenant(t, client)
	ctx := context.Background()

	seedEvent(t, client, tenantID, "order.paid", map[string]interface{}{})
	seedEvent(t, client, tenantID, "order.fulfilled", map[string]interface{}{})
	seedEvent(t, client, tenantID, "order.shipped", map[string]interface{}{})

	h := &recordingHandler{}
	d := NewDrainer(client, "", h, time.Minute)
	d.drainAll(ctx)

	assert.Equal(t, []string{"order.paid", "order.fulfilled", "order.shipped"}, h.topics)

	unhandled, err := client.OutboxEvent.Query().
		Where(outboxevent.HandledAtIsNil()).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, unhandled)
}

func TestDrainer_FailedEventStaysUnhandled(t *testing.T) {
	client := testdb.NewTestClient(t)
	tenantID := seedTenant(t, client)
	ctx := context.Background()

	seedEvent(t, client, tenantID, "order.paid", map[string]interface{}{})
	seedEvent(t, client, tenantID, "order.fulfilled", map[string]interface{}{})

	h := &recordingHandler{fail: map[string]error{"order.paid": errors.New("downstream down")}}
	d := NewDrainer(client, "", h, time.Minute)
	d.drainAll(ctx)

	// The failing head-of-queue row stops the pass; both rows remain for the
	// next one.
	unhandled, err := client.OutboxEvent.Query().
		Where(outboxevent.HandledAtIsNil()).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, unhandled)
	assert.Empty(t, h.topics)

	// Once the failure clears the queue drains fully.
	h.mu.Lock()
	h.fail = nil
	h.mu.Unlock()
	d.drainAll(ctx)

	unhandled, err = client.OutboxEvent.Query().
		Where(outboxevent.HandledAtIsNil()).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, unhandled)
}

type stubOutboxDispatcher struct {
	mu    sync.Mutex
	calls []dispatch.Input
}

func (s *stubOutboxDispatcher) Send(_ context.Context, in dispatch.Input) (*dispatch.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, in)
	return &dispatch.Result{Outcome: dispatch.OutcomeSent, Message: &ent.Message{ID: "m1"}}, nil
}

func TestNotificationHandler_DispatchesTransactional(t *testing.T) {
	d := &stubOutboxDispatcher{}
	h := NewNotificationHandler(d)

	ev := &ent.OutboxEvent{
		ID:       1,
		TenantID: "t1",
		Topic:    "order.fulfilled",
		Payload: map[string]interface{}{
			"customer_id":     "c1",
			"conversation_id": "conv1",
			"text":            "Your order is on its way!",
		},
	}
	require.NoError(t, h.Handle(context.Background(), ev))

	require.Len(t, d.calls, 1)
	in := d.calls[0]
	assert.Equal(t, "t1", in.TenantID)
	assert.Equal(t, "c1", in.CustomerID)
	assert.Equal(t, "conv1", in.ConversationID)
	assert.Equal(t, "Your order is on its way!", in.Content)
}

func TestNotificationHandler_MalformedPayloadSkipped(t *testing.T) {
	d := &stubOutboxDispatcher{}
	h := NewNotificationHandler(d)

	ev := &ent.OutboxEvent{
		ID:       2,
		TenantID: "t1",
		Topic:    "order.fulfilled",
		Payload:  map[string]interface{}{"text": "no recipient"},
	}
	require.NoError(t, h.Handle(context.Background(), ev), "malformed rows are swallowed, not retried")
	assert.Empty(t, d.calls)
}
