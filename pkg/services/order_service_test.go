package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/ent/outboxevent"
	"github.com/sokochat/sokochat/pkg/database"
	"github.com/sokochat/sokochat/pkg/outbox"
	testdb "github.com/sokochat/sokochat/test/database"
)

type orderFixture struct {
	db     *database.Client
	svc    *OrderService
	audit  *AuditService
	tenant string
	cust   string
	conv   string
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ctx := context.Background()

	db := testdb.NewTestDB(t)
	audit := NewAuditService(db.Client)
	f := &orderFixture{
		db:     db,
		audit:  audit,
		svc:    NewOrderService(db.Client, outbox.NewPublisher(db.DB()), audit),
		tenant: uuid.New().String(),
		cust:   uuid.New().String(),
		conv:   uuid.New().String(),
	}

	_, err := db.Tenant.Create().
		SetID(f.tenant).
		SetName("Duka la Mitumba").
		SetSlug("duka-" + f.tenant[:8]).
		Save(ctx)
	require.NoError(t, err)
	_, err = db.Customer.Create().
		SetID(f.cust).
		SetTenantID(f.tenant).
		SetPhoneE164("+254700000001").
		Save(ctx)
	require.NoError(t, err)
	_, err = db.Conversation.Create().
		SetID(f.conv).
		SetTenantID(f.tenant).
		SetCustomerID(f.cust).
		Save(ctx)
	require.NoError(t, err)
	return f
}

func (f *orderFixture) seedOrder(t *testing.T, status order.Status) *ent.Order {
	t.Helper()
	o, err := f.db.Order.Create().
		SetID(uuid.New().String()).
		SetTenantID(f.tenant).
		SetCustomerID(f.cust).
		SetStatus(status).
		SetTotalCents(500000).
		SetCurrency("KES").
		Save(context.Background())
	require.NoError(t, err)
	return o
}

func TestOrderService_PaidEmitsOutboxEvent(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	o := f.seedOrder(t, order.StatusPendingPayment)

	updated, err := f.svc.MarkPaid(ctx, f.tenant, o.ID, "")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, updated.Status)

	events, err := f.db.OutboxEvent.Query().
		Where(outboxevent.TenantID(f.tenant)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "order.paid", events[0].Topic)
	assert.Equal(t, o.ID, events[0].Payload["order_id"])
	assert.Equal(t, f.cust, events[0].Payload["customer_id"])
	assert.Equal(t, f.conv, events[0].Payload["conversation_id"])
	assert.NotEmpty(t, events[0].Payload["text"])
}

func TestOrderService_TransitionGraph(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	o := f.seedOrder(t, order.StatusPendingPayment)
	_, err := f.svc.MarkFulfilled(ctx, f.tenant, o.ID, "")
	assert.ErrorIs(t, err, ErrInvalidTransition, "cannot fulfill an unpaid order")

	_, err = f.svc.MarkPaid(ctx, f.tenant, o.ID, "")
	require.NoError(t, err)
	fulfilled, err := f.svc.MarkFulfilled(ctx, f.tenant, o.ID, "")
	require.NoError(t, err)
	assert.Equal(t, order.StatusFulfilled, fulfilled.Status)

	_, err = f.svc.Cancel(ctx, f.tenant, o.ID, "")
	assert.ErrorIs(t, err, ErrInvalidTransition, "fulfilled is terminal")
}

func TestOrderService_CancelFromPending(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	o := f.seedOrder(t, order.StatusPendingPayment)

	canceled, err := f.svc.Cancel(ctx, f.tenant, o.ID, "")
	require.NoError(t, err)
	assert.Equal(t, order.StatusCanceled, canceled.Status)

	_, err = f.svc.MarkPaid(ctx, f.tenant, o.ID, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderService_FailedTransitionLeavesNoEvent(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	o := f.seedOrder(t, order.StatusDraft)

	_, err := f.svc.MarkPaid(ctx, f.tenant, o.ID, "")
	require.ErrorIs(t, err, ErrInvalidTransition)

	count, err := f.db.OutboxEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOrderService_TenantScoped(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	o := f.seedOrder(t, order.StatusPendingPayment)

	_, err := f.svc.MarkPaid(ctx, "other-tenant", o.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)

	rows, total, err := f.svc.List(ctx, f.tenant, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)

	paid, total, err := f.svc.List(ctx, f.tenant, order.StatusPaid, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, paid)
}
