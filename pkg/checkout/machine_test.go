package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/checkoutsession"
	entorder "github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/ent/paymentrequest"
	"github.com/sokochat/sokochat/pkg/payments"
	testdb "github.com/sokochat/sokochat/test/database"
)

type stubInitiator struct {
	mu      sync.Mutex
	results []initResult
	calls   int
}

type initResult struct {
	res *payments.InitiateResult
	err error
}

func (s *stubInitiator) Initiate(_ context.Context, _ payments.Credentials, _ payments.InitiateInput) (*payments.InitiateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	s.calls++
	r := s.results[idx]
	return r.res, r.err
}

type stubNotifier struct {
	mu    sync.Mutex
	texts []string
}

func (s *stubNotifier) SendTransactional(_ context.Context, _, _, _, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
	return nil
}

func (s *stubNotifier) sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.texts...)
}

type fixture struct {
	tenantID       string
	customerID     string
	conversationID string
	variantID      string
}

func seedCheckout(t *testing.T, client *ent.Client, stock int) fixture {
	t.Helper()
	ctx := context.Background()

	f := fixture{
		tenantID:       uuid.New().String(),
		customerID:     uuid.New().String(),
		conversationID: uuid.New().String(),
		variantID:      uuid.New().String(),
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

	productID := uuid.New().String()
	_, err = client.Product.Create().
		SetID(productID).
		SetTenantID(f.tenantID).
		SetName("Dress").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ProductVariant.Create().
		SetID(f.variantID).
		SetTenantID(f.tenantID).
		SetProductID(productID).
		SetLabel("Blue / M").
		SetPriceCents(250000).
		SetCurrency("KES").
		SetStock(stock).
		Save(ctx)
	require.NoError(t, err)

	return f
}

func newTestMachine(client *ent.Client, initiator payments.Initiator, notifier Notifier) *Machine {
	m := NewMachine(client, initiator, notifier)
	m.sleep = func(context.Context, time.Duration) error { return nil }
	return m
}

func TestMachine_HappyPathThroughPaid(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 5)

	notifier := &stubNotifier{}
	initiator := &stubInitiator{results: []initResult{
		{res: &payments.InitiateResult{ProviderRef: "pay_abc", Instructions: "Enter your M-Pesa PIN."}},
	}}
	m := newTestMachine(client, initiator, notifier)

	sess, err := m.Session(ctx, f.tenantID, f.conversationID)
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StateBrowsing, sess.State)

	sess, err = m.SelectProduct(ctx, sess, f.customerID, f.variantID)
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StateProductSelected, sess.State)

	sess, err = m.ConfirmQuantity(ctx, sess, f.customerID, 2)
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StateQuantityConfirmed, sess.State)

	sess, err = m.SelectPaymentMethod(ctx, sess, f.customerID, "mpesa")
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StatePaymentMethodSelected, sess.State)
	require.NotNil(t, sess.OrderID)

	// Totals come from the catalog price, stock is decremented.
	order, err := client.Order.Get(ctx, *sess.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entorder.StatusPendingPayment, order.Status)
	assert.Equal(t, 500000, order.TotalCents)
	variant, err := client.ProductVariant.Get(ctx, f.variantID)
	require.NoError(t, err)
	assert.Equal(t, 3, variant.Stock)

	sess, err = m.InitiatePayment(ctx, sess, f.customerID, "+254700000001", "mpesa", "https://example.test/cb", payments.Credentials{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StatePaymentInitiated, sess.State)
	require.NotNil(t, sess.PaymentRequestID)

	// Budget: selection prompt, quantity prompt, initiation confirmation.
	assert.Len(t, notifier.sent(), 3)
	assert.Equal(t, 3, sess.MessageCount)

	err = m.HandleCallback(ctx, f.tenantID, payments.Callback{
		PaymentRequestID: *sess.PaymentRequestID,
		ProviderRef:      "pay_abc",
		Status:           payments.CallbackSucceeded,
		EventID:          "evt_1",
	})
	require.NoError(t, err)

	order, err = client.Order.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entorder.StatusPaid, order.Status)

	sess, err = client.CheckoutSession.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StatePaid, sess.State)

	// The paid confirmation is outside the budget window.
	texts := notifier.sent()
	require.Len(t, texts, 4)
	assert.Contains(t, texts[3], "confirmed")

	sess, err = m.Close(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StateClosed, sess.State)
}

func TestMachine_InvalidTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 5)
	m := newTestMachine(client, &stubInitiator{}, &stubNotifier{})

	sess, err := m.Session(ctx, f.tenantID, f.conversationID)
	require.NoError(t, err)

	_, err = m.ConfirmQuantity(ctx, sess, f.customerID, 1)
	assert.ErrorIs(t, err, ErrInvalidTransition, "quantity before selection")

	_, err = m.SelectPaymentMethod(ctx, sess, f.customerID, "mpesa")
	assert.ErrorIs(t, err, ErrInvalidTransition, "payment method before quantity")

	_, err = m.Close(ctx, sess)
	assert.ErrorIs(t, err, ErrInvalidTransition, "close before terminal state")
}

func TestMachine_StockGuards(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 2)
	m := newTestMachine(client, &stubInitiator{}, &stubNotifier{})

	sess, err := m.Session(ctx, f.tenantID, f.conversationID)
	require.NoError(t, err)

	sess, err = m.SelectProduct(ctx, sess, f.customerID, f.variantID)
	require.NoError(t, err)

	_, err = m.ConfirmQuantity(ctx, sess, f.customerID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = m.ConfirmQuantity(ctx, sess, f.customerID, 3)
	assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity above stock")

	_, err = m.ConfirmQuantity(ctx, sess, f.customerID, 2)
	require.NoError(t, err)
}

func TestMachine_OutOfStockSelection(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 0)
	m := newTestMachine(client, &stubInitiator{}, &stubNotifier{})

	sess, err := m.Session(ctx, f.tenantID, f.conversationID)
	require.NoError(t, err)

	_, err = m.SelectProduct(ctx, sess, f.customerID, f.variantID)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestMachine_InitiationRetriesOnceThenFails(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 5)

	notifier := &stubNotifier{}
	initiator := &stubInitiator{results: []initResult{
		{err: &payments.InitiateError{Code: "timeout", Message: "gateway timeout", Retryable: true}},
	}}
	m := newTestMachine(client, initiator, notifier)

	sess := driveToPaymentMethodSelected(t, m, f)

	sess, err := m.InitiatePayment(ctx, sess, f.customerID, "+254700000001", "mpesa", "https://example.test/cb", payments.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StateFailed, sess.State)
	assert.Equal(t, 2, initiator.calls, "one retry for a transient failure")

	require.NotNil(t, sess.PaymentRequestID)
	req, err := client.PaymentRequest.Get(ctx, *sess.PaymentRequestID)
	require.NoError(t, err)
	assert.Equal(t, paymentrequest.StatusFailed, req.Status)

	// A payment that never started releases the order and its stock.
	order, err := client.Order.Get(ctx, *sess.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entorder.StatusCanceled, order.Status)
	variant, err := client.ProductVariant.Get(ctx, f.variantID)
	require.NoError(t, err)
	assert.Equal(t, 5, variant.Stock)
}

func TestMachine_PermanentInitiationFailureSkipsRetry(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 5)

	initiator := &stubInitiator{results: []initResult{
		{err: &payments.InitiateError{Code: "invalid_credentials", Message: "bad key", Retryable: false}},
	}}
	m := newTestMachine(client, initiator, &stubNotifier{})

	sess := driveToPaymentMethodSelected(t, m, f)

	sess, err := m.InitiatePayment(ctx, sess, f.customerID, "+254700000001", "mpesa", "https://example.test/cb", payments.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StateFailed, sess.State)
	assert.Equal(t, 1, initiator.calls)
}

func TestMachine_CallbackIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 5)

	notifier := &stubNotifier{}
	initiator := &stubInitiator{results: []initResult{
		{res: &payments.InitiateResult{ProviderRef: "pay_dup"}},
	}}
	m := newTestMachine(client, initiator, notifier)

	sess := driveToPaymentMethodSelected(t, m, f)
	sess, err := m.InitiatePayment(ctx, sess, f.customerID, "+254700000001", "mpesa", "https://example.test/cb", payments.Credentials{})
	require.NoError(t, err)

	cb := payments.Callback{ProviderRef: "pay_dup", Status: payments.CallbackSucceeded, EventID: "evt_1"}
	require.NoError(t, m.HandleCallback(ctx, f.tenantID, cb))

	before := len(notifier.sent())
	require.NoError(t, m.HandleCallback(ctx, f.tenantID, cb), "duplicate callback is a no-op")
	assert.Len(t, notifier.sent(), before, "no second confirmation message")

	req, err := client.PaymentRequest.Get(ctx, *sess.PaymentRequestID)
	require.NoError(t, err)
	assert.Equal(t, paymentrequest.StatusSucceeded, req.Status)
}

func TestMachine_FailureCallback(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 5)

	notifier := &stubNotifier{}
	initiator := &stubInitiator{results: []initResult{
		{res: &payments.InitiateResult{ProviderRef: "pay_fail"}},
	}}
	m := newTestMachine(client, initiator, notifier)

	sess := driveToPaymentMethodSelected(t, m, f)
	sess, err := m.InitiatePayment(ctx, sess, f.customerID, "+254700000001", "mpesa", "https://example.test/cb", payments.Credentials{})
	require.NoError(t, err)

	err = m.HandleCallback(ctx, f.tenantID, payments.Callback{
		ProviderRef:   "pay_fail",
		Status:        payments.CallbackFailed,
		FailureReason: "insufficient funds",
		EventID:       "evt_2",
	})
	require.NoError(t, err)

	sess, err = client.CheckoutSession.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StateFailed, sess.State)

	req, err := client.PaymentRequest.Get(ctx, *sess.PaymentRequestID)
	require.NoError(t, err)
	assert.Equal(t, paymentrequest.StatusFailed, req.Status)
	require.NotNil(t, req.FailureReason)
	assert.Equal(t, "insufficient funds", *req.FailureReason)

	// The abandoned order is canceled and its reserved stock returned.
	order, err := client.Order.Get(ctx, *sess.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entorder.StatusCanceled, order.Status)
	variant, err := client.ProductVariant.Get(ctx, f.variantID)
	require.NoError(t, err)
	assert.Equal(t, 5, variant.Stock)

	texts := notifier.sent()
	assert.Contains(t, texts[len(texts)-1], "didn't go through")
}

func TestMachine_CallbackCrossTenantRejected(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 5)
	other := seedCheckout(t, client, 5)

	initiator := &stubInitiator{results: []initResult{
		{res: &payments.InitiateResult{ProviderRef: "pay_xt"}},
	}}
	m := newTestMachine(client, initiator, &stubNotifier{})

	sess := driveToPaymentMethodSelected(t, m, f)
	sess, err := m.InitiatePayment(ctx, sess, f.customerID, "+254700000001", "mpesa", "https://example.test/cb", payments.Credentials{})
	require.NoError(t, err)

	// A callback authenticated with another tenant's webhook secret cannot
	// touch this tenant's request, even knowing its id.
	err = m.HandleCallback(ctx, other.tenantID, payments.Callback{
		PaymentRequestID: *sess.PaymentRequestID,
		ProviderRef:      "pay_xt",
		Status:           payments.CallbackSucceeded,
		EventID:          "evt_xt",
	})
	assert.ErrorIs(t, err, ErrUnknownPaymentRequest)

	order, err := client.Order.Get(ctx, *sess.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entorder.StatusPendingPayment, order.Status)

	// The owning tenant's callback still lands.
	require.NoError(t, m.HandleCallback(ctx, f.tenantID, payments.Callback{
		PaymentRequestID: *sess.PaymentRequestID,
		ProviderRef:      "pay_xt",
		Status:           payments.CallbackSucceeded,
		EventID:          "evt_xt",
	}))
	order, err = client.Order.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entorder.StatusPaid, order.Status)
}

func TestMachine_SessionScopedToTenant(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 5)
	other := seedCheckout(t, client, 5)
	m := newTestMachine(client, &stubInitiator{}, &stubNotifier{})

	sessA, err := m.Session(ctx, f.tenantID, f.conversationID)
	require.NoError(t, err)

	sessB, err := m.Session(ctx, other.tenantID, f.conversationID)
	require.NoError(t, err)
	assert.NotEqual(t, sessA.ID, sessB.ID, "another tenant never sees this session")
	assert.Equal(t, checkoutsession.StateBrowsing, sessB.State)
}

func TestMachine_ReopenFailedRetriesPayment(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 5)

	notifier := &stubNotifier{}
	initiator := &stubInitiator{results: []initResult{
		{res: &payments.InitiateResult{ProviderRef: "pay_try1"}},
		{res: &payments.InitiateResult{ProviderRef: "pay_try2"}},
	}}
	m := newTestMachine(client, initiator, notifier)

	sess := driveToPaymentMethodSelected(t, m, f)
	sess, err := m.InitiatePayment(ctx, sess, f.customerID, "+254700000001", "mpesa", "https://example.test/cb", payments.Credentials{})
	require.NoError(t, err)
	firstOrder := *sess.OrderID

	require.NoError(t, m.HandleCallback(ctx, f.tenantID, payments.Callback{
		PaymentRequestID: *sess.PaymentRequestID,
		Status:           payments.CallbackFailed,
		FailureReason:    "insufficient funds",
		EventID:          "evt_r1",
	}))

	sess, err = client.CheckoutSession.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, checkoutsession.StateFailed, sess.State)

	// Replying PAY reopens the session with the variant and quantity kept.
	sess, err = m.ReopenFailed(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StateQuantityConfirmed, sess.State)
	assert.Nil(t, sess.OrderID)
	assert.Nil(t, sess.PaymentRequestID)

	sess, err = m.SelectPaymentMethod(ctx, sess, f.customerID, "mpesa")
	require.NoError(t, err)
	sess, err = m.InitiatePayment(ctx, sess, f.customerID, "+254700000001", "mpesa", "https://example.test/cb", payments.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StatePaymentInitiated, sess.State)
	require.NotNil(t, sess.OrderID)
	assert.NotEqual(t, firstOrder, *sess.OrderID, "the retry gets a fresh order")
	assert.Equal(t, 2, initiator.calls)

	// Exactly one order's worth of stock is reserved across both attempts.
	variant, err := client.ProductVariant.Get(ctx, f.variantID)
	require.NoError(t, err)
	assert.Equal(t, 4, variant.Stock)

	require.NoError(t, m.HandleCallback(ctx, f.tenantID, payments.Callback{
		PaymentRequestID: *sess.PaymentRequestID,
		Status:           payments.CallbackSucceeded,
		EventID:          "evt_r2",
	}))
	order, err := client.Order.Get(ctx, *sess.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entorder.StatusPaid, order.Status)
}

func TestMachine_ReopenFailedRequiresFailedState(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 5)
	m := newTestMachine(client, &stubInitiator{}, &stubNotifier{})

	sess, err := m.Session(ctx, f.tenantID, f.conversationID)
	require.NoError(t, err)

	_, err = m.ReopenFailed(ctx, sess)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMachine_BudgetCapsOutboundMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 10)

	notifier := &stubNotifier{}
	m := newTestMachine(client, &stubInitiator{results: []initResult{
		{res: &payments.InitiateResult{ProviderRef: "pay_b"}},
	}}, notifier)

	sess, err := m.Session(ctx, f.tenantID, f.conversationID)
	require.NoError(t, err)

	// Re-selecting twice burns budget before the normal flow finishes.
	sess, err = m.SelectProduct(ctx, sess, f.customerID, f.variantID)
	require.NoError(t, err)
	sess, err = m.SelectProduct(ctx, sess, f.customerID, f.variantID)
	require.NoError(t, err)
	sess, err = m.ConfirmQuantity(ctx, sess, f.customerID, 1)
	require.NoError(t, err)
	sess, err = m.SelectPaymentMethod(ctx, sess, f.customerID, "mpesa")
	require.NoError(t, err)
	sess, err = m.InitiatePayment(ctx, sess, f.customerID, "+254700000001", "mpesa", "https://example.test/cb", payments.Credentials{})
	require.NoError(t, err)

	assert.Equal(t, checkoutsession.StatePaymentInitiated, sess.State,
		"budget exhaustion skips messages, never blocks transitions")
	assert.Len(t, notifier.sent(), 3, "at most three outbound messages before the callback")
	assert.Equal(t, 3, sess.MessageCount)
}

func TestMachine_ExpireStalePayments(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	f := seedCheckout(t, client, 5)

	initiator := &stubInitiator{results: []initResult{
		{res: &payments.InitiateResult{ProviderRef: "pay_stale"}},
	}}
	m := newTestMachine(client, initiator, &stubNotifier{})

	sess := driveToPaymentMethodSelected(t, m, f)
	sess, err := m.InitiatePayment(ctx, sess, f.customerID, "+254700000001", "mpesa", "https://example.test/cb", payments.Credentials{})
	require.NoError(t, err)

	// Nothing is stale yet.
	n, err := m.ExpireStalePayments(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	// With a zero cutoff everything initiated is stale.
	n, err = m.ExpireStalePayments(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	req, err := client.PaymentRequest.Get(ctx, *sess.PaymentRequestID)
	require.NoError(t, err)
	assert.Equal(t, paymentrequest.StatusExpired, req.Status)

	sess, err = client.CheckoutSession.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StateFailed, sess.State)

	// Expiry releases the order and its reserved stock like any failure.
	order, err := client.Order.Get(ctx, *sess.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entorder.StatusCanceled, order.Status)
	variant, err := client.ProductVariant.Get(ctx, f.variantID)
	require.NoError(t, err)
	assert.Equal(t, 5, variant.Stock)
}

func driveToPaymentMethodSelected(t *testing.T, m *Machine, f fixture) *ent.CheckoutSession {
	t.Helper()
	ctx := context.Background()

	sess, err := m.Session(ctx, f.tenantID, f.conversationID)
	require.NoError(t, err)
	sess, err = m.SelectProduct(ctx, sess, f.customerID, f.variantID)
	require.NoError(t, err)
	sess, err = m.ConfirmQuantity(ctx, sess, f.customerID, 1)
	require.NoError(t, err)
	sess, err = m.SelectPaymentMethod(ctx, sess, f.customerID, "mpesa")
	require.NoError(t, err)
	return sess
}
