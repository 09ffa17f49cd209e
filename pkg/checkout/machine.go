// Package checkout implements the deterministic checkout state machine:
// Browsing → ProductSelected → QuantityConfirmed → PaymentMethodSelected →
// PaymentInitiated → {Paid | Failed} → Closed. Orders are created atomically
// with server-side totals from catalog prices; model-supplied prices are
// never trusted. From leaving Browsing through PaymentInitiated the machine
// emits at most three outbound messages.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/checkoutsession"
	entorder "github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/ent/paymentrequest"
	"github.com/sokochat/sokochat/ent/productvariant"
	"github.com/sokochat/sokochat/pkg/payments"
)

// messageBudget caps outbound messages from leaving Browsing through
// PaymentInitiated inclusive.
const messageBudget = 3

// initiateRetryDelay is the backoff before the single payment-initiation
// retry.
const initiateRetryDelay = 2 * time.Second

// Sentinel errors surfaced to the orchestrator, which turns them into
// customer-facing clarifications.
var (
	ErrInvalidTransition = errors.New("invalid checkout transition")
	ErrOutOfStock        = errors.New("variant is out of stock")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer within available stock")
	ErrSessionClosed     = errors.New("checkout session is closed")
)

// Notifier dispatches the machine's outbound messages. Implemented by the
// messaging dispatcher; checkout messages are transactional and bypass
// consent.
type Notifier interface {
	SendTransactional(ctx context.Context, tenantID, conversationID, customerID, text string) error
}

// Machine drives checkout sessions.
type Machine struct {
	client    *ent.Client
	initiator payments.Initiator
	notifier  Notifier

	sleep func(ctx context.Context, d time.Duration) error
}

// NewMachine creates a checkout Machine.
func NewMachine(client *ent.Client, initiator payments.Initiator, notifier Notifier) *Machine {
	if client == nil {
		panic("checkout.NewMachine: client is required")
	}
	return &Machine{
		client:    client,
		initiator: initiator,
		notifier:  notifier,
		sleep:     sleepCtx,
	}
}

// Session returns the conversation's active checkout session, creating a
// Browsing one when none exists.
func (m *Machine) Session(ctx context.Context, tenantID, conversationID string) (*ent.CheckoutSession, error) {
	sess, err := m.client.CheckoutSession.Query().
		Where(
			checkoutsession.TenantID(tenantID),
			checkoutsession.ConversationID(conversationID),
			checkoutsession.StateNEQ(checkoutsession.StateClosed),
		).
		Order(ent.Desc(checkoutsession.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		return sess, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load checkout session: %w", err)
	}

	sess, err = m.client.CheckoutSession.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetConversationID(conversationID).
		SetState(checkoutsession.StateBrowsing).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess, nil
}

// SelectProduct transitions Browsing → ProductSelected for a resolvable,
// in-stock variant. Re-selection while still in ProductSelected replaces the
// earlier choice.
func (m *Machine) SelectProduct(ctx context.Context, sess *ent.CheckoutSession, customerID, variantID string) (*ent.CheckoutSession, error) {
	if sess.State != checkoutsession.StateBrowsing && sess.State != checkoutsession.StateProductSelected {
		return nil, fmt.Errorf("%w: cannot select product in state %s", ErrInvalidTransition, sess.State)
	}

	variant, err := m.client.ProductVariant.Query().
		Where(
			productvariant.ID(variantID),
			productvariant.TenantID(sess.TenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("variant %s: %w", variantID, ErrOutOfStock)
		}
		return nil, fmt.Errorf("failed to load variant: %w", err)
	}
	if variant.Stock <= 0 {
		return nil, fmt.Errorf("variant %s: %w", variantID, ErrOutOfStock)
	}

	sess, err = sess.Update().
		SetState(checkoutsession.StateProductSelected).
		SetVariantID(variantID).
		ClearQuantity().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update checkout session: %w", err)
	}

	text := fmt.Sprintf("%s — %s. How many would you like?",
		variant.Label, formatAmount(variant.PriceCents, variant.Currency))
	return m.sendBudgeted(ctx, sess, customerID, text)
}

// ConfirmQuantity transitions ProductSelected → QuantityConfirmed when the
// quantity is a positive integer within available stock.
func (m *Machine) ConfirmQuantity(ctx context.Context, sess *ent.CheckoutSession, customerID string, quantity int) (*ent.CheckoutSession, error) {
	if sess.State != checkoutsession.StateProductSelected {
		return nil, fmt.Errorf("%w: cannot confirm quantity in state %s", ErrInvalidTransition, sess.State)
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if sess.VariantID == nil {
		return nil, fmt.Errorf("%w: no variant selected", ErrInvalidTransition)
	}

	variant, err := m.client.ProductVariant.Get(ctx, *sess.VariantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load variant: %w", err)
	}
	if quantity > variant.Stock {
		return nil, fmt.Errorf("%w: only %d available", ErrInvalidQuantity, variant.Stock)
	}

	sess, err = sess.Update().
		SetState(checkoutsession.StateQuantityConfirmed).
		SetQuantity(quantity).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update checkout session: %w", err)
	}

	total := variant.PriceCents * quantity
	text := fmt.Sprintf("%d × %s = %s. How would you like to pay?",
		quantity, variant.Label, formatAmount(total, variant.Currency))
	return m.sendBudgeted(ctx, sess, customerID, text)
}

// SelectPaymentMethod transitions QuantityConfirmed → PaymentMethodSelected:
// the Order is created atomically under a variant row lock with totals
// computed from the catalog price, and stock is decremented. No message is
// sent here; the payment-initiation confirmation covers it.
func (m *Machine) SelectPaymentMethod(ctx context.Context, sess *ent.CheckoutSession, customerID, provider string) (*ent.CheckoutSession, error) {
	if sess.State != checkoutsession.StateQuantityConfirmed {
		return nil, fmt.Errorf("%w: cannot select payment method in state %s", ErrInvalidTransition, sess.State)
	}
	if sess.VariantID == nil || sess.Quantity == nil {
		return nil, fmt.Errorf("%w: missing variant or quantity", ErrInvalidTransition)
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock the variant row so concurrent checkouts cannot oversell.
	variant, err := tx.ProductVariant.Query().
		Where(productvariant.ID(*sess.VariantID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock variant: %w", err)
	}
	quantity := *sess.Quantity
	if quantity > variant.Stock {
		return nil, fmt.Errorf("%w: only %d available", ErrInvalidQuantity, variant.Stock)
	}

	orderID := uuid.New().String()
	total := variant.PriceCents * quantity
	if _, err := tx.Order.Create().
		SetID(orderID).
		SetTenantID(sess.TenantID).
		SetCustomerID(customerID).
		SetStatus(entorder.StatusPendingPayment).
		SetTotalCents(total).
		SetCurrency(variant.Currency).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if _, err := tx.OrderItem.Create().
		SetID(uuid.New().String()).
		SetTenantID(sess.TenantID).
		SetOrderID(orderID).
		SetVariantID(variant.ID).
		SetQuantity(quantity).
		SetUnitPriceCents(variant.PriceCents).
		SetSubtotalCents(total).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create order item: %w", err)
	}
	if _, err := tx.ProductVariant.UpdateOneID(variant.ID).
		AddStock(-quantity).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to decrement stock: %w", err)
	}

	if _, err := tx.CheckoutSession.UpdateOneID(sess.ID).
		SetState(checkoutsession.StatePaymentMethodSelected).
		SetOrderID(orderID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update checkout session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order creation: %w", err)
	}

	slog.Info("order created",
		"order_id", orderID,
		"tenant_id", sess.TenantID,
		"total_cents", total,
		"provider", provider)

	// Reload outside the committed transaction so callers can keep mutating
	// the session.
	updated, err := m.client.CheckoutSession.Get(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload checkout session: %w", err)
	}
	return updated, nil
}

// InitiatePayment transitions PaymentMethodSelected → PaymentInitiated. One
// retry with backoff covers transient provider failures; persistent failure
// transitions the session to Failed. Exactly one confirmation message is
// sent on success.
func (m *Machine) InitiatePayment(ctx context.Context, sess *ent.CheckoutSession, customerID, customerPhone, provider, callbackURL string, creds payments.Credentials) (*ent.CheckoutSession, error) {
	if sess.State != checkoutsession.StatePaymentMethodSelected {
		return nil, fmt.Errorf("%w: cannot initiate payment in state %s", ErrInvalidTransition, sess.State)
	}
	if sess.OrderID == nil {
		return nil, fmt.Errorf("%w: no order", ErrInvalidTransition)
	}

	order, err := m.client.Order.Get(ctx, *sess.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	req, err := m.client.PaymentRequest.Create().
		SetID(uuid.New().String()).
		SetTenantID(sess.TenantID).
		SetOrderID(order.ID).
		SetStatus(paymentrequest.StatusPending).
		SetProvider(provider).
		SetAmountCents(order.TotalCents).
		SetCurrency(order.Currency).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment request: %w", err)
	}

	result, initErr := m.initiateWithRetry(ctx, creds, payments.InitiateInput{
		PaymentRequestID: req.ID,
		OrderID:          order.ID,
		AmountCents:      int64(order.TotalCents),
		Currency:         order.Currency,
		CustomerPhone:    customerPhone,
		CallbackURL:      callbackURL,
	})
	if initErr != nil {
		return m.failInitiation(ctx, sess, req, customerID, initErr)
	}

	if _, err := req.Update().
		SetStatus(paymentrequest.StatusInitiated).
		SetProviderRef(result.ProviderRef).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark payment initiated: %w", err)
	}

	sess, err = sess.Update().
		SetState(checkoutsession.StatePaymentInitiated).
		SetPaymentRequestID(req.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update checkout session: %w", err)
	}

	text := "Payment initiated."
	if result.Instructions != "" {
		text = fmt.Sprintf("Payment initiated. %s", result.Instructions)
	}
	return m.sendBudgeted(ctx, sess, customerID, text)
}

func (m *Machine) initiateWithRetry(ctx context.Context, creds payments.Credentials, input payments.InitiateInput) (*payments.InitiateResult, error) {
	result, err := m.initiator.Initiate(ctx, creds, input)
	if err == nil {
		return result, nil
	}
	if !payments.IsRetryable(err) {
		return nil, err
	}

	slog.Warn("payment initiation failed, retrying once",
		"payment_request_id", input.PaymentRequestID, "error", err)
	if sleepErr := m.sleep(ctx, initiateRetryDelay); sleepErr != nil {
		return nil, sleepErr
	}
	return m.initiator.Initiate(ctx, creds, input)
}

// failInitiation records the persistent failure, cancels the order with its
// reserved stock, and transitions to Failed with one message offering
// alternatives.
func (m *Machine) failInitiation(ctx context.Context, sess *ent.CheckoutSession, req *ent.PaymentRequest, customerID string, cause error) (*ent.CheckoutSession, error) {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.PaymentRequest.UpdateOneID(req.ID).
		SetStatus(paymentrequest.StatusFailed).
		SetFailureReason(cause.Error()).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark payment request failed: %w", err)
	}

	order, err := tx.Order.Get(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if err := releaseOrder(ctx, tx, order); err != nil {
		return nil, err
	}

	if _, err := tx.CheckoutSession.UpdateOneID(sess.ID).
		SetState(checkoutsession.StateFailed).
		SetPaymentRequestID(req.ID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update checkout session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit initiation failure: %w", err)
	}

	sess, err = m.client.CheckoutSession.Get(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload checkout session: %w", err)
	}

	slog.Warn("payment initiation failed permanently",
		"payment_request_id", req.ID, "error", cause)
	return m.sendBudgeted(ctx, sess, customerID,
		"We couldn't start the payment. Reply PAY to try again or choose another payment method.")
}

// ReopenFailed transitions Failed → QuantityConfirmed so the customer can
// retry payment. The failed attempt's order was canceled and its stock
// returned, so the retry recreates the order from the retained variant and
// quantity. The message budget restarts with the new attempt.
func (m *Machine) ReopenFailed(ctx context.Context, sess *ent.CheckoutSession) (*ent.CheckoutSession, error) {
	if sess.State != checkoutsession.StateFailed {
		return nil, fmt.Errorf("%w: cannot reopen in state %s", ErrInvalidTransition, sess.State)
	}
	if sess.VariantID == nil || sess.Quantity == nil {
		return nil, fmt.Errorf("%w: no variant or quantity retained", ErrInvalidTransition)
	}

	sess, err := sess.Update().
		SetState(checkoutsession.StateQuantityConfirmed).
		ClearOrderID().
		ClearPaymentRequestID().
		SetMessageCount(0).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reopen checkout session: %w", err)
	}
	return sess, nil
}

// sendBudgeted emits one outbound message unless the budget is exhausted, in
// which case the message is skipped and logged.
func (m *Machine) sendBudgeted(ctx context.Context, sess *ent.CheckoutSession, customerID, text string) (*ent.CheckoutSession, error) {
	if sess.MessageCount >= messageBudget {
		slog.Info("checkout message budget exhausted, skipping outbound",
			"checkout_session_id", sess.ID,
			"state", sess.State)
		return sess, nil
	}
	if m.notifier != nil {
		if err := m.notifier.SendTransactional(ctx, sess.TenantID, sess.ConversationID, customerID, text); err != nil {
			return nil, fmt.Errorf("failed to send checkout message: %w", err)
		}
	}
	sess, err := sess.Update().AddMessageCount(1).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count checkout message: %w", err)
	}
	return sess, nil
}

// Close transitions a terminal session (Paid or Failed) to Closed.
func (m *Machine) Close(ctx context.Context, sess *ent.CheckoutSession) (*ent.CheckoutSession, error) {
	if sess.State != checkoutsession.StatePaid && sess.State != checkoutsession.StateFailed {
		return nil, fmt.Errorf("%w: cannot close in state %s", ErrInvalidTransition, sess.State)
	}
	sess, err := sess.Update().SetState(checkoutsession.StateClosed).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to close checkout session: %w", err)
	}
	return sess, nil
}

func formatAmount(cents int, currency string) string {
	if cents%100 == 0 {
		return fmt.Sprintf("%s %d", currency, cents/100)
	}
	return fmt.Sprintf("%s %d.%02d", currency, cents/100, cents%100)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
