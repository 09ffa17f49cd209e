package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/checkoutsession"
	entorder "github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/ent/orderitem"
	"github.com/sokochat/sokochat/ent/paymentrequest"
	"github.com/sokochat/sokochat/ent/predicate"
	"github.com/sokochat/sokochat/pkg/payments"
)

// ErrUnknownPaymentRequest indicates the callback references no stored
// payment request.
var ErrUnknownPaymentRequest = errors.New("unknown payment request")

// HandleCallback applies a verified provider callback: PaymentInitiated →
// Paid on success, → Failed otherwise. The lookup is scoped to the tenant
// whose webhook secret signed the callback, so one tenant's callback can
// never touch another tenant's request. Callbacks for one request are
// serialized under a row lock and duplicates collapse idempotently — a
// request already in a terminal state is left untouched.
func (m *Machine) HandleCallback(ctx context.Context, tenantID string, cb payments.Callback) error {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	req, err := tx.PaymentRequest.Query().
		Where(
			paymentrequest.TenantID(tenantID),
			paymentRequestPredicate(cb),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: ref %s", ErrUnknownPaymentRequest, cb.ProviderRef)
		}
		return fmt.Errorf("failed to load payment request: %w", err)
	}

	switch req.Status {
	case paymentrequest.StatusSucceeded, paymentrequest.StatusFailed, paymentrequest.StatusExpired:
		slog.Info("duplicate payment callback ignored",
			"payment_request_id", req.ID,
			"status", req.Status,
			"event_id", cb.EventID)
		return tx.Commit()
	}

	sess, err := tx.CheckoutSession.Query().
		Where(
			checkoutsession.PaymentRequestID(req.ID),
			checkoutsession.StateEQ(checkoutsession.StatePaymentInitiated),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load checkout session: %w", err)
	}

	order, err := tx.Order.Get(ctx, req.OrderID)
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}

	var (
		newStatus  paymentrequest.Status
		sessState  checkoutsession.State
		customText string
	)
	switch cb.Status {
	case payments.CallbackSucceeded:
		newStatus = paymentrequest.StatusSucceeded
		sessState = checkoutsession.StatePaid
		customText = fmt.Sprintf("Payment received — thank you! Your order %s is confirmed.", shortID(order.ID))
		if _, err := tx.Order.UpdateOneID(order.ID).
			SetStatus(entorder.StatusPaid).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to mark order paid: %w", err)
		}
	case payments.CallbackExpired:
		newStatus = paymentrequest.StatusExpired
		sessState = checkoutsession.StateFailed
		customText = "Your payment session expired. Reply PAY to try again."
	default:
		newStatus = paymentrequest.StatusFailed
		sessState = checkoutsession.StateFailed
		customText = "The payment didn't go through. Reply PAY to retry or choose another payment method."
	}

	update := tx.PaymentRequest.UpdateOneID(req.ID).SetStatus(newStatus)
	if cb.FailureReason != "" {
		update.SetFailureReason(cb.FailureReason)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to update payment request: %w", err)
	}

	// A payment that will never arrive must not strand the order or the
	// stock it reserved.
	if newStatus != paymentrequest.StatusSucceeded {
		if err := releaseOrder(ctx, tx, order); err != nil {
			return err
		}
	}

	if sess != nil {
		if _, err := tx.CheckoutSession.UpdateOneID(sess.ID).
			SetState(sessState).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to update checkout session: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit callback: %w", err)
	}

	slog.Info("payment callback applied",
		"payment_request_id", req.ID,
		"status", newStatus,
		"event_id", cb.EventID)

	// The confirmation is a transactional send outside the budget window; a
	// dispatch failure must not roll back the recorded payment outcome.
	if m.notifier != nil && sess != nil {
		if err := m.notifier.SendTransactional(ctx, req.TenantID, sess.ConversationID, order.CustomerID, customText); err != nil {
			slog.Error("failed to send payment outcome message",
				"payment_request_id", req.ID, "error", err)
		}
	}
	return nil
}

// ExpireStalePayments transitions requests stuck in initiated past the
// cutoff to expired, as if a timeout callback had arrived. Called by the
// scheduler.
func (m *Machine) ExpireStalePayments(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	stale, err := m.client.PaymentRequest.Query().
		Where(
			paymentrequest.StatusEQ(paymentrequest.StatusInitiated),
			paymentrequest.CreatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale payment requests: %w", err)
	}

	expired := 0
	for _, req := range stale {
		ref := ""
		if req.ProviderRef != nil {
			ref = *req.ProviderRef
		}
		cb := payments.Callback{
			ProviderRef:      ref,
			PaymentRequestID: req.ID,
			Status:           payments.CallbackExpired,
			FailureReason:    "payment timed out",
		}
		if err := m.HandleCallback(ctx, req.TenantID, cb); err != nil {
			slog.Error("failed to expire stale payment", "payment_request_id", req.ID, "error", err)
			continue
		}
		expired++
	}
	return expired, nil
}

// releaseOrder cancels an unpaid order and returns its reserved quantities
// to variant stock, inside the caller's transaction.
func releaseOrder(ctx context.Context, tx *ent.Tx, order *ent.Order) error {
	if order.Status != entorder.StatusPendingPayment {
		return nil
	}

	items, err := tx.OrderItem.Query().
		Where(orderitem.OrderID(order.ID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}
	for _, item := range items {
		if _, err := tx.ProductVariant.UpdateOneID(item.VariantID).
			AddStock(item.Quantity).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to restore stock for variant %s: %w", item.VariantID, err)
		}
	}

	if _, err := tx.Order.UpdateOneID(order.ID).
		SetStatus(entorder.StatusCanceled).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func paymentRequestPredicate(cb payments.Callback) predicate.PaymentRequest {
	if cb.PaymentRequestID != "" {
		return paymentrequest.ID(cb.PaymentRequestID)
	}
	return paymentrequest.ProviderRef(cb.ProviderRef)
}
