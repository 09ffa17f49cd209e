package services

import (
	"context"
	"fmt"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/pkg/outbox"
)

// orderTransitions is the allowed status graph. Cancellation is reachable
// from every non-terminal status.
var orderTransitions = map[order.Status][]order.Status{
	order.StatusDraft:          {order.StatusPendingPayment, order.StatusCanceled},
	order.StatusPendingPayment: {order.StatusPaid, order.StatusCanceled},
	order.StatusPaid:           {order.StatusFulfilled, order.StatusCanceled},
}

// OrderService manages order lifecycle. Status transitions write an outbox
// event in the same transaction so the customer notification survives a
// crash between commit and send.
type OrderService struct {
	client *ent.Client
	outbox *outbox.Publisher
	audit  *AuditService
}

// NewOrderService creates an OrderService.
func NewOrderService(client *ent.Client, publisher *outbox.Publisher, audit *AuditService) *OrderService {
	return &OrderService{client: client, outbox: publisher, audit: audit}
}

// Get loads one order with its items.
func (s *OrderService) Get(ctx context.Context, tenantID, orderID string) (*ent.Order, error) {
	o, err := s.client.Order.Query().
		Where(
			order.ID(orderID),
			order.TenantID(tenantID),
			order.DeletedAtIsNil(),
		).
		WithItems().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return o, nil
}

// List returns the tenant's orders, newest first. status filters when
// non-empty.
func (s *OrderService) List(ctx context.Context, tenantID string, status order.Status, limit, offset int) ([]*ent.Order, int, error) {
	q := s.client.Order.Query().
		Where(
			order.TenantID(tenantID),
			order.DeletedAtIsNil(),
		)
	if status != "" {
		q = q.Where(order.StatusEQ(status))
	}
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}
	rows, err := q.
		Order(ent.Desc(order.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		WithItems().
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return rows, total, nil
}

// MarkPaid transitions pending_payment → paid.
func (s *OrderService) MarkPaid(ctx context.Context, tenantID, orderID, actorUserID string) (*ent.Order, error) {
	return s.transition(ctx, tenantID, orderID, actorUserID, order.StatusPaid,
		"Your payment is confirmed. We're getting your order ready!")
}

// MarkFulfilled transitions paid → fulfilled.
func (s *OrderService) MarkFulfilled(ctx context.Context, tenantID, orderID, actorUserID string) (*ent.Order, error) {
	return s.transition(ctx, tenantID, orderID, actorUserID, order.StatusFulfilled,
		"Your order is on its way. Thank you for shopping with us!")
}

// Cancel transitions any non-terminal status → canceled.
func (s *OrderService) Cancel(ctx context.Context, tenantID, orderID, actorUserID string) (*ent.Order, error) {
	return s.transition(ctx, tenantID, orderID, actorUserID, order.StatusCanceled,
		"Your order has been canceled. Reply here if that wasn't expected.")
}

func (s *OrderService) transition(ctx context.Context, tenantID, orderID, actorUserID string, to order.Status, notice string) (*ent.Order, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	o, err := tx.Order.Query().
		Where(
			order.ID(orderID),
			order.TenantID(tenantID),
			order.DeletedAtIsNil(),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if !transitionAllowed(o.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}

	updated, err := tx.Order.UpdateOneID(o.ID).SetStatus(to).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	conv, err := tx.Conversation.Query().
		Where(
			conversation.TenantID(tenantID),
			conversation.CustomerID(o.CustomerID),
			conversation.DeletedAtIsNil(),
		).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	// A customer without a conversation has nowhere to be notified; the
	// transition itself still commits.
	if conv != nil {
		if _, err := s.outbox.Publish(ctx, tx, tenantID, "order."+string(to), map[string]interface{}{
			"order_id":        o.ID,
			"customer_id":     o.CustomerID,
			"conversation_id": conv.ID,
			"text":            notice,
		}); err != nil {
			return nil, fmt.Errorf("failed to publish order event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order transition: %w", err)
	}
	s.outbox.Wake(ctx)

	s.audit.Record(ctx, AuditEntry{
		TenantID:    tenantID,
		ActorUserID: actorUserID,
		Action:      "order." + string(to),
		TargetType:  "order",
		TargetID:    o.ID,
		Before:      map[string]interface{}{"status": string(o.Status)},
		After:       map[string]interface{}{"status": string(to)},
	})
	return updated, nil
}

func transitionAllowed(from, to order.Status) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
