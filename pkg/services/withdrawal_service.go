package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/withdrawal"
)

// WithdrawalService manages wallet withdrawals. Approval is four-eyes: the
// approver must differ from the initiator, checked under a row lock so two
// racing approvals cannot both pass.
type WithdrawalService struct {
	client *ent.Client
	audit  *AuditService
}

// NewWithdrawalService creates a WithdrawalService.
func NewWithdrawalService(client *ent.Client, audit *AuditService) *WithdrawalService {
	return &WithdrawalService{client: client, audit: audit}
}

// Create records a pending withdrawal initiated by userID.
func (s *WithdrawalService) Create(ctx context.Context, tenantID, userID string, amountCents int, currency string) (*ent.Withdrawal, error) {
	if amountCents <= 0 {
		return nil, NewValidationError("amount_cents", "must be positive")
	}

	create := s.client.Withdrawal.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetAmountCents(amountCents).
		SetCreatedBy(userID)
	if currency != "" {
		create.SetCurrency(currency)
	}
	w, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create withdrawal: %w", err)
	}

	s.audit.Record(ctx, AuditEntry{
		TenantID:    tenantID,
		ActorUserID: userID,
		Action:      "withdrawal.create",
		TargetType:  "withdrawal",
		TargetID:    w.ID,
		After:       map[string]interface{}{"amount_cents": amountCents, "status": "pending"},
	})
	return w, nil
}

// Approve transitions pending → approved. The initiator cannot approve
// their own withdrawal.
func (s *WithdrawalService) Approve(ctx context.Context, tenantID, withdrawalID, approverID string) (*ent.Withdrawal, error) {
	w, err := s.decide(ctx, tenantID, withdrawalID, approverID, withdrawal.StatusApproved)
	if err != nil {
		return nil, err
	}
	slog.Info("withdrawal approved",
		"withdrawal_id", w.ID,
		"tenant_id", tenantID,
		"amount_cents", w.AmountCents,
		"approved_by", approverID)
	return w, nil
}

// Reject transitions pending → rejected, under the same four-eyes rule.
func (s *WithdrawalService) Reject(ctx context.Context, tenantID, withdrawalID, approverID string) (*ent.Withdrawal, error) {
	return s.decide(ctx, tenantID, withdrawalID, approverID, withdrawal.StatusRejected)
}

func (s *WithdrawalService) decide(ctx context.Context, tenantID, withdrawalID, approverID string, to withdrawal.Status) (*ent.Withdrawal, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	w, err := tx.Withdrawal.Query().
		Where(
			withdrawal.ID(withdrawalID),
			withdrawal.TenantID(tenantID),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("withdrawal %s: %w", withdrawalID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load withdrawal: %w", err)
	}

	if w.Status != withdrawal.StatusPending {
		return nil, fmt.Errorf("%w: withdrawal is %s", ErrInvalidTransition, w.Status)
	}
	if w.CreatedBy == approverID {
		return nil, ErrFourEyes
	}

	updated, err := tx.Withdrawal.UpdateOneID(w.ID).
		SetStatus(to).
		SetApprovedBy(approverID).
		SetApprovedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update withdrawal: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit withdrawal decision: %w", err)
	}

	s.audit.Record(ctx, AuditEntry{
		TenantID:    tenantID,
		ActorUserID: approverID,
		Action:      "withdrawal." + string(to),
		TargetType:  "withdrawal",
		TargetID:    w.ID,
		Before:      map[string]interface{}{"status": "pending"},
		After:       map[string]interface{}{"status": string(to)},
	})
	return updated, nil
}

// List returns a tenant's withdrawals, newest first.
func (s *WithdrawalService) List(ctx context.Context, tenantID string, limit, offset int) ([]*ent.Withdrawal, int, error) {
	q := s.client.Withdrawal.Query().Where(withdrawal.TenantID(tenantID))
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count withdrawals: %w", err)
	}
	rows, err := q.
		Order(ent.Desc(withdrawal.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return rows, total, nil
}
