package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent/withdrawal"
)

func TestWithdrawalService_FourEyes(t *testing.T) {
	f := newFixture(t)
	svc := NewWithdrawalService(f.client, f.audit)
	ctx := context.Background()

	approver := f.register(t, "finance@duka.example")

	w, err := svc.Create(ctx, f.tenant.ID, f.owner.ID, 150000, "KES")
	require.NoError(t, err)
	assert.Equal(t, withdrawal.StatusPending, w.Status)

	_, err = svc.Approve(ctx, f.tenant.ID, w.ID, f.owner.ID)
	assert.ErrorIs(t, err, ErrFourEyes, "initiator cannot approve their own withdrawal")

	approved, err := svc.Approve(ctx, f.tenant.ID, w.ID, approver.ID)
	require.NoError(t, err)
	assert.Equal(t, withdrawal.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, approver.ID, *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)

	_, err = svc.Approve(ctx, f.tenant.ID, w.ID, approver.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "approval is single-shot")
	_, err = svc.Reject(ctx, f.tenant.ID, w.ID, approver.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestWithdrawalService_Reject(t *testing.T) {
	f := newFixture(t)
	svc := NewWithdrawalService(f.client, f.audit)
	ctx := context.Background()

	reviewer := f.register(t, "finance@duka.example")

	w, err := svc.Create(ctx, f.tenant.ID, f.owner.ID, 99900, "")
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, f.tenant.ID, w.ID, reviewer.ID)
	require.NoError(t, err)
	assert.Equal(t, withdrawal.StatusRejected, rejected.Status)
}

func TestWithdrawalService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewWithdrawalService(f.client, f.audit)

	_, err := svc.Create(context.Background(), f.tenant.ID, f.owner.ID, 0, "KES")
	assert.True(t, IsValidationError(err))
	_, err = svc.Create(context.Background(), f.tenant.ID, f.owner.ID, -100, "KES")
	assert.True(t, IsValidationError(err))
}

func TestWithdrawalService_TenantScoped(t *testing.T) {
	f := newFixture(t)
	svc := NewWithdrawalService(f.client, f.audit)
	ctx := context.Background()

	w, err := svc.Create(ctx, f.tenant.ID, f.owner.ID, 5000, "KES")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, "other-tenant", w.ID, f.owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	rows, total, err := svc.List(ctx, f.tenant.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, rows, 1)
}
