package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	svc := NewCustomerService(f.client, f.audit)
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateCustomerInput{
		TenantID:    f.tenant.ID,
		PhoneE164:   " +254700000001 ",
		DisplayName: "Amina",
		Tags:        []string{"vip"},
		Language:    "sw",
	})
	require.NoError(t, err)
	assert.Equal(t, "+254700000001", c.PhoneE164)
	assert.True(t, c.TransactionalMessages, "transactional consent is always on")

	got, err := svc.Get(ctx, f.tenant.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amina", got.DisplayName)

	_, err = svc.Get(ctx, "other-tenant", c.ID)
	assert.ErrorIs(t, err, ErrNotFound, "lookups never cross tenants")
}

func TestCustomerService_PhoneValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewCustomerService(f.client, f.audit)
	ctx := context.Background()

	for _, phone := range []string{"", "0700000001", "+0700", "254700000001", "+2547abc"} {
		_, err := svc.Create(ctx, CreateCustomerInput{TenantID: f.tenant.ID, PhoneE164: phone})
		assert.True(t, IsValidationError(err), "phone %q", phone)
	}
}

func TestCustomerService_DuplicatePhone(t *testing.T) {
	f := newFixture(t)
	svc := NewCustomerService(f.client, f.audit)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCustomerInput{TenantID: f.tenant.ID, PhoneE164: "+254700000001"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateCustomerInput{TenantID: f.tenant.ID, PhoneE164: "+254700000001"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCustomerService_GetOrCreateByPhone(t *testing.T) {
	f := newFixture(t)
	svc := NewCustomerService(f.client, f.audit)
	ctx := context.Background()

	first, err := svc.GetOrCreateByPhone(ctx, f.tenant.ID, "+254700000002")
	require.NoError(t, err)
	second, err := svc.GetOrCreateByPhone(ctx, f.tenant.ID, "+254700000002")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := f.client.Customer.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCustomerService_UpdateConsent(t *testing.T) {
	f := newFixture(t)
	svc := NewCustomerService(f.client, f.audit)
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateCustomerInput{TenantID: f.tenant.ID, PhoneE164: "+254700000001"})
	require.NoError(t, err)

	yes := true
	updated, err := svc.UpdateConsent(ctx, f.tenant.ID, c.ID, f.owner.ID, ConsentUpdate{Promotional: &yes})
	require.NoError(t, err)
	assert.True(t, updated.PromotionalMessages)
	assert.Equal(t, c.ReminderMessages, updated.ReminderMessages, "unset fields untouched")
	assert.True(t, updated.TransactionalMessages)

	logs, _, err := f.audit.List(ctx, f.tenant.ID, 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, "customer.consent.update", logs[0].Action)
}

func TestCustomerService_List(t *testing.T) {
	f := newFixture(t)
	svc := NewCustomerService(f.client, f.audit)
	ctx := context.Background()

	for _, phone := range []string{"+254700000001", "+254700000002", "+254700000003"} {
		_, err := svc.Create(ctx, CreateCustomerInput{TenantID: f.tenant.ID, PhoneE164: phone})
		require.NoError(t, err)
	}

	rows, total, err := svc.List(ctx, f.tenant.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, rows, 2)

	rows, total, err = svc.List(ctx, "other-tenant", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)
}
