package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_CRUD(t *testing.T) {
	f := newFixture(t)
	svc := NewTemplateService(f.client)
	ctx := context.Background()

	tpl, err := svc.Create(ctx, f.tenant.ID, "greeting", "Habari {{name}}!")
	require.NoError(t, err)

	_, err = svc.Create(ctx, f.tenant.ID, "greeting", "duplicate")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	updated, err := svc.Update(ctx, f.tenant.ID, tpl.ID, "Karibu {{name}}!")
	require.NoError(t, err)
	assert.Equal(t, "Karibu {{name}}!", updated.Content)

	rows, total, err := svc.List(ctx, f.tenant.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)

	require.NoError(t, svc.Delete(ctx, f.tenant.ID, tpl.ID))
	_, err = svc.Get(ctx, f.tenant.ID, tpl.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The unique index covers soft-deleted rows, so the name stays taken.
	_, err = svc.Create(ctx, f.tenant.ID, "greeting", "new body")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestTemplateService_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewTemplateService(f.client)
	ctx := context.Background()

	_, err := svc.Create(ctx, f.tenant.ID, "  ", "body")
	assert.True(t, IsValidationError(err))
	_, err = svc.Create(ctx, f.tenant.ID, "name", "   ")
	assert.True(t, IsValidationError(err))
}

func TestTemplateService_TenantScoped(t *testing.T) {
	f := newFixture(t)
	svc := NewTemplateService(f.client)
	ctx := context.Background()

	tpl, err := svc.Create(ctx, f.tenant.ID, "greeting", "Habari!")
	require.NoError(t, err)

	_, err = svc.Get(ctx, "other-tenant", tpl.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	err = svc.Delete(ctx, "other-tenant", tpl.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplateService_RecordUsage(t *testing.T) {
	f := newFixture(t)
	svc := NewTemplateService(f.client)
	ctx := context.Background()

	tpl, err := svc.Create(ctx, f.tenant.ID, "greeting", "Habari!")
	require.NoError(t, err)

	svc.RecordUsage(ctx, f.tenant.ID, tpl.ID)
	svc.RecordUsage(ctx, f.tenant.ID, tpl.ID)

	got, err := svc.Get(ctx, f.tenant.ID, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.UsageCount)
}
