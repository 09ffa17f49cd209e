package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_RecordAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.audit.Record(ctx, AuditEntry{
		TenantID:    f.tenant.ID,
		ActorUserID: f.owner.ID,
		Action:      "catalog.product.create",
		TargetType:  "product",
		TargetID:    "p-1",
		After:       map[string]interface{}{"name": "Kitenge Dress"},
		RequestID:   "req-1",
		IP:          "203.0.113.7",
	})

	logs, total, err := f.audit.List(ctx, f.tenant.ID, 10, 0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, total, 1)
	assert.Equal(t, "catalog.product.create", logs[0].Action)
	assert.Equal(t, "Kitenge Dress", logs[0].After["name"])
}

func TestAuditService_NilReceiverIsNoOp(t *testing.T) {
	var svc *AuditService
	svc.Record(context.Background(), AuditEntry{Action: "noop"})
}
