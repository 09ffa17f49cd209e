package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/auditlog"
)

// AuditService records sensitive writes. Recording is best-effort: an audit
// failure is logged and never aborts the operation being audited.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates an AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// AuditEntry is one audit record.
type AuditEntry struct {
	TenantID    string
	ActorUserID string
	Action      string
	TargetType  string
	TargetID    string
	Before      map[string]interface{}
	After       map[string]interface{}
	RequestID   string
	IP          string
	UserAgent   string
}

// RequestMeta is per-request metadata the HTTP layer attaches to the
// context so service-level audit entries carry it without plumbing.
type RequestMeta struct {
	RequestID string
	IP        string
	UserAgent string
}

type requestMetaKey struct{}

// WithRequestMeta attaches request metadata to the context.
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// Record writes the entry. Nil receiver is tolerated so services can run
// without auditing in tests. Empty request fields are filled from the
// context's request metadata when present.
func (s *AuditService) Record(ctx context.Context, entry AuditEntry) {
	if s == nil {
		return
	}
	if meta, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		if entry.RequestID == "" {
			entry.RequestID = meta.RequestID
		}
		if entry.IP == "" {
			entry.IP = meta.IP
		}
		if entry.UserAgent == "" {
			entry.UserAgent = meta.UserAgent
		}
	}
	create := s.client.AuditLog.Create().
		SetID(uuid.New().String()).
		SetTenantID(entry.TenantID).
		SetActorUserID(entry.ActorUserID).
		SetAction(entry.Action).
		SetTargetType(entry.TargetType).
		SetTargetID(entry.TargetID).
		SetRequestID(entry.RequestID).
		SetIP(entry.IP).
		SetUserAgent(entry.UserAgent)
	if entry.Before != nil {
		create.SetBefore(entry.Before)
	}
	if entry.After != nil {
		create.SetAfter(entry.After)
	}
	if err := create.Exec(ctx); err != nil {
		slog.Error("failed to write audit log",
			"tenant_id", entry.TenantID,
			"action", entry.Action,
			"error", err)
	}
}

// List returns a tenant's audit trail, newest first.
func (s *AuditService) List(ctx context.Context, tenantID string, limit, offset int) ([]*ent.AuditLog, int, error) {
	q := s.client.AuditLog.Query().Where(auditlog.TenantID(tenantID))
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}
	rows, err := q.
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return rows, total, nil
}
