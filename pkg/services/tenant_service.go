package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/permission"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/ent/tenant"
	"github.com/sokochat/sokochat/ent/tenantuser"
	"github.com/sokochat/sokochat/pkg/config"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// TenantService manages tenant lifecycle, membership, and API keys.
type TenantService struct {
	client *ent.Client
	cfg    *config.Config
	audit  *AuditService
}

// NewTenantService creates a TenantService.
func NewTenantService(client *ent.Client, cfg *config.Config, audit *AuditService) *TenantService {
	return &TenantService{client: client, cfg: cfg, audit: audit}
}

// CreateTenantInput is the self-service tenant signup.
type CreateTenantInput struct {
	OwnerUserID string
	Name        string
	Slug        string
	Timezone    string
}

// CreateTenantResult carries the created rows plus the one-time plaintext
// API key.
type CreateTenantResult struct {
	Tenant          *ent.Tenant
	PlaintextAPIKey string
}

// CreateTenant creates the tenant bundle in one transaction: the tenant row,
// its settings, the six seed roles with their grants, the owner membership,
// and one API key. The plaintext key is returned here and never again.
func (s *TenantService) CreateTenant(ctx context.Context, in CreateTenantInput) (*CreateTenantResult, error) {
	if in.OwnerUserID == "" {
		return nil, NewValidationError("owner_user_id", "required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, NewValidationError("name", "required")
	}
	if !slugRe.MatchString(in.Slug) {
		return nil, NewValidationError("slug", "must be lowercase letters, digits, and hyphens")
	}

	plaintext, keyEntry, err := newAPIKey("default")
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ensurePermissionCatalog(ctx, tx); err != nil {
		return nil, err
	}

	tenantID := uuid.New().String()
	create := tx.Tenant.Create().
		SetID(tenantID).
		SetName(strings.TrimSpace(in.Name)).
		SetSlug(in.Slug).
		SetSubscriptionTier(s.defaultTier()).
		SetTrialEndsAt(time.Now().AddDate(0, 0, 14)).
		SetAPIKeys([]schema.APIKey{keyEntry})
	if in.Timezone != "" {
		create.SetTimezone(in.Timezone)
	}
	tn, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("slug %s: %w", in.Slug, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	if _, err := tx.TenantSettings.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create tenant settings: %w", err)
	}

	ownerRoleID := ""
	for name, codes := range seedRoleGrants() {
		perms, err := tx.Permission.Query().
			Where(permission.CodeIn(codes...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load permissions for role %s: %w", name, err)
		}
		role, err := tx.Role.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetName(name).
			SetIsSystem(true).
			AddPermissions(perms...).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create role %s: %w", name, err)
		}
		if name == RoleOwner {
			ownerRoleID = role.ID
		}
	}

	if _, err := tx.TenantUser.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetUserID(in.OwnerUserID).
		SetInvitationStatus(tenantuser.InvitationStatusAccepted).
		AddRoleIDs(ownerRoleID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tenant creation: %w", err)
	}

	slog.Info("tenant created", "tenant_id", tenantID, "slug", in.Slug, "owner_user_id", in.OwnerUserID)
	return &CreateTenantResult{Tenant: tn, PlaintextAPIKey: plaintext}, nil
}

func (s *TenantService) defaultTier() string {
	if s.cfg != nil && s.cfg.Defaults != nil && s.cfg.Defaults.Tier != "" {
		return s.cfg.Defaults.Tier
	}
	return "starter"
}

// ensurePermissionCatalog creates any missing catalog rows. Idempotent; the
// catalog is global and shared across tenants.
func ensurePermissionCatalog(ctx context.Context, tx *ent.Tx) error {
	existing, err := tx.Permission.Query().Select(permission.FieldCode).Strings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load permission catalog: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, code := range existing {
		have[code] = true
	}
	for _, code := range AllScopes {
		if have[code] {
			continue
		}
		if err := tx.Permission.Create().
			SetID(uuid.New().String()).
			SetCode(code).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed permission %s: %w", code, err)
		}
	}
	return nil
}

// Memberships lists the tenants a user belongs to with accepted status.
func (s *TenantService) Memberships(ctx context.Context, userID string) ([]*ent.Tenant, error) {
	tenants, err := s.client.Tenant.Query().
		Where(
			tenant.DeletedAtIsNil(),
			tenant.HasMembershipsWith(
				tenantuser.UserID(userID),
				tenantuser.InvitationStatusEQ(tenantuser.InvitationStatusAccepted),
			),
		).
		Order(ent.Asc(tenant.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return tenants, nil
}

// ListAll lists tenants for platform operators, newest first.
func (s *TenantService) ListAll(ctx context.Context, limit, offset int) ([]*ent.Tenant, int, error) {
	q := s.client.Tenant.Query().Where(tenant.DeletedAtIsNil())
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}
	rows, err := q.
		Order(ent.Desc(tenant.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}
	return rows, total, nil
}

// Suspend transitions an active or trial tenant to suspended.
func (s *TenantService) Suspend(ctx context.Context, tenantID, actorUserID string) (*ent.Tenant, error) {
	return s.transition(ctx, tenantID, actorUserID, tenant.StatusSuspended,
		tenant.StatusActive, tenant.StatusTrial)
}

// Activate transitions a trial, trial-expired, or suspended tenant to active.
func (s *TenantService) Activate(ctx context.Context, tenantID, actorUserID string) (*ent.Tenant, error) {
	return s.transition(ctx, tenantID, actorUserID, tenant.StatusActive,
		tenant.StatusTrial, tenant.StatusTrialExpired, tenant.StatusSuspended)
}

// Cancel is allowed from any status.
func (s *TenantService) Cancel(ctx context.Context, tenantID, actorUserID string) (*ent.Tenant, error) {
	return s.transition(ctx, tenantID, actorUserID, tenant.StatusCanceled,
		tenant.StatusTrial, tenant.StatusActive, tenant.StatusTrialExpired,
		tenant.StatusSuspended, tenant.StatusCanceled)
}

func (s *TenantService) transition(ctx context.Context, tenantID, actorUserID string, to tenant.Status, from ...tenant.Status) (*ent.Tenant, error) {
	tn, err := s.client.Tenant.Get(ctx, tenantID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("tenant %s: %w", tenantID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	allowed := false
	for _, f := range from {
		if tn.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, tn.Status, to)
	}

	updated, err := tn.Update().SetStatus(to).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update tenant status: %w", err)
	}

	s.audit.Record(ctx, AuditEntry{
		TenantID:    tenantID,
		ActorUserID: actorUserID,
		Action:      "tenant." + string(to),
		TargetType:  "tenant",
		TargetID:    tenantID,
		Before:      map[string]interface{}{"status": string(tn.Status)},
		After:       map[string]interface{}{"status": string(to)},
	})
	return updated, nil
}

// CreateAPIKey appends a new key to the tenant. The plaintext is returned
// exactly once.
func (s *TenantService) CreateAPIKey(ctx context.Context, tenantID, name string) (string, error) {
	plaintext, entry, err := newAPIKey(name)
	if err != nil {
		return "", err
	}

	tn, err := s.client.Tenant.Get(ctx, tenantID)
	if err != nil {
		return "", fmt.Errorf("failed to load tenant: %w", err)
	}
	if err := tn.Update().
		SetAPIKeys(append(tn.APIKeys, entry)).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store api key: %w", err)
	}
	return plaintext, nil
}

// VerifyAPIKey checks the presented plaintext key against the tenant's
// stored hashes in constant time per entry. A match updates last_used_at
// best-effort.
func (s *TenantService) VerifyAPIKey(ctx context.Context, tn *ent.Tenant, plaintext string) bool {
	presented := HashAPIKey(plaintext)
	matched := -1
	for i, entry := range tn.APIKeys {
		if subtle.ConstantTimeCompare([]byte(entry.KeyHash), []byte(presented)) == 1 {
			matched = i
		}
	}
	if matched < 0 {
		return false
	}

	now := time.Now()
	keys := make([]schema.APIKey, len(tn.APIKeys))
	copy(keys, tn.APIKeys)
	keys[matched].LastUsedAt = &now
	if err := tn.Update().SetAPIKeys(keys).Exec(ctx); err != nil {
		slog.Warn("failed to stamp api key usage", "tenant_id", tn.ID, "error", err)
	}
	return true
}

// HashAPIKey is the at-rest form of a tenant API key.
func HashAPIKey(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func newAPIKey(name string) (plaintext string, entry schema.APIKey, err error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", schema.APIKey{}, fmt.Errorf("failed to generate api key: %w", err)
	}
	plaintext = "sk_" + hex.EncodeToString(raw)
	return plaintext, schema.APIKey{
		KeyHash:   HashAPIKey(plaintext),
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}
