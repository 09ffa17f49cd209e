package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/role"
	"github.com/sokochat/sokochat/ent/tenantuser"
	"github.com/sokochat/sokochat/ent/userpermission"
)

// scopeCacheTTL bounds how stale a cached scope set may be. RBAC mutations
// invalidate eagerly; the TTL covers mutations made by other replicas.
const scopeCacheTTL = 5 * time.Minute

// ScopeService resolves and caches per-user scope sets:
// union(role permissions) minus per-user denies plus per-user grants.
type ScopeService struct {
	client *ent.Client
	cache  redis.UniversalClient
}

// NewScopeService creates a ScopeService. cache may be nil, in which case
// every resolution hits the database.
func NewScopeService(client *ent.Client, cache redis.UniversalClient) *ScopeService {
	return &ScopeService{client: client, cache: cache}
}

func scopeCacheKey(tenantID, userID string) string {
	return "scopes:" + tenantID + ":" + userID
}

// Resolve returns the user's scope set within the tenant, sorted. A user
// without an accepted membership gets ErrNotFound.
func (s *ScopeService) Resolve(ctx context.Context, tenantID, userID string) ([]string, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, scopeCacheKey(tenantID, userID)).Result()
		if err == nil {
			var scopes []string
			if json.Unmarshal([]byte(raw), &scopes) == nil {
				return scopes, nil
			}
		} else if err != redis.Nil {
			slog.Warn("scope cache read failed, resolving from database", "error", err)
		}
	}

	scopes, err := s.resolve(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(scopes); err == nil {
			if err := s.cache.Set(ctx, scopeCacheKey(tenantID, userID), raw, scopeCacheTTL).Err(); err != nil {
				slog.Warn("scope cache write failed", "error", err)
			}
		}
	}
	return scopes, nil
}

func (s *ScopeService) resolve(ctx context.Context, tenantID, userID string) ([]string, error) {
	membership, err := s.client.TenantUser.Query().
		Where(
			tenantuser.TenantID(tenantID),
			tenantuser.UserID(userID),
			tenantuser.InvitationStatusEQ(tenantuser.InvitationStatusAccepted),
		).
		WithRoles(func(q *ent.RoleQuery) {
			q.WithPermissions()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("membership (%s, %s): %w", tenantID, userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}

	granted := make(map[string]bool)
	for _, r := range membership.Edges.Roles {
		for _, p := range r.Edges.Permissions {
			granted[p.Code] = true
		}
	}

	overrides, err := s.client.UserPermission.Query().
		Where(
			userpermission.TenantID(tenantID),
			userpermission.UserID(userID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load permission overrides: %w", err)
	}
	// Apply grants first so a deny on the same code always wins.
	for _, o := range overrides {
		if o.Granted {
			granted[o.PermissionCode] = true
		}
	}
	for _, o := range overrides {
		if !o.Granted {
			delete(granted, o.PermissionCode)
		}
	}

	scopes := make([]string, 0, len(granted))
	for code := range granted {
		scopes = append(scopes, code)
	}
	sort.Strings(scopes)
	return scopes, nil
}

// Invalidate drops the cached scope set for one membership.
func (s *ScopeService) Invalidate(ctx context.Context, tenantID, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, scopeCacheKey(tenantID, userID)).Err(); err != nil {
		slog.Warn("scope cache invalidation failed",
			"tenant_id", tenantID, "user_id", userID, "error", err)
	}
}

// AssignRole adds a role to the user's membership and invalidates the cache.
func (s *ScopeService) AssignRole(ctx context.Context, tenantID, userID, roleID string) error {
	r, err := s.client.Role.Query().
		Where(role.ID(roleID), role.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("role %s: %w", roleID, ErrNotFound)
		}
		return fmt.Errorf("failed to load role: %w", err)
	}

	membership, err := s.membership(ctx, tenantID, userID)
	if err != nil {
		return err
	}
	if err := membership.Update().AddRoles(r).Exec(ctx); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}
	s.Invalidate(ctx, tenantID, userID)
	return nil
}

// RemoveRole detaches a role from the user's membership.
func (s *ScopeService) RemoveRole(ctx context.Context, tenantID, userID, roleID string) error {
	membership, err := s.membership(ctx, tenantID, userID)
	if err != nil {
		return err
	}
	if err := membership.Update().RemoveRoleIDs(roleID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove role: %w", err)
	}
	s.Invalidate(ctx, tenantID, userID)
	return nil
}

// SetOverride upserts a per-user permission override. granted=false denies
// the code regardless of role grants.
func (s *ScopeService) SetOverride(ctx context.Context, tenantID, userID, code string, granted bool) error {
	existing, err := s.client.UserPermission.Query().
		Where(
			userpermission.TenantID(tenantID),
			userpermission.UserID(userID),
			userpermission.PermissionCode(code),
		).
		Only(ctx)
	switch {
	case err == nil:
		if err := existing.Update().SetGranted(granted).Exec(ctx); err != nil {
			return fmt.Errorf("failed to update permission override: %w", err)
		}
	case ent.IsNotFound(err):
		if err := s.client.UserPermission.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetUserID(userID).
			SetPermissionCode(code).
			SetGranted(granted).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create permission override: %w", err)
		}
	default:
		return fmt.Errorf("failed to load permission override: %w", err)
	}

	s.Invalidate(ctx, tenantID, userID)
	return nil
}

// ClearOverride removes a per-user override, restoring role-derived access.
func (s *ScopeService) ClearOverride(ctx context.Context, tenantID, userID, code string) error {
	if _, err := s.client.UserPermission.Delete().
		Where(
			userpermission.TenantID(tenantID),
			userpermission.UserID(userID),
			userpermission.PermissionCode(code),
		).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear permission override: %w", err)
	}
	s.Invalidate(ctx, tenantID, userID)
	return nil
}

// TouchMembership stamps last_seen_at best-effort.
func (s *ScopeService) TouchMembership(ctx context.Context, tenantID, userID string) {
	if _, err := s.client.TenantUser.Update().
		Where(
			tenantuser.TenantID(tenantID),
			tenantuser.UserID(userID),
		).
		SetLastSeenAt(time.Now()).
		Save(ctx); err != nil {
		slog.Warn("failed to stamp membership last_seen_at",
			"tenant_id", tenantID, "user_id", userID, "error", err)
	}
}

func (s *ScopeService) membership(ctx context.Context, tenantID, userID string) (*ent.TenantUser, error) {
	membership, err := s.client.TenantUser.Query().
		Where(
			tenantuser.TenantID(tenantID),
			tenantuser.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("membership (%s, %s): %w", tenantID, userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	return membership, nil
}

// HasAll reports whether the resolved scope set covers every required code.
func HasAll(scopes, required []string) bool {
	have := make(map[string]bool, len(scopes))
	for _, s := range scopes {
		have[s] = true
	}
	for _, r := range required {
		if !have[r] {
			return false
		}
	}
	return true
}
