package api

import (
	"errors"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/tenant"
	"github.com/sokochat/sokochat/pkg/services"
)

// Tenant-context request headers.
const (
	tenantIDHeader  = "X-Tenant-ID"
	tenantKeyHeader = "X-Tenant-API-Key"
)

// Context store keys.
const (
	ctxRequestID = "request_id"
	ctxUser      = "auth_user"
	ctxTenant    = "auth_tenant"
	ctxScopes    = "auth_scopes"
)

// requestIDFrom returns the request id set by the requestID middleware.
func requestIDFrom(c *echo.Context) string {
	if id, ok := c.Get(ctxRequestID).(string); ok {
		return id
	}
	return ""
}

// userFrom returns the authenticated user, or nil on unauthenticated routes.
func userFrom(c *echo.Context) *ent.User {
	if u, ok := c.Get(ctxUser).(*ent.User); ok {
		return u
	}
	return nil
}

// tenantFrom returns the resolved tenant on tenant-scoped routes.
func tenantFrom(c *echo.Context) *ent.Tenant {
	if t, ok := c.Get(ctxTenant).(*ent.Tenant); ok {
		return t
	}
	return nil
}

// scopesFrom returns the caller's resolved scopes on tenant-scoped routes.
func scopesFrom(c *echo.Context) []string {
	if s, ok := c.Get(ctxScopes).([]string); ok {
		return s
	}
	return nil
}

// authenticate resolves the bearer token into a user. Every route behind it
// sees a non-nil userFrom.
func (s *Server) authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return newAPIError(http.StatusUnauthorized, CodeAuthenticationRequired, "authorization header required")
			}
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return newAPIError(http.StatusUnauthorized, CodeInvalidToken, "authorization header must be a bearer token")
			}

			user, err := s.auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return mapServiceError(err)
			}
			c.Set(ctxUser, user)
			return next(c)
		}
	}
}

// requireSuperuser guards platform-operator routes. The flag is read from the
// user row, not the token, so revocation takes effect immediately.
func (s *Server) requireSuperuser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			user := userFrom(c)
			if user == nil || !user.IsSuperuser {
				return newAPIError(http.StatusForbidden, CodeInsufficientPermissions, "platform operator access required")
			}
			return next(c)
		}
	}
}

// requireTenant establishes tenant context from the X-Tenant-ID and
// X-Tenant-API-Key headers: verifies the key against the stored hashes,
// rejects inactive tenants, and resolves the caller's scopes within the
// tenant.
func (s *Server) requireTenant() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			tenantID := c.Request().Header.Get(tenantIDHeader)
			apiKey := c.Request().Header.Get(tenantKeyHeader)
			if tenantID == "" || apiKey == "" {
				return newAPIError(http.StatusBadRequest, CodeTenantContextRequired,
					"X-Tenant-ID and X-Tenant-API-Key headers are required")
			}

			ctx := c.Request().Context()
			tn, err := s.db.Tenant.Get(ctx, tenantID)
			if err != nil {
				if ent.IsNotFound(err) {
					return newAPIError(http.StatusForbidden, CodeTenantAccessDenied, "tenant access denied")
				}
				return mapServiceError(err)
			}
			if !s.tenants.VerifyAPIKey(ctx, tn, apiKey) {
				return newAPIError(http.StatusForbidden, CodeTenantAccessDenied, "tenant access denied")
			}
			if tn.Status == tenant.StatusSuspended || tn.Status == tenant.StatusCanceled {
				return newAPIError(http.StatusForbidden, CodeTenantAccessDenied, "tenant is not active")
			}

			user := userFrom(c)
			scopes, err := s.scopes.Resolve(ctx, tn.ID, user.ID)
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					return newAPIError(http.StatusForbidden, CodeTenantAccessDenied, "no membership in tenant")
				}
				return mapServiceError(err)
			}

			if origin := c.Request().Header.Get("Origin"); origin != "" {
				for _, o := range tn.AllowedOrigins {
					if o == origin {
						allowOrigin(c, origin)
						break
					}
				}
			}

			c.Set(ctxTenant, tn)
			c.Set(ctxScopes, scopes)
			return next(c)
		}
	}
}

// requireScopes rejects callers whose resolved scopes do not cover every
// required code.
func requireScopes(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if !services.HasAll(scopesFrom(c), required) {
				return &APIError{
					Status:  http.StatusForbidden,
					Code:    CodeInsufficientPermissions,
					Message: "missing required permissions",
					Details: map[string]interface{}{"required": required},
				}
			}
			return next(c)
		}
	}
}
