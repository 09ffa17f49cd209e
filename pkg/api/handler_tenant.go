package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/pkg/services"
)

// createTenantHandler handles POST /v1/tenants. The response carries the
// plaintext API key exactly once.
func (s *Server) createTenantHandler(c *echo.Context) error {
	var req createTenantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := s.tenants.CreateTenant(c.Request().Context(), services.CreateTenantInput{
		OwnerUserID: userFrom(c).ID,
		Name:        req.Name,
		Slug:        req.Slug,
		Timezone:    req.Timezone,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &TenantCreatedResponse{
		TenantID: result.Tenant.ID,
		Name:     result.Tenant.Name,
		Slug:     result.Tenant.Slug,
		Status:   string(result.Tenant.Status),
		APIKey:   result.PlaintextAPIKey,
	})
}

// listTenantsHandler handles GET /v1/tenants: the caller's own memberships.
func (s *Server) listTenantsHandler(c *echo.Context) error {
	tenants, err := s.tenants.Memberships(c.Request().Context(), userFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &Page{Count: len(tenants), Results: tenants})
}

// platformListTenantsHandler handles GET /v1/platform/tenants.
func (s *Server) platformListTenantsHandler(c *echo.Context) error {
	page, pageSize := pageParams(c)
	tenants, total, err := s.tenants.ListAll(c.Request().Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPage(c, total, page, pageSize, tenants))
}

// platformSuspendTenantHandler handles POST /v1/platform/tenants/:id/suspend.
func (s *Server) platformSuspendTenantHandler(c *echo.Context) error {
	tn, err := s.tenants.Suspend(c.Request().Context(), c.Param("id"), userFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tn)
}

// platformActivateTenantHandler handles POST /v1/platform/tenants/:id/activate.
func (s *Server) platformActivateTenantHandler(c *echo.Context) error {
	tn, err := s.tenants.Activate(c.Request().Context(), c.Param("id"), userFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tn)
}
