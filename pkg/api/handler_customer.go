package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/pkg/services"
)

// listCustomersHandler handles GET /v1/customers.
func (s *Server) listCustomersHandler(c *echo.Context) error {
	page, pageSize := pageParams(c)
	rows, total, err := s.customers.List(c.Request().Context(), tenantFrom(c).ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPage(c, total, page, pageSize, rows))
}

// createCustomerHandler handles POST /v1/customers.
func (s *Server) createCustomerHandler(c *echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cust, err := s.customers.Create(c.Request().Context(), services.CreateCustomerInput{
		TenantID:    tenantFrom(c).ID,
		PhoneE164:   req.PhoneE164,
		DisplayName: req.DisplayName,
		Language:    req.Language,
		Timezone:    req.Timezone,
		Tags:        req.Tags,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, cust)
}

// updateConsentHandler handles PATCH /v1/customers/:id/consent.
// Transactional consent is fixed and not updatable here.
func (s *Server) updateConsentHandler(c *echo.Context) error {
	var req consentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cust, err := s.customers.UpdateConsent(c.Request().Context(), tenantFrom(c).ID, c.Param("id"), userFrom(c).ID, services.ConsentUpdate{
		Promotional: req.Promotional,
		Reminder:    req.Reminder,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, cust)
}
