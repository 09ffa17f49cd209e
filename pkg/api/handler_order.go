package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/ent/order"
)

// listOrdersHandler handles GET /v1/orders with an optional status filter.
func (s *Server) listOrdersHandler(c *echo.Context) error {
	page, pageSize := pageParams(c)

	var status order.Status
	if v := c.QueryParam("status"); v != "" {
		status = order.Status(v)
		if err := order.StatusValidator(status); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
	}

	rows, total, err := s.orders.List(c.Request().Context(), tenantFrom(c).ID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPage(c, total, page, pageSize, rows))
}

// markOrderPaidHandler handles POST /v1/orders/:id/paid.
func (s *Server) markOrderPaidHandler(c *echo.Context) error {
	o, err := s.orders.MarkPaid(c.Request().Context(), tenantFrom(c).ID, c.Param("id"), userFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, o)
}

// markOrderFulfilledHandler handles POST /v1/orders/:id/fulfill.
func (s *Server) markOrderFulfilledHandler(c *echo.Context) error {
	o, err := s.orders.MarkFulfilled(c.Request().Context(), tenantFrom(c).ID, c.Param("id"), userFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, o)
}

// cancelOrderHandler handles POST /v1/orders/:id/cancel.
func (s *Server) cancelOrderHandler(c *echo.Context) error {
	o, err := s.orders.Cancel(c.Request().Context(), tenantFrom(c).ID, c.Param("id"), userFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, o)
}
