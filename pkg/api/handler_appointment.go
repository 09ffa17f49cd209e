package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/pkg/services"
)

// listAppointmentsHandler handles GET /v1/appointments.
func (s *Server) listAppointmentsHandler(c *echo.Context) error {
	page, pageSize := pageParams(c)
	rows, total, err := s.appointments.List(c.Request().Context(), tenantFrom(c).ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPage(c, total, page, pageSize, rows))
}

// createAppointmentHandler handles POST /v1/appointments. Booking also
// schedules the reminder messages.
func (s *Server) createAppointmentHandler(c *echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	appt, err := s.appointments.Create(c.Request().Context(), services.CreateAppointmentInput{
		TenantID:    tenantFrom(c).ID,
		CustomerID:  req.CustomerID,
		ServiceName: req.ServiceName,
		StartsAt:    req.StartsAt,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, appt)
}

// cancelAppointmentHandler handles POST /v1/appointments/:id/cancel.
func (s *Server) cancelAppointmentHandler(c *echo.Context) error {
	appt, err := s.appointments.Cancel(c.Request().Context(), tenantFrom(c).ID, c.Param("id"), userFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, appt)
}
