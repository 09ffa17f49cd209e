package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listTemplatesHandler handles GET /v1/templates.
func (s *Server) listTemplatesHandler(c *echo.Context) error {
	page, pageSize := pageParams(c)
	rows, total, err := s.templates.List(c.Request().Context(), tenantFrom(c).ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPage(c, total, page, pageSize, rows))
}

// createTemplateHandler handles POST /v1/templates.
func (s *Server) createTemplateHandler(c *echo.Context) error {
	var req templateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tpl, err := s.templates.Create(c.Request().Context(), tenantFrom(c).ID, req.Name, req.Content)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, tpl)
}
