package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// withdrawHandler handles POST /v1/wallet/withdraw.
func (s *Server) withdrawHandler(c *echo.Context) error {
	var req withdrawRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	w, err := s.withdrawals.Create(c.Request().Context(), tenantFrom(c).ID, userFrom(c).ID, req.AmountCents, req.Currency)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, w)
}

// approveWithdrawalHandler handles POST /v1/wallet/withdrawals/:id/approve.
// The four-eyes check rejects the initiator.
func (s *Server) approveWithdrawalHandler(c *echo.Context) error {
	w, err := s.withdrawals.Approve(c.Request().Context(), tenantFrom(c).ID, c.Param("id"), userFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, w)
}

// listWithdrawalsHandler handles GET /v1/wallet/withdrawals.
func (s *Server) listWithdrawalsHandler(c *echo.Context) error {
	page, pageSize := pageParams(c)
	rows, total, err := s.withdrawals.List(c.Request().Context(), tenantFrom(c).ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPage(c, total, page, pageSize, rows))
}
