package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// registerHandler handles POST /v1/auth/register.
func (s *Server) registerHandler(c *echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	user, err := s.auth.Register(ctx, req.Email, req.Password)
	if err != nil {
		return mapServiceError(err)
	}
	token, err := s.auth.MintToken(user.ID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &TokenResponse{
		Token:  token,
		UserID: user.ID,
		Email:  user.Email,
	})
}

// loginHandler handles POST /v1/auth/login.
func (s *Server) loginHandler(c *echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, user, err := s.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &TokenResponse{
		Token:  token,
		UserID: user.ID,
		Email:  user.Email,
	})
}
