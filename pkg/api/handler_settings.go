package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// updateIntegrationHandler handles PUT /v1/settings/integrations/:provider.
// Credentials are probed against the external provider before being stored
// encrypted; responses never echo them back.
func (s *Server) updateIntegrationHandler(c *echo.Context) error {
	var req integrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	provider := c.Param("provider")

	if s.prober != nil {
		if err := s.prober.Probe(ctx, provider, req); err != nil {
			return &APIError{
				Status:  http.StatusUnprocessableEntity,
				Code:    CodeCredentialValidationFailed,
				Message: "provider rejected the credentials",
				Details: map[string]interface{}{"provider": provider, "reason": err.Error()},
			}
		}
	}

	if err := s.settings.UpdateIntegration(ctx, tenantFrom(c).ID, userFrom(c).ID, provider, req); err != nil {
		return mapServiceError(err)
	}

	statuses, err := s.settings.Integrations(ctx, tenantFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, statuses)
}

// listIntegrationsHandler handles GET /v1/settings/integrations. Only masked
// values leave the service layer.
func (s *Server) listIntegrationsHandler(c *echo.Context) error {
	statuses, err := s.settings.Integrations(c.Request().Context(), tenantFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, statuses)
}

// onboardingHandler handles GET /v1/settings/onboarding.
func (s *Server) onboardingHandler(c *echo.Context) error {
	steps, err := s.settings.Onboarding(c.Request().Context(), tenantFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, steps)
}
