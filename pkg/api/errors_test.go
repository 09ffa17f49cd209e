package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/sokochat/sokochat/pkg/dispatch"
	"github.com/sokochat/sokochat/pkg/llm"
	"github.com/sokochat/sokochat/pkg/payments"
	"github.com/sokochat/sokochat/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("customer x: %w", services.ErrNotFound), http.StatusNotFound, CodeNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict, CodeConflict},
		{"invalid transition", fmt.Errorf("%w: order is canceled", services.ErrInvalidTransition), http.StatusConflict, CodeConflict},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, CodeAuthenticationRequired},
		{"token invalid", services.ErrTokenInvalid, http.StatusUnauthorized, CodeInvalidToken},
		{"four eyes", services.ErrFourEyes, http.StatusConflict, CodeFourEyesViolation},
		{"tenant suspended", services.ErrTenantSuspended, http.StatusForbidden, CodeTenantAccessDenied},
		{"unknown integration", fmt.Errorf("%w: fax", services.ErrUnknownIntegration), http.StatusBadRequest, CodeValidationFailed},
		{"rate limited", fmt.Errorf("%w: 10 of 10 used", dispatch.ErrRateLimited), http.StatusTooManyRequests, CodeRateLimitExceeded},
		{"no consent", dispatch.ErrNoConsent, http.StatusForbidden, CodeConsentRequired},
		{"providers down", llm.ErrAllProvidersFailed, http.StatusServiceUnavailable, CodeProviderUnavailable},
		{"payments unconfigured", payments.ErrNotConfigured, http.StatusConflict, CodeConflict},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := mapServiceError(tt.err)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.code, apiErr.Code)
		})
	}
}

func TestMapServiceError_ValidationCarriesField(t *testing.T) {
	apiErr := mapServiceError(services.NewValidationError("slug", "must be lowercase"))

	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, CodeValidationFailed, apiErr.Code)
	assert.Equal(t, "must be lowercase", apiErr.Message)
	assert.Equal(t, "slug", apiErr.Details["field"])
}

func TestToAPIError_PassesThroughAndWrapsHTTPErrors(t *testing.T) {
	direct := newAPIError(http.StatusTeapot, CodeConflict, "odd")
	assert.Same(t, direct, toAPIError(direct))

	wrapped := toAPIError(echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	assert.Equal(t, http.StatusBadRequest, wrapped.Status)
	assert.Equal(t, CodeValidationFailed, wrapped.Code)
}
