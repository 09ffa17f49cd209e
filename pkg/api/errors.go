package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/pkg/campaign"
	"github.com/sokochat/sokochat/pkg/dispatch"
	"github.com/sokochat/sokochat/pkg/llm"
	"github.com/sokochat/sokochat/pkg/payments"
	"github.com/sokochat/sokochat/pkg/services"
	"github.com/sokochat/sokochat/pkg/telephony"
)

// Stable error codes carried in every error response.
const (
	CodeAuthenticationRequired     = "AUTHENTICATION_REQUIRED"
	CodeInvalidToken               = "INVALID_TOKEN"
	CodeTenantContextRequired      = "TENANT_CONTEXT_REQUIRED"
	CodeTenantAccessDenied         = "TENANT_ACCESS_DENIED"
	CodeInsufficientPermissions    = "INSUFFICIENT_PERMISSIONS"
	CodeValidationFailed           = "VALIDATION_FAILED"
	CodeConsentRequired            = "CONSENT_REQUIRED"
	CodeRateLimitExceeded          = "RATE_LIMIT_EXCEEDED"
	CodeFourEyesViolation          = "FOUR_EYES_VIOLATION"
	CodeProviderUnavailable        = "PROVIDER_UNAVAILABLE"
	CodeCredentialValidationFailed = "CREDENTIAL_VALIDATION_FAILED"
	CodeNotFound                   = "NOT_FOUND"
	CodeConflict                   = "CONFLICT"
	CodeInternal                   = "INTERNAL"
)

// APIError is the error every handler and middleware returns. The envelope
// middleware converts it to the wire shape.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details map[string]interface{}

	// RetryAfter, when positive, is emitted as a Retry-After header.
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newAPIError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

// ErrorBody is the inner error object of the response envelope.
type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the envelope of every error response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// errorEnvelope converts handler errors into the structured error envelope.
// It is registered outermost so auth middleware failures get the same shape.
func errorEnvelope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			apiErr := toAPIError(err)
			if apiErr.RetryAfter > 0 {
				c.Response().Header().Set("Retry-After",
					strconv.Itoa(int(apiErr.RetryAfter/time.Second)))
			}
			return c.JSON(apiErr.Status, &ErrorResponse{Error: ErrorBody{
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			}})
		}
	}
}

// toAPIError normalizes any handler error into an APIError.
func toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code := CodeInternal
		switch httpErr.Code {
		case http.StatusBadRequest:
			code = CodeValidationFailed
		case http.StatusUnauthorized:
			code = CodeAuthenticationRequired
		case http.StatusForbidden:
			code = CodeInsufficientPermissions
		case http.StatusNotFound:
			code = CodeNotFound
		case http.StatusConflict:
			code = CodeConflict
		}
		return newAPIError(httpErr.Code, code, fmt.Sprint(httpErr.Message))
	}

	return mapServiceError(err)
}

// mapServiceError maps service-layer errors to API error responses.
func mapServiceError(err error) *APIError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		apiErr := newAPIError(http.StatusBadRequest, CodeValidationFailed, validErr.Message)
		apiErr.Details = map[string]interface{}{"field": validErr.Field}
		return apiErr
	}

	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, campaign.ErrCampaignNotFound):
		return newAPIError(http.StatusNotFound, CodeNotFound, "resource not found")
	case errors.Is(err, services.ErrAlreadyExists):
		return newAPIError(http.StatusConflict, CodeConflict, "resource already exists")
	case errors.Is(err, services.ErrInvalidTransition):
		return newAPIError(http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return newAPIError(http.StatusUnauthorized, CodeAuthenticationRequired, "invalid credentials")
	case errors.Is(err, services.ErrTokenInvalid):
		return newAPIError(http.StatusUnauthorized, CodeInvalidToken, "token invalid or expired")
	case errors.Is(err, services.ErrFourEyes):
		return newAPIError(http.StatusConflict, CodeFourEyesViolation, "approver must differ from initiator")
	case errors.Is(err, services.ErrTenantSuspended):
		return newAPIError(http.StatusForbidden, CodeTenantAccessDenied, "tenant is not active")
	case errors.Is(err, services.ErrUnknownIntegration):
		return newAPIError(http.StatusBadRequest, CodeValidationFailed, err.Error())
	case errors.Is(err, dispatch.ErrRateLimited):
		return newAPIError(http.StatusTooManyRequests, CodeRateLimitExceeded, "daily message limit exceeded")
	case errors.Is(err, dispatch.ErrNoConsent):
		return newAPIError(http.StatusForbidden, CodeConsentRequired, "customer has not opted in to this message type")
	case errors.Is(err, llm.ErrAllProvidersFailed):
		return newAPIError(http.StatusServiceUnavailable, CodeProviderUnavailable, "all providers unavailable")
	case errors.Is(err, payments.ErrNotConfigured),
		errors.Is(err, telephony.ErrNotConfigured):
		return newAPIError(http.StatusConflict, CodeConflict, "integration not configured")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return newAPIError(http.StatusInternalServerError, CodeInternal, "internal server error")
}
