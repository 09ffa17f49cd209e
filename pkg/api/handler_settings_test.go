package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/pkg/services"
)

type rejectingProber struct{ reason string }

func (p rejectingProber) Probe(context.Context, string, map[string]string) error {
	return errors.New(p.reason)
}

func TestUpdateIntegration_ProbeFailureRejected(t *testing.T) {
	ts := newTestServer(t)
	ts.prober = rejectingProber{reason: "authentication failed"}

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPut, "/v1/settings/integrations/telephony", map[string]string{
		"account_sid": "ACbogus",
		"auth_token":  "bogus",
		"from_number": "+254700000000",
	})))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp ErrorResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, CodeCredentialValidationFailed, resp.Error.Code)
	assert.Equal(t, "telephony", resp.Error.Details["provider"])
	assert.Equal(t, "authentication failed", resp.Error.Details["reason"])

	// Nothing was stored.
	statuses, err := ts.settings.Integrations(context.Background(), ts.tenant.ID)
	require.NoError(t, err)
	assert.False(t, statuses[services.IntegrationPayments].Configured)
}

func TestUpdateIntegration_ReturnsMaskedStatuses(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPut, "/v1/settings/integrations/payments", map[string]string{
		"api_key":        "pk_live_secret_key",
		"webhook_secret": "whsec_secret",
	})))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var statuses map[string]services.IntegrationStatus
	decodeJSON(t, rec, &statuses)
	assert.True(t, statuses[services.IntegrationPayments].Configured)
	assert.True(t, statuses[services.IntegrationTelephony].Configured)
	assert.False(t, statuses[services.IntegrationCommerce].Configured)
	assert.NotContains(t, rec.Body.String(), "pk_live_secret_key")
	assert.NotContains(t, rec.Body.String(), "whsec_secret")
}

func TestUpdateIntegration_UnknownProvider(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPut, "/v1/settings/integrations/fax", map[string]string{
		"number": "12345",
	})))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidationFailed, errorCode(t, rec))
}

func TestUpdateIntegration_MissingRequiredFields(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPut, "/v1/settings/integrations/llm", map[string]string{
		"provider": "openai",
	})))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidationFailed, errorCode(t, rec))
}

func TestListIntegrations_NeverEchoesSecrets(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/settings/integrations", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	// Telephony was configured by the fixture; the auth token must not appear.
	var statuses map[string]services.IntegrationStatus
	decodeJSON(t, rec, &statuses)
	assert.True(t, statuses[services.IntegrationTelephony].Configured)
	assert.NotContains(t, rec.Body.String(), "twilio-auth-token")
}

func TestOnboarding(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.settings.SetOnboardingStep(context.Background(), ts.tenant.ID, "telephony_connected", true))

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/settings/onboarding", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var steps map[string]bool
	decodeJSON(t, rec, &steps)
	assert.True(t, steps["telephony_connected"])
}
