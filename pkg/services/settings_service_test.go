package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/pkg/crypto"
	"github.com/sokochat/sokochat/pkg/payments"
)

func newSettingsService(t *testing.T, f *fixture) *SettingsService {
	t.Helper()
	codec, err := crypto.NewCodec(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	return NewSettingsService(f.client, codec, f.audit)
}

func TestSettingsService_TelephonyRoundTrip(t *testing.T) {
	f := newFixture(t)
	svc := newSettingsService(t, f)
	ctx := context.Background()

	err := svc.UpdateIntegration(ctx, f.tenant.ID, f.owner.ID, IntegrationTelephony, map[string]string{
		"account_sid":    "AC123",
		"auth_token":     "tok-secret",
		"from_number":    "+254711000000",
		"webhook_secret": "whsec",
	})
	require.NoError(t, err)

	creds, err := svc.TelephonyCredentials(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "AC123", creds.AccountSID)
	assert.Equal(t, "tok-secret", creds.AuthToken)
	assert.Equal(t, "+254711000000", creds.FromNumber)

	// Ciphertext at rest never contains the token.
	settings, err := svc.Get(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.NotContains(t, string(settings.TelephonyCredentials), "tok-secret")
}

func TestSettingsService_IntegrationsMasked(t *testing.T) {
	f := newFixture(t)
	svc := newSettingsService(t, f)
	ctx := context.Background()

	statuses, err := svc.Integrations(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.False(t, statuses[IntegrationTelephony].Configured)
	assert.False(t, statuses[IntegrationPayments].Configured)

	require.NoError(t, svc.UpdateIntegration(ctx, f.tenant.ID, f.owner.ID, IntegrationPayments, map[string]string{
		"api_key": "pay-secret-key",
	}))

	statuses, err = svc.Integrations(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.True(t, statuses[IntegrationPayments].Configured)
	assert.NotEmpty(t, statuses[IntegrationPayments].Masked)
	assert.NotContains(t, statuses[IntegrationPayments].Masked, "pay-secret-key")
}

func TestSettingsService_PaymentsUnconfigured(t *testing.T) {
	f := newFixture(t)
	svc := newSettingsService(t, f)

	_, err := svc.PaymentCredentials(context.Background(), f.tenant.ID)
	assert.ErrorIs(t, err, payments.ErrNotConfigured)
}

func TestSettingsService_ValidateIntegration(t *testing.T) {
	f := newFixture(t)
	svc := newSettingsService(t, f)
	ctx := context.Background()

	err := svc.UpdateIntegration(ctx, f.tenant.ID, f.owner.ID, IntegrationTelephony, map[string]string{
		"account_sid": "AC123",
	})
	assert.True(t, IsValidationError(err), "partial telephony payload rejected")

	err = svc.UpdateIntegration(ctx, f.tenant.ID, f.owner.ID, IntegrationLLM, map[string]string{
		"provider": "openai",
	})
	assert.True(t, IsValidationError(err), "llm payload needs api_key")

	err = svc.UpdateIntegration(ctx, f.tenant.ID, f.owner.ID, "fax", map[string]string{})
	assert.ErrorIs(t, err, ErrUnknownIntegration)
}

func TestSettingsService_Onboarding(t *testing.T) {
	f := newFixture(t)
	svc := newSettingsService(t, f)
	ctx := context.Background()

	steps, err := svc.Onboarding(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.Empty(t, steps)

	require.NoError(t, svc.SetOnboardingStep(ctx, f.tenant.ID, "connect_whatsapp", true))
	require.NoError(t, svc.SetOnboardingStep(ctx, f.tenant.ID, "add_catalog", false))

	steps, err = svc.Onboarding(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.True(t, steps["connect_whatsapp"])
	assert.False(t, steps["add_catalog"])
}
