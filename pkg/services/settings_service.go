package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/ent/tenantsettings"
	"github.com/sokochat/sokochat/pkg/crypto"
	"github.com/sokochat/sokochat/pkg/payments"
	"github.com/sokochat/sokochat/pkg/telephony"
)

// Integration providers accepted by UpdateIntegration.
const (
	IntegrationTelephony = "telephony"
	IntegrationCommerce  = "commerce"
	IntegrationLLM       = "llm"
	IntegrationPayments  = "payments"
)

// CommerceCredentials connects a tenant's external store.
type CommerceCredentials struct {
	StoreURL string `json:"store_url"`
	APIKey   string `json:"api_key"`
}

// LLMCredentials is a tenant-supplied model API key overriding the platform
// default.
type LLMCredentials struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
}

// SettingsService manages per-tenant settings. Credential payloads are
// stored as AES-GCM blobs and only ever returned masked; decryption happens
// at the point of use (dispatch, checkout).
type SettingsService struct {
	client *ent.Client
	codec  crypto.Codec
	audit  *AuditService
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(client *ent.Client, codec crypto.Codec, audit *AuditService) *SettingsService {
	return &SettingsService{client: client, codec: codec, audit: audit}
}

// Get loads the tenant's settings row, creating it when missing.
func (s *SettingsService) Get(ctx context.Context, tenantID string) (*ent.TenantSettings, error) {
	settings, err := s.client.TenantSettings.Query().
		Where(tenantsettings.TenantID(tenantID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		settings, err = s.client.TenantSettings.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant settings: %w", err)
	}
	return settings, nil
}

// UpdateIntegration validates and stores encrypted credentials for one
// provider. The payload shape depends on the provider.
func (s *SettingsService) UpdateIntegration(ctx context.Context, tenantID, actorUserID, provider string, payload map[string]string) error {
	plaintext, err := validateIntegration(provider, payload)
	if err != nil {
		return err
	}

	blob, err := s.codec.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s credentials: %w", provider, err)
	}

	settings, err := s.Get(ctx, tenantID)
	if err != nil {
		return err
	}

	update := settings.Update()
	switch provider {
	case IntegrationTelephony:
		update.SetTelephonyCredentials(blob)
	case IntegrationCommerce:
		update.SetCommerceCredentials(blob)
	case IntegrationLLM:
		update.SetLlmCredentials(blob)
	case IntegrationPayments:
		update.SetPaymentCredentials(blob)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store %s credentials: %w", provider, err)
	}

	s.audit.Record(ctx, AuditEntry{
		TenantID:    tenantID,
		ActorUserID: actorUserID,
		Action:      "settings.integrations.update",
		TargetType:  "tenant_settings",
		TargetID:    settings.ID,
		After:       map[string]interface{}{"provider": provider},
	})
	return nil
}

// validateIntegration checks the payload carries the provider's required
// fields and returns the canonical JSON to encrypt.
func validateIntegration(provider string, payload map[string]string) ([]byte, error) {
	switch provider {
	case IntegrationTelephony:
		creds := telephony.Credentials{
			AccountSID:    payload["account_sid"],
			AuthToken:     payload["auth_token"],
			FromNumber:    payload["from_number"],
			WebhookSecret: payload["webhook_secret"],
		}
		if creds.AccountSID == "" || creds.AuthToken == "" || creds.FromNumber == "" {
			return nil, NewValidationError(provider, "account_sid, auth_token, and from_number are required")
		}
		return json.Marshal(creds)
	case IntegrationCommerce:
		creds := CommerceCredentials{StoreURL: payload["store_url"], APIKey: payload["api_key"]}
		if creds.StoreURL == "" {
			return nil, NewValidationError(provider, "store_url is required")
		}
		return json.Marshal(creds)
	case IntegrationLLM:
		creds := LLMCredentials{Provider: payload["provider"], APIKey: payload["api_key"]}
		if creds.Provider == "" || creds.APIKey == "" {
			return nil, NewValidationError(provider, "provider and api_key are required")
		}
		return json.Marshal(creds)
	case IntegrationPayments:
		creds := payments.Credentials{APIKey: payload["api_key"], WebhookSecret: payload["webhook_secret"]}
		if creds.APIKey == "" {
			return nil, NewValidationError(provider, "api_key is required")
		}
		return json.Marshal(creds)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownIntegration, provider)
	}
}

// IntegrationStatus is the masked view of one integration.
type IntegrationStatus struct {
	Configured bool   `json:"configured"`
	Masked     string `json:"masked,omitempty"`
}

// Integrations returns the masked status of all integrations. Ciphertext is
// never decrypted for display.
func (s *SettingsService) Integrations(ctx context.Context, tenantID string) (map[string]IntegrationStatus, error) {
	settings, err := s.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return map[string]IntegrationStatus{
		IntegrationTelephony: maskedStatus(settings.TelephonyCredentials),
		IntegrationCommerce:  maskedStatus(settings.CommerceCredentials),
		IntegrationLLM:       maskedStatus(settings.LlmCredentials),
		IntegrationPayments:  maskedStatus(settings.PaymentCredentials),
	}, nil
}

func maskedStatus(blob []byte) IntegrationStatus {
	return IntegrationStatus{
		Configured: len(blob) > 0,
		Masked:     crypto.MaskStored(blob),
	}
}

// TelephonyCredentials decrypts the tenant's telephony credentials. Implements
// the dispatcher's credentials provider.
func (s *SettingsService) TelephonyCredentials(ctx context.Context, tenantID string) (telephony.Credentials, error) {
	var creds telephony.Credentials
	settings, err := s.Get(ctx, tenantID)
	if err != nil {
		return creds, err
	}
	if len(settings.TelephonyCredentials) == 0 {
		return creds, fmt.Errorf("tenant %s: telephony %w", tenantID, ErrNotFound)
	}
	plaintext, err := s.codec.Decrypt(settings.TelephonyCredentials)
	if err != nil {
		return creds, fmt.Errorf("failed to decrypt telephony credentials: %w", err)
	}
	if err := json.Unmarshal(plaintext, &creds); err != nil {
		return creds, fmt.Errorf("failed to parse telephony credentials: %w", err)
	}
	return creds, nil
}

// PaymentCredentials decrypts the tenant's payment credentials. Implements
// the agent's payment credential source; unconfigured tenants get
// payments.ErrNotConfigured so checkout degrades to a handoff.
func (s *SettingsService) PaymentCredentials(ctx context.Context, tenantID string) (payments.Credentials, error) {
	var creds payments.Credentials
	settings, err := s.Get(ctx, tenantID)
	if err != nil {
		return creds, err
	}
	if len(settings.PaymentCredentials) == 0 {
		return creds, payments.ErrNotConfigured
	}
	plaintext, err := s.codec.Decrypt(settings.PaymentCredentials)
	if err != nil {
		return creds, fmt.Errorf("failed to decrypt payment credentials: %w", err)
	}
	if err := json.Unmarshal(plaintext, &creds); err != nil {
		return creds, fmt.Errorf("failed to parse payment credentials: %w", err)
	}
	return creds, nil
}

// SetOnboardingStep marks one onboarding step done or not done.
func (s *SettingsService) SetOnboardingStep(ctx context.Context, tenantID, step string, done bool) error {
	settings, err := s.Get(ctx, tenantID)
	if err != nil {
		return err
	}
	steps := settings.OnboardingSteps
	if steps == nil {
		steps = make(map[string]bool)
	}
	steps[step] = done
	if err := settings.Update().SetOnboardingSteps(steps).Exec(ctx); err != nil {
		return fmt.Errorf("failed to update onboarding steps: %w", err)
	}
	return nil
}

// Onboarding reports step completion for the setup checklist.
func (s *SettingsService) Onboarding(ctx context.Context, tenantID string) (map[string]bool, error) {
	settings, err := s.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if settings.OnboardingSteps == nil {
		return map[string]bool{}, nil
	}
	return settings.OnboardingSteps, nil
}

// UpdateBranding replaces the tenant's conversational persona settings.
func (s *SettingsService) UpdateBranding(ctx context.Context, tenantID string, branding schema.Branding) error {
	settings, err := s.Get(ctx, tenantID)
	if err != nil {
		return err
	}
	if err := settings.Update().SetBranding(&branding).Exec(ctx); err != nil {
		return fmt.Errorf("failed to update branding: %w", err)
	}
	return nil
}
