package config

import "time"

// SystemConfig holds resolved platform-wide infrastructure settings.
type SystemConfig struct {
	// PublicBaseURL is the externally reachable base URL, used to build
	// webhook callback URLs handed to payment providers.
	PublicBaseURL string

	// PaymentGatewayURL is the base URL of the payment aggregator API.
	// Tenants authenticate to it with their own stored API key.
	PaymentGatewayURL string

	// AllowedOrigins are CORS origins accepted in addition to each tenant's
	// own allowed_origins list.
	AllowedOrigins []string

	// WebhookTolerance is the maximum accepted clock skew when verifying
	// signed webhook timestamps.
	WebhookTolerance time.Duration
}

// DefaultSystemConfig returns the built-in system defaults.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		PublicBaseURL:    "http://localhost:8080",
		WebhookTolerance: 5 * time.Minute,
	}
}
