package config

import (
	"fmt"
	"sync"
)

// TierConfig defines one subscription tier. Tenants reference tiers by the
// registry key in their subscription_tier column.
type TierConfig struct {
	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// MaxCampaignVariants caps A/B test arms per campaign (min 2)
	MaxCampaignVariants int `yaml:"max_campaign_variants" validate:"required,min=2"`

	// DailyMessageLimit is the tenant's outbound cap per rolling 24h
	// window. Tenants may lower it, never raise it above the tier cap.
	DailyMessageLimit int `yaml:"daily_message_limit" validate:"required,min=1"`

	// MonthlyConversationLimit caps distinct active conversations per month
	// (0 = unlimited)
	MonthlyConversationLimit int `yaml:"monthly_conversation_limit,omitempty"`

	// TrialDays is the trial length granted when a tenant starts on this tier
	TrialDays int `yaml:"trial_days,omitempty"`

	// Features toggles tier-gated functionality, e.g. "ab_testing", "campaigns"
	Features map[string]bool `yaml:"features,omitempty"`
}

// HasFeature reports whether the tier enables the named feature.
func (t *TierConfig) HasFeature(name string) bool {
	return t.Features[name]
}

// TierRegistry stores subscription tier configurations in memory with thread-safe access
type TierRegistry struct {
	tiers map[string]*TierConfig
	mu    sync.RWMutex
}

// NewTierRegistry creates a new tier registry
func NewTierRegistry(tiers map[string]*TierConfig) *TierRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*TierConfig, len(tiers))
	for k, v := range tiers {
		copied[k] = v
	}
	return &TierRegistry{
		tiers: copied,
	}
}

// Get retrieves a tier configuration by name (thread-safe)
func (r *TierRegistry) Get(name string) (*TierConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tier, exists := r.tiers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTierNotFound, name)
	}
	return tier, nil
}

// GetAll returns all tier configurations (thread-safe, returns copy)
func (r *TierRegistry) GetAll() map[string]*TierConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*TierConfig, len(r.tiers))
	for k, v := range r.tiers {
		result[k] = v
	}
	return result
}

// Has checks if a tier exists in the registry (thread-safe)
func (r *TierRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.tiers[name]
	return exists
}

// Len returns the number of tiers in the registry (thread-safe)
func (r *TierRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tiers)
}
