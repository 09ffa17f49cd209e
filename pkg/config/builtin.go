package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data.
// This provides default LLM providers, failover chains, and subscription tiers.
type BuiltinConfig struct {
	LLMProviders    map[string]LLMProviderConfig
	FailoverChains  map[string]FailoverChainConfig
	Tiers           map[string]TierConfig
	DefaultLanguage string
	DefaultCurrency string
	DefaultTier     string
	FallbackMessage string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		LLMProviders:    initBuiltinLLMProviders(),
		FailoverChains:  initBuiltinFailoverChains(),
		Tiers:           initBuiltinTiers(),
		DefaultLanguage: "en",
		DefaultCurrency: "USD",
		DefaultTier:     "starter",
		FallbackMessage: defaultFallbackMessage,
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openai-standard": {
			Type:      LLMProviderTypeOpenAI,
			Model:     "gpt-4o",
			APIKeyEnv: "OPENAI_API_KEY",
			MaxTokens: 1024,
		},
		"openai-economical": {
			Type:      LLMProviderTypeOpenAI,
			Model:     "gpt-4o-mini",
			APIKeyEnv: "OPENAI_API_KEY",
			MaxTokens: 512,
		},
		"anthropic-standard": {
			Type:      LLMProviderTypeAnthropic,
			Model:     "claude-sonnet-4-20250514",
			APIKeyEnv: "ANTHROPIC_API_KEY",
			MaxTokens: 1024,
		},
		"anthropic-economical": {
			Type:      LLMProviderTypeAnthropic,
			Model:     "claude-3-5-haiku-20241022",
			APIKeyEnv: "ANTHROPIC_API_KEY",
			MaxTokens: 512,
		},
	}
}

func initBuiltinFailoverChains() map[string]FailoverChainConfig {
	return map[string]FailoverChainConfig{
		"economical": {
			Description:  "Cheap models for trivial turns",
			Providers:    []string{"openai-economical", "anthropic-economical"},
			Complexities: []Complexity{ComplexitySimple},
		},
		"standard": {
			Description:  "Default chain for ordinary turns",
			Providers:    []string{"openai-standard", "anthropic-standard"},
			Complexities: []Complexity{ComplexityStandard, ComplexityComplex},
		},
	}
}

func initBuiltinTiers() map[string]TierConfig {
	return map[string]TierConfig{
		"starter": {
			Description:              "Entry tier for new businesses",
			MaxCampaignVariants:      2,
			DailyMessageLimit:        10,
			MonthlyConversationLimit: 500,
			TrialDays:                14,
			Features: map[string]bool{
				"campaigns":  true,
				"ab_testing": false,
			},
		},
		"growth": {
			Description:              "Growing businesses with campaign needs",
			MaxCampaignVariants:      3,
			DailyMessageLimit:        20,
			MonthlyConversationLimit: 5000,
			TrialDays:                14,
			Features: map[string]bool{
				"campaigns":  true,
				"ab_testing": true,
			},
		},
		"pro": {
			Description:              "High-volume businesses",
			MaxCampaignVariants:      5,
			DailyMessageLimit:        50,
			MonthlyConversationLimit: 0,
			TrialDays:                30,
			Features: map[string]bool{
				"campaigns":  true,
				"ab_testing": true,
			},
		},
	}
}

// defaultFallbackMessage is sent when the turn pipeline fails outright.
// Tenant branding may override it; this copy must stay provider-neutral and
// make no claims about catalog or availability.
const defaultFallbackMessage = `Sorry, I'm having trouble understanding right now. A team member will get back to you shortly.`
