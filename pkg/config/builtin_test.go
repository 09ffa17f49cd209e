package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuiltinConfig_Singleton(t *testing.T) {
	first := GetBuiltinConfig()
	second := GetBuiltinConfig()
	assert.Same(t, first, second)
}

func TestBuiltinConfig_Providers(t *testing.T) {
	builtin := GetBuiltinConfig()

	require.NotEmpty(t, builtin.LLMProviders)
	for name, provider := range builtin.LLMProviders {
		assert.True(t, provider.Type.IsValid(), "provider %s has invalid type", name)
		assert.NotEmpty(t, provider.Model, "provider %s has no model", name)
		assert.NotEmpty(t, provider.APIKeyEnv, "provider %s has no api_key_env", name)
	}
}

func TestBuiltinConfig_ChainsReferenceKnownProviders(t *testing.T) {
	builtin := GetBuiltinConfig()

	require.NotEmpty(t, builtin.FailoverChains)
	for name, chain := range builtin.FailoverChains {
		require.NotEmpty(t, chain.Providers, "chain %s is empty", name)
		for _, providerName := range chain.Providers {
			_, ok := builtin.LLMProviders[providerName]
			assert.True(t, ok, "chain %s references unknown provider %s", name, providerName)
		}
	}
}

func TestBuiltinConfig_ChainsCoverAllComplexities(t *testing.T) {
	builtin := GetBuiltinConfig()

	covered := make(map[Complexity]bool)
	for _, chain := range builtin.FailoverChains {
		for _, complexity := range chain.Complexities {
			covered[complexity] = true
		}
	}

	for _, complexity := range []Complexity{ComplexitySimple, ComplexityStandard, ComplexityComplex} {
		assert.True(t, covered[complexity], "no built-in chain handles %s", complexity)
	}
}

func TestBuiltinConfig_Tiers(t *testing.T) {
	builtin := GetBuiltinConfig()

	require.NotEmpty(t, builtin.Tiers)
	for name, tier := range builtin.Tiers {
		assert.GreaterOrEqual(t, tier.MaxCampaignVariants, 2, "tier %s variant cap too low", name)
		assert.GreaterOrEqual(t, tier.DailyMessageLimit, 1, "tier %s daily limit too low", name)
	}

	_, ok := builtin.Tiers[builtin.DefaultTier]
	assert.True(t, ok, "default tier %s is not a built-in tier", builtin.DefaultTier)
}

func TestBuiltinConfig_FallbackMessage(t *testing.T) {
	builtin := GetBuiltinConfig()

	// The fallback copy must not claim anything a validator could not verify.
	assert.NotEmpty(t, builtin.FallbackMessage)
	assert.NotContains(t, builtin.FallbackMessage, "{{")
}

func TestLLMProviderType_IsValid(t *testing.T) {
	assert.True(t, LLMProviderTypeOpenAI.IsValid())
	assert.True(t, LLMProviderTypeAnthropic.IsValid())
	assert.False(t, LLMProviderType("watson").IsValid())
	assert.False(t, LLMProviderType("").IsValid())
}

func TestComplexity_IsValid(t *testing.T) {
	assert.True(t, ComplexitySimple.IsValid())
	assert.True(t, ComplexityStandard.IsValid())
	assert.True(t, ComplexityComplex.IsValid())
	assert.False(t, Complexity("extreme").IsValid())
}
