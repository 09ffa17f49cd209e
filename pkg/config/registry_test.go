package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMProviderRegistry(t *testing.T) {
	registry := NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"openai-standard": {Type: LLMProviderTypeOpenAI, Model: "gpt-4o"},
	})

	t.Run("get existing", func(t *testing.T) {
		provider, err := registry.Get("openai-standard")
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", provider.Model)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := registry.Get("ghost")
		assert.ErrorIs(t, err, ErrLLMProviderNotFound)
	})

	t.Run("has and len", func(t *testing.T) {
		assert.True(t, registry.Has("openai-standard"))
		assert.False(t, registry.Has("ghost"))
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("get all returns copy", func(t *testing.T) {
		all := registry.GetAll()
		delete(all, "openai-standard")
		assert.True(t, registry.Has("openai-standard"))
	})
}

func TestFailoverChainRegistry(t *testing.T) {
	registry := NewFailoverChainRegistry(map[string]*FailoverChainConfig{
		"economical": {
			Providers:    []string{"openai-economical"},
			Complexities: []Complexity{ComplexitySimple},
		},
		"standard": {
			Providers:    []string{"openai-standard", "anthropic-standard"},
			Complexities: []Complexity{ComplexityStandard, ComplexityComplex},
		},
	})

	t.Run("get existing", func(t *testing.T) {
		chain, err := registry.Get("standard")
		require.NoError(t, err)
		assert.Len(t, chain.Providers, 2)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := registry.Get("ghost")
		assert.ErrorIs(t, err, ErrFailoverChainNotFound)
	})

	t.Run("get by complexity", func(t *testing.T) {
		chain, err := registry.GetByComplexity(ComplexitySimple)
		require.NoError(t, err)
		assert.Equal(t, []string{"openai-economical"}, chain.Providers)

		chain, err = registry.GetByComplexity(ComplexityComplex)
		require.NoError(t, err)
		assert.Equal(t, []string{"openai-standard", "anthropic-standard"}, chain.Providers)
	})

	t.Run("get by unhandled complexity", func(t *testing.T) {
		empty := NewFailoverChainRegistry(nil)
		_, err := empty.GetByComplexity(ComplexityStandard)
		assert.ErrorIs(t, err, ErrFailoverChainNotFound)
	})
}

func TestTierRegistry(t *testing.T) {
	registry := NewTierRegistry(map[string]*TierConfig{
		"starter": {
			MaxCampaignVariants: 2,
			DailyMessageLimit:   10,
			Features:            map[string]bool{"campaigns": true},
		},
	})

	t.Run("get existing", func(t *testing.T) {
		tier, err := registry.Get("starter")
		require.NoError(t, err)
		assert.Equal(t, 10, tier.DailyMessageLimit)
		assert.True(t, tier.HasFeature("campaigns"))
		assert.False(t, tier.HasFeature("ab_testing"))
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := registry.Get("enterprise")
		assert.ErrorIs(t, err, ErrTierNotFound)
	})
}
