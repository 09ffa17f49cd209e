package config

// mergeLLMProviders merges built-in and user-defined LLM provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeLLMProviders(builtinProviders map[string]LLMProviderConfig, userProviders map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	result := make(map[string]*LLMProviderConfig)

	// First, add built-in providers
	for name, provider := range builtinProviders {
		providerCopy := provider
		result[name] = &providerCopy
	}

	// Then, override with user-defined providers (or add new ones)
	for name, userProvider := range userProviders {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}

// mergeFailoverChains merges built-in and user-defined failover chains.
// User-defined chains override built-in chains with the same name.
func mergeFailoverChains(builtinChains map[string]FailoverChainConfig, userChains map[string]FailoverChainConfig) map[string]*FailoverChainConfig {
	result := make(map[string]*FailoverChainConfig)

	// First, add built-in chains
	for name, chain := range builtinChains {
		chainCopy := chain
		result[name] = &chainCopy
	}

	// Then, override with user-defined chains (or add new ones)
	for name, userChain := range userChains {
		chainCopy := userChain
		result[name] = &chainCopy
	}

	return result
}

// mergeTiers merges built-in and user-defined subscription tiers.
// User-defined tiers override built-in tiers with the same name.
func mergeTiers(builtinTiers map[string]TierConfig, userTiers map[string]TierConfig) map[string]*TierConfig {
	result := make(map[string]*TierConfig)

	// First, add built-in tiers
	for name, tier := range builtinTiers {
		tierCopy := tier
		result[name] = &tierCopy
	}

	// Then, override with user-defined tiers (or add new ones)
	for name, userTier := range userTiers {
		tierCopy := userTier
		result[name] = &tierCopy
	}

	return result
}
