package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Platform infrastructure settings
	System *SystemConfig

	// Pipeline and policy sections
	Agent      *AgentConfig
	Harmonizer *HarmonizerConfig
	Dispatch   *DispatchConfig
	Campaign   *CampaignConfig
	Failover   *FailoverPolicy
	Retention  *RetentionConfig

	// Scheduled-message queue and worker pool configuration
	Queue *QueueConfig

	// Component registries
	LLMProviderRegistry   *LLMProviderRegistry
	FailoverChainRegistry *FailoverChainRegistry
	TierRegistry          *TierRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders   int
	FailoverChains int
	Tiers          int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	if c.FailoverChainRegistry != nil {
		s.FailoverChains = c.FailoverChainRegistry.Len()
	}
	if c.TierRegistry != nil {
		s.Tiers = c.TierRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// GetFailoverChain retrieves a failover chain configuration by name.
// This is a convenience method that wraps FailoverChainRegistry.Get().
func (c *Config) GetFailoverChain(name string) (*FailoverChainConfig, error) {
	return c.FailoverChainRegistry.Get(name)
}

// GetChainByComplexity retrieves the first chain that handles the given complexity.
// This is a convenience method that wraps FailoverChainRegistry.GetByComplexity().
func (c *Config) GetChainByComplexity(complexity Complexity) (*FailoverChainConfig, error) {
	return c.FailoverChainRegistry.GetByComplexity(complexity)
}

// GetTier retrieves a subscription tier configuration by name.
// This is a convenience method that wraps TierRegistry.Get().
func (c *Config) GetTier(name string) (*TierConfig, error) {
	return c.TierRegistry.Get(name)
}
