package config

// Defaults contains system-wide default configurations
// These values are used when specific components don't specify their own values
type Defaults struct {
	// LLM provider used when no failover chain matches
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Failover chain used when complexity routing finds no match
	FailoverChain string `yaml:"failover_chain,omitempty"`

	// Response language when detection fails and the customer has none recorded
	Language string `yaml:"language,omitempty"`

	// Currency for new tenants
	Currency string `yaml:"currency,omitempty"`

	// Subscription tier assigned to newly created tenants
	Tier string `yaml:"tier,omitempty"`
}
