package config

import (
	"fmt"
	"sync"
	"time"
)

// LLMProviderConfig defines LLM provider configuration
type LLMProviderConfig struct {
	// Provider type (required)
	Type LLMProviderType `yaml:"type" validate:"required"`

	// Model name (required)
	Model string `yaml:"model" validate:"required"`

	// Environment variable name for API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL
	BaseURL string `yaml:"base_url,omitempty"`

	// Maximum completion tokens per request (default 1024)
	MaxTokens int `yaml:"max_tokens,omitempty" validate:"omitempty,min=1"`

	// Sampling temperature; nil means provider default
	Temperature *float64 `yaml:"temperature,omitempty"`

	// Per-request timeout (default 30s)
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// FailoverPolicy controls provider health tracking and retry behavior.
// A provider whose recent failure rate reaches FailureRateThreshold (with at
// least MinSamples calls in the window) is skipped until CooldownPeriod has
// passed; the first call after cooldown is the probe.
type FailoverPolicy struct {
	FailureRateThreshold float64       `yaml:"failure_rate_threshold"`
	MinSamples           int           `yaml:"min_samples"`
	HealthWindow         time.Duration `yaml:"health_window"`
	CooldownPeriod       time.Duration `yaml:"cooldown_period"`

	// Per-provider retry schedule for transient failures: base, base*2, base*4, ...
	// capped at RetryMaxDelay, at most MaxAttempts calls.
	MaxAttempts    int           `yaml:"max_attempts"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`
	RetryMaxDelay  time.Duration `yaml:"retry_max_delay"`
}

// DefaultFailoverPolicy returns the built-in failover defaults.
func DefaultFailoverPolicy() *FailoverPolicy {
	return &FailoverPolicy{
		FailureRateThreshold: 0.5,
		MinSamples:           4,
		HealthWindow:         2 * time.Minute,
		CooldownPeriod:       30 * time.Second,
		MaxAttempts:          3,
		RetryBaseDelay:       1 * time.Second,
		RetryMaxDelay:        4 * time.Second,
	}
}

// LLMProviderRegistry stores LLM provider configurations in memory with thread-safe access
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{
		providers: copied,
	}
}

// Get retrieves an LLM provider configuration by name (thread-safe)
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// GetAll returns all LLM provider configurations (thread-safe, returns copy)
func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]*LLMProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if an LLM provider exists in the registry (thread-safe)
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of LLM providers in the registry (thread-safe)
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
