package config

import (
	"fmt"
	"sync"
)

// FailoverChainConfig defines an ordered list of LLM providers tried in
// sequence when the preceding ones are unhealthy or exhausted their retries.
type FailoverChainConfig struct {
	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// Provider names in failover order (required, min 1)
	Providers []string `yaml:"providers" validate:"required,min=1"`

	// Complexity levels this chain handles. Empty means the chain is only
	// reachable by explicit name (e.g. a tenant override).
	Complexities []Complexity `yaml:"complexities,omitempty"`
}

// FailoverChainRegistry stores failover chain configurations in memory with thread-safe access
type FailoverChainRegistry struct {
	chains map[string]*FailoverChainConfig
	mu     sync.RWMutex
}

// NewFailoverChainRegistry creates a new failover chain registry
func NewFailoverChainRegistry(chains map[string]*FailoverChainConfig) *FailoverChainRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*FailoverChainConfig, len(chains))
	for k, v := range chains {
		copied[k] = v
	}
	return &FailoverChainRegistry{
		chains: copied,
	}
}

// Get retrieves a failover chain configuration by name (thread-safe)
func (r *FailoverChainRegistry) Get(name string) (*FailoverChainConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain, exists := r.chains[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFailoverChainNotFound, name)
	}
	return chain, nil
}

// GetByComplexity retrieves the first chain that handles the given complexity (thread-safe)
func (r *FailoverChainRegistry) GetByComplexity(c Complexity) (*FailoverChainConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, chain := range r.chains {
		for _, level := range chain.Complexities {
			if level == c {
				return chain, nil
			}
		}
	}
	return nil, fmt.Errorf("%w for complexity: %s", ErrFailoverChainNotFound, c)
}

// GetAll returns all failover chain configurations (thread-safe, returns copy)
func (r *FailoverChainRegistry) GetAll() map[string]*FailoverChainConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*FailoverChainConfig, len(r.chains))
	for k, v := range r.chains {
		result[k] = v
	}
	return result
}

// Has checks if a failover chain exists in the registry (thread-safe)
func (r *FailoverChainRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.chains[name]
	return exists
}

// Len returns the number of failover chains in the registry (thread-safe)
func (r *FailoverChainRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chains)
}
