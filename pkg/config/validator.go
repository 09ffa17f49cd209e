package config

import (
	"fmt"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: providers → chains → tiers → policy sections → defaults
	// This ensures dependencies are validated before dependents

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateFailoverChains(); err != nil {
		return fmt.Errorf("failover chain validation failed: %w", err)
	}

	if err := v.validateTiers(); err != nil {
		return fmt.Errorf("tier validation failed: %w", err)
	}

	if err := v.validatePolicies(); err != nil {
		return fmt.Errorf("policy validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if provider.Type == "" {
			return NewValidationError("llm_provider", name, "type", ErrMissingRequiredField)
		}
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("%w: %s", ErrInvalidValue, provider.Type))
		}
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.MaxTokens < 0 {
			return NewValidationError("llm_provider", name, "max_tokens", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
		}
		if provider.Temperature != nil && (*provider.Temperature < 0 || *provider.Temperature > 2) {
			return NewValidationError("llm_provider", name, "temperature", fmt.Errorf("%w: must be in [0, 2]", ErrInvalidValue))
		}

		// Warn-level concern only: the API key env var may be set per tenant
		// instead, so an unset variable here is not fatal.
		if provider.APIKeyEnv != "" {
			if _, ok := os.LookupEnv(provider.APIKeyEnv); !ok {
				continue
			}
		}
	}
	return nil
}

func (v *ConfigValidator) validateFailoverChains() error {
	for name, chain := range v.cfg.FailoverChainRegistry.GetAll() {
		if len(chain.Providers) == 0 {
			return NewValidationError("failover_chain", name, "providers", fmt.Errorf("at least one provider required"))
		}
		for _, providerName := range chain.Providers {
			if !v.cfg.LLMProviderRegistry.Has(providerName) {
				return NewValidationError("failover_chain", name, "providers",
					fmt.Errorf("%w: LLM provider '%s' not found", ErrInvalidReference, providerName))
			}
		}
		for _, complexity := range chain.Complexities {
			if !complexity.IsValid() {
				return NewValidationError("failover_chain", name, "complexities",
					fmt.Errorf("%w: %s", ErrInvalidValue, complexity))
			}
		}
	}

	// Every complexity level must route somewhere, otherwise the router has
	// turns it cannot place.
	for _, complexity := range []Complexity{ComplexitySimple, ComplexityStandard, ComplexityComplex} {
		if _, err := v.cfg.FailoverChainRegistry.GetByComplexity(complexity); err != nil {
			if v.cfg.Defaults != nil && v.cfg.Defaults.FailoverChain != "" {
				continue // default chain catches unrouted complexities
			}
			return NewValidationError("failover_chain", string(complexity), "complexities",
				fmt.Errorf("no chain handles complexity '%s' and no default chain is set", complexity))
		}
	}
	return nil
}

func (v *ConfigValidator) validateTiers() error {
	for name, tier := range v.cfg.TierRegistry.GetAll() {
		if tier.MaxCampaignVariants < 2 {
			return NewValidationError("tier", name, "max_campaign_variants",
				fmt.Errorf("%w: must be at least 2", ErrInvalidValue))
		}
		if tier.DailyMessageLimit < 1 {
			return NewValidationError("tier", name, "daily_message_limit",
				fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
		}
		if tier.MonthlyConversationLimit < 0 {
			return NewValidationError("tier", name, "monthly_conversation_limit",
				fmt.Errorf("%w: must not be negative", ErrInvalidValue))
		}
	}
	return nil
}

func (v *ConfigValidator) validatePolicies() error {
	if f := v.cfg.Failover; f != nil {
		if f.FailureRateThreshold <= 0 || f.FailureRateThreshold > 1 {
			return NewValidationError("failover", "policy", "failure_rate_threshold",
				fmt.Errorf("%w: must be in (0, 1]", ErrInvalidValue))
		}
		if f.MaxAttempts < 1 {
			return NewValidationError("failover", "policy", "max_attempts",
				fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
		}
	}

	if d := v.cfg.Dispatch; d != nil {
		if d.WarningThreshold <= 0 || d.WarningThreshold >= 1 {
			return NewValidationError("dispatch", "policy", "warning_threshold",
				fmt.Errorf("%w: must be in (0, 1)", ErrInvalidValue))
		}
		if d.QueueSpillHour < 0 || d.QueueSpillHour > 23 {
			return NewValidationError("dispatch", "policy", "queue_spill_hour",
				fmt.Errorf("%w: must be an hour of day (0-23)", ErrInvalidValue))
		}
	}

	if c := v.cfg.Campaign; c != nil {
		if c.SignificanceLevel <= 0 || c.SignificanceLevel >= 1 {
			return NewValidationError("campaign", "policy", "significance_level",
				fmt.Errorf("%w: must be in (0, 1)", ErrInvalidValue))
		}
	}

	if q := v.cfg.Queue; q != nil {
		if q.WorkerCount < 1 {
			return NewValidationError("queue", "policy", "worker_count",
				fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
		}
		if q.PollInterval > maxSchedulerTick {
			return NewValidationError("queue", "policy", "poll_interval",
				fmt.Errorf("%w: must not exceed %s", ErrInvalidValue, maxSchedulerTick))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults
	if d == nil {
		return nil
	}

	if d.LLMProvider != "" && !v.cfg.LLMProviderRegistry.Has(d.LLMProvider) {
		return NewValidationError("defaults", "defaults", "llm_provider",
			fmt.Errorf("%w: LLM provider '%s' not found", ErrInvalidReference, d.LLMProvider))
	}
	if d.FailoverChain != "" && !v.cfg.FailoverChainRegistry.Has(d.FailoverChain) {
		return NewValidationError("defaults", "defaults", "failover_chain",
			fmt.Errorf("%w: failover chain '%s' not found", ErrInvalidReference, d.FailoverChain))
	}
	if d.Tier != "" && !v.cfg.TierRegistry.Has(d.Tier) {
		return NewValidationError("defaults", "defaults", "tier",
			fmt.Errorf("%w: tier '%s' not found", ErrInvalidReference, d.Tier))
	}
	return nil
}
