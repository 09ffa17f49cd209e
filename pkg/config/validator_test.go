package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig builds a minimal Config that passes validation, for tests to
// break one piece at a time.
func validConfig() *Config {
	providers := map[string]*LLMProviderConfig{
		"primary": {Type: LLMProviderTypeOpenAI, Model: "gpt-4o"},
		"backup":  {Type: LLMProviderTypeAnthropic, Model: "claude-sonnet-4-20250514"},
	}
	chains := map[string]*FailoverChainConfig{
		"all": {
			Providers:    []string{"primary", "backup"},
			Complexities: []Complexity{ComplexitySimple, ComplexityStandard, ComplexityComplex},
		},
	}
	tiers := map[string]*TierConfig{
		"starter": {MaxCampaignVariants: 2, DailyMessageLimit: 10},
	}
	return &Config{
		Defaults:              &Defaults{Tier: "starter"},
		Failover:              DefaultFailoverPolicy(),
		Dispatch:              DefaultDispatchConfig(),
		Campaign:              DefaultCampaignConfig(),
		Queue:                 DefaultQueueConfig(),
		LLMProviderRegistry:   NewLLMProviderRegistry(providers),
		FailoverChainRegistry: NewFailoverChainRegistry(chains),
		TierRegistry:          NewTierRegistry(tiers),
	}
}

func TestValidateAll_Valid(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidateAll_LLMProviders(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantMsg string
	}{
		{
			name: "missing type",
			mutate: func(cfg *Config) {
				cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"broken": {Model: "gpt-4o"},
				})
				cfg.FailoverChainRegistry = NewFailoverChainRegistry(map[string]*FailoverChainConfig{
					"all": {Providers: []string{"broken"}, Complexities: []Complexity{ComplexitySimple, ComplexityStandard, ComplexityComplex}},
				})
			},
			wantMsg: "type",
		},
		{
			name: "invalid type",
			mutate: func(cfg *Config) {
				cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"broken": {Type: "watson", Model: "x"},
				})
				cfg.FailoverChainRegistry = NewFailoverChainRegistry(map[string]*FailoverChainConfig{
					"all": {Providers: []string{"broken"}, Complexities: []Complexity{ComplexitySimple, ComplexityStandard, ComplexityComplex}},
				})
			},
			wantMsg: "type",
		},
		{
			name: "missing model",
			mutate: func(cfg *Config) {
				cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"broken": {Type: LLMProviderTypeOpenAI},
				})
				cfg.FailoverChainRegistry = NewFailoverChainRegistry(map[string]*FailoverChainConfig{
					"all": {Providers: []string{"broken"}, Complexities: []Complexity{ComplexitySimple, ComplexityStandard, ComplexityComplex}},
				})
			},
			wantMsg: "model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateAll_ChainReferencesUnknownProvider(t *testing.T) {
	cfg := validConfig()
	cfg.FailoverChainRegistry = NewFailoverChainRegistry(map[string]*FailoverChainConfig{
		"all": {
			Providers:    []string{"primary", "ghost"},
			Complexities: []Complexity{ComplexitySimple, ComplexityStandard, ComplexityComplex},
		},
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "ghost")
}

func TestValidateAll_UnroutedComplexity(t *testing.T) {
	cfg := validConfig()
	cfg.Defaults.FailoverChain = ""
	cfg.FailoverChainRegistry = NewFailoverChainRegistry(map[string]*FailoverChainConfig{
		"partial": {
			Providers:    []string{"primary"},
			Complexities: []Complexity{ComplexitySimple},
		},
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "standard")
}

func TestValidateAll_UnroutedComplexityCoveredByDefaultChain(t *testing.T) {
	cfg := validConfig()
	cfg.Defaults.FailoverChain = "partial"
	cfg.FailoverChainRegistry = NewFailoverChainRegistry(map[string]*FailoverChainConfig{
		"partial": {
			Providers:    []string{"primary"},
			Complexities: []Complexity{ComplexitySimple},
		},
	})

	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateAll_Tiers(t *testing.T) {
	tests := []struct {
		name string
		tier *TierConfig
	}{
		{name: "too few variants", tier: &TierConfig{MaxCampaignVariants: 1, DailyMessageLimit: 10}},
		{name: "zero daily limit", tier: &TierConfig{MaxCampaignVariants: 2, DailyMessageLimit: 0}},
		{name: "negative monthly limit", tier: &TierConfig{MaxCampaignVariants: 2, DailyMessageLimit: 10, MonthlyConversationLimit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.TierRegistry = NewTierRegistry(map[string]*TierConfig{"starter": tt.tier})
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestValidateAll_Policies(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{name: "failure rate above one", mutate: func(cfg *Config) { cfg.Failover.FailureRateThreshold = 1.5 }},
		{name: "zero retry attempts", mutate: func(cfg *Config) { cfg.Failover.MaxAttempts = 0 }},
		{name: "warning threshold at one", mutate: func(cfg *Config) { cfg.Dispatch.WarningThreshold = 1.0 }},
		{name: "spill hour out of range", mutate: func(cfg *Config) { cfg.Dispatch.QueueSpillHour = 24 }},
		{name: "significance level out of range", mutate: func(cfg *Config) { cfg.Campaign.SignificanceLevel = 0 }},
		{name: "zero workers", mutate: func(cfg *Config) { cfg.Queue.WorkerCount = 0 }},
		{name: "poll interval above scheduler tick", mutate: func(cfg *Config) { cfg.Queue.PollInterval = 2 * maxSchedulerTick }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestValidateAll_DefaultReferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{name: "unknown default provider", mutate: func(cfg *Config) { cfg.Defaults.LLMProvider = "ghost" }},
		{name: "unknown default chain", mutate: func(cfg *Config) { cfg.Defaults.FailoverChain = "ghost" }},
		{name: "unknown default tier", mutate: func(cfg *Config) { cfg.Defaults.Tier = "ghost" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidReference)
		})
	}
}
