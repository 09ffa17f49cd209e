package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// SokochatYAMLConfig represents the complete sokochat.yaml file structure
type SokochatYAMLConfig struct {
	System         *SystemYAMLConfig             `yaml:"system"`
	FailoverChains map[string]FailoverChainConfig `yaml:"failover_chains"`
	Tiers          map[string]TierConfig          `yaml:"tiers"`
	Defaults       *Defaults                      `yaml:"defaults"`
	Agent          *AgentConfig                   `yaml:"agent"`
	Harmonizer     *HarmonizerConfig              `yaml:"harmonizer"`
	Dispatch       *DispatchConfig                `yaml:"dispatch"`
	Campaign       *CampaignConfig                `yaml:"campaign"`
	Failover       *FailoverPolicy                `yaml:"failover"`
	Queue          *QueueConfig                   `yaml:"queue"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	PublicBaseURL     string           `yaml:"public_base_url"`
	PaymentGatewayURL string           `yaml:"payment_gateway_url"`
	AllowedOrigins    []string         `yaml:"allowed_origins"`
	WebhookTolerance  string           `yaml:"webhook_tolerance"` // Parsed to time.Duration
	Retention         *RetentionConfig `yaml:"retention"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Clamp bounded values (harmonizer window, reference TTL)
//  6. Build in-memory registries
//  7. Apply default values
//  8. Validate all configuration
//  9. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"failover_chains", stats.FailoverChains,
		"tiers", stats.Tiers)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load sokochat.yaml (chains, tiers, defaults, policy sections)
	mainConfig, err := loader.loadSokochatYAML()
	if err != nil {
		return nil, NewLoadError("sokochat.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)
	chains := mergeFailoverChains(builtin.FailoverChains, mainConfig.FailoverChains)
	tiers := mergeTiers(builtin.Tiers, mainConfig.Tiers)

	// 5. Build registries
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)
	chainRegistry := NewFailoverChainRegistry(chains)
	tierRegistry := NewTierRegistry(tiers)

	// 6. Resolve defaults (YAML overrides built-in)
	defaults := mainConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.Language == "" {
		defaults.Language = builtin.DefaultLanguage
	}
	if defaults.Currency == "" {
		defaults.Currency = builtin.DefaultCurrency
	}
	if defaults.Tier == "" {
		defaults.Tier = builtin.DefaultTier
	}

	// 7. Resolve policy sections (merge user YAML over built-in defaults,
	// non-zero values override)
	agentCfg, err := mergeSection(DefaultAgentConfig(), mainConfig.Agent, "agent")
	if err != nil {
		return nil, err
	}
	if agentCfg.ClampReferenceTTL() {
		slog.Warn("reference_ttl outside supported range, clamped",
			"value", agentCfg.ReferenceTTL)
	}

	harmonizerCfg, err := mergeSection(DefaultHarmonizerConfig(), mainConfig.Harmonizer, "harmonizer")
	if err != nil {
		return nil, err
	}
	if harmonizerCfg.ClampWindow() {
		slog.Warn("harmonizer window outside supported range, clamped",
			"value", harmonizerCfg.Window)
	}

	dispatchCfg, err := mergeSection(DefaultDispatchConfig(), mainConfig.Dispatch, "dispatch")
	if err != nil {
		return nil, err
	}
	campaignCfg, err := mergeSection(DefaultCampaignConfig(), mainConfig.Campaign, "campaign")
	if err != nil {
		return nil, err
	}
	failoverCfg, err := mergeSection(DefaultFailoverPolicy(), mainConfig.Failover, "failover")
	if err != nil {
		return nil, err
	}
	queueCfg, err := mergeSection(DefaultQueueConfig(), mainConfig.Queue, "queue")
	if err != nil {
		return nil, err
	}

	// 8. Resolve system config (base URL, CORS origins, webhook tolerance, retention)
	systemCfg := resolveSystemConfig(mainConfig.System)
	retentionCfg := resolveRetentionConfig(mainConfig.System)

	return &Config{
		configDir:             configDir,
		Defaults:              defaults,
		System:                systemCfg,
		Agent:                 agentCfg,
		Harmonizer:            harmonizerCfg,
		Dispatch:              dispatchCfg,
		Campaign:              campaignCfg,
		Failover:              failoverCfg,
		Retention:             retentionCfg,
		Queue:                 queueCfg,
		LLMProviderRegistry:   llmProviderRegistry,
		FailoverChainRegistry: chainRegistry,
		TierRegistry:          tierRegistry,
	}, nil
}

// mergeSection merges a user-provided config section into its defaults.
// Non-zero user values override; unset fields keep the default.
func mergeSection[T any](defaults *T, user *T, name string) (*T, error) {
	if user == nil {
		return defaults, nil
	}
	if err := mergo.Merge(defaults, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge %s config: %w", name, err)
	}
	return defaults, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadSokochatYAML() (*SokochatYAMLConfig, error) {
	var config SokochatYAMLConfig

	// Initialize maps to avoid nil maps
	config.FailoverChains = make(map[string]FailoverChainConfig)
	config.Tiers = make(map[string]TierConfig)

	if err := l.loadYAML("sokochat.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveSystemConfig resolves system configuration from YAML, applying defaults.
func resolveSystemConfig(sys *SystemYAMLConfig) *SystemConfig {
	cfg := DefaultSystemConfig()

	if sys == nil {
		return cfg
	}

	if sys.PublicBaseURL != "" {
		cfg.PublicBaseURL = sys.PublicBaseURL
	}
	if sys.PaymentGatewayURL != "" {
		cfg.PaymentGatewayURL = sys.PaymentGatewayURL
	}
	if len(sys.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = sys.AllowedOrigins
	}
	if sys.WebhookTolerance != "" {
		if d, err := time.ParseDuration(sys.WebhookTolerance); err == nil {
			cfg.WebhookTolerance = d
		} else {
			slog.Warn("Invalid webhook_tolerance in system config, using default",
				"value", sys.WebhookTolerance,
				"default", cfg.WebhookTolerance,
				"error", err)
		}
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.ConversationRetentionDays > 0 {
		cfg.ConversationRetentionDays = r.ConversationRetentionDays
	}
	if r.ReferenceContextTTL > 0 {
		cfg.ReferenceContextTTL = r.ReferenceContextTTL
	}
	if r.HandledOutboxTTL > 0 {
		cfg.HandledOutboxTTL = r.HandledOutboxTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}
