package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigDir creates a temp config directory with the given file contents.
func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

const minimalProvidersYAML = `
llm_providers:
  test-openai:
    type: openai
    model: gpt-4o
    api_key_env: OPENAI_API_KEY
`

func TestInitialize_Minimal(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"sokochat.yaml":      "",
		"llm-providers.yaml": minimalProvidersYAML,
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// User provider merged on top of built-ins
	assert.True(t, cfg.LLMProviderRegistry.Has("test-openai"))
	assert.True(t, cfg.LLMProviderRegistry.Has("openai-standard"))

	// Built-in chains and tiers are present
	assert.True(t, cfg.FailoverChainRegistry.Has("standard"))
	assert.True(t, cfg.TierRegistry.Has("starter"))

	// Defaults filled from built-ins
	assert.Equal(t, "en", cfg.Defaults.Language)
	assert.Equal(t, "USD", cfg.Defaults.Currency)
	assert.Equal(t, "starter", cfg.Defaults.Tier)

	// Policy sections resolved to their defaults
	assert.Equal(t, 3*time.Second, cfg.Harmonizer.Window)
	assert.Equal(t, 5*time.Minute, cfg.Agent.ReferenceTTL)
	assert.Equal(t, 0.8, cfg.Dispatch.WarningThreshold)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
}

func TestInitialize_UserOverrides(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"sokochat.yaml": `
system:
  public_base_url: https://api.example.com
  allowed_origins: ["https://app.example.com"]
harmonizer:
  window: 5s
queue:
  worker_count: 2
tiers:
  starter:
    max_campaign_variants: 4
    daily_message_limit: 25
defaults:
  language: sw
`,
		"llm-providers.yaml": minimalProvidersYAML,
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.System.PublicBaseURL)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.System.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Harmonizer.Window)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, "sw", cfg.Defaults.Language)

	// Tier override replaces the built-in starter tier
	tier, err := cfg.GetTier("starter")
	require.NoError(t, err)
	assert.Equal(t, 4, tier.MaxCampaignVariants)
	assert.Equal(t, 25, tier.DailyMessageLimit)

	// Unrelated built-ins survive the merge
	assert.True(t, cfg.TierRegistry.Has("pro"))
}

func TestInitialize_HarmonizerWindowClamped(t *testing.T) {
	tests := []struct {
		name   string
		window string
		want   time.Duration
	}{
		{name: "below minimum", window: "200ms", want: 1 * time.Second},
		{name: "above maximum", window: "30s", want: 10 * time.Second},
		{name: "within range", window: "4s", want: 4 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfigDir(t, map[string]string{
				"sokochat.yaml":      "harmonizer:\n  window: " + tt.window + "\n",
				"llm-providers.yaml": minimalProvidersYAML,
			})

			cfg, err := Initialize(context.Background(), dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Harmonizer.Window)
		})
	}
}

func TestInitialize_ReferenceTTLClamped(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"sokochat.yaml":      "agent:\n  reference_ttl: 20m\n",
		"llm-providers.yaml": minimalProvidersYAML,
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, ReferenceTTLMax, cfg.Agent.ReferenceTTL)
}

func TestInitialize_MissingFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"sokochat.yaml":      "harmonizer: [not a mapping",
		"llm-providers.yaml": minimalProvidersYAML,
	})

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("SOKOCHAT_TEST_MODEL", "gpt-4o-mini")

	dir := writeConfigDir(t, map[string]string{
		"sokochat.yaml": "",
		"llm-providers.yaml": `
llm_providers:
  env-provider:
    type: openai
    model: "{{.SOKOCHAT_TEST_MODEL}}"
`,
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	provider, err := cfg.GetLLMProvider("env-provider")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", provider.Model)
}

func TestConfig_Stats(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"sokochat.yaml":      "",
		"llm-providers.yaml": minimalProvidersYAML,
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	stats := cfg.Stats()
	assert.Equal(t, 5, stats.LLMProviders) // 4 built-in + 1 user
	assert.Equal(t, 2, stats.FailoverChains)
	assert.Equal(t, 3, stats.Tiers)
	assert.Equal(t, dir, cfg.ConfigDir())
}
