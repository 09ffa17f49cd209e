package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/pkg/config"
)

func routerConfig() *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{FailoverChain: "standard-chain"},
		FailoverChainRegistry: config.NewFailoverChainRegistry(map[string]*config.FailoverChainConfig{
			"economy-chain": {
				Providers:    []string{"openai-mini", "anthropic-haiku"},
				Complexities: []config.Complexity{config.ComplexitySimple},
			},
			"standard-chain": {
				Providers:    []string{"openai-default", "anthropic-default"},
				Complexities: []config.Complexity{config.ComplexityStandard, config.ComplexityComplex},
			},
			"tenant-special": {
				Providers: []string{"anthropic-default"},
			},
		}),
	}
}

func TestEstimateComplexity(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		contextRunes int
		want         config.Complexity
	}{
		{"greeting", "hello", 0, config.ComplexitySimple},
		{"confirmation with punctuation", "Yes!", 0, config.ComplexitySimple},
		{"swahili confirmation", "sawa", 0, config.ComplexitySimple},
		{"short question", "how much is the blue dress?", 0, config.ComplexitySimple},
		{"ordinary turn", "I'd like to know if you have the blue dress in medium, and whether you deliver to Kilimani? Also what are your opening hours?", 0, config.ComplexityStandard},
		{"many questions", "what? why? how? when?", 0, config.ComplexityComplex},
		{"large retrieved context", "tell me about these", 2000, config.ComplexityComplex},
		{"long message", strings.Repeat("details ", 250), 0, config.ComplexityComplex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateComplexity(tt.text, tt.contextRunes))
		})
	}
}

func TestRouter_SelectChain_ByComplexity(t *testing.T) {
	r := NewRouter(routerConfig())

	providers, err := r.SelectChain("", config.ComplexitySimple)
	require.NoError(t, err)
	assert.Equal(t, []string{"openai-mini", "anthropic-haiku"}, providers)

	providers, err = r.SelectChain("", config.ComplexityComplex)
	require.NoError(t, err)
	assert.Equal(t, []string{"openai-default", "anthropic-default"}, providers)
}

func TestRouter_SelectChain_TenantPreferenceWins(t *testing.T) {
	r := NewRouter(routerConfig())

	providers, err := r.SelectChain("tenant-special", config.ComplexitySimple)
	require.NoError(t, err)
	assert.Equal(t, []string{"anthropic-default"}, providers)
}

func TestRouter_SelectChain_UnknownPreferenceFallsThrough(t *testing.T) {
	r := NewRouter(routerConfig())

	providers, err := r.SelectChain("deleted-chain", config.ComplexitySimple)
	require.NoError(t, err)
	assert.Equal(t, []string{"openai-mini", "anthropic-haiku"}, providers)
}

func TestRouter_SelectChain_DefaultChain(t *testing.T) {
	cfg := &config.Config{
		Defaults: &config.Defaults{FailoverChain: "only-chain"},
		FailoverChainRegistry: config.NewFailoverChainRegistry(map[string]*config.FailoverChainConfig{
			"only-chain": {Providers: []string{"openai-default"}},
		}),
	}
	r := NewRouter(cfg)

	providers, err := r.SelectChain("", config.ComplexityStandard)
	require.NoError(t, err)
	assert.Equal(t, []string{"openai-default"}, providers)
}

func TestRouter_SelectChain_NoRoute(t *testing.T) {
	cfg := &config.Config{
		Defaults:              &config.Defaults{},
		FailoverChainRegistry: config.NewFailoverChainRegistry(nil),
	}
	r := NewRouter(cfg)

	_, err := r.SelectChain("", config.ComplexityStandard)
	assert.ErrorIs(t, err, config.ErrFailoverChainNotFound)
}
