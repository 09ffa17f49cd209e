package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/sokochat/sokochat/pkg/config"
)

// defaultCallTimeout bounds a single provider call when the provider config
// does not set one.
const defaultCallTimeout = 30 * time.Second

// BuildProviders constructs one Provider per registry entry. Entries whose
// API key environment variable is unset are skipped with a warning so a
// partially configured deployment still starts.
func BuildProviders(registry *config.LLMProviderRegistry) (map[string]Provider, error) {
	providers := make(map[string]Provider)
	for name, cfg := range registry.GetAll() {
		var (
			p   Provider
			err error
		)
		switch cfg.Type {
		case config.LLMProviderTypeOpenAI:
			p, err = NewOpenAIProvider(name, cfg)
		case config.LLMProviderTypeAnthropic:
			p, err = NewAnthropicProvider(name, cfg)
		default:
			return nil, fmt.Errorf("LLM provider %s: unsupported type %q", name, cfg.Type)
		}
		if err != nil {
			slog.Warn("skipping LLM provider", "provider", name, "error", err)
			continue
		}
		providers[name] = p
	}
	if len(providers) == 0 {
		return nil, errors.New("no LLM providers could be initialized")
	}
	return providers, nil
}

// Manager walks a failover chain: healthy providers are tried in order, each
// with a bounded retry schedule for transient failures, and outcomes feed the
// shared health tracker.
type Manager struct {
	providers map[string]Provider
	tracker   *HealthTracker
	policy    *config.FailoverPolicy
	registry  *config.LLMProviderRegistry

	// overridable in tests
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// NewManager creates a failover manager over the given providers.
func NewManager(providers map[string]Provider, tracker *HealthTracker, policy *config.FailoverPolicy, registry *config.LLMProviderRegistry) *Manager {
	return &Manager{
		providers: providers,
		tracker:   tracker,
		policy:    policy,
		registry:  registry,
		sleep:     sleepCtx,
		now:       time.Now,
	}
}

// Execute tries the chain's providers in order and returns the first
// successful response along with the name of the provider that produced it.
// Providers with an open breaker are skipped; retryable failures are retried
// against the same provider with exponential backoff before advancing.
func (m *Manager) Execute(ctx context.Context, chain []string, req Request) (*Response, string, error) {
	if len(chain) == 0 {
		return nil, "", fmt.Errorf("failover chain is empty: %w", ErrAllProvidersFailed)
	}

	var lastErr error
	for _, name := range chain {
		provider, ok := m.providers[name]
		if !ok {
			slog.Warn("failover chain references unknown provider", "provider", name)
			continue
		}
		if !m.tracker.Available(ctx, name, m.now()) {
			slog.Debug("skipping provider with open breaker", "provider", name)
			continue
		}

		resp, err := m.callWithRetries(ctx, provider, req)
		if err == nil {
			return resp, name, nil
		}
		if ctx.Err() != nil {
			return nil, "", ctx.Err()
		}
		lastErr = err
		slog.Warn("provider exhausted, advancing in chain", "provider", name, "error", err)
	}

	if lastErr != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
	}
	return nil, "", ErrAllProvidersFailed
}

func (m *Manager) callWithRetries(ctx context.Context, provider Provider, req Request) (*Response, error) {
	name := provider.Name()
	timeout := defaultCallTimeout
	if m.registry != nil {
		if cfg, err := m.registry.Get(name); err == nil && cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	var lastErr error
	for attempt := 0; attempt < m.policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := m.sleep(ctx, m.backoffDelay(attempt)); err != nil {
				return nil, err
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err := provider.Complete(callCtx, req)
		cancel()

		if err == nil {
			m.tracker.RecordSuccess(ctx, name, m.now())
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		m.tracker.RecordFailure(ctx, name, m.now())
		lastErr = err
		if !IsRetryable(err) {
			break
		}
		slog.Debug("retrying provider after transient failure",
			"provider", name, "attempt", attempt+1, "error", err)
	}
	return nil, lastErr
}

// backoffDelay computes the delay before the given attempt (1-based for the
// first retry): base, base*2, base*4, ... capped at the max, with up to 10%
// jitter to spread concurrent retries.
func (m *Manager) backoffDelay(attempt int) time.Duration {
	delay := m.policy.RetryBaseDelay << (attempt - 1)
	if delay > m.policy.RetryMaxDelay {
		delay = m.policy.RetryMaxDelay
	}
	jitter := time.Duration(rand.Int64N(int64(delay)/10 + 1))
	return delay + jitter
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
