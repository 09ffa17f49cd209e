package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/pkg/config"
)

// stubProvider scripts a sequence of results for Complete calls. Once the
// script is exhausted the last entry repeats.
type stubProvider struct {
	name    string
	results []stubResult
	calls   int
}

type stubResult struct {
	resp *Response
	err  error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Complete(_ context.Context, _ Request) (*Response, error) {
	idx := s.calls
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	s.calls++
	r := s.results[idx]
	return r.resp, r.err
}

func alwaysFailing(name string, retryable bool) *stubProvider {
	return &stubProvider{name: name, results: []stubResult{
		{err: &ProviderError{Provider: name, StatusCode: 503, Message: "unavailable", Retryable: retryable}},
	}}
}

func alwaysSucceeding(name, text string) *stubProvider {
	return &stubProvider{name: name, results: []stubResult{
		{resp: &Response{Text: text, Model: "test-model"}},
	}}
}

func newTestManager(t *testing.T, providers ...*stubProvider) (*Manager, *HealthTracker) {
	t.Helper()
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.name] = p
	}
	tracker := NewHealthTracker(NewMemoryHealthStore(), testPolicy())
	m := NewManager(byName, tracker, testPolicy(), nil)
	m.sleep = func(context.Context, time.Duration) error { return nil }
	return m, tracker
}

func TestManager_FirstProviderWins(t *testing.T) {
	primary := alwaysSucceeding("primary", "hello")
	backup := alwaysSucceeding("backup", "unused")
	m, _ := newTestManager(t, primary, backup)

	resp, name, err := m.Execute(context.Background(), []string{"primary", "backup"}, Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "primary", name)
	assert.Equal(t, "hello", resp.Text)
	assert.Zero(t, backup.calls)
}

func TestManager_AdvancesPastFailingProvider(t *testing.T) {
	primary := alwaysFailing("primary", true)
	backup := alwaysSucceeding("backup", "from backup")
	m, _ := newTestManager(t, primary, backup)

	resp, name, err := m.Execute(context.Background(), []string{"primary", "backup"}, Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "backup", name)
	assert.Equal(t, "from backup", resp.Text)
	assert.Equal(t, testPolicy().MaxAttempts, primary.calls, "retryable failure retried up to the attempt cap")
}

func TestManager_PermanentErrorSkipsRetries(t *testing.T) {
	primary := alwaysFailing("primary", false)
	backup := alwaysSucceeding("backup", "ok")
	m, _ := newTestManager(t, primary, backup)

	_, name, err := m.Execute(context.Background(), []string{"primary", "backup"}, Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "backup", name)
	assert.Equal(t, 1, primary.calls, "permanent error advances without retrying")
}

func TestManager_AllProvidersFailed(t *testing.T) {
	m, _ := newTestManager(t, alwaysFailing("primary", false), alwaysFailing("backup", false))

	_, _, err := m.Execute(context.Background(), []string{"primary", "backup"}, Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
}

func TestManager_SkipsOpenBreaker(t *testing.T) {
	primary := alwaysFailing("primary", false)
	backup := alwaysSucceeding("backup", "ok")
	m, tracker := newTestManager(t, primary, backup)

	// Saturate the primary's window so the breaker opens.
	now := time.Now()
	for i := 0; i < testPolicy().MinSamples; i++ {
		tracker.RecordFailure(context.Background(), "primary", now)
	}

	_, name, err := m.Execute(context.Background(), []string{"primary", "backup"}, Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "backup", name)
	assert.Zero(t, primary.calls, "provider with open breaker must not be called")
}

func TestManager_ProbeAfterCooldown(t *testing.T) {
	primary := alwaysSucceeding("primary", "recovered")
	m, tracker := newTestManager(t, primary)

	base := time.Now()
	for i := 0; i < testPolicy().MinSamples; i++ {
		tracker.RecordFailure(context.Background(), "primary", base)
	}

	// Advance past the cooldown so the probe is allowed.
	m.now = func() time.Time { return base.Add(testPolicy().CooldownPeriod + time.Second) }

	resp, name, err := m.Execute(context.Background(), []string{"primary"}, Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "primary", name)
	assert.Equal(t, "recovered", resp.Text)
}

func TestManager_UnknownProviderInChain(t *testing.T) {
	backup := alwaysSucceeding("backup", "ok")
	m, _ := newTestManager(t, backup)

	_, name, err := m.Execute(context.Background(), []string{"missing", "backup"}, Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "backup", name)
}

func TestManager_EmptyChain(t *testing.T) {
	m, _ := newTestManager(t)
	_, _, err := m.Execute(context.Background(), nil, Request{})
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
}

func TestManager_ContextCancellation(t *testing.T) {
	primary := alwaysFailing("primary", true)
	m, _ := newTestManager(t, primary)

	ctx, cancel := context.WithCancel(context.Background())
	m.sleep = func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	_, _, err := m.Execute(ctx, []string{"primary"}, Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildProviders_UnsupportedType(t *testing.T) {
	registry := config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"weird": {Type: "mystery", Model: "m"},
	})
	_, err := BuildProviders(registry)
	assert.Error(t, err)
}
