// Package llm provides the LLM provider contract, SDK-backed adapters, and
// the router + failover manager that picks a provider chain per turn and
// walks it with circuit-breaker health tracking.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Role identifies the author of a prompt message.
type Role string

// Prompt message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one prompt message.
type Message struct {
	Role    Role
	Content string
}

// Request is a single completion call. Model overrides the provider's
// configured default when set.
type Request struct {
	Messages    []Message
	Model       string
	MaxTokens   int
	Temperature *float64
}

// Response is a completed LLM call with usage accounting.
type Response struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
	CostEstimate float64

	// Confidence is the model's self-reported answer confidence in [0, 1],
	// nil when the provider does not report one.
	Confidence *float64
}

// Provider is one LLM backend behind a uniform call contract.
type Provider interface {
	// Name returns the registry name this provider was configured under.
	Name() string

	// Complete performs one completion. The context carries the call deadline.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// ErrAllProvidersFailed indicates every candidate in the failover chain was
// skipped or exhausted. The orchestrator degrades to the fallback/handoff path.
var ErrAllProvidersFailed = errors.New("all LLM providers failed")

// ProviderError is a classified provider failure. Retryable errors (rate
// limits, transient server errors) are retried with backoff before the
// manager advances to the next candidate.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Retryable  bool
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// IsRetryable reports whether err is worth retrying against the same provider.
func IsRetryable(err error) bool {
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		return provErr.Retryable
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus classifies HTTP status codes shared by both SDK adapters.
func retryableStatus(status int) bool {
	return status == 429 || status == 408 || status >= 500
}
