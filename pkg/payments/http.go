package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPInitiator starts payments through the aggregator's REST API. One
// instance serves all tenants; each call authenticates with the tenant's
// own API key.
type HTTPInitiator struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPInitiator creates an HTTPInitiator against the given gateway base
// URL. timeout bounds each API call.
func NewHTTPInitiator(timeout time.Duration, baseURL string) *HTTPInitiator {
	return &HTTPInitiator{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// initiateRequest is the JSON body posted to the gateway's charge endpoint.
type initiateRequest struct {
	Reference     string `json:"reference"`
	AmountCents   int64  `json:"amount_cents"`
	Currency      string `json:"currency"`
	CustomerPhone string `json:"customer_phone"`
	CallbackURL   string `json:"callback_url"`
}

// initiateResponse is the subset of the gateway response we consume.
type initiateResponse struct {
	ProviderRef  string `json:"provider_ref"`
	Instructions string `json:"instructions"`
	ExpiresAt    string `json:"expires_at"`
	Code         string `json:"code"`
	Message      string `json:"message"`
}

// Initiate posts one charge request to the gateway using the tenant's
// credentials. The reference we send is the payment request id, so the
// signed callback can be matched back without storing gateway state.
func (i *HTTPInitiator) Initiate(ctx context.Context, creds Credentials, input InitiateInput) (*InitiateResult, error) {
	if creds.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if i.baseURL == "" {
		return nil, &InitiateError{Code: "gateway_unconfigured", Message: "payment gateway URL not configured", Retryable: false}
	}

	payload, err := json.Marshal(initiateRequest{
		Reference:     input.PaymentRequestID,
		AmountCents:   input.AmountCents,
		Currency:      input.Currency,
		CustomerPhone: input.CustomerPhone,
		CallbackURL:   input.CallbackURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode charge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+"/charges", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build charge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.APIKey)
	// Charges are retried with the same reference; the gateway dedupes.
	req.Header.Set("Idempotency-Key", input.PaymentRequestID)

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, &InitiateError{Code: "transport", Message: err.Error(), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &InitiateError{Code: "transport", Message: err.Error(), Retryable: true}
	}

	var parsed initiateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &InitiateError{
			Code:      fmt.Sprintf("http_%d", resp.StatusCode),
			Message:   "unparseable gateway response",
			Retryable: resp.StatusCode >= 500,
		}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &InitiateError{Code: "rate_limited", Message: parsed.Message, Retryable: true}
	case resp.StatusCode >= 500:
		return nil, &InitiateError{Code: fmt.Sprintf("http_%d", resp.StatusCode), Message: parsed.Message, Retryable: true}
	case resp.StatusCode >= 400:
		return nil, &InitiateError{Code: fmt.Sprintf("http_%d", resp.StatusCode), Message: parsed.Message, Retryable: false}
	}

	result := &InitiateResult{
		ProviderRef:  parsed.ProviderRef,
		Instructions: parsed.Instructions,
	}
	if parsed.ExpiresAt != "" {
		if t, err := time.Parse(time.RFC3339, parsed.ExpiresAt); err == nil {
			result.ExpiresAt = t
		}
	}
	return result, nil
}

// Probe verifies the given credentials against the gateway's account
// endpoint without moving money. Used by the credential-validation probe
// when a tenant saves payment settings.
func (i *HTTPInitiator) Probe(ctx context.Context, creds Credentials) error {
	if creds.APIKey == "" {
		return ErrNotConfigured
	}
	if i.baseURL == "" {
		return &InitiateError{Code: "gateway_unconfigured", Message: "payment gateway URL not configured", Retryable: false}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.baseURL+"/account", nil)
	if err != nil {
		return fmt.Errorf("failed to build probe request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.APIKey)

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return &InitiateError{Code: "transport", Message: err.Error(), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode >= 400 {
		return &InitiateError{
			Code:      fmt.Sprintf("http_%d", resp.StatusCode),
			Message:   "credentials rejected by gateway",
			Retryable: resp.StatusCode >= 500,
		}
	}
	return nil
}
