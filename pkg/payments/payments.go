// Package payments defines the payment-initiation capability and the
// verification of provider-signed status callbacks. Payment providers are
// external; the checkout state machine only sees this contract.
package payments

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Credentials are the decrypted payment credentials of one tenant.
type Credentials struct {
	APIKey        string `json:"api_key"`
	WebhookSecret string `json:"webhook_secret"`
}

// InitiateInput describes one payment to start.
type InitiateInput struct {
	PaymentRequestID string
	OrderID          string
	AmountCents      int64
	Currency         string
	CustomerPhone    string
	CallbackURL      string
}

// InitiateResult is the provider's acknowledgement: a reference the callback
// will carry, and an optional URL or instruction to forward to the customer.
type InitiateResult struct {
	ProviderRef  string
	Instructions string
	ExpiresAt    time.Time
}

// Initiator starts a payment with the external provider.
type Initiator interface {
	Initiate(ctx context.Context, creds Credentials, input InitiateInput) (*InitiateResult, error)
}

// ErrNotConfigured indicates the tenant has no payment credentials stored.
var ErrNotConfigured = errors.New("payment credentials not configured")

// InitiateError classifies a failed initiation. Retryable failures get one
// retry with backoff before the checkout transitions to Failed.
type InitiateError struct {
	Code      string
	Message   string
	Retryable bool
}

func (e *InitiateError) Error() string {
	return fmt.Sprintf("payment initiation failed (%s): %s", e.Code, e.Message)
}

// IsRetryable reports whether err is a retryable initiation failure.
func IsRetryable(err error) bool {
	var initErr *InitiateError
	if errors.As(err, &initErr) {
		return initErr.Retryable
	}
	return errors.Is(err, context.DeadlineExceeded)
}
