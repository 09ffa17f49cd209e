// Package telephony defines the outbound WhatsApp send capability and inbound
// webhook verification. The platform talks to the telephony provider only
// through the Sender contract; per-tenant credentials come decrypted from
// TenantSettings and never outlive the call.
package telephony

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Credentials are the decrypted telephony credentials of one tenant.
type Credentials struct {
	AccountSID  string `json:"account_sid"`
	AuthToken   string `json:"auth_token"`
	FromNumber  string `json:"from_number"`
	WebhookSecret string `json:"webhook_secret,omitempty"`
}

// SendInput is one outbound WhatsApp message.
type SendInput struct {
	To      string // E.164 destination
	Content string
	MediaURL string // optional
}

// Receipt is the provider's acknowledgement of an accepted send.
type Receipt struct {
	ProviderMessageID string
	AcceptedAt        time.Time
}

// Sender delivers WhatsApp messages through the telephony provider.
type Sender interface {
	Send(ctx context.Context, creds Credentials, input SendInput) (*Receipt, error)
}

// ErrNotConfigured indicates the tenant has no telephony credentials stored.
var ErrNotConfigured = errors.New("telephony credentials not configured")

// SendError classifies a failed send. Retryable failures (rate limits,
// transient provider errors) back off and retry; permanent failures
// (bad number, blocked recipient) are recorded and dropped.
type SendError struct {
	Code      string
	Message   string
	Retryable bool
}

func (e *SendError) Error() string {
	return fmt.Sprintf("telephony send failed (%s): %s", e.Code, e.Message)
}

// IsRetryable reports whether err is a retryable send failure.
func IsRetryable(err error) bool {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr.Retryable
	}
	// Timeouts and cancellations from the transport are worth retrying.
	return errors.Is(err, context.DeadlineExceeded)
}
