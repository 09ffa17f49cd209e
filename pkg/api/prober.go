package api

import (
	"context"

	"github.com/sokochat/sokochat/pkg/payments"
	"github.com/sokochat/sokochat/pkg/services"
	"github.com/sokochat/sokochat/pkg/telephony"
)

// TelephonyProber verifies telephony credentials against the provider.
type TelephonyProber interface {
	Probe(ctx context.Context, creds telephony.Credentials) error
}

// PaymentsProber verifies payment credentials against the gateway.
type PaymentsProber interface {
	Probe(ctx context.Context, creds payments.Credentials) error
}

// ProviderProber live-checks credentials before they are stored. Providers
// without a cheap verification call (commerce, llm) are accepted as-is;
// validation still happens on first use.
type ProviderProber struct {
	Telephony TelephonyProber
	Payments  PaymentsProber
}

func (p *ProviderProber) Probe(ctx context.Context, provider string, payload map[string]string) error {
	switch provider {
	case services.IntegrationTelephony:
		if p.Telephony == nil {
			return nil
		}
		return p.Telephony.Probe(ctx, telephony.Credentials{
			AccountSID: payload["account_sid"],
			AuthToken:  payload["auth_token"],
			FromNumber: payload["from_number"],
		})
	case services.IntegrationPayments:
		if p.Payments == nil {
			return nil
		}
		return p.Payments.Probe(ctx, payments.Credentials{
			APIKey: payload["api_key"],
		})
	default:
		return nil
	}
}
