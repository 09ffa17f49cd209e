package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader carries the provider callback signature:
// "t=<unix>,v1=<hex hmac-sha256 of "<unix>.<body>">".
const SignatureHeader = "X-Payment-Signature"

// CallbackStatus is the outcome a provider callback reports.
type CallbackStatus string

// Callback outcomes.
const (
	CallbackSucceeded CallbackStatus = "succeeded"
	CallbackFailed    CallbackStatus = "failed"
	CallbackExpired   CallbackStatus = "expired"
)

// Callback is a verified provider status callback.
type Callback struct {
	ProviderRef      string         `json:"provider_ref"`
	PaymentRequestID string         `json:"payment_request_id"`
	Status           CallbackStatus `json:"status"`
	FailureReason    string         `json:"failure_reason,omitempty"`
	// EventID deduplicates provider retries of the same callback.
	EventID string `json:"event_id"`
}

var (
	// ErrInvalidSignature indicates the callback signature did not verify.
	// Such callbacks are logged and dropped, never processed.
	ErrInvalidSignature = errors.New("callback signature invalid")

	// ErrStaleTimestamp indicates the signed timestamp is outside the
	// accepted tolerance (replay protection).
	ErrStaleTimestamp = errors.New("callback timestamp outside tolerance")
)

// VerifyCallback checks the signature header against the raw body and the
// tenant's webhook secret, enforces the timestamp tolerance, and parses the
// callback payload.
func VerifyCallback(secret string, body []byte, header string, tolerance time.Duration, now time.Time) (*Callback, error) {
	timestamp, signature, err := parseSignatureHeader(header)
	if err != nil {
		return nil, err
	}

	if tolerance > 0 {
		age := now.Sub(time.Unix(timestamp, 0))
		if age > tolerance || age < -tolerance {
			return nil, ErrStaleTimestamp
		}
	}

	signed := strconv.FormatInt(timestamp, 10) + "." + string(body)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signed))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, ErrInvalidSignature
	}

	var cb Callback
	if err := json.Unmarshal(body, &cb); err != nil {
		return nil, fmt.Errorf("failed to parse callback payload: %w", err)
	}
	if cb.ProviderRef == "" || cb.Status == "" {
		return nil, fmt.Errorf("callback payload missing provider_ref or status")
	}
	return &cb, nil
}

// SignCallback produces the header VerifyCallback expects. Used by tests.
func SignCallback(secret string, body []byte, at time.Time) string {
	timestamp := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + "." + string(body)))
	return "t=" + timestamp + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func parseSignatureHeader(header string) (int64, string, error) {
	var timestamp int64
	var signature string
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, "", ErrInvalidSignature
			}
			timestamp = parsed
		case "v1":
			signature = value
		}
	}
	if timestamp == 0 || signature == "" {
		return 0, "", ErrInvalidSignature
	}
	return timestamp, signature, nil
}
