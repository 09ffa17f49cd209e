package telephony

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// twilioAPIBase is the Twilio REST endpoint template; %s is the account SID.
const twilioAPIBase = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"

// TwilioSender sends WhatsApp messages through the Twilio Messages API.
type TwilioSender struct {
	httpClient *http.Client
	baseURL    string
}

// NewTwilioSender creates a TwilioSender. timeout bounds each API call.
func NewTwilioSender(timeout time.Duration) *TwilioSender {
	return &TwilioSender{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    twilioAPIBase,
	}
}

// NewTwilioSenderWithBaseURL creates a TwilioSender against a custom endpoint
// (used by tests and regional deployments).
func NewTwilioSenderWithBaseURL(timeout time.Duration, baseURL string) *TwilioSender {
	return &TwilioSender{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// twilioResponse is the subset of the Messages API response we consume.
type twilioResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorCode    *int   `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	Code         int    `json:"code"`
	Message      string `json:"message"`
}

// Send posts one message to the Twilio Messages API using the tenant's
// credentials.
func (s *TwilioSender) Send(ctx context.Context, creds Credentials, input SendInput) (*Receipt, error) {
	if creds.AccountSID == "" || creds.AuthToken == "" {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("From", "whatsapp:"+creds.FromNumber)
	form.Set("To", "whatsapp:"+input.To)
	form.Set("Body", input.Content)
	if input.MediaURL != "" {
		form.Set("MediaUrl", input.MediaURL)
	}

	endpoint := fmt.Sprintf(s.baseURL, creds.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(creds.AccountSID, creds.AuthToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &SendError{Code: "transport", Message: err.Error(), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &SendError{Code: "transport", Message: err.Error(), Retryable: true}
	}

	var parsed twilioResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &SendError{
			Code:      fmt.Sprintf("http_%d", resp.StatusCode),
			Message:   "unparseable provider response",
			Retryable: resp.StatusCode >= 500,
		}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &SendError{Code: "rate_limited", Message: parsed.Message, Retryable: true}
	case resp.StatusCode >= 500:
		return nil, &SendError{Code: fmt.Sprintf("http_%d", resp.StatusCode), Message: parsed.Message, Retryable: true}
	case resp.StatusCode >= 400:
		return nil, &SendError{Code: fmt.Sprintf("http_%d", resp.StatusCode), Message: parsed.Message, Retryable: false}
	}

	return &Receipt{
		ProviderMessageID: parsed.SID,
		AcceptedAt:        time.Now().UTC(),
	}, nil
}

// ValidateSignature verifies Twilio's X-Twilio-Signature header: the HMAC-SHA1
// of the full request URL concatenated with the sorted POST parameters, keyed
// by the tenant's auth token, base64-encoded. Comparison is constant-time.
func ValidateSignature(authToken, requestURL string, params url.Values, signature string) bool {
	if authToken == "" || signature == "" {
		return false
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	builder.WriteString(requestURL)
	for _, k := range keys {
		for _, v := range params[k] {
			builder.WriteString(k)
			builder.WriteString(v)
		}
	}

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(builder.String()))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// ComputeSignature produces the signature ValidateSignature expects. Used by
// tests and by the credential-validation probe.
func ComputeSignature(authToken, requestURL string, params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	builder.WriteString(requestURL)
	for _, k := range keys {
		for _, v := range params[k] {
			builder.WriteString(k)
			builder.WriteString(v)
		}
	}

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(builder.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Probe verifies the given credentials by listing messages with a page size
// of one. Twilio rejects bad SID/token pairs with 401. Used by the
// credential-validation probe when a tenant saves telephony settings.
func (s *TwilioSender) Probe(ctx context.Context, creds Credentials) error {
	if creds.AccountSID == "" || creds.AuthToken == "" {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf(s.baseURL, creds.AccountSID) + "?PageSize=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build probe request: %w", err)
	}
	req.SetBasicAuth(creds.AccountSID, creds.AuthToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &SendError{Code: "transport", Message: err.Error(), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode >= 400 {
		return &SendError{
			Code:      fmt.Sprintf("http_%d", resp.StatusCode),
			Message:   "credentials rejected by provider",
			Retryable: resp.StatusCode >= 500,
		}
	}
	return nil
}
