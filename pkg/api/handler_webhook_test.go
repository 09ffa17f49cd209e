package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent/customer"
	"github.com/sokochat/sokochat/pkg/payments"
	"github.com/sokochat/sokochat/pkg/services"
	"github.com/sokochat/sokochat/pkg/telephony"
)

func (ts *testServer) twilioForm(t *testing.T, params url.Values, sign bool) *http.Request {
	t.Helper()
	path := "/v1/webhooks/twilio/?tenant=" + ts.tenant.ID
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(params.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sign {
		// The signature covers the full public URL the provider was given.
		requestURL := "https://api.sokochat.test" + path
		req.Header.Set("X-Twilio-Signature",
			telephony.ComputeSignature("twilio-auth-token", requestURL, params))
	}
	return req
}

func TestTwilioWebhook(t *testing.T) {
	ts := newTestServer(t)

	params := url.Values{}
	params.Set("MessageSid", "SM123")
	params.Set("From", "whatsapp:+254722000001")
	params.Set("Body", "Niko na swali kuhusu order yangu")

	rec := ts.serve(ts.twilioForm(t, params, true))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var ack WebhookAck
	decodeJSON(t, rec, &ack)
	assert.Equal(t, "received", ack.Status)

	// Ingest runs off the request path; the sender is auto-provisioned.
	require.Eventually(t, func() bool {
		n, err := ts.client.Customer.Query().
			Where(customer.TenantID(ts.tenant.ID), customer.PhoneE164("+254722000001")).
			Count(context.Background())
		return err == nil && n == 1
	}, 5*time.Second, 50*time.Millisecond)
}

func TestTwilioWebhook_BadSignature(t *testing.T) {
	ts := newTestServer(t)

	params := url.Values{}
	params.Set("MessageSid", "SM124")
	params.Set("From", "whatsapp:+254722000002")
	params.Set("Body", "hello")

	req := ts.twilioForm(t, params, false)
	req.Header.Set("X-Twilio-Signature", "bm90IGEgcmVhbCBzaWduYXR1cmU=")
	rec := ts.serve(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeAuthenticationRequired, errorCode(t, rec))
}

func TestTwilioWebhook_MissingTenantParam(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/twilio/", strings.NewReader("Body=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := ts.serve(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidationFailed, errorCode(t, rec))
}

func (ts *testServer) paymentCallback(t *testing.T, cb payments.Callback, secret string) *http.Request {
	t.Helper()
	body, err := json.Marshal(cb)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost,
		"/v1/webhooks/payments/mpesa/?tenant="+ts.tenant.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(payments.SignatureHeader, payments.SignCallback(secret, body, time.Now()))
	return req
}

func TestPaymentWebhook_UnknownRef(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.settings.UpdateIntegration(context.Background(), ts.tenant.ID, ts.owner.ID,
		services.IntegrationPayments, map[string]string{
			"api_key":        "pk_test_key",
			"webhook_secret": "whsec_test",
		}))

	rec := ts.serve(ts.paymentCallback(t, payments.Callback{
		ProviderRef:      "no-such-ref",
		PaymentRequestID: "also-unknown",
		Status:           payments.CallbackSucceeded,
		EventID:          "evt-1",
	}, "whsec_test"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotFound, errorCode(t, rec))
}

func TestPaymentWebhook_BadSignature(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.settings.UpdateIntegration(context.Background(), ts.tenant.ID, ts.owner.ID,
		services.IntegrationPayments, map[string]string{
			"api_key":        "pk_test_key",
			"webhook_secret": "whsec_test",
		}))

	rec := ts.serve(ts.paymentCallback(t, payments.Callback{
		ProviderRef: "ref-1",
		Status:      payments.CallbackSucceeded,
		EventID:     "evt-2",
	}, "wrong-secret"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeAuthenticationRequired, errorCode(t, rec))
}

func TestPaymentWebhook_UnconfiguredTenant(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(ts.paymentCallback(t, payments.Callback{
		ProviderRef: "ref-1",
		Status:      payments.CallbackSucceeded,
		EventID:     "evt-3",
	}, "whsec_test"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
