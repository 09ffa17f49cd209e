package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCreds() Credentials {
	return Credentials{APIKey: "pk_test_key", WebhookSecret: "whsec"}
}

func testInput() InitiateInput {
	return InitiateInput{
		PaymentRequestID: "preq-1",
		OrderID:          "order-1",
		AmountCents:      250000,
		Currency:         "KES",
		CustomerPhone:    "+254722000001",
		CallbackURL:      "https://api.sokochat.test/v1/webhooks/payments/mpesa/?tenant=t1",
	}
}

func TestHTTPInitiator_Initiate(t *testing.T) {
	var got initiateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/charges", r.URL.Path)
		assert.Equal(t, "Bearer pk_test_key", r.Header.Get("Authorization"))
		assert.Equal(t, "preq-1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]string{
			"provider_ref": "mp-ref-77",
			"instructions": "Approve the prompt on your phone.",
			"expires_at":   time.Now().Add(10 * time.Minute).Format(time.RFC3339),
		})
	}))
	defer srv.Close()

	init := NewHTTPInitiator(5*time.Second, srv.URL)
	result, err := init.Initiate(context.Background(), testCreds(), testInput())
	require.NoError(t, err)

	assert.Equal(t, "mp-ref-77", result.ProviderRef)
	assert.Equal(t, "Approve the prompt on your phone.", result.Instructions)
	assert.False(t, result.ExpiresAt.IsZero())

	assert.Equal(t, "preq-1", got.Reference)
	assert.Equal(t, int64(250000), got.AmountCents)
	assert.Equal(t, "KES", got.Currency)
}

func TestHTTPInitiator_RateLimitedIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "slow down"})
	}))
	defer srv.Close()

	init := NewHTTPInitiator(5*time.Second, srv.URL)
	_, err := init.Initiate(context.Background(), testCreds(), testInput())

	var initErr *InitiateError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "rate_limited", initErr.Code)
	assert.True(t, initErr.Retryable)
}

func TestHTTPInitiator_ClientErrorNotRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"code": "invalid_phone", "message": "bad msisdn"})
	}))
	defer srv.Close()

	init := NewHTTPInitiator(5*time.Second, srv.URL)
	_, err := init.Initiate(context.Background(), testCreds(), testInput())

	var initErr *InitiateError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "http_400", initErr.Code)
	assert.False(t, initErr.Retryable)
	assert.False(t, IsRetryable(err))
}

func TestHTTPInitiator_ServerErrorRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	init := NewHTTPInitiator(5*time.Second, srv.URL)
	_, err := init.Initiate(context.Background(), testCreds(), testInput())

	assert.True(t, IsRetryable(err))
}

func TestHTTPInitiator_MissingKey(t *testing.T) {
	init := NewHTTPInitiator(5*time.Second, "https://gateway.example")
	_, err := init.Initiate(context.Background(), Credentials{}, testInput())
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestHTTPInitiator_Probe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer pk_test_key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	init := NewHTTPInitiator(5*time.Second, srv.URL)
	assert.NoError(t, init.Probe(context.Background(), testCreds()))

	err := init.Probe(context.Background(), Credentials{APIKey: "wrong"})
	var initErr *InitiateError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "http_401", initErr.Code)
	assert.False(t, initErr.Retryable)
}
