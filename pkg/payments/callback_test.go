package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

func validBody() []byte {
	return []byte(`{"provider_ref":"pay_123","payment_request_id":"pr_1","status":"succeeded","event_id":"evt_1"}`)
}

func TestVerifyCallback_Valid(t *testing.T) {
	now := time.Now()
	body := validBody()
	header := SignCallback(testSecret, body, now)

	cb, err := VerifyCallback(testSecret, body, header, 5*time.Minute, now)
	require.NoError(t, err)

	assert.Equal(t, "pay_123", cb.ProviderRef)
	assert.Equal(t, "pr_1", cb.PaymentRequestID)
	assert.Equal(t, CallbackSucceeded, cb.Status)
	assert.Equal(t, "evt_1", cb.EventID)
}

func TestVerifyCallback_WrongSecret(t *testing.T) {
	now := time.Now()
	body := validBody()
	header := SignCallback("other-secret", body, now)

	_, err := VerifyCallback(testSecret, body, header, 5*time.Minute, now)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyCallback_TamperedBody(t *testing.T) {
	now := time.Now()
	header := SignCallback(testSecret, validBody(), now)
	tampered := []byte(`{"provider_ref":"pay_123","payment_request_id":"pr_1","status":"failed","event_id":"evt_1"}`)

	_, err := VerifyCallback(testSecret, tampered, header, 5*time.Minute, now)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyCallback_StaleTimestamp(t *testing.T) {
	now := time.Now()
	body := validBody()

	t.Run("too old", func(t *testing.T) {
		header := SignCallback(testSecret, body, now.Add(-10*time.Minute))
		_, err := VerifyCallback(testSecret, body, header, 5*time.Minute, now)
		assert.ErrorIs(t, err, ErrStaleTimestamp)
	})

	t.Run("from the future", func(t *testing.T) {
		header := SignCallback(testSecret, body, now.Add(10*time.Minute))
		_, err := VerifyCallback(testSecret, body, header, 5*time.Minute, now)
		assert.ErrorIs(t, err, ErrStaleTimestamp)
	})
}

func TestVerifyCallback_MalformedHeader(t *testing.T) {
	now := time.Now()
	body := validBody()

	for _, header := range []string{"", "garbage", "t=abc,v1=00", "v1=00", "t=123"} {
		_, err := VerifyCallback(testSecret, body, header, 5*time.Minute, now)
		assert.ErrorIs(t, err, ErrInvalidSignature, "header %q", header)
	}
}

func TestVerifyCallback_InvalidPayload(t *testing.T) {
	now := time.Now()

	t.Run("not json", func(t *testing.T) {
		body := []byte("not json")
		header := SignCallback(testSecret, body, now)
		_, err := VerifyCallback(testSecret, body, header, 5*time.Minute, now)
		require.Error(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		body := []byte(`{"event_id":"evt_1"}`)
		header := SignCallback(testSecret, body, now)
		_, err := VerifyCallback(testSecret, body, header, 5*time.Minute, now)
		require.Error(t, err)
	})
}
