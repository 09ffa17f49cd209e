package telephony

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCreds() Credentials {
	return Credentials{
		AccountSID: "AC0123456789",
		AuthToken:  "token-secret",
		FromNumber: "+15550001111",
	}
}

func TestTwilioSender_Send(t *testing.T) {
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC0123456789", user)
		assert.Equal(t, "token-secret", pass)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
	}))
	defer server.Close()

	sender := NewTwilioSenderWithBaseURL(5*time.Second, server.URL+"/accounts/%s/messages")
	receipt, err := sender.Send(context.Background(), testCreds(), SendInput{
		To:      "+254700000001",
		Content: "Your order is confirmed",
	})
	require.NoError(t, err)

	assert.Equal(t, "SM123", receipt.ProviderMessageID)
	assert.WithinDuration(t, time.Now(), receipt.AcceptedAt, 5*time.Second)
	assert.Equal(t, "whatsapp:+15550001111", gotForm.Get("From"))
	assert.Equal(t, "whatsapp:+254700000001", gotForm.Get("To"))
	assert.Equal(t, "Your order is confirmed", gotForm.Get("Body"))
}

func TestTwilioSender_ErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantRetryable bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"code":20429,"message":"Too Many Requests"}`, wantRetryable: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{"code":20500,"message":"Internal Server Error"}`, wantRetryable: true},
		{name: "invalid number", status: http.StatusBadRequest, body: `{"code":21211,"message":"Invalid 'To' Phone Number"}`, wantRetryable: false},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"code":20003,"message":"Authenticate"}`, wantRetryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			sender := NewTwilioSenderWithBaseURL(5*time.Second, server.URL+"/accounts/%s/messages")
			_, err := sender.Send(context.Background(), testCreds(), SendInput{To: "+254700000001", Content: "hi"})
			require.Error(t, err)
			assert.Equal(t, tt.wantRetryable, IsRetryable(err))
		})
	}
}

func TestTwilioSender_MissingCredentials(t *testing.T) {
	sender := NewTwilioSender(time.Second)
	_, err := sender.Send(context.Background(), Credentials{}, SendInput{To: "+254700000001", Content: "hi"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestValidateSignature(t *testing.T) {
	const (
		authToken  = "12345"
		requestURL = "https://example.com/v1/webhooks/twilio/"
	)
	params := url.Values{
		"From":       []string{"whatsapp:+254700000001"},
		"Body":       []string{"hello"},
		"MessageSid": []string{"SM123"},
	}

	signature := ComputeSignature(authToken, requestURL, params)

	t.Run("valid", func(t *testing.T) {
		assert.True(t, ValidateSignature(authToken, requestURL, params, signature))
	})

	t.Run("wrong token", func(t *testing.T) {
		assert.False(t, ValidateSignature("other", requestURL, params, signature))
	})

	t.Run("tampered params", func(t *testing.T) {
		tampered := url.Values{}
		for k, v := range params {
			tampered[k] = v
		}
		tampered.Set("Body", "transfer all funds")
		assert.False(t, ValidateSignature(authToken, requestURL, tampered, signature))
	})

	t.Run("different url", func(t *testing.T) {
		assert.False(t, ValidateSignature(authToken, "https://evil.example.com/", params, signature))
	})

	t.Run("empty signature", func(t *testing.T) {
		assert.False(t, ValidateSignature(authToken, requestURL, params, ""))
	})
}

func TestTwilioSender_Probe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "1", r.URL.Query().Get("PageSize"))

		_, pass, ok := r.BasicAuth()
		require.True(t, ok)
		if pass != "token-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"messages":[]}`))
	}))
	defer server.Close()

	sender := NewTwilioSenderWithBaseURL(5*time.Second, server.URL+"/accounts/%s/messages")
	assert.NoError(t, sender.Probe(context.Background(), testCreds()))

	bad := testCreds()
	bad.AuthToken = "wrong"
	err := sender.Probe(context.Background(), bad)
	require.Error(t, err)
	assert.False(t, IsRetryable(err))
}

func TestTwilioSender_ProbeMissingCredentials(t *testing.T) {
	sender := NewTwilioSender(time.Second)
	assert.ErrorIs(t, sender.Probe(context.Background(), Credentials{}), ErrNotConfigured)
}
