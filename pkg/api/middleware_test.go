package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_EchoesCallerID(t *testing.T) {
	ts := newTestServer(t)

	req := jsonRequest(t, http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "req-abc-123")
	rec := ts.serve(req)

	assert.Equal(t, "req-abc-123", rec.Header().Get(requestIDHeader))
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(jsonRequest(t, http.MethodGet, "/health", nil))

	id := rec.Header().Get(requestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated request id should be a uuid, got %q", id)
}

func TestSecurityHeaders(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(jsonRequest(t, http.MethodGet, "/health", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func TestCORS_PlatformOrigin(t *testing.T) {
	ts := newTestServer(t)
	ts.cfg.System.AllowedOrigins = []string{"https://dashboard.sokochat.test"}
	// Re-register routes so the middleware sees the updated origin list.
	ts.Server = NewServer(ts.cfg, ts.db, Deps{Auth: ts.auth, Tenants: ts.tenants, Scopes: ts.scopes, Customers: ts.customers})

	req := jsonRequest(t, http.MethodOptions, "/v1/customers", nil)
	req.Header.Set("Origin", "https://dashboard.sokochat.test")
	rec := ts.serve(req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://dashboard.sokochat.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnknownOriginGetsNoHeader(t *testing.T) {
	ts := newTestServer(t)

	req := jsonRequest(t, http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := ts.serve(req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorEnvelope_Shape(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(jsonRequest(t, http.MethodGet, "/v1/tenants", nil))

	var resp ErrorResponse
	decodeJSON(t, rec, &resp)
	assert.NotEmpty(t, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}
