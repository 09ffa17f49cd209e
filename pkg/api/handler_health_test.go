package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(jsonRequest(t, http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
}

func TestVersion(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(jsonRequest(t, http.MethodGet, "/version", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp VersionResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "sokochat", resp.Name)
	assert.NotEmpty(t, resp.Version)
}
