package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	ts := newTestServer(t)
	cust := ts.seedCustomer(t, "+254700000001")

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/messages/send", map[string]interface{}{
		"customer_id": cust.ID,
		"content":     "Tuko na dress mpya leo!",
	})))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SendResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "sent", resp.Outcome)
	assert.NotEmpty(t, resp.MessageID)

	ts.sender.mu.Lock()
	defer ts.sender.mu.Unlock()
	require.Len(t, ts.sender.inputs, 1)
	assert.Equal(t, "+254700000001", ts.sender.inputs[0].To)
}

func TestSendMessage_ContentXORTemplate(t *testing.T) {
	ts := newTestServer(t)
	cust := ts.seedCustomer(t, "+254700000002")

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/messages/send", map[string]interface{}{
		"customer_id": cust.ID,
	})))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidationFailed, errorCode(t, rec))
}

func TestSendMessage_UnknownCustomer(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/messages/send", map[string]interface{}{
		"customer_id": "no-such-customer",
		"content":     "hello",
	})))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotFound, errorCode(t, rec))
}

func TestScheduleMessage(t *testing.T) {
	ts := newTestServer(t)
	cust := ts.seedCustomer(t, "+254700000003")

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/messages/schedule", map[string]interface{}{
		"customer_id":  cust.ID,
		"content":      "Kumbuka appointment yako kesho.",
		"scheduled_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})))

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestScheduleMessage_PastTimeRejected(t *testing.T) {
	ts := newTestServer(t)
	cust := ts.seedCustomer(t, "+254700000004")

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/messages/schedule", map[string]interface{}{
		"customer_id":  cust.ID,
		"content":      "too late",
		"scheduled_at": time.Now().Add(-time.Hour).Format(time.RFC3339),
	})))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidationFailed, errorCode(t, rec))
}

func TestRateLimitStatus_WireShape(t *testing.T) {
	ts := newTestServer(t)
	cust := ts.seedCustomer(t, "+254700000005")

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/messages/send", map[string]interface{}{
		"customer_id": cust.ID,
		"content":     "habari",
	})))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/messages/rate-limit-status", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var status RateLimitStatusResponse
	decodeJSON(t, rec, &status)
	assert.Equal(t, 1, status.CurrentCount)
	assert.Equal(t, testDailyLimit, status.DailyLimit)
	assert.Equal(t, testDailyLimit-1, status.Remaining)
	assert.False(t, status.WarningThresholdReached)
	assert.InDelta(t, 1.0/float64(testDailyLimit), status.PercentageUsed, 0.001)
}

func TestConversationLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	cust := ts.seedCustomer(t, "+254700000006")

	// A send opens the conversation.
	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/messages/send", map[string]interface{}{
		"customer_id": cust.ID,
		"content":     "karibu",
	})))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/messages/conversations", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var page Page
	decodeJSON(t, rec, &page)
	require.Equal(t, 1, page.Count)
	convs, ok := page.Results.([]interface{})
	require.True(t, ok)
	convID := convs[0].(map[string]interface{})["id"].(string)

	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/messages/conversations/"+convID+"/handoff", nil)))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodPost, "/v1/messages/conversations/"+convID+"/release", nil)))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/messages/conversations/"+convID+"/messages", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &page)
	assert.Equal(t, 1, page.Count)
}

func TestPagination_Links(t *testing.T) {
	ts := newTestServer(t)
	for i := 0; i < 3; i++ {
		ts.seedCustomer(t, "+25470000010"+string(rune('0'+i)))
	}

	rec := ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/customers?page=1&page_size=2", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var page Page
	decodeJSON(t, rec, &page)
	assert.Equal(t, 3, page.Count)
	require.NotNil(t, page.Next)
	assert.Contains(t, *page.Next, "page=2")
	assert.Nil(t, page.Previous)

	rec = ts.serve(ts.asTenant(jsonRequest(t, http.MethodGet, "/v1/customers?page=2&page_size=2", nil)))
	decodeJSON(t, rec, &page)
	assert.Nil(t, page.Next)
	require.NotNil(t, page.Previous)
	assert.Contains(t, *page.Previous, "page=1")
}
