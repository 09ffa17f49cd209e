package api

import (
	"strconv"

	echo "github.com/labstack/echo/v5"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// Page is the list envelope used by every collection endpoint.
type Page struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// pageParams parses page and page_size query parameters. Out-of-range values
// fall back to defaults rather than erroring.
func pageParams(c *echo.Context) (page, pageSize int) {
	page, pageSize = 1, defaultPageSize
	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= maxPageSize {
			pageSize = ps
		}
	}
	return page, pageSize
}

// newPage builds the envelope with next/previous links derived from the
// request URL.
func newPage(c *echo.Context, count, page, pageSize int, results interface{}) *Page {
	p := &Page{Count: count, Results: results}
	if page*pageSize < count {
		p.Next = pageLink(c, page+1, pageSize)
	}
	if page > 1 {
		p.Previous = pageLink(c, page-1, pageSize)
	}
	return p
}

func pageLink(c *echo.Context, page, pageSize int) *string {
	u := *c.Request().URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()
	link := u.String()
	return &link
}

// TokenResponse is returned by login and register.
type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// TenantCreatedResponse carries the one-time plaintext API key.
type TenantCreatedResponse struct {
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Status   string `json:"status"`
	// APIKey is shown exactly once; only its hash is stored.
	APIKey string `json:"api_key"`
}

// RateLimitStatusResponse is the wire shape of the quota endpoint.
type RateLimitStatusResponse struct {
	CurrentCount            int     `json:"current_count"`
	DailyLimit              int     `json:"daily_limit"`
	Remaining               int     `json:"remaining"`
	PercentageUsed          float64 `json:"percentage_used"`
	WarningThresholdReached bool    `json:"warning_threshold_reached"`
}

// SendResponse reports what the dispatcher did with a send request.
type SendResponse struct {
	Outcome     string `json:"outcome"`
	MessageID   string `json:"message_id,omitempty"`
	ScheduledID string `json:"scheduled_id,omitempty"`
}

// WebhookAck is the fast 200 body returned to webhook callers.
type WebhookAck struct {
	Status string `json:"status"`
}

// HealthCheck is the status of one component in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}
