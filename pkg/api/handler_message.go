package api

import (
	"errors"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/pkg/dispatch"
	"github.com/sokochat/sokochat/pkg/services"
)

// sendMessageHandler handles POST /v1/messages/send.
func (s *Server) sendMessageHandler(c *echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := s.messages.Send(c.Request().Context(), services.SendInput{
		TenantID:        tenantFrom(c).ID,
		CustomerID:      req.CustomerID,
		Content:         req.Content,
		TemplateID:      req.TemplateID,
		TemplateContext: req.TemplateContext,
	})
	if err != nil {
		if errors.Is(err, dispatch.ErrRateLimited) {
			apiErr := mapServiceError(err)
			apiErr.RetryAfter = s.untilNextSpill(tenantFrom(c), time.Now())
			return apiErr
		}
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, sendResponse(result))
}

// scheduleMessageHandler handles POST /v1/messages/schedule.
func (s *Server) scheduleMessageHandler(c *echo.Context) error {
	var req scheduleMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sm, err := s.messages.Schedule(c.Request().Context(), services.ScheduleInput{
		TenantID:        tenantFrom(c).ID,
		CustomerID:      req.CustomerID,
		Content:         req.Content,
		TemplateID:      req.TemplateID,
		TemplateContext: req.TemplateContext,
		ScheduledAt:     req.ScheduledAt,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, sm)
}

// rateLimitStatusHandler handles GET /v1/messages/rate-limit-status.
func (s *Server) rateLimitStatusHandler(c *echo.Context) error {
	status, err := s.messages.RateLimitStatus(c.Request().Context(), tenantFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}

	warnThreshold := 0.8
	if s.cfg != nil && s.cfg.Dispatch != nil && s.cfg.Dispatch.WarningThreshold > 0 {
		warnThreshold = s.cfg.Dispatch.WarningThreshold
	}

	return c.JSON(http.StatusOK, &RateLimitStatusResponse{
		CurrentCount:            status.Used,
		DailyLimit:              status.Limit,
		Remaining:               status.Remaining,
		PercentageUsed:          status.Usage,
		WarningThresholdReached: status.Usage >= warnThreshold,
	})
}

// listConversationsHandler handles GET /v1/messages/conversations.
func (s *Server) listConversationsHandler(c *echo.Context) error {
	page, pageSize := pageParams(c)
	rows, total, err := s.conversations.List(c.Request().Context(), tenantFrom(c).ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPage(c, total, page, pageSize, rows))
}

// conversationMessagesHandler handles GET /v1/messages/conversations/:id/messages.
func (s *Server) conversationMessagesHandler(c *echo.Context) error {
	page, pageSize := pageParams(c)
	rows, total, err := s.conversations.Messages(c.Request().Context(), tenantFrom(c).ID, c.Param("id"), pageSize, (page-1)*pageSize)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPage(c, total, page, pageSize, rows))
}

// handoffHandler handles POST /v1/messages/conversations/:id/handoff.
func (s *Server) handoffHandler(c *echo.Context) error {
	conv, err := s.conversations.Handoff(c.Request().Context(), tenantFrom(c).ID, c.Param("id"), userFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, conv)
}

// releaseHandler handles POST /v1/messages/conversations/:id/release.
func (s *Server) releaseHandler(c *echo.Context) error {
	conv, err := s.conversations.Release(c.Request().Context(), tenantFrom(c).ID, c.Param("id"), userFrom(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, conv)
}

func sendResponse(result *dispatch.Result) *SendResponse {
	resp := &SendResponse{Outcome: string(result.Outcome)}
	if result.Message != nil {
		resp.MessageID = result.Message.ID
	}
	if result.Scheduled != nil {
		resp.ScheduledID = result.Scheduled.ID
	}
	return resp
}

// untilNextSpill is how long until queued sends resume: the spill hour
// tomorrow in the tenant's timezone.
func (s *Server) untilNextSpill(tn *ent.Tenant, now time.Time) time.Duration {
	spillHour := 8
	if s.cfg != nil && s.cfg.Dispatch != nil {
		spillHour = s.cfg.Dispatch.QueueSpillHour
	}
	loc, err := time.LoadLocation(tn.Timezone)
	if err != nil {
		loc = time.UTC
	}
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day()+1, spillHour, 0, 0, 0, loc)
	return next.Sub(now)
}
