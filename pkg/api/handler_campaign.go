package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/ent"
	entcampaign "github.com/sokochat/sokochat/ent/campaign"
	"github.com/sokochat/sokochat/pkg/campaign"
)

// listCampaignsHandler handles GET /v1/campaigns.
func (s *Server) listCampaignsHandler(c *echo.Context) error {
	page, pageSize := pageParams(c)
	tenantID := tenantFrom(c).ID

	q := s.db.Campaign.Query().Where(entcampaign.TenantID(tenantID))
	total, err := q.Clone().Count(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	rows, err := q.
		Order(ent.Desc(entcampaign.FieldCreatedAt)).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPage(c, total, page, pageSize, rows))
}

// createCampaignHandler handles POST /v1/campaigns.
func (s *Server) createCampaignHandler(c *echo.Context) error {
	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := s.campaigns.Create(c.Request().Context(), campaign.CreateInput{
		TenantID:    tenantFrom(c).ID,
		Name:        req.Name,
		Content:     req.Content,
		IsABTest:    req.IsABTest,
		Variants:    req.Variants,
		Targeting:   req.Targeting,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// executeCampaignHandler handles POST /v1/campaigns/:id/execute.
func (s *Server) executeCampaignHandler(c *echo.Context) error {
	result, err := s.campaigns.Execute(c.Request().Context(), tenantFrom(c).ID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// campaignReportHandler handles GET /v1/campaigns/:id/report.
func (s *Server) campaignReportHandler(c *echo.Context) error {
	report, err := s.campaigns.Report(c.Request().Context(), tenantFrom(c).ID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, report)
}
