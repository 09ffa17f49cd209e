package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/pkg/services"
)

// listProductsHandler handles GET /v1/catalog/products.
func (s *Server) listProductsHandler(c *echo.Context) error {
	page, pageSize := pageParams(c)
	rows, total, err := s.catalog.ListProducts(c.Request().Context(), tenantFrom(c).ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPage(c, total, page, pageSize, rows))
}

// createProductHandler handles POST /v1/catalog/products.
func (s *Server) createProductHandler(c *echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	variants := make([]services.VariantInput, 0, len(req.Variants))
	for _, v := range req.Variants {
		variants = append(variants, services.VariantInput{
			Label:      v.Label,
			PriceCents: v.PriceCents,
			Currency:   v.Currency,
			Stock:      v.Stock,
			Attributes: v.Attributes,
		})
	}

	p, err := s.catalog.CreateProduct(c.Request().Context(), userFrom(c).ID, services.CreateProductInput{
		TenantID:    tenantFrom(c).ID,
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		Variants:    variants,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

// getProductHandler handles GET /v1/catalog/products/:id.
func (s *Server) getProductHandler(c *echo.Context) error {
	p, err := s.catalog.GetProduct(c.Request().Context(), tenantFrom(c).ID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// archiveProductHandler handles POST /v1/catalog/products/:id/archive.
func (s *Server) archiveProductHandler(c *echo.Context) error {
	if err := s.catalog.ArchiveProduct(c.Request().Context(), tenantFrom(c).ID, c.Param("id"), userFrom(c).ID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// setStockHandler handles PATCH /v1/catalog/variants/:id/stock.
func (s *Server) setStockHandler(c *echo.Context) error {
	var req setStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	v, err := s.catalog.SetStock(c.Request().Context(), tenantFrom(c).ID, c.Param("id"), req.Stock)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, v)
}

// listKnowledgeHandler handles GET /v1/catalog/knowledge.
func (s *Server) listKnowledgeHandler(c *echo.Context) error {
	page, pageSize := pageParams(c)
	rows, total, err := s.catalog.ListKnowledgeEntries(c.Request().Context(), tenantFrom(c).ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPage(c, total, page, pageSize, rows))
}

// createKnowledgeHandler handles POST /v1/catalog/knowledge.
func (s *Server) createKnowledgeHandler(c *echo.Context) error {
	var req knowledgeEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	entry, err := s.catalog.CreateKnowledgeEntry(c.Request().Context(), tenantFrom(c).ID, req.Title, req.Body, req.Tags)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// deleteKnowledgeHandler handles DELETE /v1/catalog/knowledge/:id.
func (s *Server) deleteKnowledgeHandler(c *echo.Context) error {
	if err := s.catalog.DeleteKnowledgeEntry(c.Request().Context(), tenantFrom(c).ID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
