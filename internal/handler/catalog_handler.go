package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kubaxi/service-funnel/internal/application"
	"github.com/kubaxi/service-funnel/internal/response"
)

// CatalogHandler handles HTTP requests for the excursion and package catalog.
type CatalogHandler struct {
	service *application.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes registers the catalog routes on the given router group.
func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/v1/excursions/spots", h.ExcursionSpots)
	r.GET("/api/v1/excursions", h.Excursions)
	r.GET("/api/v1/packages", h.Packages)
}

// ExcursionSpots handles GET /api/v1/excursions/spots.
func (h *CatalogHandler) ExcursionSpots(c *gin.Context) {
	response.Success(c, h.service.ExcursionSpots(c.Request.Context()))
}

// Excursions handles GET /api/v1/excursions?spot=.
func (h *CatalogHandler) Excursions(c *gin.Context) {
	spot := c.Query("spot")
	if spot == "" {
		response.BadRequest(c, "spot is required")
		return
	}
	response.Success(c, h.service.Excursions(c.Request.Context(), spot))
}

// Packages handles GET /api/v1/packages.
func (h *CatalogHandler) Packages(c *gin.Context) {
	response.Success(c, h.service.Packages(c.Request.Context()))
}
