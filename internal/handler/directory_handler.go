package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kubaxi/service-funnel/internal/application"
	"github.com/kubaxi/service-funnel/internal/response"
)

// DirectoryHandler handles HTTP requests for location typeahead lookups.
type DirectoryHandler struct {
	service *application.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(service *application.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// RegisterRoutes registers the directory routes on the given router group.
func (h *DirectoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/v1/locations/search", h.Search)
}

// Search handles GET /api/v1/locations/search?q=. Always 200; short or
// failing queries come back as an empty list.
func (h *DirectoryHandler) Search(c *gin.Context) {
	locations := h.service.Search(c.Request.Context(), c.Query("q"))
	response.Success(c, locations)
}
