package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kubaxi/service-funnel/internal/application"
	"github.com/kubaxi/service-funnel/internal/domain/trip"
	"github.com/kubaxi/service-funnel/internal/response"
)

// QuoteHandler handles HTTP requests for trip quotes.
type QuoteHandler struct {
	service *application.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(service *application.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// RegisterRoutes registers the quote routes on the given router group.
func (h *QuoteHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/v1/quotes", h.Quote)
}

type quoteRequest struct {
	OriginID      string `json:"origin_id" binding:"required"`
	DestinationID string `json:"destination_id" binding:"required"`
	Mode          string `json:"mode" binding:"required"`
	PartySize     int    `json:"party_size"`
}

// Quote handles POST /api/v1/quotes. Domain failures come back as 422 with a
// stable error code so the client can distinguish them.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	originID, err := uuid.Parse(req.OriginID)
	if err != nil {
		response.BadRequest(c, "invalid origin ID")
		return
	}
	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		response.BadRequest(c, "invalid destination ID")
		return
	}

	mode, err := trip.ParseServiceMode(req.Mode)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), originID, destinationID, mode, req.PartySize)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrInvalidPartySize):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "code": "invalid_party_size", "error": err.Error()})
		case errors.Is(err, trip.ErrUnresolvableRoute):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "code": "unresolvable_route", "error": err.Error()})
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, quote)
}
