package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kubaxi/service-funnel/internal/application"
	"github.com/kubaxi/service-funnel/internal/domain/booking"
	"github.com/kubaxi/service-funnel/internal/domain/catalog"
	"github.com/kubaxi/service-funnel/internal/domain/trip"
	"github.com/kubaxi/service-funnel/internal/response"
)

// RequestHandler handles HTTP requests for one-shot booking submissions.
type RequestHandler struct {
	service *application.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *application.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes registers the request routes on the given router group.
func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/api/v1/requests")
	{
		requests.POST("/taxi", h.SubmitTaxi)
		requests.POST("/excursion", h.SubmitExcursion)
		requests.POST("/package", h.SubmitPackage)
		requests.POST("/custom", h.SubmitCustom)
	}
}

type taxiRequestBody struct {
	CustomerName string            `json:"nombre"`
	Phone        string            `json:"telefono"`
	Origin       *catalog.Location `json:"origen"`
	Destination  *catalog.Location `json:"destino"`
	Mode         string            `json:"tipo_taxi"`
	PartySize    int               `json:"pasajeros"`
	Date         string            `json:"fecha"`
	Window       string            `json:"horario"`
	Time         string            `json:"hora"`
	Quote        *trip.Quote       `json:"quote"`
}

// SubmitTaxi handles POST /api/v1/requests/taxi.
func (h *RequestHandler) SubmitTaxi(c *gin.Context) {
	var body taxiRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SubmitTaxi(c.Request.Context(), application.TaxiRequest{
		CustomerName: body.CustomerName,
		Phone:        body.Phone,
		Origin:       body.Origin,
		Destination:  body.Destination,
		Mode:         trip.ServiceMode(body.Mode),
		PartySize:    body.PartySize,
		Date:         body.Date,
		Window:       trip.HalfDayWindow(body.Window),
		Time:         body.Time,
		Quote:        body.Quote,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

type excursionRequestBody struct {
	Name      string `json:"nombre"`
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
	Excursion string `json:"excursion"`
	Date      string `json:"fecha"`
	People    int    `json:"personas"`
	Comments  string `json:"comentarios"`
}

// SubmitExcursion handles POST /api/v1/requests/excursion.
func (h *RequestHandler) SubmitExcursion(c *gin.Context) {
	var body excursionRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SubmitExcursion(c.Request.Context(), application.ExcursionRequest{
		Contact:   booking.Contact{Name: body.Name, Email: body.Email, Phone: body.Phone},
		Excursion: body.Excursion,
		Date:      body.Date,
		People:    body.People,
		Comments:  body.Comments,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

type packageRequestBody struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Phone    string `json:"telefono"`
	Package  string `json:"paquete"`
	Date     string `json:"fecha"`
	People   int    `json:"personas"`
	Comments string `json:"comentarios"`
}

// SubmitPackage handles POST /api/v1/requests/package.
func (h *RequestHandler) SubmitPackage(c *gin.Context) {
	var body packageRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SubmitPackage(c.Request.Context(), application.PackageRequest{
		Contact:  booking.Contact{Name: body.Name, Email: body.Email, Phone: body.Phone},
		Package:  body.Package,
		Date:     body.Date,
		People:   body.People,
		Comments: body.Comments,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

type customRequestBody struct {
	Name        string `json:"nombre"`
	Email       string `json:"email"`
	Phone       string `json:"telefono"`
	Travelers   int    `json:"viajeros"`
	Date        string `json:"fecha"`
	Duration    string `json:"duracion"`
	Description string `json:"descripcion"`
}

// SubmitCustom handles POST /api/v1/requests/custom.
func (h *RequestHandler) SubmitCustom(c *gin.Context) {
	var body customRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SubmitCustom(c.Request.Context(), application.CustomTripRequest{
		Contact:     booking.Contact{Name: body.Name, Email: body.Email, Phone: body.Phone},
		Travelers:   body.Travelers,
		Date:        body.Date,
		Duration:    body.Duration,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
