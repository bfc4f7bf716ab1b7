package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kubaxi/service-funnel/internal/domain/catalog"
	"github.com/kubaxi/service-funnel/internal/domain/trip"
	"github.com/kubaxi/service-funnel/internal/funnel"
	"github.com/kubaxi/service-funnel/internal/response"
)

// SessionHandler exposes the server-held trip form and excursion browser
// over HTTP. Each visitor gets a session ID and drives its widgets through
// these routes.
type SessionHandler struct {
	manager *funnel.Manager
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(manager *funnel.Manager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// RegisterRoutes registers the session routes on the given router group.
func (h *SessionHandler) RegisterRoutes(r *gin.RouterGroup) {
	form := r.Group("/api/v1/trip-form")
	{
		form.POST("", h.CreateSession)
		form.GET("/:id", h.GetForm)
		form.PATCH("/:id", h.UpdateForm)
		form.POST("/:id/submit", h.SubmitForm)
		form.POST("/:id/excursions/load", h.LoadExcursions)
		form.PATCH("/:id/excursions", h.SelectSpot)
		form.GET("/:id/excursions", h.GetExcursions)
	}
}

// CreateSession handles POST /api/v1/trip-form.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	session := h.manager.Create()
	response.Created(c, gin.H{
		"id":   session.ID,
		"form": session.TripForm.Snapshot(),
	})
}

func (h *SessionHandler) session(c *gin.Context) (*funnel.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid session ID")
		return nil, false
	}
	session, err := h.manager.Get(id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return session, true
}

// GetForm handles GET /api/v1/trip-form/:id.
func (h *SessionHandler) GetForm(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	response.Success(c, session.TripForm.Snapshot())
}

// formPatch is a partial update: only present fields are applied.
type formPatch struct {
	CustomerName *string           `json:"nombre"`
	Phone        *string           `json:"telefono"`
	Origin       *catalog.Location `json:"origen"`
	Destination  *catalog.Location `json:"destino"`
	Mode         *string           `json:"tipo_taxi"`
	PartySize    *int              `json:"pasajeros"`
	Date         *string           `json:"fecha"`
	Window       *string           `json:"horario"`
	Time         *string           `json:"hora"`
}

// UpdateForm handles PATCH /api/v1/trip-form/:id. Fields are applied in
// order; the returned snapshot may still show the quote as pending.
func (h *SessionHandler) UpdateForm(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var patch formPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	form := session.TripForm
	if patch.CustomerName != nil || patch.Phone != nil {
		snap := form.Snapshot()
		name, phone := snap.CustomerName, snap.Phone
		if patch.CustomerName != nil {
			name = *patch.CustomerName
		}
		if patch.Phone != nil {
			phone = *patch.Phone
		}
		form.SetContact(name, phone)
	}
	if patch.Origin != nil {
		form.SetOrigin(patch.Origin)
	}
	if patch.Destination != nil {
		form.SetDestination(patch.Destination)
	}
	if patch.Mode != nil {
		mode, err := trip.ParseServiceMode(*patch.Mode)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		form.SetMode(mode)
	}
	if patch.PartySize != nil {
		form.SetPartySize(*patch.PartySize)
	}
	if patch.Date != nil {
		form.SetDate(*patch.Date)
	}
	if patch.Window != nil {
		form.SetWindow(trip.HalfDayWindow(*patch.Window))
	}
	if patch.Time != nil {
		form.SetTime(*patch.Time)
	}

	response.Success(c, form.Snapshot())
}

// SubmitForm handles POST /api/v1/trip-form/:id/submit.
func (h *SessionHandler) SubmitForm(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	result, err := session.TripForm.Submit(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// LoadExcursions handles POST /api/v1/trip-form/:id/excursions/load.
func (h *SessionHandler) LoadExcursions(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.Browser.Load(c.Request.Context())
	response.Success(c, session.Browser.Snapshot())
}

// SelectSpot handles PATCH /api/v1/trip-form/:id/excursions.
func (h *SessionHandler) SelectSpot(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var body struct {
		Spot string `json:"spot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session.Browser.Select(body.Spot)
	response.Success(c, session.Browser.Snapshot())
}

// GetExcursions handles GET /api/v1/trip-form/:id/excursions.
func (h *SessionHandler) GetExcursions(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	response.Success(c, session.Browser.Snapshot())
}
