package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kubaxi/service-funnel/internal/domain"
	"github.com/kubaxi/service-funnel/internal/domain/booking"
	"github.com/kubaxi/service-funnel/internal/domain/catalog"
	"github.com/kubaxi/service-funnel/internal/domain/trip"
	"github.com/kubaxi/service-funnel/internal/events"
	"github.com/kubaxi/service-funnel/internal/whatsapp"
)

// LeadPublisher publishes lead analytics events. The Kafka producer satisfies
// it; tests pass fakes.
type LeadPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event events.CloudEvent) error
}

// SubmissionResult is what a successful submit hands back to the client: the
// composed message and the deep link that opens the conversation.
type SubmissionResult struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// TaxiRequest is the taxi booking form payload.
type TaxiRequest struct {
	CustomerName string
	Phone        string
	Origin       *catalog.Location
	Destination  *catalog.Location
	Mode         trip.ServiceMode
	PartySize    int
	Date         string
	Window       trip.HalfDayWindow
	Time         string
	Quote        *trip.Quote
}

// Validate checks the form the way the visitor sees it: the first missing
// field wins, with the customer-facing Spanish message.
func (r TaxiRequest) Validate() error {
	if r.Origin == nil || r.Destination == nil {
		return domain.NewValidationError("Por favor selecciona origen y destino")
	}
	if !r.Mode.IsValid() {
		return domain.NewValidationError("Por favor selecciona el tipo de taxi")
	}
	if r.PartySize < 1 {
		return domain.NewValidationError("Por favor indica la cantidad de pasajeros")
	}
	if strings.TrimSpace(r.Date) == "" {
		return domain.NewValidationError("Por favor selecciona una fecha")
	}
	if r.Mode == trip.ModeShared && !r.Window.IsValid() {
		return domain.NewValidationError("Por favor selecciona el horario (mañana o tarde)")
	}
	if r.Mode == trip.ModePrivate && strings.TrimSpace(r.Time) == "" {
		return domain.NewValidationError("Por favor selecciona una hora para el taxi privado")
	}
	return nil
}

// ExcursionRequest is the excursion booking form payload.
type ExcursionRequest struct {
	Contact   booking.Contact
	Excursion string
	Date      string
	People    int
	Comments  string
}

// Validate checks the required excursion form fields.
func (r ExcursionRequest) Validate() error {
	if strings.TrimSpace(r.Excursion) == "" {
		return domain.NewValidationError("Por favor selecciona una excursión")
	}
	if strings.TrimSpace(r.Contact.Name) == "" {
		return domain.NewValidationError("Por favor escribe tu nombre")
	}
	if strings.TrimSpace(r.Date) == "" {
		return domain.NewValidationError("Por favor selecciona una fecha")
	}
	if r.People < 1 {
		return domain.NewValidationError("Por favor indica la cantidad de personas")
	}
	return nil
}

// PackageRequest is the travel-package booking form payload.
type PackageRequest struct {
	Contact  booking.Contact
	Package  string
	Date     string
	People   int
	Comments string
}

// Validate checks the required package form fields.
func (r PackageRequest) Validate() error {
	if strings.TrimSpace(r.Package) == "" {
		return domain.NewValidationError("Por favor selecciona un paquete")
	}
	if strings.TrimSpace(r.Contact.Name) == "" {
		return domain.NewValidationError("Por favor escribe tu nombre")
	}
	if strings.TrimSpace(r.Date) == "" {
		return domain.NewValidationError("Por favor selecciona una fecha")
	}
	if r.People < 1 {
		return domain.NewValidationError("Por favor indica la cantidad de personas")
	}
	return nil
}

// CustomTripRequest is the free-form trip request payload. All fields are
// required on this form.
type CustomTripRequest struct {
	Contact     booking.Contact
	Travelers   int
	Date        string
	Duration    string
	Description string
}

// Validate checks the required custom form fields.
func (r CustomTripRequest) Validate() error {
	if strings.TrimSpace(r.Contact.Name) == "" {
		return domain.NewValidationError("Por favor escribe tu nombre")
	}
	if strings.TrimSpace(r.Contact.Email) == "" {
		return domain.NewValidationError("Por favor escribe tu email")
	}
	if strings.TrimSpace(r.Contact.Phone) == "" {
		return domain.NewValidationError("Por favor escribe tu teléfono")
	}
	if r.Travelers < 1 {
		return domain.NewValidationError("Por favor indica la cantidad de viajeros")
	}
	if strings.TrimSpace(r.Date) == "" {
		return domain.NewValidationError("Por favor selecciona una fecha")
	}
	if strings.TrimSpace(r.Duration) == "" {
		return domain.NewValidationError("Por favor selecciona la duración del viaje")
	}
	if strings.TrimSpace(r.Description) == "" {
		return domain.NewValidationError("Por favor describe el viaje que deseas")
	}
	return nil
}

// RequestService turns validated form payloads into WhatsApp handoffs. It is
// stateless: validate, compose, build the link, emit a lead event, done.
type RequestService struct {
	dispatcher *whatsapp.Dispatcher
	publisher  LeadPublisher
	topic      string
	logger     *zap.Logger
}

// NewRequestService creates a new RequestService. publisher may be nil, in
// which case lead events are skipped.
func NewRequestService(dispatcher *whatsapp.Dispatcher, publisher LeadPublisher, topic string, logger *zap.Logger) *RequestService {
	return &RequestService{dispatcher: dispatcher, publisher: publisher, topic: topic, logger: logger}
}

// SubmitTaxi validates and dispatches a taxi booking.
func (s *RequestService) SubmitTaxi(ctx context.Context, req TaxiRequest) (*SubmissionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	timeLabel := req.Time
	if req.Mode == trip.ModeShared {
		timeLabel = req.Window.Label()
	}

	intent := booking.TaxiTrip{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Origin:       req.Origin.Name,
		Destination:  req.Destination.Name,
		Date:         req.Date,
		Time:         timeLabel,
		Passengers:   fmt.Sprintf("%d", req.PartySize),
		TaxiType:     req.Mode.Label(),
	}
	if req.Quote != nil {
		intent.Price = fmt.Sprintf("$%.0f CUP", req.Quote.Price)
		intent.Distance = fmt.Sprintf("%g km", req.Quote.DistanceKm)
		intent.EstimatedTime = fmt.Sprintf("%d minutos", req.Quote.EstimatedTimeMinutes)
	}

	return s.dispatch(ctx, intent), nil
}

// SubmitExcursion validates and dispatches an excursion booking.
func (s *RequestService) SubmitExcursion(ctx context.Context, req ExcursionRequest) (*SubmissionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	intent := booking.ExcursionBooking{
		Contact:   req.Contact,
		Excursion: req.Excursion,
		Date:      req.Date,
		People:    fmt.Sprintf("%d", req.People),
		Comments:  strings.TrimSpace(req.Comments),
	}
	return s.dispatch(ctx, intent), nil
}

// SubmitPackage validates and dispatches a package booking.
func (s *RequestService) SubmitPackage(ctx context.Context, req PackageRequest) (*SubmissionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	intent := booking.PackageBooking{
		Contact:  req.Contact,
		Package:  req.Package,
		Date:     req.Date,
		People:   fmt.Sprintf("%d", req.People),
		Comments: strings.TrimSpace(req.Comments),
	}
	return s.dispatch(ctx, intent), nil
}

// SubmitCustom validates and dispatches a free-form trip request.
func (s *RequestService) SubmitCustom(ctx context.Context, req CustomTripRequest) (*SubmissionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	intent := booking.CustomRequest{
		Contact:     req.Contact,
		Travelers:   fmt.Sprintf("%d", req.Travelers),
		Date:        req.Date,
		Duration:    req.Duration,
		Description: strings.TrimSpace(req.Description),
	}
	return s.dispatch(ctx, intent), nil
}

func (s *RequestService) dispatch(ctx context.Context, intent booking.Intent) *SubmissionResult {
	message := whatsapp.Compose(intent)
	link := s.dispatcher.Link(message)
	s.publishLead(ctx, intent.IntentKind(), len(message))
	return &SubmissionResult{Message: message, Link: link}
}

// publishLead emits the analytics event best-effort. A dead broker must not
// cost the business a lead.
func (s *RequestService) publishLead(ctx context.Context, kind booking.Kind, messageChars int) {
	if s.publisher == nil {
		return
	}

	event, err := events.NewCloudEvent(events.EventSource, events.LeadDispatched, events.LeadDispatchedEvent{
		RequestKind:  string(kind),
		Recipient:    s.dispatcher.Recipient(),
		MessageChars: messageChars,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("failed to build lead event", zap.Error(err))
		return
	}
	if err := s.publisher.PublishEvent(ctx, s.topic, string(kind), event); err != nil {
		s.logger.Warn("failed to publish lead event",
			zap.String("request_kind", string(kind)),
			zap.Error(err),
		)
	}
}
