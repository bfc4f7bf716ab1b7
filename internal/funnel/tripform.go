package funnel

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubaxi/service-funnel/internal/application"
	"github.com/kubaxi/service-funnel/internal/domain"
	"github.com/kubaxi/service-funnel/internal/domain/catalog"
	"github.com/kubaxi/service-funnel/internal/domain/trip"
)

// FormState is the lifecycle state of a booking form.
type FormState string

const (
	StateEditing    FormState = "editing"
	StateValidating FormState = "validating"
	StateSubmitting FormState = "submitting"
	StateIdle       FormState = "idle"
)

const quoteTimeout = 5 * time.Second

// Quoter computes a trip estimate. *application.QuoteService satisfies it.
type Quoter interface {
	Quote(ctx context.Context, originID, destinationID uuid.UUID, mode trip.ServiceMode, partySize int) (*trip.Quote, error)
}

// TaxiSubmitter dispatches a finished taxi form. *application.RequestService
// satisfies it.
type TaxiSubmitter interface {
	SubmitTaxi(ctx context.Context, req application.TaxiRequest) (*application.SubmissionResult, error)
}

// TripForm is the server-held state of one visitor's taxi booking form. All
// access goes through the mutex; quote refreshes run in the background and
// apply only when no newer field change has superseded them.
type TripForm struct {
	mu sync.Mutex

	state  FormState
	errMsg string

	customerName string
	phone        string

	origin      *catalog.Location
	destination *catalog.Location
	mode        trip.ServiceMode
	partySize   int
	date        string
	window      trip.HalfDayWindow
	time        string

	quote *trip.Quote
	// quoteSeq increments on every change that invalidates the quote. A
	// refresh carries the seq it was started under and is dropped on arrival
	// if the counter has moved on.
	quoteSeq uint64

	quoter    Quoter
	submitter TaxiSubmitter
	logger    *zap.Logger
}

// NewTripForm creates an empty form in the Editing state. The shared tier is
// preselected, matching the public form's default.
func NewTripForm(quoter Quoter, submitter TaxiSubmitter, logger *zap.Logger) *TripForm {
	return &TripForm{
		state:     StateEditing,
		mode:      trip.ModeShared,
		partySize: 1,
		quoter:    quoter,
		submitter: submitter,
		logger:    logger,
	}
}

// Snapshot is a point-in-time copy of the form for rendering.
type Snapshot struct {
	State        FormState          `json:"state"`
	Error        string             `json:"error,omitempty"`
	CustomerName string             `json:"nombre,omitempty"`
	Phone        string             `json:"telefono,omitempty"`
	Origin       *catalog.Location  `json:"origin"`
	Destination  *catalog.Location  `json:"destination"`
	Mode         trip.ServiceMode   `json:"mode"`
	PartySize    int                `json:"party_size"`
	Date         string             `json:"date"`
	Window       trip.HalfDayWindow `json:"window,omitempty"`
	Time         string             `json:"time,omitempty"`
	Quote        *trip.Quote        `json:"quote"`
}

// Snapshot returns a copy of the current form state.
func (f *TripForm) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		State:        f.state,
		Error:        f.errMsg,
		CustomerName: f.customerName,
		Phone:        f.phone,
		Origin:       f.origin,
		Destination:  f.destination,
		Mode:         f.mode,
		PartySize:    f.partySize,
		Date:         f.date,
		Window:       f.window,
		Time:         f.time,
		Quote:        f.quote,
	}
}

// SetContact records the optional customer identity. The composer substitutes
// its defaults when these stay empty.
func (f *TripForm) SetContact(name, phone string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customerName = name
	f.phone = phone
	f.edited()
}

// SetOrigin updates the origin and refreshes the quote.
func (f *TripForm) SetOrigin(loc *catalog.Location) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.origin = loc
	f.edited()
	f.refreshQuoteLocked()
}

// SetDestination updates the destination and refreshes the quote.
func (f *TripForm) SetDestination(loc *catalog.Location) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destination = loc
	f.edited()
	f.refreshQuoteLocked()
}

// SetMode switches the service tier. The departure fields are cleared: a
// window belongs to shared trips and an exact time to private ones, and
// neither survives a tier switch.
func (f *TripForm) SetMode(mode trip.ServiceMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = mode
	f.window = ""
	f.time = ""
	f.edited()
	f.refreshQuoteLocked()
}

// SetPartySize updates the passenger count and refreshes the quote.
func (f *TripForm) SetPartySize(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.partySize = n
	f.edited()
	f.refreshQuoteLocked()
}

// SetDate updates the travel date. The quote does not depend on it.
func (f *TripForm) SetDate(date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.date = date
	f.edited()
}

// SetWindow picks the half-day window for shared trips.
func (f *TripForm) SetWindow(w trip.HalfDayWindow) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.window = w
	f.edited()
}

// SetTime picks the exact departure time for private trips.
func (f *TripForm) SetTime(t string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.time = t
	f.edited()
}

// edited drops the form back to Editing after a terminal submit state, so a
// visitor can correct fields and go again.
func (f *TripForm) edited() {
	if f.state == StateIdle || f.state == StateEditing {
		f.state = StateEditing
		f.errMsg = ""
	}
}

// refreshQuoteLocked invalidates the current quote and, if the form has
// enough to price, starts a background recompute. Caller holds f.mu.
func (f *TripForm) refreshQuoteLocked() {
	f.quoteSeq++
	f.quote = nil

	if f.origin == nil || f.destination == nil || f.partySize < 1 || !f.mode.IsValid() {
		return
	}

	seq := f.quoteSeq
	originID := f.origin.ID
	destinationID := f.destination.ID
	mode := f.mode
	partySize := f.partySize

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), quoteTimeout)
		defer cancel()

		quote, err := f.quoter.Quote(ctx, originID, destinationID, mode, partySize)

		f.mu.Lock()
		defer f.mu.Unlock()
		if f.quoteSeq != seq {
			// A newer edit superseded this refresh.
			return
		}
		if err != nil {
			f.logger.Debug("quote refresh failed", zap.Error(err))
			return
		}
		f.quote = quote
	}()
}

// Submit runs the form through Validating and Submitting and returns the
// handoff result. Validation failures leave the form in Editing with the
// message set; success parks it in Idle.
func (f *TripForm) Submit(ctx context.Context) (*application.SubmissionResult, error) {
	f.mu.Lock()
	if f.state == StateValidating || f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, domain.NewInvalidStateError(string(f.state), string(StateValidating))
	}

	f.state = StateValidating
	req := application.TaxiRequest{
		CustomerName: f.customerName,
		Phone:        f.phone,
		Origin:       f.origin,
		Destination:  f.destination,
		Mode:         f.mode,
		PartySize:    f.partySize,
		Date:         f.date,
		Window:       f.window,
		Time:         f.time,
		Quote:        f.quote,
	}

	if err := req.Validate(); err != nil {
		f.state = StateEditing
		if appErr, ok := domain.AsAppError(err); ok {
			f.errMsg = appErr.Message
		} else {
			f.errMsg = err.Error()
		}
		f.mu.Unlock()
		return nil, err
	}

	f.state = StateSubmitting
	f.errMsg = ""
	f.mu.Unlock()

	result, err := f.submitter.SubmitTaxi(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateEditing
		f.errMsg = err.Error()
		return nil, err
	}
	f.state = StateIdle
	return result, nil
}
