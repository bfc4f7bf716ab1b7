package funnel

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kubaxi/service-funnel/internal/application"
	"github.com/kubaxi/service-funnel/internal/domain"
	"github.com/kubaxi/service-funnel/internal/domain/catalog"
	"github.com/kubaxi/service-funnel/internal/domain/trip"
)

// fakeQuoter returns a quote whose price encodes the requested party size, so
// tests can tell which request produced the applied quote. When gate is set,
// every call blocks until the gate closes.
type fakeQuoter struct {
	mu    sync.Mutex
	calls int
	done  int
	gate  chan struct{}
	err   error
}

func (q *fakeQuoter) Quote(_ context.Context, _, _ uuid.UUID, _ trip.ServiceMode, partySize int) (*trip.Quote, error) {
	q.mu.Lock()
	q.calls++
	gate := q.gate
	q.mu.Unlock()

	if gate != nil {
		<-gate
	}

	defer func() {
		q.mu.Lock()
		q.done++
		q.mu.Unlock()
	}()

	if q.err != nil {
		return nil, q.err
	}
	return &trip.Quote{DistanceKm: 140, EstimatedTimeMinutes: 187, Price: float64(partySize) * 1000}, nil
}

func (q *fakeQuoter) callCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.calls
}

func (q *fakeQuoter) doneCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.done
}

type fakeSubmitter struct {
	mu       sync.Mutex
	requests []application.TaxiRequest
	result   *application.SubmissionResult
	err      error
}

func (s *fakeSubmitter) SubmitTaxi(_ context.Context, req application.TaxiRequest) (*application.SubmissionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &application.SubmissionResult{Message: "ok", Link: "https://wa.me/5352375007?text=ok"}, nil
}

func havana() *catalog.Location {
	return &catalog.Location{ID: uuid.New(), Name: "La Habana", Province: "La Habana"}
}

func varadero() *catalog.Location {
	return &catalog.Location{ID: uuid.New(), Name: "Varadero", Province: "Matanzas"}
}

func fillValidSharedForm(form *TripForm) {
	form.SetOrigin(havana())
	form.SetDestination(varadero())
	form.SetDate("2025-07-15")
	form.SetWindow(trip.WindowMorning)
}

func TestTripForm_StartsEditingWithDefaults(t *testing.T) {
	form := NewTripForm(&fakeQuoter{}, &fakeSubmitter{}, zap.NewNop())

	snap := form.Snapshot()
	assert.Equal(t, StateEditing, snap.State)
	assert.Equal(t, trip.ModeShared, snap.Mode)
	assert.Equal(t, 1, snap.PartySize)
	assert.Nil(t, snap.Quote)
}

func TestTripForm_QuoteAppearsOnceRouteIsComplete(t *testing.T) {
	quoter := &fakeQuoter{}
	form := NewTripForm(quoter, &fakeSubmitter{}, zap.NewNop())

	form.SetOrigin(havana())
	assert.Zero(t, quoter.callCount(), "no quote without a destination")

	form.SetDestination(varadero())
	require.Eventually(t, func() bool {
		return form.Snapshot().Quote != nil
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1000.0, form.Snapshot().Quote.Price)
}

func TestTripForm_EditInvalidatesQuote(t *testing.T) {
	quoter := &fakeQuoter{}
	form := NewTripForm(quoter, &fakeSubmitter{}, zap.NewNop())

	form.SetOrigin(havana())
	form.SetDestination(varadero())
	require.Eventually(t, func() bool {
		return form.Snapshot().Quote != nil
	}, time.Second, 5*time.Millisecond)

	// Changing a pricing input drops the quote immediately.
	quoter.mu.Lock()
	quoter.gate = make(chan struct{})
	quoter.mu.Unlock()

	form.SetPartySize(4)
	assert.Nil(t, form.Snapshot().Quote)
}

func TestTripForm_StaleQuoteIsDiscarded(t *testing.T) {
	gate := make(chan struct{})
	quoter := &fakeQuoter{gate: gate}
	form := NewTripForm(quoter, &fakeSubmitter{}, zap.NewNop())

	form.SetOrigin(havana())
	form.SetDestination(varadero()) // starts a refresh for party size 1
	form.SetPartySize(2)            // supersedes it
	form.SetPartySize(5)            // and again

	require.Eventually(t, func() bool {
		return quoter.callCount() == 3
	}, time.Second, 5*time.Millisecond)

	close(gate)
	require.Eventually(t, func() bool {
		return quoter.doneCount() == 3
	}, time.Second, 5*time.Millisecond)

	// Whatever order the refreshes landed in, only the newest survives.
	snap := form.Snapshot()
	require.NotNil(t, snap.Quote)
	assert.Equal(t, 5000.0, snap.Quote.Price)
}

func TestTripForm_PartySizeBelowOneNeverQuotes(t *testing.T) {
	quoter := &fakeQuoter{}
	form := NewTripForm(quoter, &fakeSubmitter{}, zap.NewNop())

	form.SetPartySize(0)
	form.SetOrigin(havana())
	form.SetDestination(varadero())

	// Give any stray goroutine a chance to run before asserting.
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, quoter.callCount())
	assert.Nil(t, form.Snapshot().Quote)
}

func TestTripForm_QuoterErrorLeavesQuoteEmpty(t *testing.T) {
	quoter := &fakeQuoter{err: trip.ErrUnresolvableRoute}
	form := NewTripForm(quoter, &fakeSubmitter{}, zap.NewNop())

	form.SetOrigin(havana())
	form.SetDestination(varadero())

	require.Eventually(t, func() bool {
		return quoter.doneCount() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Nil(t, form.Snapshot().Quote)
}

func TestTripForm_ModeSwitchClearsDepartureFields(t *testing.T) {
	form := NewTripForm(&fakeQuoter{}, &fakeSubmitter{}, zap.NewNop())

	form.SetWindow(trip.WindowMorning)
	form.SetMode(trip.ModePrivate)

	snap := form.Snapshot()
	assert.Empty(t, snap.Window, "shared window must not leak into private mode")
	assert.Empty(t, snap.Time)

	form.SetTime("09:30")
	form.SetMode(trip.ModeShared)

	snap = form.Snapshot()
	assert.Empty(t, snap.Time, "private time must not leak into shared mode")
	assert.Empty(t, snap.Window)
}

func TestTripForm_SubmitHappyPath(t *testing.T) {
	submitter := &fakeSubmitter{}
	form := NewTripForm(&fakeQuoter{}, submitter, zap.NewNop())
	fillValidSharedForm(form)

	result, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Message)

	snap := form.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.Error)

	require.Len(t, submitter.requests, 1)
	assert.Equal(t, "La Habana", submitter.requests[0].Origin.Name)
	assert.Equal(t, trip.WindowMorning, submitter.requests[0].Window)
}

func TestTripForm_SubmitValidationFailureReturnsToEditing(t *testing.T) {
	submitter := &fakeSubmitter{}
	form := NewTripForm(&fakeQuoter{}, submitter, zap.NewNop())

	form.SetOrigin(havana())
	form.SetDestination(varadero())
	// No date selected.

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindValidation, appErr.Kind)

	snap := form.Snapshot()
	assert.Equal(t, StateEditing, snap.State)
	assert.Equal(t, "Por favor selecciona una fecha", snap.Error)
	assert.Empty(t, submitter.requests, "invalid forms must not reach the dispatcher")
}

func TestTripForm_SubmitFailureThenFixThenResubmit(t *testing.T) {
	submitter := &fakeSubmitter{}
	form := NewTripForm(&fakeQuoter{}, submitter, zap.NewNop())

	form.SetOrigin(havana())
	form.SetDestination(varadero())
	form.SetDate("2025-07-15")
	// Shared mode without a window fails.
	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Por favor selecciona el horario (mañana o tarde)", form.Snapshot().Error)

	form.SetWindow(trip.WindowMorning)
	assert.Empty(t, form.Snapshot().Error, "editing clears the validation message")

	_, err = form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateIdle, form.Snapshot().State)
}

func TestTripForm_EditingAfterIdleRestartsTheCycle(t *testing.T) {
	form := NewTripForm(&fakeQuoter{}, &fakeSubmitter{}, zap.NewNop())
	fillValidSharedForm(form)

	_, err := form.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateIdle, form.Snapshot().State)

	form.SetDate("2025-07-20")
	assert.Equal(t, StateEditing, form.Snapshot().State)

	_, err = form.Submit(context.Background())
	require.NoError(t, err)
}
