package application

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kubaxi/service-funnel/internal/domain/trip"
)

type fakeRouteRepo struct {
	route *trip.Route
	err   error
}

func (f *fakeRouteRepo) FindRoute(_ context.Context, originID, destinationID uuid.UUID) (*trip.Route, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.route, nil
}

func newQuoteService(repo trip.RouteRepository) *QuoteService {
	return NewQuoteService(repo, trip.NewStandardPricingStrategy(), zap.NewNop())
}

func TestQuoteService_Quote(t *testing.T) {
	svc := newQuoteService(&fakeRouteRepo{route: &trip.Route{DistanceKm: 140}})

	quote, err := svc.Quote(context.Background(), uuid.New(), uuid.New(), trip.ModeShared, 2)
	require.NoError(t, err)

	assert.Equal(t, 140.0, quote.DistanceKm)
	assert.Equal(t, 7400.0, quote.Price) // (200 + 140*25) * 2
	assert.Equal(t, 187, quote.EstimatedTimeMinutes)
}

func TestQuoteService_InvalidPartySize(t *testing.T) {
	svc := newQuoteService(&fakeRouteRepo{route: &trip.Route{DistanceKm: 140}})

	for _, size := range []int{0, -1} {
		_, err := svc.Quote(context.Background(), uuid.New(), uuid.New(), trip.ModeShared, size)
		assert.ErrorIs(t, err, trip.ErrInvalidPartySize)
	}
}

func TestQuoteService_UnknownRoutePair(t *testing.T) {
	svc := newQuoteService(&fakeRouteRepo{err: trip.ErrUnresolvableRoute})

	_, err := svc.Quote(context.Background(), uuid.New(), uuid.New(), trip.ModePrivate, 1)
	assert.ErrorIs(t, err, trip.ErrUnresolvableRoute)
}

func TestQuoteService_InvalidMode(t *testing.T) {
	svc := newQuoteService(&fakeRouteRepo{route: &trip.Route{DistanceKm: 140}})

	_, err := svc.Quote(context.Background(), uuid.New(), uuid.New(), trip.ServiceMode("guagua"), 1)
	assert.Error(t, err)
}

func TestQuoteService_RepoFailureIsNotUnresolvable(t *testing.T) {
	svc := newQuoteService(&fakeRouteRepo{err: errors.New("connection reset")})

	_, err := svc.Quote(context.Background(), uuid.New(), uuid.New(), trip.ModeShared, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, trip.ErrUnresolvableRoute)
}
