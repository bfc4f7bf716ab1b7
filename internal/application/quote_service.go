package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubaxi/service-funnel/internal/domain/trip"
)

// QuoteService computes {distance, duration, price} for a resolved route.
type QuoteService struct {
	routes  trip.RouteRepository
	pricing trip.PricingStrategy
	logger  *zap.Logger
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(routes trip.RouteRepository, pricing trip.PricingStrategy, logger *zap.Logger) *QuoteService {
	return &QuoteService{routes: routes, pricing: pricing, logger: logger}
}

// Quote computes the estimate for the given origin/destination/mode/party
// combination. Returns trip.ErrInvalidPartySize or trip.ErrUnresolvableRoute
// on the corresponding conditions.
func (s *QuoteService) Quote(ctx context.Context, originID, destinationID uuid.UUID, mode trip.ServiceMode, partySize int) (*trip.Quote, error) {
	if partySize < 1 {
		return nil, trip.ErrInvalidPartySize
	}
	if _, err := trip.ParseServiceMode(string(mode)); err != nil {
		return nil, err
	}

	route, err := s.routes.FindRoute(ctx, originID, destinationID)
	if err != nil {
		if errors.Is(err, trip.ErrUnresolvableRoute) {
			return nil, err
		}
		return nil, fmt.Errorf("route lookup failed: %w", err)
	}

	quote, err := s.pricing.Calculate(trip.PricingParams{
		DistanceKm: route.DistanceKm,
		Mode:       mode,
		PartySize:  partySize,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("quote computed",
		zap.String("origin_id", originID.String()),
		zap.String("destination_id", destinationID.String()),
		zap.String("mode", string(mode)),
		zap.Int("party_size", partySize),
		zap.Float64("price", quote.Price),
	)
	return &quote, nil
}
