package trip

import (
	"fmt"
	"math"
)

// PricingStrategy defines the interface for turning a route and trip
// parameters into a full quote.
type PricingStrategy interface {
	// Calculate returns the quote (price in CUP, distance, duration) for the
	// given parameters.
	Calculate(params PricingParams) (Quote, error)
}

// PricingParams holds the inputs for quote calculation.
type PricingParams struct {
	DistanceKm float64
	Mode       ServiceMode
	PartySize  int
}

// StandardPricingStrategy implements the default Kubaxi tariff.
type StandardPricingStrategy struct{}

// NewStandardPricingStrategy creates a new StandardPricingStrategy.
func NewStandardPricingStrategy() *StandardPricingStrategy {
	return &StandardPricingStrategy{}
}

// Tariff constants, in CUP.
//
//   - Colectivo: seats are sold per person; CUP 25/km per seat plus a
//     CUP 200 per-seat base covering pickup coordination.
//   - Privado: the whole vehicle; CUP 60/km plus a CUP 500 base, party
//     size does not multiply the fare.
const (
	sharedBaseFare   = 200.0
	sharedRatePerKm  = 25.0
	privateBaseFare  = 500.0
	privateRatePerKm = 60.0

	// Average road speeds used for duration estimates. Colectivos make
	// pickup stops along the way, privados do not.
	sharedAvgSpeedKmh  = 45.0
	privateAvgSpeedKmh = 60.0
)

// Calculate computes the quote for the given parameters. Price and distance
// are non-negative by construction; duration is rounded up to whole minutes.
func (s *StandardPricingStrategy) Calculate(params PricingParams) (Quote, error) {
	if params.PartySize < 1 {
		return Quote{}, ErrInvalidPartySize
	}
	if params.DistanceKm < 0 {
		return Quote{}, ErrUnresolvableRoute
	}

	var price, speed float64
	switch params.Mode {
	case ModeShared:
		perSeat := sharedBaseFare + params.DistanceKm*sharedRatePerKm
		price = perSeat * float64(params.PartySize)
		speed = sharedAvgSpeedKmh
	case ModePrivate:
		price = privateBaseFare + params.DistanceKm*privateRatePerKm
		speed = privateAvgSpeedKmh
	default:
		return Quote{}, fmt.Errorf("unknown service mode for pricing: %s", params.Mode)
	}

	minutes := int(math.Ceil(params.DistanceKm / speed * 60))

	return Quote{
		DistanceKm:           params.DistanceKm,
		EstimatedTimeMinutes: minutes,
		Price:                math.Round(price),
	}, nil
}
