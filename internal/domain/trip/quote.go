package trip

import "errors"

// Quote is the computed estimate for a specific origin/destination/mode/party
// combination. Quotes are ephemeral: they are recomputed on any input change
// and carried as *Quote wherever "not yet computed" is a possible state.
type Quote struct {
	DistanceKm           float64 `json:"distance_km"`
	EstimatedTimeMinutes int     `json:"estimated_time_minutes"`
	Price                float64 `json:"price"`
}

var (
	// ErrUnresolvableRoute indicates no route exists between the two locations.
	ErrUnresolvableRoute = errors.New("no route between the selected locations")

	// ErrInvalidPartySize indicates a party size below the minimum of 1.
	ErrInvalidPartySize = errors.New("party size must be at least 1")
)
