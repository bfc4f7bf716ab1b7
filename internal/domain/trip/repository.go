package trip

import (
	"context"

	"github.com/google/uuid"
)

// RouteRepository defines the read contract for route lookups.
type RouteRepository interface {
	// FindRoute retrieves the route between two locations, in either
	// direction. Returns ErrUnresolvableRoute when no route is known.
	FindRoute(ctx context.Context, originID, destinationID uuid.UUID) (*Route, error)
}
