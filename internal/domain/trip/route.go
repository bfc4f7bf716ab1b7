package trip

import "github.com/google/uuid"

// Route is a value object describing the known road link between two
// directory locations. Routes are symmetric: a lookup for (A, B) also
// matches a stored (B, A).
type Route struct {
	OriginID      uuid.UUID `json:"origin_id"`
	DestinationID uuid.UUID `json:"destination_id"`
	DistanceKm    float64   `json:"distance_km"`
}
