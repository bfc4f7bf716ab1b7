package catalog

import "context"

// LocationRepository defines the read contract for the location directory.
type LocationRepository interface {
	// Search returns locations whose name matches the query, ordered by name.
	Search(ctx context.Context, query string, limit int) ([]Location, error)
}

// CatalogRepository defines the read contract for excursions and packages.
type CatalogRepository interface {
	// ExcursionSpots returns the ordered list of spot names that have at
	// least one excursion.
	ExcursionSpots(ctx context.Context) ([]string, error)

	// ExcursionsBySpot returns the excursions anchored to the given spot.
	ExcursionsBySpot(ctx context.Context, spot string) ([]Excursion, error)

	// Packages returns the whole travel-package catalog.
	Packages(ctx context.Context) ([]TravelPackage, error)
}
