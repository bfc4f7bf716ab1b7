package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/kubaxi/service-funnel/internal/domain/catalog"
)

// CatalogService serves the excursion and package catalog reads. Every fetch
// failure degrades to an empty list plus a log line; the visitor sees "no
// items available", never an error.
type CatalogService struct {
	repo   catalog.CatalogRepository
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo catalog.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ExcursionSpots returns the ordered spot names that have excursions.
func (s *CatalogService) ExcursionSpots(ctx context.Context) []string {
	spots, err := s.repo.ExcursionSpots(ctx)
	if err != nil {
		s.logger.Warn("failed to load excursion spots", zap.Error(err))
		return []string{}
	}
	if spots == nil {
		spots = []string{}
	}
	return spots
}

// Excursions returns the excursions for the given spot.
func (s *CatalogService) Excursions(ctx context.Context, spot string) []catalog.Excursion {
	excursions, err := s.repo.ExcursionsBySpot(ctx, spot)
	if err != nil {
		s.logger.Warn("failed to load excursions",
			zap.String("spot", spot),
			zap.Error(err),
		)
		return []catalog.Excursion{}
	}
	if excursions == nil {
		excursions = []catalog.Excursion{}
	}
	return excursions
}

// Packages returns the whole travel-package catalog.
func (s *CatalogService) Packages(ctx context.Context) []catalog.TravelPackage {
	packages, err := s.repo.Packages(ctx)
	if err != nil {
		s.logger.Warn("failed to load packages", zap.Error(err))
		return []catalog.TravelPackage{}
	}
	if packages == nil {
		packages = []catalog.TravelPackage{}
	}
	return packages
}
