package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kubaxi/service-funnel/internal/domain/trip"
)

// RouteModel is the GORM model for the routes table. One row covers both
// directions of a link.
type RouteModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_pair"`
	DestinationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_pair"`
	DistanceKm    float64   `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RouteModel) TableName() string {
	return "routes"
}

// GormRouteRepository is the GORM-based implementation of trip.RouteRepository.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GormRouteRepository.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// FindRoute retrieves the route between two locations, matching either
// stored direction.
func (r *GormRouteRepository) FindRoute(ctx context.Context, originID, destinationID uuid.UUID) (*trip.Route, error) {
	var model RouteModel
	err := r.db.WithContext(ctx).
		Where("(origin_id = ? AND destination_id = ?) OR (origin_id = ? AND destination_id = ?)",
			originID, destinationID, destinationID, originID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trip.ErrUnresolvableRoute
		}
		return nil, fmt.Errorf("failed to find route: %w", err)
	}

	return &trip.Route{
		OriginID:      originID,
		DestinationID: destinationID,
		DistanceKm:    model.DistanceKm,
	}, nil
}
